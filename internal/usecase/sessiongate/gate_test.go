package sessiongate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name  string
		state State
		want  Decision
	}{
		{
			name:  "unknown session renders loading, never redirects",
			state: State{Auth: AuthUnknown, Group: GroupProtected},
			want:  Decision{Action: ActionNone},
		},
		{
			name:  "anonymous on protected screen goes to login",
			state: State{Auth: AuthAnonymous, Group: GroupProtected},
			want:  Decision{Action: ActionRedirect, Target: TargetLogin},
		},
		{
			name:  "anonymous on auth screen stays put",
			state: State{Auth: AuthAnonymous, Group: GroupAuth},
			want:  Decision{Action: ActionNone},
		},
		{
			name:  "anonymous on public screen stays put",
			state: State{Auth: AuthAnonymous, Group: GroupOther},
			want:  Decision{Action: ActionNone},
		},
		{
			name:  "authenticated on auth screen goes home",
			state: State{Auth: AuthAuthenticated, Group: GroupAuth},
			want:  Decision{Action: ActionRedirect, Target: TargetHome},
		},
		{
			name:  "authenticated on auth screen with modal open stays put",
			state: State{Auth: AuthAuthenticated, Group: GroupAuth, Modal: true},
			want:  Decision{Action: ActionNone},
		},
		{
			name:  "authenticated on protected screen stays put",
			state: State{Auth: AuthAuthenticated, Group: GroupProtected},
			want:  Decision{Action: ActionNone},
		},
		{
			name:  "authenticated on public screen stays put",
			state: State{Auth: AuthAuthenticated, Group: GroupOther},
			want:  Decision{Action: ActionNone},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Evaluate(tt.state))
		})
	}
}

// groupOfTarget maps a redirect target onto the group the client lands in.
func groupOfTarget(target string) RouteGroup {
	switch target {
	case TargetLogin:
		return GroupAuth
	case TargetHome:
		return GroupProtected
	default:
		return GroupOther
	}
}

func TestEvaluate_NoRedirectLoops(t *testing.T) {
	auths := []AuthState{AuthUnknown, AuthAnonymous, AuthAuthenticated}
	groups := []RouteGroup{GroupAuth, GroupProtected, GroupOther}

	for _, auth := range auths {
		for _, group := range groups {
			for _, modal := range []bool{false, true} {
				first := Evaluate(State{Auth: auth, Group: group, Modal: modal})
				if first.Action != ActionRedirect {
					continue
				}

				// Following the redirect must settle immediately.
				landed := State{Auth: auth, Group: groupOfTarget(first.Target)}
				second := Evaluate(landed)
				assert.Equal(t, ActionNone, second.Action,
					"redirect loop from auth=%s group=%s modal=%v via %s", auth, group, modal, first.Target)
			}
		}
	}
}

func TestEvaluate_Idempotent(t *testing.T) {
	state := State{Auth: AuthAnonymous, Group: GroupProtected}

	first := Evaluate(state)
	second := Evaluate(state)
	assert.Equal(t, first, second)
}
