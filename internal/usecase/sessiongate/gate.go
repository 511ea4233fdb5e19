// Package sessiongate decides client navigation for a session state.
// It is a pure decision table: no clocks, no storage, no ambient state, so
// the same State always yields the same Decision.
package sessiongate

// AuthState is the session's authentication status as known to the caller.
type AuthState string

const (
	// AuthUnknown means the session is still being resolved (e.g. a token
	// check is in flight). No navigation decision can be made yet.
	AuthUnknown AuthState = "unknown"
	// AuthAnonymous means the session is resolved and carries no user.
	AuthAnonymous AuthState = "anonymous"
	// AuthAuthenticated means the session is resolved with a valid user.
	AuthAuthenticated AuthState = "authenticated"
)

// RouteGroup classifies the screen the client is on.
type RouteGroup string

const (
	// GroupAuth covers the login and registration screens.
	GroupAuth RouteGroup = "auth"
	// GroupProtected covers screens that require a signed-in user.
	GroupProtected RouteGroup = "protected"
	// GroupOther covers public screens.
	GroupOther RouteGroup = "other"
)

// Action is what the client should do with the current screen.
type Action string

const (
	// ActionNone keeps the client where it is (or rendering a loading
	// state while auth is unknown).
	ActionNone Action = "none"
	// ActionRedirect navigates the client to Decision.Target.
	ActionRedirect Action = "redirect"
)

// Navigation targets for redirects. Login lives in the auth group, home in
// the protected group; the table below maps both to "none", which is what
// keeps the gate loop-free.
const (
	TargetLogin = "/auth/login"
	TargetHome  = "/"
)

// State is the explicit input of the gate.
type State struct {
	Auth  AuthState
	Group RouteGroup
	// Modal marks transient overlays (e.g. the purchase sheet) that must
	// not be torn down by a home redirect.
	Modal bool
}

// Decision is the gate's verdict for a State.
type Decision struct {
	Action Action
	Target string
}

// Evaluate applies the navigation rules:
//
//	unknown                                -> none
//	anonymous on a protected screen        -> redirect to login
//	authenticated on an auth screen        -> redirect home, unless a modal
//	                                          overlay is open
//	everything else                        -> none
//
// Evaluating the state reached by following a redirect yields none, so the
// gate can run on every navigation change without looping.
func Evaluate(s State) Decision {
	if s.Auth == AuthUnknown {
		return Decision{Action: ActionNone}
	}

	if s.Auth == AuthAnonymous && s.Group == GroupProtected {
		return Decision{Action: ActionRedirect, Target: TargetLogin}
	}

	if s.Auth == AuthAuthenticated && s.Group == GroupAuth && !s.Modal {
		return Decision{Action: ActionRedirect, Target: TargetHome}
	}

	return Decision{Action: ActionNone}
}
