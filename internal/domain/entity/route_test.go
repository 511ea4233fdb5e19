package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRouteStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from    RouteStatus
		to      RouteStatus
		allowed bool
	}{
		{RouteStatusDraft, RouteStatusInReview, true},
		{RouteStatusDraft, RouteStatusPublished, false},
		{RouteStatusDraft, RouteStatusArchived, false},
		{RouteStatusInReview, RouteStatusPublished, true},
		{RouteStatusInReview, RouteStatusRejected, true},
		{RouteStatusInReview, RouteStatusDraft, false},
		{RouteStatusPublished, RouteStatusArchived, true},
		{RouteStatusPublished, RouteStatusDraft, false},
		{RouteStatusRejected, RouteStatusDraft, true},
		{RouteStatusRejected, RouteStatusPublished, false},
		{RouteStatusArchived, RouteStatusPublished, false},
		{RouteStatusArchived, RouteStatusDraft, false},
	}

	for _, tt := range tests {
		t.Run(tt.from.String()+"_to_"+tt.to.String(), func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestRoute_IsOwnedBy(t *testing.T) {
	creatorID := uuid.New()
	route := &Route{ID: uuid.New(), CreatorID: creatorID}

	assert.True(t, route.IsOwnedBy(creatorID))
	assert.False(t, route.IsOwnedBy(uuid.New()))

	var nilRoute *Route
	assert.False(t, nilRoute.IsOwnedBy(creatorID))
}
