package access_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chapterchill/bookstore-service/internal/access"
	"github.com/chapterchill/bookstore-service/pkg/auth"
)

func TestCanAct(t *testing.T) {
	t.Parallel()

	owner := auth.Actor{UserUID: "u-1", Role: auth.RoleUser}
	other := auth.Actor{UserUID: "u-2", Role: auth.RoleUser}
	admin := auth.Actor{UserUID: "a-1", Role: auth.RoleAdmin}

	tests := []struct {
		name   string
		actor  auth.Actor
		owner  string
		action access.Action
		want   bool
	}{
		{"owner can view", owner, "u-1", access.View, true},
		{"owner can cancel", owner, "u-1", access.Cancel, true},
		{"owner can return", owner, "u-1", access.Return, true},
		{"owner cannot approve", owner, "u-1", access.Approve, false},
		{"owner cannot delete", owner, "u-1", access.Delete, false},
		{"owner cannot update status", owner, "u-1", access.Update, false},
		{"stranger cannot view", other, "u-1", access.View, false},
		{"stranger cannot cancel", other, "u-1", access.Cancel, false},
		{"admin can view", admin, "u-1", access.View, true},
		{"admin can approve", admin, "u-1", access.Approve, true},
		{"admin can delete", admin, "u-1", access.Delete, true},
		{"anonymous denied", auth.Actor{}, "u-1", access.View, false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, access.CanAct(tt.actor, tt.owner, tt.action))
		})
	}
}
