// Package access holds the capability checks gating state-machine
// transitions. Handlers authenticate; ownership and role decisions
// happen here, next to the operations they guard.
package access

import (
	"github.com/chapterchill/bookstore-service/pkg/auth"
)

type Action string

const (
	View   Action = "view"
	Cancel Action = "cancel"
	Return Action = "return"

	Approve Action = "approve"
	Update  Action = "update"
	Delete  Action = "delete"
)

// adminOnly actions are never granted on ownership alone.
var adminOnly = map[Action]bool{
	Approve: true,
	Update:  true,
	Delete:  true,
}

// CanAct reports whether the actor may perform action on a resource
// owned by ownerUID.
func CanAct(actor auth.Actor, ownerUID string, action Action) bool {
	if actor.IsZero() {
		return false
	}
	if actor.IsAdmin() {
		return true
	}
	if adminOnly[action] {
		return false
	}
	return actor.UserUID == ownerUID
}
