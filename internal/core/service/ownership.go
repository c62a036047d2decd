package service

import (
	"github.com/tasknest/tasknest/internal/core/domain"
)

// withOwnershipCheck runs action only when caller may act on a record owned
// by ownerID. Todos and reminders both route every mutation through this
// helper so the rule cannot drift apart between resource types.
func withOwnershipCheck[T any](caller *domain.User, ownerID string, action func() (T, error)) (T, error) {
	var zero T
	if caller == nil || !caller.CanModify(ownerID) {
		return zero, domain.ErrForbidden
	}
	return action()
}

// listScope returns the owner filter for list operations: admins see every
// record, everyone else only their own.
func listScope(caller *domain.User) string {
	if caller.Role == domain.RoleAdmin {
		return ""
	}
	return caller.ID
}
