package ports

import (
	"context"

	"github.com/tasknest/tasknest/internal/core/domain"
)

// AuthService issues and validates session tokens.
type AuthService interface {
	// Register creates a user-role account and returns a fresh session token
	// plus the created record. The caller can never choose the role.
	Register(ctx context.Context, email, password, name string) (string, *domain.User, error)
	// Login verifies credentials and returns a session token plus the user.
	// Unknown email and wrong password produce the same error.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// Validate resolves a bearer token to its user, or nil for any token that
	// fails signature or expiry checks or whose subject no longer exists.
	// It never returns an error for expected invalid-token cases.
	Validate(ctx context.Context, token string) *domain.User
}
