// Package identity talks to the external identity provider. Accounts are
// never stored locally; every user operation is proxied.
package identity

import "context"

// User is the provider's view of an account.
type User struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Status        string `json:"status"`
	EmailVerified bool   `json:"email_verified"`
	CreatedAt     string `json:"created_at"`
}

// User status values reported by the provider.
const (
	UserStatusActive  = "active"
	UserStatusBlocked = "blocked"
)

// Session is the provider-side session created by a credential check.
type Session struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`
	Expire string `json:"expire"`
}

// UpdateUserInput is a partial update; nil fields are left untouched.
type UpdateUserInput struct {
	Name  *string
	Email *string
}

// UserStats aggregates the provider's account list.
type UserStats struct {
	Total    int64 `json:"total"`
	Recent   int64 `json:"recent"`
	Active   int64 `json:"active"`
	Verified int64 `json:"verified"`
}

// Provider is the surface the rest of the application depends on.
type Provider interface {
	CreateSession(ctx context.Context, email, password string) (*Session, *User, error)
	DeleteSession(ctx context.Context, sessionID string) error
	ListUsers(ctx context.Context, limit, offset int) ([]*User, int64, error)
	GetUser(ctx context.Context, id string) (*User, error)
	UpdateUser(ctx context.Context, id string, in UpdateUserInput) (*User, error)
	UpdateUserStatus(ctx context.Context, id string, blocked bool) (*User, error)
	DeleteUser(ctx context.Context, id string) error
	Health(ctx context.Context) error
}
