package domain

import (
	"context"
	"time"
)

// Application roles. Role is a single column on the user; only an admin can
// change it after signup.
const (
	RoleAttendee  = "attendee"
	RoleOrganizer = "organizer"
	RoleAdmin     = "admin"
)

// ValidRole reports whether code is one of the three application roles.
func ValidRole(code string) bool {
	return code == RoleAttendee || code == RoleOrganizer || code == RoleAdmin
}

// User represents a registered user.
// swagger:model User
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewUser returns a new User with the given fields. ID is set by the repository on create.
func NewUser(name, email, passwordHash, role string, createdAt, updatedAt time.Time) *User {
	return &User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
}

// PasswordHasher handles password hashing and verification.
// Implementations may use bcrypt, argon2, etc.
type PasswordHasher interface {
	Hash(password string) (hash string, err error)
	Compare(hash, password string) error
}

// TokenIssuer issues bearer tokens (e.g. JWT) for an authenticated user.
type TokenIssuer interface {
	Issue(userID, email, role string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns the authenticated user ID.
type TokenVerifier interface {
	Verify(token string) (userID string, err error)
}

// UserRepository defines the interface for user storage.
// Delete removes the user together with all dependent rows (registrations and
// their tickets, comments, notifications, organized events and their children)
// in one transaction; the cascade is spelled out in SQL, not inferred from
// schema annotations.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	List(ctx context.Context) ([]*User, error)
	UpdateRole(ctx context.Context, userID, role string) error
	Delete(ctx context.Context, id string) error
}

// AuthService defines signup, login, and current-user lookup.
type AuthService interface {
	SignUp(ctx context.Context, name, email, password, role string) (*User, error)
	Login(ctx context.Context, email, password string) (token string, err error)
	GetByID(ctx context.Context, id string) (*User, error)
}

// UserAdminService defines admin-only user management.
type UserAdminService interface {
	ListUsers(ctx context.Context, actorID string) ([]*User, error)
	ChangeRole(ctx context.Context, actorID, userID, role string) (*User, error)
	DeleteUser(ctx context.Context, actorID, userID string) error
}
