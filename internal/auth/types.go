package auth

import (
	"context"
	"fmt"
)

type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Error(format string, args ...any)
}

// Identity is the lightweight authenticated principal resolved from a
// session token. It carries no role; the guard re-fetches the record
// so a stale token cannot vouch for a revoked role.
type Identity struct {
	ID       int64
	Username string
}

// Config holds auth options
type Config interface {
	GetSigningKey() string
	GetTokenExpiration() int
}

// TokenService issues and validates session tokens
type TokenService interface {
	Generate(user *User) (string, error)
	SignClaims(claims *TokenClaims) (string, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// UserFinder is the read surface of the directory used by the
// authenticator, the guard, and the token middleware.
type UserFinder interface {
	FindByID(ctx context.Context, id int64) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
}

// UserStore extends UserFinder with account creation for registration.
type UserStore interface {
	UserFinder
	Create(ctx context.Context, candidate UserCandidate) (*User, error)
}

type defLogger struct{}

func (l defLogger) Info(format string, args ...any) {
	fmt.Printf("[INF] AUTH "+format+"\n", args...)
}

func (l defLogger) Debug(format string, args ...any) {
	fmt.Printf("[DBG] AUTH "+format+"\n", args...)
}

func (l defLogger) Error(format string, args ...any) {
	fmt.Printf("[ERR] AUTH "+format+"\n", args...)
}
