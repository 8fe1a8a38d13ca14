package auth

import (
	"context"

	goerrors "github.com/goliatone/go-errors"
)

// Auther orchestrates registration and login against the directory and
// the token service.
type Auther struct {
	store  UserStore
	tokens TokenService
	logger Logger
}

// NewAuthenticator creates an Auther over the given store and token
// service.
func NewAuthenticator(store UserStore, tokens TokenService) *Auther {
	return &Auther{
		store:  store,
		tokens: tokens,
		logger: defLogger{},
	}
}

func (a *Auther) WithLogger(logger Logger) *Auther {
	if logger != nil {
		a.logger = logger
	}
	return a
}

// Register creates the account and immediately issues a session token
// for it. Conflict and validation errors from the directory pass
// through untouched.
func (a *Auther) Register(ctx context.Context, candidate UserCandidate) (string, error) {
	user, err := a.store.Create(ctx, candidate)
	if err != nil {
		return "", err
	}

	token, err := a.tokens.Generate(user)
	if err != nil {
		a.logger.Error("Register token generation error: %v", err)
		return "", err
	}

	return token, nil
}

// Login verifies the credentials and issues a session token. An
// unknown username and a wrong password both return
// ErrMismatchedHashAndPassword; callers cannot probe for accounts.
func (a *Auther) Login(ctx context.Context, username, password string) (string, error) {
	user, err := a.store.FindByUsername(ctx, username)
	if err != nil {
		return "", goerrors.Wrap(err, goerrors.CategoryInternal, "failed to retrieve user during login")
	}

	if user == nil {
		return "", ErrMismatchedHashAndPassword
	}

	if err := ComparePasswordAndHash(password, user.PasswordHash); err != nil {
		a.logger.Debug("Login password mismatch for username=%s", username)
		return "", ErrMismatchedHashAndPassword
	}

	token, err := a.tokens.Generate(user)
	if err != nil {
		a.logger.Error("Login token generation error: %v", err)
		return "", err
	}

	return token, nil
}
