package auth

import (
	"net/http"

	"github.com/goliatone/go-errors"
)

const (
	TextCodeInvalidCredentials = "auth_invalid_credentials"
	TextCodeUsernameTaken      = "auth_username_taken"
	TextCodeEmailTaken         = "auth_email_taken"
	TextCodeUserNotFound       = "auth_user_not_found"
	TextCodeTokenExpired       = "auth_token_expired"
	TextCodeTokenMalformed     = "auth_token_malformed"
	TextCodeTokenMissing       = "auth_token_missing"
	TextCodeEmptyPassword      = "auth_empty_password"
	TextCodeForbidden          = "auth_insufficient_role"
)

// ErrMismatchedHashAndPassword covers every credential failure on the
// login path. An unknown username and a wrong password are
// indistinguishable to callers.
var ErrMismatchedHashAndPassword = errors.New("Invalid credentials", errors.CategoryAuth).
	WithTextCode(TextCodeInvalidCredentials).
	WithCode(errors.CodeUnauthorized)

// ErrUsernameTaken is returned when registration hits an existing username.
var ErrUsernameTaken = errors.New("Username already taken", errors.CategoryConflict).
	WithTextCode(TextCodeUsernameTaken).
	WithCode(errors.CodeConflict)

// ErrEmailTaken is returned when registration hits an existing email.
var ErrEmailTaken = errors.New("Email already registered", errors.CategoryConflict).
	WithTextCode(TextCodeEmailTaken).
	WithCode(errors.CodeConflict)

// ErrUserNotFound is returned by id lookups for absent records.
var ErrUserNotFound = errors.New("user not found", errors.CategoryNotFound).
	WithTextCode(TextCodeUserNotFound).
	WithCode(errors.CodeNotFound)

// ErrTokenExpired is returned for tokens past their exp claim.
var ErrTokenExpired = errors.New("token is expired", errors.CategoryAuth).
	WithTextCode(TextCodeTokenExpired).
	WithCode(errors.CodeUnauthorized)

// ErrTokenMalformed covers every other token validation failure,
// bad signature and wrong algorithm included.
var ErrTokenMalformed = errors.New("token is malformed", errors.CategoryAuth).
	WithTextCode(TextCodeTokenMalformed).
	WithCode(errors.CodeUnauthorized)

// ErrTokenMissing is returned when the Authorization header carries no
// bearer token.
var ErrTokenMissing = errors.New("missing or malformed bearer token", errors.CategoryAuth).
	WithTextCode(TextCodeTokenMissing).
	WithCode(errors.CodeUnauthorized)

// ErrForbidden is the guard denial surfaced by RequireRoles.
var ErrForbidden = errors.New("Forbidden", errors.CategoryAuthz).
	WithTextCode(TextCodeForbidden).
	WithCode(errors.CodeForbidden)

// ErrNoEmptyString rejects empty plaintext before hashing.
var ErrNoEmptyString = errors.New("password must not be empty", errors.CategoryValidation).
	WithTextCode(TextCodeEmptyPassword).
	WithCode(errors.CodeBadRequest)

// HTTPStatus maps an error to its response status. Rich errors carry
// an explicit code or fall back to their category; anything else is a
// server error.
func HTTPStatus(err error) int {
	var richErr *errors.Error
	if !errors.As(err, &richErr) {
		return http.StatusInternalServerError
	}

	if richErr.Code > 0 {
		return richErr.Code
	}

	switch richErr.Category {
	case errors.CategoryValidation, errors.CategoryBadInput:
		return http.StatusBadRequest
	case errors.CategoryAuth:
		return http.StatusUnauthorized
	case errors.CategoryAuthz:
		return http.StatusForbidden
	case errors.CategoryNotFound:
		return http.StatusNotFound
	case errors.CategoryConflict:
		return http.StatusConflict
	case errors.CategoryRateLimit:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
