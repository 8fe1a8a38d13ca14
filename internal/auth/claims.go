package auth

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenClaims is the claim set carried by a session token. It
// implements jwt.Claims directly instead of embedding
// jwt.RegisteredClaims so the subject serializes as a JSON number.
type TokenClaims struct {
	Sub      int64            `json:"sub"`
	Username string           `json:"username"`
	IssuedAt *jwt.NumericDate `json:"iat,omitempty"`
	Expiry   *jwt.NumericDate `json:"exp,omitempty"`
	TokenID  string           `json:"jti,omitempty"`
}

var _ jwt.Claims = (*TokenClaims)(nil)

func (c *TokenClaims) GetExpirationTime() (*jwt.NumericDate, error) {
	return c.Expiry, nil
}

func (c *TokenClaims) GetIssuedAt() (*jwt.NumericDate, error) {
	return c.IssuedAt, nil
}

func (c *TokenClaims) GetNotBefore() (*jwt.NumericDate, error) {
	return nil, nil
}

func (c *TokenClaims) GetIssuer() (string, error) {
	return "", nil
}

func (c *TokenClaims) GetSubject() (string, error) {
	return strconv.FormatInt(c.Sub, 10), nil
}

func (c *TokenClaims) GetAudience() (jwt.ClaimStrings, error) {
	return nil, nil
}

// UserID returns the numeric subject.
func (c *TokenClaims) UserID() int64 {
	return c.Sub
}

// Expires returns the expiry instant, zero when the claim is absent.
func (c *TokenClaims) Expires() time.Time {
	if c.Expiry == nil {
		return time.Time{}
	}
	return c.Expiry.Time
}

// Issued returns the issuance instant, zero when the claim is absent.
func (c *TokenClaims) Issued() time.Time {
	if c.IssuedAt == nil {
		return time.Time{}
	}
	return c.IssuedAt.Time
}

// ensureTokenID backfills a uuid jti. The id makes each issuance
// unique on the wire; nothing tracks it server side.
func ensureTokenID(claims *TokenClaims) {
	if claims.TokenID == "" {
		claims.TokenID = uuid.NewString()
	}
}
