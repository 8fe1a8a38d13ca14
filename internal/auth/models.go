package auth

import (
	"time"

	"github.com/uptrace/bun"
)

// User is the persisted account record. The password hash is opaque to
// every caller and never serialized.
type User struct {
	bun.BaseModel `bun:"table:users,alias:usr"`

	ID           int64     `bun:"id,pk,autoincrement" json:"id"`
	Username     string    `bun:"username,notnull,unique" json:"username"`
	Email        string    `bun:"email,notnull,unique" json:"email"`
	PasswordHash string    `bun:"password_hash,notnull" json:"-"`
	Role         Role      `bun:"role,notnull" json:"role"`
	CreatedAt    time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt    time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp" json:"updated_at"`
}

// UserCandidate carries the attributes for a new account. Password is
// plaintext here and only here; the directory hashes it before the
// record exists.
type UserCandidate struct {
	Username string
	Email    string
	Password string
	Role     Role
}

// UserChanges describes a partial update. Nil fields are left untouched.
type UserChanges struct {
	Username *string
	Email    *string
	Password *string
}
