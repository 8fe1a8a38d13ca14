// Package goods implements the priced items catalog the access guard
// protects.
package goods

import (
	"time"

	"github.com/uptrace/bun"
)

// Good is a catalog item.
type Good struct {
	bun.BaseModel `bun:"table:goods,alias:gds"`

	ID          int64     `bun:"id,pk,autoincrement" json:"id"`
	Name        string    `bun:"name,notnull" json:"name"`
	Description string    `bun:"description" json:"description,omitempty"`
	Price       float64   `bun:"price,notnull,default:0" json:"price"`
	CreatedAt   time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt   time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp" json:"updated_at"`
}

// GoodCandidate carries the attributes for a new catalog item.
type GoodCandidate struct {
	Name        string
	Description string
	Price       float64
}

// GoodChanges describes a partial update. Nil fields are left untouched.
type GoodChanges struct {
	Name        *string
	Description *string
	Price       *float64
}
