package goods

import "github.com/goliatone/go-errors"

const (
	TextCodeGoodNotFound = "goods_not_found"
)

// ErrGoodNotFound is returned by id lookups for absent items.
var ErrGoodNotFound = errors.New("good not found", errors.CategoryNotFound).
	WithTextCode(TextCodeGoodNotFound).
	WithCode(errors.CodeNotFound)
