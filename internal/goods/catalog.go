package goods

import (
	"context"
	"database/sql"
	"errors"
	"time"

	goerrors "github.com/goliatone/go-errors"
	"github.com/uptrace/bun"
)

// Catalog is the bun backed goods store.
type Catalog struct {
	db *bun.DB
}

// NewCatalog creates a Catalog on the given bun handle.
func NewCatalog(db *bun.DB) *Catalog {
	return &Catalog{db: db}
}

// Create persists a new catalog item and returns it with its assigned id.
func (c *Catalog) Create(ctx context.Context, candidate GoodCandidate) (*Good, error) {
	good := &Good{
		Name:        candidate.Name,
		Description: candidate.Description,
		Price:       candidate.Price,
	}

	if _, err := c.db.NewInsert().Model(good).Exec(ctx); err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to persist good")
	}

	return good, nil
}

// FindByID returns the item or ErrGoodNotFound.
func (c *Catalog) FindByID(ctx context.Context, id int64) (*Good, error) {
	good := new(Good)

	err := c.db.NewSelect().
		Model(good).
		Where("?TableAlias.id = ?", id).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGoodNotFound
		}
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to retrieve good")
	}

	return good, nil
}

// FindAll returns every item in insertion order.
func (c *Catalog) FindAll(ctx context.Context) ([]*Good, error) {
	var items []*Good

	err := c.db.NewSelect().
		Model(&items).
		Order("id ASC").
		Scan(ctx)
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to list goods")
	}

	return items, nil
}

// Update overwrites the fields present in changes.
func (c *Catalog) Update(ctx context.Context, id int64, changes GoodChanges) (*Good, error) {
	good, err := c.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if changes.Name != nil {
		good.Name = *changes.Name
	}
	if changes.Description != nil {
		good.Description = *changes.Description
	}
	if changes.Price != nil {
		good.Price = *changes.Price
	}
	good.UpdatedAt = time.Now()

	if _, err := c.db.NewUpdate().Model(good).WherePK().Exec(ctx); err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to update good")
	}

	return good, nil
}

// Delete removes the item, or ErrGoodNotFound when it is absent.
func (c *Catalog) Delete(ctx context.Context, id int64) error {
	good, err := c.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if _, err := c.db.NewDelete().Model(good).WherePK().Exec(ctx); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to delete good")
	}

	return nil
}
