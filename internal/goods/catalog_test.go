package goods_test

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"

	"github.com/stockroom-dev/stockroom/internal/goods"
)

func newTestCatalog(t *testing.T) *goods.Catalog {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	sqldb, err := sql.Open(sqliteshim.ShimName, dsn)
	require.NoError(t, err)
	sqldb.SetMaxOpenConns(1)

	db := bun.NewDB(sqldb, sqlitedialect.New())
	t.Cleanup(func() { db.Close() })

	_, err = db.NewCreateTable().
		Model((*goods.Good)(nil)).
		IfNotExists().
		Exec(context.Background())
	require.NoError(t, err)

	return goods.NewCatalog(db)
}

func TestCatalog_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	catalog := newTestCatalog(t)

	created, err := catalog.Create(ctx, goods.GoodCandidate{
		Name:        "Widget",
		Description: "A fine widget",
		Price:       9.99,
	})
	require.NoError(t, err)
	assert.Greater(t, created.ID, int64(0))

	found, err := catalog.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Widget", found.Name)
	assert.Equal(t, 9.99, found.Price)

	_, err = catalog.FindByID(ctx, 9999)
	assert.Equal(t, goods.ErrGoodNotFound, err)
}

func TestCatalog_FindAll(t *testing.T) {
	ctx := context.Background()
	catalog := newTestCatalog(t)

	for i, name := range []string{"one", "two", "three"} {
		_, err := catalog.Create(ctx, goods.GoodCandidate{
			Name:  name,
			Price: float64(i),
		})
		require.NoError(t, err)
	}

	items, err := catalog.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "one", items[0].Name)
	assert.Equal(t, "three", items[2].Name)
}

func TestCatalog_Update(t *testing.T) {
	ctx := context.Background()
	catalog := newTestCatalog(t)

	created, err := catalog.Create(ctx, goods.GoodCandidate{Name: "Widget", Price: 1})
	require.NoError(t, err)

	price := 2.5
	updated, err := catalog.Update(ctx, created.ID, goods.GoodChanges{Price: &price})
	require.NoError(t, err)
	assert.Equal(t, 2.5, updated.Price)
	assert.Equal(t, "Widget", updated.Name)

	name := "Gadget"
	_, err = catalog.Update(ctx, 9999, goods.GoodChanges{Name: &name})
	assert.Equal(t, goods.ErrGoodNotFound, err)
}

func TestCatalog_Delete(t *testing.T) {
	ctx := context.Background()
	catalog := newTestCatalog(t)

	created, err := catalog.Create(ctx, goods.GoodCandidate{Name: "Widget", Price: 1})
	require.NoError(t, err)

	require.NoError(t, catalog.Delete(ctx, created.ID))

	_, err = catalog.FindByID(ctx, created.ID)
	assert.Equal(t, goods.ErrGoodNotFound, err)

	assert.Equal(t, goods.ErrGoodNotFound, catalog.Delete(ctx, created.ID))
}
