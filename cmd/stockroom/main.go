package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/goliatone/go-print"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"

	"github.com/stockroom-dev/stockroom/internal/auth"
	"github.com/stockroom-dev/stockroom/internal/config"
	"github.com/stockroom-dev/stockroom/internal/goods"
	"github.com/stockroom-dev/stockroom/internal/httpapi"
	"github.com/stockroom-dev/stockroom/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.New(cfg.LogLevel, "app")

	if cfg.Debug {
		fmt.Println(print.MaybePrettyJSON(cfg))
	}

	if cfg.UsingDefaultSigningKey() {
		logger.Warn("JWT_SECRET is not set, using the insecure default signing key")
	}

	ctx := context.Background()

	sqldb, err := sql.Open(sqliteshim.ShimName, cfg.DSN)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	db := bun.NewDB(sqldb, sqlitedialect.New())
	defer db.Close()

	if err := createSchema(ctx, db); err != nil {
		log.Fatalf("schema setup: %v", err)
	}

	directory := auth.NewDirectory(db).WithLogger(logger.Named("auth:directory"))
	tokens := auth.NewTokenServiceFromConfig(cfg, logger.Named("auth:tokens"))
	auther := auth.NewAuthenticator(directory, tokens).WithLogger(logger.Named("auth"))
	guard := auth.NewAccessGuard(directory).WithLogger(logger.Named("auth:guard"))
	catalog := goods.NewCatalog(db)

	if err := seedAdmin(ctx, cfg, directory, logger); err != nil {
		log.Fatalf("admin seed: %v", err)
	}

	srv := httpapi.New(httpapi.Dependencies{
		Directory: directory,
		Auther:    auther,
		Tokens:    tokens,
		Guard:     guard,
		Catalog:   catalog,
		Logger:    logger.Named("http"),
	})

	logger.Info("listening on %s", cfg.ListenAddr)
	if err := srv.Listen(cfg.ListenAddr); err != nil {
		log.Fatalf("serve: %v", err)
	}
}

func createSchema(ctx context.Context, db *bun.DB) error {
	models := []any{
		(*auth.User)(nil),
		(*goods.Good)(nil),
	}

	for _, model := range models {
		if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return err
		}
	}

	return nil
}

// seedAdmin bootstraps the administrator account named in the config.
// An existing username is left untouched so restarts are idempotent.
func seedAdmin(ctx context.Context, cfg *config.Config, directory *auth.Directory, logger *logging.Logger) error {
	if cfg.Admin.Username == "" {
		return nil
	}

	existing, err := directory.FindByUsername(ctx, cfg.Admin.Username)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	if _, err := directory.Create(ctx, auth.UserCandidate{
		Username: cfg.Admin.Username,
		Email:    cfg.Admin.Email,
		Password: cfg.Admin.Password,
		Role:     auth.RoleAdmin,
	}); err != nil {
		return err
	}

	logger.Info("seeded administrator account %s", cfg.Admin.Username)
	return nil
}
