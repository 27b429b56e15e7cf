package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	"github.com/recipehub/recipehub/internal/migrations"
)

// RunMigrations applies the embedded goose migrations to the database.
func RunMigrations(ctx context.Context, db *sqlx.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	return goose.UpContext(ctx, db.DB, ".")
}
