package cli

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/groupbuy/core/pkg/cli/config"
	"github.com/groupbuy/core/pkg/infra/postgres"
)

func cmdMigrate() *cli.Command {
	var dbCfg config.Database

	return &cli.Command{
		Name:  "migrate",
		Usage: "Apply the database schema",
		Flags: dbCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			if dbCfg.DSN == "" {
				return goerr.New("database DSN is required")
			}

			db, err := postgres.New(ctx, dbCfg.DSN)
			if err != nil {
				return goerr.Wrap(err, "failed to connect to postgres")
			}
			defer db.Close()

			if err := db.Migrate(ctx); err != nil {
				return err
			}

			ctxlog.From(ctx).Info("Database schema applied")
			return nil
		},
	}
}
