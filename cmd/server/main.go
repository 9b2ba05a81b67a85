package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"
	"gorm.io/gorm"

	"github.com/silkline/catalog/app/config"
	"github.com/silkline/catalog/app/database"
	"github.com/silkline/catalog/app/logging"
	"github.com/silkline/catalog/app/server"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		boot := logging.New("info", false)
		boot.Fatal().Err(err).Msg("loading config")
	}
	log := logging.New(cfg.LogLevel, cfg.LogPretty)

	if err := newApp(cfg, log).Run(ctx, os.Args); err != nil {
		log.Fatal().Err(err).Msg("catalog exited")
	}
}

// newApp builds the command tree. Without a subcommand the catalog is reset,
// seeded and served.
func newApp(cfg config.Config, log zerolog.Logger) *cli.Command {
	return &cli.Command{
		Name:  "catalog",
		Usage: "Lingerie catalog query service",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "port",
				Usage: "HTTP listen port (overrides APP_PORT)",
				Value: cfg.Port,
			},
			&cli.BoolFlag{
				Name:  "keep-data",
				Usage: "skip dropping and reseeding the schema on start",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return withDB(ctx, cfg, log, func(db *gorm.DB) error {
				if c.Bool("keep-data") {
					if err := database.Migrate(ctx, db); err != nil {
						return err
					}
				} else if err := resetAndSeed(ctx, db, log); err != nil {
					return err
				}
				return server.Run(ctx, ":"+c.String("port"), server.NewRouter(db, log), log)
			})
		},
		Commands: []*cli.Command{
			{
				Name:  "migrate",
				Usage: "Drop and recreate the catalog schema",
				Action: func(ctx context.Context, c *cli.Command) error {
					return withDB(ctx, cfg, log, func(db *gorm.DB) error {
						if err := database.Reset(ctx, db); err != nil {
							return err
						}
						log.Info().Msg("migration complete")
						return nil
					})
				},
			},
			{
				Name:  "seed",
				Usage: "Drop, recreate and seed the catalog schema",
				Action: func(ctx context.Context, c *cli.Command) error {
					return withDB(ctx, cfg, log, func(db *gorm.DB) error {
						return resetAndSeed(ctx, db, log)
					})
				},
			},
		},
	}
}

func withDB(ctx context.Context, cfg config.Config, log zerolog.Logger, fn func(db *gorm.DB) error) error {
	db, err := database.Open(cfg.DBDriver, cfg.DBDSN, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Error().Err(err).Msg("closing database")
		}
	}()
	log.Info().Str("driver", cfg.DBDriver).Msg("database connected")

	return fn(db)
}

func resetAndSeed(ctx context.Context, db *gorm.DB, log zerolog.Logger) error {
	if err := database.Reset(ctx, db); err != nil {
		return err
	}
	if err := database.Seed(ctx, db); err != nil {
		return err
	}
	log.Info().Msg("catalog schema reset and seeded")
	return nil
}
