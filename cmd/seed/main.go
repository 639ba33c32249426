// Command seed loads scenario fixtures into the database.
//
// Every *.json file in the data directory is one scenario named after the
// file. A load replaces all content tables; rankings are wiped too unless
// --preserve-rankings is given.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/osse101/LoveSim_Go/internal/bootstrap"
	"github.com/osse101/LoveSim_Go/internal/config"
	"github.com/osse101/LoveSim_Go/internal/database"
	"github.com/osse101/LoveSim_Go/internal/domain"
	"github.com/osse101/LoveSim_Go/internal/seed"
	"github.com/osse101/LoveSim_Go/internal/validation"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	dataDirFlag := &cli.StringFlag{
		Name:    "data-dir",
		Aliases: []string{"d"},
		Usage:   "directory containing scenario fixtures",
		Value:   cfg.DataDir,
		EnvVars: []string{"DATA_DIR"},
	}
	verboseFlag := &cli.BoolFlag{
		Name:    "verbose",
		Aliases: []string{"v"},
		Usage:   "debug logging",
	}

	app := &cli.App{
		Name:  "seed",
		Usage: "load scenario fixtures into the LoveSim database",
		Flags: []cli.Flag{verboseFlag},
		Before: func(c *cli.Context) error {
			initLogger(cfg, c.Bool("verbose"))
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "load",
				Usage: "replace stored content with the fixtures (destructive)",
				Flags: []cli.Flag{
					dataDirFlag,
					&cli.BoolFlag{
						Name:    "preserve-rankings",
						Usage:   "keep existing leaderboard rows",
						Value:   cfg.SeedPreserveRankings,
						EnvVars: []string{"SEED_PRESERVE_RANKINGS"},
					},
				},
				Action: func(c *cli.Context) error {
					return runLoad(c, cfg)
				},
			},
			{
				Name:  "validate",
				Usage: "check fixtures against the scenario schema without touching the database",
				Flags: []cli.Flag{dataDirFlag},
				Action: func(c *cli.Context) error {
					return runValidate(c)
				},
			},
			{
				Name:  "status",
				Usage: "print the schema migration status",
				Action: func(c *cli.Context) error {
					pool, err := database.NewPool(c.Context, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
					if err != nil {
						return err
					}
					defer pool.Close()
					return database.MigrationStatus(c.Context, pool)
				},
			},
		},
		DefaultCommand: "load",
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func runLoad(c *cli.Context, cfg *config.Config) error {
	pool, err := database.NewPool(c.Context, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := database.Migrate(c.Context, pool); err != nil {
		return err
	}

	repos := bootstrap.InitializeRepositories(pool)
	svc := seed.NewService(repos.Seed, validation.NewSchemaValidator())

	report, err := svc.Reload(c.Context, c.String("data-dir"), domain.ReloadOptions{
		PreserveRankings: c.Bool("preserve-rankings"),
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "Loaded %d scenarios, %d scenes, %d choices from %d files\n",
		report.ScenariosLoaded, report.ScenesLoaded, report.ChoicesLoaded, report.FilesRead)
	for _, f := range report.FilesFailed {
		fmt.Fprintf(c.App.ErrWriter, "  skipped file %s\n", f.Error())
	}
	for _, name := range report.Failed {
		fmt.Fprintf(c.App.ErrWriter, "  skipped scenario %s (store rejected it)\n", name)
	}
	if report.RankingsCleared {
		fmt.Fprintln(c.App.Writer, "Rankings cleared")
	}
	return nil
}

func runValidate(c *cli.Context) error {
	svc := seed.NewService(nil, validation.NewSchemaValidator())

	scenarios, failed, err := svc.LoadDir(c.Context, c.String("data-dir"))
	if err != nil {
		return err
	}

	for _, sc := range scenarios {
		fmt.Fprintf(c.App.Writer, "ok     %s (%q, %d scenes)\n", sc.Name, sc.Title, len(sc.Scenes))
	}
	for _, f := range failed {
		fmt.Fprintf(c.App.Writer, "FAIL   %s\n", f.Error())
	}
	if len(failed) > 0 {
		return cli.Exit(fmt.Sprintf("%d invalid fixture(s)", len(failed)), 1)
	}
	return nil
}
