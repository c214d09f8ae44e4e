package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/Crazytieguy/type-harder/internal/dbcmd"
	"github.com/Crazytieguy/type-harder/internal/race"
	"github.com/Crazytieguy/type-harder/internal/scrape"
)

func main() {
	// Optional .env next to the binary; absence is fine.
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "type-harder",
		Usage: "scrape the sequences corpus and race against it",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Value: "config.yaml",
				Usage: "path to the YAML config file",
			},
			&cli.BoolFlag{
				Name:  "quiet",
				Usage: "only log errors",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "scrape",
				Usage: "manage the corpus scrape",
				Subcommands: []*cli.Command{
					{
						Name:   "init",
						Usage:  "fetch the table of contents and queue articles",
						Action: scrape.InitAction,
						Flags: []cli.Flag{
							&cli.IntFlag{
								Name:  "page-limit",
								Usage: "only queue the first N articles",
							},
						},
					},
					{
						Name:   "run",
						Usage:  "process pending articles in batches",
						Action: scrape.RunAction,
						Flags: []cli.Flag{
							&cli.BoolFlag{
								Name:  "once",
								Usage: "execute a single batch step and exit",
							},
						},
					},
					{
						Name:   "status",
						Usage:  "show the scrape queue by state",
						Action: scrape.StatusAction,
					},
					{
						Name:   "retry",
						Usage:  "re-queue all failed articles",
						Action: scrape.RetryAction,
					},
					{
						Name:      "rescrape",
						Usage:     "re-fetch one article by title",
						ArgsUsage: "<article title>",
						Action:    scrape.RescrapeAction,
					},
				},
			},
			{
				Name:   "race",
				Usage:  "start a practice race against a random paragraph",
				Action: race.PracticeAction,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "room",
						Usage: "room identifier to report progress to",
					},
				},
			},
			{
				Name:  "db",
				Usage: "inspect the local database",
				Subcommands: []*cli.Command{
					{
						Name:   "stats",
						Usage:  "paragraph and word totals per book",
						Action: dbcmd.StatsAction,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
