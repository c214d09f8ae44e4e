// Package scrape wires the CLI scrape commands to the orchestrator.
package scrape

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/Crazytieguy/type-harder/internal/common"
	"github.com/Crazytieguy/type-harder/models"
	"github.com/Crazytieguy/type-harder/pkg/scraper"
)

// InitAction fetches the table of contents and queues every discovered
// article URL. Safe to re-run: completed articles are not re-queued.
func InitAction(c *cli.Context) error {
	logger := common.NewLogger(c)
	cfg, database, err := common.Setup(c)
	if err != nil {
		return err
	}
	defer database.Close()

	if c.IsSet("page-limit") {
		cfg.PageLimit = c.Int("page-limit")
	}

	s, err := scraper.New(logger, cfg, database)
	if err != nil {
		return err
	}

	queued, err := s.Init(c.Context)
	if err != nil {
		return err
	}
	fmt.Printf("Queued %d articles\n", queued)
	return nil
}

// RunAction processes pending work. With --once it executes a single batch
// step and exits; otherwise it keeps stepping until nothing is pending.
// Either way the run is resumable: state lives in the database.
func RunAction(c *cli.Context) error {
	logger := common.NewLogger(c)
	cfg, database, err := common.Setup(c)
	if err != nil {
		return err
	}
	defer database.Close()

	s, err := scraper.New(logger, cfg, database)
	if err != nil {
		return err
	}

	if c.Bool("once") {
		n, err := s.RunBatch(c.Context)
		if err != nil {
			return err
		}
		fmt.Printf("Processed batch of %d\n", n)
		return nil
	}

	if err := s.Run(c.Context); err != nil {
		return err
	}
	return StatusAction(c)
}

// StatusAction prints the scrape queue broken down by lifecycle state.
func StatusAction(c *cli.Context) error {
	_, database, err := common.Setup(c)
	if err != nil {
		return err
	}
	defer database.Close()

	counts, err := database.CountByStatus()
	if err != nil {
		return err
	}

	total := 0
	for _, status := range []models.ProgressStatus{
		models.StatusPending, models.StatusProcessing, models.StatusCompleted, models.StatusFailed,
	} {
		fmt.Printf("%-12s %d\n", status, counts[status])
		total += counts[status]
	}
	fmt.Printf("%-12s %d\n", "total", total)
	return nil
}

// RetryAction re-queues every failed URL.
func RetryAction(c *cli.Context) error {
	_, database, err := common.Setup(c)
	if err != nil {
		return err
	}
	defer database.Close()

	n, err := database.ResetFailed()
	if err != nil {
		return err
	}
	fmt.Printf("Reset %d failed articles to pending\n", n)
	return nil
}

// RescrapeAction re-fetches one article by title, replacing its paragraphs
// in place.
func RescrapeAction(c *cli.Context) error {
	title := c.Args().First()
	if title == "" {
		return fmt.Errorf("usage: type-harder scrape rescrape <article title>")
	}

	logger := common.NewLogger(c)
	cfg, database, err := common.Setup(c)
	if err != nil {
		return err
	}
	defer database.Close()

	s, err := scraper.New(logger, cfg, database)
	if err != nil {
		return err
	}

	if err := s.Rescrape(c.Context, title); err != nil {
		return err
	}
	fmt.Printf("Re-scraped %q\n", title)
	return nil
}
