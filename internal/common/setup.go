// Package common holds shared CLI plumbing: logger construction and
// config/database setup.
package common

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/Crazytieguy/type-harder/models"
	"github.com/Crazytieguy/type-harder/pkg/db"
)

// NewLogger builds the JSON logger every command uses. --quiet drops
// everything below error.
func NewLogger(c *cli.Context) *slog.Logger {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}

// Setup loads the config file named by --config and opens the database,
// honoring the db_path override.
func Setup(c *cli.Context) (*models.Config, *db.DB, error) {
	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	var database *db.DB
	if cfg.DBPath != "" {
		database, err = db.OpenAt(cfg.DBPath)
	} else {
		database, err = db.Open()
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}
	return cfg, database, nil
}
