// Package race wires the practice-race command to the TUI.
package race

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v2"

	"github.com/Crazytieguy/type-harder/internal/common"
	"github.com/Crazytieguy/type-harder/internal/race/tui"
	"github.com/Crazytieguy/type-harder/pkg/db"
	"github.com/Crazytieguy/type-harder/pkg/detector"
	"github.com/Crazytieguy/type-harder/pkg/race"
)

// PracticeAction starts a practice race against a random stored paragraph.
// With --room and a configured race endpoint, word completions are reported
// to the room subsystem as the racer advances.
func PracticeAction(c *cli.Context) error {
	cfg, database, err := common.Setup(c)
	if err != nil {
		return err
	}
	defer database.Close()

	paragraph, err := database.RandomParagraph(detector.DefaultLanguage)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return fmt.Errorf("no paragraphs available; run: type-harder scrape init && type-harder scrape run")
		}
		return err
	}

	room := c.String("room")
	var reporter race.ProgressReporter = race.NopReporter{}
	if room != "" && cfg.RaceEndpoint != "" {
		reporter = race.NewHTTPReporter(cfg.RaceEndpoint)
	}

	program := tea.NewProgram(tui.NewModel(*paragraph, reporter, room))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("race UI failed: %w", err)
	}
	return nil
}
