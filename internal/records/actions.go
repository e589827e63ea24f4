// Package records holds the CLI actions over the saved-summary log.
package records

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/anveshm/notice-digest/internal/render"
	"github.com/anveshm/notice-digest/internal/store"
)

func newLogger(c *cli.Context) *slog.Logger {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}

// HistoryAction lists saved summaries, newest first.
func HistoryAction(c *cli.Context) error {
	logger := newLogger(c)

	db, err := store.Open(c.String("db"))
	if err != nil {
		logger.Error("failed to open record log", "error", err)
		os.Exit(2)
	}
	defer db.Close()

	records, err := db.History(c.Int("limit"))
	if err != nil {
		logger.Error("failed to list saved summaries", "error", err)
		os.Exit(2)
	}

	if c.Bool("json") {
		jsonData, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal records: %w", err)
		}
		fmt.Println(string(jsonData))
		return nil
	}

	fmt.Print(render.HistoryTable(records))
	return nil
}

// ClearAction deletes the saved-summary log.
func ClearAction(c *cli.Context) error {
	logger := newLogger(c)

	db, err := store.Open(c.String("db"))
	if err != nil {
		logger.Error("failed to open record log", "error", err)
		os.Exit(2)
	}
	defer db.Close()

	n, err := db.Clear()
	if err != nil {
		logger.Error("failed to clear record log", "error", err)
		os.Exit(2)
	}

	fmt.Printf("Cleared %d saved summaries\n", n)
	return nil
}
