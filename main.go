package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/anveshm/notice-digest/internal/digest"
	"github.com/anveshm/notice-digest/internal/records"
	"github.com/anveshm/notice-digest/internal/store"
)

func main() {
	inputFlags := []cli.Flag{
		&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Usage: "notice file to summarize (.txt or .html)"},
		&cli.StringFlag{Name: "text", Aliases: []string{"t"}, Usage: "notice text passed inline"},
		&cli.StringFlag{Name: "mail", Usage: "mail message JSON file (MIME part tree)"},
		&cli.StringFlag{Name: "subject", Aliases: []string{"s"}, Usage: "subject line used as topic context"},
		&cli.StringFlag{Name: "config", Value: "config.yaml", Usage: "settings file (timezone, date order, limits)"},
		&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "log errors only"},
	}
	dbFlag := &cli.StringFlag{Name: "db", Value: store.DefaultDBName, Usage: "record log database path"}

	app := &cli.App{
		Name:  "notice-digest",
		Usage: "Summarize campus notices into short actionable digests",
		Commands: []*cli.Command{
			{
				Name:  "summarize",
				Usage: "Summarize one notice from a file, mail message, argument or stdin",
				Flags: append([]cli.Flag{
					&cli.BoolFlag{Name: "save", Usage: "append the summary to the record log"},
					&cli.BoolFlag{Name: "pretty", Usage: "print a terminal layout instead of JSON"},
					dbFlag,
				}, inputFlags...),
				Action: digest.SummarizeAction,
			},
			{
				Name:   "events",
				Usage:  "Extract calendar fields (date, time, venue) from one notice",
				Flags:  inputFlags,
				Action: digest.EventsAction,
			},
			{
				Name:  "history",
				Usage: "List saved summaries, newest first",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "limit", Aliases: []string{"n"}, Usage: "show at most this many records"},
					&cli.BoolFlag{Name: "json", Usage: "print records as JSON"},
					&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "log errors only"},
					dbFlag,
				},
				Action: records.HistoryAction,
			},
			{
				Name:  "clear",
				Usage: "Delete all saved summaries",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "log errors only"},
					dbFlag,
				},
				Action: records.ClearAction,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
