// Package digest holds the CLI actions that turn a notice into a summary.
package digest

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/anveshm/notice-digest/internal/extract"
	"github.com/anveshm/notice-digest/internal/mailbody"
	"github.com/anveshm/notice-digest/internal/render"
	"github.com/anveshm/notice-digest/internal/store"
	"github.com/anveshm/notice-digest/models"
	"github.com/anveshm/notice-digest/pkg/details"
	"github.com/anveshm/notice-digest/pkg/summary"
)

func newLogger(c *cli.Context) *slog.Logger {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}

// input is one notice body plus where it came from.
type input struct {
	Text    string
	Subject string
	Source  string
}

// readInput resolves the notice body from --mail, --file, --text or stdin,
// in that order.
func readInput(c *cli.Context) (input, error) {
	if c.IsSet("mail") {
		path := c.String("mail")
		raw, err := os.ReadFile(path)
		if err != nil {
			return input{}, fmt.Errorf("failed to read mail message: %w", err)
		}
		var msg mailbody.Message
		if err := json.Unmarshal(raw, &msg); err != nil {
			return input{}, fmt.Errorf("failed to decode mail message: %w", err)
		}
		body, err := mailbody.FindBody(msg)
		if err != nil {
			return input{}, fmt.Errorf("failed to pick mail body: %w", err)
		}
		return input{Text: body, Subject: msg.Subject, Source: path}, nil
	}

	if c.IsSet("file") {
		path := c.String("file")
		text, err := extract.FromFile(path)
		if err != nil {
			return input{}, err
		}
		subject := c.String("subject")
		if subject == "" {
			subject = filepath.Base(path)
		}
		return input{Text: text, Subject: subject, Source: path}, nil
	}

	if c.IsSet("text") {
		return input{Text: c.String("text"), Subject: c.String("subject"), Source: "arg"}, nil
	}

	raw, err := io.ReadAll(os.Stdin)
	if err != nil {
		return input{}, fmt.Errorf("failed to read stdin: %w", err)
	}
	return input{Text: string(raw), Subject: c.String("subject"), Source: "stdin"}, nil
}

// withSubjectContext prefixes the subject so topic keywords can come from it
// even when the body never repeats them.
func withSubjectContext(in input) string {
	subject := strings.TrimSpace(in.Subject)
	if subject == "" {
		return in.Text
	}
	return subject + ". " + in.Text
}

// SummarizeAction reads one notice, summarizes it, and prints the result as
// JSON (or a terminal layout with --pretty). With --save the summary is also
// appended to the record log.
func SummarizeAction(c *cli.Context) error {
	logger := newLogger(c)

	settings, err := models.LoadSettings(c.String("config"))
	if err != nil {
		logger.Error("failed to load settings", "error", err)
		os.Exit(2)
	}

	in, err := readInput(c)
	if err != nil {
		logger.Error("failed to read notice", "error", err)
		os.Exit(2)
	}

	s := summary.New(settings)
	text := withSubjectContext(in)
	res := s.Summarize(text)
	logger.Info("summarized notice", "source", in.Source, "bullets", len(res.Bullets), "links", len(res.Links))

	if c.Bool("save") {
		details := s.EventDetails(text)
		rec := models.NoticeRecord{
			Source:    in.Source,
			Subject:   in.Subject,
			Bullets:   res.Bullets,
			Links:     res.Links,
			EventDate: res.Date,
			EventTime: res.Time,
			Venue:     details.Venue,
			Language:  extract.Language(in.Text),
		}

		db, err := store.Open(c.String("db"))
		if err != nil {
			logger.Error("failed to open record log", "error", err)
			os.Exit(2)
		}
		defer db.Close()

		id, err := db.Append(rec)
		if err != nil {
			logger.Error("failed to save summary", "error", err)
			os.Exit(2)
		}
		logger.Info("saved summary", "id", id, "db", db.Path())
	}

	if c.Bool("pretty") {
		out := render.Summary(res)
		emails, phones := details.Contacts(text)
		if len(emails)+len(phones) > 0 {
			rows := [][]string{{"Contact", "Value"}}
			for _, e := range emails {
				rows = append(rows, []string{"Email", e})
			}
			for _, p := range phones {
				rows = append(rows, []string{"Phone", p})
			}
			out += "\n" + render.Table(rows)
		}
		fmt.Print(out)
		return nil
	}

	jsonData, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}
	fmt.Println(string(jsonData))
	return nil
}

// EventsAction extracts just the calendar fields of a notice.
func EventsAction(c *cli.Context) error {
	logger := newLogger(c)

	settings, err := models.LoadSettings(c.String("config"))
	if err != nil {
		logger.Error("failed to load settings", "error", err)
		os.Exit(2)
	}

	in, err := readInput(c)
	if err != nil {
		logger.Error("failed to read notice", "error", err)
		os.Exit(2)
	}

	details := summary.New(settings).EventDetails(withSubjectContext(in))

	jsonData, err := json.MarshalIndent(details, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal event details: %w", err)
	}
	fmt.Println(string(jsonData))
	return nil
}
