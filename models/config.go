// Package models defines data structures shared across the summarization
// pipeline and the CLI.
package models

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DateOrder controls how ambiguous numeric dates are read.
type DateOrder string

const (
	DateOrderDMY DateOrder = "dmy"
	DateOrderMDY DateOrder = "mdy"
	DateOrderYMD DateOrder = "ymd"
)

// Settings holds the tunable knobs of the extraction engine. All values
// have working defaults; a config file is optional.
type Settings struct {
	Timezone     string    `yaml:"timezone"`      // IANA name used as the parse reference zone
	DateOrder    DateOrder `yaml:"date_order"`    // dmy | mdy | ymd
	PreferFuture bool      `yaml:"prefer_future"` // resolve yearless dates forward
	TopKeywords  int       `yaml:"top_keywords"`  // keyword selection cap
	FeeWindow    int       `yaml:"fee_window"`    // chars of context checked around a currency match
	MaxBullets   int       `yaml:"max_bullets"`   // hard cap on summary bullets
}

// DefaultSettings mirrors the constants the engine shipped with.
func DefaultSettings() Settings {
	return Settings{
		Timezone:     "Asia/Kolkata",
		DateOrder:    DateOrderDMY,
		PreferFuture: true,
		TopKeywords:  5,
		FeeWindow:    25,
		MaxBullets:   8,
	}
}

// LoadSettings reads a YAML settings file, filling any omitted field with
// its default. A missing file is not an error; defaults are returned.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, fmt.Errorf("failed to read settings: %w", err)
	}

	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("failed to parse settings: %w", err)
	}

	if err := s.Validate(); err != nil {
		return s, err
	}
	return s, nil
}

// Validate checks the loaded values and re-applies defaults to zeroed
// numeric fields so a partial config file stays usable.
func (s *Settings) Validate() error {
	if s.Timezone == "" {
		s.Timezone = DefaultSettings().Timezone
	}
	if _, err := time.LoadLocation(s.Timezone); err != nil {
		return fmt.Errorf("invalid timezone %q: %w", s.Timezone, err)
	}

	switch s.DateOrder {
	case DateOrderDMY, DateOrderMDY, DateOrderYMD:
	case "":
		s.DateOrder = DateOrderDMY
	default:
		return fmt.Errorf("invalid date_order %q (want dmy, mdy, or ymd)", s.DateOrder)
	}

	if s.TopKeywords <= 0 {
		s.TopKeywords = DefaultSettings().TopKeywords
	}
	if s.FeeWindow <= 0 {
		s.FeeWindow = DefaultSettings().FeeWindow
	}
	if s.MaxBullets <= 0 {
		s.MaxBullets = DefaultSettings().MaxBullets
	}
	return nil
}

// Location resolves the configured timezone. Validate must have accepted
// the settings first.
func (s Settings) Location() *time.Location {
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
