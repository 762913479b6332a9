package kitestat

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config carries the Kite credentials and the display defaults. It is
// built once at startup and passed down explicitly; nothing in the core
// reads ambient globals.
type Config struct {
	APIKey       string
	APISecret    string
	RequestToken string
	AccessToken  string

	SortBy      SortField
	SortOrder   SortOrder
	Debug       bool
	Export      bool
	SnapshotDir string
}

// FromEnv builds a Config from the KITE_* environment variables,
// loading a .env file first when one is present in the working
// directory.
func FromEnv() Config {
	// best effort: a missing .env just means plain environment
	_ = godotenv.Load()

	return Config{
		APIKey:       strings.TrimSpace(os.Getenv("KITE_API_KEY")),
		APISecret:    strings.TrimSpace(os.Getenv("KITE_API_SECRET")),
		RequestToken: strings.TrimSpace(os.Getenv("KITE_REQUEST_TOKEN")),
		AccessToken:  strings.TrimSpace(os.Getenv("KITE_ACCESS_TOKEN")),
		SortBy:       SortDayChange,
		SortOrder:    Descending,
		SnapshotDir:  "kite_snapshots",
	}
}

// ErrNoCredentials reports that neither an access token nor the triplet
// needed to generate one was provided. This is fatal: retrying will not
// make credentials appear.
var ErrNoCredentials = errors.New("provide KITE_ACCESS_TOKEN or (KITE_API_KEY, KITE_API_SECRET, KITE_REQUEST_TOKEN)")

// CheckCredentials verifies that a session can be established from this
// config.
func (c Config) CheckCredentials() error {
	if c.AccessToken != "" {
		return nil
	}
	if c.APIKey == "" || c.APISecret == "" || c.RequestToken == "" {
		return ErrNoCredentials
	}
	return nil
}
