package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
)

// Config describes all runtime settings for the game.
//
// Loaded once in main from the environment (optionally seeded from a .env
// file) and passed down explicitly.
type Config struct {
	Log struct {
		Level  string // zerolog level name
		Format string // text|json
	}

	Assets struct {
		Dir       string // overrides the embedded assets when set
		WordsFile string // word list on disk; empty uses word_list.txt from the assets
	}

	Ledger struct {
		DSN string // SQLite DSN for finished rounds
	}

	Window struct {
		Scale float64 // 1..3
		Muted bool    // start with sound off
	}
}

// DefaultDSN keeps the ledger in memory so nothing outlives the process.
const DefaultDSN = ":memory:"

func LoadFromEnv() (Config, error) {
	var c Config

	c.Log.Level = envString("LOG_LEVEL", "info")
	c.Log.Format = envString("LOG_FORMAT", "text")

	c.Assets.Dir = envString("HANGMAN_ASSETS_DIR", "")
	c.Assets.WordsFile = envString("HANGMAN_WORDS_FILE", "")

	c.Ledger.DSN = envString("HANGMAN_DB", DefaultDSN)

	c.Window.Scale = envFloat("HANGMAN_SCALE", 1)
	c.Window.Muted = envBool("HANGMAN_MUTED", false)

	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) Validate() error {
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("unsupported LOG_FORMAT=%q (want text|json)", c.Log.Format)
	}
	if c.Ledger.DSN == "" {
		return errors.New("HANGMAN_DB is empty")
	}
	if c.Window.Scale < 1 || c.Window.Scale > 3 {
		return fmt.Errorf("HANGMAN_SCALE=%v out of range (1..3)", c.Window.Scale)
	}
	return nil
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func envFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err == nil {
			return f
		}
	}
	return def
}
