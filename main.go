package main

import (
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sqrtxander/hangman/assets"
	"github.com/sqrtxander/hangman/internal/config"
	"github.com/sqrtxander/hangman/internal/game"
	"github.com/sqrtxander/hangman/internal/shell"
	"github.com/sqrtxander/hangman/internal/store"
	"github.com/sqrtxander/hangman/internal/ui"
	"github.com/sqrtxander/hangman/internal/words"
)

func main() {
	_ = godotenv.Load()
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	setupLogging(cfg)

	fsys := assets.Dir(cfg.Assets.Dir)
	if err := assets.Verify(fsys); err != nil {
		log.Fatal().Err(err).Str("dir", cfg.Assets.Dir).Msg("failed to load assets")
	}

	list, err := loadWords(cfg, fsys)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word list")
	}

	ledger, err := store.OpenSQLite(cfg.Ledger.DSN)
	if err != nil {
		log.Fatal().Err(err).Str("dsn", cfg.Ledger.DSN).Msg("failed to open round ledger")
	}
	defer ledger.Close()

	cues, err := ui.NewCues(fsys, log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load sounds")
	}

	sh := shell.New(game.New(list), cues, ledger, log.Logger, shell.WithMuted(cfg.Window.Muted))
	win, err := ui.NewWindow(sh, fsys)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load images")
	}

	log.Info().Int("words", list.Len()).Str("ledger", cfg.Ledger.DSN).Msg("starting hangman")
	if err := ui.Run(win, cfg.Window.Scale); err != nil {
		log.Error().Err(err).Msg("window exited")
	}
}

func setupLogging(cfg config.Config) {
	if lvl, err := zerolog.ParseLevel(cfg.Log.Level); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if cfg.Log.Format == "text" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
}

// loadWords prefers an explicit word file on disk over the asset bundle.
func loadWords(cfg config.Config, fsys fs.FS) (*words.List, error) {
	if p := cfg.Assets.WordsFile; p != "" {
		return words.LoadFile(os.DirFS(filepath.Dir(p)), filepath.Base(p))
	}
	return words.LoadFile(fsys, assets.WordList)
}
