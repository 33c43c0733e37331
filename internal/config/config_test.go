package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnv_Defaults(t *testing.T) {
	for _, k := range []string{"LOG_LEVEL", "LOG_FORMAT", "HANGMAN_ASSETS_DIR", "HANGMAN_WORDS_FILE", "HANGMAN_DB", "HANGMAN_SCALE", "HANGMAN_MUTED"} {
		t.Setenv(k, "")
	}

	c, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "info", c.Log.Level)
	assert.Equal(t, "text", c.Log.Format)
	assert.Equal(t, "", c.Assets.Dir)
	assert.Equal(t, "", c.Assets.WordsFile)
	assert.Equal(t, DefaultDSN, c.Ledger.DSN)
	assert.Equal(t, 1.0, c.Window.Scale)
	assert.False(t, c.Window.Muted)
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("HANGMAN_ASSETS_DIR", "/opt/hangman")
	t.Setenv("HANGMAN_WORDS_FILE", "/tmp/words.txt")
	t.Setenv("HANGMAN_DB", "./data/rounds.db")
	t.Setenv("HANGMAN_SCALE", "2")
	t.Setenv("HANGMAN_MUTED", "true")

	c, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "debug", c.Log.Level)
	assert.Equal(t, "json", c.Log.Format)
	assert.Equal(t, "/opt/hangman", c.Assets.Dir)
	assert.Equal(t, "/tmp/words.txt", c.Assets.WordsFile)
	assert.Equal(t, "./data/rounds.db", c.Ledger.DSN)
	assert.Equal(t, 2.0, c.Window.Scale)
	assert.True(t, c.Window.Muted)
}

func TestLoadFromEnv_Invalid(t *testing.T) {
	cases := []struct {
		key, val string
	}{
		{"LOG_FORMAT", "xml"},
		{"HANGMAN_SCALE", "0.5"},
		{"HANGMAN_SCALE", "4"},
	}
	for _, tc := range cases {
		t.Run(tc.key+"="+tc.val, func(t *testing.T) {
			t.Setenv("LOG_FORMAT", "text")
			t.Setenv("HANGMAN_SCALE", "1")
			t.Setenv(tc.key, tc.val)
			_, err := LoadFromEnv()
			assert.Error(t, err)
		})
	}
}

func TestLoadFromEnv_BadNumbersFallBack(t *testing.T) {
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("HANGMAN_SCALE", "big")
	t.Setenv("HANGMAN_MUTED", "maybe")

	c, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, 1.0, c.Window.Scale)
	assert.False(t, c.Window.Muted)
}
