package ui

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/rs/zerolog"

	"github.com/sqrtxander/hangman/assets"
	"github.com/sqrtxander/hangman/internal/shell"
)

const sampleRate = 44100

var cueFiles = [...]string{
	shell.CueCorrect:   assets.CueCorrect,
	shell.CueIncorrect: assets.CueIncorrect,
	shell.CueWin:       assets.CueWin,
	shell.CueLose:      assets.CueLose,
}

// Cues plays the four sound effects through ebiten's audio context.
// One player per cue; replaying a cue restarts it.
type Cues struct {
	players [len(cueFiles)]*audio.Player
	log     zerolog.Logger
}

// NewCues decodes every cue up front. Only one audio context may exist per
// process, so NewCues must be called once.
func NewCues(fsys fs.FS, logger zerolog.Logger) (*Cues, error) {
	ctx := audio.NewContext(sampleRate)
	c := &Cues{log: logger.With().Str("component", "audio").Logger()}

	for i, name := range cueFiles {
		raw, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		stream, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", name, err)
		}
		pcm, err := io.ReadAll(stream)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", name, err)
		}
		c.players[i] = ctx.NewPlayerFromBytes(pcm)
	}
	return c, nil
}

// Play restarts cue from the beginning.
func (c *Cues) Play(cue shell.Cue) {
	if int(cue) < 0 || int(cue) >= len(c.players) {
		return
	}
	p := c.players[cue]
	if err := p.Rewind(); err != nil {
		c.log.Warn().Err(err).Stringer("cue", cue).Msg("rewind")
		return
	}
	p.Play()
}

// SetMuted sets every player's volume to 0 or 1.
func (c *Cues) SetMuted(muted bool) {
	v := 1.0
	if muted {
		v = 0
	}
	for _, p := range c.players {
		p.SetVolume(v)
	}
}
