// internal/words/words.go
//
// Word list management for the game engine.
//
// Responsibilities:
//   - Load the newline-delimited word list (embedded default or a file on disk).
//   - Normalize entries to uppercase and drop lines that cannot be played.
//   - Pick a word uniformly at random for each new round.
//
// Constraints:
//   • Words must be alphabetic A–Z after uppercasing.
//   • Blank lines and lines starting with '#' are skipped.
//   • An empty list is an error: the game cannot start a round without words.

package words

import (
	"bufio"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math/big"
	"strings"
)

// ErrEmpty is returned when a word list contains no playable words.
var ErrEmpty = errors.New("words: list is empty")

// List is an immutable set of candidate secret words.
type List struct {
	words []string
}

// Load reads one word per line from r.
func Load(r io.Reader) (*List, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := strings.ToUpper(strings.TrimSpace(sc.Text()))
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		if isAlpha(w) {
			out = append(out, w)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, ErrEmpty
	}
	return &List{words: out}, nil
}

// LoadFile reads the word list stored at name in fsys.
func LoadFile(fsys fs.FS, name string) (*List, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()

	l, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return l, nil
}

// Pick returns a cryptographically random word from the list.
func (l *List) Pick() string {
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(len(l.words))))
	if err != nil {
		return l.words[0]
	}
	return l.words[nBig.Int64()]
}

// Len returns the number of loaded words.
func (l *List) Len() int { return len(l.words) }

// Words returns a copy of the loaded words in file order.
func (l *List) Words() []string {
	return append([]string(nil), l.words...)
}

// isAlpha reports whether s is all uppercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
