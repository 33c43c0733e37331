package words

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Normalizes(t *testing.T) {
	src := "apple\n  Banana \n\n# comment\nice-cream\nice cream\nkiwi\r\nZEBRA\n"
	l, err := Load(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, []string{"APPLE", "BANANA", "KIWI", "ZEBRA"}, l.Words())
	assert.Equal(t, 4, l.Len())
}

func TestLoad_Empty(t *testing.T) {
	cases := []string{"", "\n\n", "# only comments\n", "123\n-\n"}
	for _, src := range cases {
		_, err := Load(strings.NewReader(src))
		assert.True(t, errors.Is(err, ErrEmpty), "src %q: err=%v", src, err)
	}
}

func TestLoadFile(t *testing.T) {
	fsys := fstest.MapFS{
		"word_list.txt": {Data: []byte("cat\ndog\n")},
	}
	l, err := LoadFile(fsys, "word_list.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{"CAT", "DOG"}, l.Words())

	_, err = LoadFile(fsys, "missing.txt")
	assert.Error(t, err)
}

func TestPick_StaysInList(t *testing.T) {
	l, err := Load(strings.NewReader("cat\ndog\nbat\n"))
	require.NoError(t, err)

	seen := map[string]int{}
	for i := 0; i < 600; i++ {
		w := l.Pick()
		require.Contains(t, []string{"CAT", "DOG", "BAT"}, w)
		seen[w]++
	}
	// Uniform picks over 600 draws hit every word.
	assert.Len(t, seen, 3)
}

func TestWords_ReturnsCopy(t *testing.T) {
	l, err := Load(strings.NewReader("cat\n"))
	require.NoError(t, err)
	ws := l.Words()
	ws[0] = "DOG"
	assert.Equal(t, "CAT", l.Pick())
}
