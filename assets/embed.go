// Package assets bundles the default word list, illustration stages, icons
// and sound cues so the game runs without any files next to the binary.
package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

//go:embed word_list.txt images/*.png audio/*.wav
var FS embed.FS

const (
	WordList = "word_list.txt"

	AudioOnIcon  = "images/audioOn.png"
	AudioOffIcon = "images/audioOff.png"
	WindowIcon   = "images/icon.png"

	CueCorrect   = "audio/correct.wav"
	CueIncorrect = "audio/incorrect.wav"
	CueWin       = "audio/youWin.wav"
	CueLose      = "audio/gameOver.wav"
)

// StageCount is the number of illustration stages shipped in images/.
const StageCount = 10

// Stage returns the path of illustration stage i.
func Stage(i int) string {
	return fmt.Sprintf("images/stage%d.png", i)
}

// Dir returns the asset filesystem to use: the directory at path when set,
// the embedded defaults otherwise.
func Dir(path string) fs.FS {
	if path == "" {
		return FS
	}
	return os.DirFS(path)
}

// Required lists every image and audio file the window needs at startup.
func Required() []string {
	out := make([]string, 0, StageCount+7)
	for i := 0; i < StageCount; i++ {
		out = append(out, Stage(i))
	}
	return append(out,
		AudioOnIcon, AudioOffIcon, WindowIcon,
		CueCorrect, CueIncorrect, CueWin, CueLose,
	)
}

// Verify checks that every required file exists in fsys and returns a
// single error naming all the missing ones.
func Verify(fsys fs.FS) error {
	var missing []string
	for _, name := range Required() {
		st, err := fs.Stat(fsys, name)
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("stat %s: %w", name, err)
			}
			missing = append(missing, name)
			continue
		}
		if st.IsDir() {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing assets: %s", strings.Join(missing, ", "))
	}
	return nil
}
