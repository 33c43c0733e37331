package ui

import (
	"fmt"
	"image"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/sqrtxander/hangman/assets"
	"github.com/sqrtxander/hangman/internal/game"
)

// images holds every picture the window draws, indexed the way the view
// refers to them.
type images struct {
	stages   [game.Stages]*ebiten.Image // indexed by miss count
	audioOn  *ebiten.Image
	audioOff *ebiten.Image
	icon     image.Image
}

func loadImages(fsys fs.FS) (*images, error) {
	var im images
	for i := range im.stages {
		img, _, err := ebitenutil.NewImageFromFileSystem(fsys, assets.Stage(i))
		if err != nil {
			return nil, fmt.Errorf("load stage %d: %w", i, err)
		}
		im.stages[i] = img
	}

	var err error
	if im.audioOn, _, err = ebitenutil.NewImageFromFileSystem(fsys, assets.AudioOnIcon); err != nil {
		return nil, fmt.Errorf("load %s: %w", assets.AudioOnIcon, err)
	}
	if im.audioOff, _, err = ebitenutil.NewImageFromFileSystem(fsys, assets.AudioOffIcon); err != nil {
		return nil, fmt.Errorf("load %s: %w", assets.AudioOffIcon, err)
	}
	if _, im.icon, err = ebitenutil.NewImageFromFileSystem(fsys, assets.WindowIcon); err != nil {
		return nil, fmt.Errorf("load %s: %w", assets.WindowIcon, err)
	}
	return &im, nil
}
