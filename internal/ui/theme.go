package ui

import (
	"fmt"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

type theme struct {
	Background color.Color
	Text       color.Color
	KeyOn      color.Color
	KeyOff     color.Color
	KeyText    color.Color
	KeyTextOff color.Color
	NewButton  color.Color
	Overlay    color.Color
	Panel      color.Color
	Border     color.Color
}

var defaultTheme = theme{
	Background: rgb(0x3F, 0x88, 0xC5),
	Text:       color.White,
	KeyOn:      rgb(0x44, 0xBB, 0xA4),
	KeyOff:     rgb(0x39, 0x3E, 0x41),
	KeyText:    rgb(0x1B, 0x1B, 0x1E),
	KeyTextOff: rgb(0x8A, 0x8F, 0x93),
	NewButton:  rgb(0xE9, 0x4F, 0x37),
	Overlay:    color.RGBA{0, 0, 0, 140},
	Panel:      rgb(0x2B, 0x5F, 0x8C),
	Border:     color.White,
}

func rgb(r, g, b uint8) color.Color {
	return color.RGBA{r, g, b, 0xff}
}

type faces struct {
	Main  font.Face // banner, board, keys
	Small font.Face // footer
}

func loadFaces() (faces, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return faces{}, fmt.Errorf("parse font: %w", err)
	}
	main, err := opentype.NewFace(f, &opentype.FaceOptions{Size: 18, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return faces{}, fmt.Errorf("main face: %w", err)
	}
	small, err := opentype.NewFace(f, &opentype.FaceOptions{Size: 13, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return faces{}, fmt.Errorf("small face: %w", err)
	}
	return faces{Main: main, Small: small}, nil
}
