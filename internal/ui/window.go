// Package ui is the ebiten runtime of the hangman window: it polls input,
// forwards it to the shell and draws the shell's View every frame.
package ui

import (
	"fmt"
	"image"
	"image/color"
	"io/fs"
	"unicode"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"github.com/sqrtxander/hangman/internal/game"
	"github.com/sqrtxander/hangman/internal/shell"
)

const windowTitle = "Hangman"

// Window implements ebiten.Game on top of a shell.
type Window struct {
	shell  *shell.Shell
	layout shell.Layout
	images *images
	faces  faces
	theme  theme
	chars  []rune
}

// NewWindow loads images and fonts from fsys. A missing image is an error.
func NewWindow(sh *shell.Shell, fsys fs.FS) (*Window, error) {
	im, err := loadImages(fsys)
	if err != nil {
		return nil, err
	}
	ff, err := loadFaces()
	if err != nil {
		return nil, err
	}
	return &Window{
		shell:  sh,
		layout: shell.NewLayout(),
		images: im,
		faces:  ff,
		theme:  defaultTheme,
	}, nil
}

// Run opens the window and blocks until it is closed.
func Run(w *Window, scale float64) error {
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetWindowIcon([]image.Image{w.images.icon})
	ebiten.SetWindowSize(int(float64(shell.ScreenW)*scale), int(float64(shell.ScreenH)*scale))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	return ebiten.RunGame(w)
}

func (w *Window) Layout(_, _ int) (int, int) {
	return shell.ScreenW, shell.ScreenH
}

func (w *Window) Update() error {
	confirming := w.shell.View().Confirm

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		shell.Dispatch(w.shell, w.layout.HitTest(x, y, confirming))
		return nil
	}

	if confirming {
		switch {
		case inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeyY):
			w.shell.OnConfirm(true)
		case inpututil.IsKeyJustPressed(ebiten.KeyEscape), inpututil.IsKeyJustPressed(ebiten.KeyN):
			w.shell.OnConfirm(false)
		}
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		w.shell.OnNewRound()
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		w.shell.OnMuteToggle()
		return nil
	}

	w.chars = ebiten.AppendInputChars(w.chars[:0])
	for _, r := range w.chars {
		w.shell.OnLetter(unicode.ToUpper(r))
	}
	return nil
}

func (w *Window) Draw(screen *ebiten.Image) {
	v := w.shell.View()
	l := w.layout
	th := w.theme

	screen.Fill(th.Background)

	drawTextCentered(screen, v.Banner, w.faces.Main, l.Banner, th.Text)

	icon := w.images.audioOn
	if v.Muted {
		icon = w.images.audioOff
	}
	drawImageIn(screen, icon, l.Mute)
	drawImageIn(screen, w.images.stages[v.Stage], l.Stage)

	drawTextCentered(screen, v.Board, w.faces.Main, l.Board, th.Text)

	for i, r := range l.Letters {
		bg, fg := th.KeyOn, th.KeyText
		if !v.Letters[i] {
			bg, fg = th.KeyOff, th.KeyTextOff
		}
		fillRect(screen, r, bg)
		drawTextCentered(screen, string(game.Alphabet[i]), w.faces.Main, r, fg)
	}
	fillRect(screen, l.New, th.NewButton)
	drawTextCentered(screen, "New", w.faces.Main, l.New, th.Text)

	t := v.Tally
	footer := fmt.Sprintf("Played %d   Won %d   Lost %d   Streak %d", t.Played, t.Won, t.Lost, t.Streak)
	drawTextCentered(screen, footer, w.faces.Small, l.Footer, th.Text)

	if v.Confirm {
		w.drawConfirm(screen)
	}
}

func (w *Window) drawConfirm(screen *ebiten.Image) {
	l := w.layout
	th := w.theme

	fillRect(screen, screen.Bounds(), th.Overlay)
	fillRect(screen, l.Dialog, th.Panel)
	vector.StrokeRect(screen, float32(l.Dialog.Min.X), float32(l.Dialog.Min.Y),
		float32(l.Dialog.Dx()), float32(l.Dialog.Dy()), 2, th.Border, false)

	title := image.Rect(l.Dialog.Min.X, l.Dialog.Min.Y+shell.Margin, l.Dialog.Max.X, l.Dialog.Min.Y+shell.Margin+24)
	drawTextCentered(screen, shell.ConfirmTitle, w.faces.Main, title, th.Text)
	msg := title.Add(image.Pt(0, 32))
	drawTextCentered(screen, shell.ConfirmMessage, w.faces.Small, msg, th.Text)

	fillRect(screen, l.Yes, th.KeyOn)
	drawTextCentered(screen, "Yes", w.faces.Main, l.Yes, th.KeyText)
	fillRect(screen, l.No, th.NewButton)
	drawTextCentered(screen, "No", w.faces.Main, l.No, th.Text)
}

func fillRect(dst *ebiten.Image, r image.Rectangle, clr color.Color) {
	vector.DrawFilledRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), clr, false)
}

// drawImageIn scales img to fill r.
func drawImageIn(dst, img *ebiten.Image, r image.Rectangle) {
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.Dx())/float64(b.Dx()), float64(r.Dy())/float64(b.Dy()))
	op.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(img, op)
}

func drawTextCentered(dst *ebiten.Image, s string, f font.Face, r image.Rectangle, clr color.Color) {
	if s == "" {
		return
	}
	b := text.BoundString(f, s)
	x := r.Min.X + (r.Dx()-b.Dx())/2 - b.Min.X
	y := r.Min.Y + (r.Dy()-b.Dy())/2 - b.Min.Y
	text.Draw(dst, s, f, x, y, clr)
}
