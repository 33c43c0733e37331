package shell

import (
	"image"

	"github.com/sqrtxander/hangman/internal/game"
)

// Window geometry in logical pixels. The keyboard is a 9-column grid: three
// rows of letters with the "New" button in the last cell.
const (
	Columns = 9

	Margin     = 12
	ButtonW    = 64
	ButtonH    = 44
	ButtonGap  = 6
	IconSize   = 32
	BannerH    = 40
	StageSize  = 300
	BoardH     = 44
	FooterH    = 24
	KeyboardY  = Margin + BannerH + ButtonGap + StageSize + ButtonGap + BoardH + ButtonGap
	keyRows    = 3
	keyboardH  = keyRows*ButtonH + (keyRows-1)*ButtonGap
	ScreenW    = 2*Margin + Columns*ButtonW + (Columns-1)*ButtonGap
	ScreenH    = KeyboardY + keyboardH + ButtonGap + FooterH + Margin
	dialogW    = 420
	dialogH    = 150
	dialogBtnW = 96
)

// ControlKind identifies what a point on the window hits.
type ControlKind int

const (
	ControlNone ControlKind = iota
	ControlLetter
	ControlNew
	ControlMute
	ControlYes
	ControlNo
)

// Control is a hit-test result. Letter is set for ControlLetter.
type Control struct {
	Kind   ControlKind
	Letter rune
}

// Layout holds the rectangles of every widget.
type Layout struct {
	Banner  image.Rectangle
	Mute    image.Rectangle
	Stage   image.Rectangle
	Board   image.Rectangle
	Letters [26]image.Rectangle
	New     image.Rectangle
	Footer  image.Rectangle

	Dialog image.Rectangle
	Yes    image.Rectangle
	No     image.Rectangle
}

// NewLayout computes the fixed window layout.
func NewLayout() Layout {
	var l Layout
	inner := ScreenW - 2*Margin

	l.Banner = image.Rect(Margin, Margin, Margin+inner, Margin+BannerH)
	l.Mute = cell(Columns-1, 0, Margin)
	l.Mute.Max = l.Mute.Min.Add(image.Pt(IconSize, IconSize))
	// Right-align the icon within its column.
	l.Mute = l.Mute.Add(image.Pt(ButtonW-IconSize, (BannerH-IconSize)/2))

	stageX := (ScreenW - StageSize) / 2
	stageY := l.Banner.Max.Y + ButtonGap
	l.Stage = image.Rect(stageX, stageY, stageX+StageSize, stageY+StageSize)

	l.Board = image.Rect(Margin, l.Stage.Max.Y+ButtonGap, Margin+inner, l.Stage.Max.Y+ButtonGap+BoardH)

	for i := range l.Letters {
		l.Letters[i] = cell(i%Columns, i/Columns, KeyboardY)
	}
	l.New = cell(Columns-1, keyRows-1, KeyboardY)

	footerY := KeyboardY + keyboardH + ButtonGap
	l.Footer = image.Rect(Margin, footerY, Margin+inner, footerY+FooterH)

	dx := (ScreenW - dialogW) / 2
	dy := (ScreenH - dialogH) / 2
	l.Dialog = image.Rect(dx, dy, dx+dialogW, dy+dialogH)
	btnY := l.Dialog.Max.Y - Margin - ButtonH
	mid := dx + dialogW/2
	l.Yes = image.Rect(mid-ButtonGap-dialogBtnW, btnY, mid-ButtonGap, btnY+ButtonH)
	l.No = image.Rect(mid+ButtonGap, btnY, mid+ButtonGap+dialogBtnW, btnY+ButtonH)
	return l
}

// cell returns the rectangle of grid column c, row r of a grid starting at y0.
func cell(c, r, y0 int) image.Rectangle {
	x := Margin + c*(ButtonW+ButtonGap)
	y := y0 + r*(ButtonH+ButtonGap)
	return image.Rect(x, y, x+ButtonW, y+ButtonH)
}

// HitTest maps a point to the control under it. While the dialog is open
// only its buttons respond.
func (l Layout) HitTest(x, y int, confirming bool) Control {
	p := image.Pt(x, y)
	if confirming {
		switch {
		case p.In(l.Yes):
			return Control{Kind: ControlYes}
		case p.In(l.No):
			return Control{Kind: ControlNo}
		}
		return Control{}
	}
	for i, r := range l.Letters {
		if p.In(r) {
			return Control{Kind: ControlLetter, Letter: rune(game.Alphabet[i])}
		}
	}
	switch {
	case p.In(l.New):
		return Control{Kind: ControlNew}
	case p.In(l.Mute):
		return Control{Kind: ControlMute}
	}
	return Control{}
}

// Dispatch invokes the capability matching c.
func Dispatch(in Input, c Control) {
	switch c.Kind {
	case ControlLetter:
		in.OnLetter(c.Letter)
	case ControlNew:
		in.OnNewRound()
	case ControlMute:
		in.OnMuteToggle()
	case ControlYes:
		in.OnConfirm(true)
	case ControlNo:
		in.OnConfirm(false)
	}
}
