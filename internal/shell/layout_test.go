package shell

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func center(r image.Rectangle) (int, int) {
	return (r.Min.X + r.Max.X) / 2, (r.Min.Y + r.Max.Y) / 2
}

func TestLayout_FitsScreen(t *testing.T) {
	l := NewLayout()
	screen := image.Rect(0, 0, ScreenW, ScreenH)

	all := []image.Rectangle{l.Banner, l.Mute, l.Stage, l.Board, l.New, l.Footer, l.Dialog, l.Yes, l.No}
	all = append(all, l.Letters[:]...)
	for _, r := range all {
		assert.True(t, r.In(screen), "%v outside %v", r, screen)
	}
	assert.True(t, l.Yes.In(l.Dialog))
	assert.True(t, l.No.In(l.Dialog))
}

func TestLayout_KeyboardGrid(t *testing.T) {
	l := NewLayout()

	// Nine letters per row, three rows; the last row holds S..Z then "New".
	assert.Equal(t, l.Letters[0].Min.Y, l.Letters[8].Min.Y)
	assert.Less(t, l.Letters[8].Min.Y, l.Letters[9].Min.Y)
	assert.Equal(t, l.Letters[0].Min.X, l.Letters[9].Min.X)
	assert.Equal(t, l.Letters[18].Min.Y, l.New.Min.Y)
	assert.Equal(t, l.Letters[8].Min.X, l.New.Min.X)

	for i := range l.Letters {
		for j := i + 1; j < len(l.Letters); j++ {
			assert.False(t, l.Letters[i].Overlaps(l.Letters[j]), "%c overlaps %c", 'A'+i, 'A'+j)
		}
		assert.False(t, l.Letters[i].Overlaps(l.New))
	}
}

func TestLayout_HitTest(t *testing.T) {
	l := NewLayout()

	cases := []struct {
		name       string
		rect       image.Rectangle
		confirming bool
		want       Control
	}{
		{"letter A", l.Letters[0], false, Control{Kind: ControlLetter, Letter: 'A'}},
		{"letter J", l.Letters[9], false, Control{Kind: ControlLetter, Letter: 'J'}},
		{"letter Z", l.Letters[25], false, Control{Kind: ControlLetter, Letter: 'Z'}},
		{"new", l.New, false, Control{Kind: ControlNew}},
		{"mute", l.Mute, false, Control{Kind: ControlMute}},
		{"illustration", l.Stage, false, Control{}},
		{"dialog yes", l.Yes, true, Control{Kind: ControlYes}},
		{"dialog no", l.No, true, Control{Kind: ControlNo}},
		{"letter behind dialog", l.Letters[0], true, Control{}},
		{"yes while closed", l.Yes, false, Control{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			x, y := center(tc.rect)
			assert.Equal(t, tc.want, l.HitTest(x, y, tc.confirming))
		})
	}
	assert.Equal(t, Control{}, l.HitTest(-5, -5, false))
}

type recorder struct {
	calls []string
}

func (r *recorder) OnLetter(c rune) { r.calls = append(r.calls, "letter:"+string(c)) }
func (r *recorder) OnNewRound() { r.calls = append(r.calls, "new") }
func (r *recorder) OnMuteToggle() { r.calls = append(r.calls, "mute") }
func (r *recorder) OnConfirm(yes bool) {
	if yes {
		r.calls = append(r.calls, "yes")
		return
	}
	r.calls = append(r.calls, "no")
}

func TestDispatch(t *testing.T) {
	r := &recorder{}
	for _, c := range []Control{
		{Kind: ControlLetter, Letter: 'Q'},
		{Kind: ControlNew},
		{Kind: ControlMute},
		{Kind: ControlYes},
		{Kind: ControlNo},
		{},
	} {
		Dispatch(r, c)
	}
	assert.Equal(t, []string{"letter:Q", "new", "mute", "yes", "no"}, r.calls)
}
