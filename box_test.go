package rangeslider

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoxBorderAndTitle(t *testing.T) {
	b := NewBox().SetBorders(BordersAll).SetTitle("Hi")
	assert.Equal(t, []string{"┌Hi──┐", "│    │", "└────┘"}, RenderText(b, 6, 3))

	b.SetBorderSet(BorderSetRound()).SetFooter("ok")
	assert.Equal(t, []string{"╭Hi──╮", "│    │", "╰─ok─╯"}, RenderText(b, 6, 3))
}

func TestBoxTitleIsTruncated(t *testing.T) {
	b := NewBox().SetBorders(BordersAll).SetTitle("Temperature")
	assert.Equal(t, "┌Temp…┐", RenderText(b, 7, 2)[0])
}

func TestBoxInnerRect(t *testing.T) {
	b := NewBox()
	b.SetRect(2, 3, 10, 6)
	x, y, w, h := b.GetInnerRect()
	assert.Equal(t, []int{2, 3, 10, 6}, []int{x, y, w, h})

	b.SetBorders(BordersAll).SetBorderPadding(1, 0, 2, 1)
	x, y, w, h = b.GetInnerRect()
	assert.Equal(t, []int{5, 5, 5, 3}, []int{x, y, w, h})

	assert.True(t, b.InRect(2, 3))
	assert.False(t, b.InInnerRect(2, 3))
	assert.True(t, b.InInnerRect(5, 5))
	assert.False(t, b.InRect(12, 3))
}

func TestBoxFocus(t *testing.T) {
	b := NewBox()
	var focused, blurred int
	b.SetFocusFunc(func() { focused++ }).SetBlurFunc(func() { blurred++ })

	b.Focus(nil)
	assert.True(t, b.HasFocus())
	b.Blur()
	assert.False(t, b.HasFocus())
	assert.Equal(t, 1, focused)
	assert.Equal(t, 1, blurred)
}

func TestBoxDirty(t *testing.T) {
	b := NewBox()
	assert.True(t, b.IsDirty())
	b.MarkClean()

	b.SetTitle("")
	assert.False(t, b.IsDirty(), "unchanged settings keep the box clean")
	b.SetTitle("x")
	assert.True(t, b.IsDirty())
}

func TestBorderSetByName(t *testing.T) {
	set, ok := BorderSetByName(" Double ")
	assert.True(t, ok)
	assert.Equal(t, BorderSetDouble(), set)

	set, ok = BorderSetByName("wavy")
	assert.False(t, ok)
	assert.Equal(t, BorderSetPlain(), set)
}
