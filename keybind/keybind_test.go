package keybind

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"left", "left"},
		{" Left ", "left"},
		{"Shift+Left", "shift+left"},
		{"left+shift", "shift+left"},
		{"shift+ctrl+A", "ctrl+shift+a"},
		{"control+c", "ctrl+c"},
		{"Escape", "esc"},
		{"PageDown", "pgdn"},
		{"Backtab", "shift+tab"},
		{"Rune[q]", "q"},
		{"Q", "Q"},
		{"shift", ""},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestMatchesKey(t *testing.T) {
	step := NewKeybind(WithKeys("right", "l"), WithHelp("→", "increase"))
	jump := NewKeybind(WithKeys("shift+right"))

	assert.True(t, MatchesKey("right", step))
	assert.True(t, MatchesKey("l", step, jump))
	assert.True(t, MatchesKey("shift+right", step, jump))
	assert.False(t, MatchesKey("shift+right", step))
	assert.False(t, MatchesKey("", step))
	assert.Equal(t, Help{Key: "→", Desc: "increase"}, step.Help())
}

func TestEnabled(t *testing.T) {
	k := NewKeybind(WithKeys("tab"), WithDisabled())
	assert.False(t, k.Enabled())
	assert.False(t, MatchesKey("tab", k))

	k.SetEnabled(true)
	assert.True(t, k.Enabled())
	assert.True(t, MatchesKey("tab", k))

	assert.False(t, NewKeybind().Enabled(), "a binding without keys is never enabled")
}

func TestSetKeysReplaces(t *testing.T) {
	k := NewKeybind(WithKeys("a", "b"))
	k.SetKeys("c", "")
	assert.Equal(t, []string{"c"}, k.Keys())
	assert.False(t, Matches(nil, k))
}
