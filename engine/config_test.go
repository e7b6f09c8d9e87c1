package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	tests := []struct {
		name   string
		modify func(*Config)
		want   error
	}{
		{"equal bounds", func(c *Config) { c.Max = c.Min }, ErrInvalidBounds},
		{"inverted bounds", func(c *Config) { c.Min, c.Max = 10, 0 }, ErrInvalidBounds},
		{"zero step", func(c *Config) { c.Step = 0 }, ErrInvalidStep},
		{"negative step", func(c *Config) { c.Step = -1 }, ErrInvalidStep},
		{"step wider than range", func(c *Config) { c.Step = 101 }, ErrInvalidStep},
		{"negative min range", func(c *Config) { c.MinRange = -1 }, ErrInvalidMinRange},
		{"min range wider than range", func(c *Config) { c.MinRange = 150 }, ErrInvalidMinRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			tt.modify(&c)
			assert.ErrorIs(t, c.Validate(), tt.want)
		})
	}
}

func TestConfigFocusHeightLimitDefault(t *testing.T) {
	assert.Equal(t, float64(DefaultFocusHeightLimit), Config{}.focusHeightLimit())
	assert.Equal(t, 40.0, Config{FocusHeightLimit: 40}.focusHeightLimit())
}
