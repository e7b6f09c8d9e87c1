package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"

	"github.com/xqrs/rangeslider"
	"github.com/xqrs/rangeslider/animate"
	"github.com/xqrs/rangeslider/engine"
)

// Config is the rangeslider.toml configuration file.
type Config struct {
	Slider SliderConfig `toml:"slider"`
	View   ViewConfig   `toml:"view"`
	Log    LogConfig    `toml:"log"`
}

// SliderConfig is the range of the main slider. Setting low or high makes
// the slider controlled by the demo.
type SliderConfig struct {
	engine.Config

	Low  *float64 `toml:"low"`
	High *float64 `toml:"high"`
}

type ViewConfig struct {
	Title  string `toml:"title"`
	Border string `toml:"border"`
	Glyphs string `toml:"glyphs"`

	ThumbCells         int  `toml:"thumb_cells"`
	ShowLabel          bool `toml:"show_label"`
	FloatingLabel      bool `toml:"floating_label"`
	AllowLabelOverflow bool `toml:"allow_label_overflow"`
	ShowValue          bool `toml:"show_value"`

	// Animation of key and program changes. 0 disables it.
	AnimationMS int    `toml:"animation_ms"`
	Easing      string `toml:"easing"`
}

type LogConfig struct {
	Level string `toml:"level"`
	// Log output. The terminal belongs to the UI, so logs go to a file.
	File string `toml:"file"`
}

// DefaultConfig returns the configuration used for missing files and keys.
func DefaultConfig() Config {
	return Config{
		Slider: SliderConfig{Config: engine.DefaultConfig()},
		View: ViewConfig{
			Title:       "Range",
			Border:      "round",
			Glyphs:      "unicode",
			ThumbCells:  1,
			ShowLabel:   true,
			ShowValue:   true,
			AnimationMS: 120,
			Easing:      "cubic",
		},
		Log: LogConfig{
			Level: "info",
			File:  "rangeslider.log",
		},
	}
}

// LoadConfig reads the configuration at path on top of the defaults. A
// missing file yields the defaults.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return config, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := config.Validate(); err != nil {
		return config, fmt.Errorf("invalid %s: %w", path, err)
	}
	return config, nil
}

// Validate checks the slider range and the names used in the view and log
// sections.
func (c Config) Validate() error {
	if err := c.Slider.Config.Validate(); err != nil {
		return fmt.Errorf("slider: %w", err)
	}
	if c.View.ThumbCells < 1 {
		return fmt.Errorf("view: thumb_cells must be at least 1, got %d", c.View.ThumbCells)
	}
	if _, ok := rangeslider.BorderSetByName(c.View.Border); !ok && c.View.Border != "none" {
		return fmt.Errorf("view: unknown border %q", c.View.Border)
	}
	if _, ok := rangeslider.SliderGlyphsByName(c.View.Glyphs); !ok {
		return fmt.Errorf("view: unknown glyphs %q", c.View.Glyphs)
	}
	if c.View.AnimationMS < 0 {
		return fmt.Errorf("view: animation_ms must not be negative, got %d", c.View.AnimationMS)
	}
	if animate.EasingByName(c.View.Easing) == nil {
		return fmt.Errorf("view: unknown easing %q", c.View.Easing)
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	return nil
}

// AnimationDuration returns the configured animation length.
func (v ViewConfig) AnimationDuration() time.Duration {
	return time.Duration(v.AnimationMS) * time.Millisecond
}
