package engine

import (
	"errors"
	"fmt"
)

// Default values applied by DefaultConfig.
const (
	DefaultFocusHeightLimit = 100
)

var (
	// ErrInvalidBounds is returned when min is not strictly below max.
	ErrInvalidBounds = errors.New("min must be less than max")
	// ErrInvalidStep is returned when step is not within (0, max-min].
	ErrInvalidStep = errors.New("step must be positive and not exceed max-min")
	// ErrInvalidMinRange is returned when minRange is negative or wider than
	// the whole range.
	ErrInvalidMinRange = errors.New("minRange must be within [0, max-min]")
)

// Config is the range configuration of a slider. It is supplied by the caller
// and treated as immutable between two updates.
type Config struct {
	Min      float64 `toml:"min"`
	Max      float64 `toml:"max"`
	Step     float64 `toml:"step"`
	MinRange float64 `toml:"min_range"`

	// DisableRange turns the slider into a single-value control. The high
	// value is pinned to Max.
	DisableRange bool `toml:"disable_range"`
	// Disabled refuses new gestures.
	Disabled bool `toml:"disabled"`

	// FocusHeightLimit is the vertical displacement after which a drag is
	// treated as a scroll and canceled.
	FocusHeightLimit float64 `toml:"focus_height_limit"`

	// Fixed widths skip layout measurement for their dimension when > 0.
	FixedContainerWidth float64 `toml:"fixed_container_width"`
	FixedThumbWidth     float64 `toml:"fixed_thumb_width"`
}

// DefaultConfig returns a 0..100 slider with unit steps.
func DefaultConfig() Config {
	return Config{
		Min:              0,
		Max:              100,
		Step:             1,
		FocusHeightLimit: DefaultFocusHeightLimit,
	}
}

// Validate reports whether the configuration describes a usable range. The
// engine itself never calls it and tolerates invalid input without producing
// NaN; it exists for callers that load configuration from outside.
func (c Config) Validate() error {
	if !(c.Min < c.Max) {
		return fmt.Errorf("range [%v, %v]: %w", c.Min, c.Max, ErrInvalidBounds)
	}
	if !(c.Step > 0) || c.Step > c.Max-c.Min {
		return fmt.Errorf("step %v: %w", c.Step, ErrInvalidStep)
	}
	if c.MinRange < 0 || c.MinRange > c.Max-c.Min {
		return fmt.Errorf("minRange %v: %w", c.MinRange, ErrInvalidMinRange)
	}
	return nil
}

func (c Config) focusHeightLimit() float64 {
	if c.FocusHeightLimit <= 0 {
		return DefaultFocusHeightLimit
	}
	return c.FocusHeightLimit
}

// span returns max-min, or 0 for degenerate bounds.
func (c Config) span() float64 {
	if !(c.Max > c.Min) {
		return 0
	}
	return c.Max - c.Min
}
