// Command rangeslider shows a dual-thumb range slider in the terminal.
//
//	rangeslider [-config rangeslider.toml] [-snapshot]
//
// With -snapshot the initial screen is printed as text instead of running
// the interactive UI.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gdamore/tcell/v3"
	"github.com/sirupsen/logrus"

	"github.com/xqrs/rangeslider"
	"github.com/xqrs/rangeslider/animate"
	"github.com/xqrs/rangeslider/engine"
	"github.com/xqrs/rangeslider/help"
	"github.com/xqrs/rangeslider/keybind"
)

func main() {
	configPath := flag.String("config", "rangeslider.toml", "configuration file")
	snapshot := flag.Bool("snapshot", false, "print the initial screen and exit")
	width := flag.Int("width", 60, "snapshot width")
	height := flag.Int("height", 16, "snapshot height")
	flag.Parse()

	if err := run(*configPath, *snapshot, *width, *height); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, snapshot bool, width, height int) error {
	config, err := LoadConfig(configPath)
	if err != nil {
		return err
	}

	log, closer, err := newLogger(config.Log, snapshot)
	if err != nil {
		return err
	}
	defer closer.Close()

	ui := newUI(config, log)
	if snapshot {
		fmt.Println(strings.Join(rangeslider.RenderText(ui.root, width, height), "\n"))
		return nil
	}

	log.WithField("config", configPath).Info("starting")
	app := rangeslider.NewApplication().
		SetLogger(log).
		SetRoot(ui.root).
		SetInputCapture(ui.capture)
	if err := app.Run(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	log.Info("stopped")
	return nil
}

// newLogger writes to the configured log file. Snapshots only log errors, to
// stderr.
func newLogger(config LogConfig, snapshot bool) (*logrus.Logger, io.Closer, error) {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: true})

	if snapshot || config.File == "" {
		log.SetOutput(os.Stderr)
		log.SetLevel(logrus.ErrorLevel)
		return log, io.NopCloser(nil), nil
	}

	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		return nil, nil, err
	}
	file, err := os.OpenFile(config.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	log.SetOutput(file)
	log.SetLevel(level)
	return log, file, nil
}

// ui is the demo screen: the configured range slider, a single-value slider
// and a help line for the focused slider.
type ui struct {
	root        *rangeslider.Rows
	rangeSlider *rangeslider.RangeSlider
	single      *rangeslider.RangeSlider
	help        *help.Help

	quit       keybind.Keybind
	toggleHelp keybind.Keybind
}

func newUI(config Config, log logrus.FieldLogger) *ui {
	u := &ui{
		help:       help.New(),
		quit:       keybind.NewKeybind(keybind.WithKeys("q", "ctrl+c"), keybind.WithHelp("q", "quit")),
		toggleHelp: keybind.NewKeybind(keybind.WithKeys("?"), keybind.WithHelp("?", "more")),
	}

	u.rangeSlider = newSlider(config.View, config.Slider.Config, log.WithField("slider", "range"))
	if s := config.Slider; s.Low != nil || s.High != nil {
		low, high := s.Min, s.Max
		if s.Low != nil {
			low = *s.Low
		}
		if s.High != nil {
			high = *s.High
		}
		u.rangeSlider.SetValue(low, high)
	}
	u.rangeSlider.SetChangedFunc(func(low, high float64, byUser bool) {
		log.WithFields(logrus.Fields{"low": low, "high": high, "user": byUser}).Debug("range changed")
		if config.Slider.Low != nil || config.Slider.High != nil {
			// Controlled: accept every user change.
			u.rangeSlider.SetValue(low, high)
		}
	})
	u.rangeSlider.SetFocusFunc(func() { u.help.SetKeyMap(u.rangeSlider) })

	singleConfig := config.Slider.Config
	singleConfig.DisableRange = true
	singleConfig.MinRange = 0
	singleView := config.View
	singleView.Title = "Value"
	u.single = newSlider(singleView, singleConfig, log.WithField("slider", "single"))
	u.single.SetFocusFunc(func() { u.help.SetKeyMap(u.single) })

	u.help.SetKeyMap(u.rangeSlider)

	u.root = rangeslider.NewRows()
	u.root.AddItem(u.rangeSlider, sliderHeight(config.View), 0, true).
		AddItem(u.single, sliderHeight(singleView), 0, true).
		AddItem(rangeslider.NewBox(), 0, 1, false).
		AddItem(u.help, 3, 0, false)
	return u
}

func newSlider(view ViewConfig, config engine.Config, log logrus.FieldLogger) *rangeslider.RangeSlider {
	glyphs, _ := rangeslider.SliderGlyphsByName(view.Glyphs)
	s := rangeslider.NewRangeSlider().
		SetConfig(config).
		SetThumbCells(view.ThumbCells).
		SetGlyphSet(glyphs).
		SetShowLabel(view.ShowLabel).
		SetFloatingLabel(view.FloatingLabel).
		SetAllowLabelOverflow(view.AllowLabelOverflow).
		SetShowValue(view.ShowValue).
		SetAnimation(view.AnimationDuration(), animate.EasingByName(view.Easing)).
		SetLogger(log)
	s.SetTouchStartFunc(func(low, high float64) {
		log.WithFields(logrus.Fields{"low": low, "high": high}).Debug("touch start")
	})
	s.SetTouchEndFunc(func(low, high float64) {
		log.WithFields(logrus.Fields{"low": low, "high": high}).Info("touch end")
	})
	if set, ok := rangeslider.BorderSetByName(view.Border); ok && view.Border != "none" {
		s.SetBorders(rangeslider.BordersAll).SetBorderSet(set)
	}
	s.SetTitle(view.Title)
	return s
}

// sliderHeight returns the rows a slider needs. The value is drawn on the
// bottom border, or on a row of its own without one.
func sliderHeight(view ViewConfig) int {
	height := 1
	switch {
	case view.ShowLabel && view.FloatingLabel:
		height++
	case view.ShowLabel:
		height += 2
	}
	if view.Border != "none" {
		height += 2
	} else if view.ShowValue {
		height++
	}
	return height
}

// capture handles the global keys.
func (u *ui) capture(event *tcell.EventKey) rangeslider.Command {
	key := keybind.EventString(event)
	switch {
	case keybind.MatchesKey(key, u.quit):
		return rangeslider.QuitCommand{}
	case keybind.MatchesKey(key, u.toggleHelp):
		u.help.SetShowAll(!u.help.ShowAll())
		return rangeslider.RedrawCommand{}
	}
	return nil
}
