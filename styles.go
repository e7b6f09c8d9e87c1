package rangeslider

import (
	"github.com/gdamore/tcell/v3"
	"github.com/gdamore/tcell/v3/color"
)

// Theme defines the colors used when primitives are initialized.
type Theme struct {
	PrimitiveBackgroundColor tcell.Color // Main background color for primitives.
	BorderColor              tcell.Color // Box borders.
	FocusBorderColor         tcell.Color // Box borders while focused.
	TitleColor               tcell.Color // Box titles and footers.
	PrimaryTextColor         tcell.Color // Primary text.
	SecondaryTextColor       tcell.Color // Secondary text (e.g. help descriptions).

	RailColor         tcell.Color // The unselected part of a slider rail.
	SelectedRailColor tcell.Color // The rail between the thumbs.
	ThumbColor        tcell.Color // Thumbs.
	FocusedThumbColor tcell.Color // The thumb keys apply to while focused.
	PressedThumbColor tcell.Color // The thumb being dragged.
	LabelColor        tcell.Color // The value label above a pressed thumb.
	DisabledColor     tcell.Color // Everything of a disabled slider.
}

// Styles is the theme new primitives are created with.
var Styles = Theme{
	PrimitiveBackgroundColor: color.Black,
	BorderColor:              color.Gray,
	FocusBorderColor:         color.White,
	TitleColor:               color.White,
	PrimaryTextColor:         color.White,
	SecondaryTextColor:       color.Yellow,

	RailColor:         color.Gray,
	SelectedRailColor: color.Teal,
	ThumbColor:        color.White,
	FocusedThumbColor: color.Yellow,
	PressedThumbColor: color.Aqua,
	LabelColor:        color.Aqua,
	DisabledColor:     color.Gray,
}
