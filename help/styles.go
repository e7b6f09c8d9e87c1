package help

import (
	"github.com/gdamore/tcell/v3"

	"github.com/xqrs/rangeslider"
)

// Styles are the styles of the parts of a help line.
type Styles struct {
	KeyStyle       tcell.Style
	DescStyle      tcell.Style
	SeparatorStyle tcell.Style
	EllipsisStyle  tcell.Style
}

// DefaultStyles derives help styles from the global theme.
func DefaultStyles() Styles {
	dim := tcell.StyleDefault.Foreground(rangeslider.Styles.BorderColor)
	return Styles{
		KeyStyle:       tcell.StyleDefault.Foreground(rangeslider.Styles.SecondaryTextColor),
		DescStyle:      tcell.StyleDefault.Foreground(rangeslider.Styles.PrimaryTextColor),
		SeparatorStyle: dim,
		EllipsisStyle:  dim,
	}
}
