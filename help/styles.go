package help

import (
	"github.com/ayn2op/spinwheel"
	"github.com/gdamore/tcell/v3"
)

// Styles holds the styles of the short and full help.
type Styles struct {
	ShortKeyStyle       tcell.Style
	ShortDescStyle      tcell.Style
	ShortSeparatorStyle tcell.Style

	FullKeyStyle       tcell.Style
	FullDescStyle      tcell.Style
	FullSeparatorStyle tcell.Style

	EllipsisStyle tcell.Style
}

// DefaultStyles derives help styles from spinwheel.Styles: keys in the
// secondary text color, separators dimmed.
func DefaultStyles() Styles {
	normal := tcell.StyleDefault.Foreground(spinwheel.Styles.PrimaryTextColor).Background(spinwheel.Styles.PrimitiveBackgroundColor)
	key := normal.Foreground(spinwheel.Styles.SecondaryTextColor)
	dim := normal.Dim(true)
	return Styles{
		ShortKeyStyle:       key,
		ShortDescStyle:      normal,
		ShortSeparatorStyle: dim,
		FullKeyStyle:        key,
		FullDescStyle:       normal,
		FullSeparatorStyle:  dim,
		EllipsisStyle:       dim,
	}
}
