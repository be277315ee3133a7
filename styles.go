package spinwheel

import (
	"github.com/gdamore/tcell/v3"
	"github.com/gdamore/tcell/v3/color"
)

// Theme defines the colors used when primitives are initialized.
type Theme struct {
	PrimitiveBackgroundColor   tcell.Color // Main background color for primitives.
	ContrastBackgroundColor    tcell.Color // Background color for contrasting elements.
	BorderColor                tcell.Color // Box borders.
	FocusedBorderColor         tcell.Color // Borders of focused boxes.
	TitleColor                 tcell.Color // Box titles.
	PrimaryTextColor           tcell.Color // Primary text.
	SecondaryTextColor         tcell.Color // Secondary text (e.g. labels).
	InverseTextColor           tcell.Color // Text on primary-colored backgrounds.
	ContrastSecondaryTextColor tcell.Color // Secondary text on ContrastBackgroundColor-colored backgrounds.

	SelectorBackgroundColor tcell.Color // Band behind the centre item of a wheel.
	SelectorTextColor       tcell.Color // Centre item of a wheel.
	DividerColor            tcell.Color // Lines around a wheel's centre item.
}

// Styles defines the theme for applications. The default is for a black
// background with white text and a blue selector band.
var Styles = Theme{
	PrimitiveBackgroundColor:   color.Black,
	ContrastBackgroundColor:    color.Blue,
	BorderColor:                color.White,
	FocusedBorderColor:         color.Yellow,
	TitleColor:                 color.White,
	PrimaryTextColor:           color.White,
	SecondaryTextColor:         color.Yellow,
	InverseTextColor:           color.Blue,
	ContrastSecondaryTextColor: color.Navy,

	SelectorBackgroundColor: color.Navy,
	SelectorTextColor:       color.Yellow,
	DividerColor:            color.Gray,
}
