package spinwheel

import "github.com/gdamore/tcell/v3"

// TextItem is a single line of text centered vertically in its box. Text
// adapters render wheel items with it; it also serves as a plain label.
type TextItem struct {
	*Box

	text      string
	style     tcell.Style
	alignment Alignment
}

// NewTextItem returns a centered text item.
func NewTextItem(text string) *TextItem {
	return &TextItem{
		Box:       NewBox(),
		text:      text,
		style:     tcell.StyleDefault.Foreground(Styles.PrimaryTextColor).Background(Styles.PrimitiveBackgroundColor),
		alignment: AlignmentCenter,
	}
}

// SetText sets the displayed text.
func (t *TextItem) SetText(text string) *TextItem {
	if t.text != text {
		t.text = text
		t.MarkDirty()
	}
	return t
}

// GetText returns the displayed text.
func (t *TextItem) GetText() string {
	return t.text
}

// SetTextStyle sets the style of the text. The background of the style is
// also used for the box.
func (t *TextItem) SetTextStyle(style tcell.Style) *TextItem {
	if t.style != style {
		t.style = style
		t.MarkDirty()
	}
	return t
}

// GetTextStyle returns the style of the text.
func (t *TextItem) GetTextStyle() tcell.Style {
	return t.style
}

// SetAlignment sets the horizontal alignment of the text.
func (t *TextItem) SetAlignment(alignment Alignment) *TextItem {
	if t.alignment != alignment {
		t.alignment = alignment
		t.MarkDirty()
	}
	return t
}

// Draw draws this primitive onto the screen.
func (t *TextItem) Draw(screen tcell.Screen) {
	t.SetBackgroundColor(t.style.GetBackground())
	t.DrawForSubclass(screen, t)

	x, y, width, height := t.GetInnerRect()
	if width <= 0 || height <= 0 || t.text == "" {
		return
	}
	printWithStyle(screen, t.text, x, y+height/2, 0, width, t.alignment, t.style, true)
}
