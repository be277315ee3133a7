// Package help renders the keybinds of a KeyMap as a one-line bar or as a
// multi-column overview.
package help

import (
	"strings"

	"github.com/ayn2op/spinwheel"
	"github.com/ayn2op/spinwheel/keybind"
	"github.com/gdamore/tcell/v3"
)

type KeyMap interface {
	// ShortHelp returns keybinds for single-line help.
	ShortHelp() []keybind.Keybind
	// FullHelp returns keybind groups, where each top-level entry is a column.
	FullHelp() [][]keybind.Keybind
}

type Help struct {
	*spinwheel.Box
	Styles Styles

	keyMap         KeyMap
	showAll        bool
	shortSeparator string
	fullSeparator  string
	ellipsis       string
}

func New() *Help {
	return &Help{
		Box:            spinwheel.NewBox(),
		Styles:         DefaultStyles(),
		shortSeparator: " • ",
		fullSeparator:  "    ",
		ellipsis:       "…",
	}
}

// SetKeyMap sets the key map used by this help primitive.
func (h *Help) SetKeyMap(keyMap KeyMap) *Help {
	h.keyMap = keyMap
	h.MarkDirty()
	return h
}

// SetShowAll enables or disables full help mode.
func (h *Help) SetShowAll(showAll bool) *Help {
	if h.showAll != showAll {
		h.showAll = showAll
		h.MarkDirty()
	}
	return h
}

// ShowAll returns whether full help mode is enabled.
func (h *Help) ShowAll() bool {
	return h.showAll
}

// SetShortSeparator sets the separator used in short help mode.
func (h *Help) SetShortSeparator(separator string) *Help {
	h.shortSeparator = separator
	h.MarkDirty()
	return h
}

// SetFullSeparator sets the separator used between full help columns.
func (h *Help) SetFullSeparator(separator string) *Help {
	h.fullSeparator = separator
	h.MarkDirty()
	return h
}

// SetEllipsis sets the ellipsis marker used when content is truncated.
func (h *Help) SetEllipsis(ellipsis string) *Help {
	h.ellipsis = ellipsis
	h.MarkDirty()
	return h
}

// SetStyles sets help styles.
func (h *Help) SetStyles(styles Styles) *Help {
	h.Styles = styles
	h.MarkDirty()
	return h
}

// Height returns the number of rows the help needs at the given width.
func (h *Help) Height(width int) int {
	if h.keyMap == nil {
		return 0
	}
	if !h.showAll {
		return 1
	}
	return max(len(h.fullLines(h.keyMap.FullHelp(), width)), 1)
}

// Draw draws this primitive onto the screen.
func (h *Help) Draw(screen tcell.Screen) {
	h.DrawForSubclass(screen, h)
	if h.keyMap == nil {
		return
	}

	x, y, width, height := h.GetInnerRect()
	var lines []line
	if h.showAll {
		lines = h.fullLines(h.keyMap.FullHelp(), width)
	} else {
		lines = []line{h.shortLine(h.keyMap.ShortHelp(), width)}
	}
	for row := 0; row < len(lines) && row < height; row++ {
		lines[row].draw(screen, x, y+row, width)
	}
}

// FullHelpLines renders grouped help into full mode lines as plain text.
func (h *Help) FullHelpLines(groups [][]keybind.Keybind, maxWidth int) []string {
	lines := h.fullLines(groups, maxWidth)
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		out = append(out, l.String())
	}
	return out
}

// ShortHelpLine renders the one-line help as plain text.
func (h *Help) ShortHelpLine(bindings []keybind.Keybind, maxWidth int) string {
	return h.shortLine(bindings, maxWidth).String()
}

// segment is a run of text in a single style.
type segment struct {
	text  string
	style tcell.Style
}

// line is a sequence of segments.
type line []segment

func (l line) width() int {
	width := 0
	for _, s := range l {
		width += spinwheel.StringWidth(s.text)
	}
	return width
}

func (l line) String() string {
	var b strings.Builder
	for _, s := range l {
		b.WriteString(s.text)
	}
	return b.String()
}

func (l line) draw(screen tcell.Screen, x, y, width int) {
	for _, s := range l {
		if width <= 0 {
			return
		}
		if s.text == "" {
			continue
		}
		_, printed := spinwheel.PrintWithStyle(screen, s.text, x, y, width, spinwheel.AlignmentLeft, s.style)
		x += printed
		width -= printed
	}
}

// shortLine joins enabled keybinds with the short separator. Bindings that do
// not fit are dropped and replaced by an ellipsis if there is room for it.
func (h *Help) shortLine(bindings []keybind.Keybind, maxWidth int) line {
	var out line
	sep := segment{text: h.shortSeparator, style: h.Styles.ShortSeparatorStyle}
	if sep.text == "" {
		sep.text = " "
	}

	for _, kb := range bindings {
		if !kb.Enabled() {
			continue
		}
		item := h.shortItem(kb.Help())
		if len(item) == 0 {
			continue
		}

		candidate := append(line(nil), out...)
		if len(candidate) > 0 {
			candidate = append(candidate, sep)
		}
		candidate = append(candidate, item...)
		if maxWidth > 0 && candidate.width() > maxWidth {
			if len(out) == 0 {
				return nil
			}
			return append(out, h.ellipsisTail(out, maxWidth)...)
		}
		out = candidate
	}
	return out
}

func (h *Help) shortItem(help keybind.Help) line {
	key := segment{text: help.Key, style: h.Styles.ShortKeyStyle}
	desc := segment{text: help.Desc, style: h.Styles.ShortDescStyle}
	switch {
	case help.Key == "" && help.Desc == "":
		return nil
	case help.Key == "":
		return line{desc}
	case help.Desc == "":
		return line{key}
	}
	return line{key, {text: " ", style: h.Styles.ShortDescStyle}, desc}
}

// column is one group of the full help.
type column struct {
	entries  []keybind.Help
	keyWidth int
	width    int
}

func (h *Help) columns(groups [][]keybind.Keybind) []column {
	columns := make([]column, 0, len(groups))
	for _, group := range groups {
		var col column
		for _, kb := range group {
			help := kb.Help()
			if !kb.Enabled() || (help.Key == "" && help.Desc == "") {
				continue
			}
			col.entries = append(col.entries, help)
			col.keyWidth = max(col.keyWidth, spinwheel.StringWidth(help.Key))
		}
		if len(col.entries) == 0 {
			continue
		}
		for _, e := range col.entries {
			width := col.keyWidth + spinwheel.StringWidth(e.Desc)
			if e.Key != "" && e.Desc != "" {
				width++
			}
			col.width = max(col.width, width)
		}
		columns = append(columns, col)
	}
	return columns
}

// fullLines lays out groups as columns, left to right, as long as they fit.
// Each column is padded to its width so separators stay aligned.
func (h *Help) fullLines(groups [][]keybind.Keybind, maxWidth int) []line {
	columns := h.columns(groups)
	if len(columns) == 0 {
		return nil
	}

	sepText := h.fullSeparator
	if sepText == "" {
		sepText = " "
	}
	sepWidth := spinwheel.StringWidth(sepText)

	included, total := 0, 0
	for i, col := range columns {
		next := col.width
		if i > 0 {
			next += sepWidth
		}
		if maxWidth > 0 && total+next > maxWidth {
			break
		}
		included++
		total += next
	}
	if included == 0 {
		return []line{{{text: h.ellipsis, style: h.Styles.EllipsisStyle}}}
	}

	rows := 0
	for _, col := range columns[:included] {
		rows = max(rows, len(col.entries))
	}

	lines := make([]line, 0, rows)
	for row := range rows {
		var l line
		for i, col := range columns[:included] {
			if i > 0 {
				l = append(l, segment{text: sepText, style: h.Styles.FullSeparatorStyle})
			}
			l = append(l, h.fullCell(col, row, i == included-1)...)
		}
		lines = append(lines, l)
	}

	if included < len(columns) {
		lines[0] = append(lines[0], h.ellipsisTail(lines[0], maxWidth)...)
	}
	return lines
}

// fullCell renders one entry of col. Cells of all but the last column are
// padded to the column width.
func (h *Help) fullCell(col column, row int, last bool) line {
	pad := func(n int, style tcell.Style) segment {
		return segment{text: strings.Repeat(" ", n), style: style}
	}
	if row >= len(col.entries) {
		return line{pad(col.width, h.Styles.FullDescStyle)}
	}

	e := col.entries[row]
	var cell line
	if e.Key != "" {
		cell = append(cell, segment{text: e.Key, style: h.Styles.FullKeyStyle})
	}
	if n := col.keyWidth - spinwheel.StringWidth(e.Key); n > 0 {
		cell = append(cell, pad(n, h.Styles.FullKeyStyle))
	}
	if e.Key != "" && e.Desc != "" {
		cell = append(cell, pad(1, h.Styles.FullDescStyle))
	}
	if e.Desc != "" {
		cell = append(cell, segment{text: e.Desc, style: h.Styles.FullDescStyle})
	}
	if n := col.width - cell.width(); !last && n > 0 {
		cell = append(cell, pad(n, h.Styles.FullDescStyle))
	}
	return cell
}

// ellipsisTail returns the truncation marker if it fits behind current.
func (h *Help) ellipsisTail(current line, maxWidth int) line {
	if maxWidth <= 0 || h.ellipsis == "" {
		return nil
	}
	tail := line{
		{text: " ", style: h.Styles.EllipsisStyle},
		{text: h.ellipsis, style: h.Styles.EllipsisStyle},
	}
	if current.width()+tail.width() <= maxWidth {
		return tail
	}
	return nil
}
