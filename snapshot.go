package spinwheel

import (
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v3"
	"github.com/rivo/uniseg"
)

type cell struct {
	text  string
	style tcell.Style
	dw    uint8
	cont  bool
}

// SnapshotScreen is a tcell.Screen that records drawn cells in memory instead
// of writing to a terminal. Only the drawing subset of the interface is
// implemented; calling anything else panics.
type SnapshotScreen struct {
	tcell.Screen

	width, height int
	cells         []cell
	defaultStyle  tcell.Style
}

// NewSnapshotScreen returns an empty screen of the given size.
func NewSnapshotScreen(width, height int) *SnapshotScreen {
	width, height = max(width, 0), max(height, 0)
	return &SnapshotScreen{
		width:  width,
		height: height,
		cells:  make([]cell, width*height),
	}
}

// Snapshot lays p out over a width x height screen, draws it and returns the
// resulting text. See [SnapshotScreen.String].
func Snapshot(p Primitive, width, height int) string {
	screen := NewSnapshotScreen(width, height)
	p.SetRect(0, 0, width, height)
	p.Draw(screen)
	return screen.String()
}

func (s *SnapshotScreen) Size() (int, int) {
	return s.width, s.height
}

func (s *SnapshotScreen) Clear() {
	clear(s.cells)
}

func (s *SnapshotScreen) Fill(r rune, style tcell.Style) {
	text := string(r)
	for i := range s.cells {
		s.cells[i] = cell{text: text, style: style, dw: 1}
	}
}

func (s *SnapshotScreen) SetStyle(style tcell.Style) {
	s.defaultStyle = style
}

func (s *SnapshotScreen) ShowCursor(x, y int) {}
func (s *SnapshotScreen) HideCursor()         {}
func (s *SnapshotScreen) Show()               {}
func (s *SnapshotScreen) Sync()               {}

func (s *SnapshotScreen) cellAt(x, y int) (cell, bool) {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return cell{}, false
	}
	return s.cells[y*s.width+x], true
}

func (s *SnapshotScreen) putCell(x, y int, c cell) {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return
	}

	// Overwriting the lead of a wide grapheme clears its old tail.
	index := y*s.width + x
	if prev := s.cells[index]; !prev.cont && prev.dw > 1 {
		for i := x + 1; i < min(x+int(prev.dw), s.width); i++ {
			s.cells[y*s.width+i] = cell{}
		}
	}
	s.cells[index] = c
}

func (s *SnapshotScreen) Get(x, y int) (str string, style tcell.Style, width int) {
	c, ok := s.cellAt(x, y)
	if !ok || c.text == "" {
		return " ", s.defaultStyle, 1
	}
	return c.text, c.style, max(int(c.dw), 1)
}

func (s *SnapshotScreen) Put(x int, y int, str string, style tcell.Style) (string, int) {
	if str == "" {
		return "", 0
	}

	cluster, remain, width, _ := uniseg.FirstGraphemeClusterInString(str, -1)
	if cluster == "" {
		r, size := utf8.DecodeRuneInString(str)
		if size == 0 {
			return "", 0
		}
		cluster = string(r)
		remain = str[size:]
		width = 1
	}
	if width <= 0 {
		return remain, 0
	}

	// Match terminal clipping behavior for wide graphemes at the right edge.
	if width > 1 && x == s.width-1 {
		cluster = " "
		width = 1
	}

	s.putCell(x, y, cell{text: cluster, style: style, dw: uint8(min(width, 255))})
	for i := 1; i < width; i++ {
		s.putCell(x+i, y, cell{style: style, cont: true})
	}
	return remain, width
}

func (s *SnapshotScreen) PutStr(x int, y int, str string) {
	s.PutStrStyled(x, y, str, s.defaultStyle)
}

func (s *SnapshotScreen) PutStrStyled(x int, y int, str string, style tcell.Style) {
	for str != "" && x < s.width {
		remain, width := s.Put(x, y, str, style)
		if width <= 0 || remain == str {
			return
		}
		x += width
		str = remain
	}
}

// Line returns the text of row y with trailing blanks removed.
func (s *SnapshotScreen) Line(y int) string {
	if y < 0 || y >= s.height {
		return ""
	}
	var b strings.Builder
	for x := 0; x < s.width; x++ {
		c := s.cells[y*s.width+x]
		switch {
		case c.cont:
		case c.text == "":
			b.WriteByte(' ')
		default:
			b.WriteString(c.text)
		}
	}
	return strings.TrimRight(b.String(), " ")
}

// StyleAt returns the style of the cell at x, y.
func (s *SnapshotScreen) StyleAt(x, y int) tcell.Style {
	_, style, _ := s.Get(x, y)
	return style
}

// String returns all rows joined by newlines. Trailing blanks are removed from
// every row.
func (s *SnapshotScreen) String() string {
	lines := make([]string, s.height)
	for y := range lines {
		lines[y] = s.Line(y)
	}
	return strings.Join(lines, "\n")
}
