package wheel

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// ErrRangeOverflow is returned when a numeric range holds more values than a
// 32-bit item count can represent.
var ErrRangeOverflow = errors.New("wheel: numeric range overflows item count")

// TextSource supplies item labels. Text wheels render it through an adapter of
// the host toolkit.
type TextSource interface {
	ItemsCount() int
	// ItemText returns the label of index, or false if index is out of range.
	ItemText(index int) (string, bool)
}

// FormatFunc formats a numeric item value.
type FormatFunc func(value int) string

// NumericSource lists the integers in [min, max].
type NumericSource struct {
	AdapterBase

	min, max   int
	format     string
	formatFunc FormatFunc
}

// NewNumericSource returns a source for [minValue, maxValue]. The format is a fmt verb
// string such as "%02d"; empty means decimal. A maxValue below minValue yields an empty
// source.
func NewNumericSource(minValue, maxValue int, format string) (*NumericSource, error) {
	if err := validateRange(minValue, maxValue); err != nil {
		return nil, err
	}
	return &NumericSource{min: minValue, max: maxValue, format: format}, nil
}

func validateRange(minValue, maxValue int) error {
	if maxValue >= minValue && uint64(maxValue)-uint64(minValue) >= math.MaxInt32 {
		return fmt.Errorf("%w: [%d, %d]", ErrRangeOverflow, minValue, maxValue)
	}
	return nil
}

func (s *NumericSource) Min() int { return s.min }
func (s *NumericSource) Max() int { return s.max }

// SetMin changes the lower bound and notifies observers.
func (s *NumericSource) SetMin(minValue int) error {
	return s.SetRange(minValue, s.max)
}

// SetMax changes the upper bound and notifies observers.
func (s *NumericSource) SetMax(maxValue int) error {
	return s.SetRange(s.min, maxValue)
}

// SetRange changes both bounds and notifies observers. The source is left
// unchanged if the new range is invalid.
func (s *NumericSource) SetRange(minValue, maxValue int) error {
	if err := validateRange(minValue, maxValue); err != nil {
		return err
	}
	if minValue == s.min && maxValue == s.max {
		return nil
	}
	s.min, s.max = minValue, maxValue
	s.NotifyChanged()
	return nil
}

// SetFormatFunc replaces the format string with fn. A nil fn restores the
// format string.
func (s *NumericSource) SetFormatFunc(fn FormatFunc) *NumericSource {
	s.formatFunc = fn
	s.NotifyChanged()
	return s
}

func (s *NumericSource) ItemsCount() int {
	if s.max < s.min {
		return 0
	}
	return s.max - s.min + 1
}

func (s *NumericSource) ItemText(index int) (string, bool) {
	value, ok := s.Value(index)
	if !ok {
		return "", false
	}
	switch {
	case s.formatFunc != nil:
		return s.formatFunc(value), true
	case s.format != "":
		return fmt.Sprintf(s.format, value), true
	default:
		return strconv.Itoa(value), true
	}
}

// Value returns the number shown at index.
func (s *NumericSource) Value(index int) (int, bool) {
	if index < 0 || index >= s.ItemsCount() {
		return 0, false
	}
	return s.min + index, true
}

// Index returns the item index of value.
func (s *NumericSource) Index(value int) (int, bool) {
	if value < s.min || value > s.max {
		return 0, false
	}
	return value - s.min, true
}

// StringSource lists fixed labels.
type StringSource struct {
	AdapterBase

	items []string
}

func NewStringSource(items ...string) *StringSource {
	return &StringSource{items: items}
}

// SetItems replaces the labels. Cached visuals are invalidated.
func (s *StringSource) SetItems(items ...string) *StringSource {
	s.items = items
	s.NotifyInvalidated()
	return s
}

func (s *StringSource) Items() []string {
	return s.items
}

func (s *StringSource) ItemsCount() int {
	return len(s.items)
}

func (s *StringSource) ItemText(index int) (string, bool) {
	if index < 0 || index >= len(s.items) {
		return "", false
	}
	return s.items[index], true
}

// FuncSource computes labels on demand.
type FuncSource struct {
	AdapterBase

	Count func() int
	Text  func(index int) string
}

func (s *FuncSource) ItemsCount() int {
	if s.Count == nil {
		return 0
	}
	return s.Count()
}

func (s *FuncSource) ItemText(index int) (string, bool) {
	if s.Text == nil || index < 0 || index >= s.ItemsCount() {
		return "", false
	}
	return s.Text(index), true
}

// FindItem returns the item whose label best matches query. Matching is fuzzy
// and case-insensitive; closer matches rank first and ties go to the lower
// index.
func FindItem(src TextSource, query string) (int, bool) {
	if query == "" {
		return 0, false
	}

	best, bestRank := -1, -1
	for i := range src.ItemsCount() {
		text, ok := src.ItemText(i)
		if !ok {
			continue
		}
		rank := fuzzy.RankMatchNormalizedFold(query, text)
		if rank < 0 {
			continue
		}
		if best < 0 || rank < bestRank {
			best, bestRank = i, rank
			if rank == 0 {
				break
			}
		}
	}
	return best, best >= 0
}
