package spinwheel

import (
	"github.com/ayn2op/spinwheel/wheel"
	"github.com/gdamore/tcell/v3"
)

// observableSource is a text source that reports data changes.
type observableSource interface {
	RegisterObserver(observer wheel.DataSetObserver)
	UnregisterObserver(observer wheel.DataSetObserver)
}

// TextAdapter renders the items of a text source as TextItem visuals. Visuals
// handed back by the wheel are reused. Changes reported by an observable
// source are forwarded to the wheel.
type TextAdapter struct {
	wheel.AdapterBase

	source    wheel.TextSource
	forward   *forwardObserver
	style     tcell.Style
	alignment Alignment
}

// NewTextAdapter returns an adapter for source.
func NewTextAdapter(source wheel.TextSource) *TextAdapter {
	a := &TextAdapter{
		style:     tcell.StyleDefault.Foreground(Styles.PrimaryTextColor).Background(Styles.PrimitiveBackgroundColor),
		alignment: AlignmentCenter,
	}
	a.forward = &forwardObserver{adapter: a}
	a.setSource(source)
	return a
}

// Source returns the text source.
func (a *TextAdapter) Source() wheel.TextSource {
	return a.source
}

// SetSource replaces the text source and invalidates all visuals.
func (a *TextAdapter) SetSource(source wheel.TextSource) *TextAdapter {
	a.setSource(source)
	a.NotifyInvalidated()
	return a
}

func (a *TextAdapter) setSource(source wheel.TextSource) {
	if observable, ok := a.source.(observableSource); ok {
		observable.UnregisterObserver(a.forward)
	}
	a.source = source
	if observable, ok := source.(observableSource); ok {
		observable.RegisterObserver(a.forward)
	}
}

// SetItemStyle sets the style of newly rendered items and invalidates the
// current ones.
func (a *TextAdapter) SetItemStyle(style tcell.Style) *TextAdapter {
	a.style = style
	a.NotifyInvalidated()
	return a
}

// SetAlignment sets the alignment of newly rendered items and invalidates the
// current ones.
func (a *TextAdapter) SetAlignment(alignment Alignment) *TextAdapter {
	a.alignment = alignment
	a.NotifyInvalidated()
	return a
}

func (a *TextAdapter) ItemsCount() int {
	if a.source == nil {
		return 0
	}
	return a.source.ItemsCount()
}

func (a *TextAdapter) Item(index int, recycled Primitive) Primitive {
	text, ok := a.source.ItemText(index)
	if !ok {
		return nil
	}
	return a.textItem(recycled).SetText(text)
}

func (a *TextAdapter) EmptyItem(recycled Primitive) Primitive {
	return a.textItem(recycled).SetText("")
}

func (a *TextAdapter) textItem(recycled Primitive) *TextItem {
	item, ok := recycled.(*TextItem)
	if !ok {
		item = NewTextItem("")
	}
	return item.SetTextStyle(a.style).SetAlignment(a.alignment)
}

// forwardObserver relays source notifications to the adapter's observers.
type forwardObserver struct {
	adapter *TextAdapter
}

func (f *forwardObserver) OnChanged() {
	f.adapter.NotifyChanged()
}

func (f *forwardObserver) OnInvalidated() {
	f.adapter.NotifyInvalidated()
}
