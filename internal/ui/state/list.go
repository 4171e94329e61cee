package state

import (
	"github.com/atomicstack/minui-list/internal/logging/events"
	"github.com/atomicstack/minui-list/internal/menu"
)

// List owns the selection, the visible window and the per-item mutable
// state for one run. Items keep their length and order for the lifetime of
// the list.
type List struct {
	Items []menu.Item
	// Selected indexes Items and never points at a header, except in the
	// wrap-onto-header case pinned by the navigation tests.
	Selected int
	// FirstVisible and LastVisible bound the half-open window of rows on
	// screen.
	FirstVisible int
	LastVisible  int
	PageSize     int
	// HasOptions switches left/right from paging to option cycling.
	HasOptions bool

	outcome Outcome
}

// PageSizeFor returns the number of item rows available when rows lines fit
// on screen and a title takes one of them.
func PageSizeFor(rows int, title string) int {
	size := rows
	if title != "" {
		size--
	}
	if size < 1 {
		size = 1
	}
	return size
}

// NewList builds the engine from loaded items. The selection starts on the
// first selectable item and the window on the leading page.
func NewList(items []menu.Item, pageSize int) *List {
	if pageSize < 1 {
		pageSize = 1
	}
	l := &List{
		Items:      menu.CloneItems(items),
		PageSize:   pageSize,
		HasOptions: menu.AnyOptions(items),
	}
	l.showLeadingPage()
	for i, it := range l.Items {
		if !it.IsHeader() {
			l.Selected = i
			break
		}
	}
	l.ensureVisible()
	return l
}

// Len returns the number of items.
func (l *List) Len() int {
	return len(l.Items)
}

// Current returns the selected item.
func (l *List) Current() (menu.Item, bool) {
	if l.Selected < 0 || l.Selected >= len(l.Items) {
		return menu.Item{}, false
	}
	return l.Items[l.Selected], true
}

// Visible returns the window slice, sharing storage with Items.
func (l *List) Visible() []menu.Item {
	if len(l.Items) == 0 {
		return nil
	}
	return l.Items[l.FirstVisible:l.LastVisible]
}

// Select moves the selection to index and snaps the window so it is shown.
// Headers and out-of-range indexes are rejected.
func (l *List) Select(index int) bool {
	if l.Done() || index < 0 || index >= len(l.Items) || l.Items[index].IsHeader() {
		return false
	}
	if index == l.Selected {
		return false
	}
	l.Selected = index
	l.ensureVisible()
	events.List.Move(0, l.Selected, l.FirstVisible, l.LastVisible)
	return true
}

// ToggleEnable flips the selected item's enabled state when it supports
// enabling.
func (l *List) ToggleEnable() bool {
	if l.Done() || len(l.Items) == 0 {
		return false
	}
	item := &l.Items[l.Selected]
	if !item.CanToggle() {
		return false
	}
	item.Enabled.Value = !item.Enabled.Value
	events.List.Toggle(l.Selected, item.Enabled.Value)
	return true
}

// Terminate records the terminal outcome. Only the first call has an effect;
// afterwards every operation is a no-op. It never asks for a redraw.
func (l *List) Terminate(outcome Outcome) bool {
	if l.Done() || outcome == OutcomeNone {
		return false
	}
	l.outcome = outcome
	events.List.Terminate(outcome.String(), l.Selected)
	return false
}

// Done reports whether Terminate has been called.
func (l *List) Done() bool {
	return l.outcome != OutcomeNone
}

// Outcome returns the terminal outcome, OutcomeNone while running.
func (l *List) Outcome() Outcome {
	return l.outcome
}
