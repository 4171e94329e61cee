package state

import "github.com/atomicstack/minui-list/internal/logging/events"

// MoveSelection moves the selection one row in the direction of delta's sign.
// A header landing spot is skipped with one extra step; the item after that
// step is not checked again. Moving past either end wraps around and shows the
// leading or trailing page. With repeat set (an auto-repeated key rather than
// a fresh press) nothing happens when the selection already sits on the edge
// it is moving towards.
func (l *List) MoveSelection(delta int, repeat bool) bool {
	n := len(l.Items)
	if l.Done() || n == 0 || delta == 0 {
		return false
	}
	step := 1
	if delta < 0 {
		step = -1
	}
	if repeat && ((step < 0 && l.Selected == 0) || (step > 0 && l.Selected == n-1)) {
		return false
	}

	l.Selected += step
	if l.Selected >= 0 && l.Selected < n && l.Items[l.Selected].IsHeader() {
		l.Selected += step
	}

	switch {
	case l.Selected < 0:
		l.Selected = n - 1
		l.showTrailingPage()
	case l.Selected >= n:
		l.Selected = 0
		l.showLeadingPage()
	case l.Selected < l.FirstVisible:
		l.slideWindow(l.Selected - l.FirstVisible)
	case l.Selected >= l.LastVisible:
		l.slideWindow(l.Selected - l.LastVisible + 1)
	}
	events.List.Move(step, l.Selected, l.FirstVisible, l.LastVisible)
	return true
}

// PageOrCycle handles left/right. When any item has options it cycles the
// selected item's option (only while that item is enabled); otherwise it
// jumps a full page, clamping at the ends instead of wrapping.
func (l *List) PageOrCycle(direction int) bool {
	if l.Done() || len(l.Items) == 0 || direction == 0 {
		return false
	}
	if l.HasOptions {
		return l.cycleOption(direction)
	}
	return l.page(direction)
}

func (l *List) cycleOption(direction int) bool {
	item := &l.Items[l.Selected]
	count := len(item.Options)
	if count == 0 || !item.IsEnabled() || item.IsHeader() {
		return false
	}
	step := 1
	if direction < 0 {
		step = -1
	}
	next := ((item.OptionIndex()+step)%count + count) % count
	if next == item.SelectedOption.Value {
		return false
	}
	item.SelectedOption.Value = next
	events.List.Cycle(l.Selected, next)
	return true
}

func (l *List) page(direction int) bool {
	n := len(l.Items)
	step := l.PageSize
	if direction < 0 {
		step = -step
	}
	before := [3]int{l.Selected, l.FirstVisible, l.LastVisible}

	target := l.Selected + step
	switch {
	case target < 0:
		target = 0
		l.showLeadingPage()
	case target >= n:
		target = n - 1
		l.showTrailingPage()
	case target < l.FirstVisible:
		l.FirstVisible = max(0, l.FirstVisible-l.PageSize)
		l.LastVisible = min(n, l.FirstVisible+l.PageSize)
	case target >= l.LastVisible:
		l.LastVisible = min(n, l.LastVisible+l.PageSize)
		l.FirstVisible = max(0, l.LastVisible-l.PageSize)
	}
	l.Selected = l.skipHeader(target, step)
	l.ensureVisible()

	if before == [3]int{l.Selected, l.FirstVisible, l.LastVisible} {
		return false
	}
	events.List.Page(direction, l.Selected, l.FirstVisible, l.LastVisible)
	return true
}

// skipHeader steps off a header landing spot: one further in the jump
// direction, or back one when that is impossible.
func (l *List) skipHeader(index, step int) int {
	if !l.Items[index].IsHeader() {
		return index
	}
	dir := 1
	if step < 0 {
		dir = -1
	}
	for _, candidate := range []int{index + dir, index - dir} {
		if candidate >= 0 && candidate < len(l.Items) && !l.Items[candidate].IsHeader() {
			return candidate
		}
	}
	return index
}
