package state

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/atomicstack/minui-list/internal/menu"
)

func newTestList(pageSize int, names ...string) *List {
	items := make([]menu.Item, len(names))
	for i, name := range names {
		if len(name) > 0 && name[0] == '#' {
			items[i] = menu.NewHeader(name[1:])
			continue
		}
		items[i] = menu.NewItem(name)
	}
	return NewList(items, pageSize)
}

func numbered(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("item-%02d", i)
	}
	return names
}

func assertWindow(t *testing.T, l *List, selected, first, last int) {
	t.Helper()
	if l.Selected != selected || l.FirstVisible != first || l.LastVisible != last {
		t.Fatalf("expected selected=%d window=[%d,%d), got selected=%d window=[%d,%d)",
			selected, first, last, l.Selected, l.FirstVisible, l.LastVisible)
	}
}

func assertInvariants(t *testing.T, l *List) {
	t.Helper()
	n := len(l.Items)
	if l.Selected < 0 || l.Selected >= n {
		t.Fatalf("selected %d out of range [0,%d)", l.Selected, n)
	}
	if !(0 <= l.FirstVisible && l.FirstVisible <= l.Selected && l.Selected < l.LastVisible && l.LastVisible <= n) {
		t.Fatalf("window invariant broken: selected=%d window=[%d,%d) n=%d", l.Selected, l.FirstVisible, l.LastVisible, n)
	}
	if l.LastVisible-l.FirstVisible > l.PageSize {
		t.Fatalf("window [%d,%d) wider than page size %d", l.FirstVisible, l.LastVisible, l.PageSize)
	}
}

func TestPageSizeFor(t *testing.T) {
	if got := PageSizeFor(8, ""); got != 8 {
		t.Fatalf("expected 8 without title, got %d", got)
	}
	if got := PageSizeFor(8, "Pick one"); got != 7 {
		t.Fatalf("expected 7 with title, got %d", got)
	}
	if got := PageSizeFor(1, "Pick one"); got != 1 {
		t.Fatalf("expected page size floor of 1, got %d", got)
	}
}

func TestNewListInitialState(t *testing.T) {
	l := newTestList(3, numbered(5)...)
	assertWindow(t, l, 0, 0, 3)
	if l.HasOptions {
		t.Fatalf("expected HasOptions false")
	}

	short := newTestList(8, "a", "b")
	assertWindow(t, short, 0, 0, 2)
}

func TestNewListSkipsLeadingHeaders(t *testing.T) {
	l := newTestList(2, "#Section", "#Sub", "a", "b")
	assertWindow(t, l, 2, 1, 3)
}

func TestNewListClonesItems(t *testing.T) {
	items := []menu.Item{menu.NewItem("a")}
	items[0].Options = []string{"x", "y"}
	l := NewList(items, 3)
	l.Items[0].Options[0] = "changed"
	if items[0].Options[0] != "x" {
		t.Fatalf("expected source items untouched")
	}
	if !l.HasOptions {
		t.Fatalf("expected HasOptions true")
	}
}

func TestEmptyListOperationsAreNoOps(t *testing.T) {
	l := NewList(nil, 4)
	assertWindow(t, l, 0, 0, 0)
	if l.MoveSelection(1, false) || l.MoveSelection(-1, false) {
		t.Fatalf("expected no movement on empty list")
	}
	if l.PageOrCycle(1) || l.ToggleEnable() || l.Select(0) {
		t.Fatalf("expected no mutation on empty list")
	}
	if _, ok := l.Current(); ok {
		t.Fatalf("expected no current item")
	}
	if len(l.Visible()) != 0 {
		t.Fatalf("expected no visible items")
	}
}

func TestSelectSnapsWindow(t *testing.T) {
	l := newTestList(3, numbered(10)...)
	if !l.Select(7) {
		t.Fatalf("expected select to succeed")
	}
	assertWindow(t, l, 7, 5, 8)
	if !l.Select(1) {
		t.Fatalf("expected select to succeed")
	}
	assertWindow(t, l, 1, 1, 4)
	if l.Select(1) || l.Select(-1) || l.Select(10) {
		t.Fatalf("expected rejected selections")
	}

	withHeader := newTestList(3, "#H", "a")
	if withHeader.Select(0) {
		t.Fatalf("expected header selection to be rejected")
	}
}

func TestToggleEnable(t *testing.T) {
	items := []menu.Item{menu.NewItem("fixed"), menu.NewItem("switch")}
	items[1].SupportsEnabling = menu.Present(true)
	l := NewList(items, 4)

	if l.ToggleEnable() {
		t.Fatalf("expected toggle to be refused without supports_enabling")
	}
	if !l.Items[0].IsEnabled() {
		t.Fatalf("expected enabled state unchanged")
	}

	l.Select(1)
	if !l.ToggleEnable() {
		t.Fatalf("expected toggle to apply")
	}
	if l.Items[1].IsEnabled() {
		t.Fatalf("expected item disabled after toggle")
	}
	if l.Items[1].Enabled.Set {
		t.Fatalf("toggle must not mark enabled as present")
	}
	l.ToggleEnable()
	if !l.Items[1].IsEnabled() {
		t.Fatalf("expected item enabled after second toggle")
	}
}

func TestTerminateFreezesList(t *testing.T) {
	l := newTestList(3, numbered(5)...)
	if l.Terminate(OutcomeCancel) {
		t.Fatalf("terminate never requests a redraw")
	}
	if !l.Done() || l.Outcome() != OutcomeCancel {
		t.Fatalf("expected cancel outcome, got %v", l.Outcome())
	}
	l.Terminate(OutcomeConfirm)
	if l.Outcome() != OutcomeCancel {
		t.Fatalf("expected first outcome to stick, got %v", l.Outcome())
	}
	if l.MoveSelection(1, false) || l.PageOrCycle(1) || l.Select(3) {
		t.Fatalf("expected no mutation after terminate")
	}
	assertWindow(t, l, 0, 0, 3)
}

func TestWindowInvariantsHoldUnderRandomNavigation(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	layouts := [][]string{
		numbered(1),
		numbered(3),
		numbered(17),
		{"a", "#H1", "b", "c", "#H2", "d", "e", "f", "#H3", "g"},
	}
	for _, names := range layouts {
		for _, pageSize := range []int{1, 2, 3, 5, 20} {
			l := newTestList(pageSize, names...)
			for i := 0; i < 500; i++ {
				switch rng.Intn(4) {
				case 0:
					l.MoveSelection(1, rng.Intn(2) == 0)
				case 1:
					l.MoveSelection(-1, rng.Intn(2) == 0)
				case 2:
					l.PageOrCycle(1)
				default:
					l.PageOrCycle(-1)
				}
				assertInvariants(t, l)
			}
		}
	}
}
