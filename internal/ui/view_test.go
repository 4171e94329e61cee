package ui

import (
	"strings"
	"testing"

	"github.com/atomicstack/minui-list/internal/format/table"
	uistate "github.com/atomicstack/minui-list/internal/ui/state"
	"github.com/charmbracelet/x/ansi"
)

// plainView renders the model without styling escapes.
func plainView(m *Model) string {
	return ansi.Strip(m.View())
}

func TestViewShowsTitleItemsAndFooter(t *testing.T) {
	m, _ := newTestModel(Options{Title: "Settings"})
	view := plainView(m)
	for _, want := range []string{"Settings", "Display", "Brightness", "‹ medium ›", "[ ] Night mode", "A SELECT", "B BACK"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected view to contain %q, got:\n%s", want, view)
		}
	}
	if strings.Contains(view, "ENABLE") {
		t.Fatalf("expected unassigned enable role to be hidden, got:\n%s", view)
	}
}

func TestViewMarksSelection(t *testing.T) {
	m, _ := newTestModel(Options{})
	lines := strings.Split(plainView(m), "\n")
	if !strings.HasPrefix(lines[1], itemIndicator+" Brightness") {
		t.Fatalf("expected selected row to carry the indicator, got %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], itemIndicator+" [") {
		t.Fatalf("expected unselected row to carry the indicator, got %q", lines[2])
	}
	if strings.HasPrefix(lines[0], itemIndicator) {
		t.Fatalf("expected header without indicator, got %q", lines[0])
	}
}

func TestViewCachesUntilDirty(t *testing.T) {
	m, _ := newTestModel(Options{})
	first := m.View()
	m.List().Items[1].Name = "Changed"
	if got := m.View(); got != first {
		t.Fatalf("expected cached view to be reused")
	}
	NewHarness(m).Press("down")
	if got := plainView(m); !strings.Contains(got, "Changed") {
		t.Fatalf("expected redraw after move, got:\n%s", got)
	}
}

func TestViewTruncatesToWidth(t *testing.T) {
	m, _ := newTestModel(Options{Width: 12})
	for _, line := range strings.Split(plainView(m), "\n") {
		if strings.Contains(line, "SELECT") {
			continue
		}
		if w := table.CellWidth(line); w > 12 {
			t.Fatalf("expected line width <= 12, got %d for %q", w, line)
		}
	}
}

func TestViewEmptyList(t *testing.T) {
	m := NewModel(uistate.NewList(nil, 4), Options{})
	if view := plainView(m); !strings.Contains(view, emptyMessage) {
		t.Fatalf("expected empty message, got:\n%s", view)
	}
	h := NewHarness(m)
	h.Press("down", "right", "a")
	if !h.Quit() {
		t.Fatalf("expected confirm on empty list to quit")
	}
}
