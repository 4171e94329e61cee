package result

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/atomicstack/minui-list/internal/menu"
	"github.com/atomicstack/minui-list/internal/testutil"
	uistate "github.com/atomicstack/minui-list/internal/ui/state"
	"github.com/google/go-cmp/cmp"
)

func TestSerializeSelectedReturnsNameVerbatim(t *testing.T) {
	items := []menu.Item{menu.NewItem("Apple"), menu.NewItem("  Banana & <co>  ")}
	got, err := Serialize(items, 1, Options{Mode: ModeSelected})
	if err != nil {
		t.Fatalf("serialize failed: %v", err)
	}
	if got != "  Banana & <co>  " {
		t.Fatalf("expected verbatim name, got %q", got)
	}
}

func TestSerializeSelectedWithoutItemsFails(t *testing.T) {
	_, err := Serialize(nil, 0, Options{Mode: ModeSelected})
	if !errors.Is(err, ErrSerialize) || !errors.Is(err, ErrNoSelection) {
		t.Fatalf("expected ErrSerialize wrapping ErrNoSelection, got %v", err)
	}
}

func TestSerializeUnknownMode(t *testing.T) {
	_, err := Serialize([]menu.Item{menu.NewItem("a")}, 0, Options{Mode: "xml"})
	if !errors.Is(err, ErrUnknownMode) {
		t.Fatalf("expected ErrUnknownMode, got %v", err)
	}
}

func TestSerializeStateOmitsFieldsNeverLoaded(t *testing.T) {
	list, err := menu.Parse([]byte(`[{"name": "Plain"}]`), menu.LoadOptions{})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	got, err := Serialize(list.Items, 0, Options{Mode: ModeState})
	if err != nil {
		t.Fatalf("serialize failed: %v", err)
	}
	want := "{\n    \"items\": [\n        {\n            \"name\": \"Plain\"\n        }\n    ],\n    \"selected\": 0\n}"
	if got != want {
		t.Fatalf("unexpected output:\n%s\nwant:\n%s", got, want)
	}
	if strings.Contains(got, "enabled") {
		t.Fatalf("enabled must not appear when it was never loaded")
	}
}

func TestSerializeStateFieldRules(t *testing.T) {
	header := menu.NewHeader("Section")
	header.Options = []string{"ignored"}
	header.Enabled = menu.Present(false)

	toggle := menu.NewItem("Toggle")
	toggle.SupportsEnabling = menu.Present(true)

	explicit := menu.NewItem("Explicit")
	explicit.Enabled = menu.Present(true)
	explicit.SupportsEnabling = menu.Present(false)

	choice := menu.NewItem("Choice")
	choice.Options = []string{"a", "b"}
	choice.SelectedOption = menu.Present(0)

	notHeader := menu.NewItem("NotHeader")
	notHeader.Header = menu.Present(false)

	got, err := Serialize([]menu.Item{header, toggle, explicit, choice, notHeader}, 1, Options{Mode: ModeState, ItemKey: "entries"})
	if err != nil {
		t.Fatalf("serialize failed: %v", err)
	}

	var doc map[string]interface{}
	if err := json.Unmarshal([]byte(got), &doc); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, got)
	}
	want := map[string]interface{}{
		"entries": []interface{}{
			map[string]interface{}{"name": "Section", "is_header": true},
			map[string]interface{}{"name": "Toggle", "enabled": true, "supports_enabling": true},
			map[string]interface{}{"name": "Explicit", "enabled": true, "supports_enabling": false},
			map[string]interface{}{"name": "Choice", "selected_option": float64(0), "options": []interface{}{"a", "b"}},
			map[string]interface{}{"name": "NotHeader"},
		},
		"selected": float64(1),
	}
	if diff := cmp.Diff(want, doc); diff != "" {
		t.Fatalf("unexpected document (-want +got):\n%s", diff)
	}
	if strings.Index(got, `"entries"`) > strings.Index(got, `"selected":`) {
		t.Fatalf("expected items key before selected:\n%s", got)
	}
}

func TestSerializeStateEmptyList(t *testing.T) {
	got, err := Serialize(nil, 0, Options{Mode: ModeState})
	if err != nil {
		t.Fatalf("serialize failed: %v", err)
	}
	want := "{\n    \"items\": [],\n    \"selected\": 0\n}"
	if got != want {
		t.Fatalf("unexpected output:\n%s\nwant:\n%s", got, want)
	}
}

func TestSerializeStateAfterNavigationMatchesGolden(t *testing.T) {
	loaded, err := menu.Parse(testutil.ReadFixture(t, "settings.jsonc"), menu.LoadOptions{Format: menu.FormatJSON, ItemKey: "settings"})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	list := uistate.NewList(loaded.Items, 8)
	if !loaded.Selected.Set || !list.Select(loaded.Selected.Value) {
		t.Fatalf("expected restored selection, got %+v", loaded.Selected)
	}
	list.ToggleEnable()
	list.Select(1)
	list.PageOrCycle(1)

	got, err := Serialize(list.Items, list.Selected, Options{Mode: ModeState, ItemKey: "settings"})
	if err != nil {
		t.Fatalf("serialize failed: %v", err)
	}
	testutil.AssertGolden(t, "settings.state.golden.json", got)
}

func TestStateOutputLoadsBack(t *testing.T) {
	items := []menu.Item{menu.NewHeader("H"), menu.NewItem("a"), menu.NewItem("b")}
	out, err := Serialize(items, 2, Options{Mode: ModeState})
	if err != nil {
		t.Fatalf("serialize failed: %v", err)
	}
	reloaded, err := menu.Parse([]byte(out), menu.LoadOptions{ItemKey: DefaultItemKey})
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if diff := cmp.Diff(items, reloaded.Items); diff != "" {
		t.Fatalf("round trip changed items (-want +got):\n%s", diff)
	}
	if reloaded.Selected != menu.Present(2) {
		t.Fatalf("expected selection 2 restored, got %+v", reloaded.Selected)
	}
}

func TestParseMode(t *testing.T) {
	if m, err := ParseMode(""); err != nil || m != ModeSelected {
		t.Fatalf("expected default selected mode, got %q %v", m, err)
	}
	if m, err := ParseMode("state"); err != nil || m != ModeState {
		t.Fatalf("expected state mode, got %q %v", m, err)
	}
	if m, err := ParseMode(" State "); err != nil || m != ModeState {
		t.Fatalf("expected case-insensitive state mode, got %q %v", m, err)
	}
	if m, err := ParseMode("SELECTED"); err != nil || m != ModeSelected {
		t.Fatalf("expected case-insensitive selected mode, got %q %v", m, err)
	}
	if _, err := ParseMode("all"); !errors.Is(err, ErrUnknownMode) {
		t.Fatalf("expected ErrUnknownMode, got %v", err)
	}
}
