package app

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/atomicstack/minui-list/internal/format/result"
	"github.com/atomicstack/minui-list/internal/menu"
	"github.com/atomicstack/minui-list/internal/testutil"
	"github.com/atomicstack/minui-list/internal/ui"
	"github.com/atomicstack/minui-list/internal/ui/command"
	uistate "github.com/atomicstack/minui-list/internal/ui/state"
)

func settingsConfig(t *testing.T) Config {
	t.Helper()
	return Config{
		File:     filepath.Join(testutil.RepoRoot(t), "testdata", "settings.jsonc"),
		Format:   menu.FormatJSON,
		ItemKey:  "settings",
		Title:    "Settings",
		Mode:     result.ModeSelected,
		Rows:     4,
		Bindings: command.DefaultBindings(),
	}
}

func prepare(t *testing.T, cfg Config) *Session {
	t.Helper()
	session, err := Prepare(cfg, nil)
	if err != nil {
		t.Fatalf("prepare failed: %v", err)
	}
	return session
}

func TestPrepareRestoresSelection(t *testing.T) {
	session := prepare(t, settingsConfig(t))
	list := session.List()
	if list.Selected != 2 {
		t.Fatalf("expected restored selection 2, got %d", list.Selected)
	}
	if list.PageSize != 3 {
		t.Fatalf("expected page size 3 with a title, got %d", list.PageSize)
	}
	if !list.HasOptions {
		t.Fatalf("expected list to report options")
	}
}

func TestPrepareLoadFailureIsGenericError(t *testing.T) {
	cfg := settingsConfig(t)
	cfg.File = filepath.Join(t.TempDir(), "missing.json")
	_, err := Prepare(cfg, nil)
	if !errors.Is(err, menu.ErrUnreadable) {
		t.Fatalf("expected ErrUnreadable, got %v", err)
	}
	if code := ExitCode(err); code != ExitError {
		t.Fatalf("expected exit code %d, got %d", ExitError, code)
	}
}

func TestPrepareReadsStdin(t *testing.T) {
	cfg := Config{File: menu.StdinPath, Format: menu.FormatText, Rows: 5}
	session, err := Prepare(cfg, strings.NewReader("alpha\n\nbeta\r\n"))
	if err != nil {
		t.Fatalf("prepare failed: %v", err)
	}
	if got := session.List().Len(); got != 2 {
		t.Fatalf("expected 2 items, got %d", got)
	}
}

func TestConfirmWritesSelectedName(t *testing.T) {
	session := prepare(t, settingsConfig(t))
	ui.NewHarness(session.Model()).Press("a")

	var out bytes.Buffer
	code, err := session.Finish(&out)
	if err != nil {
		t.Fatalf("finish failed: %v", err)
	}
	if code != ExitConfirm {
		t.Fatalf("expected exit code 0, got %d", code)
	}
	if out.String() != "Night mode\n" {
		t.Fatalf("expected selected name on stdout, got %q", out.String())
	}
}

func TestActionWritesStateDocument(t *testing.T) {
	cfg := settingsConfig(t)
	cfg.Mode = result.ModeState
	cfg.Bindings = command.Bindings{
		Confirm: command.ButtonA,
		Cancel:  command.ButtonB,
		Action:  command.ButtonX,
		Enable:  command.ButtonY,
	}
	session := prepare(t, cfg)
	h := ui.NewHarness(session.Model())
	h.Press("y", "up", "right", "x")
	if !h.Quit() {
		t.Fatalf("expected action to quit")
	}

	var out bytes.Buffer
	code, err := session.Finish(&out)
	if err != nil {
		t.Fatalf("finish failed: %v", err)
	}
	if code != ExitAction {
		t.Fatalf("expected exit code 4, got %d", code)
	}
	if !strings.HasSuffix(out.String(), "\n") {
		t.Fatalf("expected trailing newline, got %q", out.String())
	}
	testutil.AssertGolden(t, "settings.state.golden.json", strings.TrimSuffix(out.String(), "\n"))
}

func TestNonEmittingOutcomes(t *testing.T) {
	cases := map[string]int{
		"b":      ExitCancel,
		"esc":    ExitMenu,
		"ctrl+c": ExitInterrupted,
	}
	for key, want := range cases {
		session := prepare(t, settingsConfig(t))
		ui.NewHarness(session.Model()).Press(key)
		var out bytes.Buffer
		code, err := session.Finish(&out)
		if err != nil {
			t.Fatalf("%s: finish failed: %v", key, err)
		}
		if code != want {
			t.Fatalf("%s: expected exit code %d, got %d", key, want, code)
		}
		if out.Len() != 0 {
			t.Fatalf("%s: expected no stdout, got %q", key, out.String())
		}
	}
}

func TestSerializeFailureDiscardsOutput(t *testing.T) {
	cfg := settingsConfig(t)
	cfg.Mode = result.Mode("bogus")
	session := prepare(t, cfg)
	session.List().Terminate(uistate.OutcomeConfirm)

	var out bytes.Buffer
	code, err := session.Finish(&out)
	if code != ExitSerialize {
		t.Fatalf("expected exit code 11, got %d", code)
	}
	if !errors.Is(err, result.ErrSerialize) {
		t.Fatalf("expected ErrSerialize, got %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no stdout, got %q", out.String())
	}
}

func TestFinishWithoutOutcome(t *testing.T) {
	session := prepare(t, settingsConfig(t))
	code, err := session.Finish(&bytes.Buffer{})
	if code != ExitError || err == nil {
		t.Fatalf("expected generic error, got %d %v", code, err)
	}
}

func TestExitCode(t *testing.T) {
	if got := ExitCode(nil); got != 0 {
		t.Fatalf("expected 0 for nil, got %d", got)
	}
	if got := ExitCode(errors.New("boom")); got != ExitError {
		t.Fatalf("expected 1 for plain error, got %d", got)
	}
	wrapped := &Error{Code: ExitParse, Err: errors.New("bad flag")}
	if got := ExitCode(wrapped); got != ExitParse {
		t.Fatalf("expected 10, got %d", got)
	}
}

func TestResolveRows(t *testing.T) {
	noTerm := func() (int, bool) { return 0, false }
	tall := func() (int, bool) { return 24, true }
	tiny := func() (int, bool) { return 2, true }
	if got := resolveRows(5, tall); got != 5 {
		t.Fatalf("expected explicit rows 5, got %d", got)
	}
	if got := resolveRows(0, tall); got != 22 {
		t.Fatalf("expected terminal rows 22, got %d", got)
	}
	if got := resolveRows(0, noTerm); got != DefaultRows {
		t.Fatalf("expected default rows, got %d", got)
	}
	if got := resolveRows(0, tiny); got != DefaultRows {
		t.Fatalf("expected default rows for tiny terminal, got %d", got)
	}
}
