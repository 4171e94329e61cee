package app

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/atomicstack/minui-list/internal/format/result"
	"github.com/atomicstack/minui-list/internal/logging"
	"github.com/atomicstack/minui-list/internal/logging/events"
	"github.com/atomicstack/minui-list/internal/menu"
	"github.com/atomicstack/minui-list/internal/ui"
	"github.com/atomicstack/minui-list/internal/ui/command"
	uistate "github.com/atomicstack/minui-list/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"golang.org/x/term"
)

// Process exit codes.
const (
	ExitConfirm     = 0
	ExitError       = 1
	ExitCancel      = 2
	ExitMenu        = 3
	ExitAction      = 4
	ExitParse       = 10
	ExitSerialize   = 11
	ExitInterrupted = 130
)

// DefaultRows is the number of list rows used when neither a flag nor the
// terminal supplies one.
const DefaultRows = 8

// footerRows is the space the help footer takes below the list.
const footerRows = 2

// Config describes user-provided application options.
type Config struct {
	File     string
	Format   menu.Format
	ItemKey  string
	Title    string
	Mode     result.Mode
	Rows     int
	Width    int
	Bindings command.Bindings
	Labels   ui.Labels
}

// Error carries the process exit code alongside the cause.
type Error struct {
	Code int
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ExitCode extracts the exit code from err: 0 for nil, the carried code for
// an *Error and ExitError for anything else.
func ExitCode(err error) int {
	if err == nil {
		return ExitConfirm
	}
	var exitErr *Error
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitError
}

// Streams are the standard descriptors used by Run.
type Streams struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Session holds a loaded list between the interactive loop and output.
type Session struct {
	cfg   Config
	list  *uistate.List
	model *ui.Model
}

// Prepare loads the configured source and builds the engine. Load failures
// are reported with ExitError.
func Prepare(cfg Config, stdin io.Reader) (*Session, error) {
	loaded, err := menu.Load(
		menu.Source{Path: cfg.File, Stdin: stdin},
		menu.LoadOptions{Format: cfg.Format, ItemKey: cfg.ItemKey},
	)
	if err != nil {
		return nil, &Error{Code: ExitError, Err: fmt.Errorf("load %s: %w", cfg.File, err)}
	}
	rows := resolveRows(cfg.Rows, terminalHeight)
	list := uistate.NewList(loaded.Items, uistate.PageSizeFor(rows, cfg.Title))
	if loaded.Selected.Set {
		list.Select(loaded.Selected.Value)
	}
	logging.Debug("list ready",
		zap.Int("items", list.Len()),
		zap.Int("page_size", list.PageSize),
		zap.Int("selected", list.Selected),
	)
	model := ui.NewModel(list, ui.Options{
		Title:    cfg.Title,
		Width:    cfg.Width,
		Bindings: cfg.Bindings,
		Labels:   cfg.Labels,
	})
	return &Session{cfg: cfg, list: list, model: model}, nil
}

// List exposes the engine.
func (s *Session) List() *uistate.List {
	return s.list
}

// Model exposes the Bubble Tea model.
func (s *Session) Model() *ui.Model {
	return s.model
}

// Interact runs the Bubble Tea program until the list terminates. The TUI
// draws on stderr so stdout only ever carries the result.
func (s *Session) Interact() error {
	opts := []tea.ProgramOption{tea.WithOutput(os.Stderr), tea.WithAltScreen()}
	if s.cfg.File == menu.StdinPath || !term.IsTerminal(int(os.Stdin.Fd())) {
		opts = append(opts, tea.WithInputTTY())
	}
	program := tea.NewProgram(s.model, opts...)
	_, err := program.Run()
	if errors.Is(err, tea.ErrInterrupted) || errors.Is(err, tea.ErrProgramKilled) {
		s.list.Terminate(uistate.OutcomeInterrupted)
		return nil
	}
	if err != nil {
		return &Error{Code: ExitError, Err: err}
	}
	return nil
}

// Finish maps the outcome to an exit code, writing the serialized result to
// stdout for confirm and action.
func (s *Session) Finish(stdout io.Writer) (int, error) {
	outcome := s.list.Outcome()
	code, emit := outcomeCode(outcome)
	if emit {
		out, err := result.Serialize(s.list.Items, s.list.Selected, result.Options{Mode: s.cfg.Mode, ItemKey: s.cfg.ItemKey})
		if err != nil {
			return ExitSerialize, &Error{Code: ExitSerialize, Err: err}
		}
		if _, err := fmt.Fprintln(stdout, out); err != nil {
			return ExitError, &Error{Code: ExitError, Err: fmt.Errorf("write result: %w", err)}
		}
	}
	if outcome == uistate.OutcomeNone {
		return code, &Error{Code: code, Err: errors.New("list closed without an outcome")}
	}
	return code, nil
}

func outcomeCode(outcome uistate.Outcome) (int, bool) {
	switch outcome {
	case uistate.OutcomeConfirm:
		return ExitConfirm, true
	case uistate.OutcomeAction:
		return ExitAction, true
	case uistate.OutcomeCancel:
		return ExitCancel, false
	case uistate.OutcomeMenu:
		return ExitMenu, false
	case uistate.OutcomeInterrupted:
		return ExitInterrupted, false
	default:
		return ExitError, false
	}
}

// Run loads, interacts and emits, returning the process exit code.
func Run(cfg Config, streams Streams) (int, error) {
	session, err := Prepare(cfg, streams.Stdin)
	if err != nil {
		events.App.Exit(uistate.OutcomeNone.String(), ExitCode(err))
		return ExitCode(err), err
	}
	if err := session.Interact(); err != nil {
		events.App.Exit(uistate.OutcomeNone.String(), ExitCode(err))
		return ExitCode(err), err
	}
	code, err := session.Finish(streams.Stdout)
	outcome := session.list.Outcome().String()
	logging.Info("list closed", zap.String("outcome", outcome), zap.Int("code", code))
	events.App.Exit(outcome, code)
	return code, err
}

// resolveRows picks the list height: an explicit value, else the terminal
// height minus the footer, else DefaultRows.
func resolveRows(rows int, height func() (int, bool)) int {
	if rows > 0 {
		return rows
	}
	if h, ok := height(); ok && h-footerRows > 0 {
		return h - footerRows
	}
	return DefaultRows
}

func terminalHeight() (int, bool) {
	for _, f := range []*os.File{os.Stderr, os.Stdout, os.Stdin} {
		fd := int(f.Fd())
		if !term.IsTerminal(fd) {
			continue
		}
		if _, h, err := term.GetSize(fd); err == nil {
			return h, true
		}
	}
	return 0, false
}
