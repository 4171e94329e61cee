package config

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/atomicstack/minui-list/internal/app"
	"github.com/atomicstack/minui-list/internal/format/result"
	"github.com/atomicstack/minui-list/internal/logging"
	"github.com/atomicstack/minui-list/internal/menu"
	"github.com/atomicstack/minui-list/internal/ui"
	"github.com/atomicstack/minui-list/internal/ui/command"
	"github.com/spf13/pflag"
)

var (
	ErrMissingFile   = errors.New("--file is required")
	ErrInvalidFormat = errors.New("invalid --format")
	ErrInvalidMode   = errors.New("invalid --stdout-value")
	ErrInvalidSize   = errors.New("size must be >= 0")
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Level    string
	Trace    bool
}

// envPrefix prefixes the environment fallback of every flag: --log-file
// reads MINUI_LIST_LOG_FILE.
const envPrefix = "MINUI_LIST_"

// Binder holds the flags registered on a flag set until they are parsed.
type Binder struct {
	fs *pflag.FlagSet

	confirmButton, confirmText *string
	cancelButton, cancelText   *string
	actionButton, actionText   *string
	enableButton, enableText   *string

	file        *string
	format      *string
	itemKey     *string
	header      *string
	stdoutValue *string
	rows        *int
	width       *int
	logFile     *string
	logLevel    *string
	trace       *bool
}

// Bind registers every flag on fs, with defaults taken from environ where
// the matching variable is set. Flags given on the command line still win.
func Bind(fs *pflag.FlagSet, environ []string) *Binder {
	env := parseEnv(environ)
	str := func(name, fallback, usage string) *string {
		return fs.String(name, envOrDefault(env, envName(name), fallback), usage)
	}
	num := func(name string, fallback int, usage string) *int {
		return fs.Int(name, envOrInt(env, envName(name), fallback), usage)
	}
	labels := ui.DefaultLabels()

	b := &Binder{fs: fs}
	b.confirmButton = str("confirm-button", string(command.ButtonA), "button that confirms the selection (A, B, X or Y)")
	b.confirmText = str("confirm-text", labels.Confirm, "footer text for the confirm button")
	b.cancelButton = str("cancel-button", string(command.ButtonB), "button that cancels (A, B, X or Y)")
	b.cancelText = str("cancel-text", labels.Cancel, "footer text for the cancel button")
	b.actionButton = str("action-button", "", "button that triggers the action outcome (unassigned by default)")
	b.actionText = str("action-text", labels.Action, "footer text for the action button")
	b.enableButton = str("enable-button", "", "button that toggles enabling (unassigned by default)")
	b.enableText = str("enable-text", labels.Enable, "footer text for the enable button")
	b.file = str("file", "", "path to the list file, or - for stdin")
	b.format = str("format", string(menu.FormatJSON), "input format: json, text or yaml")
	b.itemKey = str("item-key", "", "name of the items array when the input is an object")
	b.header = str("header", "", "title shown above the list")
	b.stdoutValue = str("stdout-value", string(result.ModeSelected), "what to print on success: selected or state")
	b.rows = num("rows", 0, "list rows on screen (0 derives them from the terminal)")
	b.width = num("width", 0, "viewport width in cells (0 uses terminal width)")
	b.logFile = str("log-file", "", "append logs to this file")
	b.logLevel = str("log-level", "warn", "log level: debug, info, warn or error")
	b.trace = fs.Bool("trace", envOrBool(env, envName("trace"), false), "enable verbose JSON trace logging")
	return b
}

// Config validates the parsed flags. args is kept for the startup trace.
func (b *Binder) Config(args []string) (Config, error) {
	if strings.TrimSpace(*b.file) == "" {
		return Config{}, ErrMissingFile
	}
	format, err := menu.ParseFormat(*b.format)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}
	mode, err := result.ParseMode(*b.stdoutValue)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidMode, err)
	}
	bindings, err := b.bindings()
	if err != nil {
		return Config{}, err
	}
	if *b.rows < 0 {
		return Config{}, fmt.Errorf("rows: %w (got %d)", ErrInvalidSize, *b.rows)
	}
	if *b.width < 0 {
		return Config{}, fmt.Errorf("width: %w (got %d)", ErrInvalidSize, *b.width)
	}
	if _, err := logging.ParseLevel(*b.logLevel); err != nil {
		return Config{}, err
	}

	flags := make(map[string]string)
	b.fs.VisitAll(func(f *pflag.Flag) {
		flags[f.Name] = f.Value.String()
	})

	cfg := Config{
		App: app.Config{
			File:     *b.file,
			Format:   format,
			ItemKey:  *b.itemKey,
			Title:    *b.header,
			Mode:     mode,
			Rows:     *b.rows,
			Width:    *b.width,
			Bindings: bindings,
			Labels: ui.Labels{
				Confirm: *b.confirmText,
				Cancel:  *b.cancelText,
				Action:  *b.actionText,
				Enable:  *b.enableText,
			},
		},
		Logging: Logging{
			FilePath: *b.logFile,
			Level:    *b.logLevel,
			Trace:    *b.trace,
		},
		Flags: flags,
		Args:  append([]string(nil), args...),
	}
	return cfg, nil
}

func (b *Binder) bindings() (command.Bindings, error) {
	var out command.Bindings
	for _, role := range []struct {
		name string
		raw  string
		dst  *command.Button
	}{
		{"confirm-button", *b.confirmButton, &out.Confirm},
		{"cancel-button", *b.cancelButton, &out.Cancel},
		{"action-button", *b.actionButton, &out.Action},
		{"enable-button", *b.enableButton, &out.Enable},
	} {
		button, err := command.ParseButton(role.raw)
		if err != nil {
			return command.Bindings{}, fmt.Errorf("--%s: %w", role.name, err)
		}
		*role.dst = button
	}
	if err := out.Validate(); err != nil {
		return command.Bindings{}, err
	}
	return out, nil
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	fs := pflag.NewFlagSet("minui-list", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	b := Bind(fs, environ)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return b.Config(args)
}

func envName(flag string) string {
	return envPrefix + strings.ToUpper(strings.ReplaceAll(flag, "-", "_"))
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// Validate checks cross-field rules on an assembled configuration.
func Validate(cfg Config) error {
	if strings.TrimSpace(cfg.App.File) == "" {
		return ErrMissingFile
	}
	return cfg.App.Bindings.Validate()
}
