package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/atomicstack/minui-list/internal/app"
	"github.com/atomicstack/minui-list/internal/config"
	"github.com/atomicstack/minui-list/internal/logging"
	"github.com/atomicstack/minui-list/internal/logging/events"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func main() {
	streams := app.Streams{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
	os.Exit(run(os.Args[1:], os.Environ(), streams))
}

// run executes the root command and returns the process exit code. Any
// failure before the list is loaded counts as an argument error.
func run(args, environ []string, streams app.Streams) int {
	if args == nil {
		// cobra falls back to os.Args for a nil slice
		args = []string{}
	}
	code := app.ExitConfirm
	root := newRootCommand(args, environ, streams, &code)
	root.SetArgs(args)
	root.SetOut(streams.Stderr)
	root.SetErr(streams.Stderr)
	if err := root.Execute(); err != nil {
		var exitErr *app.Error
		if errors.As(err, &exitErr) {
			code = exitErr.Code
		} else {
			code = app.ExitParse
		}
		reportError(streams.Stderr, err)
	}
	return code
}

func newRootCommand(args, environ []string, streams app.Streams, code *int) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "minui-list --file <path|->",
		Short:         "Pick an item from a list on a handheld-style screen",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	binder := config.Bind(cmd.Flags(), environ)
	cmd.RunE = func(*cobra.Command, []string) error {
		cfg, err := binder.Config(args)
		if err == nil {
			err = config.Validate(cfg)
		}
		if err != nil {
			return &app.Error{Code: app.ExitParse, Err: fmt.Errorf("configuration error: %w", err)}
		}
		if err := logging.Configure(cfg.Logging.FilePath, cfg.Logging.Level); err != nil {
			return &app.Error{Code: app.ExitParse, Err: err}
		}
		logging.SetTraceEnabled(cfg.Logging.Trace)
		defer logging.Sync()

		traceStartup(cfg)

		c, err := app.Run(cfg.App, streams)
		*code = c
		logging.Error(err)
		return err
	}
	return cmd
}

func reportError(w io.Writer, err error) {
	if w == nil {
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}

func traceStartup(cfg config.Config) {
	if !logging.TraceEnabled() {
		return
	}
	events.App.Start(startupTracePayload(cfg))
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"argv":   cfg.Args,
		"flags":  flags,
		"config": cfg,
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	} else {
		payload["executableError"] = err.Error()
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	payload["tty"] = collectTTYDetails()
	return payload
}

type ttyDetails struct {
	Detected *ttyDetected     `json:"detected,omitempty"`
	Probes   []ttyProbeResult `json:"probes"`
}

type ttyDetected struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type ttyProbeResult struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// collectTTYDetails inspects standard descriptors for terminal support and dimensions.
func collectTTYDetails() ttyDetails {
	probes := []struct {
		name string
		fd   uintptr
	}{
		{"stdin", os.Stdin.Fd()},
		{"stdout", os.Stdout.Fd()},
		{"stderr", os.Stderr.Fd()},
	}
	results := make([]ttyProbeResult, 0, len(probes))
	var detected *ttyDetected
	for _, probe := range probes {
		entry := ttyProbeResult{Name: probe.name}
		fd := int(probe.fd)
		if fd >= 0 && term.IsTerminal(fd) {
			entry.IsTerminal = true
			if width, height, err := term.GetSize(fd); err == nil {
				entry.Width = width
				entry.Height = height
				if detected == nil {
					detected = &ttyDetected{Source: probe.name, Width: width, Height: height}
				}
			} else {
				entry.Error = err.Error()
			}
		} else {
			entry.IsTerminal = false
		}
		results = append(results, entry)
	}
	return ttyDetails{Detected: detected, Probes: results}
}
