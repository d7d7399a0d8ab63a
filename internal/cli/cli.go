package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/nodesynth/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("nodesynth", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
NodeSynth - A node graph that drives a remote audio host.

Usage:
  nodesynth [options] [PATCH_PATH]

Arguments:
  PATCH_PATH
    Path to a .hcl, .yaml or .yml patch file, or a directory of them.

Options:
`)
		flagSet.PrintDefaults()
	}

	patchFlag := flagSet.String("patch", "", "Path to the patch file or directory.")
	pFlag := flagSet.String("p", "", "Path to the patch file or directory (shorthand).")
	logFormatFlag := flagSet.String("log-format", "json", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	tickRateFlag := flagSet.Int("tick-rate", app.DefaultTickRate, "Engine updates per second.")
	maxStepsFlag := flagSet.Int("max-steps", 0, "Maximum node executions per update. 0 keeps the engine default.")
	durationFlag := flagSet.Duration("duration", 0, "Stop after this long, e.g. '30s'. 0 runs until interrupted.")
	backendURLFlag := flagSet.String("backend-url", "", "socket.io URL of the audio host. Empty runs offline.")
	backendNSFlag := flagSet.String("backend-namespace", "/", "socket.io namespace of the audio host.")
	inspectPortFlag := flagSet.Int("inspect-port", 0, "Port for the HTTP inspection API. 0 is disabled.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	if *patchFlag != "" {
		path = *patchFlag
	} else if *pFlag != "" {
		path = *pFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Patch path determined.", "path", path)

	if path == "" {
		slog.Debug("No patch path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	if *maxStepsFlag < 0 {
		return nil, false, &ExitError{Code: 2, Message: "invalid max-steps: cannot be negative"}
	}
	if *durationFlag < 0 {
		return nil, false, &ExitError{Code: 2, Message: "invalid duration: cannot be negative"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		PatchPath:        path,
		LogFormat:        logFormat,
		LogLevel:         logLevel,
		TickRate:         *tickRateFlag,
		MaxSteps:         *maxStepsFlag,
		Duration:         *durationFlag,
		BackendURL:       *backendURLFlag,
		BackendNamespace: *backendNSFlag,
		InspectPort:      *inspectPortFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
