package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/0x4D44/mdlt/internal/config"
	"github.com/0x4D44/mdlt/internal/core"
	"github.com/0x4D44/mdlt/internal/filesystem"
	"github.com/0x4D44/mdlt/internal/logging"
	"github.com/0x4D44/mdlt/internal/report"
)

var version = "0.1.0"

// Exit codes
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// ErrMissingArgument is returned when no file path is given
var ErrMissingArgument = errors.New("missing file path argument")

type options struct {
	verbose bool
	noColor bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and maps the outcome to an exit code
func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
		return exitError
	}

	opts := &options{}
	cmd := rootCmd(cfg, opts)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err = cmd.Execute()
	return exitCode(err, stderr, cfg.NoColor || opts.noColor)
}

// rootCmd creates the analyze command
func rootCmd(cfg *config.Config, opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mdlt <file_path>",
		Short: "Report line ending statistics for a file",
		Long: `Read a single file and report its line count, empty line count and
line ending style (Unix LF, Windows CRLF, mixed or none).`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return ErrMissingArgument
			}
			return cobra.ExactArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.verbose {
				cfg.Verbose = true
			}

			logger, err := logging.New(cfg.Verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			defer func() { _ = logger.Sync() }()

			analyzer := core.NewAnalyzer(filesystem.NewOSReader(), logger)
			stats, err := analyzer.Analyze(args[0])
			if err != nil {
				logger.Error("Analysis failed", zap.String("path", args[0]), zap.Error(err))
				return err
			}

			return report.NewGenerator(logger).Generate(cmd.OutOrStdout(), stats)
		},
	}

	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "Disable colored diagnostics")

	return cmd
}

// exitCode prints a diagnostic for err and returns the process exit code
func exitCode(err error, stderr io.Writer, noColor bool) int {
	if err == nil {
		return exitOK
	}

	red := color.New(color.FgRed, color.Bold)
	if noColor {
		red.DisableColor()
	}

	var ioErr *core.IOError
	switch {
	case errors.Is(err, ErrMissingArgument):
		red.Fprintln(stderr, "Usage: mdlt <file_path>")
		return exitUsage
	case errors.As(err, &ioErr):
		red.Fprintf(stderr, "Error analyzing file: %v\n", err)
		return exitError
	default:
		red.Fprintf(stderr, "Error: %v\n", err)
		return exitUsage
	}
}
