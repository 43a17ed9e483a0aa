package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"

	"github.com/joshuapare/bsxkit/pkg/bsx"
	"github.com/joshuapare/bsxkit/script/textfile"
)

var (
	// Global flags
	verbose    bool
	quiet      bool
	jsonOut    bool
	noColor    bool
	configPath string

	cfg    = defaultConfig()
	logger = log.NewNopLogger()

	consoleOutput io.Writer = os.Stderr
)

var rootCmd = &cobra.Command{
	Use:   "bsxctl",
	Short: "Export and re-import the text of BSXScript containers",
	Long: `bsxctl extracts the character names and messages referenced by a
BSXScript container into an editable text file, and rebuilds the container
from the edited file.

Example:
  bsxctl export bs01.dat
  bsxctl import bs01.dat
  bsxctl info bs01.dat --json`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file")
}

// setup applies the global flags and loads the config file.
func setup() error {
	if noColor {
		color.NoColor = true
	}

	l := log.NewLogfmtLogger(log.NewSyncWriter(consoleOutput))
	switch {
	case quiet:
		l = level.NewFilter(l, level.AllowError())
	case verbose:
		l = level.NewFilter(l, level.AllowDebug())
	default:
		l = level.NewFilter(l, level.AllowInfo())
	}
	logger = log.With(l, "ts", log.DefaultTimestampUTC)

	c, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	cfg = c
	return nil
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		printError("%v\n", err)
		os.Exit(1)
	}
}

// options builds library options from the config, with lineEnding (if set)
// taking precedence over the config file.
func options(lineEnding string) (*bsx.Options, error) {
	if lineEnding == "" {
		lineEnding = cfg.LineEnding
	}
	eol, err := textfile.ParseLineEnding(lineEnding)
	if err != nil {
		return nil, err
	}
	return &bsx.Options{
		Logger:     logger,
		LineEnding: eol,
		NoClobber:  !cfg.overwrite(),
	}, nil
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printSuccess prints a green status line if not in quiet mode
func printSuccess(format string, args ...interface{}) {
	if !quiet {
		color.New(color.FgGreen).Fprintf(os.Stdout, format, args...)
	}
}

// printWarning prints a yellow status line to stderr
func printWarning(format string, args ...interface{}) {
	if !quiet {
		color.New(color.FgYellow).Fprintf(os.Stderr, "Warning: "+format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...interface{}) {
	fmt.Fprint(os.Stderr, color.RedString("Error: "))
	fmt.Fprintf(os.Stderr, format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
