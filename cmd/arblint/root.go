package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"arblint/internal/logging"
	"arblint/internal/version"
)

var (
	logLevelFlag  string
	logFormatFlag string
)

var rootCmd = &cobra.Command{
	Use:   "arblint",
	Short: "String localization analyzer for Flutter packages",
	Long: `arblint finds user-facing string literals that bypass the ARB
localization pipeline of a Flutter package.

It analyzes resolved compilation units exported by the host toolchain,
decides which literals are legitimately non-localizable (imports, ignored
types, logger calls, annotated parameters, NON-NLS markers), and proposes
fixes for the rest: externalize the string into the template ARB file
behind a generated accessor, or mark it with a trailing // NON-NLS
comment.`,
	Version: version.Info(),
}

func init() {
	rootCmd.SetVersionTemplate("arblint version {{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "",
		"Log level: debug, info, warn, or error (default: info)")
	rootCmd.PersistentFlags().StringVar(&logFormatFlag, "log-format", "",
		"Log format: human or json")
}

// newLogger resolves logger settings and builds the process logger.
// Precedence: CLI flag > ARBLINT_* environment variable > command default.
func newLogger(defaultFormat logging.Format) zerolog.Logger {
	level := logLevelFlag
	if level == "" {
		level = os.Getenv("ARBLINT_LOG_LEVEL")
	}

	format := logFormatFlag
	if format == "" {
		format = os.Getenv("ARBLINT_LOG_FORMAT")
	}
	if format == "" {
		format = string(defaultFormat)
	}

	return logging.New(logging.Config{Level: level, Format: logging.Format(format)})
}
