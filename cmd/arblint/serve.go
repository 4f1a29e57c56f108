package main

import (
	"github.com/spf13/cobra"

	"arblint/internal/engine"
	"arblint/internal/logging"
	"arblint/internal/protocol"
	"arblint/internal/version"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the analyzer over stdio for host integration",
	Long: `Serve the analyzer as a long-running JSON-RPC 2.0 process.

The host writes newline-delimited requests to stdin and reads responses
from stdout:

  initialize               handshake, returns analyzer name and session id
  analysis.analyze         one resolved unit in, replacement diagnostics out
  analysis.invalidateRoot  drop cached config and l10n target for a root
  shutdown                 end the session

Logs go to stderr so stdout stays a clean protocol stream. This command
is typically spawned by an IDE plugin host, not run by hand.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	log := newLogger(logging.FormatJSON)
	eng := engine.New(log)
	return protocol.NewServer(eng, version.Info(), log).Run()
}
