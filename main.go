package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/thescouser89/jsonlog/internal"
)

var version = "dev"

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jsonlog",
		Short: "PNC JSON log parser",
		Long: `PNC JSON log parser

Reads JSON log lines from stdin and prints them colorized to stdout.
Lines that are not JSON log records are printed unchanged.

Author: thescouser89`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			internal.ConfigureColor(os.Getenv)
			return internal.Scan(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	// cobra keeps a predefined "version" flag instead of adding its own -v.
	cmd.Flags().BoolP("version", "V", false, "Print version")

	return cmd
}

func main() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true, PartsExclude: []string{zerolog.TimestampFieldName}})

	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("jsonlog failed")
	}
}
