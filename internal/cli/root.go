// SPDX-License-Identifier: MIT

// Package cli implements the lvmatch command line.
package cli

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/inconshreveable/log15"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RootOptions holds global flags and the per-invocation state shared by all
// commands.
type RootOptions struct {
	Format     string // "text" | "json" | "yaml"
	LogLevel   string
	ConfigFile string

	v     *viper.Viper
	log   log15.Logger
	runID string
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json", "yaml"}

// NewRootCommand creates the root command for the lvmatch CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{v: newViper()}

	cmd := &cobra.Command{
		Use:   "lvmatch",
		Short: "lvmatch - subgraph isomorphism search",
		Long: `Find every embedding of a pattern graph in a target graph.

Graphs are read from LAD, vertex-labelled LAD, GRF or VF files. Matching is
induced by default; --non-induced searches for monomorphisms instead.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := loadConfig(cmd, opts); err != nil {
				return WrapExitError(ExitCommandError, "config", err)
			}
			if !slices.Contains(ValidFormats, opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			opts.runID = uuid.NewString()
			logger, err := newLogger(cmd.ErrOrStderr(), opts.LogLevel, opts.runID)
			if err != nil {
				return WrapExitError(ExitCommandError, "log level", err)
			}
			opts.log = logger.New("cmd", cmd.Name())

			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|json|yaml)")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "warn", "log level (debug|info|warn|error|crit)")
	cmd.PersistentFlags().StringVar(&opts.ConfigFile, "config", "", "config file (yaml, json or toml) with flag defaults")

	cmd.AddCommand(NewMatchCommand(opts))
	cmd.AddCommand(NewGenerateCommand(opts))
	cmd.AddCommand(NewBenchCommand(opts))

	return cmd
}

// formatter returns the output formatter for cmd.
func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{Format: o.Format, Writer: cmd.OutOrStdout()}
}
