// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// envPrefix namespaces environment overrides: --log-level ⇔ LVMATCH_LOG_LEVEL.
const envPrefix = "lvmatch"

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return v
}

// loadConfig reads the optional config file and copies config/env values
// onto every flag of cmd the user did not set explicitly. Precedence:
// command line, environment, config file, flag default.
func loadConfig(cmd *cobra.Command, opts *RootOptions) error {
	if opts.ConfigFile != "" {
		opts.v.SetConfigFile(opts.ConfigFile)
		if err := opts.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read %s: %w", opts.ConfigFile, err)
		}
	}

	var errs []error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Changed || f.Name == "config" || !opts.v.IsSet(f.Name) {
			return
		}
		if err := cmd.Flags().Set(f.Name, opts.v.GetString(f.Name)); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", f.Name, err))
		}
	})

	return errors.Join(errs...)
}
