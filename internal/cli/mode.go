// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmatch/subiso"
)

// modeFlags are the matching-semantics flags shared by match and bench.
type modeFlags struct {
	induced    bool
	nonInduced bool
	firstOnly  bool

	patternFormat string
	targetFormat  string
}

func (m *modeFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&m.induced, "induced", true, "induced matching: non-edges must map to non-edges")
	cmd.Flags().BoolVar(&m.nonInduced, "non-induced", false, "non-induced matching (monomorphism)")
	cmd.Flags().BoolVar(&m.firstOnly, "first-only", false, "stop after the first solution")
	cmd.Flags().StringVar(&m.patternFormat, "pattern-format", "auto", "pattern file format (auto|lad|ladl|grf|vf)")
	cmd.Flags().StringVar(&m.targetFormat, "target-format", "auto", "target file format (auto|lad|ladl|grf|vf)")
}

// mode resolves the flags into a subiso.Mode. Asking for both --induced and
// --non-induced explicitly is a command error.
func (m *modeFlags) mode(cmd *cobra.Command) (subiso.Mode, error) {
	if m.nonInduced && cmd.Flags().Changed("induced") && m.induced {
		return subiso.Mode{}, NewExitError(ExitCommandError, "--induced and --non-induced are mutually exclusive")
	}

	return subiso.Mode{Induced: m.induced && !m.nonInduced, FirstOnly: m.firstOnly}, nil
}

// modeText renders mode for text output.
func modeText(m subiso.Mode) string {
	s := "induced"
	if !m.Induced {
		s = "non-induced"
	}
	if m.FirstOnly {
		return s + ", first only"
	}

	return s + ", all solutions"
}
