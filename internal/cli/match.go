// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmatch/graph"
	"github.com/katalvlaran/lvmatch/subiso"
)

// MatchOptions holds flags for the match command.
type MatchOptions struct {
	modeFlags

	List   bool
	Verify bool
	Timing bool
}

// MatchReport is the result of a match run.
type MatchReport struct {
	Pattern   GraphInfo    `json:"pattern" yaml:"pattern"`
	Target    GraphInfo    `json:"target" yaml:"target"`
	Mode      subiso.Mode  `json:"mode" yaml:"mode"`
	Count     int          `json:"count" yaml:"count"`
	Solutions [][]int      `json:"solutions,omitempty" yaml:"solutions,omitempty"`
	Verified  *int         `json:"verified,omitempty" yaml:"verified,omitempty"`
	Timing    *Timing      `json:"timing,omitempty" yaml:"timing,omitempty"`
	Stats     subiso.Stats `json:"stats" yaml:"stats"`

	patternIDs []int
}

// Timing holds wall-clock measurements in milliseconds. FirstMS is nil when
// no solution was found.
type Timing struct {
	FirstMS *float64 `json:"first_ms" yaml:"first_ms"`
	AllMS   float64  `json:"all_ms" yaml:"all_ms"`
}

// NewMatchCommand creates the match command.
func NewMatchCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &MatchOptions{}

	cmd := &cobra.Command{
		Use:   "match PATTERN TARGET",
		Short: "Find embeddings of PATTERN in TARGET",
		Long: `Search TARGET for subgraphs isomorphic to PATTERN and report the number
of solutions. With --list every solution is printed as pattern-id->target-id
pairs; --verify re-checks each solution independently.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMatch(cmd, rootOpts, opts, args[0], args[1])
		},
	}

	opts.register(cmd)
	cmd.Flags().BoolVar(&opts.List, "list", false, "print every solution")
	cmd.Flags().BoolVar(&opts.Verify, "verify", false, "verify every solution; exit 1 on failure")
	cmd.Flags().BoolVar(&opts.Timing, "timing", false, "report time to first solution and total time")

	return cmd
}

func runMatch(cmd *cobra.Command, rootOpts *RootOptions, opts *MatchOptions, patternPath, targetPath string) error {
	mode, err := opts.mode(cmd)
	if err != nil {
		return err
	}
	pattern, target, err := loadPair(cmd.Context(), patternPath, opts.patternFormat, targetPath, opts.targetFormat)
	if err != nil {
		return WrapExitError(ExitCommandError, "load", err)
	}
	log := rootOpts.log.New("pattern", patternPath, "target", targetPath)
	log.Debug("graphs loaded",
		"pattern_vertices", pattern.Graph.VertexCount(), "target_vertices", target.Graph.VertexCount())

	m, err := subiso.NewMatcher(pattern.Graph, target.Graph,
		subiso.WithContext(cmd.Context()), subiso.WithMode(mode))
	if err != nil {
		return WrapExitError(ExitCommandError, "match", err)
	}

	report := &MatchReport{
		Pattern:    pattern.Info(),
		Target:     target.Info(),
		Mode:       mode,
		patternIDs: ids(pattern.Graph),
	}
	var (
		verified int
		verr     error
		first    time.Duration
	)
	start := time.Now()
	sink := subiso.SinkFunc(func(sol subiso.Solution) bool {
		if report.Count == 0 {
			first = time.Since(start)
		}
		report.Count++
		if opts.List {
			report.Solutions = append(report.Solutions, targetIDs(target.Graph, sol))
		}
		if opts.Verify && verr == nil {
			if verr = subiso.Verify(pattern.Graph, target.Graph, sol, mode.Induced); verr == nil {
				verified++
			}
		}
		return true
	})
	stats, err := m.Run(sink)
	elapsed := time.Since(start)
	if err != nil {
		return WrapExitError(ExitCommandError, "match", err)
	}
	report.Stats = stats
	if opts.Verify {
		report.Verified = &verified
	}
	if opts.Timing {
		report.Timing = &Timing{AllMS: millis(elapsed)}
		if report.Count > 0 {
			ms := millis(first)
			report.Timing.FirstMS = &ms
		}
	}
	log.Info("match finished", "solutions", report.Count, "nodes", stats.Nodes,
		"pruned", stats.Pruned, "elapsed", elapsed)

	if err := rootOpts.formatter(cmd).Success(report); err != nil {
		return err
	}
	if verr != nil {
		return WrapExitError(ExitFailure, "verification failed", verr)
	}

	return nil
}

// WriteText renders the report as aligned key/value lines.
func (r *MatchReport) WriteText(w io.Writer) error {
	var b strings.Builder
	row := func(key, value string) { fmt.Fprintf(&b, "%-9s %s\n", key, value) }

	row("pattern", r.Pattern.summary())
	row("target", r.Target.summary())
	row("mode", modeText(r.Mode))
	for i, sol := range r.Solutions {
		pairs := make([]string, len(sol))
		for p, t := range sol {
			pairs[p] = fmt.Sprintf("%d->%d", r.patternID(p), t)
		}
		row(fmt.Sprintf("#%d", i+1), strings.Join(pairs, " "))
	}
	row("count", humanize.Comma(int64(r.Count)))
	if r.Verified != nil {
		row("verified", fmt.Sprintf("%s/%s", humanize.Comma(int64(*r.Verified)), humanize.Comma(int64(r.Count))))
	}
	if r.Timing != nil {
		if r.Timing.FirstMS != nil {
			row("first_ms", fmt.Sprintf("%.3f", *r.Timing.FirstMS))
		} else {
			row("first_ms", "-")
		}
		row("all_ms", fmt.Sprintf("%.3f", r.Timing.AllMS))
	}

	_, err := io.WriteString(w, b.String())

	return err
}

func (r *MatchReport) patternID(p int) int {
	if p < len(r.patternIDs) {
		return r.patternIDs[p]
	}

	return p
}

func (gi GraphInfo) summary() string {
	kind := "undirected"
	if gi.Directed {
		kind = "directed"
	}
	conn := "connected"
	if !gi.Connected {
		conn = "disconnected"
	}

	return fmt.Sprintf("%s (%s): %s, %s, %s, %s", gi.Path, gi.Format,
		plural(gi.Vertices, "vertex", "vertices"), plural(gi.Edges, "edge", "edges"), kind, conn)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return "1 " + one
	}

	return humanize.Comma(int64(n)) + " " + many
}

// ids returns the external vertex ids of g in index order.
func ids(g *graph.Graph) []int {
	out := make([]int, g.VertexCount())
	for v := range out {
		out[v] = g.ID(v)
	}

	return out
}

// targetIDs translates a solution into target external ids.
func targetIDs(target *graph.Graph, sol subiso.Solution) []int {
	out := make([]int, len(sol))
	for p, t := range sol {
		out[p] = target.ID(t)
	}

	return out
}

func millis(d time.Duration) float64 {
	return float64(d.Microseconds()) / 1000
}
