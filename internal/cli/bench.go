// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmatch/subiso"
)

// BenchOptions holds flags for the bench command.
type BenchOptions struct {
	modeFlags

	Iterations  int
	MetricsFile string
}

// BenchReport is the result of a bench run.
type BenchReport struct {
	Pattern     GraphInfo    `json:"pattern" yaml:"pattern"`
	Target      GraphInfo    `json:"target" yaml:"target"`
	Mode        subiso.Mode  `json:"mode" yaml:"mode"`
	Iterations  int          `json:"iterations" yaml:"iterations"`
	Count       int          `json:"count" yaml:"count"`
	FirstMS     *Summary     `json:"first_ms,omitempty" yaml:"first_ms,omitempty"`
	AllMS       Summary      `json:"all_ms" yaml:"all_ms"`
	Stats       subiso.Stats `json:"stats" yaml:"stats"`
	MetricsFile string       `json:"metrics_file,omitempty" yaml:"metrics_file,omitempty"`
}

// Summary aggregates repeated measurements in milliseconds.
type Summary struct {
	Mean float64 `json:"mean" yaml:"mean"`
	Min  float64 `json:"min" yaml:"min"`
	Max  float64 `json:"max" yaml:"max"`
}

func summarize(ds []time.Duration) Summary {
	if len(ds) == 0 {
		return Summary{}
	}
	s := Summary{Min: millis(ds[0]), Max: millis(ds[0])}
	var total float64
	for _, d := range ds {
		ms := millis(d)
		total += ms
		s.Min = min(s.Min, ms)
		s.Max = max(s.Max, ms)
	}
	s.Mean = total / float64(len(ds))

	return s
}

// benchMetrics are the collectors exported with --metrics-file.
type benchMetrics struct {
	registry  *prometheus.Registry
	duration  *prometheus.HistogramVec
	solutions *prometheus.CounterVec
	nodes     *prometheus.CounterVec
}

func newBenchMetrics() *benchMetrics {
	m := &benchMetrics{
		registry: prometheus.NewRegistry(),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "lvmatch",
			Name:      "search_duration_seconds",
			Help:      "Wall-clock time of one complete search",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10), // 100µs .. ~26s
		}, []string{"mode"}),
		solutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lvmatch",
			Name:      "solutions_total",
			Help:      "Solutions emitted across all iterations",
		}, []string{"mode"}),
		nodes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lvmatch",
			Name:      "search_nodes_total",
			Help:      "Search nodes entered across all iterations",
		}, []string{"mode"}),
	}
	m.registry.MustRegister(m.duration, m.solutions, m.nodes)

	return m
}

// NewBenchCommand creates the bench command.
func NewBenchCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &BenchOptions{}

	cmd := &cobra.Command{
		Use:   "bench PATTERN TARGET",
		Short: "Time repeated searches of PATTERN in TARGET",
		Long: `Run the same search --iterations times and report mean, min and max of the
time to first solution and of the total time. With --metrics-file the
measurements are also written in the Prometheus text exposition format.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(cmd, rootOpts, opts, args[0], args[1])
		},
	}

	opts.register(cmd)
	cmd.Flags().IntVar(&opts.Iterations, "iterations", 5, "number of searches")
	cmd.Flags().StringVar(&opts.MetricsFile, "metrics-file", "", "write Prometheus textfile metrics to this path")

	return cmd
}

func runBench(cmd *cobra.Command, rootOpts *RootOptions, opts *BenchOptions, patternPath, targetPath string) error {
	if opts.Iterations < 1 {
		return NewExitError(ExitCommandError, fmt.Sprintf("--iterations=%d must be positive", opts.Iterations))
	}
	mode, err := opts.mode(cmd)
	if err != nil {
		return err
	}
	pattern, target, err := loadPair(cmd.Context(), patternPath, opts.patternFormat, targetPath, opts.targetFormat)
	if err != nil {
		return WrapExitError(ExitCommandError, "load", err)
	}
	m, err := subiso.NewMatcher(pattern.Graph, target.Graph,
		subiso.WithContext(cmd.Context()), subiso.WithMode(mode))
	if err != nil {
		return WrapExitError(ExitCommandError, "bench", err)
	}

	metrics := newBenchMetrics()
	label := modeLabel(mode)
	log := rootOpts.log.New("pattern", patternPath, "target", targetPath, "mode", label)
	report := &BenchReport{
		Pattern:    pattern.Info(),
		Target:     target.Info(),
		Mode:       mode,
		Iterations: opts.Iterations,
	}

	var firsts, alls []time.Duration
	for i := 0; i < opts.Iterations; i++ {
		var (
			count int
			first time.Duration
		)
		start := time.Now()
		stats, err := m.Run(subiso.SinkFunc(func(subiso.Solution) bool {
			if count == 0 {
				first = time.Since(start)
			}
			count++
			return true
		}))
		elapsed := time.Since(start)
		if err != nil {
			return WrapExitError(ExitCommandError, "bench", err)
		}
		if i > 0 && count != report.Count {
			return NewExitError(ExitFailure,
				fmt.Sprintf("iteration %d found %d solutions, previous runs found %d", i+1, count, report.Count))
		}
		report.Count, report.Stats = count, stats
		if count > 0 {
			firsts = append(firsts, first)
		}
		alls = append(alls, elapsed)

		metrics.duration.WithLabelValues(label).Observe(elapsed.Seconds())
		metrics.solutions.WithLabelValues(label).Add(float64(count))
		metrics.nodes.WithLabelValues(label).Add(float64(stats.Nodes))
		log.Debug("iteration done", "i", i+1, "solutions", count, "elapsed", elapsed)
	}

	report.AllMS = summarize(alls)
	if len(firsts) > 0 {
		s := summarize(firsts)
		report.FirstMS = &s
	}
	if opts.MetricsFile != "" {
		if err := prometheus.WriteToTextfile(opts.MetricsFile, metrics.registry); err != nil {
			return WrapExitError(ExitCommandError, "metrics", err)
		}
		report.MetricsFile = opts.MetricsFile
	}
	log.Info("bench finished", "iterations", opts.Iterations, "solutions", report.Count,
		"mean_ms", report.AllMS.Mean)

	return rootOpts.formatter(cmd).Success(report)
}

func modeLabel(m subiso.Mode) string {
	if m.Induced {
		return "induced"
	}

	return "non_induced"
}

// WriteText renders the report as aligned key/value lines.
func (r *BenchReport) WriteText(w io.Writer) error {
	var b strings.Builder
	row := func(key, value string) { fmt.Fprintf(&b, "%-10s %s\n", key, value) }
	summary := func(s Summary) string {
		return fmt.Sprintf("mean %.3f  min %.3f  max %.3f", s.Mean, s.Min, s.Max)
	}

	row("pattern", r.Pattern.summary())
	row("target", r.Target.summary())
	row("mode", modeText(r.Mode))
	row("iterations", humanize.Comma(int64(r.Iterations)))
	row("count", humanize.Comma(int64(r.Count)))
	if r.FirstMS != nil {
		row("first_ms", summary(*r.FirstMS))
	}
	row("all_ms", summary(r.AllMS))
	row("nodes", humanize.Comma(int64(r.Stats.Nodes)))
	if r.MetricsFile != "" {
		row("metrics", r.MetricsFile)
	}
	_, err := io.WriteString(w, b.String())

	return err
}
