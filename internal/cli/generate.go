// SPDX-License-Identifier: MIT

package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmatch/format"
	"github.com/katalvlaran/lvmatch/gen"
	"github.com/katalvlaran/lvmatch/graph"
)

// metadataFile is written next to the generated graphs.
const metadataFile = "metadata.json"

// GenerateOptions holds flags for the generate command.
type GenerateOptions struct {
	N          int
	K          int
	Density    float64
	Seed       int64
	Labels     int
	OutDir     string
	FileFormat string
}

// Metadata describes a generated instance. It is written to metadata.json
// and returned as the command result.
type Metadata struct {
	N            int      `json:"n" yaml:"n"`
	K            int      `json:"k" yaml:"k"`
	Density      float64  `json:"density" yaml:"density"`
	Seed         int64    `json:"seed" yaml:"seed"`
	Labels       int      `json:"labels" yaml:"labels"`
	Format       string   `json:"format" yaml:"format"`
	Files        []string `json:"files" yaml:"files"`
	PatternNodes []int    `json:"pattern_nodes" yaml:"pattern_nodes"`
}

// GenerateReport is the result of a generate run.
type GenerateReport struct {
	Dir      string      `json:"dir" yaml:"dir"`
	Metadata Metadata    `json:"metadata" yaml:"metadata"`
	Target   graph.Stats `json:"target" yaml:"target"`
	Pattern  graph.Stats `json:"pattern" yaml:"pattern"`
}

// NewGenerateCommand creates the generate command.
func NewGenerateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GenerateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a random target and a planted pattern",
		Long: `Generate a random undirected target graph (a backbone path plus random
edges up to --density) and a connected pattern of --k vertices sampled from
it. Vertex labels are i mod --labels. The pattern is induced by the sampled
vertices, so the instance has at least one induced solution.

A --seed of 0 derives the seed from the clock; the seed used is recorded in
metadata.json.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, rootOpts, opts)
		},
	}

	cmd.Flags().IntVar(&opts.N, "n", 100, "target vertex count")
	cmd.Flags().IntVar(&opts.K, "k", 10, "pattern vertex count")
	cmd.Flags().Float64Var(&opts.Density, "density", 0.05, "target arc density in (0,1]")
	cmd.Flags().Int64Var(&opts.Seed, "seed", 0, "random seed (0: derive from the clock)")
	cmd.Flags().IntVar(&opts.Labels, "labels", 4, "number of distinct vertex labels")
	cmd.Flags().StringVar(&opts.OutDir, "out", "", "output directory (required)")
	cmd.Flags().StringVar(&opts.FileFormat, "file-format", "grf", "graph file format (lad|ladl|grf|vf)")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}

func (o *GenerateOptions) validate() (format.Format, error) {
	f, err := format.ParseFormat(o.FileFormat)
	if err != nil {
		return f, err
	}
	switch {
	case f == format.Auto:
		return f, errors.New("--file-format must name a concrete format")
	case o.K < 1 || o.K >= o.N:
		return f, fmt.Errorf("--k=%d must satisfy 1 <= k < n=%d", o.K, o.N)
	case o.Labels < 1:
		return f, fmt.Errorf("--labels=%d must be positive", o.Labels)
	}

	return f, nil
}

func runGenerate(cmd *cobra.Command, rootOpts *RootOptions, opts *GenerateOptions) error {
	f, err := opts.validate()
	if err != nil {
		return WrapExitError(ExitCommandError, "generate", err)
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixMilli() & 0xFFFFFFFF
	}
	rng := rand.New(rand.NewSource(seed))
	log := rootOpts.log.New("seed", seed)

	target, err := gen.BuildGraph(nil,
		[]gen.Option{gen.WithRand(rng), gen.WithLabels(opts.Labels)},
		gen.Backbone(opts.N, opts.Density))
	if err != nil {
		return WrapExitError(ExitCommandError, "generate target", err)
	}
	pattern, nodes, err := gen.Planted(target, opts.K, rng)
	if err != nil {
		return WrapExitError(ExitCommandError, "generate pattern", err)
	}

	if err = os.MkdirAll(opts.OutDir, 0o755); err != nil {
		return WrapExitError(ExitCommandError, "generate", err)
	}
	ext := "." + f.String()
	files := []string{"pattern" + ext, "target" + ext}
	for i, g := range []*graph.Graph{pattern, target} {
		if err = format.WriteFile(filepath.Join(opts.OutDir, files[i]), g, f); err != nil {
			return WrapExitError(ExitCommandError, "generate", err)
		}
	}

	md := Metadata{
		N:            opts.N,
		K:            opts.K,
		Density:      opts.Density,
		Seed:         seed,
		Labels:       opts.Labels,
		Format:       f.String(),
		Files:        files,
		PatternNodes: nodes,
	}
	if err = writeMetadata(filepath.Join(opts.OutDir, metadataFile), md); err != nil {
		return WrapExitError(ExitCommandError, "generate", err)
	}
	log.Info("instance generated", "dir", opts.OutDir,
		"target_edges", target.EdgeCount(), "pattern_edges", pattern.EdgeCount())

	return rootOpts.formatter(cmd).Success(&GenerateReport{
		Dir:      opts.OutDir,
		Metadata: md,
		Target:   target.Stats(),
		Pattern:  pattern.Stats(),
	})
}

func writeMetadata(path string, md Metadata) error {
	data, err := json.MarshalIndent(md, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// ReadMetadata loads a metadata.json written by generate.
func ReadMetadata(path string) (Metadata, error) {
	var md Metadata
	data, err := os.ReadFile(path)
	if err != nil {
		return md, err
	}
	if err = json.Unmarshal(data, &md); err != nil {
		return md, fmt.Errorf("%s: %w", path, err)
	}

	return md, nil
}

// WriteText lists the written files.
func (r *GenerateReport) WriteText(w io.Writer) error {
	paths := make([]string, 0, len(r.Metadata.Files)+1)
	for _, name := range r.Metadata.Files {
		paths = append(paths, filepath.Join(r.Dir, name))
	}
	paths = append(paths, filepath.Join(r.Dir, metadataFile))
	_, err := fmt.Fprintf(w, "%-9s %d\n%-9s %s\n", "seed", r.Metadata.Seed, "files", strings.Join(paths, ","))

	return err
}
