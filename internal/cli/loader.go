// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvmatch/format"
	"github.com/katalvlaran/lvmatch/graph"
)

// LoadedGraph is a graph together with where it came from.
type LoadedGraph struct {
	Path   string
	Format format.Format
	Graph  *graph.Graph
}

// GraphInfo summarises a loaded graph for reports.
type GraphInfo struct {
	graph.Stats `json:",inline" yaml:",inline"`

	Path      string `json:"path" yaml:"path"`
	Format    string `json:"format" yaml:"format"`
	Connected bool   `json:"connected" yaml:"connected"`
}

// Info builds the report summary of lg.
func (lg LoadedGraph) Info() GraphInfo {
	return GraphInfo{
		Path:      lg.Path,
		Format:    lg.Format.String(),
		Stats:     lg.Graph.Stats(),
		Connected: graph.Connected(lg.Graph),
	}
}

// loadPair reads the pattern and target files concurrently.
func loadPair(ctx context.Context, patternPath, patternFmt, targetPath, targetFmt string) (pattern, target LoadedGraph, err error) {
	pf, err := format.ParseFormat(patternFmt)
	if err != nil {
		return pattern, target, fmt.Errorf("pattern format: %w", err)
	}
	tf, err := format.ParseFormat(targetFmt)
	if err != nil {
		return pattern, target, fmt.Errorf("target format: %w", err)
	}

	if ctx == nil {
		ctx = context.Background()
	}
	eg, _ := errgroup.WithContext(ctx)
	eg.Go(func() error {
		g, f, err := format.ReadFile(patternPath, pf)
		if err != nil {
			return fmt.Errorf("pattern: %w", err)
		}
		pattern = LoadedGraph{Path: patternPath, Format: f, Graph: g}
		return nil
	})
	eg.Go(func() error {
		g, f, err := format.ReadFile(targetPath, tf)
		if err != nil {
			return fmt.Errorf("target: %w", err)
		}
		target = LoadedGraph{Path: targetPath, Format: f, Graph: g}
		return nil
	})
	if err = eg.Wait(); err != nil {
		return LoadedGraph{}, LoadedGraph{}, err
	}

	return pattern, target, nil
}
