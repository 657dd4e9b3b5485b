// SPDX-License-Identifier: MIT

package format

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/lvmatch/graph"
)

// maxVertices rejects absurd vertex counts before allocating.
const maxVertices = 1 << 26

// Read parses a graph of format f from r. f must not be Auto (use ReadFile
// or ReadAuto for detection).
func Read(r io.Reader, f Format) (*graph.Graph, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}

	return parse(lines, f)
}

// ReadAuto reads all of r and detects the format from the content: LAD when
// every vertex line reads "deg nbrs...", labelled LAD when every one reads
// "label deg nbrs...", GRF otherwise.
func ReadAuto(r io.Reader) (*graph.Graph, Format, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, Auto, err
	}
	f := sniff(lines)
	g, err := parse(lines, f)

	return g, f, err
}

// ReadFile opens path and parses it. With Auto the format comes from the
// extension, falling back to content detection.
func ReadFile(path string, f Format) (*graph.Graph, Format, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, f, fmt.Errorf("format: %w", err)
	}
	detected := f == Auto
	if detected {
		f = DetectFormat(path)
	}

	var g *graph.Graph
	switch {
	case f == Auto && hasLeadingComment(data):
		f = GRF
		g, err = Read(bytes.NewReader(data), f)
	case f == Auto || (detected && f == LAD):
		// .lad files may carry labels; let the content decide.
		g, f, err = ReadAuto(bytes.NewReader(data))
	default:
		g, err = Read(bytes.NewReader(data), f)
	}
	if err != nil {
		return nil, f, fmt.Errorf("%s: %w", path, err)
	}

	return g, f, nil
}

func parse(lines []line, f Format) (*graph.Graph, error) {
	switch f {
	case LAD:
		return parseLAD(lines, false)
	case LabelledLAD:
		return parseLAD(lines, true)
	case GRF, VF:
		return parseGRF(lines)
	}

	return nil, fmt.Errorf("read %s: %w", f, ErrUnknownFormat)
}

// hasLeadingComment reports whether the first non-blank line starts with '#'.
func hasLeadingComment(data []byte) bool {
	for _, l := range bytes.Split(data, []byte("\n")) {
		l = bytes.TrimSpace(l)
		if len(l) == 0 {
			continue
		}

		return l[0] == '#'
	}

	return false
}

// sniff implements the ReadAuto detection. LAD wins ties.
func sniff(lines []line) Format {
	if len(lines) == 0 || len(lines[0].values) != 1 {
		return LAD
	}
	plain, labelled := true, true
	for _, l := range lines[1:] {
		v := l.values
		if v[0] != len(v)-1 {
			plain = false
		}
		if len(v) < 2 || v[1] != len(v)-2 {
			labelled = false
		}
	}
	switch {
	case plain:
		return LAD
	case labelled:
		return LabelledLAD
	}

	return GRF
}

func checkCount(n, lineNo int) error {
	if n < 0 || n > maxVertices {
		return fmt.Errorf("%w: line %d: vertex count %d out of range", ErrSyntax, lineNo, n)
	}

	return nil
}

// parseLAD reads (labelled) LAD as an undirected graph.
func parseLAD(lines []line, labelled bool) (*graph.Graph, error) {
	t := &tokens{lines: lines}
	n, err := t.next()
	if err != nil {
		return nil, fmt.Errorf("vertex count: %w", err)
	}
	if err = checkCount(n, t.last); err != nil {
		return nil, err
	}

	b := graph.NewBuilder(graph.WithLoops())
	b.AddVertices(n)
	var (
		v, i, d, w, label int
	)
	for v = 0; v < n; v++ {
		if labelled {
			if label, err = t.next(); err != nil {
				return nil, fmt.Errorf("label of vertex %d: %w", v, err)
			}
			_ = b.SetLabel(v, label)
		}
		if d, err = t.next(); err != nil {
			return nil, fmt.Errorf("degree of vertex %d: %w", v, err)
		}
		if d < 0 {
			return nil, fmt.Errorf("%w: line %d: negative degree %d for vertex %d", ErrSyntax, t.last, d, v)
		}
		for i = 0; i < d; i++ {
			if w, err = t.next(); err != nil {
				return nil, fmt.Errorf("neighbor %d of vertex %d: %w", i, v, err)
			}
			if err = b.AddEdge(v, w); err != nil {
				return nil, fmt.Errorf("%w: line %d: %w", graph.ErrInvalidGraph, t.last, err)
			}
		}
	}
	if err = t.done(); err != nil {
		return nil, err
	}

	return b.Build()
}

// parseGRF reads the GRF/VF layout as a directed graph. Node ids are external
// and mapped to vertices in declaration order.
//
// Edge lines under node u come in three accepted variants:
//   - "u dst"         source first (what Write emits)
//   - "dst"           destination only
//   - "dst label"     destination first, any trailing values ignored
//
// The first value is the source only when it equals u and a second value
// follows; otherwise it is the destination. A self-loop on u must therefore
// be written "u u". Unknown destinations, truncated input and trailing data
// remain errors.
func parseGRF(lines []line) (*graph.Graph, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: missing vertex count", ErrSyntax)
	}
	n := lines[0].values[0]
	if err := checkCount(n, lines[0].no); err != nil {
		return nil, err
	}
	if len(lines) < 1+n {
		return nil, fmt.Errorf("%w: line %d: unexpected end of input in node list (%d of %d)",
			ErrSyntax, lines[len(lines)-1].no, len(lines)-1, n)
	}

	b := graph.NewBuilder(graph.WithDirected(true), graph.WithLoops())
	index := make(map[int]int, n)
	ids := make([]int, n)
	var v int
	for v = 0; v < n; v++ {
		l := lines[1+v]
		if len(l.values) < 2 {
			return nil, fmt.Errorf("%w: line %d: want \"id label\"", ErrSyntax, l.no)
		}
		id := l.values[0]
		if _, dup := index[id]; dup {
			return nil, fmt.Errorf("%w: line %d: duplicate node id %d", graph.ErrInvalidGraph, l.no, id)
		}
		index[id] = v
		ids[v] = id
		b.AddVertex(l.values[1])
		_ = b.SetID(v, id)
	}

	pos := 1 + n
	for v = 0; v < n; v++ {
		if pos >= len(lines) {
			return nil, fmt.Errorf("%w: line %d: unexpected end of input, want edge count of node %d",
				ErrSyntax, lines[len(lines)-1].no, ids[v])
		}
		cl := lines[pos]
		pos++
		m := cl.values[0]
		if m < 0 || len(cl.values) != 1 {
			return nil, fmt.Errorf("%w: line %d: want edge count of node %d", ErrSyntax, cl.no, ids[v])
		}
		for e := 0; e < m; e++ {
			if pos >= len(lines) {
				return nil, fmt.Errorf("%w: line %d: unexpected end of input in edges of node %d",
					ErrSyntax, lines[len(lines)-1].no, ids[v])
			}
			el := lines[pos]
			pos++
			dst := el.values[0]
			if len(el.values) >= 2 && el.values[0] == ids[v] {
				dst = el.values[1]
			}
			w, ok := index[dst]
			if !ok {
				return nil, fmt.Errorf("%w: line %d: unknown node id %d: %w",
					graph.ErrInvalidGraph, el.no, dst, graph.ErrVertexOutOfRange)
			}
			if err := b.AddEdge(v, w); err != nil {
				return nil, fmt.Errorf("%w: line %d: %w", graph.ErrInvalidGraph, el.no, err)
			}
		}
	}
	if pos < len(lines) {
		return nil, fmt.Errorf("%w: line %d: trailing data", ErrSyntax, lines[pos].no)
	}

	return b.Build()
}
