// SPDX-License-Identifier: MIT

package format

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/lvmatch/graph"
)

// Write encodes g in format f. LAD formats list Neighbors(v), so direction
// is lost for directed graphs. GRF/VF list Out(v) and use vertex indices as
// node ids.
func Write(w io.Writer, g *graph.Graph, f Format) error {
	bw := bufio.NewWriter(w)
	var err error
	switch f {
	case LAD:
		err = writeLAD(bw, g, false)
	case LabelledLAD:
		err = writeLAD(bw, g, true)
	case GRF, VF:
		err = writeGRF(bw, g)
	default:
		return fmt.Errorf("write %s: %w", f, ErrUnknownFormat)
	}
	if err != nil {
		return fmt.Errorf("format: write %s: %w", f, err)
	}
	if err = bw.Flush(); err != nil {
		return fmt.Errorf("format: write %s: %w", f, err)
	}

	return nil
}

// WriteFile creates path and writes g in format f (Auto: from the extension).
func WriteFile(path string, g *graph.Graph, f Format) (err error) {
	if f == Auto {
		if f = DetectFormat(path); f == Auto {
			return fmt.Errorf("%s: %w", path, ErrUnknownFormat)
		}
	}
	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("format: %w", err)
	}
	defer func() {
		if cerr := fh.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("format: %w", cerr)
		}
	}()

	return Write(fh, g, f)
}

func writeLAD(w *bufio.Writer, g *graph.Graph, labelled bool) error {
	n := g.VertexCount()
	if _, err := fmt.Fprintln(w, n); err != nil {
		return err
	}
	buf := make([]byte, 0, 64)
	for v := 0; v < n; v++ {
		buf = buf[:0]
		if labelled {
			buf = strconv.AppendInt(buf, int64(g.Label(v)), 10)
			buf = append(buf, ' ')
		}
		nb := g.Neighbors(v)
		buf = strconv.AppendInt(buf, int64(len(nb)), 10)
		for _, u := range nb {
			buf = append(buf, ' ')
			buf = strconv.AppendInt(buf, int64(u), 10)
		}
		buf = append(buf, '\n')
		if _, err := w.Write(buf); err != nil {
			return err
		}
	}

	return nil
}

// writeGRF emits node lines "id label" and edge lines "src dst" using the
// external ids of g, so ids read from a GRF file survive a round trip.
func writeGRF(w *bufio.Writer, g *graph.Graph) error {
	n := g.VertexCount()
	if _, err := fmt.Fprintln(w, n); err != nil {
		return err
	}
	var v int
	for v = 0; v < n; v++ {
		if _, err := fmt.Fprintf(w, "%d %d\n", g.ID(v), g.Label(v)); err != nil {
			return err
		}
	}
	for v = 0; v < n; v++ {
		out := g.Out(v)
		if _, err := fmt.Fprintln(w, len(out)); err != nil {
			return err
		}
		for _, u := range out {
			if _, err := fmt.Fprintf(w, "%d %d\n", g.ID(v), g.ID(u)); err != nil {
				return err
			}
		}
	}

	return nil
}
