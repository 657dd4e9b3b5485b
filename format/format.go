// SPDX-License-Identifier: MIT

package format

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var (
	// ErrSyntax indicates a malformed graph file.
	ErrSyntax = errors.New("format: syntax error")

	// ErrUnknownFormat indicates an unrecognised format name or extension.
	ErrUnknownFormat = errors.New("format: unknown format")
)

// Format names a graph file format.
type Format string

// Known formats. Auto asks ReadFile to detect the format.
const (
	Auto        Format = ""
	LAD         Format = "lad"
	LabelledLAD Format = "ladl"
	GRF         Format = "grf"
	VF          Format = "vf"
)

// Formats lists the concrete formats in a stable order.
func Formats() []Format { return []Format{LAD, LabelledLAD, GRF, VF} }

// ParseFormat resolves a user-supplied name ("lad", "LADL", "grf", "vf",
// "auto" or empty).
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return Auto, nil
	case "lad":
		return LAD, nil
	case "ladl", "labelled-lad", "labeled-lad":
		return LabelledLAD, nil
	case "grf":
		return GRF, nil
	case "vf":
		return VF, nil
	}

	return Auto, fmt.Errorf("%q: %w", s, ErrUnknownFormat)
}

// Directed reports whether files of this format describe directed graphs.
func (f Format) Directed() bool { return f == GRF || f == VF }

// String returns the format name.
func (f Format) String() string {
	if f == Auto {
		return "auto"
	}

	return string(f)
}

// DetectFormat maps a file extension to a format. It returns Auto for
// extensions it does not know; ReadFile then inspects the content.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".lad":
		return LAD
	case ".ladl":
		return LabelledLAD
	case ".grf":
		return GRF
	case ".vf":
		return VF
	}

	return Auto
}
