// Package naming builds the folder names for a creation request and the short
// preview shown while the user types.
package naming

import (
	"strconv"
	"strings"

	"folderer/models"
)

// PlaceholderBase is previewed when the base name is blank
const PlaceholderBase = "New Folder"

// PadNumber left-pads n with zeros to width digits. Width is clamped to
// 0..10; 0 means no padding. Longer numbers are never truncated.
func PadNumber(n, width int) string {
	width = models.Clamp(width, models.MinPadWidth, models.MaxPadWidth)
	s := strconv.Itoa(n)
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}

// Name returns the i-th generated name of req
func Name(req models.FolderRequest, i int) string {
	return req.Base + req.Separator + PadNumber(req.Start+i, req.PadWidth)
}

// Names generates every folder name for req in ascending order. With
// numbering off the result is just the base name. The caller is expected to
// have normalized req.
func Names(req models.FolderRequest) []string {
	if !req.Numbered {
		return []string{req.Base}
	}
	if req.Count <= 0 {
		return nil
	}
	names := make([]string, req.Count)
	for i := range names {
		names[i] = Name(req, i)
	}
	return names
}

// Preview renders the first n names separated by commas, ending in ", ..."
// when the request produces more.
func Preview(req models.FolderRequest, n int) string {
	req.Normalize()
	if req.Base == "" {
		req.Base = PlaceholderBase
	}
	if !req.Numbered {
		return req.Base
	}
	if n < 1 {
		n = 1
	}
	if n > req.Count {
		n = req.Count
	}
	items := make([]string, n)
	for i := range items {
		items[i] = Name(req, i)
	}
	out := strings.Join(items, ", ")
	if req.Count > n {
		out += ", ..."
	}
	return out
}

// PreviewSamples picks how many sample names fit a window of the given width
func PreviewSamples(width float32) int {
	switch {
	case width >= 980:
		return 5
	case width >= 820:
		return 4
	default:
		return 3
	}
}

// ParseInt reads a numeric field, returning def for blank or invalid input
func ParseInt(s string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return v
}
