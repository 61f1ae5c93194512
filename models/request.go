package models

import (
	"errors"
	"strings"
)

// Input bounds for a folder request
const (
	MinCount    = 1
	MaxCount    = 9999
	MinStart    = 0
	MaxStart    = 999999
	MinPadWidth = 0
	MaxPadWidth = 10

	// ManyFoldersThreshold is the count above which creation asks for confirmation
	ManyFoldersThreshold = 50
)

var (
	ErrEmptyBase   = errors.New("folder base name can't be empty")
	ErrEmptyTarget = errors.New("target path can't be empty")
)

// FolderRequest describes one folder creation action. It is built from user
// input each time and never persisted.
type FolderRequest struct {
	Base      string
	Numbered  bool
	Count     int
	Start     int
	Separator string
	PadWidth  int
	Target    string
}

// DefaultFolderRequest returns the values the main window starts with
func DefaultFolderRequest(target string) FolderRequest {
	return FolderRequest{
		Base:      "New Folder",
		Numbered:  true,
		Count:     5,
		Start:     1,
		Separator: " ",
		PadWidth:  0,
		Target:    target,
	}
}

// Normalize trims the base name and clamps the numeric fields into range.
// With numbering off the count is always 1.
func (r *FolderRequest) Normalize() {
	r.Base = strings.TrimSpace(r.Base)
	r.Target = strings.TrimSpace(r.Target)
	r.Count = Clamp(r.Count, MinCount, MaxCount)
	r.Start = Clamp(r.Start, MinStart, MaxStart)
	r.PadWidth = Clamp(r.PadWidth, MinPadWidth, MaxPadWidth)
	if !r.Numbered {
		r.Count = 1
	}
}

// Validate reports input that must block the operation before anything is
// written to disk.
func (r FolderRequest) Validate() error {
	if strings.TrimSpace(r.Base) == "" {
		return ErrEmptyBase
	}
	if strings.TrimSpace(r.Target) == "" {
		return ErrEmptyTarget
	}
	return nil
}

// IsMany reports whether the request crosses the confirmation threshold
func (r FolderRequest) IsMany() bool {
	return r.Numbered && r.Count > ManyFoldersThreshold
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
