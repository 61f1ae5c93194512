package models

import (
	"errors"
	"strings"
	"testing"
)

// TestDefaultSettings checks the values a fresh install starts with
func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	if s.Theme != ThemeLight {
		t.Errorf("Expected theme Light, got '%s'", s.Theme)
	}
	if s.DefaultTargetPath == "" {
		t.Error("Default target path should not be empty")
	}
	if !s.Warnings.CreateMany || !s.Warnings.FolderFilesConfirm {
		t.Errorf("Expected both warnings enabled, got %+v", s.Warnings)
	}
}

func TestParseTheme(t *testing.T) {
	tests := []struct {
		in     string
		want   Theme
		wantOK bool
	}{
		{"Light", ThemeLight, true},
		{"dark", ThemeDark, true},
		{" FOREST ", ThemeForest, true},
		{"solarized", ThemeLight, false},
		{"", ThemeLight, false},
	}
	for _, tt := range tests {
		got, ok := ParseTheme(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseTheme(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestSettingsSanitizeAndReset(t *testing.T) {
	def := &Settings{Theme: ThemeLight, DefaultTargetPath: "/default"}
	s := &Settings{Theme: "Neon", DefaultTargetPath: "   "}
	s.Sanitize(def)
	if s.Theme != ThemeLight || s.DefaultTargetPath != "/default" {
		t.Errorf("Sanitize gave %+v", s)
	}

	s.Warnings = Warnings{}
	s.ResetWarnings()
	if !s.Warnings.CreateMany || !s.Warnings.FolderFilesConfirm {
		t.Errorf("ResetWarnings left %+v", s.Warnings)
	}
}

func TestFolderRequestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   FolderRequest
		want FolderRequest
	}{
		{
			"in range unchanged",
			FolderRequest{Base: "Shot", Numbered: true, Count: 3, Start: 1, PadWidth: 2},
			FolderRequest{Base: "Shot", Numbered: true, Count: 3, Start: 1, PadWidth: 2},
		},
		{
			"clamps high values",
			FolderRequest{Base: " Shot ", Numbered: true, Count: 100000, Start: 5000000, PadWidth: 42},
			FolderRequest{Base: "Shot", Numbered: true, Count: MaxCount, Start: MaxStart, PadWidth: MaxPadWidth},
		},
		{
			"clamps low values",
			FolderRequest{Base: "Shot", Numbered: true, Count: 0, Start: -4, PadWidth: -1},
			FolderRequest{Base: "Shot", Numbered: true, Count: MinCount, Start: MinStart, PadWidth: MinPadWidth},
		},
		{
			"numbering off forces one",
			FolderRequest{Base: "Shot", Numbered: false, Count: 20, Start: 3},
			FolderRequest{Base: "Shot", Numbered: false, Count: 1, Start: 3},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in
			got.Normalize()
			if got != tt.want {
				t.Errorf("Normalize() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFolderRequestValidate(t *testing.T) {
	if err := (FolderRequest{Base: "  ", Target: "/tmp"}).Validate(); !errors.Is(err, ErrEmptyBase) {
		t.Errorf("blank base: got %v", err)
	}
	if err := (FolderRequest{Base: "x", Target: ""}).Validate(); !errors.Is(err, ErrEmptyTarget) {
		t.Errorf("blank target: got %v", err)
	}
	if err := (FolderRequest{Base: "x", Target: "/tmp"}).Validate(); err != nil {
		t.Errorf("valid request: got %v", err)
	}
}

func TestFolderRequestIsMany(t *testing.T) {
	r := FolderRequest{Numbered: true, Count: ManyFoldersThreshold}
	if r.IsMany() {
		t.Error("threshold itself should not count as many")
	}
	r.Count++
	if !r.IsMany() {
		t.Error("above threshold should count as many")
	}
	r.Numbered = false
	if r.IsMany() {
		t.Error("unnumbered request is never many")
	}
}

func TestReportCounters(t *testing.T) {
	r := NewReport(ActionCreate, "/tmp/x")
	if r.ID == "" {
		t.Fatal("report should carry a run ID")
	}
	if other := NewReport(ActionCreate, "/tmp/x"); other.ID == r.ID {
		t.Error("run IDs should be unique")
	}

	r.Add(Outcome{Name: "a", Status: StatusCreated})
	r.Add(Outcome{Name: "b", Status: StatusSkipped})
	r.Add(Outcome{Name: "c", Status: StatusError, Err: "boom"})
	r.Finish()

	if r.Created != 1 || r.Skipped != 1 || r.Errors != 1 {
		t.Errorf("counters = %d/%d/%d", r.Created, r.Skipped, r.Errors)
	}
	if f := r.Failures(); len(f) != 1 || f[0].Name != "c" {
		t.Errorf("Failures() = %+v", f)
	}
	if !strings.Contains(r.Summary(), "Created: 1") {
		t.Errorf("Summary() = %q", r.Summary())
	}
	if r.Finished.Before(r.Started) {
		t.Error("Finished should not precede Started")
	}
}

func TestOutcomeLogLine(t *testing.T) {
	tests := []struct {
		o    Outcome
		want string
	}{
		{Outcome{Dest: "/t/a", Status: StatusCreated}, "Created: /t/a"},
		{Outcome{Dest: "/t/a", Status: StatusSkipped}, "Exists (skipped): /t/a"},
		{Outcome{Name: "a.txt", Dest: "a/a.txt", Status: StatusMoved}, "Moved: a.txt -> a/a.txt"},
		{Outcome{Name: "a.txt", Status: StatusError, Err: "denied"}, "Error: a.txt -> denied"},
	}
	for _, tt := range tests {
		if got := tt.o.LogLine(); !strings.Contains(got, tt.want) {
			t.Errorf("LogLine() = %q, want it to contain %q", got, tt.want)
		}
	}
}
