package storage

import (
	"os"
	"path/filepath"
	"testing"

	"folderer/models"
)

func TestLoadSettingsMissingFileGivesDefaults(t *testing.T) {
	m := NewManagerAt(t.TempDir())
	s, err := m.LoadSettings()
	if err != nil {
		t.Fatal(err)
	}
	if s.Theme != models.ThemeLight || !s.Warnings.CreateMany {
		t.Errorf("unexpected defaults: %+v", s)
	}
}

func TestSaveAndLoadSettings(t *testing.T) {
	m := NewManagerAt(t.TempDir())
	in := &models.Settings{
		Theme:             models.ThemeForest,
		DefaultTargetPath: "/srv/projects",
		Warnings:          models.Warnings{FolderFilesConfirm: false, CreateMany: true},
	}
	if err := m.SaveSettings(in); err != nil {
		t.Fatal(err)
	}
	out, err := m.LoadSettings()
	if err != nil {
		t.Fatal(err)
	}
	if *out != *in {
		t.Errorf("round trip gave %+v, want %+v", out, in)
	}
}

func TestLoadSettingsOriginalLayout(t *testing.T) {
	dir := t.TempDir()
	raw := `{
  "theme": "Dark",
  "default_target_path": "  /data/shots  ",
  "warnings": {"folder_files_confirm": false}
}`
	if err := os.WriteFile(filepath.Join(dir, settingsFile), []byte(raw), 0644); err != nil {
		t.Fatal(err)
	}
	s, err := NewManagerAt(dir).LoadSettings()
	if err != nil {
		t.Fatal(err)
	}
	if s.Theme != models.ThemeDark {
		t.Errorf("theme = %q", s.Theme)
	}
	if s.DefaultTargetPath != "/data/shots" {
		t.Errorf("path = %q", s.DefaultTargetPath)
	}
	if s.Warnings.FolderFilesConfirm {
		t.Error("folder_files_confirm should be false")
	}
	if !s.Warnings.CreateMany {
		t.Error("absent create_many should default to true")
	}
}

func TestLoadSettingsCorruptFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, settingsFile), []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	s, err := NewManagerAt(dir).LoadSettings()
	if err == nil {
		t.Error("expected parse error")
	}
	if s == nil || s.Theme != models.ThemeLight {
		t.Errorf("expected defaults alongside the error, got %+v", s)
	}
}

func TestLoadSettingsUnknownTheme(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, settingsFile), []byte(`{"theme":"Neon"}`), 0644); err != nil {
		t.Fatal(err)
	}
	s, err := NewManagerAt(dir).LoadSettings()
	if err != nil {
		t.Fatal(err)
	}
	if s.Theme != models.ThemeLight {
		t.Errorf("theme = %q, want Light", s.Theme)
	}
}

func TestHistoryAppendAndLoad(t *testing.T) {
	m := NewManagerAt(t.TempDir())

	empty, err := m.LoadHistory(0)
	if err != nil || len(empty) != 0 {
		t.Fatalf("empty history: %v, %v", empty, err)
	}

	var ids []string
	for i := 0; i < 3; i++ {
		r := models.NewReport(models.ActionCreate, "/t")
		r.Add(models.Outcome{Name: "ok", Status: models.StatusCreated})
		r.Add(models.Outcome{Name: "bad", Status: models.StatusError, Err: "denied"})
		r.Finish()
		if err := m.AppendHistory(r); err != nil {
			t.Fatal(err)
		}
		ids = append(ids, r.ID)
	}

	got, err := m.LoadHistory(2)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d entries", len(got))
	}
	if got[0].ID != ids[2] || got[1].ID != ids[1] {
		t.Errorf("expected newest first")
	}
	if got[0].Created != 1 || got[0].Errors != 1 {
		t.Errorf("counts lost: %+v", got[0])
	}
	if len(got[0].Items) != 1 || got[0].Items[0].Name != "bad" {
		t.Errorf("journal should keep only failed items, got %+v", got[0].Items)
	}
}

func TestCleanPath(t *testing.T) {
	tests := map[string]string{
		`"/tmp/a/"`:    "/tmp/a",
		`'/tmp/b'`:     "/tmp/b",
		"  /tmp/c  ":   "/tmp/c",
		"":             "",
		"/tmp//d/../e": "/tmp/e",
	}
	for in, want := range tests {
		if got := CleanPath(in); got != want {
			t.Errorf("CleanPath(%q) = %q, want %q", in, got, want)
		}
	}
}
