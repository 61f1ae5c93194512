package ui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"

	"folderer/logging"
	"folderer/models"
	"folderer/storage"
)

func newTestWindow(t *testing.T) (*MainWindow, *storage.Manager, string) {
	t.Helper()
	a := test.NewApp()
	t.Cleanup(a.Quit)

	store := storage.NewManagerAt(t.TempDir())
	target := t.TempDir()
	s := models.DefaultSettings()
	s.DefaultTargetPath = target
	if err := store.SaveSettings(s); err != nil {
		t.Fatal(err)
	}
	return newMainWindow(a, store, logging.Discard()), store, target
}

func entries(t *testing.T, dir string) []string {
	t.Helper()
	list, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, e := range list {
		names = append(names, e.Name())
	}
	return names
}

func TestStartsWithSavedDefaultPath(t *testing.T) {
	mw, _, target := newTestWindow(t)
	if mw.pathEntry.Text != target {
		t.Errorf("path entry = %q, want %q", mw.pathEntry.Text, target)
	}
	if mw.defaultPathEntry.Text != target {
		t.Errorf("default path entry = %q", mw.defaultPathEntry.Text)
	}
}

func TestPreviewReflectsInputs(t *testing.T) {
	mw, _, _ := newTestWindow(t)
	mw.baseEntry.SetText("Take")
	mw.sepEntry.SetText("_")
	mw.padEntry.SetText("3")
	mw.countEntry.SetText("2")
	mw.startEntry.SetText("7")
	mw.updatePreview()

	if got := mw.previewLabel.Text; got != "Take_007, Take_008" {
		t.Errorf("preview = %q", got)
	}
}

func TestPreviewFollowsWindowWidth(t *testing.T) {
	mw, _, _ := newTestWindow(t)
	mw.baseEntry.SetText("A")
	mw.countEntry.SetText("10")

	waitForPreview := func(want string) {
		t.Helper()
		deadline := time.Now().Add(2 * time.Second)
		for mw.previewLabel.Text != want {
			if time.Now().After(deadline) {
				t.Fatalf("preview = %q, want %q", mw.previewLabel.Text, want)
			}
			time.Sleep(10 * time.Millisecond)
		}
	}

	mw.window.Resize(fyne.NewSize(1000, 600))
	waitForPreview("A 1, A 2, A 3, A 4, A 5, ...")

	mw.window.Resize(fyne.NewSize(850, 600))
	waitForPreview("A 1, A 2, A 3, A 4, ...")

	mw.window.Resize(fyne.NewSize(800, 600))
	waitForPreview("A 1, A 2, A 3, ...")
}

func TestNumberingOffDisablesFields(t *testing.T) {
	mw, _, _ := newTestWindow(t)
	mw.countEntry.SetText("12")
	test.Tap(mw.numberedCheck)

	if mw.numberedCheck.Checked {
		t.Fatal("numbering should be off")
	}
	if !mw.countEntry.Disabled() || !mw.padEntry.Disabled() || !mw.sepEntry.Disabled() || !mw.startEntry.Disabled() {
		t.Error("numeric fields should be disabled")
	}
	if mw.countEntry.Text != "1" {
		t.Errorf("count = %q, want 1", mw.countEntry.Text)
	}
	mw.updatePreview()
	if mw.previewLabel.Text != "New Folder" {
		t.Errorf("preview = %q", mw.previewLabel.Text)
	}

	test.Tap(mw.numberedCheck)
	if mw.countEntry.Disabled() {
		t.Error("fields should be enabled again")
	}
}

func TestNumericEntryRejectsLetters(t *testing.T) {
	mw, _, _ := newTestWindow(t)
	mw.countEntry.SetText("")
	test.Type(mw.countEntry, "1a2-")
	if mw.countEntry.Text != "12" {
		t.Errorf("count = %q, want 12", mw.countEntry.Text)
	}
}

func TestCreateFoldersButton(t *testing.T) {
	mw, store, target := newTestWindow(t)
	mw.baseEntry.SetText("Shot")
	mw.countEntry.SetText("3")
	mw.padEntry.SetText("2")

	test.Tap(mw.createBtn)

	got := entries(t, target)
	if len(got) != 3 {
		t.Fatalf("target has %v", got)
	}
	if mw.badge.Text() != "Created 3" {
		t.Errorf("badge = %q", mw.badge.Text())
	}
	if !strings.Contains(mw.LogText(), "Created: "+filepath.Join(target, "Shot 01")) {
		t.Errorf("log = %q", mw.LogText())
	}
	history, err := store.LoadHistory(0)
	if err != nil || len(history) != 1 || history[0].Created != 3 {
		t.Errorf("history = %+v, %v", history, err)
	}

	test.Tap(mw.createBtn)
	if mw.badge.Text() != "Created 0, skipped 3" {
		t.Errorf("rerun badge = %q", mw.badge.Text())
	}
}

func TestCreateFoldersEmptyBaseBlocks(t *testing.T) {
	mw, _, target := newTestWindow(t)
	mw.baseEntry.SetText("   ")
	test.Tap(mw.createBtn)
	if got := entries(t, target); len(got) != 0 {
		t.Errorf("nothing should be created, got %v", got)
	}
}

func TestCreateManyAsksFirst(t *testing.T) {
	mw, _, target := newTestWindow(t)
	mw.countEntry.SetText("60")
	test.Tap(mw.createBtn)

	if got := entries(t, target); len(got) != 0 {
		t.Errorf("creation should wait for confirmation, got %d entries", len(got))
	}
	if mw.lastDialog == nil {
		t.Error("expected a confirmation dialog")
	}
}

func TestCreateManySuppressedWarning(t *testing.T) {
	mw, _, target := newTestWindow(t)
	mw.settings.Warnings.CreateMany = false
	mw.countEntry.SetText("60")
	test.Tap(mw.createBtn)

	if got := entries(t, target); len(got) != 60 {
		t.Errorf("expected 60 folders, got %d", len(got))
	}
}

func TestCreateMissingTargetAsks(t *testing.T) {
	mw, _, target := newTestWindow(t)
	missing := filepath.Join(target, "new", "place")
	mw.pathEntry.SetText(missing)
	test.Tap(mw.createBtn)

	if _, err := os.Stat(missing); !os.IsNotExist(err) {
		t.Error("target should not be created without confirmation")
	}
	if mw.lastDialog == nil {
		t.Error("expected a create-path dialog")
	}
}

func TestOrganizeFilesSuppressedWarning(t *testing.T) {
	mw, _, target := newTestWindow(t)
	mw.settings.Warnings.FolderFilesConfirm = false
	for _, name := range []string{"a.txt", "a.csv"} {
		if err := os.WriteFile(filepath.Join(target, name), []byte(name), 0644); err != nil {
			t.Fatal(err)
		}
	}

	test.Tap(mw.organizeBtn)

	for _, name := range []string{"a.txt", "a.csv"} {
		if _, err := os.Stat(filepath.Join(target, "a", name)); err != nil {
			t.Errorf("%s not moved: %v", name, err)
		}
	}
	if mw.badge.Text() != "Moved 2" {
		t.Errorf("badge = %q", mw.badge.Text())
	}
}

func TestClearLog(t *testing.T) {
	mw, _, _ := newTestWindow(t)
	mw.clearLog()
	mw.appendLog("one")
	mw.appendLog("two")
	if mw.LogText() != "one\ntwo" {
		t.Errorf("log = %q", mw.LogText())
	}
	test.Tap(mw.clearBtn)
	if mw.LogText() != "" || mw.logLabel.Text != "" {
		t.Error("log should be empty")
	}
}

func TestThemeSelectionIsSaved(t *testing.T) {
	mw, store, _ := newTestWindow(t)
	mw.themeRadio.SetSelected(string(models.ThemeForest))

	s, err := store.LoadSettings()
	if err != nil {
		t.Fatal(err)
	}
	if s.Theme != models.ThemeForest {
		t.Errorf("saved theme = %q", s.Theme)
	}
	if _, ok := mw.app.Settings().Theme().(*folderTheme); !ok {
		t.Error("custom theme not applied")
	}
}

func TestDefaultPathUpdatesMainView(t *testing.T) {
	mw, store, _ := newTestWindow(t)
	other := t.TempDir()
	mw.defaultPathEntry.SetText(other)

	if mw.pathEntry.Text != other {
		t.Errorf("path entry = %q", mw.pathEntry.Text)
	}
	s, _ := store.LoadSettings()
	if s.DefaultTargetPath != other {
		t.Errorf("saved path = %q", s.DefaultTargetPath)
	}
}

func TestResetWarnings(t *testing.T) {
	mw, store, _ := newTestWindow(t)
	mw.settings.Warnings = models.Warnings{}
	mw.resetWarnings()

	s, _ := store.LoadSettings()
	if !s.Warnings.CreateMany || !s.Warnings.FolderFilesConfirm {
		t.Errorf("warnings = %+v", s.Warnings)
	}
}

func TestSwitchViews(t *testing.T) {
	mw, _, _ := newTestWindow(t)
	mw.showSettings()
	if mw.window.Content() != mw.settingsView {
		t.Error("settings view not shown")
	}
	mw.showMain()
	if mw.window.Content() != mw.mainView {
		t.Error("main view not shown")
	}
}
