package storage

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"folderer/models"
)

const (
	settingsFile = ".folderer_settings.json"
	historyFile  = ".folderer_history.jsonl"
)

// Manager handles data persistence
type Manager struct {
	dataPath string
}

// NewManager creates a storage manager rooted at the user's home directory
func NewManager() *Manager {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}
	return NewManagerAt(homeDir)
}

// NewManagerAt creates a storage manager rooted at dir
func NewManagerAt(dir string) *Manager {
	return &Manager{dataPath: dir}
}

// SettingsPath returns the location of the settings file
func (m *Manager) SettingsPath() string {
	return filepath.Join(m.dataPath, settingsFile)
}

// HistoryPath returns the location of the activity journal
func (m *Manager) HistoryPath() string {
	return filepath.Join(m.dataPath, historyFile)
}

// LoadSettings loads the settings from disk. A missing file yields defaults.
// A corrupt file also yields defaults, together with the parse error so the
// caller can report it.
func (m *Manager) LoadSettings() (*models.Settings, error) {
	def := models.DefaultSettings()

	data, err := os.ReadFile(m.SettingsPath())
	if err != nil {
		if os.IsNotExist(err) {
			return def, nil
		}
		return def, fmt.Errorf("read settings: %w", err)
	}

	// Start from defaults so absent keys keep their default values.
	settings := *def
	if err := json.Unmarshal(data, &settings); err != nil {
		return def, fmt.Errorf("parse settings %s: %w", m.SettingsPath(), err)
	}
	settings.Sanitize(def)
	return &settings, nil
}

// SaveSettings writes the settings to disk, replacing the old file atomically
func (m *Manager) SaveSettings(settings *models.Settings) error {
	if settings == nil {
		return errors.New("nil settings")
	}
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}
	return writeFileAtomic(m.SettingsPath(), data, 0644)
}

func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}

// AppendHistory appends one run to the activity journal. The journal is only
// ever appended to.
func (m *Manager) AppendHistory(report *models.Report) error {
	entry := *report
	// Successful items are implied by the counters; keep the journal compact.
	entry.Items = report.Failures()

	line, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	f, err := os.OpenFile(m.HistoryPath(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	defer f.Close()
	if _, err := f.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("write history: %w", err)
	}
	return nil
}

// LoadHistory returns the most recent runs, newest first. limit <= 0 returns
// everything. Lines that fail to parse are skipped.
func (m *Manager) LoadHistory(limit int) ([]*models.Report, error) {
	f, err := os.Open(m.HistoryPath())
	if err != nil {
		if os.IsNotExist(err) {
			return []*models.Report{}, nil
		}
		return nil, err
	}
	defer f.Close()

	var all []*models.Report
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		var r models.Report
		if err := json.Unmarshal([]byte(text), &r); err != nil {
			continue
		}
		all = append(all, &r)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	out := make([]*models.Report, 0, len(all))
	for i := len(all) - 1; i >= 0; i-- {
		out = append(out, all[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

// CleanPath strips surrounding quotes and normalizes a user-entered path
func CleanPath(path string) string {
	path = strings.TrimSpace(path)
	path = strings.Trim(path, `"'`)
	if path == "" {
		return ""
	}
	return filepath.Clean(path)
}
