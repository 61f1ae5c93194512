package models

import (
	"os"
	"strings"
)

// Theme names the colour palette of the window
type Theme string

const (
	ThemeLight  Theme = "Light"
	ThemeDark   Theme = "Dark"
	ThemeForest Theme = "Forest"
)

// Themes lists the selectable themes in display order
var Themes = []Theme{ThemeLight, ThemeDark, ThemeForest}

// ParseTheme matches a theme name case-insensitively
func ParseTheme(name string) (Theme, bool) {
	for _, t := range Themes {
		if strings.EqualFold(strings.TrimSpace(name), string(t)) {
			return t, true
		}
	}
	return ThemeLight, false
}

// Warnings holds the "don't show again" state of the confirmation prompts.
// true means the prompt is shown.
type Warnings struct {
	FolderFilesConfirm bool `json:"folder_files_confirm"`
	CreateMany         bool `json:"create_many"`
}

// Settings represents application settings
type Settings struct {
	Theme             Theme    `json:"theme"`
	DefaultTargetPath string   `json:"default_target_path"`
	Warnings          Warnings `json:"warnings"`
}

// DefaultSettings returns default application settings
func DefaultSettings() *Settings {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}
	return &Settings{
		Theme:             ThemeLight,
		DefaultTargetPath: cwd,
		Warnings: Warnings{
			FolderFilesConfirm: true,
			CreateMany:         true,
		},
	}
}

// ResetWarnings re-enables every confirmation prompt
func (s *Settings) ResetWarnings() {
	s.Warnings = Warnings{FolderFilesConfirm: true, CreateMany: true}
}

// Sanitize repairs values read from disk: unknown themes become Light and a
// blank default path falls back to def.
func (s *Settings) Sanitize(def *Settings) {
	if t, ok := ParseTheme(string(s.Theme)); ok {
		s.Theme = t
	} else {
		s.Theme = def.Theme
	}
	s.DefaultTargetPath = strings.TrimSpace(s.DefaultTargetPath)
	if s.DefaultTargetPath == "" {
		s.DefaultTargetPath = def.DefaultTargetPath
	}
}
