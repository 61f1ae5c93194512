package ui

import (
	"image/color"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"folderer/models"
)

// palette holds the handful of colours each theme overrides
type palette struct {
	bg, text, muted, entry, btn, border color.Color
	variant                             fyne.ThemeVariant
}

var palettes = map[models.Theme]palette{
	models.ThemeLight: {
		bg: hex("#f3f4f6"), text: hex("#111827"), muted: hex("#6b7280"),
		entry: hex("#ffffff"), btn: hex("#ffffff"), border: hex("#d1d5db"),
		variant: theme.VariantLight,
	},
	models.ThemeDark: {
		bg: hex("#070B14"), text: hex("#e5e7eb"), muted: hex("#9ca3af"),
		entry: hex("#0A1220"), btn: hex("#111B2C"), border: hex("#233146"),
		variant: theme.VariantDark,
	},
	models.ThemeForest: {
		bg: hex("#06110B"), text: hex("#E7F2EA"), muted: hex("#A9C4B2"),
		entry: hex("#0A1A12"), btn: hex("#0E2418"), border: hex("#1B3A2A"),
		variant: theme.VariantDark,
	},
}

// folderTheme is a fyne theme painted with one of the palettes
type folderTheme struct {
	name models.Theme
	p    palette
}

var _ fyne.Theme = (*folderTheme)(nil)

// NewTheme returns the fyne theme for name, Light when unknown
func NewTheme(name models.Theme) fyne.Theme {
	p, ok := palettes[name]
	if !ok {
		name = models.ThemeLight
		p = palettes[name]
	}
	return &folderTheme{name: name, p: p}
}

func (t *folderTheme) Color(n fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch n {
	case theme.ColorNameBackground, theme.ColorNameMenuBackground, theme.ColorNameOverlayBackground:
		return t.p.bg
	case theme.ColorNameForeground:
		return t.p.text
	case theme.ColorNameDisabled, theme.ColorNamePlaceHolder:
		return t.p.muted
	case theme.ColorNameInputBackground:
		return t.p.entry
	case theme.ColorNameButton:
		return t.p.btn
	case theme.ColorNameInputBorder:
		return t.p.border
	}
	return theme.DefaultTheme().Color(n, t.p.variant)
}

func (t *folderTheme) Font(s fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(s)
}

func (t *folderTheme) Icon(n fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(n)
}

func (t *folderTheme) Size(n fyne.ThemeSizeName) float32 {
	return theme.DefaultTheme().Size(n)
}

// hex parses "#rrggbb"; malformed input yields opaque black
func hex(s string) color.Color {
	s = strings.TrimPrefix(s, "#")
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil || len(s) != 6 {
		return color.NRGBA{A: 0xff}
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}
