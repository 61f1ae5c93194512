package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// numericEntry is an entry that only accepts decimal digits
type numericEntry struct {
	widget.Entry
}

func newNumericEntry() *numericEntry {
	e := &numericEntry{}
	e.ExtendBaseWidget(e)
	return e
}

// TypedRune drops anything that is not a digit
func (e *numericEntry) TypedRune(r rune) {
	if r >= '0' && r <= '9' {
		e.Entry.TypedRune(r)
	}
}

// TypedShortcut refuses to paste non-numeric text
func (e *numericEntry) TypedShortcut(s fyne.Shortcut) {
	if paste, ok := s.(*fyne.ShortcutPaste); ok && !isDigits(paste.Clipboard.Content()) {
		return
	}
	e.Entry.TypedShortcut(s)
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
