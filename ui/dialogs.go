package ui

import (
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	fynestorage "fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"github.com/ncruces/zenity"
)

// pickFolder asks for a directory, trying the native dialog first and the
// fyne dialog when zenity is unavailable or fails.
func (mw *MainWindow) pickFolder(title, start string, onPick func(string)) {
	if start == "" || !dirExists(start) {
		if home, err := os.UserHomeDir(); err == nil {
			start = home
		}
	}

	if mw.nativeDialogs && zenity.IsAvailable() {
		dir, err := zenity.SelectFile(
			zenity.Title(title),
			zenity.Directory(),
			zenity.Filename(start),
		)
		switch {
		case err == zenity.ErrCanceled:
			return
		case err == nil:
			if dir != "" {
				onPick(dir)
			}
			return
		default:
			mw.log.Debug("native folder dialog failed, using fallback: %v", err)
		}
	}
	mw.pickFolderFyne(start, onPick)
}

func (mw *MainWindow) pickFolderFyne(start string, onPick func(string)) {
	d := dialog.NewFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			dialog.ShowError(err, mw.window)
			return
		}
		if uri == nil {
			return
		}
		onPick(uri.Path())
	}, mw.window)

	if start != "" {
		if lister, err := fynestorage.ListerForURI(fynestorage.NewFileURI(start)); err == nil {
			d.SetLocation(lister)
		}
	}
	d.Show()
}

// confirmWithDontShow asks a yes/no question. When show points at a warning
// flag the dialog offers "Don't show again"; answering Yes with it ticked
// clears the flag and saves settings. A cleared flag skips the dialog.
func (mw *MainWindow) confirmWithDontShow(title, message string, show *bool, onYes func()) {
	if show != nil && !*show {
		onYes()
		return
	}

	content := container.NewVBox(widget.NewLabel(message))
	dont := widget.NewCheck("Don't show again", nil)
	if show != nil {
		content.Add(dont)
	}

	d := dialog.NewCustomConfirm(title, "Yes", "No", content, func(ok bool) {
		if !ok {
			return
		}
		if show != nil && dont.Checked {
			*show = false
			mw.saveSettings()
		}
		onYes()
	}, mw.window)
	mw.lastDialog = d
	d.Show()
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
