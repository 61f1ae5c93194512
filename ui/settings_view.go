package ui

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"folderer/models"
)

func (mw *MainWindow) buildSettingsView() fyne.CanvasObject {
	backBtn := widget.NewButtonWithIcon("", theme.NavigateBackIcon(), mw.showMain)
	title := widget.NewLabelWithStyle("Settings", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	top := container.NewHBox(backBtn, title)

	names := make([]string, len(models.Themes))
	for i, t := range models.Themes {
		names[i] = string(t)
	}
	mw.themeRadio = widget.NewRadioGroup(names, nil)
	mw.themeRadio.Horizontal = true
	mw.themeRadio.Required = true
	mw.themeRadio.SetSelected(string(mw.settings.Theme))
	mw.themeRadio.OnChanged = mw.setTheme

	mw.defaultPathEntry = widget.NewEntry()
	mw.defaultPathEntry.SetText(mw.settings.DefaultTargetPath)
	mw.defaultPathEntry.OnChanged = mw.setDefaultPath
	browseBtn := widget.NewButton("Browse...", func() {
		mw.pickFolder(`Choose default "Create in" folder`, mw.defaultPathEntry.Text, mw.defaultPathEntry.SetText)
	})

	body := container.NewVBox(
		widget.NewLabelWithStyle("Theme", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		mw.themeRadio,
		widget.NewSeparator(),
		widget.NewLabelWithStyle(`Default "Create in" folder`, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewBorder(nil, nil, nil, browseBtn, mw.defaultPathEntry),
		widget.NewSeparator(),
	)

	bottom := container.NewBorder(nil, nil,
		widget.NewLabel(AppVersion),
		container.NewHBox(
			widget.NewButton("Reset warnings", mw.confirmResetWarnings),
			widget.NewButtonWithIcon("Save", theme.DocumentSaveIcon(), func() {
				mw.saveSettings()
				mw.showMain()
			}),
		),
	)

	return container.NewPadded(container.NewBorder(top, bottom, nil, nil, body))
}

func (mw *MainWindow) showSettings() {
	mw.window.SetContent(mw.settingsView)
}

func (mw *MainWindow) showMain() {
	mw.window.SetContent(mw.mainView)
	mw.schedulePreview()
}

// setTheme applies and saves the selected theme immediately
func (mw *MainWindow) setTheme(name string) {
	t, ok := models.ParseTheme(name)
	if !ok || t == mw.settings.Theme {
		return
	}
	mw.settings.Theme = t
	mw.applyTheme()
	mw.saveSettings()
	mw.schedulePreview()
}

// setDefaultPath mirrors the default path into the main view and saves it
func (mw *MainWindow) setDefaultPath(path string) {
	path = strings.TrimSpace(path)
	if path == "" {
		return
	}
	mw.settings.DefaultTargetPath = path
	mw.pathEntry.SetText(path)
	mw.saveSettings()
}

func (mw *MainWindow) confirmResetWarnings() {
	mw.confirmWithDontShow("Reset warnings?", "This will re-enable all warning pop-ups.\n\nContinue?", nil, mw.resetWarnings)
}

func (mw *MainWindow) resetWarnings() {
	mw.settings.ResetWarnings()
	mw.saveSettings()
	dialog.ShowInformation("Warnings reset", "All warnings have been re-enabled.", mw.window)
}
