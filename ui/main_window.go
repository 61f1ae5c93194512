package ui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"folderer/folders"
	"folderer/logging"
	"folderer/models"
	"folderer/naming"
	"folderer/shell"
	"folderer/storage"
)

// AppVersion is shown in the settings view and by -version
const AppVersion = "v1.0.0"

const previewDelay = 60 * time.Millisecond

// MainWindow represents the main application window
type MainWindow struct {
	app      fyne.App
	window   fyne.Window
	storage  *storage.Manager
	folders  *folders.Manager
	log      *logging.Logger
	settings *models.Settings

	// native file dialogs are skipped under the test driver
	nativeDialogs bool

	baseEntry     *widget.Entry
	pathEntry     *widget.Entry
	numberedCheck *widget.Check
	countEntry    *numericEntry
	startEntry    *numericEntry
	sepEntry      *widget.Entry
	padEntry      *numericEntry
	previewLabel  *widget.Label
	logLabel      *widget.Label
	logScroll     *container.Scroll
	badge         *StatusBadge

	createBtn   *widget.Button
	openBtn     *widget.Button
	organizeBtn *widget.Button
	clearBtn    *widget.Button

	themeRadio       *widget.RadioGroup
	defaultPathEntry *widget.Entry

	mainView     fyne.CanvasObject
	settingsView fyne.CanvasObject

	logMu        sync.Mutex
	logLines     []string
	previewMu    sync.Mutex
	previewTimer *time.Timer
	lastDialog   dialog.Dialog
	ready        bool
}

// NewMainWindow creates a new main window
func NewMainWindow(log *logging.Logger) *MainWindow {
	a := app.NewWithID("io.github.folderer")
	mw := newMainWindow(a, storage.NewManager(), log)
	mw.nativeDialogs = true
	return mw
}

func newMainWindow(a fyne.App, store *storage.Manager, log *logging.Logger) *MainWindow {
	if log == nil {
		log = logging.Discard()
	}
	window := a.NewWindow("Folderer")
	window.Resize(fyne.NewSize(760, 520))

	mw := &MainWindow{
		app:     a,
		window:  window,
		storage: store,
		folders: folders.NewManager(log),
		log:     log,
	}

	mw.loadData()
	mw.setupUI()
	log.AddSink(func(level, text string) {
		if level == "DEBUG" {
			return
		}
		mw.appendLog(text)
	})

	a.SetIcon(mw.appIcon())
	mw.applyTheme()
	mw.toggleNumbering()
	mw.updatePreview()
	mw.ready = true
	return mw
}

// ShowAndRun shows the window and runs the application
func (mw *MainWindow) ShowAndRun() {
	mw.window.ShowAndRun()
}

// loadData loads settings from storage
func (mw *MainWindow) loadData() {
	settings, err := mw.storage.LoadSettings()
	if err != nil {
		mw.log.Warn("Settings not loaded, using defaults: %v", err)
	}
	mw.settings = settings
}

// saveSettings saves the settings to storage
func (mw *MainWindow) saveSettings() {
	if err := mw.storage.SaveSettings(mw.settings); err != nil {
		mw.log.Error("Saving settings failed: %v", err)
		dialog.ShowError(err, mw.window)
	}
}

// setupUI builds both views and shows the main one
func (mw *MainWindow) setupUI() {
	mw.mainView = mw.buildMainView()
	mw.settingsView = mw.buildSettingsView()
	mw.window.SetContent(mw.mainView)
}

func (mw *MainWindow) buildMainView() fyne.CanvasObject {
	def := models.DefaultFolderRequest(mw.settings.DefaultTargetPath)

	title := widget.NewLabelWithStyle("Folderer", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	gearBtn := widget.NewButtonWithIcon("", theme.SettingsIcon(), mw.showSettings)
	header := container.NewBorder(nil, nil, nil, gearBtn, title)

	mw.baseEntry = widget.NewEntry()
	mw.baseEntry.SetText(def.Base)

	mw.pathEntry = widget.NewEntry()
	mw.pathEntry.SetText(def.Target)
	browseBtn := widget.NewButton("Browse...", func() {
		mw.pickFolder("Choose a folder", mw.pathEntry.Text, mw.pathEntry.SetText)
	})

	mw.numberedCheck = widget.NewCheck("Number folders (Name 1, Name 2, ...)", nil)
	mw.numberedCheck.SetChecked(def.Numbered)

	mw.countEntry = newNumericEntry()
	mw.countEntry.SetText(strconv.Itoa(def.Count))
	mw.startEntry = newNumericEntry()
	mw.startEntry.SetText(strconv.Itoa(def.Start))
	mw.sepEntry = widget.NewEntry()
	mw.sepEntry.SetText(def.Separator)
	mw.padEntry = newNumericEntry()
	mw.padEntry.SetText(strconv.Itoa(def.PadWidth))

	form := widget.NewForm(
		widget.NewFormItem("Folder base name:", mw.baseEntry),
		widget.NewFormItem("Create in:", container.NewBorder(nil, nil, nil, browseBtn, mw.pathEntry)),
	)

	opts := container.NewGridWithColumns(8,
		widget.NewLabel("Count:"), mw.countEntry,
		widget.NewLabel("Start #:"), mw.startEntry,
		widget.NewLabel("Separator:"), mw.sepEntry,
		widget.NewLabel("Zero pad:"), mw.padEntry,
	)

	mw.previewLabel = widget.NewLabel("")
	mw.previewLabel.Wrapping = fyne.TextWrapWord
	preview := container.NewBorder(nil, nil, widget.NewLabel("Preview:"), nil, mw.previewLabel)

	mw.createBtn = widget.NewButtonWithIcon("Create Folders", theme.FolderNewIcon(), mw.createFolders)
	mw.createBtn.Importance = widget.HighImportance
	mw.openBtn = widget.NewButtonWithIcon("Open Target Folder", theme.FolderOpenIcon(), mw.openTarget)
	mw.organizeBtn = widget.NewButton("Folder Files", mw.organizeFiles)
	mw.clearBtn = widget.NewButton("Clear Log", mw.clearLog)
	mw.badge = NewStatusBadge()
	buttons := container.NewBorder(nil, nil,
		container.NewHBox(mw.createBtn, mw.openBtn, mw.organizeBtn),
		container.NewHBox(mw.badge, mw.clearBtn),
	)

	mw.logLabel = widget.NewLabel("")
	mw.logLabel.Wrapping = fyne.TextWrapWord
	mw.logScroll = container.NewVScroll(mw.logLabel)
	mw.logScroll.SetMinSize(fyne.NewSize(0, 160))

	tip := widget.NewLabel("Tip: If numbering is OFF, only 1 folder can be created (duplicates aren't possible).")

	top := container.NewVBox(
		header,
		form,
		mw.numberedCheck,
		opts,
		preview,
		buttons,
		widget.NewLabel("Log:"),
	)

	mw.wireEvents()
	content := container.NewPadded(container.NewBorder(top, tip, nil, nil, mw.logScroll))
	// the number of preview samples depends on the window width
	return container.New(&widthLayout{onChange: func(float32) { mw.schedulePreview() }}, content)
}

// wireEvents re-renders the preview whenever an input changes
func (mw *MainWindow) wireEvents() {
	changed := func(string) { mw.schedulePreview() }
	mw.baseEntry.OnChanged = changed
	mw.pathEntry.OnChanged = changed
	mw.countEntry.OnChanged = changed
	mw.startEntry.OnChanged = changed
	mw.sepEntry.OnChanged = changed
	mw.padEntry.OnChanged = changed
	mw.numberedCheck.OnChanged = func(bool) {
		mw.toggleNumbering()
		mw.schedulePreview()
	}
}

// currentRequest reads the form into a normalized request
func (mw *MainWindow) currentRequest() models.FolderRequest {
	req := models.FolderRequest{
		Base:      mw.baseEntry.Text,
		Numbered:  mw.numberedCheck.Checked,
		Count:     naming.ParseInt(mw.countEntry.Text, 1),
		Start:     naming.ParseInt(mw.startEntry.Text, 1),
		Separator: mw.sepEntry.Text,
		PadWidth:  naming.ParseInt(mw.padEntry.Text, 0),
		Target:    mw.pathEntry.Text,
	}
	req.Normalize()
	return req
}

// toggleNumbering enables the numeric fields only while numbering is on
func (mw *MainWindow) toggleNumbering() {
	on := mw.numberedCheck.Checked
	for _, w := range []fyne.Disableable{mw.countEntry, mw.startEntry, mw.sepEntry, mw.padEntry} {
		if on {
			w.Enable()
		} else {
			w.Disable()
		}
	}
	if !on && mw.countEntry.Text != "1" {
		mw.countEntry.SetText("1")
	}
}

// schedulePreview debounces preview updates while the user types
func (mw *MainWindow) schedulePreview() {
	if !mw.ready {
		return
	}
	mw.previewMu.Lock()
	defer mw.previewMu.Unlock()
	if mw.previewTimer != nil {
		mw.previewTimer.Stop()
	}
	mw.previewTimer = time.AfterFunc(previewDelay, mw.updatePreview)
}

func (mw *MainWindow) updatePreview() {
	defer func() {
		if r := recover(); r != nil {
			mw.previewLabel.SetText("(preview unavailable)")
		}
	}()
	n := naming.PreviewSamples(mw.window.Canvas().Size().Width)
	mw.previewLabel.SetText(naming.Preview(mw.currentRequest(), n))
}

// appendLog adds one line to the log pane
func (mw *MainWindow) appendLog(line string) {
	mw.logMu.Lock()
	mw.logLines = append(mw.logLines, line)
	text := strings.Join(mw.logLines, "\n")
	mw.logMu.Unlock()

	mw.logLabel.SetText(text)
	mw.logScroll.ScrollToBottom()
}

func (mw *MainWindow) clearLog() {
	mw.logMu.Lock()
	mw.logLines = nil
	mw.logMu.Unlock()
	mw.logLabel.SetText("")
}

// LogText returns the current contents of the log pane
func (mw *MainWindow) LogText() string {
	mw.logMu.Lock()
	defer mw.logMu.Unlock()
	return strings.Join(mw.logLines, "\n")
}

// createFolders validates the form, confirms when needed and creates the folders
func (mw *MainWindow) createFolders() {
	req := mw.currentRequest()
	if req.Base == "" {
		dialog.ShowError(models.ErrEmptyBase, mw.window)
		return
	}
	target, err := folders.ResolvePath(req.Target)
	if err != nil {
		dialog.ShowError(folders.ErrBadPath, mw.window)
		return
	}
	req.Target = target

	proceed := func() {
		if !req.IsMany() {
			mw.runCreate(req)
			return
		}
		msg := fmt.Sprintf("You are about to create %d folders.\nThis can take a moment and is harder to undo.\n\nTarget:\n%s\n\nContinue?", req.Count, target)
		mw.confirmWithDontShow("Create many folders?", msg, &mw.settings.Warnings.CreateMany, func() {
			mw.runCreate(req)
		})
	}

	if folders.TargetExists(target) {
		proceed()
		return
	}
	d := dialog.NewConfirm("Create path?", fmt.Sprintf("This folder doesn't exist:\n%s\n\nCreate it?", target), func(ok bool) {
		if !ok {
			return
		}
		if _, err := mw.folders.EnsureTarget(target, true); err != nil {
			dialog.ShowError(fmt.Errorf("error creating path: %w", err), mw.window)
			return
		}
		proceed()
	}, mw.window)
	mw.lastDialog = d
	d.Show()
}

func (mw *MainWindow) runCreate(req models.FolderRequest) {
	report, err := mw.folders.CreateFolders(context.Background(), req, mw.logProgress)
	if err != nil {
		dialog.ShowError(err, mw.window)
		return
	}
	mw.finishRun(report)
}

// organizeFiles moves each loose file of the target into its own folder
func (mw *MainWindow) organizeFiles() {
	target, err := folders.ResolvePath(mw.pathEntry.Text)
	if err != nil {
		dialog.ShowError(folders.ErrBadPath, mw.window)
		return
	}
	if !folders.TargetExists(target) {
		dialog.ShowError(fmt.Errorf("this path doesn't exist:\n%s", target), mw.window)
		return
	}

	msg := "This will move every file in the selected folder into its own\n" +
		"folder named after the file (without extension).\n\n" +
		"Target:\n" + target + "\n\nContinue?"
	mw.confirmWithDontShow("Folder files?", msg, &mw.settings.Warnings.FolderFilesConfirm, func() {
		report, err := mw.folders.OrganizeFiles(context.Background(), target, mw.logProgress)
		if err != nil {
			dialog.ShowError(err, mw.window)
			return
		}
		mw.finishRun(report)
	})
}

// logProgress writes each processed item to the log pane
func (mw *MainWindow) logProgress(_, _ int, o models.Outcome) {
	mw.appendLog(o.LogLine())
}

// finishRun records the run and reports the counts
func (mw *MainWindow) finishRun(report *models.Report) {
	if err := mw.storage.AppendHistory(report); err != nil {
		mw.log.Warn("History not written: %v", err)
	}
	mw.badge.SetReport(report)
	dialog.ShowInformation("Done", report.Summary(), mw.window)
}

func (mw *MainWindow) openTarget() {
	target, err := folders.ResolvePath(mw.pathEntry.Text)
	if err != nil {
		dialog.ShowError(folders.ErrBadPath, mw.window)
		return
	}
	if err := shell.OpenFolder(target); err != nil {
		dialog.ShowError(err, mw.window)
	}
}

// applyTheme switches the fyne theme to the one in settings
func (mw *MainWindow) applyTheme() {
	mw.app.Settings().SetTheme(NewTheme(mw.settings.Theme))
}
