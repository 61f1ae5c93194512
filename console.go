package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"folderer/folders"
	"folderer/models"
	"folderer/naming"
	"folderer/storage"
)

// ConsoleApp is the interactive menu mode
type ConsoleApp struct {
	cli      *cli
	settings *models.Settings
}

// NewConsoleApp creates a console application on top of c
func NewConsoleApp(c *cli) *ConsoleApp {
	return &ConsoleApp{cli: c}
}

// Run shows the menu until the user exits or input ends
func (app *ConsoleApp) Run(ctx context.Context) int {
	app.settings = app.cli.loadSettings()

	for {
		app.showMenu()
		input, err := app.cli.readLine()
		if err == io.EOF {
			fmt.Fprintln(app.cli.out)
			return 0
		}
		choice, err := strconv.Atoi(input)
		if err != nil {
			choice = 0
		}
		if choice == 5 {
			fmt.Fprintln(app.cli.out, "Goodbye!")
			return 0
		}
		app.handleChoice(ctx, choice)
	}
}

// showMenu displays the main menu
func (app *ConsoleApp) showMenu() {
	out := app.cli.out
	fmt.Fprintln(out, "\n=== Folderer Console ===")
	fmt.Fprintf(out, "Target: %s\n", app.settings.DefaultTargetPath)
	fmt.Fprintln(out, "1. Create Folders")
	fmt.Fprintln(out, "2. Folder Files")
	fmt.Fprintln(out, "3. Settings")
	fmt.Fprintln(out, "4. History")
	fmt.Fprintln(out, "5. Exit")
	fmt.Fprint(out, "Choose an option: ")
}

// handleChoice processes the user's menu choice
func (app *ConsoleApp) handleChoice(ctx context.Context, choice int) {
	switch choice {
	case 1:
		app.createFolders(ctx)
	case 2:
		app.organizeFiles(ctx)
	case 3:
		app.editSettings()
	case 4:
		app.cli.runHistory(nil)
	default:
		fmt.Fprintln(app.cli.out, "Invalid choice. Please try again.")
	}
}

// createFolders asks for every request field, offering the defaults
func (app *ConsoleApp) createFolders(ctx context.Context) {
	c := app.cli
	req := models.DefaultFolderRequest(app.settings.DefaultTargetPath)

	req.Base = c.ask(fmt.Sprintf("Folder base name [%s]: ", req.Base))
	if req.Base == "" {
		req.Base = models.DefaultFolderRequest("").Base
	}
	if dir := storage.CleanPath(c.ask(fmt.Sprintf("Create in [%s]: ", req.Target))); dir != "" {
		req.Target = dir
	}
	switch strings.ToLower(c.ask("Numbered? (Y/n): ")) {
	case "n", "no":
		req.Numbered = false
	}
	if req.Numbered {
		req.Count = naming.ParseInt(c.ask(fmt.Sprintf("Count [%d]: ", req.Count)), req.Count)
		req.Start = naming.ParseInt(c.ask(fmt.Sprintf("Start at [%d]: ", req.Start)), req.Start)
		switch sep := c.ask(fmt.Sprintf("Separator [%q, 'none' for no separator]: ", req.Separator)); strings.ToLower(sep) {
		case "":
		case "none":
			req.Separator = ""
		default:
			req.Separator = sep
		}
		req.PadWidth = naming.ParseInt(c.ask(fmt.Sprintf("Zero-pad [%d]: ", req.PadWidth)), req.PadWidth)
	}

	req.Normalize()
	fmt.Fprintf(c.out, "Preview: %s\n", naming.Preview(req, 5))
	c.execCreate(ctx, req, app.settings, createOptions{})
}

// organizeFiles runs Folder Files on a chosen directory
func (app *ConsoleApp) organizeFiles(ctx context.Context) {
	c := app.cli
	dir := storage.CleanPath(c.ask(fmt.Sprintf("Folder to organize [%s]: ", app.settings.DefaultTargetPath)))
	if dir == "" {
		dir = app.settings.DefaultTargetPath
	}
	c.execOrganize(ctx, dir, app.settings, false)
}

// editSettings changes the theme and default path and optionally resets warnings
func (app *ConsoleApp) editSettings() {
	c := app.cli
	s := app.settings
	c.printSettings(s)

	if name := c.ask(fmt.Sprintf("Theme (Light/Dark/Forest) [%s]: ", s.Theme)); name != "" {
		t, ok := models.ParseTheme(name)
		if !ok {
			fmt.Fprintf(c.out, "Unknown theme %q, keeping %s.\n", name, s.Theme)
		} else {
			s.Theme = t
		}
	}
	if dir := storage.CleanPath(c.ask("Default \"Create in\" folder (press Enter to keep current): ")); dir != "" {
		abs, err := folders.ResolvePath(dir)
		if err != nil {
			fmt.Fprintf(c.out, "Error: %v\n", err)
		} else {
			s.DefaultTargetPath = abs
		}
	}
	if c.confirm("Re-enable all confirmation prompts?") {
		s.ResetWarnings()
	}

	c.saveSettings(s)
	fmt.Fprintln(c.out, "Settings saved.")
}
