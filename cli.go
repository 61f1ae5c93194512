package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/schollz/progressbar/v3"

	"folderer/folders"
	"folderer/logging"
	"folderer/models"
	"folderer/naming"
	"folderer/storage"
)

// cli runs the non-GUI commands
type cli struct {
	store    *storage.Manager
	folders  *folders.Manager
	log      *logging.Logger
	in       *bufio.Reader
	out      io.Writer
	errOut   io.Writer
	progress bool
}

func newCLI(store *storage.Manager, log *logging.Logger, in io.Reader, out, errOut io.Writer) *cli {
	return &cli{
		store:   store,
		folders: folders.NewManager(log),
		log:     log,
		in:      bufio.NewReader(in),
		out:     out,
		errOut:  errOut,
	}
}

// run dispatches a subcommand and returns the process exit code
func (c *cli) run(args []string) int {
	ctx := context.Background()

	switch args[0] {
	case "create":
		return c.runCreate(ctx, args[1:])
	case "organize":
		return c.runOrganize(ctx, args[1:])
	case "settings":
		return c.runSettings(args[1:])
	case "history":
		return c.runHistory(args[1:])
	case "console":
		return NewConsoleApp(c).Run(ctx)
	case "help", "-help", "--help", "-h":
		showUsage(c.out)
		return 0
	default:
		fmt.Fprintf(c.errOut, "Unknown command: %s\n\n", args[0])
		showUsage(c.errOut)
		return 2
	}
}

func (c *cli) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(c.errOut)
	return fs
}

func (c *cli) loadSettings() *models.Settings {
	s, err := c.store.LoadSettings()
	if err != nil {
		c.log.Warn("Settings not loaded, using defaults: %v", err)
	}
	return s
}

func (c *cli) saveSettings(s *models.Settings) {
	if err := c.store.SaveSettings(s); err != nil {
		c.log.Error("Saving settings failed: %v", err)
	}
}

// readLine reads one trimmed line; io.EOF only when nothing was read
func (c *cli) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil
	}
	return strings.TrimSpace(line), err
}

// ask prints question and reads one trimmed line
func (c *cli) ask(question string) string {
	fmt.Fprint(c.out, question)
	line, _ := c.readLine()
	return line
}

// confirm asks a yes/no question; anything but y/yes is no
func (c *cli) confirm(question string) bool {
	switch strings.ToLower(c.ask(question + " (y/N): ")) {
	case "y", "yes":
		return true
	}
	return false
}

// confirmWarning asks unless the warning is switched off. Answering
// "always" switches it off in settings.
func (c *cli) confirmWarning(question string, show *bool, s *models.Settings) bool {
	if !*show {
		return true
	}
	switch strings.ToLower(c.ask(question + " (y/N, 'always' to stop asking): ")) {
	case "y", "yes":
		return true
	case "a", "always":
		*show = false
		c.saveSettings(s)
		return true
	}
	return false
}

// newProgress returns a progress callback: a terminal bar when enabled,
// otherwise one printed line per item.
func (c *cli) newProgress(total int, desc string) folders.Progress {
	if !c.progress || total == 0 {
		return func(_, _ int, o models.Outcome) {
			fmt.Fprintln(c.out, o.LogLine())
		}
	}
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(c.errOut),
		progressbar.OptionSetDescription(desc),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
	return func(done, total int, _ models.Outcome) {
		_ = bar.Add(1)
		if done == total {
			_ = bar.Finish()
		}
	}
}

// interruptible routes Ctrl-C to the returned context for the duration of
// a bulk run only; prompts keep the default signal handling. ok is false
// when ctx is already done and nothing should run.
func (c *cli) interruptible(ctx context.Context) (context.Context, context.CancelFunc, bool) {
	if ctx.Err() != nil {
		fmt.Fprintln(c.out, "Operation cancelled.")
		return ctx, func() {}, false
	}
	runCtx, stop := signal.NotifyContext(ctx, os.Interrupt)
	return runCtx, stop, true
}

// finish journals the run, prints the summary and picks the exit code
func (c *cli) finish(report *models.Report) int {
	if err := c.store.AppendHistory(report); err != nil {
		c.log.Warn("History not written: %v", err)
	}
	if c.progress {
		for _, f := range report.Failures() {
			fmt.Fprintln(c.out, f.LogLine())
		}
	}
	fmt.Fprintln(c.out, report.Summary())
	if report.Canceled {
		fmt.Fprintln(c.out, "Canceled before all items were processed.")
		return 130
	}
	if report.Errors > 0 {
		return 1
	}
	return 0
}

// createOptions are the behaviour switches of a create run
type createOptions struct {
	mkdir  bool
	yes    bool
	dryRun bool
}

func (c *cli) runCreate(ctx context.Context, args []string) int {
	settings := c.loadSettings()
	def := models.DefaultFolderRequest(settings.DefaultTargetPath)

	fs := c.flagSet("create")
	base := fs.String("base", "", "Folder base name")
	dir := fs.String("dir", def.Target, "Create in this folder")
	count := fs.Int("count", def.Count, "Number of folders (1-9999)")
	start := fs.Int("start", def.Start, "First number (0-999999)")
	sep := fs.String("sep", def.Separator, "Separator between name and number")
	pad := fs.Int("pad", def.PadWidth, "Zero-pad width (0-10)")
	noNumber := fs.Bool("no-number", false, "Create a single folder named exactly -base")
	var opts createOptions
	fs.BoolVar(&opts.mkdir, "mkdir", false, "Create the target folder if it is missing")
	fs.BoolVar(&opts.yes, "yes", false, "Don't ask for confirmation")
	fs.BoolVar(&opts.dryRun, "dry-run", false, "Print the names without creating anything")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *base == "" && fs.NArg() > 0 {
		*base = strings.Join(fs.Args(), " ")
	}

	req := models.FolderRequest{
		Base:      *base,
		Numbered:  !*noNumber,
		Count:     *count,
		Start:     *start,
		Separator: *sep,
		PadWidth:  *pad,
		Target:    storage.CleanPath(*dir),
	}
	return c.execCreate(ctx, req, settings, opts)
}

// execCreate validates req, asks what needs asking and creates the folders
func (c *cli) execCreate(ctx context.Context, req models.FolderRequest, settings *models.Settings, opts createOptions) int {
	req.Normalize()
	if err := req.Validate(); err != nil {
		fmt.Fprintf(c.errOut, "Error: %v\n", err)
		return 2
	}

	if opts.dryRun {
		for _, name := range naming.Names(req) {
			fmt.Fprintln(c.out, name)
		}
		return 0
	}

	target, err := c.folders.EnsureTarget(req.Target, false)
	if errors.Is(err, folders.ErrTargetMissing) {
		create := opts.mkdir || opts.yes || c.confirm(fmt.Sprintf("This folder doesn't exist:\n%s\nCreate it?", target))
		if !create {
			fmt.Fprintln(c.out, "Operation cancelled.")
			return 1
		}
		target, err = c.folders.EnsureTarget(target, true)
	}
	if err != nil {
		fmt.Fprintf(c.errOut, "Error: %v\n", err)
		return 1
	}
	req.Target = target

	if req.IsMany() && !opts.yes {
		q := fmt.Sprintf("You are about to create %d folders in %s.\nContinue?", req.Count, target)
		if !c.confirmWarning(q, &settings.Warnings.CreateMany, settings) {
			fmt.Fprintln(c.out, "Operation cancelled.")
			return 1
		}
	}

	runCtx, stop, ok := c.interruptible(ctx)
	defer stop()
	if !ok {
		return 130
	}
	report, err := c.folders.CreateFolders(runCtx, req, c.newProgress(req.Count, "Creating"))
	if err != nil {
		fmt.Fprintf(c.errOut, "Error: %v\n", err)
		return 1
	}
	return c.finish(report)
}

func (c *cli) runOrganize(ctx context.Context, args []string) int {
	settings := c.loadSettings()

	fs := c.flagSet("organize")
	dir := fs.String("dir", settings.DefaultTargetPath, "Folder whose files are organized")
	yes := fs.Bool("yes", false, "Don't ask for confirmation")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() > 0 {
		*dir = fs.Arg(0)
	}
	return c.execOrganize(ctx, storage.CleanPath(*dir), settings, *yes)
}

// execOrganize moves each file of dir into its own folder
func (c *cli) execOrganize(ctx context.Context, dir string, settings *models.Settings, yes bool) int {
	target, err := c.folders.EnsureTarget(dir, false)
	if err != nil {
		fmt.Fprintf(c.errOut, "Error: %v\n", err)
		return 1
	}

	if !yes {
		q := fmt.Sprintf("This will move every file in\n%s\ninto its own folder named after the file (without extension).\nContinue?", target)
		if !c.confirmWarning(q, &settings.Warnings.FolderFilesConfirm, settings) {
			fmt.Fprintln(c.out, "Operation cancelled.")
			return 1
		}
	}

	files, err := folders.ListFiles(target)
	if err != nil {
		fmt.Fprintf(c.errOut, "Error: %v\n", err)
		return 1
	}
	runCtx, stop, ok := c.interruptible(ctx)
	defer stop()
	if !ok {
		return 130
	}
	report, err := c.folders.OrganizeFiles(runCtx, target, c.newProgress(len(files), "Moving"))
	if err != nil {
		fmt.Fprintf(c.errOut, "Error: %v\n", err)
		return 1
	}
	return c.finish(report)
}

func (c *cli) runSettings(args []string) int {
	settings := c.loadSettings()

	fs := c.flagSet("settings")
	themeName := fs.String("theme", "", "Theme: Light, Dark or Forest")
	defaultPath := fs.String("default-path", "", "Default \"Create in\" folder")
	reset := fs.Bool("reset-warnings", false, "Re-enable all confirmation prompts")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	changed := false
	if *themeName != "" {
		t, ok := models.ParseTheme(*themeName)
		if !ok {
			fmt.Fprintf(c.errOut, "Error: unknown theme %q (use Light, Dark or Forest)\n", *themeName)
			return 2
		}
		settings.Theme = t
		changed = true
	}
	if p := storage.CleanPath(*defaultPath); p != "" {
		abs, err := folders.ResolvePath(p)
		if err != nil {
			fmt.Fprintf(c.errOut, "Error: %v\n", err)
			return 2
		}
		settings.DefaultTargetPath = abs
		changed = true
	}
	if *reset {
		settings.ResetWarnings()
		changed = true
	}
	if changed {
		if err := c.store.SaveSettings(settings); err != nil {
			fmt.Fprintf(c.errOut, "Error: %v\n", err)
			return 1
		}
	}

	c.printSettings(settings)
	return 0
}

func (c *cli) printSettings(s *models.Settings) {
	onOff := func(b bool) string {
		if b {
			return "on"
		}
		return "off"
	}
	fmt.Fprintf(c.out, "Theme:                      %s\n", s.Theme)
	fmt.Fprintf(c.out, "Default \"Create in\" folder: %s\n", s.DefaultTargetPath)
	fmt.Fprintf(c.out, "Confirm before Folder Files: %s\n", onOff(s.Warnings.FolderFilesConfirm))
	fmt.Fprintf(c.out, "Confirm creating many:      %s\n", onOff(s.Warnings.CreateMany))
	fmt.Fprintf(c.out, "Settings file:              %s\n", c.store.SettingsPath())
}

func (c *cli) runHistory(args []string) int {
	fs := c.flagSet("history")
	n := fs.Int("n", 10, "Number of runs to show (0 = all)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	runs, err := c.store.LoadHistory(*n)
	if err != nil {
		fmt.Fprintf(c.errOut, "Error: %v\n", err)
		return 1
	}
	if len(runs) == 0 {
		fmt.Fprintln(c.out, "No runs recorded yet.")
		return 0
	}
	for _, r := range runs {
		counts := fmt.Sprintf("created=%d skipped=%d", r.Created, r.Skipped)
		if r.Action == models.ActionOrganize {
			counts = fmt.Sprintf("moved=%d", r.Moved)
		}
		fmt.Fprintf(c.out, "%s  %-8s  %s errors=%d  %s  (%s)\n",
			r.Started.Format("2006-01-02 15:04:05"), r.Action, counts, r.Errors, r.Target, r.ID)
		for _, f := range r.Items {
			fmt.Fprintf(c.out, "    %s\n", f.LogLine())
		}
	}
	return 0
}
