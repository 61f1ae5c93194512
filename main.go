package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"folderer/logging"
	"folderer/storage"
	"folderer/ui"
)

// globalOptions are the flags accepted before a subcommand
type globalOptions struct {
	logFile string
	verbose bool
	version bool
}

func main() {
	opts, rest, err := parseGlobal(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		os.Exit(2)
	}
	if opts.version {
		fmt.Println("folderer " + ui.AppVersion)
		return
	}

	log, err := logging.New(logging.Options{
		Verbose: opts.verbose,
		LogFile: opts.logFile,
		Color:   true,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Normal GUI mode
	if len(rest) == 0 {
		log.Info("Starting Folderer %s...", ui.AppVersion)
		ui.NewMainWindow(log).ShowAndRun()
		log.Close()
		return
	}

	c := newCLI(storage.NewManager(), log, os.Stdin, os.Stdout, os.Stderr)
	c.progress = isTerminal(os.Stderr) && !opts.verbose
	code := c.run(rest)
	log.Close()
	os.Exit(code)
}

// parseGlobal reads the global flags and returns the remaining arguments
func parseGlobal(args []string, stderr io.Writer) (globalOptions, []string, error) {
	var opts globalOptions
	fs := flag.NewFlagSet("folderer", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { showUsage(stderr) }
	fs.StringVar(&opts.logFile, "log", "", "Also write log lines to this file")
	fs.BoolVar(&opts.verbose, "verbose", false, "Log every item and debug details")
	fs.BoolVar(&opts.version, "version", false, "Print the version and exit")
	if err := fs.Parse(args); err != nil {
		return opts, nil, err
	}
	return opts, fs.Args(), nil
}

func isTerminal(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}

// showUsage displays command-line usage information
func showUsage(w io.Writer) {
	fmt.Fprint(w, `Folderer - Command Line Usage
=============================

GUI Mode (default):
  folderer

Commands:
  create    Create numbered folders
              -base NAME -dir PATH -count N -start N -sep S -pad W
              -no-number -mkdir -dry-run -yes
  organize  Move every file in a folder into its own subfolder
              -dir PATH -yes
  settings  Show or change saved settings
              -theme Light|Dark|Forest -default-path PATH -reset-warnings
  history   Show recent runs
              -n N
  console   Interactive menu
  help      Show this help message

Global options (before the command):
  -log FILE   Also write log lines to FILE
  -verbose    Log every item
  -version    Print the version

Examples:
  folderer create -base "Shot" -count 12 -pad 2 -dir ~/projects/film
  folderer organize -dir ~/Downloads
  folderer settings -theme Dark
`)
}
