// Package folders performs the filesystem side of folderer: bulk folder
// creation and moving loose files into per-file folders. Both operations are
// non-transactional; a failure on one item is recorded and the run continues.
package folders

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"folderer/logging"
	"folderer/models"
	"folderer/naming"
)

var (
	ErrTargetMissing = errors.New("target path doesn't exist")
	ErrNotDirectory  = errors.New("target path is not a directory")
	ErrBadPath       = errors.New("that path doesn't look valid")
)

// Progress is called after each item with the number processed so far
type Progress func(done, total int, o models.Outcome)

// Manager handles folder operations
type Manager struct {
	log *logging.Logger
}

// NewManager creates a new folder manager. A nil logger discards output.
func NewManager(log *logging.Logger) *Manager {
	if log == nil {
		log = logging.Discard()
	}
	return &Manager{log: log}
}

// ResolvePath expands a leading ~ and returns an absolute, cleaned path
func ResolvePath(path string) (string, error) {
	path = strings.Trim(strings.TrimSpace(path), `"'`)
	if path == "" {
		return "", ErrBadPath
	}
	if path == "~" || strings.HasPrefix(path, "~/") || strings.HasPrefix(path, `~\`) {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrBadPath, err)
		}
		path = filepath.Join(home, path[1:])
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrBadPath, err)
	}
	return abs, nil
}

// EnsureTarget resolves path and checks it is a directory. When it does not
// exist and create is true it is created together with its parents.
func (m *Manager) EnsureTarget(path string, create bool) (string, error) {
	abs, err := ResolvePath(path)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(abs)
	switch {
	case err == nil:
		if !info.IsDir() {
			return abs, fmt.Errorf("%w: %s", ErrNotDirectory, abs)
		}
		return abs, nil
	case os.IsNotExist(err):
		if !create {
			return abs, fmt.Errorf("%w: %s", ErrTargetMissing, abs)
		}
		if err := os.MkdirAll(abs, 0755); err != nil {
			return abs, fmt.Errorf("create target path: %w", err)
		}
		m.log.Info("Created target path: %s", abs)
		return abs, nil
	default:
		return abs, err
	}
}

// TargetExists reports whether path resolves to an existing directory
func TargetExists(path string) bool {
	abs, err := ResolvePath(path)
	if err != nil {
		return false
	}
	info, err := os.Stat(abs)
	return err == nil && info.IsDir()
}

// CreateFolders makes one directory per generated name under req.Target.
// Existing directories are skipped, never merged. Other errors are recorded
// per item. The request is normalized and validated first; a validation or
// target error returns before anything is created. req.Target must already
// exist (see EnsureTarget).
func (m *Manager) CreateFolders(ctx context.Context, req models.FolderRequest, progress Progress) (*models.Report, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}
	target, err := m.EnsureTarget(req.Target, false)
	if err != nil {
		return nil, err
	}

	names := naming.Names(req)
	report := models.NewReport(models.ActionCreate, target)
	m.log.Debug("run %s: creating %d folder(s) in %s", report.ID, len(names), target)

	for i, name := range names {
		if ctx.Err() != nil {
			report.Canceled = true
			break
		}
		o := m.createOne(target, name)
		report.Add(o)
		m.logOutcome(o)
		if progress != nil {
			progress(i+1, len(names), o)
		}
	}

	report.Finish()
	m.logSummary(report)
	return report, nil
}

func (m *Manager) createOne(target, name string) models.Outcome {
	p := filepath.Join(target, name)
	o := models.Outcome{Name: name, Dest: p}

	if err := validName(name); err != nil {
		o.Status = models.StatusError
		o.Err = err.Error()
		return o
	}

	err := os.Mkdir(p, 0755)
	switch {
	case err == nil:
		o.Status = models.StatusCreated
	case errors.Is(err, os.ErrExist):
		o.Status = models.StatusSkipped
	default:
		o.Status = models.StatusError
		o.Err = err.Error()
	}
	return o
}

// validName rejects names that would escape the target directory
func validName(name string) error {
	if name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("invalid folder name %q", name)
	}
	return nil
}

// logOutcome records an item at debug level; callers that want every line
// (the log pane, the CLI without a progress bar) use the Progress callback.
func (m *Manager) logOutcome(o models.Outcome) {
	m.log.Debug("%s", o.LogLine())
}

// logSummary reports a finished run
func (m *Manager) logSummary(r *models.Report) {
	took := r.Finished.Sub(r.Started).Round(time.Millisecond)
	switch {
	case r.Canceled:
		m.log.Warn("%s canceled after %d item(s) in %s", r.Action, len(r.Items), r.Target)
	case r.Errors > 0:
		m.log.Warn("%s finished with %d error(s) in %s (%s)", r.Action, r.Errors, r.Target, took)
	default:
		m.log.Info("%s finished in %s (%s)", r.Action, r.Target, took)
	}
}
