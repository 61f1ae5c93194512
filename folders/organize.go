package folders

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"syscall"

	"github.com/otiai10/copy"

	"folderer/models"
)

// ListFiles returns the names of the regular files directly inside dir,
// sorted. Symlinks that resolve to a regular file are included; directories
// and links to directories are left alone.
func ListFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		switch {
		case e.Type().IsRegular():
		case e.Type()&os.ModeSymlink != 0:
			info, err := os.Stat(filepath.Join(dir, e.Name()))
			if err != nil || !info.Mode().IsRegular() {
				continue
			}
		default:
			continue
		}
		files = append(files, e.Name())
	}
	sort.Strings(files)
	return files, nil
}

// Stem returns a file name without its final extension. Dotfiles such as
// ".env" keep their full name.
func Stem(name string) string {
	ext := filepath.Ext(name)
	if ext == name {
		return name
	}
	return strings.TrimSuffix(name, ext)
}

// UniqueDestPath returns dest when nothing exists there, otherwise the first
// free "stem (n).ext" variant in the same directory, n = 1, 2, ...
// Any error other than not-exist while probing a candidate is returned.
func UniqueDestPath(dest string) (string, error) {
	free, err := pathFree(dest)
	if err != nil || free {
		return dest, err
	}
	dir := filepath.Dir(dest)
	name := filepath.Base(dest)
	stem := Stem(name)
	ext := strings.TrimPrefix(name, stem)

	for i := 1; ; i++ {
		cand := filepath.Join(dir, fmt.Sprintf("%s (%d)%s", stem, i, ext))
		free, err := pathFree(cand)
		if err != nil {
			return "", err
		}
		if free {
			return cand, nil
		}
	}
}

func pathFree(p string) (bool, error) {
	_, err := os.Lstat(p)
	switch {
	case err == nil:
		return false, nil
	case os.IsNotExist(err):
		return true, nil
	default:
		return false, err
	}
}

// OrganizeFiles moves every regular file directly inside dir into a folder
// named after the file without its extension, creating the folder when
// needed. Name clashes inside that folder get a "(n)" disambiguator. Per-file
// errors are recorded and the run continues.
func (m *Manager) OrganizeFiles(ctx context.Context, dir string, progress Progress) (*models.Report, error) {
	target, err := m.EnsureTarget(dir, false)
	if err != nil {
		return nil, err
	}
	files, err := ListFiles(target)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", target, err)
	}

	report := models.NewReport(models.ActionOrganize, target)
	m.log.Debug("run %s: organizing %d file(s) in %s", report.ID, len(files), target)

	for i, name := range files {
		if ctx.Err() != nil {
			report.Canceled = true
			break
		}
		o := m.organizeOne(target, name)
		report.Add(o)
		m.logOutcome(o)
		if progress != nil {
			progress(i+1, len(files), o)
		}
	}

	report.Finish()
	m.logSummary(report)
	return report, nil
}

func (m *Manager) organizeOne(target, name string) models.Outcome {
	src := filepath.Join(target, name)
	folderName := Stem(name)
	folder := filepath.Join(target, folderName)
	o := models.Outcome{Name: name, Source: src}

	if err := os.Mkdir(folder, 0755); err != nil && !errors.Is(err, os.ErrExist) {
		o.Status = models.StatusError
		o.Err = err.Error()
		return o
	}
	if info, err := os.Stat(folder); err != nil || !info.IsDir() {
		o.Status = models.StatusError
		o.Err = fmt.Sprintf("%s exists and is not a folder", folderName)
		return o
	}

	dest, err := UniqueDestPath(filepath.Join(folder, name))
	if err != nil {
		o.Status = models.StatusError
		o.Err = err.Error()
		return o
	}
	if err := MoveFile(src, dest); err != nil {
		o.Status = models.StatusError
		o.Err = err.Error()
		return o
	}
	o.Status = models.StatusMoved
	o.Dest = filepath.Join(folderName, filepath.Base(dest))
	return o
}

// MoveFile renames src to dst, falling back to copy and remove when the two
// live on different devices.
func MoveFile(src, dst string) error {
	err := os.Rename(src, dst)
	if err == nil {
		return nil
	}
	if !errors.Is(err, syscall.EXDEV) {
		return err
	}
	if err := copy.Copy(src, dst, copy.Options{PreserveTimes: true}); err != nil {
		os.Remove(dst)
		return fmt.Errorf("copy across devices: %w", err)
	}
	return os.Remove(src)
}
