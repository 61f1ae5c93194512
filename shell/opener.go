package shell

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
)

// OpenFolder shows path in the platform file manager
func OpenFolder(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("this path doesn't exist: %s", path)
		}
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("not a folder: %s", path)
	}

	name, args := openCommand(runtime.GOOS, path)
	if _, err := exec.LookPath(name); err != nil {
		return fmt.Errorf("no file manager launcher found (%s)", name)
	}
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	// Don't leave a zombie behind; the launcher exits on its own.
	go cmd.Wait()
	return nil
}

// openCommand picks the launcher for goos
func openCommand(goos, path string) (string, []string) {
	switch goos {
	case "windows":
		return "explorer", []string{path}
	case "darwin":
		return "open", []string{path}
	default:
		return "xdg-open", []string{path}
	}
}
