package config

import (
	"os"
	"path/filepath"

	"github.com/unkn0wn-root/rfkit/internal/errdef"
)

var workspaceMarkers = []string{".git", "rfkit.toml", "rfkit.yaml", "rfkit.yml"}

// FindWorkspace returns the nearest ancestor of start holding a workspace
// marker, or start itself when none is found. A file start is replaced by
// its directory.
func FindWorkspace(start string) (string, error) {
	if start == "" {
		start = "."
	}
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", errdef.Wrap(errdef.CodeWorkspace, err, "resolve %s", start)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", errdef.Wrap(errdef.CodeWorkspace, err, "no workspace at %s", start)
	}
	if !info.IsDir() {
		abs = filepath.Dir(abs)
	}

	for dir := abs; ; {
		for _, m := range workspaceMarkers {
			if _, err := os.Stat(filepath.Join(dir, m)); err == nil {
				return dir, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return abs, nil
}

// CheckWorkspace fails unless root is an existing directory.
func CheckWorkspace(root string) (string, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", errdef.Wrap(errdef.CodeWorkspace, err, "resolve %s", root)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", errdef.Wrap(errdef.CodeWorkspace, err, "no workspace at %s", root)
	}
	if !info.IsDir() {
		return "", errdef.New(errdef.CodeWorkspace, "workspace %s is not a directory", root)
	}
	return abs, nil
}
