package filesvc

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/unkn0wn-root/rfkit/internal/errdef"
	"github.com/unkn0wn-root/rfkit/internal/imports"
)

// DefaultExclude names dependency manager and tool directories that never
// hold workspace imports.
var DefaultExclude = []string{
	"node_modules",
	".venv",
	"venv",
	"env",
	".tox",
	"__pycache__",
	"site-packages",
	".git",
}

type FileEntry struct {
	Name  string // path relative to the scan root
	Path  string
	Class imports.Class
	Size  int64
}

type Options struct {
	// Exclude adds directory names to DefaultExclude.
	Exclude []string
	// Shallow lists only the root directory.
	Shallow bool
	// OnError receives unreadable subdirectories; they are skipped.
	OnError func(path string, err error)
}

// ListFiles returns .py and .resource files under root, skipping hidden
// and excluded directories. Symlinked directories are not followed.
func ListFiles(root string, opts Options) ([]FileEntry, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, errdef.Wrap(errdef.CodeScan, err, "scan %s", root)
	}
	if !info.IsDir() {
		return nil, errdef.New(errdef.CodeScan, "scan %s: not a directory", root)
	}

	skip := make(map[string]struct{}, len(DefaultExclude)+len(opts.Exclude))
	for _, name := range DefaultExclude {
		skip[name] = struct{}{}
	}
	for _, name := range opts.Exclude {
		if name = strings.TrimSpace(name); name != "" {
			skip[name] = struct{}{}
		}
	}

	var entries []FileEntry
	appendEntry := func(path string, d fs.DirEntry) {
		class, ok := imports.ClassOf(d.Name())
		if !ok {
			return
		}
		rel := d.Name()
		if r, relErr := filepath.Rel(root, path); relErr == nil {
			rel = r
		}
		var size int64
		if fi, infoErr := d.Info(); infoErr == nil {
			size = fi.Size()
		}
		entries = append(entries, FileEntry{Name: rel, Path: path, Class: class, Size: size})
	}

	if opts.Shallow {
		dirEntries, err := os.ReadDir(root)
		if err != nil {
			return nil, errdef.Wrap(errdef.CodeScan, err, "scan %s", root)
		}
		for _, entry := range dirEntries {
			if entry.IsDir() {
				continue
			}
			appendEntry(filepath.Join(root, entry.Name()), entry)
		}
	} else {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if path == root {
					return err
				}
				if opts.OnError != nil {
					opts.OnError(path, err)
				}
				if d != nil && d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			if d.IsDir() {
				if path == root {
					return nil
				}
				name := d.Name()
				if _, ok := skip[name]; ok || strings.HasPrefix(name, ".") {
					return filepath.SkipDir
				}
				return nil
			}
			if !d.Type().IsRegular() && d.Type()&fs.ModeSymlink == 0 {
				return nil
			}

			appendEntry(path, d)
			return nil
		})
		if err != nil {
			return nil, errdef.Wrap(errdef.CodeScan, err, "scan %s", root)
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})

	return entries, nil
}

// ListCandidates scans root and describes each file relative to targetDir
// and root.
func ListCandidates(root, targetDir string, opts Options) ([]imports.DiscoveredFile, error) {
	entries, err := ListFiles(root, opts)
	if err != nil {
		return nil, err
	}
	out := make([]imports.DiscoveredFile, 0, len(entries))
	for _, e := range entries {
		out = append(out, imports.Describe(e.Path, e.Class, targetDir, root))
	}
	return out, nil
}
