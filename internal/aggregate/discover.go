package aggregate

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// MarkdownExt is the only extension picked up during discovery.
const MarkdownExt = ".md"

// DefaultExcludeDirs lists directory names that never hold documentation.
var DefaultExcludeDirs = []string{".git", "node_modules", "__pycache__"}

// FileEntry is a discovered Markdown file.
type FileEntry struct {
	Path    string // Absolute path on disk
	RelPath string // Slash-separated path relative to the docs root
}

// Discover walks root and returns every Markdown file outside the excluded
// directories, sorted by absolute path.
func Discover(root string, excludeDirs []string, log *slog.Logger) ([]FileEntry, error) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, &DiscoveryError{Root: root, Err: err}
	}

	skip := make(map[string]bool, len(excludeDirs))
	for _, name := range excludeDirs {
		skip[name] = true
	}

	var entries []FileEntry
	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			// The root itself is never pruned, even if its name is excluded.
			if path != absRoot && skip[d.Name()] {
				log.Debug("skipping excluded directory", "path", path)
				return filepath.SkipDir
			}
			return nil
		}

		if !strings.HasSuffix(d.Name(), MarkdownExt) {
			return nil
		}
		if !isFileLike(path, d) {
			return nil
		}

		rel, err := filepath.Rel(absRoot, path)
		if err != nil {
			return err
		}
		entries = append(entries, FileEntry{
			Path:    path,
			RelPath: filepath.ToSlash(rel),
		})
		return nil
	})
	if err != nil {
		return nil, &DiscoveryError{Root: root, Err: err}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return pathLess(entries[i].Path, entries[j].Path)
	})

	log.Debug("discovered markdown files", "root", absRoot, "count", len(entries))
	return entries, nil
}

// isFileLike keeps regular files and symlinks that resolve to one. A link to a
// directory is never followed. A dangling link is kept so Render reports it.
func isFileLike(path string, d fs.DirEntry) bool {
	if d.Type().IsRegular() {
		return true
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	if err != nil {
		return true
	}
	return info.Mode().IsRegular()
}

// pathLess orders paths component by component, so "guide/a.md" sorts
// before "guide-extra/b.md" even though '-' is below '/'.
func pathLess(a, b string) bool {
	pa := strings.Split(a, string(filepath.Separator))
	pb := strings.Split(b, string(filepath.Separator))
	for i := 0; i < len(pa) && i < len(pb); i++ {
		if pa[i] != pb[i] {
			return pa[i] < pb[i]
		}
	}
	return len(pa) < len(pb)
}
