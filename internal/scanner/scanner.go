package scanner

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/bearcnc/lintdoc/internal/domain"
)

// Scanner discovers rules documents in the project tree.
type Scanner interface {
	Scan(rootDir string, patterns []string, excludes []string) ([]string, error)
}

// FileScanner implements Scanner using filepath.WalkDir.
type FileScanner struct {
	Recursive bool
}

// NewScanner creates a new FileScanner.
func NewScanner(recursive bool) *FileScanner {
	return &FileScanner{Recursive: recursive}
}

// Scan walks rootDir and returns sorted file paths matching any of the given
// glob patterns while excluding paths that match any exclude pattern.
// Patterns use doublestar syntax and are matched against the slash-separated
// path relative to rootDir and against the base name.
func (s *FileScanner) Scan(rootDir string, patterns []string, excludes []string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(rootDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		relPath, relErr := filepath.Rel(rootDir, path)
		if relErr != nil {
			relPath = path
		}
		relPath = filepath.ToSlash(relPath)

		if d.IsDir() {
			if relPath == "." {
				return nil
			}
			if !s.Recursive {
				return filepath.SkipDir
			}
			if matchAny(relPath, excludes) {
				return filepath.SkipDir
			}
			return nil
		}

		if matchAny(relPath, excludes) {
			return nil
		}
		if matchAny(relPath, patterns) {
			files = append(files, path)
		}
		return nil
	})

	if err != nil {
		return nil, domain.NewError("scan", rootDir, 0, "failed to scan directory", err)
	}

	sort.Strings(files)
	return files, nil
}

// Resolve returns the explicit files followed by the documents found under
// dirs, without duplicates.
func (s *FileScanner) Resolve(files, dirs, patterns, excludes []string) ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	add := func(p string) {
		key := filepath.Clean(p)
		if !seen[key] {
			seen[key] = true
			out = append(out, p)
		}
	}

	for _, f := range files {
		add(f)
	}
	for _, dir := range dirs {
		found, err := s.Scan(dir, patterns, excludes)
		if err != nil {
			return nil, err
		}
		for _, f := range found {
			add(f)
		}
	}
	return out, nil
}

func matchAny(relPath string, patterns []string) bool {
	base := filepath.Base(relPath)
	for _, p := range patterns {
		if ok, _ := doublestar.Match(p, relPath); ok {
			return true
		}
		if ok, _ := doublestar.Match(p, base); ok {
			return true
		}
	}
	return false
}
