// Package scan implements module usage scanning: it walks the recognized
// content roles of a source tree and collects the set of module names the
// source files import.
package scan

import (
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/srcdeb/srcdeb/internal/core/domain"
	"github.com/srcdeb/srcdeb/internal/core/ports"
	"go.trai.ch/zerr"
)

// Scanner collects imported module names from a source tree. Which files
// count as sources and how imports are read is delegated to the language's
// ImportExtractor; the traversal itself is language-agnostic.
type Scanner struct {
	extractor ports.ImportExtractor
}

// NewScanner creates a Scanner using the given extractor.
func NewScanner(extractor ports.ImportExtractor) *Scanner {
	return &Scanner{extractor: extractor}
}

// Scan returns the union of module names imported by the scripts under the
// binaries role and the library sources under the libraries role, sorted and
// deduplicated. Roles absent from the layout are skipped.
func (s *Scanner) Scan(dir string, layout domain.Layout) ([]string, error) {
	paths, err := s.collect(dir, layout)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	for _, path := range paths {
		modules, err := s.extractor.ExtractImports(path)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to extract imports"), "path", path)
		}
		for _, m := range modules {
			seen[m] = true
		}
	}

	result := make([]string, 0, len(seen))
	for m := range seen {
		result = append(result, m)
	}
	sort.Strings(result)
	return result, nil
}

// collect produces the ordered list of scannable files. Traversal is free of
// extraction work so the walk stays a pure enumeration.
func (s *Scanner) collect(dir string, layout domain.Layout) ([]string, error) {
	var paths []string

	if layout.Has(domain.RoleBin) {
		scripts, err := walkRole(filepath.Join(dir, string(domain.RoleBin)), isScript)
		if err != nil {
			return nil, err
		}
		paths = append(paths, scripts...)
	}

	if layout.Has(domain.RoleLib) {
		libs, err := walkRole(filepath.Join(dir, string(domain.RoleLib)), func(d fs.DirEntry) bool {
			return s.extractor.MatchesLibrary(d.Name())
		})
		if err != nil {
			return nil, err
		}
		paths = append(paths, libs...)
	}

	sort.Strings(paths)
	return paths, nil
}

func walkRole(root string, match func(fs.DirEntry) bool) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if vcsMetadata(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if match(d) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to walk source role"), "root", root)
	}
	return paths, nil
}

func isScript(d fs.DirEntry) bool {
	info, err := d.Info()
	if err != nil {
		return false
	}
	return info.Mode()&0o111 != 0
}

func vcsMetadata(name string) bool {
	switch name {
	case ".git", ".svn", ".jj", "CVS":
		return true
	}
	return false
}
