// Package perl is the Perl language strategy: it knows how Perl sources
// declare imports and where the interpreter looks for modules. Everything
// else in the scanner and resolver is language-agnostic.
package perl

import (
	"bufio"
	"os"
	"regexp"
	"strings"

	"go.trai.ch/zerr"
)

// importPattern matches use/require statements naming a module.
var importPattern = regexp.MustCompile(`^\s*(?:use|require)\s+([A-Za-z_][A-Za-z0-9_]*(?:::[A-Za-z0-9_]+)*)`)

// Extractor implements ports.ImportExtractor for Perl.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// MatchesLibrary reports whether name is a Perl module file.
func (e *Extractor) MatchesLibrary(name string) bool {
	return strings.HasSuffix(name, ".pm")
}

// ModulePath returns the @INC-relative file path for a module name.
func (e *Extractor) ModulePath(module string) string {
	return strings.ReplaceAll(module, "::", "/") + ".pm"
}

// ExtractImports returns the modules the file pulls in with use or require
// statements. Pragmas (all-lowercase names) are not modules and are skipped,
// as is anything after __END__ or __DATA__ and inside POD blocks.
func (e *Extractor) ExtractImports(path string) ([]string, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from the scanned source tree
	if err != nil {
		return nil, zerr.Wrap(err, "failed to open source file")
	}
	defer f.Close()

	var modules []string
	inPod := false

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()

		if strings.HasPrefix(line, "=cut") {
			inPod = false
			continue
		}
		if strings.HasPrefix(line, "=") && len(line) > 1 && line[1] >= 'a' && line[1] <= 'z' {
			inPod = true
			continue
		}
		if inPod {
			continue
		}
		if line == "__END__" || line == "__DATA__" {
			break
		}

		match := importPattern.FindStringSubmatch(line)
		if match == nil {
			continue
		}
		if pragma(match[1]) {
			continue
		}
		modules = append(modules, match[1])
	}
	if err := scanner.Err(); err != nil {
		return nil, zerr.Wrap(err, "failed to read source file")
	}
	return modules, nil
}

// pragma reports whether the name is a compiler pragma rather than a module.
// By convention pragma names are entirely lowercase.
func pragma(name string) bool {
	return strings.ToLower(name) == name
}
