package perl

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/srcdeb/srcdeb/internal/core/domain"
	"github.com/srcdeb/srcdeb/internal/core/ports"
	"go.trai.ch/zerr"
)

// Locator implements ports.ModuleLocator by searching the interpreter's
// module search path. Providers under the interpreter's own library
// directories are core: they ship with the runtime and never need a system
// package.
//
// The interpreter is queried lazily on the first Locate call, so building the
// locator (and with it the whole application graph) does not require a perl
// on the PATH.
type Locator struct {
	cmd ports.Commander

	init       sync.Once
	initErr    error
	searchPath []string
	coreDirs   []string
}

// NewLocator creates a Locator over the local perl interpreter.
func NewLocator(cmd ports.Commander) *Locator {
	return &Locator{cmd: cmd}
}

// NewLocatorWithPaths builds a Locator over explicit directories. Used by tests.
func NewLocatorWithPaths(searchPath, coreDirs []string) *Locator {
	l := &Locator{searchPath: searchPath, coreDirs: coreDirs}
	l.init.Do(func() {})
	return l
}

// Locate resolves a module name to its providing file, checking the search
// path in order.
func (l *Locator) Locate(ctx context.Context, module string) (domain.ModuleProvider, error) {
	l.init.Do(func() { l.initErr = l.queryInterpreter(ctx) })
	if l.initErr != nil {
		return domain.ModuleProvider{}, l.initErr
	}

	rel := strings.ReplaceAll(module, "::", "/") + ".pm"
	for _, dir := range l.searchPath {
		path := filepath.Join(dir, rel)
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			return domain.ModuleProvider{Path: path, Core: l.core(path)}, nil
		}
	}
	return domain.ModuleProvider{}, zerr.With(zerr.Wrap(domain.ErrUnresolvableModule, "module not found in search path"), "module", module)
}

// queryInterpreter captures the search path (@INC) and the core library
// directories once.
func (l *Locator) queryInterpreter(ctx context.Context) error {
	incOut, err := l.cmd.Output(ctx, "", "perl", "-e", `print join("\n", @INC)`)
	if err != nil {
		return zerr.Wrap(err, "failed to query perl search path")
	}
	coreOut, err := l.cmd.Output(ctx, "", "perl", "-MConfig", "-e", `print join("\n", @Config{qw(privlibexp archlibexp)})`)
	if err != nil {
		return zerr.Wrap(err, "failed to query perl core directories")
	}

	l.searchPath = splitLines(incOut)
	l.coreDirs = splitLines(coreOut)
	return nil
}

func (l *Locator) core(path string) bool {
	for _, dir := range l.coreDirs {
		if dir == "" {
			continue
		}
		if strings.HasPrefix(path, dir+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

func splitLines(s string) []string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" && line != "." {
			lines = append(lines, line)
		}
	}
	return lines
}
