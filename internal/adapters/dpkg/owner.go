// Package dpkg implements the path-ownership collaborator on top of dpkg -S.
package dpkg

import (
	"context"
	"strings"

	"github.com/srcdeb/srcdeb/internal/core/domain"
	"github.com/srcdeb/srcdeb/internal/core/ports"
	"go.trai.ch/zerr"
)

// Owner implements ports.PackageOwner by querying the local package database.
type Owner struct {
	cmd ports.Commander
}

// NewOwner creates a new Owner.
func NewOwner(cmd ports.Commander) *Owner {
	return &Owner{cmd: cmd}
}

// Owner returns the name of the package owning path. A path no package owns,
// or one claimed by more than one package, is unresolvable.
func (o *Owner) Owner(ctx context.Context, path string) (string, error) {
	out, err := o.cmd.Output(ctx, "", "dpkg", "-S", path)
	if err != nil {
		wrapped := zerr.With(zerr.Wrap(domain.ErrUnresolvablePackage, "no package owns path"), "path", path)
		return "", zerr.With(wrapped, "cause", err.Error())
	}

	// dpkg -S output: "<package>: <path>". A comma-separated package list
	// means multiple owners.
	line, _, found := strings.Cut(firstLine(out), ":")
	if !found || line == "" {
		return "", zerr.With(zerr.Wrap(domain.ErrUnresolvablePackage, "unexpected dpkg output"), "output", out)
	}
	if strings.Contains(line, ",") {
		return "", zerr.With(zerr.Wrap(domain.ErrUnresolvablePackage, "ambiguous ownership"), "owners", line)
	}
	return strings.TrimSpace(line), nil
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}
