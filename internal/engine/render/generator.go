// Package render generates the debian/ control files from a package
// descriptor. Rendering is deterministic: the same descriptor and timestamp
// always produce byte-identical text.
package render

import (
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"github.com/srcdeb/srcdeb/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	// compatLevel is the debhelper compatibility level written to debian/compat.
	compatLevel = "10"

	standardsVersion = "3.9.8"
	buildDepends     = "debhelper (>= " + compatLevel + ")"

	// changelogDate is the RFC 2822 layout debian changelogs require.
	changelogDate = "Mon, 02 Jan 2006 15:04:05 -0700"
)

// rulesTemplate expands to one install-and-copy pair per present content role.
var rulesTemplate = template.Must(template.New("rules").Parse(`#!/usr/bin/make -f

%:
	dh $@

override_dh_auto_install:
{{- range .Steps}}
	install -d {{.Dest}}
	cp -a {{.Src}}/* {{.Dest}}/
{{- end}}
`))

// installPrefixes maps layout roles to their install prefixes, in render order.
var installPrefixes = []struct {
	role   domain.Role
	prefix string
}{
	{domain.RoleBin, "usr/local/bin"},
	{domain.RoleEtc, "etc/%s"},
	{domain.RoleLib, "usr/share/perl5"},
	{domain.RoleVar, "var/lib/%s"},
}

// Artifacts holds the rendered debian/ file contents.
type Artifacts struct {
	Changelog string
	Control   string
	Rules     string
	Compat    string
}

// Generator renders the debian/ control files.
type Generator struct{}

// NewGenerator creates a Generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Render produces all four artifacts for the descriptor, signed as the given
// maintainer. now is the changelog timestamp; everything else depends only on
// the descriptor.
func (g *Generator) Render(desc *domain.PackageDescriptor, maintainer domain.Maintainer, now time.Time) (Artifacts, error) {
	rules, err := g.rules(desc)
	if err != nil {
		return Artifacts{}, err
	}
	return Artifacts{
		Changelog: g.changelog(desc, maintainer, now),
		Control:   g.control(desc, maintainer),
		Rules:     rules,
		Compat:    compatLevel + "\n",
	}, nil
}

// Write places the artifacts under dir/debian. The rules file is executable.
func (g *Generator) Write(dir string, a Artifacts) error {
	debian := filepath.Join(dir, "debian")
	if err := os.MkdirAll(debian, 0o755); err != nil {
		return zerr.Wrap(err, "failed to create debian directory")
	}

	files := []struct {
		name string
		body string
		mode os.FileMode
	}{
		{"changelog", a.Changelog, 0o644},
		{"control", a.Control, 0o644},
		{"rules", a.Rules, 0o755},
		{"compat", a.Compat, 0o644},
	}
	for _, f := range files {
		path := filepath.Join(debian, f.name)
		if err := os.WriteFile(path, []byte(f.body), f.mode); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to write control file"), "path", path)
		}
	}
	return nil
}

func (g *Generator) changelog(desc *domain.PackageDescriptor, maintainer domain.Maintainer, now time.Time) string {
	var b strings.Builder
	b.WriteString(desc.Name + " (" + desc.Version + "-1) unstable; urgency=low\n")
	b.WriteString("\n")
	b.WriteString("  * Package built from upstream source tree.\n")
	b.WriteString("\n")
	b.WriteString(" -- " + maintainer.String() + "  " + now.Format(changelogDate) + "\n")
	return b.String()
}

func (g *Generator) control(desc *domain.PackageDescriptor, maintainer domain.Maintainer) string {
	description := desc.Description
	if description == "" {
		description = desc.Name
	}

	var b strings.Builder
	b.WriteString("Source: " + desc.Name + "\n")
	b.WriteString("Section: perl\n")
	b.WriteString("Priority: optional\n")
	b.WriteString("Maintainer: " + maintainer.String() + "\n")
	b.WriteString("Build-Depends: " + buildDepends + "\n")
	b.WriteString("Standards-Version: " + standardsVersion + "\n")
	if desc.OriginURL != "" {
		b.WriteString("Homepage: " + desc.OriginURL + "\n")
	}
	b.WriteString("\n")
	b.WriteString("Package: " + desc.Name + "\n")
	b.WriteString("Architecture: all\n")

	depends := append(domain.DependencyList{{Name: "perl"}}, desc.Requires...)
	b.WriteString(renderField("Depends", depends))
	if len(desc.Conflicts) > 0 {
		b.WriteString(renderField("Conflicts", desc.Conflicts))
	}

	b.WriteString("Description: " + description + "\n")
	b.WriteString(" " + description + "\n")
	if desc.OriginURL != "" {
		b.WriteString("Homepage: " + desc.OriginURL + "\n")
	}
	return b.String()
}

// renderField renders a relationship field with one entry per line,
// continuation lines aligned under the first entry. Entries keep their
// manifest-encounter order; constraints render in parentheses.
func renderField(field string, deps domain.DependencyList) string {
	indent := strings.Repeat(" ", len(field)+2)
	entries := make([]string, len(deps))
	for i, d := range deps {
		entries[i] = d.Name
		if d.Constraint != "" {
			entries[i] += " (" + d.Constraint + ")"
		}
	}
	return field + ": " + strings.Join(entries, ",\n"+indent) + "\n"
}

func (g *Generator) rules(desc *domain.PackageDescriptor) (string, error) {
	type step struct{ Src, Dest string }
	var steps []step
	for _, m := range installPrefixes {
		if !desc.Layout.Has(m.role) {
			continue
		}
		prefix := m.prefix
		if strings.Contains(prefix, "%s") {
			prefix = strings.ReplaceAll(prefix, "%s", desc.Name)
		}
		steps = append(steps, step{
			Src:  string(m.role),
			Dest: "debian/" + desc.Name + "/" + prefix,
		})
	}

	var b strings.Builder
	if err := rulesTemplate.Execute(&b, struct{ Steps []step }{steps}); err != nil {
		return "", zerr.Wrap(err, "failed to render rules template")
	}
	return b.String(), nil
}
