package domain

import "sort"

// Role identifies one recognized top-level entry of a source tree.
type Role string

const (
	// RoleBin holds executable scripts installed to the local bin prefix.
	RoleBin Role = "bin"
	// RoleEtc holds configuration installed under /etc.
	RoleEtc Role = "etc"
	// RoleLib holds library sources installed into the shared library tree.
	RoleLib Role = "lib"
	// RoleVar holds data files installed under /var.
	RoleVar Role = "var"
	// RoleTest holds the project's test suite. It is never installed.
	RoleTest Role = "t"
	// RoleManifest marks the presence of the manifest file.
	RoleManifest Role = "manifest"
	// RoleChanges marks the presence of the Changes file.
	RoleChanges Role = "changes"
)

const (
	// ManifestFile is the declarative metadata document at the tree root.
	ManifestFile = "srcdeb.yaml"
	// ChangesFile is the record whose first line encodes the current version.
	ChangesFile = "Changes"
)

// ContentRoles are the roles that carry installable content. A source tree
// must contain at least one of them to be packageable.
var ContentRoles = []Role{RoleBin, RoleEtc, RoleLib}

// Layout is the set of roles present in a source tree.
type Layout map[Role]bool

// Has reports whether the role is present.
func (l Layout) Has(r Role) bool { return l[r] }

// HasContent reports whether at least one content role is present.
func (l Layout) HasContent() bool {
	for _, r := range ContentRoles {
		if l[r] {
			return true
		}
	}
	return false
}

// Roles returns the present roles in sorted order.
func (l Layout) Roles() []Role {
	roles := make([]Role, 0, len(l))
	for r, present := range l {
		if present {
			roles = append(roles, r)
		}
	}
	sort.Slice(roles, func(i, j int) bool { return roles[i] < roles[j] })
	return roles
}
