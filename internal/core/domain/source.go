package domain

// SourceSpec selects how the source tree is acquired. Exactly one of GitURL,
// SvnURL or Dir is expected to be set; a Dir with more than one detectable
// version-control origin is a hard error, never a guess.
type SourceSpec struct {
	GitURL string
	SvnURL string
	Dir    string
}

// Source is a prepared local source tree.
type Source struct {
	// Dir is the local directory holding the tree.
	Dir string

	// OriginURL is the version-control origin, when one is known.
	// Provenance only; never validated.
	OriginURL string

	// Dirty is true when the tree is a working copy with uncommitted changes.
	Dirty bool

	// Staged is true when Dir is a disposable checkout owned by this run.
	Staged bool
}

// Maintainer identifies the package maintainer named in the generated
// changelog and control files.
type Maintainer struct {
	Name  string
	Email string
}

func (m Maintainer) String() string {
	return m.Name + " <" + m.Email + ">"
}
