package domain

import (
	"regexp"
	"strings"

	"go.trai.ch/zerr"
)

// DirtySuffix marks a version built from a working copy with uncommitted changes.
const DirtySuffix = "+dirty"

var versionPattern = regexp.MustCompile(`^\d+(\.\d+)*$`)

// ParseVersion extracts the package version from the raw contents of the
// Changes file. The first non-blank line, trimmed, must be a bare
// dotted-numeric version; everything after it is free-form and ignored.
func ParseVersion(changes string) (string, error) {
	for _, line := range strings.Split(changes, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !versionPattern.MatchString(line) {
			return "", zerr.With(zerr.Wrap(ErrMalformedVersion, "failed to parse changes file"), "line", line)
		}
		return line, nil
	}
	return "", zerr.With(zerr.Wrap(ErrMalformedVersion, "failed to parse changes file"), "line", "")
}

// MarkDirty appends the dirty suffix to a parsed version. It is idempotent.
func MarkDirty(version string) string {
	if strings.HasSuffix(version, DirtySuffix) {
		return version
	}
	return version + DirtySuffix
}
