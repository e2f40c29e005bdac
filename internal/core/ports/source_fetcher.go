package ports

import (
	"context"

	"github.com/srcdeb/srcdeb/internal/core/domain"
)

// SourceFetcher acquires the source tree to package: a version-control
// checkout into a staging directory, or an existing directory used in place.
//
//go:generate mockgen -source=source_fetcher.go -destination=mocks/mock_source_fetcher.go -package=mocks
type SourceFetcher interface {
	// Fetch prepares a local source tree according to the spec.
	Fetch(ctx context.Context, spec domain.SourceSpec) (domain.Source, error)

	// Cleanup removes a staged checkout. In-place sources are left alone.
	Cleanup(src domain.Source) error
}
