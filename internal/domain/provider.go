package domain

import "context"

// SupplementaryProvider defines the interface (port) for external
// question sources that augment the local database, e.g. the
// templated web-search provider. The retrieval core treats provider
// output as untrusted and normalizes missing fields through
// Question.WithDefaults before merging.
type SupplementaryProvider interface {
	// FetchSupplementary returns up to max question records for
	// the given company, role and optional category. An empty
	// category means no category restriction.
	FetchSupplementary(ctx context.Context, company, role, category string, max int) ([]Question, error)
}
