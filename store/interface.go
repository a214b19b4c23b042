package store

import "github.com/noteleap/noteleap/models"

// DocumentProvider is the host-side document store the ranking engine
// reads snapshots from. Providers are invoked fresh per ranking call;
// any caching happens behind this interface, never in the engine.
type DocumentProvider interface {
	// Documents enumerates snapshots of every document.
	Documents() ([]models.Document, error)

	// Document resolves one ID to its snapshot. ok is false for unknown
	// IDs; that is not an error.
	Document(id string) (doc models.Document, ok bool, err error)

	// Close releases any resources held by the provider.
	Close() error
}

// Verify the concrete providers satisfy DocumentProvider at compile time.
var (
	_ DocumentProvider = (*VaultStore)(nil)
	_ DocumentProvider = (*IndexStore)(nil)
)
