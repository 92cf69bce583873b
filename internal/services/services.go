package services

import (
	"context"

	"tunetutor/internal/models"
)

// ArtistDiscoverer produces a randomized batch of artists for the discovery
// exercise. Implementations must always return a usable result set, falling
// back to a built-in roster when the upstream is unreachable.
type ArtistDiscoverer interface {
	DiscoverArtists(ctx context.Context) *DiscoveryResult
}

// ArtistLookup resolves a single artist profile by display name.
type ArtistLookup interface {
	LookupArtist(ctx context.Context, name string) (*models.ArtistRecord, error)
}

// DiscoveryResult is a batch of discovered artists plus the query parameters
// that produced it. Fallback is set when the built-in roster was used.
type DiscoveryResult struct {
	Artists  []models.ArtistRecord
	Strategy string
	Offset   int
	Fallback bool
}
