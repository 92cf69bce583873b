package tasks

import (
	"context"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"

	"tunetutor/internal/models"
	"tunetutor/internal/services"
	"tunetutor/internal/shared"
)

// ArtistCard is one renderable discovery result: the artist record plus a
// deterministic placeholder used whenever no real image URL resolved.
type ArtistCard struct {
	Record      models.ArtistRecord
	Placeholder models.ImageDescriptor
}

// HasImage reports whether a real image URL resolved for this card.
func (c ArtistCard) HasImage() bool {
	return c.Record.ImageURL != ""
}

// DiscoveryRunResult contains all data from one discovery run.
type DiscoveryRunResult struct {
	Cards          []ArtistCard // One card per discovered artist, in display order
	Strategy       string       // Search strategy used
	Offset         int          // Random page offset used
	Fallback       bool         // Built-in roster was used
	ResolvedImages int          // Cards with a real image URL
}

// DiscoveryCompleter marks the discovery exercise complete. Satisfied by
// quiz.Engine.
type DiscoveryCompleter interface {
	CompleteDiscovery() error
}

// DiscoveryEngine orchestrates a discovery run: one randomized artist search,
// concurrent image resolution, and the exercise completion side effect.
type DiscoveryEngine struct {
	discoverer services.ArtistDiscoverer
	lookup     services.ArtistLookup
	completer  DiscoveryCompleter
	numWorkers int
	logger     *log.Logger
}

// NewDiscoveryEngine creates a discovery engine. A zero or negative numWorkers
// falls back to 4; lookup may be nil, in which case every card keeps its
// placeholder.
func NewDiscoveryEngine(discoverer services.ArtistDiscoverer, lookup services.ArtistLookup, completer DiscoveryCompleter, numWorkers int, logger *log.Logger) *DiscoveryEngine {
	if numWorkers <= 0 {
		numWorkers = 4
	}
	if numWorkers > 8 {
		numWorkers = 8
	}

	return &DiscoveryEngine{
		discoverer: discoverer,
		lookup:     lookup,
		completer:  completer,
		numWorkers: numWorkers,
		logger:     logger,
	}
}

// Discover runs one discovery pass. The artist search itself never fails (the
// client degrades to the built-in roster); the only error paths are a nil
// discoverer and a failed exercise-completion save.
func (e *DiscoveryEngine) Discover(ctx context.Context, progress chan<- ProgressUpdate) (*DiscoveryRunResult, error) {
	if e.discoverer == nil {
		return nil, fmt.Errorf("%w: artist discoverer not initialized", shared.ErrServiceUnavailable)
	}

	e.sendProgress(progress, queryArtistsUpdate())

	discovered := e.discoverer.DiscoverArtists(ctx)
	result := &DiscoveryRunResult{
		Cards:    make([]ArtistCard, len(discovered.Artists)),
		Strategy: discovered.Strategy,
		Offset:   discovered.Offset,
		Fallback: discovered.Fallback,
	}

	if discovered.Fallback {
		e.sendProgress(progress, fallbackUpdate(len(discovered.Artists)))
	}

	e.resolveCards(ctx, progress, discovered, result.Cards)

	for _, card := range result.Cards {
		if card.HasImage() {
			result.ResolvedImages++
		}
	}

	e.logger.Info("discovery run finished",
		"artists", len(result.Cards),
		"strategy", result.Strategy,
		"fallback", result.Fallback,
		"images", result.ResolvedImages)

	if e.completer != nil {
		if err := e.completer.CompleteDiscovery(); err != nil {
			return result, fmt.Errorf("discovery succeeded but completion failed: %w", err)
		}
	}

	e.sendProgress(progress, finalizeUpdate(result))
	return result, nil
}

// resolveCards fills the cards slice using a bounded worker pool. Each worker
// writes to distinct indices, so no further synchronization is needed on the
// slice itself. Lookups are skipped entirely for fallback runs, the roster is
// offline data.
func (e *DiscoveryEngine) resolveCards(ctx context.Context, progress chan<- ProgressUpdate, discovered *services.DiscoveryResult, cards []ArtistCard) {
	total := len(discovered.Artists)
	jobs := make(chan int, total)

	var wg sync.WaitGroup
	for w := 0; w < e.numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				select {
				case <-ctx.Done():
					cards[i] = newCard(discovered.Artists[i])
					continue
				default:
				}

				e.sendProgress(progress, resolveImageUpdate(i+1, total, discovered.Artists[i].Name))
				cards[i] = e.resolveCard(ctx, discovered.Artists[i], discovered.Fallback)
			}
		}()
	}

	for i := 0; i < total; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
}

// resolveCard builds one card, trying a profile lookup for an image URL when
// the run is live and the record does not already carry one.
func (e *DiscoveryEngine) resolveCard(ctx context.Context, record models.ArtistRecord, fallback bool) ArtistCard {
	card := newCard(record)

	if fallback || e.lookup == nil || card.HasImage() {
		return card
	}

	profile, err := e.lookup.LookupArtist(ctx, record.Name)
	if err != nil {
		e.logger.Debug("image lookup missed", "artist", record.Name, "error", err)
		return card
	}

	card.Record.ImageURL = profile.ImageURL
	if card.Record.Genre == "" {
		card.Record.Genre = profile.Genre
	}

	return card
}

func newCard(record models.ArtistRecord) ArtistCard {
	return ArtistCard{
		Record:      record,
		Placeholder: services.NewPlaceholder(record.Name),
	}
}

// sendProgress sends a progress update through the channel without blocking.
// Uses select with default to ensure progress reporting never blocks execution.
func (e *DiscoveryEngine) sendProgress(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- update:
		// Sent successfully
	default:
		// Channel full or closed, skip this update
	}
}
