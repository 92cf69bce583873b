package tasks

import "fmt"

// ProgressUpdate represents a progress event during a discovery run.
//
// Used to send real-time updates to the CLI or UI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Step    int    // Current step number within phase
	Total   int    // Total steps in this phase
	Message string // Human-readable message for display
	Data    any    // Optional phase-specific data for advanced UIs
}

// Operation phase enumeration
type Phase int

const (
	QueryArtists Phase = iota
	ResolveImages
	Finalize
)

func (p Phase) String() string {
	switch p {
	case QueryArtists:
		return "query_artists"
	case ResolveImages:
		return "resolve_images"
	case Finalize:
		return "finalize"
	default:
		return ""
	}
}

func queryArtistsUpdate() ProgressUpdate {
	return ProgressUpdate{
		Phase:   QueryArtists,
		Step:    1,
		Total:   1,
		Message: "Searching for artists...",
	}
}

func fallbackUpdate(total int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   QueryArtists,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Lookup unavailable, using the built-in roster (%d artists)", total),
	}
}

func resolveImageUpdate(step, total int, name string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ResolveImages,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] Resolving image: %s", step, total, name),
	}
}

func finalizeUpdate(result *DiscoveryRunResult) ProgressUpdate {
	return ProgressUpdate{
		Phase:   Finalize,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Discovered %d artists", len(result.Cards)),
		Data:    result,
	}
}
