package models

// ArtistRecord is the normalized shape an artist takes regardless of which
// upstream service produced it. Name is the only required field; everything
// else is rendered only when present. Records are transient and never persisted
// beyond the current display.
type ArtistRecord struct {
	ID             string
	Name           string
	Type           string
	Score          int
	Area           string
	Genre          string
	Disambiguation string
	ActiveSince    string
	ProfileURL     string
	ImageURL       string
}

// ImageDescriptor is a deterministic placeholder image derived from an artist
// name: a stable color pair plus initials. It is rendering-agnostic so the
// presentation layer can draw it however it likes.
type ImageDescriptor struct {
	Background string
	Foreground string
	Initials   string
	Icon       string
}
