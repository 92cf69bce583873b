package services

import "tunetutor/internal/models"

// fallbackRoster is the built-in artist set used when MusicBrainz is
// unreachable or returns an empty page. The discovery exercise must always
// produce something browsable, even fully offline.
var fallbackRoster = []models.ArtistRecord{
	{Name: "Caetano Veloso", Type: "Person", Area: "Bahia", Genre: "MPB", ActiveSince: "1965", Disambiguation: "Tropicália pioneer"},
	{Name: "Anitta", Type: "Person", Area: "Rio de Janeiro", Genre: "funk carioca", ActiveSince: "2010"},
	{Name: "Gilberto Gil", Type: "Person", Area: "Bahia", Genre: "MPB", ActiveSince: "1963", Disambiguation: "Tropicália pioneer"},
	{Name: "Marisa Monte", Type: "Person", Area: "Rio de Janeiro", Genre: "MPB", ActiveSince: "1987"},
	{Name: "Tom Jobim", Type: "Person", Area: "Rio de Janeiro", Genre: "bossa nova", ActiveSince: "1956"},
	{Name: "Elis Regina", Type: "Person", Area: "Porto Alegre", Genre: "MPB", ActiveSince: "1961"},
	{Name: "Chico Buarque", Type: "Person", Area: "Rio de Janeiro", Genre: "MPB", ActiveSince: "1964"},
	{Name: "Seu Jorge", Type: "Person", Area: "Rio de Janeiro", Genre: "samba", ActiveSince: "1998"},
}

// FallbackArtists returns a fresh copy of the built-in roster so callers can
// shuffle or mutate it freely.
func FallbackArtists() []models.ArtistRecord {
	roster := make([]models.ArtistRecord, len(fallbackRoster))
	copy(roster, fallbackRoster)
	return roster
}
