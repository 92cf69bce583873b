package services

import (
	"hash/fnv"
	"strings"
	"unicode"

	"tunetutor/internal/models"
)

// placeholderPalette holds background/foreground pairs. The pair is chosen by
// hashing the artist name, so the same artist always renders the same colors.
var placeholderPalette = [][2]string{
	{"#1DB954", "#191414"},
	{"#E13300", "#FFF8F0"},
	{"#7B2FBE", "#F4ECFF"},
	{"#00695C", "#E0F2F1"},
	{"#AD1457", "#FCE4EC"},
	{"#F9A825", "#3E2723"},
	{"#1565C0", "#E3F2FD"},
	{"#4E342E", "#EFEBE9"},
}

// NewPlaceholder derives a deterministic placeholder image for an artist name.
// The same name always yields the same descriptor.
func NewPlaceholder(name string) models.ImageDescriptor {
	h := fnv.New32a()
	h.Write([]byte(name))
	pair := placeholderPalette[h.Sum32()%uint32(len(placeholderPalette))]

	return models.ImageDescriptor{
		Background: pair[0],
		Foreground: pair[1],
		Initials:   initials(name),
		Icon:       "♪",
	}
}

// initials takes the first letter of up to two words, uppercased. Names with
// no letters at all fall back to a single "?".
func initials(name string) string {
	var b strings.Builder
	count := 0
	for _, word := range strings.Fields(name) {
		for _, r := range word {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				b.WriteRune(unicode.ToUpper(r))
				count++
				break
			}
		}
		if count >= 2 {
			break
		}
	}

	if count == 0 {
		return "?"
	}
	return b.String()
}
