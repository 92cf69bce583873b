// Vagalume implementation of [ArtistLookup]
//
// Artist profiles live at predictable slug URLs ({base}/{slug}/index.js), so
// lookup by name is a matter of generating slug candidates and probing them in
// order until one resolves.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/time/rate"

	"tunetutor/internal/models"
	"tunetutor/internal/shared"
)

const vagalumeBaseURL = "https://www.vagalume.com.br"

type vagalumeGenre struct {
	Name string `json:"name"`
}

type vagalumeRank struct {
	Pos int `json:"pos"`
}

// VagalumeArtist represents the artist object in a profile response.
type VagalumeArtist struct {
	Name      string          `json:"name"`
	URL       string          `json:"url"`
	PicSmall  string          `json:"pic_small"`
	PicMedium string          `json:"pic_medium"`
	Genre     []vagalumeGenre `json:"genre"`
	Rank      vagalumeRank    `json:"rank"`
}

// VagalumeResponse represents a profile lookup response.
type VagalumeResponse struct {
	Artist VagalumeArtist `json:"artist"`
}

// VagalumeService implements [ArtistLookup] by probing slug URLs.
type VagalumeService struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewVagalumeService creates a Vagalume client. A zero or negative
// requestsPerSec falls back to 1.
func NewVagalumeService(baseURL, userAgent string, requestsPerSec float64) *VagalumeService {
	if baseURL == "" {
		baseURL = vagalumeBaseURL
	}
	if requestsPerSec <= 0 {
		requestsPerSec = 1
	}

	return &VagalumeService{
		baseURL:    baseURL,
		userAgent:  userAgent,
		httpClient: http.DefaultClient,
		limiter:    rate.NewLimiter(rate.Limit(requestsPerSec), 1),
	}
}

// LookupArtist resolves an artist profile by display name. Slug candidates are
// probed sequentially; the first page that parses wins. Returns
// [shared.ErrArtistNotFound] once every candidate has missed.
func (s *VagalumeService) LookupArtist(ctx context.Context, name string) (*models.ArtistRecord, error) {
	candidates := SlugCandidates(name)
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: empty artist name", shared.ErrInvalidInput)
	}

	for _, slug := range candidates {
		record, err := s.fetchProfile(ctx, slug)
		if err == nil {
			return record, nil
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
	}

	return nil, fmt.Errorf("%w: %s", shared.ErrArtistNotFound, name)
}

// fetchProfile requests a single slug's profile document.
func (s *VagalumeService) fetchProfile(ctx context.Context, slug string) (*models.ArtistRecord, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	apiURL := fmt.Sprintf("%s/%s/index.js", s.baseURL, slug)

	req, err := http.NewRequestWithContext(ctx, "GET", apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", s.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("vagalume API error: status %d", resp.StatusCode)
	}

	var profile VagalumeResponse
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if profile.Artist.Name == "" {
		return nil, fmt.Errorf("%w: empty profile for slug %s", shared.ErrArtistNotFound, slug)
	}

	record := &models.ArtistRecord{
		Name:  profile.Artist.Name,
		Score: profile.Artist.Rank.Pos,
	}

	if len(profile.Artist.Genre) > 0 {
		record.Genre = profile.Artist.Genre[0].Name
	}
	if profile.Artist.URL != "" {
		record.ProfileURL = s.baseURL + profile.Artist.URL
	}
	if profile.Artist.PicMedium != "" {
		record.ImageURL = profile.Artist.PicMedium
	} else {
		record.ImageURL = profile.Artist.PicSmall
	}

	return record, nil
}

// SlugCandidates derives the URL slugs to probe for a display name, most
// likely first: hyphenated, concatenated, then underscored. Accents are
// stripped and anything outside [a-z0-9] and separators is dropped.
func SlugCandidates(name string) []string {
	base := normalizeName(name)
	if base == "" {
		return nil
	}

	words := strings.Fields(base)
	variants := []string{
		strings.Join(words, "-"),
		strings.Join(words, ""),
		strings.Join(words, "_"),
	}

	seen := make(map[string]bool, len(variants))
	var candidates []string
	for _, v := range variants {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		candidates = append(candidates, v)
	}

	return candidates
}

// normalizeName lowercases, strips diacritics, and removes everything except
// letters, digits, and spaces.
func normalizeName(name string) string {
	chain := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(chain, strings.ToLower(name))
	if err != nil {
		stripped = strings.ToLower(name)
	}

	var b strings.Builder
	for _, r := range stripped {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteRune(' ')
		}
	}

	return strings.TrimSpace(b.String())
}
