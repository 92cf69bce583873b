// MusicBrainz implementation of [ArtistDiscoverer]
//
// Response types based on https://musicbrainz.org/doc/MusicBrainz_API/Search
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"net/url"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"tunetutor/internal/models"
)

const (
	musicbrainzBaseURL = "https://musicbrainz.org/ws/2"
	musicbrainzWebURL  = "https://musicbrainz.org/artist"

	// maxSearchOffset bounds the random page offset so repeated runs surface
	// different artists without paging past the useful part of the index.
	maxSearchOffset = 300
)

// searchStrategies are the Lucene queries rotated through at random. Each run
// picks one, so consecutive discoveries cut across groups, solo artists, and
// regional scenes.
var searchStrategies = []string{
	"country:BR AND type:group",
	"country:BR AND type:person",
	"area:Brazil",
	`area:"São Paulo"`,
	`area:"Rio de Janeiro"`,
}

type mbArea struct {
	Name string `json:"name"`
}

type mbLifeSpan struct {
	Begin string `json:"begin"`
}

type mbTag struct {
	Count int    `json:"count"`
	Name  string `json:"name"`
}

// MBArtist represents an artist entry in a MusicBrainz search response.
type MBArtist struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Type           string     `json:"type"`
	Score          int        `json:"score"`
	Area           mbArea     `json:"area"`
	Disambiguation string     `json:"disambiguation"`
	LifeSpan       mbLifeSpan `json:"life-span"`
	Tags           []mbTag    `json:"tags"`
}

// MBSearchResponse represents a MusicBrainz artist search result page.
type MBSearchResponse struct {
	Count   int        `json:"count"`
	Offset  int        `json:"offset"`
	Artists []MBArtist `json:"artists"`
}

// MusicBrainzService implements [ArtistDiscoverer] against the MusicBrainz
// search API. Requests carry an identifying User-Agent and are throttled
// client-side per the MusicBrainz rate limiting guidelines.
type MusicBrainzService struct {
	baseURL    string
	userAgent  string
	pageSize   int
	httpClient *http.Client
	limiter    *rate.Limiter

	mu  sync.Mutex
	rng *rand.Rand
}

// NewMusicBrainzService creates a MusicBrainz client. A zero or negative
// pageSize falls back to 8; a zero or negative requestsPerSec falls back to 1.
func NewMusicBrainzService(baseURL, userAgent string, pageSize int, requestsPerSec float64) *MusicBrainzService {
	if baseURL == "" {
		baseURL = musicbrainzBaseURL
	}
	if pageSize <= 0 {
		pageSize = 8
	}
	if requestsPerSec <= 0 {
		requestsPerSec = 1
	}

	return &MusicBrainzService{
		baseURL:    baseURL,
		userAgent:  userAgent,
		pageSize:   pageSize,
		httpClient: http.DefaultClient,
		limiter:    rate.NewLimiter(rate.Limit(requestsPerSec), 1),
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// DiscoverArtists runs one randomized search and returns the shuffled page.
// It never fails: any transport error, bad status, or empty page degrades to
// the built-in fallback roster with Fallback set.
func (s *MusicBrainzService) DiscoverArtists(ctx context.Context) *DiscoveryResult {
	strategy := searchStrategies[s.randInt(len(searchStrategies))]
	offset := s.randInt(maxSearchOffset)

	artists, err := s.searchArtists(ctx, strategy, offset)
	if err != nil || len(artists) == 0 {
		roster := FallbackArtists()
		s.shuffle(roster)
		return &DiscoveryResult{Artists: roster, Strategy: strategy, Offset: offset, Fallback: true}
	}

	s.shuffle(artists)
	return &DiscoveryResult{Artists: artists, Strategy: strategy, Offset: offset}
}

// searchArtists performs a single search request and maps the response page.
func (s *MusicBrainzService) searchArtists(ctx context.Context, query string, offset int) ([]models.ArtistRecord, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("fmt", "json")
	params.Set("limit", fmt.Sprintf("%d", s.pageSize))
	params.Set("offset", fmt.Sprintf("%d", offset))

	apiURL := fmt.Sprintf("%s/artist?%s", s.baseURL, params.Encode())

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

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("musicbrainz API error: status %d", resp.StatusCode)
	}

	var page MBSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	artists := make([]models.ArtistRecord, 0, len(page.Artists))
	for _, a := range page.Artists {
		if a.Name == "" {
			continue
		}
		artists = append(artists, a.toRecord())
	}

	return artists, nil
}

// ProfileURL builds the public artist page URL for a MusicBrainz id.
func ProfileURL(id string) string {
	return fmt.Sprintf("%s/%s", musicbrainzWebURL, id)
}

// toRecord maps a search entry to the normalized artist shape. The genre is
// the most-voted tag, if the entry carries any tags at all.
func (a MBArtist) toRecord() models.ArtistRecord {
	record := models.ArtistRecord{
		ID:             a.ID,
		Name:           a.Name,
		Type:           a.Type,
		Score:          a.Score,
		Area:           a.Area.Name,
		Disambiguation: a.Disambiguation,
		ActiveSince:    a.LifeSpan.Begin,
	}

	if a.ID != "" {
		record.ProfileURL = ProfileURL(a.ID)
	}

	best := -1
	for _, tag := range a.Tags {
		if tag.Count > best {
			best = tag.Count
			record.Genre = tag.Name
		}
	}

	return record
}

// shuffle applies a Fisher-Yates shuffle in place.
func (s *MusicBrainzService) shuffle(artists []models.ArtistRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rng.Shuffle(len(artists), func(i, j int) {
		artists[i], artists[j] = artists[j], artists[i]
	})
}

func (s *MusicBrainzService) randInt(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}
