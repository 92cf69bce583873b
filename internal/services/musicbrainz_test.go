package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestMusicBrainzService(t *testing.T) {
	t.Run("DiscoverArtists", func(t *testing.T) {
		var gotQuery, gotAgent string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.Query().Get("query")
			gotAgent = r.Header.Get("User-Agent")
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"count": 2,
				"offset": 42,
				"artists": [
					{
						"id": "abc-123",
						"name": "Marisa Monte",
						"type": "Person",
						"score": 100,
						"area": {"name": "Rio de Janeiro"},
						"life-span": {"begin": "1987"},
						"tags": [{"count": 3, "name": "mpb"}, {"count": 7, "name": "samba"}]
					},
					{"id": "def-456", "name": "Os Mutantes", "type": "Group", "score": 98}
				]
			}`))
		}))
		defer server.Close()

		srv := NewMusicBrainzService(server.URL, "test-agent/0.1", 8, 100)
		result := srv.DiscoverArtists(context.Background())

		if result.Fallback {
			t.Error("expected a live result, got fallback")
		}
		if len(result.Artists) != 2 {
			t.Fatalf("expected 2 artists, got %d", len(result.Artists))
		}

		if gotAgent != "test-agent/0.1" {
			t.Errorf("expected User-Agent test-agent/0.1, got %s", gotAgent)
		}
		if gotQuery != result.Strategy {
			t.Errorf("query %q does not match reported strategy %q", gotQuery, result.Strategy)
		}
		if result.Offset < 0 || result.Offset >= maxSearchOffset {
			t.Errorf("offset %d outside [0, %d)", result.Offset, maxSearchOffset)
		}

		byName := make(map[string]bool)
		for _, a := range result.Artists {
			byName[a.Name] = true
			if a.Name == "Marisa Monte" {
				if a.Genre != "samba" {
					t.Errorf("expected most-voted tag samba, got %s", a.Genre)
				}
				if a.Area != "Rio de Janeiro" {
					t.Errorf("expected area Rio de Janeiro, got %s", a.Area)
				}
				if a.ActiveSince != "1987" {
					t.Errorf("expected active since 1987, got %s", a.ActiveSince)
				}
				if a.ProfileURL == "" {
					t.Error("expected a profile URL")
				}
			}
		}
		if !byName["Marisa Monte"] || !byName["Os Mutantes"] {
			t.Errorf("unexpected artist set: %v", byName)
		}
	})

	t.Run("Falls back on server error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "rate limited", http.StatusServiceUnavailable)
		}))
		defer server.Close()

		srv := NewMusicBrainzService(server.URL, "test-agent/0.1", 8, 100)
		result := srv.DiscoverArtists(context.Background())

		if !result.Fallback {
			t.Fatal("expected fallback result")
		}
		if len(result.Artists) != len(fallbackRoster) {
			t.Errorf("expected %d fallback artists, got %d", len(fallbackRoster), len(result.Artists))
		}
	})

	t.Run("Falls back on empty page", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"count": 0, "offset": 120, "artists": []}`))
		}))
		defer server.Close()

		srv := NewMusicBrainzService(server.URL, "test-agent/0.1", 8, 100)
		result := srv.DiscoverArtists(context.Background())

		if !result.Fallback {
			t.Fatal("expected fallback result")
		}
	})

	t.Run("Falls back when unreachable", func(t *testing.T) {
		srv := NewMusicBrainzService("http://127.0.0.1:1", "test-agent/0.1", 8, 100)
		result := srv.DiscoverArtists(context.Background())

		if !result.Fallback {
			t.Fatal("expected fallback result")
		}
		if len(result.Artists) == 0 {
			t.Error("fallback roster should not be empty")
		}
	})
}

func TestFallbackArtists(t *testing.T) {
	roster := FallbackArtists()

	if len(roster) != len(fallbackRoster) {
		t.Fatalf("expected %d artists, got %d", len(fallbackRoster), len(roster))
	}

	// The returned slice is a copy
	roster[0].Name = "mutated"
	if fallbackRoster[0].Name == "mutated" {
		t.Error("FallbackArtists should return a copy")
	}

	for _, a := range FallbackArtists() {
		if a.Name == "" || a.Genre == "" {
			t.Errorf("fallback artist missing name or genre: %+v", a)
		}
	}
}
