// package services defines clients for the artist lookup HTTP APIs.
//
// MusicBrainz powers randomized discovery; a Vagalume-style profile API powers
// lookup by name. Both are unauthenticated and rate limited client-side.
package services
