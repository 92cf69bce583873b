package repositories

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"tunetutor/internal/models"
	"tunetutor/internal/shared"
)

// DefaultTheme is used when no theme preference has been persisted.
const DefaultTheme = "light"

// SessionStore maps [models.SessionState] to and from the key/value state
// repository. Exercises, lessons, and score are stored under separate keys so
// a corrupt slice only resets itself.
type SessionStore struct {
	states *StateRepository
}

// NewSessionStore creates a new [SessionStore] over the given state repository.
func NewSessionStore(states *StateRepository) *SessionStore {
	return &SessionStore{states: states}
}

// Save persists all three session slices. Each key is written independently;
// failures are joined so one bad write never blocks the others.
func (s *SessionStore) Save(state *models.SessionState) error {
	var errs []error

	if data, err := json.Marshal(state.Exercises); err != nil {
		errs = append(errs, fmt.Errorf("failed to encode exercises: %w", err))
	} else if err := s.states.Set(KeyProgress, string(data)); err != nil {
		errs = append(errs, err)
	}

	if data, err := json.Marshal(state.Lessons); err != nil {
		errs = append(errs, fmt.Errorf("failed to encode lessons: %w", err))
	} else if err := s.states.Set(KeyLessons, string(data)); err != nil {
		errs = append(errs, err)
	}

	if err := s.states.Set(KeyScore, strconv.Itoa(state.Score)); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// Load restores a session from the store. Parsed entries are merged over the
// initial state id by id, so a partial, corrupt, or misshapen payload degrades
// the affected entries to their defaults rather than producing a session the
// engine cannot run; database errors other than a missing key are returned.
func (s *SessionStore) Load() (*models.SessionState, error) {
	state := models.NewSessionState()

	raw, err := s.get(KeyProgress)
	if err != nil {
		return nil, err
	}
	if raw != "" {
		var exercises map[int]*models.ExerciseState
		if err := json.Unmarshal([]byte(raw), &exercises); err == nil {
			mergeExercises(state.Exercises, exercises)
		}
	}

	raw, err = s.get(KeyLessons)
	if err != nil {
		return nil, err
	}
	if raw != "" {
		var lessons map[int]*models.LessonState
		if err := json.Unmarshal([]byte(raw), &lessons); err == nil {
			mergeLessons(state.Lessons, lessons)
		}
	}

	raw, err = s.get(KeyScore)
	if err != nil {
		return nil, err
	}
	if raw != "" {
		if score, err := strconv.Atoi(raw); err == nil && score >= 0 {
			state.Score = score
		}
	}

	return state, nil
}

// mergeExercises overlays parsed entries onto the defaults, id by id. Entries
// for unknown ids, or whose shape does not match the exercise's scoring
// (a scored exercise needs an attempts counter, the discovery exercise must
// not have one), are discarded so that id keeps its default.
func mergeExercises(defaults, parsed map[int]*models.ExerciseState) {
	for id, def := range defaults {
		entry, ok := parsed[id]
		if !ok || entry == nil || entry.Scored() != def.Scored() {
			continue
		}
		if entry.Scored() && *entry.Attempts < 0 {
			zero := 0
			entry.Attempts = &zero
		}
		defaults[id] = entry
	}
}

// mergeLessons overlays parsed entries onto the defaults, id by id, clamping
// progress to [0, 100]. Unknown ids are discarded.
func mergeLessons(defaults, parsed map[int]*models.LessonState) {
	for id := range defaults {
		entry, ok := parsed[id]
		if !ok || entry == nil {
			continue
		}
		if entry.Progress < 0 {
			entry.Progress = 0
		}
		if entry.Progress > 100 {
			entry.Progress = 100
		}
		defaults[id] = entry
	}
}

// Theme returns the persisted theme preference, or [DefaultTheme].
func (s *SessionStore) Theme() (string, error) {
	theme, err := s.states.Get(KeyTheme)
	if errors.Is(err, shared.ErrStateNotFound) {
		return DefaultTheme, nil
	}
	if err != nil {
		return "", err
	}
	if theme != "light" && theme != "dark" {
		return DefaultTheme, nil
	}
	return theme, nil
}

// SetTheme persists the theme preference.
func (s *SessionStore) SetTheme(theme string) error {
	if theme != "light" && theme != "dark" {
		return fmt.Errorf("%w: theme %q", shared.ErrInvalidInput, theme)
	}
	return s.states.Set(KeyTheme, theme)
}

// get reads a key, treating a missing row as an empty payload.
func (s *SessionStore) get(key string) (string, error) {
	value, err := s.states.Get(key)
	if errors.Is(err, shared.ErrStateNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return value, nil
}
