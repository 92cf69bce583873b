package models

// Session layout constants. Exercise and lesson ids are 1-based to match the
// rendered numbering in the presentation layer.
const (
	DefaultSection      = "intro"
	MaxAttempts         = 3
	ScoredExerciseCount = 3
	DiscoveryExerciseID = 4
	LessonCount         = 4
)

// ExerciseState tracks a single exercise. Attempts is nil for the discovery
// exercise, which has no attempts concept and completes once a lookup produces
// any result set.
type ExerciseState struct {
	Attempts  *int `json:"attempts,omitempty"`
	Completed bool `json:"completed"`
	Correct   bool `json:"correct"`
}

// Scored reports whether this exercise consumes attempts.
func (s *ExerciseState) Scored() bool {
	return s.Attempts != nil
}

// AttemptsLeft returns the remaining attempts, or 0 for unscored exercises.
func (s *ExerciseState) AttemptsLeft() int {
	if s.Attempts == nil {
		return 0
	}
	return *s.Attempts
}

// LessonState tracks a single lesson. Completed and Progress are monotonic
// (Progress only via max-merge); Expanded is a free-toggling visibility flag.
type LessonState struct {
	Completed bool `json:"completed"`
	Progress  int  `json:"progress"`
	Expanded  bool `json:"expanded"`
}

// SessionState is the full in-memory snapshot of user progress. Everything
// except CurrentSection survives a save/load round trip.
type SessionState struct {
	CurrentSection string
	Exercises      map[int]*ExerciseState
	Lessons        map[int]*LessonState
	Score          int
}

// NewSessionState returns a session with all exercises and lessons at their
// initial values and the navigation pointed at the default section.
func NewSessionState() *SessionState {
	s := &SessionState{
		CurrentSection: DefaultSection,
		Exercises:      make(map[int]*ExerciseState, ScoredExerciseCount+1),
		Lessons:        make(map[int]*LessonState, LessonCount),
	}

	for id := 1; id <= ScoredExerciseCount; id++ {
		s.Exercises[id] = NewScoredExerciseState()
	}
	s.Exercises[DiscoveryExerciseID] = &ExerciseState{}

	for id := 1; id <= LessonCount; id++ {
		s.Lessons[id] = &LessonState{}
	}

	return s
}

// NewScoredExerciseState returns the initial state for an attempts-based exercise.
func NewScoredExerciseState() *ExerciseState {
	attempts := MaxAttempts
	return &ExerciseState{Attempts: &attempts}
}

// CompletedExercises counts exercises whose Completed flag is set.
func (s *SessionState) CompletedExercises() int {
	count := 0
	for _, ex := range s.Exercises {
		if ex.Completed {
			count++
		}
	}
	return count
}
