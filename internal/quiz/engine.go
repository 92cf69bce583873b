package quiz

import (
	"fmt"
	"math"

	"github.com/charmbracelet/log"

	"tunetutor/internal/models"
)

// Saver persists a session snapshot. Satisfied by repositories.SessionStore.
type Saver interface {
	Save(state *models.SessionState) error
}

// Engine owns the exercise state machine. All mutations go through it and are
// persisted immediately; a save failure is reported alongside the outcome, the
// in-memory state is already updated.
type Engine struct {
	state  *models.SessionState
	store  Saver
	logger *log.Logger
}

// NewEngine creates an engine over the given session state.
func NewEngine(state *models.SessionState, store Saver, logger *log.Logger) *Engine {
	return &Engine{state: state, store: store, logger: logger}
}

// State exposes the session snapshot for read-only consumers.
func (e *Engine) State() *models.SessionState {
	return e.state
}

// Summary describes a finished (or in-progress) quiz run.
type Summary struct {
	Score      int
	Total      int
	Percentage int
	Title      string
	Detail     string
}

// SubmitAnswer runs one submission through the state machine and persists the
// result. A submission against an unknown or unscored exercise id is a
// contract violation between content and presentation and panics.
func (e *Engine) SubmitAnswer(exerciseID int, answer models.Answer) (models.Outcome, error) {
	def, ok := ExerciseByID(exerciseID)
	if !ok || !def.Scored() {
		panic(fmt.Sprintf("quiz: submit against unknown or unscored exercise %d", exerciseID))
	}

	state, ok := e.state.Exercises[exerciseID]
	if !ok || !state.Scored() {
		panic(fmt.Sprintf("quiz: no scored state for exercise %d", exerciseID))
	}

	if state.Completed {
		return models.Outcome{Kind: models.OutcomeAlreadyCompleted}, nil
	}

	if answer.Empty() {
		return models.Outcome{Kind: models.OutcomeNeedsSelection}, nil
	}

	*state.Attempts--

	if isCorrect(def, answer) {
		state.Correct = true
		state.Completed = true
		e.state.Score++
		e.logger.Info("exercise answered correctly", "exercise", exerciseID, "score", e.state.Score)
		return models.Outcome{Kind: models.OutcomeCorrect}, e.save()
	}

	if *state.Attempts > 0 {
		e.logger.Debug("incorrect answer", "exercise", exerciseID, "remaining", *state.Attempts)
		return models.Outcome{Kind: models.OutcomeIncorrectRetry, AttemptsLeft: *state.Attempts}, e.save()
	}

	state.Completed = true
	e.logger.Info("exercise failed", "exercise", exerciseID)
	return models.Outcome{Kind: models.OutcomeIncorrectFinal, CorrectText: def.CorrectText()}, e.save()
}

// isCorrect compares a submission against the definition: set equality for
// multiple answers, exact match otherwise.
func isCorrect(def Exercise, answer models.Answer) bool {
	if def.Kind == models.AnswerMultiple {
		if len(answer.Values) != len(def.Correct) {
			return false
		}
		want := make(map[string]bool, len(def.Correct))
		for _, key := range def.Correct {
			want[key] = true
		}
		for _, value := range answer.Values {
			if !want[value] {
				return false
			}
		}
		return true
	}

	return len(answer.Values) == 1 && answer.Values[0] == def.Correct[0]
}

// CompleteDiscovery marks the discovery exercise complete. It has no
// correctness and no attempts; producing any artist result set completes it.
func (e *Engine) CompleteDiscovery() error {
	state, ok := e.state.Exercises[models.DiscoveryExerciseID]
	if !ok {
		panic(fmt.Sprintf("quiz: no state for discovery exercise %d", models.DiscoveryExerciseID))
	}

	if state.Completed {
		return nil
	}

	state.Completed = true
	e.logger.Info("discovery exercise completed")
	return e.save()
}

// AllCompleted reports whether every tracked exercise is complete.
func (e *Engine) AllCompleted() bool {
	for _, state := range e.state.Exercises {
		if !state.Completed {
			return false
		}
	}
	return true
}

// Reset restores all scored exercises and the score to their initial values.
// Lesson state, the discovery exercise, and the theme preference are untouched.
func (e *Engine) Reset() error {
	for id, state := range e.state.Exercises {
		if state.Scored() {
			e.state.Exercises[id] = models.NewScoredExerciseState()
		}
	}
	e.state.Score = 0
	e.logger.Info("exercises reset")
	return e.save()
}

// Summary computes the score summary over the scored exercises. Tier
// thresholds are 100, 67, and 34 percent.
func (e *Engine) Summary() Summary {
	total := models.ScoredExerciseCount
	score := e.state.Score
	percentage := int(math.Round(float64(score) * 100 / float64(total)))

	summary := Summary{Score: score, Total: total, Percentage: percentage}

	switch {
	case percentage == 100:
		summary.Title = "Playlist Master!"
		summary.Detail = "Perfect run. You know what a playlist needs and you are ready to build great ones."
	case percentage >= 67:
		summary.Title = "Developing Curator"
		summary.Detail = "Solid base. A little more practice and your playlists will carry a room."
	case percentage >= 34:
		summary.Title = "Promising Beginner"
		summary.Detail = "You are on the right track. Revisit the lessons and try the exercises again."
	default:
		summary.Title = "Keep Studying"
		summary.Detail = "Playlist curation is a craft. Go back through the lessons and take another run."
	}

	return summary
}

func (e *Engine) save() error {
	if err := e.store.Save(e.state); err != nil {
		e.logger.Error("failed to persist session", "error", err)
		return fmt.Errorf("failed to persist session: %w", err)
	}
	return nil
}
