package quiz

import (
	"fmt"

	"github.com/charmbracelet/log"

	"tunetutor/internal/models"
)

// Progress milestones granted by tracker operations.
const (
	firstViewProgress = 25
	practicedProgress = 75
	completedProgress = 100
)

// Tracker owns lesson progress. Progress is monotonic (max-merge, clamped to
// [0,100]); the expanded flag toggles freely. Every mutation persists.
type Tracker struct {
	state  *models.SessionState
	store  Saver
	logger *log.Logger
}

// NewTracker creates a tracker over the given session state.
func NewTracker(state *models.SessionState, store Saver, logger *log.Logger) *Tracker {
	return &Tracker{state: state, store: store, logger: logger}
}

// ToggleExpanded flips a lesson's visibility. The first expansion grants
// first-view progress credit.
func (t *Tracker) ToggleExpanded(lessonID int) error {
	lesson := t.lesson(lessonID)
	lesson.Expanded = !lesson.Expanded

	if lesson.Expanded && lesson.Progress < firstViewProgress {
		lesson.Progress = firstViewProgress
	}

	return t.save()
}

// BumpProgress raises a lesson's progress to proposed if higher than the
// current value. Values are clamped to [0, 100].
func (t *Tracker) BumpProgress(lessonID, proposed int) error {
	lesson := t.lesson(lessonID)

	if proposed > completedProgress {
		proposed = completedProgress
	}
	if proposed <= lesson.Progress {
		return nil
	}

	lesson.Progress = proposed
	return t.save()
}

// MarkPracticed grants the practice milestone.
func (t *Tracker) MarkPracticed(lessonID int) error {
	return t.BumpProgress(lessonID, practicedProgress)
}

// MarkCompleted completes a lesson and raises its progress to 100.
func (t *Tracker) MarkCompleted(lessonID int) error {
	lesson := t.lesson(lessonID)
	lesson.Completed = true
	if lesson.Progress < completedProgress {
		lesson.Progress = completedProgress
	}

	t.logger.Info("lesson completed", "lesson", lessonID)
	return t.save()
}

// lesson resolves a lesson's state. An unknown id is a contract violation
// between content and presentation and panics.
func (t *Tracker) lesson(lessonID int) *models.LessonState {
	lesson, ok := t.state.Lessons[lessonID]
	if !ok {
		panic(fmt.Sprintf("quiz: unknown lesson %d", lessonID))
	}
	return lesson
}

func (t *Tracker) save() error {
	if err := t.store.Save(t.state); err != nil {
		t.logger.Error("failed to persist session", "error", err)
		return fmt.Errorf("failed to persist session: %w", err)
	}
	return nil
}
