package quiz

import (
	"fmt"
	"io"
	"testing"

	"tunetutor/internal/models"
	"tunetutor/internal/shared"
)

// recordingSaver counts saves and can be told to fail.
type recordingSaver struct {
	saves int
	fail  bool
}

func (s *recordingSaver) Save(state *models.SessionState) error {
	s.saves++
	if s.fail {
		return fmt.Errorf("save failed")
	}
	return nil
}

func newTestEngine(t *testing.T) (*Engine, *recordingSaver) {
	t.Helper()
	saver := &recordingSaver{}
	logger := shared.NewLogger(io.Discard)
	return NewEngine(models.NewSessionState(), saver, logger), saver
}

func TestEngineSubmitAnswer(t *testing.T) {
	t.Run("Wrong twice then correct", func(t *testing.T) {
		engine, saver := newTestEngine(t)

		outcome, err := engine.SubmitAnswer(1, models.SingleAnswer("a"))
		if err != nil {
			t.Fatalf("submit failed: %v", err)
		}
		if outcome.Kind != models.OutcomeIncorrectRetry || outcome.AttemptsLeft != 2 {
			t.Errorf("expected IncorrectRetry with 2 attempts, got %+v", outcome)
		}

		outcome, _ = engine.SubmitAnswer(1, models.SingleAnswer("c"))
		if outcome.Kind != models.OutcomeIncorrectRetry || outcome.AttemptsLeft != 1 {
			t.Errorf("expected IncorrectRetry with 1 attempt, got %+v", outcome)
		}

		outcome, _ = engine.SubmitAnswer(1, models.SingleAnswer("b"))
		if outcome.Kind != models.OutcomeCorrect {
			t.Errorf("expected Correct, got %+v", outcome)
		}

		state := engine.State().Exercises[1]
		if !state.Completed || !state.Correct {
			t.Error("exercise should be completed and correct")
		}
		if engine.State().Score != 1 {
			t.Errorf("expected score 1, got %d", engine.State().Score)
		}
		if saver.saves != 3 {
			t.Errorf("expected 3 saves, got %d", saver.saves)
		}
	})

	t.Run("Three wrong answers exhaust attempts", func(t *testing.T) {
		engine, _ := newTestEngine(t)

		for _, wrong := range []string{"a", "c", "d"} {
			outcome, err := engine.SubmitAnswer(1, models.SingleAnswer(wrong))
			if err != nil {
				t.Fatalf("submit failed: %v", err)
			}
			if wrong == "d" {
				if outcome.Kind != models.OutcomeIncorrectFinal {
					t.Errorf("expected IncorrectFinal, got %+v", outcome)
				}
				if outcome.CorrectText != "30-50 tracks" {
					t.Errorf("expected correct answer text, got %q", outcome.CorrectText)
				}
			}
		}

		state := engine.State().Exercises[1]
		if !state.Completed || state.Correct {
			t.Error("exercise should be completed but not correct")
		}
		if state.AttemptsLeft() != 0 {
			t.Errorf("expected 0 attempts, got %d", state.AttemptsLeft())
		}
		if engine.State().Score != 0 {
			t.Errorf("score should be unchanged, got %d", engine.State().Score)
		}
	})

	t.Run("Completed exercise ignores further submissions", func(t *testing.T) {
		engine, saver := newTestEngine(t)

		if _, err := engine.SubmitAnswer(1, models.SingleAnswer("b")); err != nil {
			t.Fatalf("submit failed: %v", err)
		}
		savesBefore := saver.saves

		outcome, err := engine.SubmitAnswer(1, models.SingleAnswer("b"))
		if err != nil {
			t.Fatalf("submit failed: %v", err)
		}
		if outcome.Kind != models.OutcomeAlreadyCompleted {
			t.Errorf("expected AlreadyCompleted, got %+v", outcome)
		}
		if engine.State().Score != 1 {
			t.Errorf("score should not change on repeat submission, got %d", engine.State().Score)
		}
		if saver.saves != savesBefore {
			t.Error("repeat submission should not save")
		}
	})

	t.Run("Empty answer mutates nothing", func(t *testing.T) {
		engine, saver := newTestEngine(t)

		outcome, err := engine.SubmitAnswer(1, models.Answer{})
		if err != nil {
			t.Fatalf("submit failed: %v", err)
		}
		if outcome.Kind != models.OutcomeNeedsSelection {
			t.Errorf("expected NeedsSelection, got %+v", outcome)
		}
		if engine.State().Exercises[1].AttemptsLeft() != models.MaxAttempts {
			t.Error("empty answer should not consume an attempt")
		}
		if saver.saves != 0 {
			t.Error("empty answer should not save")
		}
	})

	t.Run("Multiple answer is order independent", func(t *testing.T) {
		engine, _ := newTestEngine(t)

		outcome, err := engine.SubmitAnswer(2, models.MultipleAnswer("d", "a", "b"))
		if err != nil {
			t.Fatalf("submit failed: %v", err)
		}
		if outcome.Kind != models.OutcomeCorrect {
			t.Errorf("expected Correct for reordered set, got %+v", outcome)
		}
	})

	t.Run("Multiple answer subset is wrong", func(t *testing.T) {
		engine, _ := newTestEngine(t)

		outcome, err := engine.SubmitAnswer(2, models.MultipleAnswer("a", "b"))
		if err != nil {
			t.Fatalf("submit failed: %v", err)
		}
		if outcome.Kind != models.OutcomeIncorrectRetry {
			t.Errorf("expected IncorrectRetry for subset, got %+v", outcome)
		}
	})

	t.Run("Select kind matches exactly", func(t *testing.T) {
		engine, _ := newTestEngine(t)

		outcome, err := engine.SubmitAnswer(3, models.SingleAnswer("c"))
		if err != nil {
			t.Fatalf("submit failed: %v", err)
		}
		if outcome.Kind != models.OutcomeCorrect {
			t.Errorf("expected Correct, got %+v", outcome)
		}
	})

	t.Run("Unknown exercise panics", func(t *testing.T) {
		engine, _ := newTestEngine(t)

		defer func() {
			if recover() == nil {
				t.Error("expected panic for unknown exercise id")
			}
		}()
		engine.SubmitAnswer(99, models.SingleAnswer("a"))
	})

	t.Run("Discovery exercise rejects submissions", func(t *testing.T) {
		engine, _ := newTestEngine(t)

		defer func() {
			if recover() == nil {
				t.Error("expected panic for unscored exercise")
			}
		}()
		engine.SubmitAnswer(models.DiscoveryExerciseID, models.SingleAnswer("a"))
	})

	t.Run("Save failure is reported after mutation", func(t *testing.T) {
		engine, saver := newTestEngine(t)
		saver.fail = true

		outcome, err := engine.SubmitAnswer(1, models.SingleAnswer("b"))
		if err == nil {
			t.Error("expected save error")
		}
		if outcome.Kind != models.OutcomeCorrect {
			t.Errorf("outcome should still be Correct, got %+v", outcome)
		}
		if !engine.State().Exercises[1].Completed {
			t.Error("in-memory state should be updated despite save failure")
		}
	})
}

func TestEngineCompleteDiscovery(t *testing.T) {
	engine, saver := newTestEngine(t)

	if err := engine.CompleteDiscovery(); err != nil {
		t.Fatalf("complete discovery failed: %v", err)
	}
	if !engine.State().Exercises[models.DiscoveryExerciseID].Completed {
		t.Error("discovery exercise should be completed")
	}
	if engine.State().Score != 0 {
		t.Error("discovery completion should not affect the score")
	}

	savesBefore := saver.saves
	if err := engine.CompleteDiscovery(); err != nil {
		t.Fatalf("repeat complete discovery failed: %v", err)
	}
	if saver.saves != savesBefore {
		t.Error("repeat completion should not save")
	}
}

func TestEngineAllCompleted(t *testing.T) {
	engine, _ := newTestEngine(t)

	if engine.AllCompleted() {
		t.Error("fresh session should not be all-completed")
	}

	engine.SubmitAnswer(1, models.SingleAnswer("b"))
	engine.SubmitAnswer(2, models.MultipleAnswer("a", "b", "d"))
	engine.SubmitAnswer(3, models.SingleAnswer("c"))

	if engine.AllCompleted() {
		t.Error("discovery exercise still pending")
	}

	if err := engine.CompleteDiscovery(); err != nil {
		t.Fatalf("complete discovery failed: %v", err)
	}
	if !engine.AllCompleted() {
		t.Error("all exercises complete, AllCompleted should be true")
	}
}

func TestEngineReset(t *testing.T) {
	engine, _ := newTestEngine(t)

	engine.SubmitAnswer(1, models.SingleAnswer("b"))
	engine.SubmitAnswer(2, models.MultipleAnswer("c"))
	engine.CompleteDiscovery()
	engine.State().Lessons[1].Progress = 75

	if err := engine.Reset(); err != nil {
		t.Fatalf("reset failed: %v", err)
	}

	if engine.State().Score != 0 {
		t.Errorf("expected score 0 after reset, got %d", engine.State().Score)
	}
	for id := 1; id <= models.ScoredExerciseCount; id++ {
		state := engine.State().Exercises[id]
		if state.Completed || state.Correct || state.AttemptsLeft() != models.MaxAttempts {
			t.Errorf("exercise %d not restored: %+v", id, state)
		}
	}
	if !engine.State().Exercises[models.DiscoveryExerciseID].Completed {
		t.Error("reset should leave the discovery exercise untouched")
	}
	if engine.State().Lessons[1].Progress != 75 {
		t.Error("reset should leave lesson state untouched")
	}
}

func TestEngineSummary(t *testing.T) {
	tc := []struct {
		score      int
		percentage int
		title      string
	}{
		{3, 100, "Playlist Master!"},
		{2, 67, "Developing Curator"},
		{1, 33, "Keep Studying"},
		{0, 0, "Keep Studying"},
	}

	for _, tt := range tc {
		t.Run(fmt.Sprintf("score %d", tt.score), func(t *testing.T) {
			engine, _ := newTestEngine(t)
			engine.State().Score = tt.score

			summary := engine.Summary()
			if summary.Percentage != tt.percentage {
				t.Errorf("expected percentage %d, got %d", tt.percentage, summary.Percentage)
			}
			if summary.Title != tt.title {
				t.Errorf("expected title %q, got %q", tt.title, summary.Title)
			}
			if summary.Total != models.ScoredExerciseCount {
				t.Errorf("expected total %d, got %d", models.ScoredExerciseCount, summary.Total)
			}
			if summary.Detail == "" {
				t.Error("expected a detail line")
			}
		})
	}
}
