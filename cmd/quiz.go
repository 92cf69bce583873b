package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"tunetutor/internal/models"
	"tunetutor/internal/quiz"
	"tunetutor/internal/shared"
)

// QuizStatus prints the state of every exercise and the current score.
func (r *Runner) QuizStatus(ctx context.Context, cmd *cli.Command) error {
	useJSON := cmd.Bool("json")
	pretty := cmd.Bool("pretty")

	engine, _, err := r.loadQuiz()
	if err != nil {
		return err
	}

	state := engine.State()

	if useJSON {
		return r.writeJSON(state, pretty)
	}

	r.writePlainHeader("Quiz Status")
	for _, def := range quiz.Exercises() {
		ex := state.Exercises[def.ID]

		status := "not started"
		switch {
		case ex.Completed && !ex.Scored():
			status = "completed"
		case ex.Completed && ex.Correct:
			status = "completed ✓"
		case ex.Completed:
			status = "completed ✗ (out of attempts)"
		case ex.Scored() && ex.AttemptsLeft() < models.MaxAttempts:
			status = fmt.Sprintf("in progress (%d attempts left)", ex.AttemptsLeft())
		}

		r.writePlain("%d. %s\n   %s\n", def.ID, def.Prompt, status)
	}
	r.writePlain("\nScore: %d/%d  Completed: %d/%d exercises\n",
		state.Score, models.ScoredExerciseCount, state.CompletedExercises(), len(state.Exercises))

	return nil
}

// QuizAnswer submits an answer for one exercise. Multiple option keys are
// separated by commas, e.g. "a,b,d".
func (r *Runner) QuizAnswer(ctx context.Context, cmd *cli.Command) error {
	exerciseID := int(cmd.Int("exercise"))
	useJSON := cmd.Bool("json")

	raw := cmd.String("answer")
	if raw == "" {
		raw = cmd.StringArg("answer")
	}

	def, ok := quiz.ExerciseByID(exerciseID)
	if !ok || !def.Scored() {
		return fmt.Errorf("%w: exercise %d does not take answers", shared.ErrInvalidArgument, exerciseID)
	}

	values := []string{}
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(strings.ToLower(part)); part != "" {
			values = append(values, part)
		}
	}

	engine, _, err := r.loadQuiz()
	if err != nil {
		return err
	}

	outcome, err := engine.SubmitAnswer(exerciseID, models.MultipleAnswer(values...))
	if err != nil {
		return err
	}

	if useJSON {
		return r.writeJSON(map[string]any{
			"exercise":      exerciseID,
			"outcome":       outcome.Kind.String(),
			"attempts_left": outcome.AttemptsLeft,
			"correct_text":  outcome.CorrectText,
		}, cmd.Bool("pretty"))
	}

	switch outcome.Kind {
	case models.OutcomeNeedsSelection:
		r.writePlain("No answer given. Options: %s\n", optionKeys(def))
	case models.OutcomeCorrect:
		r.writePlain("✓ Correct!\n")
	case models.OutcomeIncorrectRetry:
		r.writePlain("✗ Incorrect. %d attempt(s) left.\n", outcome.AttemptsLeft)
	case models.OutcomeIncorrectFinal:
		r.writePlain("✗ Out of attempts. The correct answer was: %s\n", outcome.CorrectText)
	case models.OutcomeAlreadyCompleted:
		r.writePlain("Exercise %d is already completed.\n", exerciseID)
	}

	return nil
}

// QuizReset restores the scored exercises and the score to their initial state.
func (r *Runner) QuizReset(ctx context.Context, cmd *cli.Command) error {
	engine, _, err := r.loadQuiz()
	if err != nil {
		return err
	}

	if err := engine.Reset(); err != nil {
		return err
	}

	r.writePlain("Exercises reset. Lesson progress is untouched.\n")
	return nil
}

// QuizResults prints the score summary for a finished run and optionally
// records it to the results history.
func (r *Runner) QuizResults(ctx context.Context, cmd *cli.Command) error {
	record := cmd.Bool("record")

	engine, _, err := r.loadQuiz()
	if err != nil {
		return err
	}

	if !engine.AllCompleted() {
		state := engine.State()
		return fmt.Errorf("%w: %d of %d exercises completed",
			shared.ErrQuizIncomplete, state.CompletedExercises(), len(state.Exercises))
	}

	summary := engine.Summary()

	r.writePlainHeader(summary.Title)
	r.writePlain("Score: %d/%d (%d%%)\n", summary.Score, summary.Total, summary.Percentage)
	r.writePlain("%s\n", summary.Detail)

	if record {
		result := models.NewQuizResult(0, summary.Score, summary.Total, summary.Title)
		if err := r.results.Create(result); err != nil {
			return fmt.Errorf("failed to record result: %w", err)
		}
		r.writePlainln("Result recorded. See 'tunetutor stats' for your history.")
	}

	return nil
}

func optionKeys(def quiz.Exercise) string {
	keys := make([]string, len(def.Options))
	for i, opt := range def.Options {
		keys[i] = opt.Key
	}
	return strings.Join(keys, ", ")
}

// quizCommand handles exercise operations.
func quizCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "quiz",
		Usage: "Exercise operations",
		Commands: []*cli.Command{
			{
				Name:  "status",
				Usage: "Show exercise progress and score",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
					},
				},
				Action: r.QuizStatus,
			},
			{
				Name:  "answer",
				Usage: "Submit an answer, e.g. 'quiz answer -e 2 a,b,d'",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "answer",
					},
				},
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:     "exercise",
						Aliases:  []string{"e"},
						Usage:    "Exercise number to answer",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "answer",
						Aliases: []string{"a"},
						Usage:   "Option key(s), comma separated",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
					},
				},
				Action: r.QuizAnswer,
			},
			{
				Name:   "reset",
				Usage:  "Reset exercises and score, keeping lesson progress",
				Action: r.QuizReset,
			},
			{
				Name:  "results",
				Usage: "Show the score summary for a finished run",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "record",
						Usage: "Save this result to the stats history",
					},
				},
				Action: r.QuizResults,
			},
		},
	}
}
