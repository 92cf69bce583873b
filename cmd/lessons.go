package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/urfave/cli/v3"

	"tunetutor/internal/quiz"
	"tunetutor/internal/shared"
)

// LessonsList prints every lesson with its progress.
func (r *Runner) LessonsList(ctx context.Context, cmd *cli.Command) error {
	engine, _, err := r.loadQuiz()
	if err != nil {
		return err
	}

	state := engine.State()

	r.writePlainHeader("Lessons")
	for _, lesson := range quiz.Lessons() {
		ls := state.Lessons[lesson.ID]

		check := " "
		if ls.Completed {
			check = "✓"
		}

		r.writePlain("%d. [%s] %s (%d%%)\n", lesson.ID, check, lesson.Title, ls.Progress)
	}
	r.writePlain("\nUse 'lessons show <id>' to read a lesson.\n")

	return nil
}

// LessonsShow prints a lesson, toggling its expansion and crediting the first view.
func (r *Runner) LessonsShow(ctx context.Context, cmd *cli.Command) error {
	lesson, tracker, err := r.lessonArg(cmd)
	if err != nil {
		return err
	}

	r.writePlainHeader(lesson.Title)
	r.writePlain("%s\n", lesson.Summary)

	return tracker.ToggleExpanded(lesson.ID)
}

// LessonsPractice marks a lesson as practiced.
func (r *Runner) LessonsPractice(ctx context.Context, cmd *cli.Command) error {
	lesson, tracker, err := r.lessonArg(cmd)
	if err != nil {
		return err
	}

	if err := tracker.MarkPracticed(lesson.ID); err != nil {
		return err
	}

	r.writePlain("Practiced: %s\n", lesson.Title)
	return nil
}

// LessonsComplete marks a lesson as completed.
func (r *Runner) LessonsComplete(ctx context.Context, cmd *cli.Command) error {
	lesson, tracker, err := r.lessonArg(cmd)
	if err != nil {
		return err
	}

	if err := tracker.MarkCompleted(lesson.ID); err != nil {
		return err
	}

	r.writePlain("✓ Completed: %s\n", lesson.Title)
	return nil
}

// lessonArg resolves the lesson id argument and loads the tracker.
func (r *Runner) lessonArg(cmd *cli.Command) (quiz.Lesson, *quiz.Tracker, error) {
	raw := cmd.StringArg("id")
	if raw == "" {
		return quiz.Lesson{}, nil, fmt.Errorf("%w: lesson id", shared.ErrMissingArgument)
	}

	id, err := strconv.Atoi(raw)
	if err != nil {
		return quiz.Lesson{}, nil, fmt.Errorf("%w: lesson id %q", shared.ErrInvalidArgument, raw)
	}

	lesson, ok := quiz.LessonByID(id)
	if !ok {
		return quiz.Lesson{}, nil, fmt.Errorf("%w: lesson %d", shared.ErrUnknownLesson, id)
	}

	_, tracker, err := r.loadQuiz()
	if err != nil {
		return quiz.Lesson{}, nil, err
	}

	return lesson, tracker, nil
}

// lessonsCommand handles lesson operations.
func lessonsCommand(r *Runner) *cli.Command {
	idArg := func() []cli.Argument {
		return []cli.Argument{
			&cli.StringArg{
				Name: "id",
			},
		}
	}

	return &cli.Command{
		Name:  "lessons",
		Usage: "Lesson operations",
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List lessons and progress",
				Action: r.LessonsList,
			},
			{
				Name:      "show",
				Usage:     "Read a lesson",
				Arguments: idArg(),
				Action:    r.LessonsShow,
			},
			{
				Name:      "practice",
				Usage:     "Mark a lesson as practiced",
				Arguments: idArg(),
				Action:    r.LessonsPractice,
			},
			{
				Name:      "complete",
				Usage:     "Mark a lesson as completed",
				Arguments: idArg(),
				Action:    r.LessonsComplete,
			},
		},
	}
}
