package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"

	"tunetutor/internal/models"
	"tunetutor/internal/quiz"
	"tunetutor/internal/repositories"
	"tunetutor/internal/shared"
	"tunetutor/internal/ui"
)

// resultRecorder adapts the result repository to the TUI's recorder interface.
type resultRecorder struct {
	results *repositories.ResultRepository
}

func (rr *resultRecorder) Record(summary quiz.Summary) error {
	return rr.results.Create(models.NewQuizResult(0, summary.Score, summary.Total, summary.Title))
}

// TUI launches the interactive tutorial.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	engine, tracker, err := r.loadQuiz()
	if err != nil {
		return err
	}

	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, err := shared.NewFileLogger("./tmp/tunetutor-tui.log")
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	r.SetLogger(fileLogger)

	discovery := r.discoveryEngine(engine)
	recorder := &resultRecorder{results: r.results}

	model := ui.NewModel(ctx, engine, tracker, discovery, r.session, recorder)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}

// ThemeShow prints the saved theme, or sets it when an argument is given.
func (r *Runner) Theme(ctx context.Context, cmd *cli.Command) error {
	name := cmd.StringArg("name")

	if err := r.ensureDB(); err != nil {
		return err
	}

	if name == "" {
		theme, err := r.session.Theme()
		if err != nil {
			return err
		}
		r.writePlain("%s\n", theme)
		return nil
	}

	if err := r.session.SetTheme(name); err != nil {
		return err
	}

	r.writePlain("Theme set to %s\n", name)
	return nil
}

// tuiCommand launches the interactive tutorial.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch the interactive tutorial",
		Action:  r.TUI,
	}
}

// themeCommand shows or sets the persisted theme preference.
func themeCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "theme",
		Usage: "Show or set the theme (light or dark)",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "name",
			},
		},
		Action: r.Theme,
	}
}
