package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"tunetutor/internal/formatter"
)

// Stats prints the recorded quiz result history.
func (r *Runner) Stats(ctx context.Context, cmd *cli.Command) error {
	limit := int(cmd.Int("limit"))

	if err := r.ensureDB(); err != nil {
		return err
	}

	criteria := map[string]any{}
	if limit > 0 {
		criteria["limit"] = limit
	}

	results, err := r.results.List(criteria)
	if err != nil {
		return err
	}

	if len(results) == 0 {
		r.writePlain("No results recorded yet. Finish the quiz and run 'quiz results --record'.\n")
		return nil
	}

	r.writePlainHeader("Quiz History")
	r.writePlain("%s\n", formatter.ResultsTable(results))
	r.writePlain("%d result(s)\n", len(results))

	return nil
}

// statsCommand shows the quiz result history.
func statsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "Show recorded quiz results",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Maximum number of results to show",
				Value: 20,
			},
		},
		Action: r.Stats,
	}
}
