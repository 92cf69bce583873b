package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"tunetutor/internal/formatter"
	"tunetutor/internal/models"
	"tunetutor/internal/services"
	"tunetutor/internal/shared"
	"tunetutor/internal/tasks"
)

// ArtistsDiscover runs the discovery pipeline and prints the result set.
func (r *Runner) ArtistsDiscover(ctx context.Context, cmd *cli.Command) error {
	useJSON := cmd.Bool("json")
	pretty := cmd.Bool("pretty")
	export := cmd.String("export")
	outputDir := cmd.String("output")

	if r.discoverer == nil {
		return fmt.Errorf("%w: artist discovery not initialized", shared.ErrServiceUnavailable)
	}

	engine, _, err := r.loadQuiz()
	if err != nil {
		return err
	}

	r.logger.Info("starting artist discovery")
	if !useJSON {
		r.writePlain("Searching for artists...\n\n")
	}

	progressCh := make(chan tasks.ProgressUpdate, 50)
	go func() {
		for update := range progressCh {
			if useJSON {
				continue
			}
			switch update.Phase {
			case tasks.QueryArtists:
				r.writePlain("🔍 %s\n", update.Message)
			case tasks.ResolveImages:
				r.writePlain("   %s\n", update.Message)
			case tasks.Finalize:
				r.writePlain("✓ %s\n", update.Message)
			}
		}
	}()

	discovery := r.discoveryEngine(engine)
	result, err := discovery.Discover(ctx, progressCh)
	close(progressCh)

	if err != nil {
		return err
	}

	records := make([]models.ArtistRecord, len(result.Cards))
	for i, card := range result.Cards {
		records[i] = card.Record
	}

	if useJSON {
		return r.writeJSON(records, pretty)
	}

	r.writePlain("\n%s\n", formatter.ArtistTable(records))
	if result.Fallback {
		r.writePlain("Search was unavailable, showing the built-in roster.\n")
	}

	if export != "" {
		path, err := formatter.WriteExport(records, export, outputDir)
		if err != nil {
			return err
		}
		r.writePlain("Exported to %s\n", path)
	}

	return nil
}

// ArtistsLookup resolves one artist profile by name.
func (r *Runner) ArtistsLookup(ctx context.Context, cmd *cli.Command) error {
	useJSON := cmd.Bool("json")
	pretty := cmd.Bool("pretty")

	record, err := r.lookupArg(ctx, cmd)
	if err != nil {
		return err
	}

	if useJSON {
		return r.writeJSON(record, pretty)
	}

	r.writePlainHeader(record.Name)
	if record.Genre != "" {
		r.writePlain("Genre: %s\n", record.Genre)
	}
	if record.ImageURL != "" {
		r.writePlain("Image: %s\n", record.ImageURL)
	}
	if record.ProfileURL != "" {
		r.writePlain("Profile: %s\n", record.ProfileURL)
	}

	return nil
}

// ArtistsOpen opens an artist's MusicBrainz page in the browser.
func (r *Runner) ArtistsOpen(ctx context.Context, cmd *cli.Command) error {
	id := cmd.StringArg("id")
	if id == "" {
		return fmt.Errorf("%w: artist id", shared.ErrMissingArgument)
	}

	url := services.ProfileURL(id)

	r.logger.Info("opening artist profile", "id", id, "url", url)
	if err := shared.OpenBrowser(url); err != nil {
		return fmt.Errorf("failed to open browser: %w", err)
	}

	r.writePlain("Opened %s\n", url)
	return nil
}

// lookupArg resolves the name argument through the lookup service.
func (r *Runner) lookupArg(ctx context.Context, cmd *cli.Command) (*models.ArtistRecord, error) {
	name := cmd.StringArg("name")
	if name == "" {
		return nil, fmt.Errorf("%w: artist name", shared.ErrMissingArgument)
	}

	if r.lookup == nil {
		return nil, fmt.Errorf("%w: artist lookup not initialized", shared.ErrServiceUnavailable)
	}

	record, err := r.lookup.LookupArtist(ctx, name)
	if err != nil {
		return nil, err
	}

	return record, nil
}

// artistsCommand handles artist discovery and lookup operations.
func artistsCommand(r *Runner) *cli.Command {
	nameArg := func() []cli.Argument {
		return []cli.Argument{
			&cli.StringArg{
				Name: "name",
			},
		}
	}

	return &cli.Command{
		Name:  "artists",
		Usage: "Artist discovery and lookup",
		Commands: []*cli.Command{
			{
				Name:  "discover",
				Usage: "Discover artists to seed your next playlist",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
					},
					&cli.StringFlag{
						Name:  "export",
						Usage: "Export format (csv, md, txt, json)",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output directory for exports",
					},
				},
				Action: r.ArtistsDiscover,
			},
			{
				Name:      "lookup",
				Usage:     "Look up an artist profile by name",
				Arguments: nameArg(),
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
						Value: true,
					},
				},
				Action: r.ArtistsLookup,
			},
			{
				Name:  "open",
				Usage: "Open an artist's MusicBrainz page in the browser",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "id",
					},
				},
				Action: r.ArtistsOpen,
			},
		},
	}
}
