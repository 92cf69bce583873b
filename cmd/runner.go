package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"

	"tunetutor/internal/quiz"
	"tunetutor/internal/repositories"
	"tunetutor/internal/services"
	"tunetutor/internal/shared"
	"tunetutor/internal/tasks"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config     *shared.Config
	configPath string
	discoverer services.ArtistDiscoverer
	lookup     services.ArtistLookup
	logger     *log.Logger
	output     io.Writer

	db      *sql.DB
	session *repositories.SessionStore
	results *repositories.ResultRepository
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config     *shared.Config
	ConfigPath string
	Discoverer services.ArtistDiscoverer
	Lookup     services.ArtistLookup
	Logger     *log.Logger
	Output     io.Writer
	DB         *sql.DB
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	r := &Runner{
		config:     opts.Config,
		configPath: opts.ConfigPath,
		discoverer: opts.Discoverer,
		lookup:     opts.Lookup,
		logger:     opts.Logger,
		output:     opts.Output,
	}

	if opts.DB != nil {
		r.attachDB(opts.DB)
	}

	return r
}

// SetLogger swaps the runner's logger, used when the TUI redirects logs to a file.
func (r *Runner) SetLogger(l *log.Logger) {
	r.logger = l
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		setupCommand, quizCommand, lessonsCommand, artistsCommand, statsCommand, themeCommand, tuiCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// ensureDB lazily opens the database, runs migrations, and wires the repositories.
func (r *Runner) ensureDB() error {
	if r.db != nil {
		return nil
	}

	db, err := shared.NewDatabase(r.config.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	shared.ConfigureDatabase(db, r.config.Database.MaxOpenConns, r.config.Database.MaxIdleConns)

	if err := shared.RunMigrations(db); err != nil {
		db.Close()
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	r.attachDB(db)
	return nil
}

func (r *Runner) attachDB(db *sql.DB) {
	r.db = db
	states := repositories.NewStateRepository(db)
	r.session = repositories.NewSessionStore(states)
	r.results = repositories.NewResultRepository(db)
}

// Close releases the database handle if one was opened.
func (r *Runner) Close() error {
	if r.db == nil {
		return nil
	}
	return r.db.Close()
}

// loadQuiz loads the persisted session and builds the exercise engine and
// lesson tracker on top of it. Both share the same state and store.
func (r *Runner) loadQuiz() (*quiz.Engine, *quiz.Tracker, error) {
	if err := r.ensureDB(); err != nil {
		return nil, nil, err
	}

	state, err := r.session.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load session: %w", err)
	}

	engine := quiz.NewEngine(state, r.session, r.logger)
	tracker := quiz.NewTracker(state, r.session, r.logger)
	return engine, tracker, nil
}

// discoveryEngine builds the artist discovery pipeline, marking the discovery
// exercise complete through the provided completer.
func (r *Runner) discoveryEngine(completer tasks.DiscoveryCompleter) *tasks.DiscoveryEngine {
	return tasks.NewDiscoveryEngine(r.discoverer, r.lookup, completer, 0, r.logger)
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	text := "\n" + fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainHeader(title string) {
	r.writePlain("═══════════════════════════════════════\n")
	r.writePlain("%v\n", title)
	r.writePlain("═══════════════════════════════════════\n")
}
