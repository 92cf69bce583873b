package main

import (
	"bytes"
	"context"
	"database/sql"
	"os"
	"strings"
	"testing"

	"tunetutor/internal/models"
	"tunetutor/internal/quiz"
	"tunetutor/internal/shared"
	tu "tunetutor/internal/testing"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := shared.NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := shared.RunMigrations(db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	return db
}

func TestRunner(t *testing.T) {
	t.Run("NewRunner", func(t *testing.T) {
		t.Run("with all dependencies provided", func(t *testing.T) {
			config := shared.DefaultConfig()
			logger := shared.NewLogger(nil)
			output := &bytes.Buffer{}
			source := &tu.MockArtistSource{}

			runner := NewRunner(RunnerOpts{
				Config:     config,
				ConfigPath: "/test/path/config.toml",
				Logger:     logger,
				Output:     output,
				Discoverer: source,
				Lookup:     source,
			})

			if runner.config != config {
				t.Error("expected config to be set")
			}
			if runner.configPath != "/test/path/config.toml" {
				t.Errorf("expected configPath to be set, got %s", runner.configPath)
			}
			if runner.logger != logger {
				t.Error("expected logger to be set")
			}
			if runner.output != output {
				t.Error("expected output to be set")
			}
			if runner.discoverer == nil {
				t.Error("expected discoverer to be set")
			}
			if runner.lookup == nil {
				t.Error("expected lookup to be set")
			}
		})

		t.Run("with nil config uses defaults", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Config: nil})

			if runner.config == nil {
				t.Error("expected default config to be set")
			}
		})

		t.Run("with nil logger uses default", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Logger: nil})

			if runner.logger == nil {
				t.Error("expected default logger to be set")
			}
		})

		t.Run("with nil output uses stdout", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: nil})

			if runner.output != os.Stdout {
				t.Error("expected output to default to os.Stdout")
			}
		})

		t.Run("with DB wires repositories", func(t *testing.T) {
			db := setupTestDB(t)
			runner := NewRunner(RunnerOpts{DB: db})

			if runner.session == nil {
				t.Error("expected session store to be wired")
			}
			if runner.results == nil {
				t.Error("expected result repository to be wired")
			}
		})
	})

	t.Run("writeJSON", func(t *testing.T) {
		t.Run("writes formatted JSON successfully", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			data := map[string]string{"key": "value"}
			err := runner.writeJSON(data, true)

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			result := output.String()
			if !strings.Contains(result, `"key": "value"`) {
				t.Errorf("expected formatted JSON, got %s", result)
			}
			if !strings.HasSuffix(result, "\n") {
				t.Error("expected output to end with newline")
			}
		})

		t.Run("writes compact JSON successfully", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			data := map[string]string{"key": "value"}
			err := runner.writeJSON(data, false)

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			result := output.String()
			expected := `{"key":"value"}` + "\n"
			if result != expected {
				t.Errorf("expected %q, got %q", expected, result)
			}
		})

		t.Run("handles marshal error with non-serializable data", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			// channels cannot be marshaled to JSON
			data := make(chan int)
			err := runner.writeJSON(data, false)

			if err == nil {
				t.Fatal("expected error for non-serializable data")
			}
			if !strings.Contains(err.Error(), "failed to marshal JSON") {
				t.Errorf("expected marshal error, got %v", err)
			}
		})

		t.Run("handles write failure", func(t *testing.T) {
			failing := &tu.FWriter{}
			runner := NewRunner(RunnerOpts{Output: failing})

			data := map[string]string{"key": "value"}
			err := runner.writeJSON(data, false)

			if err == nil {
				t.Fatal("expected error from failing writer")
			}
			if !strings.Contains(err.Error(), "failed to write output") {
				t.Errorf("expected write error, got %v", err)
			}
		})

		t.Run("handles newline write failure", func(t *testing.T) {
			data := map[string]string{"key": "value"}
			limitedWriter := tu.NewLimitedWriter(1, 0, &bytes.Buffer{})
			runner := NewRunner(RunnerOpts{Output: &limitedWriter})

			err := runner.writeJSON(data, false)

			if err == nil {
				t.Fatal("expected error writing newline")
			}
			if !strings.Contains(err.Error(), "failed to write newline") {
				t.Errorf("expected newline write error, got %v", err)
			}
		})
	})

	t.Run("writePlain", func(t *testing.T) {
		t.Run("writes plain text successfully", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			err := runner.writePlain("hello %s", "world")

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			result := output.String()
			if result != "hello world" {
				t.Errorf("expected 'hello world', got %q", result)
			}
		})

		t.Run("handles write failure", func(t *testing.T) {
			failing := &tu.FWriter{}
			runner := NewRunner(RunnerOpts{Output: failing})

			err := runner.writePlain("test")

			if err == nil {
				t.Fatal("expected error from failing writer")
			}
			if !strings.Contains(err.Error(), "failed to write output") {
				t.Errorf("expected write error, got %v", err)
			}
		})
	})

	t.Run("register", func(t *testing.T) {
		runner := NewRunner(RunnerOpts{})
		commands := runner.register()

		if len(commands) == 0 {
			t.Error("expected at least one command to be registered")
		}

		for i, cmd := range commands {
			if cmd == nil {
				t.Errorf("command at index %d is nil", i)
			}
		}
	})

	t.Run("loadQuiz", func(t *testing.T) {
		t.Run("builds engine and tracker over persisted session", func(t *testing.T) {
			db := setupTestDB(t)
			runner := NewRunner(RunnerOpts{DB: db, Output: &bytes.Buffer{}})

			engine, tracker, err := runner.loadQuiz()
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if engine == nil || tracker == nil {
				t.Fatal("expected engine and tracker")
			}

			outcome, err := engine.SubmitAnswer(1, models.SingleAnswer("b"))
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if outcome.Kind != models.OutcomeCorrect {
				t.Errorf("expected correct outcome, got %v", outcome.Kind)
			}

			// a fresh load sees the persisted submission
			engine2, _, err := runner.loadQuiz()
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if engine2.State().Score != 1 {
				t.Errorf("expected persisted score 1, got %d", engine2.State().Score)
			}
		})
	})

	t.Run("discoveryEngine", func(t *testing.T) {
		t.Run("completes the discovery exercise", func(t *testing.T) {
			db := setupTestDB(t)
			source := &tu.MockArtistSource{}
			runner := NewRunner(RunnerOpts{DB: db, Output: &bytes.Buffer{}, Discoverer: source, Lookup: source})

			engine, _, err := runner.loadQuiz()
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			discovery := runner.discoveryEngine(engine)
			result, err := discovery.Discover(context.Background(), nil)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if len(result.Cards) == 0 {
				t.Error("expected discovered artists")
			}

			if !engine.State().Exercises[models.DiscoveryExerciseID].Completed {
				t.Error("expected discovery exercise to be completed")
			}
		})
	})

	t.Run("resultRecorder", func(t *testing.T) {
		t.Run("records a summary row", func(t *testing.T) {
			db := setupTestDB(t)
			runner := NewRunner(RunnerOpts{DB: db, Output: &bytes.Buffer{}})

			recorder := &resultRecorder{results: runner.results}
			summary := quiz.Summary{Score: 3, Total: 3, Percentage: 100, Title: "Playlist Master!"}

			if err := recorder.Record(summary); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			results, err := runner.results.List(nil)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if len(results) != 1 {
				t.Fatalf("expected 1 result, got %d", len(results))
			}
			if results[0].Title() != "Playlist Master!" {
				t.Errorf("expected recorded title, got %s", results[0].Title())
			}
		})
	})
}
