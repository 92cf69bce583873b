package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"tunetutor/internal/models"
	"tunetutor/internal/quiz"
	"tunetutor/internal/tasks"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	IntroView ViewState = iota
	LessonsView
	ExercisesView
	ResultsView
)

// ThemeStore persists the theme preference. Satisfied by repositories.SessionStore.
type ThemeStore interface {
	Theme() (string, error)
	SetTheme(theme string) error
}

// ResultRecorder persists a finished quiz run exactly once per completion.
type ResultRecorder interface {
	Record(summary quiz.Summary) error
}

// Model represents the TUI application state.
type Model struct {
	ctx       context.Context
	view      ViewState
	engine    *quiz.Engine
	tracker   *quiz.Tracker
	discovery *tasks.DiscoveryEngine
	themes    ThemeStore
	recorder  ResultRecorder

	width  int
	height int
	theme  string
	styles *Palette
	help   help.Model
	keys   keyMap

	exerciseID int
	cursor     int
	selections map[int]map[string]bool
	feedback   map[int]string

	lessonCursor int

	discovering  bool
	progressChan chan tasks.ProgressUpdate
	progress     tasks.ProgressUpdate
	discResult   *tasks.DiscoveryRunResult
	discErr      error
	artistList   list.Model
	haveArtists  bool

	recorded bool
	status   string
}

// NewModel creates a new TUI model with the provided dependencies.
func NewModel(ctx context.Context, engine *quiz.Engine, tracker *quiz.Tracker, discovery *tasks.DiscoveryEngine, themes ThemeStore, recorder ResultRecorder) *Model {
	theme := "light"
	if themes != nil {
		if saved, err := themes.Theme(); err == nil {
			theme = saved
		}
	}

	selections := make(map[int]map[string]bool)
	for _, ex := range quiz.Exercises() {
		selections[ex.ID] = make(map[string]bool)
	}

	return &Model{
		ctx:        ctx,
		view:       IntroView,
		engine:     engine,
		tracker:    tracker,
		discovery:  discovery,
		themes:     themes,
		recorder:   recorder,
		theme:      theme,
		styles:     paletteFor(theme),
		help:       help.New(),
		keys:       newKeyMap(),
		exerciseID: 1,
		selections: selections,
		feedback:   make(map[int]string),
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.haveArtists {
			m.artistList.SetSize(msg.Width-4, msg.Height-10)
		}
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.quit) {
			return m, tea.Quit
		}
		if key.Matches(msg, m.keys.theme) {
			return m, m.toggleTheme()
		}
		if key.Matches(msg, m.keys.nextView) {
			return m.switchView((m.view + 1) % 4)
		}
		if key.Matches(msg, m.keys.prevView) {
			return m.switchView((m.view + 3) % 4)
		}

		switch m.view {
		case LessonsView:
			return m.handleLessonKeys(msg)
		case ExercisesView:
			return m.handleExerciseKeys(msg)
		case ResultsView:
			return m.handleResultKeys(msg)
		}
		return m, nil

	case discoveryProgressMsg:
		m.progress = tasks.ProgressUpdate(msg)
		return m, m.waitForProgress()

	case discoveryCompleteMsg:
		m.discovering = false
		m.progressChan = nil
		if msg.err != nil {
			m.feedback[models.DiscoveryExerciseID] = fmt.Sprintf("Discovery finished with a problem: %v", msg.err)
		}
		if msg.result != nil {
			items := make([]list.Item, len(msg.result.Cards))
			for i, card := range msg.result.Cards {
				items[i] = artistItem{card: card}
			}
			m.artistList = list.New(items, list.NewDefaultDelegate(), 0, 0)
			m.artistList.Title = "Discovered Artists"
			if msg.result.Fallback {
				m.artistList.Title = "Discovered Artists (offline roster)"
			}
			m.artistList.SetSize(m.width-4, m.height-10)
			m.haveArtists = true
			if msg.err == nil {
				m.feedback[models.DiscoveryExerciseID] = fmt.Sprintf("Found %d artists to explore.", len(msg.result.Cards))
			}
		}
		return m, nil

	case themeSavedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Could not save theme: %v", msg.err)
			return m, nil
		}
		m.theme = msg.theme
		m.styles = paletteFor(msg.theme)
		m.status = fmt.Sprintf("Theme: %s", msg.theme)
		return m, nil
	}

	if m.haveArtists && m.view == ResultsView {
		var cmd tea.Cmd
		m.artistList, cmd = m.artistList.Update(msg)
		return m, cmd
	}
	return m, nil
}

// switchView navigates between sections, recording the quiz result when the
// results section is entered with every exercise complete.
func (m *Model) switchView(view ViewState) (tea.Model, tea.Cmd) {
	m.view = view
	m.status = ""

	if view == ResultsView && !m.recorded && m.recorder != nil && m.engine.AllCompleted() {
		if err := m.recorder.Record(m.engine.Summary()); err != nil {
			m.status = fmt.Sprintf("Could not record result: %v", err)
		} else {
			m.recorded = true
		}
	}

	return m, nil
}

func (m *Model) handleLessonKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	lessons := quiz.Lessons()

	switch {
	case key.Matches(msg, m.keys.up):
		if m.lessonCursor > 0 {
			m.lessonCursor--
		}
	case key.Matches(msg, m.keys.down):
		if m.lessonCursor < len(lessons)-1 {
			m.lessonCursor++
		}
	case key.Matches(msg, m.keys.enter), key.Matches(msg, m.keys.toggle):
		if err := m.tracker.ToggleExpanded(lessons[m.lessonCursor].ID); err != nil {
			m.status = fmt.Sprintf("Save failed: %v", err)
		}
	case key.Matches(msg, m.keys.practice):
		if err := m.tracker.MarkPracticed(lessons[m.lessonCursor].ID); err != nil {
			m.status = fmt.Sprintf("Save failed: %v", err)
		}
	case key.Matches(msg, m.keys.complete):
		if err := m.tracker.MarkCompleted(lessons[m.lessonCursor].ID); err != nil {
			m.status = fmt.Sprintf("Save failed: %v", err)
		}
	}

	return m, nil
}

func (m *Model) handleExerciseKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	def, _ := quiz.ExerciseByID(m.exerciseID)

	switch {
	case len(msg.String()) == 1 && msg.String() >= "1" && msg.String() <= "4":
		m.exerciseID = int(msg.String()[0] - '0')
		m.cursor = 0
		return m, nil

	case key.Matches(msg, m.keys.up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.down):
		if m.cursor < len(def.Options)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.toggle):
		if !def.Scored() || len(def.Options) == 0 {
			return m, nil
		}
		selected := m.selections[m.exerciseID]
		option := def.Options[m.cursor].Key
		if def.Kind == models.AnswerMultiple {
			selected[option] = !selected[option]
		} else {
			for k := range selected {
				delete(selected, k)
			}
			selected[option] = true
		}
		return m, nil

	case key.Matches(msg, m.keys.enter):
		if !def.Scored() {
			return m, m.startDiscovery()
		}
		return m.submitCurrent(def)

	case key.Matches(msg, m.keys.discover):
		return m, m.startDiscovery()

	case key.Matches(msg, m.keys.reset):
		if err := m.engine.Reset(); err != nil {
			m.status = fmt.Sprintf("Reset failed: %v", err)
		}
		for id := range m.selections {
			m.selections[id] = make(map[string]bool)
		}
		m.feedback = make(map[int]string)
		m.recorded = false
		return m, nil
	}

	return m, nil
}

func (m *Model) handleResultKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.reset) {
		if err := m.engine.Reset(); err != nil {
			m.status = fmt.Sprintf("Reset failed: %v", err)
		}
		for id := range m.selections {
			m.selections[id] = make(map[string]bool)
		}
		m.feedback = make(map[int]string)
		m.recorded = false
		return m.switchView(ExercisesView)
	}

	if m.haveArtists {
		var cmd tea.Cmd
		m.artistList, cmd = m.artistList.Update(msg)
		return m, cmd
	}
	return m, nil
}

// submitCurrent runs the highlighted selection through the engine and turns
// the outcome into a feedback line.
func (m *Model) submitCurrent(def quiz.Exercise) (tea.Model, tea.Cmd) {
	selected := m.selections[m.exerciseID]
	values := make([]string, 0, len(selected))
	for _, opt := range def.Options {
		if selected[opt.Key] {
			values = append(values, opt.Key)
		}
	}

	var answer models.Answer
	if def.Kind == models.AnswerMultiple {
		answer = models.MultipleAnswer(values...)
	} else if len(values) > 0 {
		answer = models.SingleAnswer(values[0])
	}

	outcome, err := m.engine.SubmitAnswer(m.exerciseID, answer)
	if err != nil {
		m.status = fmt.Sprintf("Save failed: %v", err)
	}

	switch outcome.Kind {
	case models.OutcomeNeedsSelection:
		m.feedback[m.exerciseID] = "Select an answer before submitting."
	case models.OutcomeCorrect:
		m.feedback[m.exerciseID] = "Correct! Nice ear."
	case models.OutcomeIncorrectRetry:
		m.feedback[m.exerciseID] = fmt.Sprintf("Incorrect. Try again! %d attempt(s) left.", outcome.AttemptsLeft)
	case models.OutcomeIncorrectFinal:
		m.feedback[m.exerciseID] = fmt.Sprintf("Out of attempts. The correct answer was: %s", outcome.CorrectText)
	case models.OutcomeAlreadyCompleted:
		m.feedback[m.exerciseID] = "This exercise is already completed."
	}

	return m, nil
}

// startDiscovery kicks off a discovery run unless one is already in flight.
func (m *Model) startDiscovery() tea.Cmd {
	if m.discovering || m.discovery == nil {
		return nil
	}

	m.discovering = true
	m.feedback[models.DiscoveryExerciseID] = ""
	m.progressChan = make(chan tasks.ProgressUpdate, 50)

	go func() {
		result, err := m.discovery.Discover(m.ctx, m.progressChan)
		m.discResult = result
		m.discErr = err
		close(m.progressChan)
	}()

	return m.waitForProgress()
}

func (m *Model) waitForProgress() tea.Cmd {
	return func() tea.Msg {
		if m.progressChan == nil {
			return discoveryCompleteMsg{result: m.discResult, err: m.discErr}
		}

		update, ok := <-m.progressChan
		if !ok {
			return discoveryCompleteMsg{result: m.discResult, err: m.discErr}
		}
		return discoveryProgressMsg(update)
	}
}

func (m *Model) toggleTheme() tea.Cmd {
	next := "dark"
	if m.theme == "dark" {
		next = "light"
	}

	return func() tea.Msg {
		if m.themes == nil {
			return themeSavedMsg{theme: next}
		}
		return themeSavedMsg{theme: next, err: m.themes.SetTheme(next)}
	}
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	var body string
	switch m.view {
	case IntroView:
		body = m.renderIntro()
	case LessonsView:
		body = m.renderLessons()
	case ExercisesView:
		body = m.renderExercises()
	case ResultsView:
		body = m.renderResults()
	}

	status := ""
	if m.status != "" {
		status = "\n" + m.styles.warn.Render(m.status)
	}

	return fmt.Sprintf("%s%s\n\n%s", body, status, m.help.View(m.keys))
}

func (m *Model) renderIntro() string {
	title := m.styles.title.Render("tunetutor — the art of the playlist")

	state := m.engine.State()
	total := len(state.Exercises)
	completed := state.CompletedExercises()
	percent := 0
	if total > 0 {
		percent = completed * 100 / total
	}

	intro := "Learn how to build playlists that actually get listened to:\n" +
		"pick a theme, dig for tracks, sequence the energy, and ship it.\n\n" +
		"Work through the lessons, then prove it in the exercises."

	bar := fmt.Sprintf("%s %d%% (%d/%d exercises)", m.renderBar(percent, 30), percent, completed, total)

	return fmt.Sprintf("%s\n%s\n\n%s", title, intro, bar)
}

func (m *Model) renderLessons() string {
	title := m.styles.title.Render("Lessons")

	var b strings.Builder
	state := m.engine.State()
	for i, lesson := range quiz.Lessons() {
		ls := state.Lessons[lesson.ID]

		cursor := "  "
		if i == m.lessonCursor {
			cursor = m.styles.focused.Render("> ")
		}

		check := " "
		if ls.Completed {
			check = m.styles.ok.Render("✓")
		}

		b.WriteString(fmt.Sprintf("%s[%s] %s  %s %d%%\n", cursor, check, lesson.Title, m.renderBar(ls.Progress, 16), ls.Progress))

		if ls.Expanded {
			b.WriteString(m.styles.subtle.Render(fmt.Sprintf("      %s\n", lesson.Summary)))
		}
	}

	return fmt.Sprintf("%s\n%s", title, b.String())
}

func (m *Model) renderExercises() string {
	def, _ := quiz.ExerciseByID(m.exerciseID)
	state := m.engine.State().Exercises[m.exerciseID]

	title := m.styles.title.Render(fmt.Sprintf("Exercise %d of %d", m.exerciseID, len(quiz.Exercises())))

	var b strings.Builder
	b.WriteString(def.Prompt + "\n\n")

	if def.Scored() {
		selected := m.selections[m.exerciseID]
		for i, opt := range def.Options {
			cursor := "  "
			if i == m.cursor {
				cursor = m.styles.focused.Render("> ")
			}
			mark := "[ ]"
			if selected[opt.Key] {
				mark = "[x]"
			}
			b.WriteString(fmt.Sprintf("%s%s %s) %s\n", cursor, mark, opt.Key, opt.Text))
		}

		if state.Completed {
			if state.Correct {
				b.WriteString("\n" + m.styles.ok.Render("Completed — correct"))
			} else {
				b.WriteString("\n" + m.styles.warn.Render("Completed — out of attempts"))
			}
		} else {
			b.WriteString(fmt.Sprintf("\nAttempts remaining: %d", state.AttemptsLeft()))
		}
	} else {
		if m.discovering {
			b.WriteString(fmt.Sprintf("%s\n", m.progress.Message))
		} else if state.Completed {
			b.WriteString(m.styles.ok.Render("Completed — artists discovered") + "\n")
		} else {
			b.WriteString("Press d (or enter) to search for artists.\n")
		}
	}

	if fb := m.feedback[m.exerciseID]; fb != "" {
		b.WriteString("\n" + fb)
	}

	return fmt.Sprintf("%s\n%s", title, b.String())
}

func (m *Model) renderResults() string {
	if !m.engine.AllCompleted() {
		state := m.engine.State()
		return fmt.Sprintf("%s\n%d of %d exercises completed so far. Finish them all to see your result.",
			m.styles.title.Render("Results"), state.CompletedExercises(), len(state.Exercises))
	}

	summary := m.engine.Summary()
	title := m.styles.title.Render(summary.Title)
	score := fmt.Sprintf("Score: %d/%d (%d%%)", summary.Score, summary.Total, summary.Percentage)

	body := fmt.Sprintf("%s\n%s\n\n%s", title, m.styles.ok.Render(score), summary.Detail)

	if m.haveArtists {
		body = fmt.Sprintf("%s\n\n%s", body, m.artistList.View())
	}

	return body
}

// renderBar draws a fixed-width progress bar.
func (m *Model) renderBar(percent, width int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := percent * width / 100
	return m.styles.ok.Render(strings.Repeat("█", filled)) + m.styles.subtle.Render(strings.Repeat("░", width-filled))
}
