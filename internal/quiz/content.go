package quiz

import (
	"strings"

	"tunetutor/internal/models"
)

// Option is one selectable answer for an exercise.
type Option struct {
	Key  string
	Text string
}

// Exercise is a static exercise definition. Correct holds the option keys that
// make up the right answer; for single and select kinds it has exactly one
// entry. The discovery exercise has no options and no correct answer.
type Exercise struct {
	ID      int
	Kind    models.AnswerKind
	Prompt  string
	Options []Option
	Correct []string
}

// Lesson is a static lesson definition.
type Lesson struct {
	ID      int
	Title   string
	Summary string
}

var exercises = []Exercise{
	{
		ID:     1,
		Kind:   models.AnswerSingle,
		Prompt: "How many tracks make a playlist easy to maintain and enjoyable end to end?",
		Options: []Option{
			{Key: "a", Text: "10-15 tracks"},
			{Key: "b", Text: "30-50 tracks"},
			{Key: "c", Text: "100+ tracks"},
			{Key: "d", Text: "The count does not matter"},
		},
		Correct: []string{"b"},
	},
	{
		ID:     2,
		Kind:   models.AnswerMultiple,
		Prompt: "Which streaming features actually help you discover new music? (select all that apply)",
		Options: []Option{
			{Key: "a", Text: "Discover Weekly"},
			{Key: "b", Text: "Release Radar"},
			{Key: "c", Text: "Offline mode"},
			{Key: "d", Text: "Daily Mix"},
		},
		Correct: []string{"a", "b", "d"},
	},
	{
		ID:     3,
		Kind:   models.AnswerSelect,
		Prompt: "What is the best track ordering for a party playlist?",
		Options: []Option{
			{Key: "a", Text: "Alphabetical by artist"},
			{Key: "b", Text: "Slowest songs to fastest"},
			{Key: "c", Text: "Rising energy: warm-up, peak, wind-down"},
			{Key: "d", Text: "Random, no particular order"},
		},
		Correct: []string{"c"},
	},
	{
		ID:     models.DiscoveryExerciseID,
		Prompt: "Discover new artists to seed your next playlist.",
	},
}

var lessons = []Lesson{
	{
		ID:      1,
		Title:   "Playlist Fundamentals",
		Summary: "What makes a playlist work: theme, length, and a reason to exist.",
	},
	{
		ID:      2,
		Title:   "Digging for Tracks",
		Summary: "Using discovery features and related-artist trails to find material.",
	},
	{
		ID:      3,
		Title:   "Building the Flow",
		Summary: "Sequencing tracks so energy rises, peaks, and lands somewhere.",
	},
	{
		ID:      4,
		Title:   "Cover & Identity",
		Summary: "Naming, cover art, and keeping a playlist alive after you publish it.",
	},
}

// Exercises returns the static exercise definitions in id order.
func Exercises() []Exercise {
	return exercises
}

// ExerciseByID looks up an exercise definition.
func ExerciseByID(id int) (Exercise, bool) {
	for _, ex := range exercises {
		if ex.ID == id {
			return ex, true
		}
	}
	return Exercise{}, false
}

// Lessons returns the static lesson definitions in id order.
func Lessons() []Lesson {
	return lessons
}

// LessonByID looks up a lesson definition.
func LessonByID(id int) (Lesson, bool) {
	for _, l := range lessons {
		if l.ID == id {
			return l, true
		}
	}
	return Lesson{}, false
}

// CorrectText renders the exercise's correct answer as display text, joining
// multiple options with a comma.
func (e Exercise) CorrectText() string {
	texts := make([]string, 0, len(e.Correct))
	for _, key := range e.Correct {
		for _, opt := range e.Options {
			if opt.Key == key {
				texts = append(texts, opt.Text)
				break
			}
		}
	}
	return strings.Join(texts, ", ")
}

// Scored reports whether the exercise consumes attempts and counts toward the score.
func (e Exercise) Scored() bool {
	return len(e.Correct) > 0
}
