package models

import (
	"fmt"
	"math"
	"time"
)

// QuizResult records a completed quiz run: the score achieved, the exercise
// total, and the tier title shown to the user. Implements [Model].
type QuizResult struct {
	id         string
	sequence   int
	score      int
	total      int
	percentage int
	title      string
	createdAt  time.Time
	updatedAt  time.Time
	deletedAt  *time.Time
}

// NewQuizResult creates a quiz result snapshot. The percentage is derived from
// score and total with rounding, matching the score summary shown to the user;
// the id is assigned by the repository on Create.
func NewQuizResult(sequence, score, total int, title string) *QuizResult {
	now := time.Now()
	percentage := 0
	if total > 0 {
		percentage = int(math.Round(float64(score) * 100 / float64(total)))
	}
	return &QuizResult{
		sequence:   sequence,
		score:      score,
		total:      total,
		percentage: percentage,
		title:      title,
		createdAt:  now,
		updatedAt:  now,
	}
}

func (r *QuizResult) ID() string            { return r.id }
func (r *QuizResult) Sequence() int         { return r.sequence }
func (r *QuizResult) Score() int            { return r.score }
func (r *QuizResult) Total() int            { return r.total }
func (r *QuizResult) Percentage() int       { return r.percentage }
func (r *QuizResult) Title() string         { return r.title }
func (r *QuizResult) CreatedAt() time.Time  { return r.createdAt }
func (r *QuizResult) UpdatedAt() time.Time  { return r.updatedAt }
func (r *QuizResult) DeletedAt() *time.Time { return r.deletedAt }

func (r *QuizResult) SetID(id string)             { r.id = id }
func (r *QuizResult) SetSequence(seq int)         { r.sequence = seq }
func (r *QuizResult) SetCreatedAt(t time.Time)    { r.createdAt = t }
func (r *QuizResult) SetUpdatedAt(t time.Time)    { r.updatedAt = t }
func (r *QuizResult) SetDeletedAt(t *time.Time)   { r.deletedAt = t }
func (r *QuizResult) SetPercentage(percent int)   { r.percentage = percent }
func (r *QuizResult) SetTitle(title string)       { r.title = title }

// Validate checks the result's data before persistence.
func (r *QuizResult) Validate() error {
	if r.score < 0 {
		return fmt.Errorf("score must be non-negative, got %d", r.score)
	}
	if r.total <= 0 {
		return fmt.Errorf("total must be positive, got %d", r.total)
	}
	if r.score > r.total {
		return fmt.Errorf("score %d exceeds total %d", r.score, r.total)
	}
	if r.title == "" {
		return fmt.Errorf("title is required")
	}
	return nil
}
