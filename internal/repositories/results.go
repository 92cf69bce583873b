package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"tunetutor/internal/models"
	"tunetutor/internal/shared"
)

// ResultRepository implements [models.Repository] for [models.QuizResult] persistence.
type ResultRepository struct {
	db *sql.DB
}

// NewResultRepository creates a new [ResultRepository] with the given database connection
func NewResultRepository(db *sql.DB) *ResultRepository {
	return &ResultRepository{db: db}
}

// Create inserts a new quiz result into the database with generated ID and sequence
func (r *ResultRepository) Create(result *models.QuizResult) error {
	sequence, err := NextSequence(r.db, "quiz_results")
	if err != nil {
		return fmt.Errorf("failed to generate sequence: %w", err)
	}

	id := shared.GenerateID()
	result.SetID(id)
	result.SetSequence(sequence)

	if err := result.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	query := `
		INSERT INTO quiz_results (id, sequence, score, total, percentage, title, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.Exec(query, id, sequence, result.Score(), result.Total(), result.Percentage(), result.Title(), result.CreatedAt(), result.UpdatedAt())
	if err != nil {
		return fmt.Errorf("failed to insert quiz result: %w", err)
	}

	return nil
}

// Get retrieves a quiz result by ID, excluding soft-deleted results
func (r *ResultRepository) Get(id string) (*models.QuizResult, error) {
	query := `
		SELECT id, sequence, score, total, percentage, title, created_at, updated_at, deleted_at
		FROM quiz_results
		WHERE id = ? AND deleted_at IS NULL
	`

	result, err := scanResult(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %s", shared.ErrResultNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query quiz result: %w", err)
	}

	return result, nil
}

// Update modifies an existing quiz result in the database
func (r *ResultRepository) Update(result *models.QuizResult) error {
	if err := result.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	now := time.Now()
	result.SetUpdatedAt(now)

	query := `
		UPDATE quiz_results
		SET score = ?, total = ?, percentage = ?, title = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL
	`

	res, err := r.db.Exec(query, result.Score(), result.Total(), result.Percentage(), result.Title(), now, result.ID())
	if err != nil {
		return fmt.Errorf("failed to update quiz result: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: %s", shared.ErrResultNotFound, result.ID())
	}

	return nil
}

// Delete soft-deletes a quiz result by ID
func (r *ResultRepository) Delete(id string) error {
	now := time.Now()

	query := `
		UPDATE quiz_results
		SET deleted_at = ?
		WHERE id = ? AND deleted_at IS NULL
	`

	res, err := r.db.Exec(query, now, id)
	if err != nil {
		return fmt.Errorf("failed to delete quiz result: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: %s", shared.ErrResultNotFound, id)
	}

	return nil
}

// List retrieves quiz results matching the given criteria, newest run first,
// excluding soft-deleted results. Supported criteria: "limit" (int).
func (r *ResultRepository) List(criteria map[string]any) ([]*models.QuizResult, error) {
	query := `
		SELECT id, sequence, score, total, percentage, title, created_at, updated_at, deleted_at
		FROM quiz_results
		WHERE deleted_at IS NULL
		ORDER BY sequence DESC
	`

	args := []any{}

	if limit, ok := criteria["limit"].(int); ok && limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query quiz results: %w", err)
	}
	defer rows.Close()

	var results []*models.QuizResult
	for rows.Next() {
		result, err := scanResult(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan quiz result: %w", err)
		}
		results = append(results, result)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return results, nil
}

// scanner is satisfied by both [sql.Row] and [sql.Rows].
type scanner interface {
	Scan(dest ...any) error
}

func scanResult(row scanner) (*models.QuizResult, error) {
	var (
		id         string
		sequence   int
		score      int
		total      int
		percentage int
		title      string
		createdAt  time.Time
		updatedAt  time.Time
		deletedAt  sql.NullTime
	)

	err := row.Scan(&id, &sequence, &score, &total, &percentage, &title, &createdAt, &updatedAt, &deletedAt)
	if err != nil {
		return nil, err
	}

	result := models.NewQuizResult(sequence, score, total, title)
	result.SetID(id)
	result.SetCreatedAt(createdAt)
	result.SetUpdatedAt(updatedAt)
	result.SetPercentage(percentage)
	if deletedAt.Valid {
		result.SetDeletedAt(&deletedAt.Time)
	}

	return result, nil
}
