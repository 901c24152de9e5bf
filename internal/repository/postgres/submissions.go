package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jafarshop/storefront/internal/domain"
)

type submissionRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewSubmissionRepository creates a new feedback submission repository
func NewSubmissionRepository(db *sql.DB, logger *zap.Logger) *submissionRepository {
	return &submissionRepository{
		db:     db,
		logger: logger,
	}
}

func (r *submissionRepository) Create(ctx context.Context, submission *domain.FormSubmission) error {
	if submission.ID == uuid.Nil {
		submission.ID = uuid.New()
	}
	if submission.CreatedAt.IsZero() {
		submission.CreatedAt = time.Now()
	}

	data, err := json.Marshal(submission.Data)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO feedback_submissions (id, data, created_at)
		VALUES ($1, $2, $3)
	`

	_, err = r.db.ExecContext(ctx, query, submission.ID, data, submission.CreatedAt)
	if err != nil {
		r.logger.Error("Failed to create submission", zap.Error(err))
		return err
	}

	return nil
}

func (r *submissionRepository) List(ctx context.Context) ([]domain.FormSubmission, error) {
	query := `
		SELECT id, data, created_at
		FROM feedback_submissions
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("Failed to query submissions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var submissions []domain.FormSubmission
	for rows.Next() {
		var submission domain.FormSubmission
		var data []byte

		if err := rows.Scan(&submission.ID, &data, &submission.CreatedAt); err != nil {
			r.logger.Error("Failed to scan submission row", zap.Error(err))
			return nil, err
		}
		if err := json.Unmarshal(data, &submission.Data); err != nil {
			r.logger.Error("Failed to decode submission data", zap.String("id", submission.ID.String()), zap.Error(err))
			return nil, err
		}

		submissions = append(submissions, submission)
	}

	return submissions, rows.Err()
}
