package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/career-advisor/internal/types"
)

// SaveResumeAnalysis stores an analysis for a user and returns its ID.
func (db *DB) SaveResumeAnalysis(ctx context.Context, userID uuid.UUID, result *types.ResumeAnalysis) (uuid.UUID, error) {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal resume analysis: %w", err)
	}

	id := uuid.New()
	_, err = db.pool.Exec(ctx,
		`INSERT INTO resume_analyses (id, user_id, result) VALUES ($1, $2, $3)`,
		id, userID, resultJSON,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save resume analysis: %w", err)
	}
	return id, nil
}

// CountResumeAnalyses returns how many analyses a user has stored.
func (db *DB) CountResumeAnalyses(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := db.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM resume_analyses WHERE user_id = $1`,
		userID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count resume analyses: %w", err)
	}
	return count, nil
}

// ListResumeAnalyses returns a user's most recent analyses, newest first.
func (db *DB) ListResumeAnalyses(ctx context.Context, userID uuid.UUID, limit int) ([]ResumeAnalysisRecord, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, result, created_at
		 FROM resume_analyses
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list resume analyses: %w", err)
	}
	defer rows.Close()

	records := []ResumeAnalysisRecord{}
	for rows.Next() {
		var rec ResumeAnalysisRecord
		var resultJSON []byte
		if err := rows.Scan(&rec.ID, &rec.UserID, &resultJSON, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan resume analysis: %w", err)
		}
		if err := json.Unmarshal(resultJSON, &rec.Result); err != nil {
			return nil, fmt.Errorf("failed to decode resume analysis %s: %w", rec.ID, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate resume analyses: %w", err)
	}
	return records, nil
}
