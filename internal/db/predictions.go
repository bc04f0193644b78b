package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/career-advisor/internal/types"
)

// SavePrediction stores a prediction and its input for a user and returns its ID.
func (db *DB) SavePrediction(ctx context.Context, userID uuid.UUID, input types.PredictionInput, result *types.PredictionResult) (uuid.UUID, error) {
	inputJSON, err := json.Marshal(input)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal prediction input: %w", err)
	}
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal prediction result: %w", err)
	}

	id := uuid.New()
	_, err = db.pool.Exec(ctx,
		`INSERT INTO predictions (id, user_id, input, result) VALUES ($1, $2, $3, $4)`,
		id, userID, inputJSON, resultJSON,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save prediction: %w", err)
	}
	return id, nil
}

// CountPredictions returns how many predictions a user has stored.
func (db *DB) CountPredictions(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := db.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM predictions WHERE user_id = $1`,
		userID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count predictions: %w", err)
	}
	return count, nil
}

// ListPredictions returns a user's most recent predictions, newest first.
func (db *DB) ListPredictions(ctx context.Context, userID uuid.UUID, limit int) ([]PredictionRecord, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, input, result, created_at
		 FROM predictions
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list predictions: %w", err)
	}
	defer rows.Close()

	records := []PredictionRecord{}
	for rows.Next() {
		var rec PredictionRecord
		var inputJSON, resultJSON []byte
		if err := rows.Scan(&rec.ID, &rec.UserID, &inputJSON, &resultJSON, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan prediction: %w", err)
		}
		if err := json.Unmarshal(inputJSON, &rec.Input); err != nil {
			return nil, fmt.Errorf("failed to decode prediction input %s: %w", rec.ID, err)
		}
		if err := json.Unmarshal(resultJSON, &rec.Result); err != nil {
			return nil, fmt.Errorf("failed to decode prediction result %s: %w", rec.ID, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate predictions: %w", err)
	}
	return records, nil
}
