package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/career-advisor/internal/types"
)

// ResumeAnalysisRecord is a stored resume analysis.
type ResumeAnalysisRecord struct {
	ID        uuid.UUID            `json:"id"`
	UserID    uuid.UUID            `json:"user_id"`
	Result    types.ResumeAnalysis `json:"result"`
	CreatedAt time.Time            `json:"created_at"`
}

// PredictionRecord is a stored prediction with the input that produced it.
type PredictionRecord struct {
	ID        uuid.UUID              `json:"id"`
	UserID    uuid.UUID              `json:"user_id"`
	Input     types.PredictionInput  `json:"input"`
	Result    types.PredictionResult `json:"result"`
	CreatedAt time.Time              `json:"created_at"`
}
