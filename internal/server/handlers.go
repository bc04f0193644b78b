package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/jonathan/career-advisor/internal/db"
	"github.com/jonathan/career-advisor/internal/ingestion"
	"github.com/jonathan/career-advisor/internal/server/middleware"
	"github.com/jonathan/career-advisor/internal/types"
	"golang.org/x/sync/errgroup"
)

const (
	maxJSONBytes   = 1 << 20
	maxUploadBytes = 10 << 20

	jobRecommendationCount = 6
	defaultUserLevel       = "Intermediate"

	defaultHistoryLimit = 10
	maxHistoryLimit     = 50
)

// APIMessage is returned by the API root.
const APIMessage = "Career Success & Recommendation Platform API"

var activeBadges = []string{"First Prediction", "Career Explorer"}

// HealthResponse represents the response for /health
type HealthResponse struct {
	Status      string `json:"status"`
	ModelLoaded bool   `json:"model_loaded"`
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, HealthResponse{Status: "ok", ModelLoaded: s.predictor.Loaded()})
}

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"message": APIMessage})
}

// handlePredict scores a career profile with the loaded model and records it for the user.
func (s *Server) handlePredict(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.writeError(w, &ErrUnauthorized{Reason: err.Error()})
		return
	}

	var in types.PredictionInput
	if err := s.decodeValid(w, r, &in); err != nil {
		s.writeError(w, err)
		return
	}

	result, ok := s.predictor.Predict(in)
	if !ok {
		s.writeError(w, &ErrModelUnavailable{})
		return
	}

	if _, err := s.db.SavePrediction(r.Context(), userID, in, result); err != nil {
		s.writeError(w, fmt.Errorf("failed to save prediction: %w", err))
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleAnalyzeResume accepts resume text as JSON or a multipart form (text field or PDF upload).
func (s *Server) handleAnalyzeResume(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.writeError(w, &ErrUnauthorized{Reason: err.Error()})
		return
	}

	text, err := s.resumeText(w, r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	result := s.analyzer.Analyze(text)

	if _, err := s.db.SaveResumeAnalysis(r.Context(), userID, result); err != nil {
		s.writeError(w, fmt.Errorf("failed to save resume analysis: %w", err))
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

func (s *Server) handleRecommendJobs(w http.ResponseWriter, r *http.Request) {
	var req types.JobRecommendationRequest
	if err := s.decodeValid(w, r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	jobs := s.engine.Jobs.RecommendJobs(req.Skills, jobRecommendationCount)
	s.jsonResponse(w, http.StatusOK, types.JobRecommendationResponse{Jobs: jobs})
}

func (s *Server) handleLearningPath(w http.ResponseWriter, r *http.Request) {
	var req types.LearningPathRequest
	if err := s.decodeValid(w, r, &req); err != nil {
		s.writeError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, s.engine.Planner.Plan(req.Skills, req.TargetRole))
}

// handleDashboard combines the user's activity counts with catalog market data.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.writeError(w, &ErrUnauthorized{Reason: err.Error()})
		return
	}

	var predictions, analyses int64
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		n, err := s.db.CountPredictions(ctx, userID)
		predictions = n
		return err
	})
	g.Go(func() error {
		n, err := s.db.CountResumeAnalyses(ctx, userID)
		analyses = n
		return err
	})
	if err := g.Wait(); err != nil {
		s.writeError(w, fmt.Errorf("failed to load dashboard: %w", err))
		return
	}

	badges := []string{}
	if predictions > 0 {
		badges = append(badges, activeBadges...)
	}

	s.jsonResponse(w, http.StatusOK, types.Dashboard{
		PredictionsMade: predictions,
		ResumesAnalyzed: analyses,
		SalaryTrends:    s.catalog.SalaryTrends(),
		TopSkills:       s.catalog.TopSkills(),
		UserLevel:       defaultUserLevel,
		Badges:          badges,
	})
}

// HistoryResponse lists a user's most recent stored results, newest first.
type HistoryResponse struct {
	Predictions    []db.PredictionRecord     `json:"predictions"`
	ResumeAnalyses []db.ResumeAnalysisRecord `json:"resume_analyses"`
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.writeError(w, &ErrUnauthorized{Reason: err.Error()})
		return
	}

	limit, err := historyLimit(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	var resp HistoryResponse
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		records, err := s.db.ListPredictions(ctx, userID, limit)
		resp.Predictions = records
		return err
	})
	g.Go(func() error {
		records, err := s.db.ListResumeAnalyses(ctx, userID, limit)
		resp.ResumeAnalyses = records
		return err
	})
	if err := g.Wait(); err != nil {
		s.writeError(w, fmt.Errorf("failed to load history: %w", err))
		return
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// historyLimit reads ?limit=, defaulting to defaultHistoryLimit and capping at maxHistoryLimit.
func historyLimit(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return defaultHistoryLimit, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		return 0, &ErrValidation{Field: "limit", Message: "must be a positive integer"}
	}
	return min(limit, maxHistoryLimit), nil
}

// resumeText extracts the resume body from either request encoding.
func (s *Server) resumeText(w http.ResponseWriter, r *http.Request) (string, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	var text string
	if mediaType == "multipart/form-data" {
		r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			return "", bodyError(err, "invalid multipart form")
		}

		doc, err := uploadedPDF(r)
		if err != nil {
			return "", err
		}
		if doc != nil {
			return doc.Text, nil
		}
		text = r.FormValue("resume_text")
	} else {
		var req types.AnalyzeResumeRequest
		if err := s.decodeJSON(w, r, &req); err != nil {
			return "", err
		}
		text = req.ResumeText
	}

	if strings.TrimSpace(text) == "" {
		return "", &ErrValidation{Field: "resume_text", Message: "No resume text provided"}
	}
	return text, nil
}

// uploadedPDF returns the decoded "file" part, or nil when the form has none.
func uploadedPDF(r *http.Request) (*ingestion.Document, error) {
	file, header, err := r.FormFile("file")
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, &ErrValidation{Field: "file", Message: err.Error()}
	}
	defer func() { _ = file.Close() }()

	if !strings.HasSuffix(strings.ToLower(header.Filename), ".pdf") {
		return nil, &ErrValidation{Field: "file", Message: "Uploaded file must be a PDF"}
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}

	doc, err := ingestion.Decode(header.Filename, ingestion.FormatPDF, data)
	if errors.Is(err, ingestion.ErrEmptyDocument) {
		return nil, &ErrValidation{Field: "resume_text", Message: "No resume text provided"}
	}
	if err != nil {
		return nil, &ErrValidation{Field: "file", Message: "Failed to extract text from PDF"}
	}
	return doc, nil
}

// decodeJSON reads a size-limited JSON body into dst.
func (s *Server) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return bodyError(err, "invalid JSON body")
	}
	return nil
}

// decodeValid decodes dst and applies its validate tags.
func (s *Server) decodeValid(w http.ResponseWriter, r *http.Request, dst any) error {
	if err := s.decodeJSON(w, r, dst); err != nil {
		return err
	}
	if err := s.validate.Struct(dst); err != nil {
		return validationError(err)
	}
	return nil
}

// bodyError keeps size-limit errors intact and reports everything else as a bad body.
func bodyError(err error, msg string) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return err
	}
	return &ErrValidation{Field: "body", Message: msg}
}
