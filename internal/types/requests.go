package types

// AnalyzeResumeRequest is the JSON body for resume analysis.
type AnalyzeResumeRequest struct {
	ResumeText string `json:"resume_text"`
}

// JobRecommendationRequest is the JSON body for job recommendations.
type JobRecommendationRequest struct {
	Skills []string `json:"skills" validate:"dive,required"`
}

// LearningPathRequest is the JSON body for learning path generation.
type LearningPathRequest struct {
	Skills     []string `json:"skills" validate:"dive,required"`
	TargetRole string   `json:"target_role" validate:"required"`
}

// JobRecommendationResponse wraps ranked jobs for the API.
type JobRecommendationResponse struct {
	Jobs []ScoredJob `json:"jobs"`
}

// Dashboard summarizes a user's activity alongside static market data.
type Dashboard struct {
	PredictionsMade int64         `json:"predictions_made"`
	ResumesAnalyzed int64         `json:"resumes_analyzed"`
	SalaryTrends    []SalaryTrend `json:"salary_trends"`
	TopSkills       []SkillDemand `json:"top_skills"`
	UserLevel       string        `json:"user_level"`
	Badges          []string      `json:"badges"`
}
