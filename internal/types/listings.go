// Package types provides type definitions for structured data used throughout the career advisor.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Job is an immutable listing in the job catalog.
// Skills is a space-joined bag of skill terms used as the listing's document text.
type Job struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Company  string `json:"company"`
	Location string `json:"location"`
	Skills   string `json:"skills"`
	Salary   string `json:"salary"`
}

// Course is an immutable listing in the course catalog.
type Course struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Platform string `json:"platform"`
	Duration string `json:"duration"`
	Price    string `json:"price"`
	Skills   string `json:"skills"`
}

// ScoredJob is a job listing with its similarity to the query profile (0-100).
type ScoredJob struct {
	Job
	MatchScore float64 `json:"match_score"`
}

// ScoredCourse is a course listing with its relevance to the skill gap (0-100).
type ScoredCourse struct {
	Course
	RelevanceScore float64 `json:"relevance_score"`
}

// LearningPath describes the route from a user's current skills to a target role.
type LearningPath struct {
	TargetRole         string         `json:"target_role"`
	CurrentSkills      []string       `json:"current_skills"`
	RequiredSkills     []string       `json:"required_skills"`
	SkillGap           []string       `json:"skill_gap"`
	EstimatedTimeline  string         `json:"estimated_timeline"`
	EstimatedWeeks     int            `json:"estimated_weeks"`
	RecommendedCourses []ScoredCourse `json:"recommended_courses"`
}

// SalaryTrend is a static market reference shown on the dashboard.
type SalaryTrend struct {
	Role      string `json:"role"`
	AvgSalary int    `json:"avg_salary"`
}

// SkillDemand is a static demand index (0-100) for a skill.
type SkillDemand struct {
	Skill  string `json:"skill"`
	Demand int    `json:"demand"`
}
