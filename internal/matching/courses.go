package matching

import (
	"github.com/jonathan/career-advisor/internal/similarity"
	"github.com/jonathan/career-advisor/internal/types"
)

// fallbackGap is the query used when the user already has every target skill.
var fallbackGap = []string{"advanced programming", "leadership"}

// DefaultBudget is the budget ceiling used when callers do not supply one.
const DefaultBudget = 200

// CourseMatcher ranks the course catalog by relevance to a skill gap.
type CourseMatcher struct {
	index *similarity.Index[types.Course]
}

// NewCourseMatcher indexes courses by their skill text.
func NewCourseMatcher(courses []types.Course) *CourseMatcher {
	return &CourseMatcher{
		index: similarity.New(courses, func(c types.Course) string { return c.Skills }),
	}
}

// RecommendCourses ranks courses against the skills in targetSkills that userSkills
// lacks. When nothing is missing a fixed growth query is used instead, so the result is
// non-empty whenever the catalog is. budgetMax does not filter results; course prices
// are free-form strings.
func (m *CourseMatcher) RecommendCourses(userSkills, targetSkills []string, budgetMax float64, topN int) []types.ScoredCourse {
	gap := SkillGap(userSkills, targetSkills)
	if len(gap) == 0 {
		gap = fallbackGap
	}

	ranked := m.index.Rank(gap, topN)
	courses := make([]types.ScoredCourse, len(ranked))
	for i, r := range ranked {
		courses[i] = types.ScoredCourse{Course: r.Item, RelevanceScore: r.Score}
	}
	return courses
}

// SkillGap returns the members of target not present in user, preserving target order.
// Membership is exact string equality.
func SkillGap(user, target []string) []string {
	have := make(map[string]struct{}, len(user))
	for _, s := range user {
		have[s] = struct{}{}
	}
	gap := []string{}
	for _, s := range target {
		if _, ok := have[s]; !ok {
			gap = append(gap, s)
		}
	}
	return gap
}
