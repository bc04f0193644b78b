package matching

import (
	"fmt"

	"github.com/jonathan/career-advisor/internal/catalog"
	"github.com/jonathan/career-advisor/internal/types"
)

const (
	weeksPerSkill   = 2
	pathCourseCount = 3
)

// Planner builds learning paths from the catalog's role requirement table.
type Planner struct {
	catalog *catalog.Catalog
	courses *CourseMatcher
}

// NewPlanner creates a planner that draws requirements from cat and remediation
// courses from courses.
func NewPlanner(cat *catalog.Catalog, courses *CourseMatcher) *Planner {
	return &Planner{catalog: cat, courses: courses}
}

// Plan computes the skill gap between skills and targetRole's requirements, a timeline of
// two weeks per missing skill and three remediation courses. An unknown role has no
// requirements, so its gap is empty and courses come from the fallback query.
func (p *Planner) Plan(skills []string, targetRole string) *types.LearningPath {
	required := p.catalog.RoleRequirements(targetRole)
	gap := SkillGap(skills, required)
	weeks := len(gap) * weeksPerSkill

	current := append([]string{}, skills...)

	return &types.LearningPath{
		TargetRole:         targetRole,
		CurrentSkills:      current,
		RequiredSkills:     required,
		SkillGap:           gap,
		EstimatedTimeline:  fmt.Sprintf("%d weeks", weeks),
		EstimatedWeeks:     weeks,
		RecommendedCourses: p.courses.RecommendCourses(skills, required, DefaultBudget, pathCourseCount),
	}
}
