package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-advisor/internal/catalog"
	"github.com/jonathan/career-advisor/internal/types"
)

func courseIDs(courses []types.ScoredCourse) []int {
	ids := make([]int, len(courses))
	for i, c := range courses {
		ids[i] = c.ID
	}
	return ids
}

func TestSkillGap(t *testing.T) {
	tests := []struct {
		name   string
		user   []string
		target []string
		want   []string
	}{
		{"keeps target order", []string{"sql"}, []string{"python", "sql", "aws"}, []string{"python", "aws"}},
		{"no gap", []string{"aws", "python"}, []string{"python", "aws"}, []string{}},
		{"exact membership", []string{"Python"}, []string{"python"}, []string{"python"}},
		{"empty target", []string{"python"}, nil, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SkillGap(tt.user, tt.target))
		})
	}
}

func TestRecommendCourses_FallbackWhenNoGap(t *testing.T) {
	m := NewCourseMatcher(catalog.Default().Courses())
	skills := []string{"python", "sql"}

	courses := m.RecommendCourses(skills, skills, DefaultBudget, 2)
	require.Len(t, courses, 2)
	assert.Equal(t, []int{1, 6}, courseIDs(courses))
	assert.InDelta(t, 30.18, courses[0].RelevanceScore, 0.01)
}

func TestRecommendCourses_RanksGap(t *testing.T) {
	m := NewCourseMatcher(catalog.Default().Courses())

	courses := m.RecommendCourses([]string{"python", "javascript"}, []string{"python", "javascript", "react", "sql", "aws"}, DefaultBudget, 3)
	assert.Equal(t, []int{2, 4, 5}, courseIDs(courses))
	assert.Equal(t, courses[0].RelevanceScore, courses[1].RelevanceScore)
}

func TestRecommendCourses_BudgetIgnored(t *testing.T) {
	m := NewCourseMatcher(catalog.Default().Courses())
	target := []string{"aws", "docker"}

	assert.Equal(t,
		m.RecommendCourses(nil, target, 0, 5),
		m.RecommendCourses(nil, target, 1000, 5))
}

func TestRecommendCourses_EmptyCatalog(t *testing.T) {
	m := NewCourseMatcher(nil)
	assert.Empty(t, m.RecommendCourses(nil, nil, DefaultBudget, 3))
}
