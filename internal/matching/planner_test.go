package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-advisor/internal/catalog"
)

func TestPlan_KnownRole(t *testing.T) {
	e := NewEngine(catalog.Default())

	path := e.Planner.Plan([]string{"python", "javascript"}, "Software Engineer")

	assert.Equal(t, "Software Engineer", path.TargetRole)
	assert.Equal(t, []string{"python", "javascript"}, path.CurrentSkills)
	assert.Equal(t, []string{"python", "javascript", "react", "sql", "aws"}, path.RequiredSkills)
	assert.Equal(t, []string{"react", "sql", "aws"}, path.SkillGap)
	assert.Equal(t, "6 weeks", path.EstimatedTimeline)
	assert.Equal(t, 6, path.EstimatedWeeks)
	require.Len(t, path.RecommendedCourses, 3)
	assert.Equal(t, []int{2, 4, 5}, courseIDs(path.RecommendedCourses))
}

func TestPlan_UnknownRole(t *testing.T) {
	e := NewEngine(catalog.Default())

	path := e.Planner.Plan([]string{"python"}, "Astronaut")

	assert.Empty(t, path.RequiredSkills)
	assert.NotNil(t, path.RequiredSkills)
	assert.Empty(t, path.SkillGap)
	assert.Equal(t, "0 weeks", path.EstimatedTimeline)
	// fallback query still yields courses
	assert.Len(t, path.RecommendedCourses, 3)
}

func TestPlan_RoleAlreadyCovered(t *testing.T) {
	e := NewEngine(catalog.Default())
	skills := []string{"aws", "docker", "kubernetes", "linux", "azure"}

	path := e.Planner.Plan(skills, "devops_engineer")

	assert.Empty(t, path.SkillGap)
	assert.Equal(t, "0 weeks", path.EstimatedTimeline)
	assert.NotEmpty(t, path.RecommendedCourses)
}

func TestPlan_DoesNotAliasInput(t *testing.T) {
	e := NewEngine(catalog.Default())
	skills := []string{"python"}

	path := e.Planner.Plan(skills, "data_scientist")
	path.CurrentSkills[0] = "mutated"

	assert.Equal(t, "python", skills[0])
}
