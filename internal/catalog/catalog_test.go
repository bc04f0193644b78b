package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_ReferenceData(t *testing.T) {
	c := Default()

	assert.Len(t, c.Skills(), 24)
	assert.Len(t, c.BiasTerms(), 14)
	assert.Equal(t, []string{"experience", "project", "managed", "led", "developed", "achieved", "improved"}, c.ActionKeywords())
	assert.Len(t, c.Jobs(), 8)
	assert.Len(t, c.Courses(), 6)
	assert.Len(t, c.Roles(), 5)
	assert.NotEmpty(t, c.SalaryTrends())
	assert.NotEmpty(t, c.TopSkills())
}

func TestCatalog_AccessorsReturnCopies(t *testing.T) {
	c := Default()

	jobs := c.Jobs()
	jobs[0].Title = "mutated"
	assert.Equal(t, "Senior Software Engineer", c.Jobs()[0].Title)

	skills := c.Skills()
	skills[0] = "cobol"
	assert.Equal(t, "python", c.Skills()[0])

	reqs := c.RoleRequirements("software_engineer")
	reqs[0] = "cobol"
	assert.Equal(t, "python", c.RoleRequirements("software_engineer")[0])
}

func TestRoleRequirements_Normalization(t *testing.T) {
	c := Default()

	tests := []struct {
		role string
		want []string
	}{
		{"Data Scientist", []string{"python", "machine learning", "sql", "data science", "analytics"}},
		{"DEVOPS ENGINEER", []string{"aws", "docker", "kubernetes", "linux", "azure"}},
		{"ml_engineer", []string{"python", "machine learning", "ai", "tensorflow", "pytorch"}},
		{"Astronaut", []string{}},
		{"", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			assert.Equal(t, tt.want, c.RoleRequirements(tt.role))
		})
	}
}

func TestLoad_ValidOverride(t *testing.T) {
	content := `{
		"skills": ["Go", " Rust "],
		"bias_terms": ["he"],
		"action_keywords": ["shipped"],
		"jobs": [{"id": 1, "title": "Gopher", "company": "Acme", "skills": "go"}],
		"courses": [{"id": 7, "title": "Rust Intro", "platform": "Web", "skills": "rust"}],
		"roles": {"backend_engineer": ["go", "sql"]}
	}`
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"go", "rust"}, c.Skills())
	assert.Equal(t, []string{"shipped"}, c.ActionKeywords())
	require.Len(t, c.Jobs(), 1)
	assert.Equal(t, "Gopher", c.Jobs()[0].Title)
	assert.Equal(t, []string{"go", "sql"}, c.RoleRequirements("Backend Engineer"))
	assert.Empty(t, c.SalaryTrends())
}

func TestLoad_SchemaViolation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"skills": "python"}`), 0644))

	c, err := Load(path)
	require.Error(t, err)
	assert.Nil(t, c)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, path, loadErr.Path)
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load catalog")
}

func TestLoadOrDefault_EmptyPath(t *testing.T) {
	c, err := LoadOrDefault("")
	require.NoError(t, err)
	assert.Len(t, c.Jobs(), 8)
}
