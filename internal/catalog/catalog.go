// Package catalog provides the static reference data used for skill extraction and matching:
// the skill vocabulary, bias and action-keyword lists, the job and course listings, the
// role requirement table and dashboard market data.
//
// A Catalog is built once at process start and is read-only afterwards. Accessors return
// copies so callers cannot mutate shared state.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/jonathan/career-advisor/internal/schemas"
	"github.com/jonathan/career-advisor/internal/types"
	embedded "github.com/jonathan/career-advisor/schemas"
)

// Catalog is an immutable set of reference data.
type Catalog struct {
	skills         []string
	biasTerms      []string
	actionKeywords []string
	jobs           []types.Job
	courses        []types.Course
	roles          map[string][]string
	salaryTrends   []types.SalaryTrend
	topSkills      []types.SkillDemand
}

// LoadError reports a catalog file that could not be read, parsed or validated.
type LoadError struct {
	Path  string
	Cause error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load catalog %s: %v", e.Path, e.Cause)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// fileFormat is the on-disk JSON shape of a catalog override.
type fileFormat struct {
	Skills         []string            `json:"skills"`
	BiasTerms      []string            `json:"bias_terms"`
	ActionKeywords []string            `json:"action_keywords"`
	Jobs           []types.Job         `json:"jobs"`
	Courses        []types.Course      `json:"courses"`
	Roles          map[string][]string `json:"roles"`
	SalaryTrends   []types.SalaryTrend `json:"salary_trends,omitempty"`
	TopSkills      []types.SkillDemand `json:"top_skills,omitempty"`
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return newCatalog(fileFormat{
		Skills:         defaultSkills,
		BiasTerms:      defaultBiasTerms,
		ActionKeywords: defaultActionKeywords,
		Jobs:           defaultJobs,
		Courses:        defaultCourses,
		Roles:          defaultRoles,
		SalaryTrends:   defaultSalaryTrends,
		TopSkills:      defaultTopSkills,
	})
}

// Load reads a catalog from a JSON file validated against catalog.schema.json.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Cause: err}
	}
	return Parse(path, data)
}

// Parse validates and decodes catalog JSON. name is used in error messages only.
func Parse(name string, data []byte) (*Catalog, error) {
	if err := schemas.Validate(embedded.Catalog, data); err != nil {
		return nil, &LoadError{Path: name, Cause: err}
	}

	var f fileFormat
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, &LoadError{Path: name, Cause: err}
	}

	return newCatalog(f), nil
}

// LoadOrDefault loads path when it is set and falls back to the built-in catalog otherwise.
func LoadOrDefault(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// newCatalog deep-copies f and lowercases the vocabulary lists.
func newCatalog(f fileFormat) *Catalog {
	roles := make(map[string][]string, len(f.Roles))
	for name, skills := range f.Roles {
		roles[name] = append([]string(nil), skills...)
	}

	return &Catalog{
		skills:         lowerAll(f.Skills),
		biasTerms:      lowerAll(f.BiasTerms),
		actionKeywords: lowerAll(f.ActionKeywords),
		jobs:           append([]types.Job(nil), f.Jobs...),
		courses:        append([]types.Course(nil), f.Courses...),
		roles:          roles,
		salaryTrends:   append([]types.SalaryTrend(nil), f.SalaryTrends...),
		topSkills:      append([]types.SkillDemand(nil), f.TopSkills...),
	}
}

func lowerAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Skills returns the skill vocabulary in catalog order.
func (c *Catalog) Skills() []string { return append([]string(nil), c.skills...) }

// BiasTerms returns the gendered/biased terms scanned for in resumes.
func (c *Catalog) BiasTerms() []string { return append([]string(nil), c.biasTerms...) }

// ActionKeywords returns the keywords that earn ATS credit.
func (c *Catalog) ActionKeywords() []string { return append([]string(nil), c.actionKeywords...) }

// Jobs returns the job listings in catalog order.
func (c *Catalog) Jobs() []types.Job { return append([]types.Job(nil), c.jobs...) }

// Courses returns the course listings in catalog order.
func (c *Catalog) Courses() []types.Course { return append([]types.Course(nil), c.courses...) }

// SalaryTrends returns the static salary reference data.
func (c *Catalog) SalaryTrends() []types.SalaryTrend {
	return append([]types.SalaryTrend(nil), c.salaryTrends...)
}

// TopSkills returns the static skill demand data.
func (c *Catalog) TopSkills() []types.SkillDemand {
	return append([]types.SkillDemand(nil), c.topSkills...)
}

// RoleRequirements returns the skills required for a role. The role name is matched
// case-insensitively with spaces treated as underscores; unknown roles yield an empty list.
func (c *Catalog) RoleRequirements(role string) []string {
	skills, ok := c.roles[NormalizeRole(role)]
	if !ok {
		return []string{}
	}
	return append([]string(nil), skills...)
}

// Roles returns the known role keys in sorted order.
func (c *Catalog) Roles() []string {
	names := make([]string, 0, len(c.roles))
	for name := range c.roles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NormalizeRole converts a display role name ("Data Scientist") to its table key ("data_scientist").
func NormalizeRole(role string) string {
	return strings.ReplaceAll(strings.ToLower(role), " ", "_")
}
