package matching

import "github.com/jonathan/career-advisor/internal/catalog"

// Engine bundles the matchers built over a single catalog.
type Engine struct {
	Jobs    *JobMatcher
	Courses *CourseMatcher
	Planner *Planner
}

// NewEngine indexes the catalog's jobs and courses.
func NewEngine(cat *catalog.Catalog) *Engine {
	courses := NewCourseMatcher(cat.Courses())
	return &Engine{
		Jobs:    NewJobMatcher(cat.Jobs()),
		Courses: courses,
		Planner: NewPlanner(cat, courses),
	}
}
