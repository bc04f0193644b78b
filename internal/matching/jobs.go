// Package matching ranks job and course listings against a skill profile and plans
// learning paths toward a target role.
package matching

import (
	"github.com/jonathan/career-advisor/internal/similarity"
	"github.com/jonathan/career-advisor/internal/types"
)

// JobMatcher ranks the job catalog by similarity to a user's skills.
type JobMatcher struct {
	index *similarity.Index[types.Job]
}

// NewJobMatcher indexes jobs by their skill text.
func NewJobMatcher(jobs []types.Job) *JobMatcher {
	return &JobMatcher{
		index: similarity.New(jobs, func(j types.Job) string { return j.Skills }),
	}
}

// RecommendJobs returns up to topN jobs ordered by descending match score.
// Empty skills or a non-positive topN yield an empty list.
func (m *JobMatcher) RecommendJobs(skills []string, topN int) []types.ScoredJob {
	ranked := m.index.Rank(skills, topN)
	jobs := make([]types.ScoredJob, len(ranked))
	for i, r := range ranked {
		jobs[i] = types.ScoredJob{Job: r.Item, MatchScore: r.Score}
	}
	return jobs
}
