package main

import (
	"fmt"

	"github.com/jonathan/career-advisor/internal/matching"
	"github.com/spf13/cobra"
)

var (
	recommendSkills []string
	recommendTop    int
	recommendOutput outputOptions
)

var recommendJobsCmd = &cobra.Command{
	Use:   "recommend-jobs",
	Short: "Rank catalog jobs by similarity to a skill list",
	Long:  "Ranks the job catalog against the given skills using TF-IDF cosine similarity and prints the top matches with scores from 0 to 100.",
	RunE:  runRecommendJobs,
}

func init() {
	recommendJobsCmd.Flags().StringSliceVarP(&recommendSkills, "skills", "s", nil, "Comma-separated skills (required)")
	recommendJobsCmd.Flags().IntVarP(&recommendTop, "top", "n", 5, "Number of jobs to return")
	addOutputFlags(recommendJobsCmd, &recommendOutput)

	if err := recommendJobsCmd.MarkFlagRequired("skills"); err != nil {
		panic(fmt.Sprintf("failed to mark skills flag as required: %v", err))
	}

	rootCmd.AddCommand(recommendJobsCmd)
}

func runRecommendJobs(_ *cobra.Command, _ []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	jobs := matching.NewJobMatcher(cat.Jobs()).RecommendJobs(normalizeSkills(recommendSkills), recommendTop)

	if p := recommendOutput.printer(); p != nil {
		p.PrintJobs(jobs)
	}
	return recommendOutput.emit(jobs)
}
