package main

import (
	"fmt"

	"github.com/jonathan/career-advisor/internal/matching"
	"github.com/spf13/cobra"
)

var (
	pathSkills []string
	pathRole   string
	pathOutput outputOptions
)

var learningPathCmd = &cobra.Command{
	Use:   "learning-path",
	Short: "Plan the courses between current skills and a target role",
	Long:  "Computes the skill gap to a target role, estimates a timeline of two weeks per missing skill and recommends three courses covering the gap.",
	RunE:  runLearningPath,
}

func init() {
	learningPathCmd.Flags().StringSliceVarP(&pathSkills, "skills", "s", nil, "Comma-separated current skills")
	learningPathCmd.Flags().StringVarP(&pathRole, "role", "r", "", "Target role, e.g. \"Data Scientist\" (required)")
	addOutputFlags(learningPathCmd, &pathOutput)

	if err := learningPathCmd.MarkFlagRequired("role"); err != nil {
		panic(fmt.Sprintf("failed to mark role flag as required: %v", err))
	}

	rootCmd.AddCommand(learningPathCmd)
}

func runLearningPath(_ *cobra.Command, _ []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	path := matching.NewEngine(cat).Planner.Plan(normalizeSkills(pathSkills), pathRole)

	if p := pathOutput.printer(); p != nil {
		p.PrintLearningPath(path)
	}
	return pathOutput.emit(path)
}
