package main

import (
	"fmt"

	"github.com/jonathan/career-advisor/internal/prediction"
	"github.com/jonathan/career-advisor/internal/types"
	"github.com/spf13/cobra"
)

var (
	predictModel  string
	predictInput  types.PredictionInput
	predictOutput outputOptions
)

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Predict career success probability from a profile",
	Long:  "Scores a six-feature career profile with a fitted random forest model (JSON) and prints the success probability, the three most important features and recommendations.",
	RunE:  runPredict,
}

func init() {
	f := predictCmd.Flags()
	f.StringVarP(&predictModel, "model", "m", "", "Path to forest model JSON (default: MODEL_PATH)")
	f.IntVar(&predictInput.Age, "age", 0, "Age in years")
	f.IntVar(&predictInput.ExperienceYears, "experience", 0, "Years of professional experience")
	f.IntVar(&predictInput.EducationLevel, "education", 2, "Education level: 1=high school, 2=bachelor, 3=master, 4=PhD")
	f.IntVar(&predictInput.NumSkills, "num-skills", 0, "Number of skills")
	f.IntVar(&predictInput.LocationTier, "location-tier", 2, "Location tier from 1 to 3")
	f.IntVar(&predictInput.JobChanges, "job-changes", 0, "Number of job changes")
	addOutputFlags(predictCmd, &predictOutput)

	rootCmd.AddCommand(predictCmd)
}

func runPredict(_ *cobra.Command, _ []string) error {
	if err := predictInput.Validate(); err != nil {
		return fmt.Errorf("invalid profile: %w", err)
	}

	path := predictModel
	if path == "" {
		path = appConfig.ModelPath
	}
	if path == "" {
		return fmt.Errorf("model not available: pass --model or set MODEL_PATH")
	}

	forest, err := prediction.LoadForest(path)
	if err != nil {
		return err
	}

	result, ok := prediction.NewPredictor(forest).Predict(predictInput)
	if !ok {
		return fmt.Errorf("model %s could not score the profile", path)
	}

	if p := predictOutput.printer(); p != nil {
		p.PrintPrediction(result)
	}
	return predictOutput.emit(result)
}
