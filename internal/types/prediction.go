package types

import "github.com/go-playground/validator/v10"

// FeatureNames is the fixed feature schema expected by the career success model, in order.
var FeatureNames = [...]string{
	"age",
	"experience_years",
	"education_level",
	"num_skills",
	"location_tier",
	"job_changes",
}

// PredictionInput is the structured feature vector for a career success prediction.
// Education level: 1=high school, 2=bachelor, 3=master, 4=PhD. Location tier: 1-3.
type PredictionInput struct {
	Age             int `json:"age" validate:"gte=0,lte=120"`
	ExperienceYears int `json:"experience_years" validate:"gte=0,lte=80"`
	EducationLevel  int `json:"education_level" validate:"gte=1,lte=4"`
	NumSkills       int `json:"num_skills" validate:"gte=0,lte=1000"`
	LocationTier    int `json:"location_tier" validate:"gte=1,lte=3"`
	JobChanges      int `json:"job_changes" validate:"gte=0,lte=100"`
}

// Features returns the input as a vector aligned with FeatureNames.
func (in PredictionInput) Features() []float64 {
	return []float64{
		float64(in.Age),
		float64(in.ExperienceYears),
		float64(in.EducationLevel),
		float64(in.NumSkills),
		float64(in.LocationTier),
		float64(in.JobChanges),
	}
}

// Validate checks the documented ranges of each field.
func (in *PredictionInput) Validate() error {
	validate := validator.New()
	return validate.Struct(in)
}

// PredictionResult is the outcome of a career success prediction.
type PredictionResult struct {
	SuccessProbability float64  `json:"success_probability"`
	TopFactors         []string `json:"top_factors"`
	Recommendations    []string `json:"recommendations"`
}
