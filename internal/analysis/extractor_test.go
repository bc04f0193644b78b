package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/career-advisor/internal/catalog"
)

func TestExtractSkills(t *testing.T) {
	e := NewExtractor(catalog.Default())

	tests := []struct {
		name string
		text string
		want []string
	}{
		{"catalog order", "React and Python developer", []string{"python", "react"}},
		{"multi word", "Experienced in Machine Learning and data science", []string{"machine learning", "data science"}},
		{"duplicates collapse", "python python PYTHON", []string{"python"}},
		{"substring match", "javascript", []string{"java", "javascript"}},
		{"none", "I enjoy gardening", []string{}},
		{"empty", "", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.ExtractSkills(tt.text))
		})
	}
}

func TestDetectBias_WholeWordOnly(t *testing.T) {
	e := NewExtractor(catalog.Default())

	assert.Equal(t, []string{"he"}, e.DetectBias("He shipped the release"))
	assert.Empty(t, e.DetectBias("The theory held there"))
	assert.ElementsMatch(t, []string{"she", "her"}, e.DetectBias("She said her team won"))
	assert.Empty(t, e.DetectBias(""))
}

func TestDetectBias_UnicodeWordBoundaries(t *testing.T) {
	e := NewExtractor(catalog.Default())

	assert.Empty(t, e.DetectBias("Stéhe led the launch"))
	assert.Empty(t, e.DetectBias("heé and he_ and he2"))
	assert.Equal(t, []string{"he"}, e.DetectBias("Résumé: he, ünd more"))
	assert.Equal(t, []string{"he"}, e.DetectBias("(he)"))
}

func TestActionKeywordHits(t *testing.T) {
	e := NewExtractor(catalog.Default())

	assert.Equal(t, 2, e.ActionKeywordHits("Led the team and developed tools"))
	assert.Equal(t, 1, e.ActionKeywordHits("project project project"))
	assert.Equal(t, 0, e.ActionKeywordHits("nothing here"))
}

func TestReadability(t *testing.T) {
	assert.Equal(t, 50.0, Readability(""))
	assert.Equal(t, 50.0, Readability("   \n\t "))

	simple := Readability("The cat sat. The dog ran.")
	assert.GreaterOrEqual(t, simple, 0.0)
	assert.LessOrEqual(t, simple, 100.0)

	dense := Readability("Internationalization considerations necessitate comprehensive organizational restructuring initiatives")
	assert.Equal(t, 0.0, dense)
	assert.Greater(t, simple, dense)
}

func TestReadability_KnownValue(t *testing.T) {
	// 4 words, 2 sentences, 4 syllables: 206.835 - 2.03 - 84.6 clamps to 100
	assert.Equal(t, 100.0, Readability("go go go go."))

	// 5 words, 1 sentence, 7 syllables: 206.835 - 5.075 - 118.44
	assert.InDelta(t, 83.32, Readability("banana tea tea tea tea"), 1e-9)
}
