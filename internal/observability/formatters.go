// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/career-advisor/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		for _, part := range wrap(line, boxWidth-4) {
			fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, part)
		}
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// wrap splits s into lines of at most n runes, breaking at the last space when there is one.
func wrap(s string, n int) []string {
	r := []rune(s)
	var lines []string
	for len(r) > n {
		cut := n
		for i := n; i > 0; i-- {
			if r[i] == ' ' {
				cut = i
				break
			}
		}
		lines = append(lines, strings.TrimRight(string(r[:cut]), " "))
		r = []rune(strings.TrimLeft(string(r[cut:]), " "))
	}
	return append(lines, string(r))
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "(none)"
	}
	return strings.Join(items, ", ")
}

// PrintResumeAnalysis outputs scores, detected terms and tips for one resume.
func (p *Printer) PrintResumeAnalysis(source string, a *types.ResumeAnalysis) {
	if a == nil {
		return
	}

	var sb strings.Builder
	if source != "" {
		sb.WriteString(fmt.Sprintf("Source:       %s\n\n", source))
	}
	sb.WriteString(fmt.Sprintf("ATS score:    %.2f\n", a.ATSScore))
	sb.WriteString(fmt.Sprintf("Readability:  %.2f\n", a.ReadabilityScore))
	sb.WriteString(fmt.Sprintf("Sentiment:    %s (%.2f)\n", a.Sentiment, a.Polarity))
	sb.WriteString(fmt.Sprintf("Skills:       %s\n", joinOrNone(a.Skills)))
	sb.WriteString(fmt.Sprintf("Bias terms:   %s\n", joinOrNone(a.BiasDetected)))

	sb.WriteString("\nTips:\n")
	for _, tip := range a.ImprovementTips {
		sb.WriteString(fmt.Sprintf("  • %s\n", tip))
	}

	p.printBox("RESUME ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintJobs outputs the top ranked jobs with their match scores.
func (p *Printer) PrintJobs(jobs []types.ScoredJob) {
	if len(jobs) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(jobs), maxItemsToShow)
	for i := 0; i < count; i++ {
		job := jobs[i]
		sb.WriteString(fmt.Sprintf("#%d  %s @ %s\n", i+1, job.Title, job.Company))
		sb.WriteString(fmt.Sprintf("    Match: %.2f  %s  %s\n", job.MatchScore, job.Location, job.Salary))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(jobs) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more jobs", len(jobs)-maxItemsToShow))
	}

	p.printBox("RECOMMENDED JOBS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintLearningPath outputs the skill gap, timeline and courses toward a role.
func (p *Printer) PrintLearningPath(path *types.LearningPath) {
	if path == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Target role:  %s\n", path.TargetRole))
	sb.WriteString(fmt.Sprintf("Skill gap:    %s\n", joinOrNone(path.SkillGap)))
	sb.WriteString(fmt.Sprintf("Timeline:     %s\n", path.EstimatedTimeline))

	if len(path.RecommendedCourses) > 0 {
		sb.WriteString("\nCourses:\n")
		for _, c := range path.RecommendedCourses {
			sb.WriteString(fmt.Sprintf("  • %s (%s, %s)\n", c.Title, c.Platform, c.Price))
			sb.WriteString(fmt.Sprintf("    Relevance: %.2f\n", c.RelevanceScore))
		}
	}

	p.printBox("LEARNING PATH", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintPrediction outputs a success prediction. A nil result reports a missing model.
func (p *Printer) PrintPrediction(result *types.PredictionResult) {
	if result == nil {
		p.printBox("CAREER SUCCESS PREDICTION", "No model loaded")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Success probability:  %.2f%%\n", result.SuccessProbability))
	sb.WriteString("\nTop factors:\n")
	sb.WriteString(fmt.Sprintf("  %s\n", joinOrNone(result.TopFactors)))

	sb.WriteString("\nRecommendations:\n")
	for _, rec := range result.Recommendations {
		sb.WriteString(fmt.Sprintf("  • %s\n", rec))
	}

	p.printBox("CAREER SUCCESS PREDICTION", strings.TrimSuffix(sb.String(), "\n"))
}
