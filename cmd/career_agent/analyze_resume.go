package main

import (
	"context"
	"fmt"

	"github.com/jonathan/career-advisor/internal/analysis"
	"github.com/jonathan/career-advisor/internal/ingestion"
	"github.com/jonathan/career-advisor/internal/types"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const maxConcurrentAnalyses = 4

var analyzeOutput outputOptions

var analyzeResumeCmd = &cobra.Command{
	Use:   "analyze-resume FILE...",
	Short: "Score one or more resumes (.txt, .md or .pdf)",
	Long:  "Extracts skills, sentiment, readability, bias terms and an ATS score from each resume file and suggests improvements. Files are analyzed concurrently.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAnalyzeResume,
}

func init() {
	addOutputFlags(analyzeResumeCmd, &analyzeOutput)
	rootCmd.AddCommand(analyzeResumeCmd)
}

// fileAnalysis is one analyzed resume in command output.
type fileAnalysis struct {
	Source   string                `json:"source"`
	Format   ingestion.Format      `json:"format"`
	Hash     string                `json:"hash"`
	Analysis *types.ResumeAnalysis `json:"analysis"`
}

func runAnalyzeResume(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	results, err := analyzeFiles(cmd.Context(), analysis.NewAnalyzer(cat, nil), args)
	if err != nil {
		return err
	}

	if p := analyzeOutput.printer(); p != nil {
		for _, r := range results {
			p.PrintResumeAnalysis(r.Source, r.Analysis)
		}
	}

	if len(results) == 1 {
		return analyzeOutput.emit(results[0])
	}
	return analyzeOutput.emit(results)
}

// analyzeFiles reads and scores every path, preserving argument order in the result.
// The first read failure cancels the remaining work.
func analyzeFiles(ctx context.Context, analyzer *analysis.Analyzer, paths []string) ([]fileAnalysis, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	results := make([]fileAnalysis, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentAnalyses)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			doc, err := ingestion.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read resume %s: %w", path, err)
			}
			results[i] = fileAnalysis{
				Source:   doc.Source,
				Format:   doc.Format,
				Hash:     doc.Hash,
				Analysis: analyzer.Analyze(doc.Text),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
