package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/career-advisor/internal/catalog"
	"github.com/jonathan/career-advisor/internal/observability"
	"github.com/spf13/cobra"
)

// outputOptions are the --out and --verbose flags shared by the offline commands.
type outputOptions struct {
	path    string
	verbose bool
}

func addOutputFlags(cmd *cobra.Command, opts *outputOptions) {
	cmd.Flags().StringVarP(&opts.path, "out", "o", "", "Write JSON result to this file instead of stdout")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Print a human-readable summary to stderr")
}

// printer returns a Printer on stderr when verbose output is requested, else nil.
func (o outputOptions) printer() *observability.Printer {
	if !o.verbose {
		return nil
	}
	return observability.NewPrinter(os.Stderr)
}

// emit writes v as indented JSON to the --out file or to stdout.
func (o outputOptions) emit(v any) error {
	if o.path == "" {
		return writeJSON(os.Stdout, v)
	}

	if err := os.MkdirAll(filepath.Dir(o.path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	f, err := os.Create(o.path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := writeJSON(f, v); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to write JSON: %w", err)
	}
	return nil
}

// normalizeSkills lowercases and trims skill flags, dropping empties.
func normalizeSkills(raw []string) []string {
	skills := make([]string, 0, len(raw))
	for _, s := range raw {
		if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
			skills = append(skills, s)
		}
	}
	return skills
}

func loadCatalog() (*catalog.Catalog, error) {
	cat, err := catalog.LoadOrDefault(appConfig.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return cat, nil
}
