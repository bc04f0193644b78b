package main

import (
	"fmt"
	"os"

	"github.com/jonathan/career-advisor/internal/catalog"
	"github.com/jonathan/career-advisor/internal/prediction"
	"github.com/spf13/cobra"
)

var validateKind string

var validateCmd = &cobra.Command{
	Use:   "validate FILE",
	Short: "Validate a catalog override or forest model file",
	Long:  "Checks a catalog (--kind catalog) or forest model (--kind model) JSON file against its embedded schema and structural rules before it is deployed.",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().StringVarP(&validateKind, "kind", "k", "model", "Artifact kind: catalog or model")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, args []string) error {
	if err := validateArtifact(validateKind, args[0]); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(os.Stdout, "Validation passed: %s is a valid %s\n", args[0], validateKind)
	return nil
}

func validateArtifact(kind, path string) error {
	switch kind {
	case "catalog":
		_, err := catalog.Load(path)
		return err
	case "model":
		_, err := prediction.LoadForest(path)
		return err
	default:
		return fmt.Errorf("unknown kind %q: expected catalog or model", kind)
	}
}
