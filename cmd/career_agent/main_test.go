package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

// TestMain runs before all tests and loads .env if available
func TestMain(m *testing.M) {
	_ = godotenv.Load()
	os.Exit(m.Run())
}

// getBinaryPath returns the path to a prebuilt career_agent binary
func getBinaryPath(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := filepath.Join("..", "..", "bin", "career_agent")
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skipf("Binary not found at %s, build it first with 'go build -o bin/career_agent ./cmd/career_agent'", binaryPath)
	}
	return binaryPath
}

func TestRecommendJobsCommand_MissingSkillsFlag(t *testing.T) {
	binaryPath := getBinaryPath(t)

	output, err := exec.Command(binaryPath, "recommend-jobs").CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "required")
}

func TestLearningPathCommand_MissingRoleFlag(t *testing.T) {
	binaryPath := getBinaryPath(t)

	output, err := exec.Command(binaryPath, "learning-path", "--skills", "python").CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "required")
}

func TestAnalyzeResumeCommand_NoFiles(t *testing.T) {
	binaryPath := getBinaryPath(t)

	output, err := exec.Command(binaryPath, "analyze-resume").CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "requires at least 1 arg")
}
