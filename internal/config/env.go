package config

import (
	stderrors "errors"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"numbeo/internal/errors"
)

const (
	// APIKeyEnv is the variable holding the Numbeo API key
	APIKeyEnv = "NUMBEO_API_KEY"
	// DefaultEnvFile is read from the working directory unless --env-file says otherwise
	DefaultEnvFile = ".env"
)

// LoadEnvFile reads KEY=VALUE pairs from a dotenv file without touching the
// process environment. A missing file yields an empty map. Blank lines,
// comments and lines without "=" are ignored.
func LoadEnvFile(path string) (map[string]string, error) {
	if path == "" {
		return map[string]string{}, nil
	}

	content, err := os.ReadFile(path)
	if stderrors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, errors.FileErrorWithCause("failed to read env file", err).
			WithContext("filePath", path).
			WithSuggestion("Check that the file is readable").
			WithSuggestion("Point --env-file at another file")
	}

	values, err := godotenv.Parse(strings.NewReader(assignmentLines(string(content))))
	if err != nil {
		return nil, errors.FileErrorWithCause("failed to parse env file", err).
			WithContext("filePath", path).
			WithSuggestion("Check that the file uses KEY=VALUE lines").
			WithSuggestion("Point --env-file at another file")
	}

	return values, nil
}

// assignmentLines keeps only the lines that look like KEY=VALUE assignments
func assignmentLines(content string) string {
	var kept strings.Builder
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") || !strings.Contains(trimmed, "=") {
			continue
		}
		kept.WriteString(trimmed)
		kept.WriteString("\n")
	}
	return kept.String()
}
