package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"numbeo/internal/errors"
	"numbeo/internal/numbeo"
)

// DefaultOutput is the output format used when none is given
const DefaultOutput = "table"

// Flags holds the raw command-line values
type Flags struct {
	City    string
	Country string
	APIKey  string
	Output  string
	EnvFile string
	BaseURL string
	Timeout time.Duration
	Verbose bool
}

// Settings is the resolved configuration for one invocation
type Settings struct {
	City    string
	Country string
	APIKey  string
	Output  string
	BaseURL string
	Timeout time.Duration
	Verbose bool
}

// Resolve merges flags, the dotenv values and the process environment.
// The API key is taken from --api-key, then the env file, then NUMBEO_API_KEY
// in the process environment.
func Resolve(flags Flags, env map[string]string) (*Settings, error) {
	settings := &Settings{
		City:    strings.TrimSpace(flags.City),
		Country: strings.TrimSpace(flags.Country),
		APIKey:  resolveAPIKey(flags.APIKey, env),
		Output:  strings.ToLower(strings.TrimSpace(flags.Output)),
		BaseURL: strings.TrimSpace(flags.BaseURL),
		Timeout: flags.Timeout,
		Verbose: flags.Verbose,
	}

	applyDefaults(settings)

	if settings.APIKey == "" {
		return nil, errors.ConfigError("Missing API key. Provide --api-key or set NUMBEO_API_KEY in .env").
			WithSuggestion("Pass --api-key <key>").
			WithSuggestion(fmt.Sprintf("Add %s=<key> to %s", APIKeyEnv, envFileName(flags.EnvFile)))
	}

	if settings.Timeout <= 0 {
		return nil, errors.ValidationErrorf("timeout must be positive, got %s", settings.Timeout).
			WithSuggestion("Use a duration such as 30s or 1m")
	}

	if err := validateBaseURL(settings.BaseURL); err != nil {
		return nil, err
	}

	return settings, nil
}

// Location returns the "City, Country" query for the prices endpoint
func (s *Settings) Location() (string, error) {
	if s.City == "" {
		return "", errors.ValidationError("city cannot be empty").
			WithSuggestion("Pass --city, e.g. --city \"San Francisco, CA\"")
	}
	if s.Country == "" {
		return "", errors.ValidationError("country cannot be empty").
			WithSuggestion("Pass --country, e.g. --country \"United States\"")
	}
	return fmt.Sprintf("%s, %s", s.City, s.Country), nil
}

func resolveAPIKey(flagValue string, env map[string]string) string {
	if key := strings.TrimSpace(flagValue); key != "" {
		return key
	}
	if key := strings.TrimSpace(env[APIKeyEnv]); key != "" {
		return key
	}
	return strings.TrimSpace(os.Getenv(APIKeyEnv))
}

func applyDefaults(settings *Settings) {
	if settings.Output == "" {
		settings.Output = DefaultOutput
	}
	if settings.BaseURL == "" {
		settings.BaseURL = numbeo.DefaultBaseURL
	}
	if settings.Timeout == 0 {
		settings.Timeout = numbeo.DefaultTimeout
	}
}

func validateBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		appErr := errors.ValidationErrorf("invalid base URL '%s'", raw).
			WithSuggestion(fmt.Sprintf("Use an absolute URL such as %s", numbeo.DefaultBaseURL))
		if err != nil {
			appErr.Cause = err
		}
		return appErr
	}
	return nil
}

func envFileName(path string) string {
	if path == "" {
		return DefaultEnvFile
	}
	return path
}
