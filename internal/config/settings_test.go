package config

import (
	"testing"
	"time"

	"numbeo/internal/errors"
)

func TestResolve_APIKeyPrecedence(t *testing.T) {
	tests := []struct {
		name       string
		flagKey    string
		envFileKey string
		processKey string
		expected   string
	}{
		{name: "flag wins", flagKey: "flag", envFileKey: "file", processKey: "process", expected: "flag"},
		{name: "env file over process", envFileKey: "file", processKey: "process", expected: "file"},
		{name: "process environment", processKey: "process", expected: "process"},
		{name: "blank flag ignored", flagKey: "   ", envFileKey: "file", expected: "file"},
		{name: "value trimmed", flagKey: " padded ", expected: "padded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(APIKeyEnv, tt.processKey)

			env := map[string]string{}
			if tt.envFileKey != "" {
				env[APIKeyEnv] = tt.envFileKey
			}

			settings, err := Resolve(Flags{APIKey: tt.flagKey}, env)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if settings.APIKey != tt.expected {
				t.Errorf("expected API key %q, got %q", tt.expected, settings.APIKey)
			}
		})
	}
}

func TestResolve_MissingAPIKey(t *testing.T) {
	t.Setenv(APIKeyEnv, "")

	_, err := Resolve(Flags{City: "Berlin", Country: "Germany"}, map[string]string{})
	if err == nil {
		t.Fatal("expected an error without an API key")
	}

	if !errors.IsErrorType(err, errors.ConfigErrorType) {
		t.Errorf("expected CONFIG error, got %v", err)
	}
	if errors.GetExitCode(err) != 2 {
		t.Errorf("expected exit code 2, got %d", errors.GetExitCode(err))
	}

	appErr := err.(*errors.AppError)
	expected := "Missing API key. Provide --api-key or set NUMBEO_API_KEY in .env"
	if appErr.Message != expected {
		t.Errorf("expected message %q, got %q", expected, appErr.Message)
	}
}

func TestResolve_Defaults(t *testing.T) {
	settings, err := Resolve(Flags{APIKey: "key"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if settings.Output != "table" {
		t.Errorf("expected default output table, got %s", settings.Output)
	}
	if settings.BaseURL != "https://www.numbeo.com" {
		t.Errorf("expected default base URL, got %s", settings.BaseURL)
	}
	if settings.Timeout != 30*time.Second {
		t.Errorf("expected default timeout 30s, got %s", settings.Timeout)
	}
}

func TestResolve_Normalization(t *testing.T) {
	settings, err := Resolve(Flags{
		City:    "  Berlin ",
		Country: " Germany",
		APIKey:  "key",
		Output:  " JSON ",
		BaseURL: "http://localhost:8080",
		Timeout: 5 * time.Second,
		Verbose: true,
	}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if settings.City != "Berlin" || settings.Country != "Germany" {
		t.Errorf("expected trimmed location, got %q / %q", settings.City, settings.Country)
	}
	if settings.Output != "json" {
		t.Errorf("expected lower-cased output, got %q", settings.Output)
	}
	if settings.BaseURL != "http://localhost:8080" || settings.Timeout != 5*time.Second || !settings.Verbose {
		t.Errorf("flags not carried over: %+v", settings)
	}
}

func TestResolve_Validation(t *testing.T) {
	tests := []struct {
		name  string
		flags Flags
	}{
		{name: "negative timeout", flags: Flags{APIKey: "key", Timeout: -time.Second}},
		{name: "relative base URL", flags: Flags{APIKey: "key", BaseURL: "www.numbeo.com"}},
		{name: "unsupported scheme", flags: Flags{APIKey: "key", BaseURL: "ftp://www.numbeo.com"}},
		{name: "unparseable base URL", flags: Flags{APIKey: "key", BaseURL: "http://[::1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(tt.flags, nil)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !errors.IsErrorType(err, errors.ValidationErrorType) {
				t.Errorf("expected VALIDATION error, got %v", err)
			}
		})
	}
}

func TestSettings_Location(t *testing.T) {
	tests := []struct {
		name        string
		settings    Settings
		expected    string
		expectError bool
	}{
		{name: "city and country", settings: Settings{City: "Berlin", Country: "Germany"}, expected: "Berlin, Germany"},
		{name: "city with region", settings: Settings{City: "San Francisco, CA", Country: "United States"}, expected: "San Francisco, CA, United States"},
		{name: "missing city", settings: Settings{Country: "Germany"}, expectError: true},
		{name: "missing country", settings: Settings{City: "Berlin"}, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, err := tt.settings.Location()
			if tt.expectError {
				if !errors.IsErrorType(err, errors.ValidationErrorType) {
					t.Errorf("expected VALIDATION error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if query != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, query)
			}
		})
	}
}
