package errors

import (
	stderrors "errors"
	"fmt"
	"sort"
	"strings"
)

// ErrorType represents the category of error
type ErrorType string

const (
	// ConfigErrorType represents configuration-related errors, such as a missing API key
	ConfigErrorType ErrorType = "CONFIG"
	// AuthErrorType represents credentials rejected by the Numbeo API
	AuthErrorType ErrorType = "AUTH"
	// APIErrorType represents unexpected responses from the Numbeo API
	APIErrorType ErrorType = "API"
	// NetworkErrorType represents transport failures while talking to the API
	NetworkErrorType ErrorType = "NETWORK"
	// ValidationErrorType represents invalid flags or arguments
	ValidationErrorType ErrorType = "VALIDATION"
	// FileErrorType represents file system-related errors
	FileErrorType ErrorType = "FILE"
	// NoDataErrorType represents an API answer that carried nothing to display
	NoDataErrorType ErrorType = "NO_DATA"
	// UsageErrorType represents command lines rejected by the argument parser
	UsageErrorType ErrorType = "USAGE"
	// OutputErrorType represents failures while rendering or writing results
	OutputErrorType ErrorType = "OUTPUT"
)

// AppError is the base error type for all application errors
type AppError struct {
	Type        ErrorType
	Message     string
	Context     map[string]interface{}
	Cause       error
	Suggestions []string
}

// Error implements the error interface
func (e *AppError) Error() string {
	var parts []string

	parts = append(parts, fmt.Sprintf("[%s]", e.Type))
	parts = append(parts, e.Message)

	if len(e.Context) > 0 {
		var contextParts []string
		for _, key := range e.contextKeys() {
			contextParts = append(contextParts, fmt.Sprintf("%s=%v", key, e.Context[key]))
		}
		parts = append(parts, fmt.Sprintf("(%s)", strings.Join(contextParts, ", ")))
	}

	if e.Cause != nil {
		parts = append(parts, fmt.Sprintf("caused by: %v", e.Cause))
	}

	return strings.Join(parts, " ")
}

// Unwrap returns the underlying cause error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches the target error type
func (e *AppError) Is(target error) bool {
	if targetErr, ok := target.(*AppError); ok {
		return e.Type == targetErr.Type
	}
	return false
}

// WithContext adds context information to the error
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// WithSuggestion adds a suggestion to help resolve the error
func (e *AppError) WithSuggestion(suggestion string) *AppError {
	e.Suggestions = append(e.Suggestions, suggestion)
	return e
}

// GetSuggestions returns formatted suggestions for resolving the error
func (e *AppError) GetSuggestions() string {
	if len(e.Suggestions) == 0 {
		return ""
	}

	var result strings.Builder
	result.WriteString("Suggestions:\n")
	for i, suggestion := range e.Suggestions {
		result.WriteString(fmt.Sprintf("  %d. %s\n", i+1, suggestion))
	}
	return result.String()
}

func (e *AppError) contextKeys() []string {
	keys := make([]string, 0, len(e.Context))
	for key := range e.Context {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func newError(errorType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

// ConfigError creates a new configuration error
func ConfigError(message string) *AppError {
	return newError(ConfigErrorType, message, nil)
}

// AuthError creates a new authentication error
func AuthError(message string) *AppError {
	return newError(AuthErrorType, message, nil)
}

// APIErrorf creates a new Numbeo API error with formatting
func APIErrorf(format string, args ...interface{}) *AppError {
	return newError(APIErrorType, fmt.Sprintf(format, args...), nil)
}

// APIErrorWithCause creates a new Numbeo API error with a cause
func APIErrorWithCause(message string, cause error) *AppError {
	return newError(APIErrorType, message, cause)
}

// NetworkErrorWithCause creates a new network error with a cause
func NetworkErrorWithCause(message string, cause error) *AppError {
	return newError(NetworkErrorType, message, cause)
}

// ValidationError creates a new validation error
func ValidationError(message string) *AppError {
	return newError(ValidationErrorType, message, nil)
}

// ValidationErrorf creates a new validation error with formatting
func ValidationErrorf(format string, args ...interface{}) *AppError {
	return newError(ValidationErrorType, fmt.Sprintf(format, args...), nil)
}

// FileErrorWithCause creates a new file system error with a cause
func FileErrorWithCause(message string, cause error) *AppError {
	return newError(FileErrorType, message, cause)
}

// NoDataError creates a new error for empty API answers
func NoDataError(message string) *AppError {
	return newError(NoDataErrorType, message, nil)
}

// UsageError creates a new command line usage error
func UsageError(message string) *AppError {
	return newError(UsageErrorType, message, nil)
}

// OutputErrorWithCause creates a new output error with a cause
func OutputErrorWithCause(message string, cause error) *AppError {
	return newError(OutputErrorType, message, cause)
}

// WrapError wraps an existing error with additional context
func WrapError(err error, errorType ErrorType, message string) *AppError {
	if err == nil {
		return nil
	}

	// An empty errorType keeps the category of the wrapped AppError
	var appErr *AppError
	if stderrors.As(err, &appErr) && errorType == "" {
		wrapped := &AppError{
			Type:        appErr.Type,
			Message:     message,
			Cause:       err,
			Suggestions: append([]string(nil), appErr.Suggestions...),
		}
		for key, value := range appErr.Context {
			wrapped.WithContext(key, value)
		}
		return wrapped
	}

	return newError(errorType, message, err)
}

// IsErrorType checks if an error is of a specific type
func IsErrorType(err error, errorType ErrorType) bool {
	return GetErrorType(err) == errorType && errorType != ""
}

// GetErrorType returns the error type of an error, or empty string if not an AppError
func GetErrorType(err error) ErrorType {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Type
	}
	return ""
}

// FormatErrorForUser formats an error in a user-friendly way
func FormatErrorForUser(err error) string {
	if err == nil {
		return ""
	}

	var appErr *AppError
	if !stderrors.As(err, &appErr) {
		return fmt.Sprintf("Error: %v\n", err)
	}

	var result strings.Builder

	result.WriteString(fmt.Sprintf("Error: %s\n", appErr.Message))

	if len(appErr.Context) > 0 {
		result.WriteString("Details:\n")
		for _, key := range appErr.contextKeys() {
			result.WriteString(fmt.Sprintf("  %s: %v\n", key, appErr.Context[key]))
		}
	}

	if appErr.Cause != nil {
		result.WriteString(fmt.Sprintf("Cause: %v\n", appErr.Cause))
	}

	if len(appErr.Suggestions) > 0 {
		result.WriteString("\n")
		result.WriteString(appErr.GetSuggestions())
	}

	return result.String()
}

// GetExitCode returns an appropriate exit code based on error type
func GetExitCode(err error) int {
	if err == nil {
		return 0
	}

	switch GetErrorType(err) {
	case ConfigErrorType, UsageErrorType:
		return 2
	case AuthErrorType:
		return 3
	case APIErrorType:
		return 4
	case NetworkErrorType:
		return 5
	case ValidationErrorType:
		return 6
	case FileErrorType:
		return 7
	default:
		// NO_DATA, OUTPUT and foreign errors share the generic failure code
		return 1
	}
}
