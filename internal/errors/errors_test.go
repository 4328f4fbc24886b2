package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appError *AppError
		expected string
	}{
		{
			name: "error with wrapped error",
			appError: &AppError{
				Type:    ErrorTypeInput,
				Message: "failed to read input",
				Err:     errors.New("file not found"),
			},
			expected: "input: failed to read input: file not found",
		},
		{
			name: "error without wrapped error",
			appError: &AppError{
				Type:    ErrorTypeParsing,
				Message: "invalid JSON syntax",
				Err:     nil,
			},
			expected: "parsing: invalid JSON syntax",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.appError.Error()
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	wrappedErr := errors.New("wrapped error")
	appErr := &AppError{
		Type:    ErrorTypeInput,
		Message: "test message",
		Err:     wrappedErr,
	}

	result := appErr.Unwrap()
	assert.Equal(t, wrappedErr, result)
}

func TestAppError_Is(t *testing.T) {
	tests := []struct {
		name     string
		appError *AppError
		target   error
		expected bool
	}{
		{
			name:     "matching types",
			appError: NewParsingError("bad document", nil),
			target:   &AppError{Type: ErrorTypeParsing},
			expected: true,
		},
		{
			name:     "different types",
			appError: NewParsingError("bad document", nil),
			target:   &AppError{Type: ErrorTypeOutput},
			expected: false,
		},
		{
			name:     "not an AppError",
			appError: NewInputError("oops", nil),
			target:   errors.New("oops"),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, errors.Is(tt.appError, tt.target))
		})
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name         string
		build        func(string, error) *AppError
		expectedType ErrorType
	}{
		{"input", NewInputError, ErrorTypeInput},
		{"parsing", NewParsingError, ErrorTypeParsing},
		{"analysis", NewAnalysisError, ErrorTypeAnalysis},
		{"render", NewRenderError, ErrorTypeRender},
		{"output", NewOutputError, ErrorTypeOutput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inner := errors.New("inner")
			appErr := tt.build("message", inner)
			assert.Equal(t, tt.expectedType, appErr.Type)
			assert.Equal(t, "message", appErr.Message)
			assert.Equal(t, inner, appErr.Err)
		})
	}
}

func TestUserFriendlyError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "input app error",
			err:      NewInputError("cannot read file", nil),
			expected: "Input error: cannot read file",
		},
		{
			name:     "parsing app error",
			err:      NewParsingError("unexpected token at offset 4", nil),
			expected: "JSON parsing error: unexpected token at offset 4",
		},
		{
			name:     "render app error",
			err:      NewRenderError("bad key style", nil),
			expected: "Rendering error: bad key style",
		},
		{
			name:     "empty input sentinel",
			err:      ErrEmptyInput,
			expected: "Error: The input is empty. Please provide valid JSON data.",
		},
		{
			name:     "file not found sentinel",
			err:      ErrFileNotFound,
			expected: "Error: The specified file could not be found. Please check the file path.",
		},
		{
			name:     "unknown error",
			err:      errors.New("something odd"),
			expected: "Error: something odd",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, UserFriendlyError(tt.err))
		})
	}
}
