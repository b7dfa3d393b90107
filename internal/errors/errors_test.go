package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestConfigError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ConfigError
		expected string
	}{
		{
			name: "message only",
			err: &ConfigError{
				Code:    ErrCodeValidation,
				Message: "invalid input",
			},
			expected: "invalid input",
		},
		{
			name: "with path",
			err: &ConfigError{
				Code:    ErrCodeNotInitialized,
				Message: "configuration not initialized",
				Path:    "/home/dev/.config/parka/config.json",
			},
			expected: "/home/dev/.config/parka/config.json: configuration not initialized",
		},
		{
			name: "with underlying error",
			err: &ConfigError{
				Code:    ErrCodeFilesystem,
				Message: "failed to load",
				Err:     fmt.Errorf("file not found"),
			},
			expected: "failed to load: file not found",
		},
		{
			name: "with path and underlying error",
			err: &ConfigError{
				Code:    ErrCodeMalformed,
				Message: "failed to decode",
				Path:    "/tmp/config.json",
				Err:     fmt.Errorf("unexpected end of JSON input"),
			},
			expected: "/tmp/config.json: failed to decode: unexpected end of JSON input",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.err.Error()
			if result != tt.expected {
				t.Errorf("Error() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestConfigError_Unwrap(t *testing.T) {
	underlying := fmt.Errorf("underlying error")
	err := &ConfigError{
		Code:    ErrCodeFilesystem,
		Message: "wrapped error",
		Err:     underlying,
	}

	if err.Unwrap() != underlying {
		t.Errorf("Unwrap() did not return underlying error")
	}

	errNoWrap := &ConfigError{
		Code:    ErrCodeValidation,
		Message: "no underlying",
	}

	if errNoWrap.Unwrap() != nil {
		t.Errorf("Unwrap() should return nil when no underlying error")
	}
}

func TestConfigError_Is(t *testing.T) {
	tests := []struct {
		name     string
		err      *ConfigError
		target   error
		expected bool
	}{
		{
			name:     "matches sentinel error",
			err:      &ConfigError{Code: ErrCodeNotInitialized, Message: "custom message"},
			target:   ErrNotInitialized,
			expected: true,
		},
		{
			name:     "different code",
			err:      &ConfigError{Code: ErrCodeNotInitialized},
			target:   ErrMalformedConfig,
			expected: false,
		},
		{
			name:     "non-ConfigError target",
			err:      &ConfigError{Code: ErrCodeNotInitialized},
			target:   fmt.Errorf("regular error"),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if errors.Is(tt.err, tt.target) != tt.expected {
				t.Errorf("Is() = %v, want %v", !tt.expected, tt.expected)
			}
		})
	}
}

func TestConstructors(t *testing.T) {
	t.Run("NotInitialized", func(t *testing.T) {
		err := NotInitialized("/tmp/config.json")
		if !errors.Is(err, ErrNotInitialized) {
			t.Error("NotInitialized should match ErrNotInitialized")
		}
		var cfgErr *ConfigError
		if !errors.As(err, &cfgErr) {
			t.Fatal("expected a *ConfigError")
		}
		if cfgErr.Path != "/tmp/config.json" {
			t.Errorf("expected path /tmp/config.json, got %s", cfgErr.Path)
		}
	})

	t.Run("Malformed", func(t *testing.T) {
		cause := fmt.Errorf("invalid character '}'")
		err := Malformed("/tmp/config.json", cause)
		if !errors.Is(err, ErrMalformedConfig) {
			t.Error("Malformed should match ErrMalformedConfig")
		}
		if !errors.Is(err, cause) {
			t.Error("Malformed should wrap the cause")
		}
	})

	t.Run("Wrap", func(t *testing.T) {
		cause := fmt.Errorf("disk full")
		err := Wrap(ErrCodeFilesystem, "failed to write", cause)
		var cfgErr *ConfigError
		if !errors.As(err, &cfgErr) {
			t.Fatal("expected a *ConfigError")
		}
		if cfgErr.Code != ErrCodeFilesystem {
			t.Errorf("expected FILESYSTEM code, got %s", cfgErr.Code)
		}
		if !errors.Is(err, cause) {
			t.Error("Wrap should preserve the cause")
		}
	})

	t.Run("Validation", func(t *testing.T) {
		err := Validation("path must be absolute")
		var cfgErr *ConfigError
		if !errors.As(err, &cfgErr) {
			t.Fatal("expected a *ConfigError")
		}
		if cfgErr.Code != ErrCodeValidation {
			t.Errorf("expected VALIDATION code, got %s", cfgErr.Code)
		}
	})
}
