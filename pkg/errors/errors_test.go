// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/fieldptr/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "role_unknown_error",
			code:    errors.ErrRoleUnknown,
			message: "no role named temp",
			wantStr: "[ROLE_UNKNOWN] no role named temp",
		},
		{
			name:    "invalid_input_error",
			code:    errors.ErrInvalidInput,
			message: "empty field name",
			wantStr: "[INVALID_INPUT] empty field name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrRoleIndex, "index %d out of range for %s", -1, "chemistry")
	if err.Message != "index -1 out of range for chemistry" {
		t.Errorf("Newf() message = %q", err.Message)
	}
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("base error")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrConfigLoad, "cannot read case")

		if err.Wrapped != baseErr {
			t.Error("Wrap() should preserve wrapped error")
		}

		wantStr := "[CONFIG_LOAD] cannot read case: base error"
		if got := err.Error(); got != wantStr {
			t.Errorf("Error() = %q, want %q", got, wantStr)
		}
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		if err := errors.Wrap(nil, errors.ErrInternal, "internal error"); err != nil {
			t.Error("Wrap(nil) should return nil")
		}
		if err := errors.Wrapf(nil, errors.ErrInternal, "internal %s", "error"); err != nil {
			t.Error("Wrapf(nil) should return nil")
		}
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrFieldNotFound, "not found").
		WithDetail("name", "temperature").
		WithDetail("id", 4)

	details := errors.GetErrorDetails(err)
	if details["name"] != "temperature" {
		t.Errorf("WithDetail() name = %v", details["name"])
	}
	if details["id"] != 4 {
		t.Errorf("WithDetail() id = %v", details["id"])
	}
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrConfigValid, "error 1")
	err2 := errors.New(errors.ErrConfigValid, "error 2")
	err3 := errors.New(errors.ErrInternal, "error 3")

	if !stderrors.Is(err1, err2) {
		t.Error("errors.Is() should match on code")
	}
	if err1.Is(err3) {
		t.Error("Is() should return false for different codes")
	}
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{"matching_code", errors.New(errors.ErrBind, "x"), errors.ErrBind, true},
		{"different_code", errors.New(errors.ErrBind, "x"), errors.ErrRender, false},
		{"wrapped_error", errors.Wrap(stderrors.New("base"), errors.ErrConfigParse, "bad"), errors.ErrConfigParse, true},
		{"standard_error", stderrors.New("standard error"), errors.ErrNotFound, false},
		{"nil_error", nil, errors.ErrNotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.IsErrorCode(tt.err, tt.code); got != tt.expected {
				t.Errorf("IsErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestErrorChaining(t *testing.T) {
	rootCause := stderrors.New("root cause")
	parseErr := errors.Wrap(rootCause, errors.ErrConfigParse, "cannot parse case")
	loadErr := errors.Wrap(parseErr, errors.ErrConfigLoad, "failed to load case")

	if errors.GetErrorCode(loadErr) != errors.ErrConfigLoad {
		t.Error("Top level should have ErrConfigLoad code")
	}

	var inner *errors.Error
	if !stderrors.As(loadErr.Unwrap(), &inner) || inner.Code != errors.ErrConfigParse {
		t.Error("Middle error should have ErrConfigParse code")
	}

	if !stderrors.Is(loadErr, rootCause) {
		t.Error("Should find root cause with errors.Is")
	}

	if errors.GetErrorCode(rootCause) != errors.ErrUnknown {
		t.Error("Plain errors should report ErrUnknown")
	}
}
