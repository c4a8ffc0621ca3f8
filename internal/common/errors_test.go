package common

import (
	"errors"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestAppErrorUnwrapsSentinel(t *testing.T) {
	err := NewAppError("CONFIG_ERROR", "WORKERS must be positive", ErrInvalidInput)
	if !errors.Is(err, ErrInvalidInput) {
		t.Error("AppError must unwrap to its cause sentinel")
	}
	want := "CONFIG_ERROR: WORKERS must be positive: invalid input"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestAppErrorWithoutCause(t *testing.T) {
	err := NewAppError("CODE", "message", nil)
	if err.Error() != "CODE: message" {
		t.Errorf("Error() = %q", err.Error())
	}
	if err.Unwrap() != nil {
		t.Error("expected nil Unwrap for causeless error")
	}
}

func TestValidateUsesInvalidInput(t *testing.T) {
	cfg := &Config{}
	err := cfg.Validate()
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Validate error should match ErrInvalidInput, got %v", err)
	}
}

func TestWrapError(t *testing.T) {
	if WrapError(nil, "context") != nil {
		t.Error("wrapping nil must stay nil")
	}
	base := errors.New("boom")
	wrapped := WrapError(base, "doing thing")
	if !errors.Is(wrapped, base) {
		t.Error("wrapped error must unwrap to the base error")
	}
	if wrapped.Error() != "doing thing: boom" {
		t.Errorf("unexpected message %q", wrapped.Error())
	}
}

func TestGRPCHelpers(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code codes.Code
	}{
		{"invalid argument", InvalidArgumentError("bad"), codes.InvalidArgument},
		{"invalid argument f", InvalidArgumentErrorf("bad %d", 7), codes.InvalidArgument},
		{"not found", NotFoundError("missing"), codes.NotFound},
		{"internal", InternalError("broken"), codes.Internal},
		{"internal f", InternalErrorf("broken %s", "badly"), codes.Internal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := status.Code(tt.err); got != tt.code {
				t.Errorf("code = %v, want %v", got, tt.code)
			}
		})
	}
}
