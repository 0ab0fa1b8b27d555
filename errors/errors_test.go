package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhaseBind,
				Kind:   KindSignatureMismatch,
				Symbol: "fib",
				Detail: "want (i32)->i64, got (i32)->i32",
			},
			contains: []string{"[bind]", "signature_mismatch", "at fib", "want (i32)->i64"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseLoad,
				Kind:  KindInvalidModule,
			},
			contains: []string{"[load]", "invalid_module"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseCall,
				Kind:   KindCallFailed,
				Symbol: "add",
				Cause:  errors.New("engine exploded"),
			},
			contains: []string{"[call]", "call_failed", "at add", "caused by", "engine exploded"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := CallFailed("multiply", cause)

	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is did not match wrapped cause")
	}
}

func TestError_Is(t *testing.T) {
	err := MissingExport("double")

	if !errors.Is(err, &Error{Phase: PhaseBind, Kind: KindMissingExport}) {
		t.Error("Is should match on phase and kind")
	}
	if errors.Is(err, &Error{Phase: PhaseLoad, Kind: KindMissingExport}) {
		t.Error("Is should not match a different phase")
	}
	if errors.Is(err, &Error{Phase: PhaseBind, Kind: KindInvalidInput}) {
		t.Error("Is should not match a different kind")
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name  string
		err   *Error
		phase Phase
		kind  Kind
	}{
		{"Load", Load("compile failed", errors.New("bad magic")), PhaseLoad, KindInvalidModule},
		{"MissingExport", MissingExport("fib"), PhaseBind, KindMissingExport},
		{"SignatureMismatch", SignatureMismatch("add", "(i32,i32)->i32", "(i64)->i64"), PhaseBind, KindSignatureMismatch},
		{"InvalidInput", InvalidInput(PhaseLoad, "empty module"), PhaseLoad, KindInvalidInput},
		{"NotInitialized", NotInitialized("instance"), PhaseCall, KindNotInitialized},
		{"CallFailed", CallFailed("fib", errors.New("trap")), PhaseCall, KindCallFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Phase != tt.phase {
				t.Errorf("phase = %q, want %q", tt.err.Phase, tt.phase)
			}
			if tt.err.Kind != tt.kind {
				t.Errorf("kind = %q, want %q", tt.err.Kind, tt.kind)
			}
			if tt.err.Error() == "" {
				t.Error("empty error message")
			}
		})
	}
}
