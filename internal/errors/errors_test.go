package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors_Wrapping verifies wrapped sentinel errors can still be detected
func TestSentinelErrors_Wrapping(t *testing.T) {
	tests := []struct {
		name     string
		sentinel error
	}{
		{"ErrInvalidFEN", ErrInvalidFEN},
		{"ErrIllegalMove", ErrIllegalMove},
		{"ErrInvalidConfig", ErrInvalidConfig},
		{"ErrNoSave", ErrNoSave},
		{"ErrCorruptSave", ErrCorruptSave},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("outer: %w", tt.sentinel)
			if !errors.Is(wrapped, tt.sentinel) {
				t.Errorf("errors.Is(wrapped, %v) = false, want true", tt.sentinel)
			}
		})
	}
}

// TestSaveError_Error verifies the error message format
func TestSaveError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *SaveError
		contains []string
	}{
		{
			name:     "full context",
			err:      &SaveError{Err: ErrCorruptSave, Op: "load", Path: "chess.json"},
			contains: []string{"load", "chess.json", "corrupt save file"},
		},
		{
			name:     "minimal context",
			err:      &SaveError{Err: ErrNoSave},
			contains: []string{"save", "no saved game"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsIgnoreCase(msg, s) {
					t.Errorf("SaveError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

// TestSaveError_As verifies that errors.As and errors.Is work through SaveError
func TestSaveError_As(t *testing.T) {
	saveErr := &SaveError{Err: ErrNoSave, Op: "load", Path: "slot.json"}
	wrapped := fmt.Errorf("startup: %w", saveErr)

	var extracted *SaveError
	if !errors.As(wrapped, &extracted) {
		t.Fatal("errors.As() could not extract SaveError")
	}
	if extracted.Path != "slot.json" {
		t.Errorf("extracted.Path = %q, want %q", extracted.Path, "slot.json")
	}
	if !errors.Is(wrapped, ErrNoSave) {
		t.Error("errors.Is(wrapped, ErrNoSave) = false, want true")
	}
}

// TestMoveError verifies MoveError formatting and unwrapping
func TestMoveError(t *testing.T) {
	err := &MoveError{Err: ErrIllegalMove, MoveText: "e2e5", Reason: "not a legal destination"}

	msg := err.Error()
	for _, s := range []string{"e2e5", "not a legal destination", "illegal move"} {
		if !containsIgnoreCase(msg, s) {
			t.Errorf("MoveError.Error() = %q, should contain %q", msg, s)
		}
	}
	if !errors.Is(err, ErrIllegalMove) {
		t.Error("errors.Is(err, ErrIllegalMove) = false, want true")
	}
}

// TestWrap verifies the Wrap helper function
func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrInvalidFEN, "parsing FEN string")

	if !errors.Is(wrapped, ErrInvalidFEN) {
		t.Error("Wrap should preserve the underlying error")
	}
	if !containsIgnoreCase(wrapped.Error(), "parsing FEN string") {
		t.Errorf("Wrap should include context, got %q", wrapped.Error())
	}
	if Wrap(nil, "nothing") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

// TestWrapf verifies the Wrapf helper function
func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrIllegalMove, "ply %d", 15)

	if !errors.Is(wrapped, ErrIllegalMove) {
		t.Error("Wrapf should preserve the underlying error")
	}
	if !containsIgnoreCase(wrapped.Error(), "ply 15") {
		t.Errorf("Wrapf should include formatted context, got %q", wrapped.Error())
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
