// Package errors provides sentinel errors and error types for codee-chess.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrIllegalMove indicates a move that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrNoSave indicates there is no saved game to load.
	ErrNoSave = errors.New("no saved game")

	// ErrCorruptSave indicates a save file that could not be decoded.
	ErrCorruptSave = errors.New("corrupt save file")
)

// SaveError wraps a persistence failure with the file and operation
// involved. It supports unwrapping via errors.Is() and errors.As().
type SaveError struct {
	Err  error  // The underlying error
	Op   string // "load" or "save"
	Path string // Save file path (if known)
}

// Error returns a formatted error message including all available context.
func (e *SaveError) Error() string {
	var parts []string

	if e.Op != "" {
		parts = append(parts, e.Op)
	}
	if e.Path != "" {
		parts = append(parts, e.Path)
	}

	context := strings.Join(parts, " ")
	if context == "" {
		context = "save"
	}

	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the SaveError wrapper.
func (e *SaveError) Unwrap() error {
	return e.Err
}

// MoveError reports a rejected move in a human-readable form.
type MoveError struct {
	Err      error  // The underlying error
	MoveText string // The move text that was rejected
	Reason   string // Why it was rejected (optional)
}

// Error returns a formatted error message.
func (e *MoveError) Error() string {
	msg := fmt.Sprintf("move %q", e.MoveText)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
