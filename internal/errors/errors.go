// Package errors provides sentinel errors and error types for the chess core.
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
	// ErrIllegalMove indicates a move that is not in the legal-move set.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidSelection indicates a square without a piece of the side to move.
	ErrInvalidSelection = errors.New("invalid selection")

	// ErrInvalidPromotion indicates a promotion answer that names no promotable piece.
	ErrInvalidPromotion = errors.New("invalid promotion choice")

	// ErrStaleUndo indicates an undo record that is not the most recent one.
	ErrStaleUndo = errors.New("undo record is not the latest move")

	// ErrInvalidLayout indicates a malformed board diagram.
	ErrInvalidLayout = errors.New("invalid board layout")

	// ErrInvalidSquare indicates a malformed square name.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrNoSavedGame indicates that no unfinished game was stored.
	ErrNoSavedGame = errors.New("no saved game")
)

// GameError wraps errors with game context: the ply, the square involved
// and the move text. It implements the error interface and supports
// unwrapping via errors.Is() and errors.As().
type GameError struct {
	Err    error  // The underlying error
	Ply    int    // Ply number where error occurred (0 if not applicable)
	Square string // Square involved (if applicable)
	Move   string // The move text that caused the error (if applicable)
}

// Error returns a formatted error message including all available context.
func (e *GameError) Error() string {
	var parts []string

	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}
	if e.Square != "" {
		parts = append(parts, fmt.Sprintf("square %s", e.Square))
	}
	if e.Move != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.Move))
	}

	context := strings.Join(parts, ", ")

	switch {
	case e.Err != nil && context != "":
		return fmt.Sprintf("%s: %v", context, e.Err)
	case e.Err != nil:
		return e.Err.Error()
	case context != "":
		return context
	}
	return "game error"
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the GameError wrapper.
func (e *GameError) Unwrap() error {
	return e.Err
}

// LayoutError represents a board diagram error with its location.
type LayoutError struct {
	Err error  // The underlying error
	Row int    // Diagram row (0-based, -1 if not applicable)
	Col int    // Diagram column (0-based, -1 if not applicable)
	Got string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *LayoutError) Error() string {
	var parts []string

	if e.Row >= 0 {
		loc := fmt.Sprintf("row %d", e.Row)
		if e.Col >= 0 {
			loc += fmt.Sprintf(" col %d", e.Col)
		}
		parts = append(parts, loc)
	}
	if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %s", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "layout error"
}

// Unwrap returns the underlying error.
func (e *LayoutError) Unwrap() error {
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

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
