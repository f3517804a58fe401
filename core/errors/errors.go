// Package errors provides the error taxonomy shared by the sol-fa grammar engine
// and the tools built around it.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common cases
var (
	// ErrSyntax indicates the input does not match the notation grammar
	ErrSyntax = errors.New("syntax error")
	// ErrOverflow indicates a digit run or mark count does not fit in 16 bits
	ErrOverflow = errors.New("numeric overflow")
	// ErrStructuralMismatch indicates a staff whose voices have different lengths
	ErrStructuralMismatch = errors.New("structural mismatch")
	// ErrInvalidInput indicates invalid input or validation failure
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnsupported indicates an unsupported operation or format
	ErrUnsupported = errors.New("unsupported")
)

// Kind classifies a syntax error by the grammar region that rejected the input.
type Kind string

const (
	// KindMetadata indicates a header line that is not of the "key: value" shape.
	KindMetadata Kind = "metadata-syntax"
	// KindMissingSeparator indicates the "---" header separator line was not found.
	KindMissingSeparator Kind = "missing-separator"
	// KindVoice indicates a malformed note, rhythm token, underline group or bar.
	KindVoice Kind = "voice-syntax"
	// KindDynamics indicates an unrecognized mark or malformed position.
	KindDynamics Kind = "dynamics-syntax"
	// KindLyrics indicates an unterminated chunk or verse.
	KindLyrics Kind = "lyrics-syntax"
)

// SyntaxError reports the input position at which no alternative could match.
type SyntaxError struct {
	Kind     Kind     // Grammar region that failed
	Offset   int      // Byte offset into the parsed input
	Line     int      // 1-based line
	Column   int      // 1-based column, in bytes
	Expected []string // What the grammar would have accepted at Offset
	Found    string   // Input found at Offset (truncated), empty at end of input
	Err      error    // Underlying error, if any
}

func (e *SyntaxError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s at %d:%d", e.Kind, e.Line, e.Column)
	if len(e.Expected) > 0 {
		sb.WriteString(": expected ")
		sb.WriteString(strings.Join(e.Expected, " or "))
	}
	if e.Found != "" {
		fmt.Fprintf(&sb, ", found %q", e.Found)
	} else if len(e.Expected) > 0 {
		sb.WriteString(", found end of input")
	}
	if e.Err != nil {
		fmt.Fprintf(&sb, ": %v", e.Err)
	}
	return sb.String()
}

func (e *SyntaxError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrSyntax
}

// Is reports whether target is ErrSyntax, so wrapped underlying errors
// do not hide the classification.
func (e *SyntaxError) Is(target error) bool {
	return target == ErrSyntax
}

// OverflowError represents a digit run or repeated mark that exceeds the
// 16-bit width of positions and octave counts.
type OverflowError struct {
	Offset int    // Byte offset of the digit run or mark run
	Line   int    // 1-based line
	Column int    // 1-based column
	Digits string // Offending text
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("numeric overflow at %d:%d: %q exceeds 65535", e.Line, e.Column, e.Digits)
}

func (e *OverflowError) Unwrap() error {
	return ErrOverflow
}

// StructuralMismatchError represents a staff whose four voices do not have
// the same number of measures.
type StructuralMismatchError struct {
	Staff   int    // 0-based staff index within the document
	Lengths [4]int // Measure count of each voice
}

func (e *StructuralMismatchError) Error() string {
	return fmt.Sprintf("staff %d: voice lengths differ: %d/%d/%d/%d",
		e.Staff, e.Lengths[0], e.Lengths[1], e.Lengths[2], e.Lengths[3])
}

func (e *StructuralMismatchError) Unwrap() error {
	return ErrStructuralMismatch
}

// ValidationError represents an input validation error with context
type ValidationError struct {
	Field   string // Field name that failed validation
	Value   string // Value that failed validation (may be redacted)
	Message string // Human-readable error message
	Err     error  // Underlying error, if any
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func (e *ValidationError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrInvalidInput
}

// IOError represents an I/O operation error with context
type IOError struct {
	Operation string // Operation being performed (e.g., "read", "open", "decompress")
	Path      string // File path involved
	Err       error  // Underlying error
}

func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("failed to %s %s: %v", e.Operation, e.Path, e.Err)
	}
	return fmt.Sprintf("failed to %s: %v", e.Operation, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// UnsupportedError represents an unsupported feature or format
type UnsupportedError struct {
	Feature string // Feature or format that is unsupported
	Reason  string // Why it's not supported
	Err     error  // Underlying error, if any
}

func (e *UnsupportedError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("unsupported %s: %s", e.Feature, e.Reason)
	}
	return fmt.Sprintf("unsupported %s", e.Feature)
}

func (e *UnsupportedError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrUnsupported
}

// Helper functions for creating common errors

// NewSyntax creates a SyntaxError
func NewSyntax(kind Kind, offset, line, column int, expected []string, found string) *SyntaxError {
	return &SyntaxError{
		Kind:     kind,
		Offset:   offset,
		Line:     line,
		Column:   column,
		Expected: expected,
		Found:    found,
	}
}

// NewOverflow creates an OverflowError
func NewOverflow(offset, line, column int, digits string) *OverflowError {
	return &OverflowError{
		Offset: offset,
		Line:   line,
		Column: column,
		Digits: digits,
	}
}

// NewStructuralMismatch creates a StructuralMismatchError
func NewStructuralMismatch(staff int, lengths [4]int) *StructuralMismatchError {
	return &StructuralMismatchError{
		Staff:   staff,
		Lengths: lengths,
	}
}

// NewValidation creates a ValidationError
func NewValidation(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// NewIO creates an IOError
func NewIO(operation, path string, err error) *IOError {
	return &IOError{
		Operation: operation,
		Path:      path,
		Err:       err,
	}
}

// NewUnsupported creates an UnsupportedError
func NewUnsupported(feature, reason string) *UnsupportedError {
	return &UnsupportedError{
		Feature: feature,
		Reason:  reason,
	}
}

// KindOf returns the syntax kind of err, or "" if err is not a SyntaxError.
func KindOf(err error) Kind {
	var se *SyntaxError
	if errors.As(err, &se) {
		return se.Kind
	}
	return ""
}

// Wrap adds context to an error. If err is nil, returns nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf adds formatted context to an error. If err is nil, returns nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// Is wraps errors.Is for convenience
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As wraps errors.As for convenience
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
