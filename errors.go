package path

import "fmt"

// Code enumerates the dead-end reasons the engine can signal. Every
// Code carries the failing path and segment index via PathError.
type Code string

const (
	CodeNullValue                Code = "NULL_VALUE"
	CodeNoSuchKey                Code = "NO_SUCH_KEY"
	CodeNoSuchProperty           Code = "NO_SUCH_PROPERTY"
	CodeIndexExpected            Code = "INDEX_EXPECTED"
	CodeIndexOutOfBounds         Code = "INDEX_OUT_OF_BOUNDS"
	CodeEmptySegment             Code = "EMPTY_SEGMENT"
	CodeTerminalValue            Code = "TERMINAL_VALUE"
	CodeTypeMismatch             Code = "TYPE_MISMATCH"
	CodeNotModifiable            Code = "NOT_MODIFIABLE"
	CodeKeyDeserializationFailed Code = "KEY_DESERIALIZATION_FAILED"
	CodeException                Code = "EXCEPTION"
)

// PathError is the error raised by Walker.Read/Write in throw mode. It
// always carries the code, the path under traversal, and the segment
// index at which traversal dead-ended.
type PathError struct {
	Code         Code
	Path         Path
	SegmentIndex int
	Message      string
	Cause        error
}

func (e *PathError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s at %q (segment %d): %s", e.Code, e.Path.String(), e.SegmentIndex, e.Message)
	}
	return fmt.Sprintf("%s at %q (segment %d)", e.Code, e.Path.String(), e.SegmentIndex)
}

func (e *PathError) Unwrap() error { return e.Cause }

// Is supports errors.Is(err, SomeCode) style checks by comparing codes
// through a sentinel *PathError whose only populated field is Code.
func (e *PathError) Is(target error) bool {
	te, ok := target.(*PathError)
	if !ok {
		return false
	}
	return te.Code == e.Code
}

func newDeadEnd(code Code, p Path, segIdx int, msg string) *PathError {
	return &PathError{Code: code, Path: p, SegmentIndex: segIdx, Message: msg}
}

// newDeadEndWithCause is like newDeadEnd but also wraps cause, so
// errors.Unwrap/errors.As can reach it (e.g. an *invoke.NoAccessorsError
// behind a CodeTerminalValue dead end).
func newDeadEndWithCause(code Code, p Path, segIdx int, cause error) *PathError {
	return &PathError{Code: code, Path: p, SegmentIndex: segIdx, Message: cause.Error(), Cause: cause}
}

// Sentinel errors for errors.Is, one per Code, alongside Code.Sentinel
// itself (which these are built from) for callers who'd rather match a
// plain error value than import the Code type.
var (
	ErrNullValue                = CodeNullValue.Sentinel()
	ErrNoSuchKey                = CodeNoSuchKey.Sentinel()
	ErrNoSuchProperty           = CodeNoSuchProperty.Sentinel()
	ErrIndexExpected            = CodeIndexExpected.Sentinel()
	ErrIndexOutOfBounds         = CodeIndexOutOfBounds.Sentinel()
	ErrEmptySegment             = CodeEmptySegment.Sentinel()
	ErrTerminalValue            = CodeTerminalValue.Sentinel()
	ErrTypeMismatch             = CodeTypeMismatch.Sentinel()
	ErrNotModifiable            = CodeNotModifiable.Sentinel()
	ErrKeyDeserializationFailed = CodeKeyDeserializationFailed.Sentinel()
	ErrException                = CodeException.Sentinel()
)

// Sentinel returns a *PathError usable with errors.Is(err, CodeX.Sentinel())
// to test only the code, ignoring path/segment/message.
func (c Code) Sentinel() error { return &PathError{Code: c} }
