package path

import (
	"reflect"

	"github.com/klojang-go/path/invoke"
)

// writeRecordSegment implements the Record segment-writer contract.
// Writes require the bean to have been reached through a pointer; for a
// non-pointer record Setter.Write returns an error, which is reported as
// CodeTypeMismatch rather than silently writing to a throwaway copy.
// A type with no qualifying setters at all is a terminal value, not a
// missing property.
func writeRecordSegment(v reflect.Value, p Path, i int, value any, c *ctx) *PathError {
	seg := p.Segment(i)
	if seg == nil || *seg == "" {
		return newDeadEnd(CodeEmptySegment, p, i, "")
	}
	t := v.Type()
	setters := invoke.Setters(t, invoke.AccessMode(c.access))
	if len(setters) == 0 {
		return newDeadEndWithCause(CodeTerminalValue, p, i, &invoke.NoAccessorsError{Type: t.String(), Kind: "writable"})
	}
	s, ok := setters[*seg]
	if !ok {
		return newDeadEnd(CodeNoSuchProperty, p, i, "")
	}
	if err := s.Write(v.Interface(), value); err != nil {
		return newDeadEnd(CodeTypeMismatch, p, i, err.Error())
	}
	return nil
}
