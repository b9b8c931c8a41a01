package path

import (
	"reflect"

	"github.com/klojang-go/path/invoke"
)

// readRecordSegment implements the Record segment-reader contract:
// the segment must be a non-null, non-empty property name resolvable
// by the invoke registry, either through a getter method or (for
// record-like types with no qualifying methods) direct field access.
// It returns the property value found at this one segment. A type with
// no qualifying getters at all (every scalar: int, string, bool, ...)
// is a terminal value, not a missing property.
func readRecordSegment(v reflect.Value, p Path, i int, c *ctx) (any, *PathError) {
	seg := p.Segment(i)
	if seg == nil || *seg == "" {
		return nil, newDeadEnd(CodeEmptySegment, p, i, "")
	}
	t := v.Type()
	getters := invoke.Getters(t, invoke.Strict, invoke.AccessMode(c.access))
	if len(getters) == 0 {
		return nil, newDeadEndWithCause(CodeTerminalValue, p, i, &invoke.NoAccessorsError{Type: t.String(), Kind: "readable"})
	}
	g, ok := getters[*seg]
	if !ok {
		return nil, newDeadEnd(CodeNoSuchProperty, p, i, "")
	}
	val, err := g.Read(v.Interface())
	if err != nil {
		return nil, newDeadEnd(CodeException, p, i, err.Error())
	}
	return val, nil
}
