package path

import "reflect"

// readPrimArraySegment implements the PrimitiveArray segment-reader
// contract. It is functionally identical to readRefArraySegment; it is
// kept as its own handler to mirror the spec's five-way node
// classification rather than collapsing array kinds into one path.
func readPrimArraySegment(v reflect.Value, p Path, i int, c *ctx) (any, *PathError) {
	seg := p.Segment(i)
	idx, ok := indexOfSegment(seg)
	if !ok {
		return nil, newDeadEnd(CodeIndexExpected, p, i, "")
	}
	if idx < 0 || idx >= v.Len() {
		return nil, newDeadEnd(CodeIndexOutOfBounds, p, i, "")
	}
	return v.Index(idx).Interface(), nil
}
