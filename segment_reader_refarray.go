package path

import "reflect"

// readRefArraySegment implements the ReferenceArray segment-reader
// contract: the segment must parse as a nonnegative index, in range. It
// returns the element found at this one segment.
func readRefArraySegment(v reflect.Value, p Path, i int, c *ctx) (any, *PathError) {
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
