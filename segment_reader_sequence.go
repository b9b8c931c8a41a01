package path

import (
	"container/list"
	"reflect"
)

// readSequenceSegment implements the OrderedSequence segment-reader
// contract, covering both Go slices (random access) and container/list
// lists (walked element by element, matching the original's O(index)
// traversal of a non-array-backed ordered collection). It returns the
// element found at this one segment.
func readSequenceSegment(v reflect.Value, p Path, i int, c *ctx) (any, *PathError) {
	seg := p.Segment(i)
	idx, ok := indexOfSegment(seg)
	if !ok {
		return nil, newDeadEnd(CodeIndexExpected, p, i, "")
	}
	if idx < 0 {
		return nil, newDeadEnd(CodeIndexOutOfBounds, p, i, "")
	}
	if l, isList := isOrderedSequenceList(v); isList {
		return readListElem(l, idx, p, i)
	}
	if idx >= v.Len() {
		return nil, newDeadEnd(CodeIndexOutOfBounds, p, i, "")
	}
	return v.Index(idx).Interface(), nil
}

func readListElem(l *list.List, idx int, p Path, i int) (any, *PathError) {
	e := l.Front()
	for n := 0; e != nil && n < idx; n++ {
		e = e.Next()
	}
	if e == nil {
		return nil, newDeadEnd(CodeIndexOutOfBounds, p, i, "")
	}
	return e.Value, nil
}
