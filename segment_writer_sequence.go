package path

import (
	"container/list"
	"reflect"
)

// writeSequenceSegment implements the OrderedSequence segment-writer
// contract. container/list elements are always writable through their
// exported Value field; slice elements are subject to the same
// addressability caveat as the array writers.
func writeSequenceSegment(v reflect.Value, p Path, i int, value any) *PathError {
	seg := p.Segment(i)
	if l, isList := isOrderedSequenceList(v); isList {
		idx, ok := indexOfSegment(seg)
		if !ok {
			return newDeadEnd(CodeIndexExpected, p, i, "")
		}
		if idx < 0 {
			return newDeadEnd(CodeIndexOutOfBounds, p, i, "")
		}
		return writeListElem(l, idx, p, i, value)
	}
	vv, err := coerceTo(value, v.Type().Elem())
	if err != nil {
		return newDeadEnd(CodeTypeMismatch, p, i, err.Error())
	}
	idx, ok := indexOfSegment(seg)
	if !ok {
		return newDeadEnd(CodeIndexExpected, p, i, "")
	}
	if idx < 0 || idx >= v.Len() {
		return newDeadEnd(CodeIndexOutOfBounds, p, i, "")
	}
	elem := v.Index(idx)
	if !elem.CanSet() {
		return newDeadEnd(CodeNotModifiable, p, i, "slice element is not addressable")
	}
	elem.Set(vv)
	return nil
}

func writeListElem(l *list.List, idx int, p Path, i int, value any) *PathError {
	e := l.Front()
	for n := 0; e != nil && n < idx; n++ {
		e = e.Next()
	}
	if e == nil {
		return newDeadEnd(CodeIndexOutOfBounds, p, i, "")
	}
	e.Value = value
	return nil
}
