package path

import "reflect"

// writePrimArraySegment implements the PrimitiveArray segment-writer
// contract. It shares writeRefArraySegment's addressability caveat.
func writePrimArraySegment(v reflect.Value, p Path, i int, value any) *PathError {
	vv, err := coerceTo(value, v.Type().Elem())
	if err != nil {
		return newDeadEnd(CodeTypeMismatch, p, i, err.Error())
	}
	seg := p.Segment(i)
	idx, ok := indexOfSegment(seg)
	if !ok {
		return newDeadEnd(CodeIndexExpected, p, i, "")
	}
	if idx < 0 || idx >= v.Len() {
		return newDeadEnd(CodeIndexOutOfBounds, p, i, "")
	}
	elem := v.Index(idx)
	if !elem.CanSet() {
		return newDeadEnd(CodeNotModifiable, p, i, "array element is not addressable")
	}
	elem.Set(vv)
	return nil
}
