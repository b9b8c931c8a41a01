package path

import "reflect"

// writeRefArraySegment implements the ReferenceArray segment-writer
// contract. Go arrays obtained through an any value are addressable
// only when the any actually wraps a pointer to the array, or the
// array was reached by dereferencing one further up the chain; a
// genuinely unaddressable array yields CodeNotModifiable rather than
// panicking.
func writeRefArraySegment(v reflect.Value, p Path, i int, value any) *PathError {
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
