package path

import "reflect"

// writeMapSegment implements the Mapping segment-writer contract. Maps
// are always resizable in Go, so unlike the array/sequence writers
// there is no bounds check: an absent key simply gets inserted.
func writeMapSegment(v reflect.Value, p Path, i int, value any, c *ctx) *PathError {
	if v.IsNil() {
		return newDeadEnd(CodeNotModifiable, p, i, "nil map cannot be written to")
	}
	seg := p.Segment(i)
	kv, perr := deriveKey(seg, v.Type().Key(), p, i, c)
	if perr != nil {
		return perr
	}
	elemType := v.Type().Elem()
	vv, err := coerceTo(value, elemType)
	if err != nil {
		return newDeadEnd(CodeTypeMismatch, p, i, err.Error())
	}
	v.SetMapIndex(kv, vv)
	return nil
}

// coerceTo prepares value for assignment into a field/element/map-value
// slot of type t, handling the untyped-nil and numeric-widening cases
// reflect.Value.Set does not do implicitly.
func coerceTo(value any, t reflect.Type) (reflect.Value, error) {
	if value == nil {
		switch t.Kind() {
		case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
			return reflect.Zero(t), nil
		default:
			return reflect.Value{}, errTypeMismatch(t, "nil")
		}
	}
	vv := reflect.ValueOf(value)
	if vv.Type().AssignableTo(t) {
		return vv, nil
	}
	if vv.Type().ConvertibleTo(t) && isNumericOrString(vv.Kind()) && isNumericOrString(t.Kind()) {
		return vv.Convert(t), nil
	}
	return reflect.Value{}, errTypeMismatch(t, vv.Type().String())
}

func isNumericOrString(k reflect.Kind) bool {
	switch k {
	case reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

func errTypeMismatch(want reflect.Type, got string) error {
	return &typeMismatchErr{want: want.String(), got: got}
}

type typeMismatchErr struct{ want, got string }

func (e *typeMismatchErr) Error() string {
	return "cannot assign " + e.got + " to " + e.want
}
