package path

import (
	"container/list"
	"reflect"
)

// kind is the closed tagged variant the engine classifies every node
// into. The classification order mirrors the priority mandated by the
// package: null, then mapping, then reference array, then ordered
// sequence, then primitive array, then record.
type kind int

const (
	kindNull kind = iota
	kindMapping
	kindReferenceArray
	kindOrderedSequence
	kindPrimitiveArray
	kindRecord
)

// classify inspects v (which must already have been dereferenced of any
// nil-checks by the caller) and returns its structural category along
// with the reflect.Value to operate on (pointers to structs are kept as
// the pointer itself, since that is the addressable, settable form a
// Record segment handler needs).
func classify(v reflect.Value) (kind, reflect.Value) {
	if !v.IsValid() {
		return kindNull, v
	}
	for v.Kind() == reflect.Interface {
		if v.IsNil() {
			return kindNull, v
		}
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.Ptr:
		if v.IsNil() {
			return kindNull, v
		}
		if v.Type() == reflect.TypeOf(&list.List{}) {
			return kindOrderedSequence, v
		}
		if v.Elem().Kind() == reflect.Struct {
			return kindRecord, v
		}
		return classify(v.Elem())
	case reflect.Map:
		if v.IsNil() {
			return kindNull, v
		}
		return kindMapping, v
	case reflect.Array:
		if isPrimitiveElem(v.Type().Elem()) {
			return kindPrimitiveArray, v
		}
		return kindReferenceArray, v
	case reflect.Slice:
		if v.IsNil() {
			return kindNull, v
		}
		if isPrimitiveElem(v.Type().Elem()) {
			return kindPrimitiveArray, v
		}
		return kindOrderedSequence, v
	case reflect.Struct:
		// *container/list.List is handled above as a pointer; a bare
		// list.List value (rare, but possible) is also a sequence.
		if v.Type() == reflect.TypeOf(list.List{}) {
			return kindOrderedSequence, v
		}
		return kindRecord, v
	default:
		// scalars (numbers, strings, bools, funcs, chans) are leaves;
		// they are reported as records with no readers, i.e. terminal.
		return kindRecord, v
	}
}

func isPrimitiveElem(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

// isOrderedSequenceList reports whether v (already unwrapped of
// interfaces) is a *container/list.List, the engine's OrderedSequence
// representative for collections that are not backed by a dense array.
func isOrderedSequenceList(v reflect.Value) (*list.List, bool) {
	if v.Kind() == reflect.Ptr && v.Type() == reflect.TypeOf(&list.List{}) {
		if v.IsNil() {
			return nil, false
		}
		return v.Interface().(*list.List), true
	}
	if v.Kind() == reflect.Struct && v.Type() == reflect.TypeOf(list.List{}) {
		if v.CanAddr() {
			return v.Addr().Interface().(*list.List), true
		}
		l := v.Interface().(list.List)
		return &l, true
	}
	return nil, false
}
