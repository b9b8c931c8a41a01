package invoke

import "reflect"

// Getter is a bound read-handle for a single named property, carrying
// the property name, its declared type, and the invocation primitive
// (either a zero-argument method or a struct field).
type Getter struct {
	Property string
	Type     reflect.Type

	methodIndex int // >= 0 when method-based
	fieldIndex  []int
	isMethod    bool
}

// Read invokes the getter against bean, which must be assignable to (or
// a pointer to) the type this Getter was discovered on.
func (g *Getter) Read(bean any) (any, error) {
	v := reflect.ValueOf(bean)
	if g.isMethod {
		out := v.Method(g.methodIndex).Call(nil)
		return out[0].Interface(), nil
	}
	for v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	return v.FieldByIndex(g.fieldIndex).Interface(), nil
}
