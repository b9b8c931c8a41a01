package invoke

import (
	"fmt"
	"reflect"
)

// Setter is a bound write-handle for a single named property.
type Setter struct {
	Property string
	Type     reflect.Type

	methodIndex int
	fieldIndex  []int
	isMethod    bool
}

// Write invokes the setter against bean with value v. bean must be a
// pointer (to the struct, for field-based setters, or to the receiver
// type of the setter method).
func (s *Setter) Write(bean any, v any) error {
	rv := reflect.ValueOf(bean)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("invoke: Write requires a non-nil pointer, got %T", bean)
	}
	val, err := s.coerce(v)
	if err != nil {
		return err
	}
	if s.isMethod {
		rv.Method(s.methodIndex).Call([]reflect.Value{val})
		return nil
	}
	elem := rv.Elem()
	elem.FieldByIndex(s.fieldIndex).Set(val)
	return nil
}

func (s *Setter) coerce(v any) (reflect.Value, error) {
	if v == nil {
		switch s.Type.Kind() {
		case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
			return reflect.Zero(s.Type), nil
		default:
			return reflect.Value{}, &TypeMismatchError{Property: s.Property, Want: s.Type.String(), Got: "nil"}
		}
	}
	rv := reflect.ValueOf(v)
	if rv.Type().AssignableTo(s.Type) {
		return rv, nil
	}
	if rv.Type().ConvertibleTo(s.Type) &&
		((rv.Kind() >= reflect.Int && rv.Kind() <= reflect.Float64) ||
			rv.Kind() == reflect.String) {
		return rv.Convert(s.Type), nil
	}
	return reflect.Value{}, &TypeMismatchError{Property: s.Property, Want: s.Type.String(), Got: rv.Type().String()}
}
