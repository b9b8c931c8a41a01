package invoke

import (
	"reflect"
	"unicode"
)

// discoverSetters assembles the setters for beanType, which must be a
// pointer-to-struct type (Go has no value-receiver mutation, so setter
// methods are only discoverable on the pointer method set). As with
// getters, field-based discovery is the fallback for struct types with
// no SetX methods.
func discoverSetters(beanType reflect.Type, access AccessMode) map[string]*Setter {
	setters := methodSetters(beanType)
	if len(setters) > 0 {
		return setters
	}
	return fieldSetters(beanType, access)
}

func methodSetters(beanType reflect.Type) map[string]*Setter {
	out := make(map[string]*Setter)
	n := beanType.NumMethod()
	for i := 0; i < n; i++ {
		m := beanType.Method(i)
		if m.Type.NumIn() != 2 { // receiver + one value param
			continue
		}
		if m.Type.NumOut() != 0 {
			continue
		}
		name := m.Name
		if len(name) > 3 && name[:3] == "Set" && unicode.IsUpper(rune(name[3])) {
			prop := lowerFirst(name[3:])
			out[prop] = &Setter{
				Property:    prop,
				Type:        m.Type.In(1),
				methodIndex: i,
				isMethod:    true,
			}
		}
	}
	return out
}

func fieldSetters(beanType reflect.Type, access AccessMode) map[string]*Setter {
	t := beanType
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}
	out := make(map[string]*Setter)
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() && access != IncludePrivate {
			continue
		}
		prop := propertyName(f)
		out[prop] = &Setter{
			Property:   prop,
			Type:       f.Type,
			fieldIndex: f.Index,
		}
	}
	return out
}
