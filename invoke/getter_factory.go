package invoke

import (
	"reflect"
	"unicode"
)

var nonGetterMethods = map[string]bool{
	"String": true, // toString() equivalent
	"Error":  true,
}

// discoverGetters assembles the getters for beanType (a struct or
// pointer-to-struct type) according to naming. Method-based discovery
// runs first; if it finds nothing, field-based (record-like) discovery
// is used as a fallback, with every exported field (and, under
// IncludePrivate, every field) becoming a property keyed by the name
// propertyName resolves for it (path tag, then json tag, then the Go
// field name).
func discoverGetters(beanType reflect.Type, naming Naming, access AccessMode) map[string]*Getter {
	getters := methodGetters(beanType, naming)
	if len(getters) > 0 {
		return getters
	}
	return fieldGetters(beanType, access)
}

func methodGetters(beanType reflect.Type, naming Naming) map[string]*Getter {
	out := make(map[string]*Getter)
	n := beanType.NumMethod()
	for i := 0; i < n; i++ {
		m := beanType.Method(i)
		if m.Type.NumIn() != 1 { // receiver only, no other params
			continue
		}
		if m.Type.NumOut() != 1 {
			continue
		}
		if nonGetterMethods[m.Name] {
			continue
		}
		prop, ok := getterPropertyName(m.Name, m.Type.Out(0), naming)
		if !ok {
			continue
		}
		out[prop] = &Getter{
			Property:    prop,
			Type:        m.Type.Out(0),
			methodIndex: i,
			isMethod:    true,
		}
	}
	return out
}

func getterPropertyName(name string, ret reflect.Type, naming Naming) (string, bool) {
	if len(name) > 3 && name[:3] == "Get" && unicode.IsUpper(rune(name[3])) {
		return lowerFirst(name[3:]), true
	}
	if len(name) > 2 && name[:2] == "Is" && unicode.IsUpper(rune(name[2])) && ret.Kind() == reflect.Bool {
		return lowerFirst(name[2:]), true
	}
	if naming == Lenient {
		return name, true
	}
	return "", false
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}

func fieldGetters(beanType reflect.Type, access AccessMode) map[string]*Getter {
	t := beanType
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}
	out := make(map[string]*Getter)
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() && access != IncludePrivate {
			continue
		}
		prop := propertyName(f)
		out[prop] = &Getter{
			Property:   prop,
			Type:       f.Type,
			fieldIndex: f.Index,
		}
	}
	return out
}
