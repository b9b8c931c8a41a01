package invoke

import (
	"reflect"
	"strings"
)

// propertyName resolves the property name the record-like field
// fallback exposes a struct field under: an explicit `path:"name"`
// struct tag wins, then `json:"name"` (its `,omitempty`-style options
// stripped), then the Go field name itself.
func propertyName(f reflect.StructField) string {
	if tag, ok := f.Tag.Lookup("path"); ok {
		if name := firstCSVField(tag); name != "" && name != "-" {
			return name
		}
	}
	if tag, ok := f.Tag.Lookup("json"); ok {
		if name := firstCSVField(tag); name != "" && name != "-" {
			return name
		}
	}
	return f.Name
}

func firstCSVField(tag string) string {
	if i := strings.IndexByte(tag, ','); i >= 0 {
		return tag[:i]
	}
	return tag
}

// AccessMode controls whether unexported struct fields are eligible for
// field-based (record-like) accessor discovery. It has no effect on
// method-based discovery: reflect never exposes unexported methods of a
// type obtained from an external package boundary, so IncludePrivate
// only widens field visibility.
type AccessMode int

const (
	// PublicOnly considers only exported fields and methods. This is
	// the default, matching the original library's public-only
	// reflection.
	PublicOnly AccessMode = iota
	// IncludePrivate additionally considers unexported fields when no
	// qualifying methods are found.
	IncludePrivate
)

// Naming controls how method names are mapped to property names during
// getter/setter discovery.
type Naming int

const (
	// Strict applies JavaBean-style naming: GetX/IsX for getters, SetX
	// for setters, each requiring an uppercase letter immediately after
	// the prefix.
	Strict Naming = iota
	// Lenient treats every qualifying zero-argument, non-void method as
	// a getter (skipping String, to mirror excluding toString/hashCode/
	// getClass) using the method name itself as the property name. It
	// applies only when a caller passes it to Getters; the path engine and
	// BeanReader always use Strict.
	Lenient
)
