package invoke

import "reflect"

// IncludeExclude selects whether the property list passed to a
// BeanReader/BeanWriter constructor names properties to include or
// properties to exclude.
type IncludeExclude int

const (
	Include IncludeExclude = iota
	Exclude
)

// BeanReader reads named properties off values of a single Go type,
// using method-handle dispatch discovered once via reflection and
// cached for the process lifetime (see Getters).
type BeanReader struct {
	beanType    reflect.Type
	getters     map[string]*Getter
	transformer ValueTransformer
}

// NewBeanReader builds a BeanReader for beanType. If properties is
// non-empty, only those properties (or all but those, per ie) are
// readable; it is not an error to name a nonexistent property, it is
// simply ignored.
func NewBeanReader(beanType reflect.Type, ie IncludeExclude, properties ...string) *BeanReader {
	return NewBeanReaderWithTransform(beanType, identity, ie, properties...)
}

// NewBeanReaderWithTransform is like NewBeanReader but applies transform
// to every value read.
func NewBeanReaderWithTransform(beanType reflect.Type, transform ValueTransformer, ie IncludeExclude, properties ...string) *BeanReader {
	all := Getters(beanType, Strict, PublicOnly)
	getters := filterGetters(all, ie, properties)
	if transform == nil {
		transform = identity
	}
	return &BeanReader{beanType: beanType, getters: getters, transformer: transform}
}

func filterGetters(all map[string]*Getter, ie IncludeExclude, properties []string) map[string]*Getter {
	if len(properties) == 0 {
		return all
	}
	want := make(map[string]bool, len(properties))
	for _, p := range properties {
		want[p] = true
	}
	out := make(map[string]*Getter)
	for name, g := range all {
		in := want[name]
		if ie == Exclude {
			in = !in
		}
		if in {
			out[name] = g
		}
	}
	return out
}

// Read returns the value of property on bean. It returns
// *NoSuchPropertyError if the property is not readable.
func (r *BeanReader) Read(bean any, property string) (any, error) {
	g, ok := r.getters[property]
	if !ok {
		return nil, &NoSuchPropertyError{Type: r.beanType.String(), Property: property}
	}
	v, err := g.Read(bean)
	if err != nil {
		return nil, err
	}
	return r.transformer(bean, property, v), nil
}

// CanRead reports whether property is readable by this BeanReader.
func (r *BeanReader) CanRead(property string) bool {
	_, ok := r.getters[property]
	return ok
}

// ReadableProperties returns the names of the properties this
// BeanReader can read.
func (r *BeanReader) ReadableProperties() []string {
	out := make([]string, 0, len(r.getters))
	for name := range r.getters {
		out = append(out, name)
	}
	return out
}

// Len returns the number of registered, readable properties.
func (r *BeanReader) Len() int { return len(r.getters) }

// BeanType returns the type this BeanReader reads.
func (r *BeanReader) BeanType() reflect.Type { return r.beanType }
