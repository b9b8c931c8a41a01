package invoke

import "reflect"

// BeanWriter writes named properties on values of a single Go type. bean
// arguments passed to Write/Copy/etc. must be pointers, since Go setter
// methods and field mutation both require addressability.
type BeanWriter struct {
	beanType    reflect.Type
	setters     map[string]*Setter
	transformer ValueTransformer
}

// NewBeanWriter builds a BeanWriter for beanType (a pointer-to-struct
// type). As with NewBeanReader, properties optionally restricts the
// writable set.
func NewBeanWriter(beanType reflect.Type, ie IncludeExclude, properties ...string) *BeanWriter {
	return NewBeanWriterWithTransform(beanType, identity, ie, properties...)
}

// NewBeanWriterWithTransform is like NewBeanWriter but applies transform
// to every value before it is written.
func NewBeanWriterWithTransform(beanType reflect.Type, transform ValueTransformer, ie IncludeExclude, properties ...string) *BeanWriter {
	all := Setters(beanType, PublicOnly)
	setters := filterSetters(all, ie, properties)
	if transform == nil {
		transform = identity
	}
	return &BeanWriter{beanType: beanType, setters: setters, transformer: transform}
}

func filterSetters(all map[string]*Setter, ie IncludeExclude, properties []string) map[string]*Setter {
	if len(properties) == 0 {
		return all
	}
	want := make(map[string]bool, len(properties))
	for _, p := range properties {
		want[p] = true
	}
	out := make(map[string]*Setter)
	for name, s := range all {
		in := want[name]
		if ie == Exclude {
			in = !in
		}
		if in {
			out[name] = s
		}
	}
	return out
}

// Write sets property on bean to value. It returns *NoSuchPropertyError
// if the property is not writable, or *TypeMismatchError if value is
// not assignable to the property's declared type.
func (w *BeanWriter) Write(bean any, property string, value any) error {
	s, ok := w.setters[property]
	if !ok {
		return &NoSuchPropertyError{Type: w.beanType.String(), Property: property}
	}
	return s.Write(bean, w.transformer(bean, property, value))
}

// CanWrite reports whether property is writable by this BeanWriter.
func (w *BeanWriter) CanWrite(property string) bool {
	_, ok := w.setters[property]
	return ok
}

// WritableProperties returns the names of the properties this
// BeanWriter can write.
func (w *BeanWriter) WritableProperties() []string {
	out := make([]string, 0, len(w.setters))
	for name := range w.setters {
		out = append(out, name)
	}
	return out
}

// Len returns the number of registered, writable properties.
func (w *BeanWriter) Len() int { return len(w.setters) }

// BeanType returns the type this BeanWriter writes.
func (w *BeanWriter) BeanType() reflect.Type { return w.beanType }

func (w *BeanWriter) readCounterpart(bean any, property string) (any, bool) {
	getters := Getters(w.beanType, Strict, PublicOnly)
	g, ok := getters[property]
	if !ok {
		return nil, false
	}
	v, err := g.Read(bean)
	if err != nil {
		return nil, false
	}
	return v, true
}

// Copy overwrites every registered property of toBean with the
// corresponding value read from fromBean. Both fromBean and toBean must
// be of the writer's own bean type (the getters used to read them are
// resolved against that type, so a mismatched concrete type would read
// the wrong method index).
func (w *BeanWriter) Copy(fromBean, toBean any) error {
	for prop, s := range w.setters {
		v, ok := w.readCounterpart(fromBean, prop)
		if !ok {
			continue
		}
		if err := s.Write(toBean, w.transformer(toBean, prop, v)); err != nil {
			return err
		}
	}
	return nil
}

// CopyNonNull is like Copy, but skips properties whose value on
// fromBean is nil; it never nullifies a property on toBean.
func (w *BeanWriter) CopyNonNull(fromBean, toBean any) error {
	for prop, s := range w.setters {
		v, ok := w.readCounterpart(fromBean, prop)
		if !ok || v == nil {
			continue
		}
		if err := s.Write(toBean, w.transformer(toBean, prop, v)); err != nil {
			return err
		}
	}
	return nil
}

// Enrich overwrites every property of toBean that is currently nil or
// the zero value of its type with the corresponding non-nil value from
// fromBean; properties that already hold a non-zero value on toBean are
// left alone.
func (w *BeanWriter) Enrich(fromBean, toBean any) error {
	for prop, s := range w.setters {
		v, ok := w.readCounterpart(fromBean, prop)
		if !ok || v == nil {
			continue
		}
		cur, ok := w.readCounterpart(toBean, prop)
		if ok && cur != nil && !reflect.ValueOf(cur).IsZero() {
			continue
		}
		if err := s.Write(toBean, w.transformer(toBean, prop, v)); err != nil {
			return err
		}
	}
	return nil
}
