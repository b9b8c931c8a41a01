package invoke

import "reflect"

// BeanReaderBuilder assembles a BeanReader by explicit, reflection-free
// registration of (property, method name, declared type) triples. Use
// this when the target type does not permit reflective access (for
// example, it lives in a dependency that hides its exported API behind
// an opaque interface boundary), or when you simply want to bypass
// naming-convention discovery altogether.
type BeanReaderBuilder struct {
	beanType    reflect.Type
	getters     map[string]*Getter
	transformer ValueTransformer
}

// NewBeanReaderBuilder starts a builder for beanType.
func NewBeanReaderBuilder(beanType reflect.Type) *BeanReaderBuilder {
	return &BeanReaderBuilder{beanType: beanType, getters: map[string]*Getter{}, transformer: identity}
}

// WithGetter registers methodName (a zero-argument, one-return method on
// beanType) as the accessor for property.
func (b *BeanReaderBuilder) WithGetter(property, methodName string) *BeanReaderBuilder {
	m, ok := b.beanType.MethodByName(methodName)
	if !ok {
		panic("invoke: no such method: " + methodName)
	}
	b.getters[property] = &Getter{
		Property:    property,
		Type:        m.Type.Out(0),
		methodIndex: m.Index,
		isMethod:    true,
	}
	return b
}

// WithTransform sets the value transform applied after every read.
func (b *BeanReaderBuilder) WithTransform(t ValueTransformer) *BeanReaderBuilder {
	b.transformer = t
	return b
}

// Build produces the configured BeanReader.
func (b *BeanReaderBuilder) Build() *BeanReader {
	return &BeanReader{beanType: b.beanType, getters: b.getters, transformer: b.transformer}
}
