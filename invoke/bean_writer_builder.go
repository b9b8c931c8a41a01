package invoke

import "reflect"

// BeanWriterBuilder is the write-side counterpart of
// BeanReaderBuilder: reflection-free registration of (property,
// method name) pairs.
type BeanWriterBuilder struct {
	beanType    reflect.Type
	setters     map[string]*Setter
	transformer ValueTransformer
}

// NewBeanWriterBuilder starts a builder for beanType (a pointer type).
func NewBeanWriterBuilder(beanType reflect.Type) *BeanWriterBuilder {
	return &BeanWriterBuilder{beanType: beanType, setters: map[string]*Setter{}, transformer: identity}
}

// WithSetter registers methodName (a one-argument, no-return method on
// beanType) as the accessor for property.
func (b *BeanWriterBuilder) WithSetter(property, methodName string) *BeanWriterBuilder {
	m, ok := b.beanType.MethodByName(methodName)
	if !ok {
		panic("invoke: no such method: " + methodName)
	}
	b.setters[property] = &Setter{
		Property:    property,
		Type:        m.Type.In(1),
		methodIndex: m.Index,
		isMethod:    true,
	}
	return b
}

// WithTransform sets the value transform applied before every write.
func (b *BeanWriterBuilder) WithTransform(t ValueTransformer) *BeanWriterBuilder {
	b.transformer = t
	return b
}

// Build produces the configured BeanWriter.
func (b *BeanWriterBuilder) Build() *BeanWriter {
	return &BeanWriter{beanType: b.beanType, setters: b.setters, transformer: b.transformer}
}
