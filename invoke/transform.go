package invoke

// ValueTransformer is an optional hook applied after a read (or before
// a write) so callers can adapt values in flight, e.g. to paper over a
// naming or unit mismatch between the bean and its callers. It receives
// the bean, the property name, and the value, and returns the value to
// actually use.
type ValueTransformer func(bean any, property string, value any) any

// identity is the default, no-op transformer.
func identity(_ any, _ string, v any) any { return v }
