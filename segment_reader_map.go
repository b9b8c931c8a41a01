package path

import "reflect"

// readMapSegment implements the Mapping segment-reader contract: resolve
// the key (via the walker's key deserializer if configured, else the
// raw segment string/null-sentinel) and look it up, returning the value
// found at this one segment. reflect.Value.MapIndex returning an invalid
// Value is the Go equivalent of the "two probes" the original needs to
// tell a present nil value apart from an absent key. The caller
// (readDispatch or writeDispatch) is responsible for continuing the walk
// with the returned value.
func readMapSegment(v reflect.Value, p Path, i int, c *ctx) (any, *PathError) {
	_, val, perr := mapLookup(v, p, i, c)
	return val, perr
}

// mapLookup is readMapSegment's key-and-value variant, for callers (the
// Mapping write path) that need the resolved key alongside the value in
// order to write a mutated copy back with SetMapIndex.
func mapLookup(v reflect.Value, p Path, i int, c *ctx) (reflect.Value, any, *PathError) {
	seg := p.Segment(i)
	kv, perr := deriveKey(seg, v.Type().Key(), p, i, c)
	if perr != nil {
		return reflect.Value{}, nil, perr
	}
	val := v.MapIndex(kv)
	if !val.IsValid() {
		return reflect.Value{}, nil, newDeadEnd(CodeNoSuchKey, p, i, "")
	}
	return kv, val.Interface(), nil
}

// deriveKey converts a path segment into a reflect.Value usable as a key
// for a map whose key type is keyType.
func deriveKey(seg *string, keyType reflect.Type, p Path, i int, c *ctx) (reflect.Value, *PathError) {
	if c != nil && c.keyDeser != nil {
		k, err := c.keyDeser(p, i)
		if err != nil {
			return reflect.Value{}, newDeadEnd(CodeKeyDeserializationFailed, p, i, err.Error())
		}
		if k == nil {
			return reflect.Zero(keyType), nil
		}
		kv := reflect.ValueOf(k)
		if !kv.Type().AssignableTo(keyType) {
			if kv.Type().ConvertibleTo(keyType) {
				kv = kv.Convert(keyType)
			} else {
				return reflect.Value{}, newDeadEnd(CodeKeyDeserializationFailed, p, i, "deserialized key not assignable to map key type")
			}
		}
		return kv, nil
	}
	switch keyType.Kind() {
	case reflect.String:
		if seg == nil {
			return reflect.Zero(keyType), nil
		}
		return reflect.ValueOf(*seg).Convert(keyType), nil
	case reflect.Interface:
		if seg == nil {
			return reflect.Zero(keyType), nil
		}
		return reflect.ValueOf(*seg), nil
	case reflect.Ptr:
		if keyType.Elem().Kind() != reflect.String {
			return reflect.Value{}, newDeadEnd(CodeKeyDeserializationFailed, p, i, "no key deserializer configured for map key type "+keyType.String())
		}
		if seg == nil {
			return reflect.Zero(keyType), nil
		}
		s := *seg
		return reflect.ValueOf(&s), nil
	default:
		if seg == nil {
			return reflect.Value{}, newDeadEnd(CodeKeyDeserializationFailed, p, i, "null key segment cannot address a non-string, non-pointer map key type")
		}
		idx, ok := parseIndex(*seg)
		if ok && (keyType.Kind() >= reflect.Int && keyType.Kind() <= reflect.Uint64) {
			return reflect.ValueOf(idx).Convert(keyType), nil
		}
		return reflect.Value{}, newDeadEnd(CodeKeyDeserializationFailed, p, i, "no key deserializer configured for map key type "+keyType.String())
	}
}
