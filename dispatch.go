package path

import (
	"container/list"
	"reflect"
)

// KeyDeserializer converts a path segment, at the given segment index
// within path, into a map key. It is consulted only when the traversal
// lands on a Mapping node. A failure becomes CodeKeyDeserializationFailed.
type KeyDeserializer func(p Path, segmentIndex int) (any, error)

// ctx threads the per-walk configuration through the recursive
// dispatch without needing every segment reader/writer to repeat it.
type ctx struct {
	keyDeser KeyDeserializer
	access   accessMode
}

// accessMode mirrors invoke.AccessMode without importing invoke from
// this file's position in the dependency graph (invoke has none of
// its own on this package, so the indirection below simply keeps the
// two enums textually close to their single use site).
type accessMode = int

const (
	publicOnly     accessMode = 0
	includePrivate accessMode = 1
)

// readDispatch is the object reader. It loops over the path one
// segment at a time: classify the current node, hand segment i to the
// matching segment reader to get the child one level down, then
// continue with that child at i+1. Segment readers resolve only their
// own segment; readDispatch owns the recursion, so the same segment
// readers can also be driven one level at a time by writeDispatch.
func readDispatch(node any, p Path, i int, c *ctx) (any, *PathError) {
	if i == p.Size() {
		return node, nil
	}
	rv := reflect.ValueOf(node)
	k, v := classify(rv)
	var child any
	var perr *PathError
	switch k {
	case kindNull:
		return nil, newDeadEnd(CodeNullValue, p, i, "")
	case kindMapping:
		child, perr = readMapSegment(v, p, i, c)
	case kindReferenceArray:
		child, perr = readRefArraySegment(v, p, i, c)
	case kindOrderedSequence:
		child, perr = readSequenceSegment(v, p, i, c)
	case kindPrimitiveArray:
		child, perr = readPrimArraySegment(v, p, i, c)
	default: // kindRecord
		child, perr = readRecordSegment(v, p, i, c)
	}
	if perr != nil {
		return nil, perr
	}
	return readDispatch(child, p, i+1, c)
}

// writeDispatch is the object writer. It behaves like readDispatch for
// every segment but the last, and invokes the matching segment writer
// once i reaches the final segment.
func writeDispatch(node any, p Path, i int, value any, c *ctx) *PathError {
	rv := reflect.ValueOf(node)
	k, v := classify(rv)
	if k == kindNull {
		return newDeadEnd(CodeTerminalValue, p, i, "")
	}
	last := i == p.Size()-1
	switch k {
	case kindMapping:
		if last {
			return writeMapSegment(v, p, i, value, c)
		}
		kv, child, perr := mapLookup(v, p, i, c)
		if perr != nil {
			return perr
		}
		if needsAddressableCopy(child) {
			// A map value pulled out through reflect.Value.Interface is
			// always a fresh copy; for an array or (non-list.List) struct
			// that copy carries its data inline, so a nested write further
			// down the path would silently mutate a throwaway value. Give
			// it a home behind a pointer so it stays addressable through
			// the recursive write, then store the (possibly mutated)
			// result back under the same key.
			addr := reflect.New(reflect.TypeOf(child))
			addr.Elem().Set(reflect.ValueOf(child))
			if perr := writeDispatch(addr.Interface(), p, i+1, value, c); perr != nil {
				return perr
			}
			v.SetMapIndex(kv, addr.Elem())
			return nil
		}
		return writeDispatch(child, p, i+1, value, c)
	case kindReferenceArray:
		if last {
			return writeRefArraySegment(v, p, i, value)
		}
		child, perr := readRefArraySegment(v, p, i, c)
		if perr != nil {
			return perr
		}
		return writeDispatch(child, p, i+1, value, c)
	case kindOrderedSequence:
		if last {
			return writeSequenceSegment(v, p, i, value)
		}
		child, perr := readSequenceSegment(v, p, i, c)
		if perr != nil {
			return perr
		}
		return writeDispatch(child, p, i+1, value, c)
	case kindPrimitiveArray:
		if last {
			return writePrimArraySegment(v, p, i, value)
		}
		child, perr := readPrimArraySegment(v, p, i, c)
		if perr != nil {
			return perr
		}
		return writeDispatch(child, p, i+1, value, c)
	default: // kindRecord
		if last {
			return writeRecordSegment(v, p, i, value, c)
		}
		child, perr := readRecordSegment(v, p, i, c)
		if perr != nil {
			return perr
		}
		return writeDispatch(child, p, i+1, value, c)
	}
}

// needsAddressableCopy reports whether child (a value just pulled out of
// a map via reflect.Value.Interface) carries its data inline rather than
// through a reference, meaning a further nested write into it needs to
// happen behind a pointer rather than on the throwaway copy child already
// is. Arrays always qualify; structs do too, except container/list.List,
// whose Front/Back traversal already works through a copy since its
// fields are themselves pointers into the shared list nodes.
func needsAddressableCopy(child any) bool {
	t := reflect.TypeOf(child)
	if t == nil {
		return false
	}
	switch t.Kind() {
	case reflect.Array:
		return true
	case reflect.Struct:
		return t != reflect.TypeOf(list.List{})
	default:
		return false
	}
}

// indexOfSegment parses seg as a nonnegative integer; nil (the null-key
// sentinel) never parses as an index.
func indexOfSegment(seg *string) (int, bool) {
	if seg == nil {
		return 0, false
	}
	return parseIndex(*seg)
}
