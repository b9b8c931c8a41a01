package util

import (
	"fmt"

	opath "github.com/klojang-go/path"
)

// nullSentinel stands in for an explicitly-set nil value, distinguishing
// "key present with value nil" from "key absent" without a second probe
// into the underlying map.
var nullSentinel = new(struct{})

// PathBlockedError is raised when a write would overwrite a path that
// has already been set, or would extend through a segment that already
// holds a terminal (non-map) value.
type PathBlockedError struct {
	Path  opath.Path
	Value any
}

func (e *PathBlockedError) Error() string {
	v := e.Value
	if s, ok := v.(string); ok {
		v = `"` + s + `"`
	}
	return fmt.Sprintf("path %q blocked by terminal value %v", e.Path.String(), v)
}

// MapBuilder incrementally builds a map[string]any (map-in-map) tree,
// creating intermediate maps as needed. Map keys must be neither null
// nor the empty string; values may be anything except a map or another
// MapBuilder (use In to descend into, or create, a nested map).
//
// A MapBuilder is not safe for concurrent use.
type MapBuilder struct {
	keys    []string
	entries map[string]any
	root    opath.Path
	parent  *MapBuilder
}

// New creates an empty MapBuilder.
func New() *MapBuilder {
	return &MapBuilder{entries: make(map[string]any)}
}

// From creates a MapBuilder seeded with the entries of m. m is read,
// not modified. Nested map[string]any values become nested MapBuilder
// maps of their own.
func From(m map[string]any) *MapBuilder {
	mb := New()
	initFrom(mb, m)
	return mb
}

func initFrom(mb *MapBuilder, m map[string]any) {
	for k, v := range m {
		processEntry(mb, k, v)
	}
}

func processEntry(mb *MapBuilder, key string, val any) {
	if key == "" {
		panic("util: illegal empty key in source map")
	}
	if nested, ok := val.(map[string]any); ok {
		child := &MapBuilder{entries: make(map[string]any), root: mb.root.Append(key), parent: mb}
		mb.put(key, child)
		initFrom(child, nested)
		return
	}
	if _, ok := val.(*MapBuilder); ok {
		panic("util: a MapBuilder is not a legal source map value")
	}
	mb.put(key, valueOrSentinel(val))
}

func (mb *MapBuilder) put(key string, val any) {
	if _, exists := mb.entries[key]; !exists {
		mb.keys = append(mb.keys, key)
	}
	mb.entries[key] = val
}

func valueOrSentinel(v any) any {
	if v == nil {
		return nullSentinel
	}
	return v
}

func sentinelOrValue(v any) any {
	if v == nullSentinel {
		return nil
	}
	return v
}

// Set writes value at path, creating intermediate maps as needed. It
// panics with *PathBlockedError if path (or any ancestor of it) has
// already been set. value must not itself be a map or MapBuilder; use
// In to build nested maps.
func (mb *MapBuilder) Set(path string, value any) *MapBuilder {
	setPath(mb, opath.From(path), value)
	return mb
}

func setPath(w *MapBuilder, p opath.Path, val any) {
	key := firstSegment(p)
	if p.Size() == 1 {
		if _, exists := w.entries[key]; exists {
			panic(alreadySet(w, key))
		}
		if _, ok := val.(map[string]any); ok {
			panic("util: value must not be a map; use In to build a nested map")
		}
		if _, ok := val.(*MapBuilder); ok {
			panic("util: value must not be a MapBuilder")
		}
		w.put(key, valueOrSentinel(val))
		return
	}
	rest, _ := p.Shift()
	setPath(nestedWriter(w, key), rest, val)
}

// Add appends element to the slice found (or created) at path. If path
// is not yet set, it is first set to a new []any. It panics with
// *PathBlockedError if path is already set to something other than a
// []any. Unlike Set, Add is allowed to act on a path that is already
// set, since it mutates the slice found there rather than replacing it.
func (mb *MapBuilder) Add(path string, element any) *MapBuilder {
	addPath(mb, opath.From(path), element)
	return mb
}

func addPath(w *MapBuilder, p opath.Path, element any) {
	key := firstSegment(p)
	if p.Size() == 1 {
		val, exists := w.entries[key]
		if !exists {
			w.put(key, []any{element})
			return
		}
		if nested, ok := val.(*MapBuilder); ok {
			panic(&PathBlockedError{Path: w.root.Append(key), Value: buildMap(nested)})
		}
		cur := sentinelOrValue(val)
		list, ok := cur.([]any)
		if !ok {
			panic(&PathBlockedError{Path: w.root.Append(key), Value: cur})
		}
		w.entries[key] = append(list, element)
		return
	}
	rest, _ := p.Shift()
	addPath(nestedWriter(w, key), rest, element)
}

// Poll returns the value at path, if set.
func (mb *MapBuilder) Poll(path string) Result[any] {
	return poll(mb, opath.From(path))
}

func poll(w *MapBuilder, p opath.Path) Result[any] {
	key := firstSegment(p)
	val, ok := w.entries[key]
	if nested, isNested := val.(*MapBuilder); isNested {
		if p.Size() == 1 {
			return Of[any](buildMap(nested))
		}
		rest, _ := p.Shift()
		return poll(nested, rest)
	}
	if p.Size() == 1 && ok {
		return Of(sentinelOrValue(val))
	}
	return NotAvailable[any]()
}

// Get returns the value at path, or nil if not set.
func (mb *MapBuilder) Get(path string) any {
	return mb.Poll(path).OrElse(nil)
}

// In returns a MapBuilder for the map at path, relative to the current
// base path, creating it (and any ancestral maps) as needed. All
// subsequently specified paths, including for nested calls to In, are
// taken relative to path.
func (mb *MapBuilder) In(path string) *MapBuilder {
	return in(mb, opath.From(path))
}

func in(w *MapBuilder, p opath.Path) *MapBuilder {
	if p.IsEmpty() {
		return w
	}
	key := firstSegment(p)
	rest, _ := p.Shift()
	return in(nestedWriter(w, key), rest)
}

// Jump is like In, except path is always taken as absolute (relative
// to the root map) rather than relative to the current base path.
func (mb *MapBuilder) Jump(path string) *MapBuilder {
	if mb.parent == nil {
		return mb.In(path)
	}
	return mb.Root().In(path)
}

// Up returns the MapBuilder for the parent of the map currently being
// edited. parent must equal the name of that parent map (or "" if the
// parent is the root map), as a safeguard against editing the wrong
// map after a long chain of In calls. It panics if called on the root
// MapBuilder.
func (mb *MapBuilder) Up(parent string) *MapBuilder {
	if mb.parent == nil {
		panic("util: already in root map")
	}
	if mb.root.Size() == 1 {
		if parent != "" {
			panic("util: specify \"\" to exit to the root map")
		}
	} else if parent != mb.parent.Name() {
		panic(fmt.Sprintf("util: parent of %q is not %q; expected %q", mb.Name(), parent, mb.parent.Name()))
	}
	return mb.parent
}

// Root returns the MapBuilder for the root map.
func (mb *MapBuilder) Root() *MapBuilder {
	w := mb
	for w.parent != nil {
		w = w.parent
	}
	return w
}

// Name returns the key used to embed the current map within its
// parent map, or "" if the current map is the root map.
func (mb *MapBuilder) Name() string {
	if mb.parent == nil {
		return ""
	}
	return *mb.root.Segment(-1)
}

// Where returns the full, absolute path to the map currently being
// edited.
func (mb *MapBuilder) Where() string {
	return mb.root.String()
}

// IsSet reports whether path has an entry, which may be a terminal value
// or a nested map (even an empty one). It also reports true when one of
// the path's ancestors holds a terminal value.
func (mb *MapBuilder) IsSet(path string) bool {
	return isSet(mb, opath.From(path))
}

func isSet(w *MapBuilder, p opath.Path) bool {
	key := firstSegment(p)
	val, ok := w.entries[key]
	if !ok {
		return false
	}
	nested, isNested := val.(*MapBuilder)
	if p.Size() == 1 || !isNested {
		return true
	}
	rest, _ := p.Shift()
	return isSet(nested, rest)
}

// Unset removes the value at path. It returns quietly if path is not
// set.
func (mb *MapBuilder) Unset(path string) *MapBuilder {
	unset(mb, opath.From(path))
	return mb
}

func unset(w *MapBuilder, p opath.Path) {
	key := firstSegment(p)
	if p.Size() == 1 {
		delete(w.entries, key)
		for i, k := range w.keys {
			if k == key {
				w.keys = append(w.keys[:i], w.keys[i+1:]...)
				break
			}
		}
		return
	}
	nested, ok := w.entries[key].(*MapBuilder)
	if !ok {
		return
	}
	rest, _ := p.Shift()
	unset(nested, rest)
}

// Build returns the map[string]any resulting from the write actions so
// far, with nested maps built the same way. The builder records the
// order in which keys were first set, but the returned Go maps do not
// keep that order. The MapBuilder remains usable after Build.
func (mb *MapBuilder) Build() map[string]any {
	return buildMap(mb.Root())
}

func buildMap(w *MapBuilder) map[string]any {
	m := make(map[string]any, len(w.keys))
	for _, k := range w.keys {
		v := w.entries[k]
		if nested, ok := v.(*MapBuilder); ok {
			m[k] = buildMap(nested)
		} else {
			m[k] = sentinelOrValue(v)
		}
	}
	return m
}

func nestedWriter(w *MapBuilder, key string) *MapBuilder {
	root := w.root.Append(key)
	if v, ok := w.entries[key]; ok {
		if nested, ok := v.(*MapBuilder); ok {
			return nested
		}
		panic(&PathBlockedError{Path: root, Value: sentinelOrValue(v)})
	}
	nested := &MapBuilder{entries: make(map[string]any), root: root, parent: w}
	w.put(key, nested)
	return nested
}

func alreadySet(w *MapBuilder, key string) *PathBlockedError {
	return &PathBlockedError{Path: w.root.Append(key), Value: sentinelOrValue(w.entries[key])}
}

func firstSegment(p opath.Path) string {
	seg := p.Segment(0)
	if seg == nil {
		panic(fmt.Sprintf("util: illegal null segment in path %q", p.String()))
	}
	if *seg == "" {
		panic(fmt.Sprintf("util: illegal empty segment in path %q", p.String()))
	}
	return *seg
}
