package path

import (
	"fmt"
	"strings"
)

const (
	sep = '.'
	esc = '^'
)

// nullSegment is the escape sequence denoting the null-key sentinel when
// it stands alone as an entire path segment.
const nullSegment = "^0"

// Path is an immutable, ordered sequence of path segments. A segment is
// either a string, the empty string (distinct from absent), or the
// null-key sentinel (represented here by a nil *string).
//
// The zero value of Path is the empty path and is safe to use directly;
// it is equivalent to the value returned by Empty().
type Path struct {
	elems []*string
	str   *string
	hash  uint64
}

// Empty returns a Path consisting of zero segments. The zero value of
// Path already has this property; Empty exists for parity with the
// other constructors.
func Empty() Path { return Path{} }

// From parses a path string: segments are separated by '.', and '^' is
// the escape character ("^." is a literal dot, "^^" a literal caret, a
// segment consisting of exactly "^0" is the null-key sentinel, and '^'
// before any other character is a literal caret). An empty string yields
// the empty path.
func From(s string) Path {
	if s == "" {
		return Path{}
	}
	return Path{elems: parseSegments(s)}
}

// Of builds a Path from the given segments, taken verbatim: no escaping
// or parsing is performed. Use this when you already have the literal
// segment values (as opposed to an escaped path string).
func Of(segments ...string) Path {
	if len(segments) == 0 {
		return Path{}
	}
	elems := make([]*string, len(segments))
	for i, s := range segments {
		s := s
		elems[i] = &s
	}
	return Path{elems: elems}
}

// FromSegments builds a Path from segments that may include the null-key
// sentinel (a nil entry). Segments are taken verbatim.
func FromSegments(segments []*string) Path {
	if len(segments) == 0 {
		return Path{}
	}
	elems := make([]*string, len(segments))
	copy(elems, segments)
	return Path{elems: elems}
}

// IsNullSegment reports whether segment represents the null-key
// sentinel, i.e. is nil.
func IsNullSegment(segment *string) bool { return segment == nil }

// IsArrayIndex reports whether segment parses as a nonnegative integer
// (and could therefore be used to index a sequence or array). Leading
// zeros are accepted; arbitrarily large digit strings are accepted too
// (they simply can never be in range).
func IsArrayIndex(segment *string) bool {
	if segment == nil {
		return false
	}
	_, ok := parseIndex(*segment)
	return ok
}

// Escape escapes a single path segment for inclusion in a path string.
// segment == nil escapes to the null-key sentinel ("^0"). Every '.' and
// '^' in a segment is preceded by '^', so a segment whose literal value
// is "^0" escapes to "^^0". Do not escape segments that you pass
// individually to Of/FromSegments; Escape is only needed when assembling
// a path string by hand.
func Escape(segment *string) string {
	if segment == nil {
		return nullSegment
	}
	s := *segment
	if s == nullSegment {
		return string(esc) + nullSegment
	}
	x := strings.IndexAny(s, string([]byte{sep, esc}))
	if x == -1 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 3)
	b.WriteString(s[:x])
	for i := x; i < len(s); i++ {
		c := s[i]
		if c == sep || c == esc {
			b.WriteByte(esc)
		}
		b.WriteByte(c)
	}
	return b.String()
}

func parseSegments(s string) []*string {
	var elems []*string
	var sb strings.Builder
	n := len(s)
	for i := 0; i < n; i++ {
		c := s[i]
		switch c {
		case sep:
			v := sb.String()
			elems = append(elems, &v)
			sb.Reset()
		case esc:
			if i < n-1 {
				c2 := s[i+1]
				switch {
				case c2 == sep || c2 == esc:
					sb.WriteByte(c2)
					i++
				case c2 == '0' && sb.Len() == 0 && (i == n-2 || s[i+2] == sep):
					elems = append(elems, nil)
					sb.Reset()
					i += 2
				default:
					sb.WriteByte(esc)
				}
			} else {
				sb.WriteByte(esc)
			}
		default:
			sb.WriteByte(c)
		}
	}
	if sb.Len() > 0 {
		v := sb.String()
		elems = append(elems, &v)
	} else if s[n-1] == sep {
		v := ""
		elems = append(elems, &v)
	}
	return elems
}

// Size returns the number of segments in the path.
func (p Path) Size() int { return len(p.elems) }

// IsEmpty reports whether the path has zero segments.
func (p Path) IsEmpty() bool { return len(p.elems) == 0 }

// IsDeepNotEmpty reports whether the path is non-empty and every
// segment is non-null and non-empty.
func (p Path) IsDeepNotEmpty() bool {
	if len(p.elems) == 0 {
		return false
	}
	for _, e := range p.elems {
		if e == nil || *e == "" {
			return false
		}
	}
	return true
}

// Segment returns the segment at index i. A negative i counts from the
// end (-1 is the last segment). It panics with an out-of-bounds index
// for an out-of-range i, a programmer error per the package contract.
func (p Path) Segment(i int) *string {
	idx := i
	if idx < 0 {
		idx = len(p.elems) + idx
	}
	if idx < 0 || idx >= len(p.elems) {
		panic(fmt.Sprintf("path: index out of bounds: %d", i))
	}
	return p.elems[idx]
}

// SubPath returns a new Path starting at segment offset and running to
// the end. A negative offset counts from the end.
func (p Path) SubPath(offset int) Path {
	from := offset
	if from < 0 {
		from = len(p.elems) + from
	}
	if from < 0 || from >= len(p.elems) {
		panic(fmt.Sprintf("path: index out of bounds: %d", offset))
	}
	return FromSegments(p.elems[from:])
}

// SubPathN returns a new Path consisting of length segments starting at
// offset (negative offset counts from the end).
func (p Path) SubPathN(offset, length int) Path {
	if offset < 0 {
		offset = len(p.elems) + offset
	}
	if offset < 0 || length < 0 || offset+length > len(p.elems) {
		panic(fmt.Sprintf("path: offset/length out of bounds: %d/%d", offset, length))
	}
	return FromSegments(p.elems[offset : offset+length])
}

// Shift returns the path with its first segment removed, and true. If
// the path is empty, it returns the empty path and false.
func (p Path) Shift() (Path, bool) {
	switch len(p.elems) {
	case 0:
		return Path{}, false
	case 1:
		return Path{}, true
	default:
		return FromSegments(p.elems[1:]), true
	}
}

// Parent returns the path with its last segment removed, and true. If
// the path is empty, it returns the empty path and false.
func (p Path) Parent() (Path, bool) {
	switch len(p.elems) {
	case 0:
		return Path{}, false
	case 1:
		return Path{}, true
	default:
		return FromSegments(p.elems[:len(p.elems)-1]), true
	}
}

// Canonical returns a new Path containing only the segments of this
// path that do not parse as array indices.
func (p Path) Canonical() Path {
	var out []*string
	for _, e := range p.elems {
		if !IsArrayIndex(e) {
			out = append(out, e)
		}
	}
	return FromSegments(out)
}

// Append returns the concatenation of this path and the path parsed from
// s.
func (p Path) Append(s string) Path {
	return p.AppendPath(From(s))
}

// AppendPath returns the concatenation of this path and other.
func (p Path) AppendPath(other Path) Path {
	elems := make([]*string, 0, len(p.elems)+len(other.elems))
	elems = append(elems, p.elems...)
	elems = append(elems, other.elems...)
	return FromSegments(elems)
}

// Replace returns a new Path with the segment at index i replaced by
// newValue.
func (p Path) Replace(i int, newValue *string) Path {
	if i < 0 || i >= len(p.elems) {
		panic(fmt.Sprintf("path: index out of bounds: %d", i))
	}
	elems := make([]*string, len(p.elems))
	copy(elems, p.elems)
	elems[i] = newValue
	return Path{elems: elems}
}

// Reverse returns a new Path with the segment order reversed.
func (p Path) Reverse() Path {
	if len(p.elems) <= 1 {
		return p
	}
	elems := make([]*string, len(p.elems))
	for i, e := range p.elems {
		elems[len(elems)-1-i] = e
	}
	return Path{elems: elems}
}

// Segments returns a copy of the path's segments.
func (p Path) Segments() []*string {
	out := make([]*string, len(p.elems))
	copy(out, p.elems)
	return out
}

// Equal reports whether p and other have the same length and equal
// segments at every index.
func (p Path) Equal(other Path) bool {
	if len(p.elems) != len(other.elems) {
		return false
	}
	for i, e := range p.elems {
		if !segEqual(e, other.elems[i]) {
			return false
		}
	}
	return true
}

func segEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// Compare returns a negative, zero, or positive value depending on
// whether p sorts before, equal to, or after other, comparing segment by
// segment (a nil/null segment sorts before any non-null segment).
func (p Path) Compare(other Path) int {
	n := len(p.elems)
	if len(other.elems) < n {
		n = len(other.elems)
	}
	for i := 0; i < n; i++ {
		a, b := p.elems[i], other.elems[i]
		switch {
		case a == nil && b == nil:
			continue
		case a == nil:
			return -1
		case b == nil:
			return 1
		case *a < *b:
			return -1
		case *a > *b:
			return 1
		}
	}
	return len(p.elems) - len(other.elems)
}

// Hash returns a structural hash of the path, cached after first
// computation.
func (p *Path) Hash() uint64 {
	if p.hash != 0 {
		return p.hash
	}
	var h uint64 = 14695981039346656037 // FNV-1a offset basis
	const prime = 1099511628211
	for _, e := range p.elems {
		if e == nil {
			h ^= 0
		} else {
			for i := 0; i < len(*e); i++ {
				h ^= uint64((*e)[i])
				h *= prime
			}
		}
		h ^= 0xff
		h *= prime
	}
	if h == 0 {
		h = 1
	}
	p.hash = h
	return h
}

// Format renders the path as a string, escaping each segment such that
// From(p.Format()) equals p.
func (p *Path) Format() string {
	if p.str != nil {
		return *p.str
	}
	parts := make([]string, len(p.elems))
	for i, e := range p.elems {
		parts[i] = Escape(e)
	}
	s := strings.Join(parts, string(sep))
	p.str = &s
	return s
}

// String implements fmt.Stringer by rendering the path via Format.
func (p Path) String() string {
	return (&p).Format()
}
