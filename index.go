package path

import "math/big"

// parseIndex converts a path segment string to a nonnegative integer
// index. It accepts arbitrary-precision digit strings (leading zeros
// included) so that "any integer >= 0 is an index", per the package's
// canonicalization rules; a value too large to fit in an int is clamped
// to maxInt so that it always compares as out-of-bounds against a real
// container length.
func parseIndex(segment string) (int, bool) {
	if segment == "" {
		return 0, false
	}
	for i := 0; i < len(segment); i++ {
		c := segment[i]
		if c < '0' || c > '9' {
			return 0, false
		}
	}
	n := new(big.Int)
	if _, ok := n.SetString(segment, 10); !ok {
		return 0, false
	}
	if n.IsInt64() {
		v := n.Int64()
		if v >= 0 && int64(int(v)) == v {
			return int(v), true
		}
	}
	return maxInt, true
}

const maxInt = int(^uint(0) >> 1)
