// Package path provides path-based access to heterogeneous in-memory
// object graphs. A caller supplies an opaque root value and a textual or
// structured path such as "employee.address.city" or
// "orders.3.items.0.price", and the engine reads or writes the
// referenced location, descending through mixed structural shapes:
// maps, slices, fixed arrays (including arrays of unboxed numeric,
// boolean and rune elements), container/list.List sequences, and
// structs whose methods or exported fields expose named properties.
//
// Design policy:
//   - Keep only the public surface in the root package; the reflection-
//     based accessor registry lives under invoke/, and the nested-map
//     builder lives under util/.
//   - The engine never snapshots or locks the caller's graph.
//
// Typical usage:
//
//	w := path.NewWalker(false, nil)
//	v, err := w.Read(root, path.From("foo.bar.2"))
//	ok, err := w.Write(root, path.From("foo.bar.2"), "nor")
package path
