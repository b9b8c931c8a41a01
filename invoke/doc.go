// Package invoke discovers, caches, and invokes named read/write
// accessors on Go values, the way org.klojang.invoke discovers getters
// and setters on JavaBeans. Two styles of accessor are supported for a
// given struct type:
//
//   - method-based, for types with GetX/IsX/SetX methods (the direct
//     analogue of the JavaBean convention this package is modeled on);
//   - field-based, as a fallback for plain structs with no such
//     methods, where exported fields stand in for the Java "record"
//     case (a record's components are its property set with no
//     reflection naming convention to apply).
//
// A type's accessor set is discovered once and cached for the process
// lifetime in an insert-once registry; see Getters and Setters.
package invoke
