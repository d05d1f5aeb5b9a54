// Package check finds misuse of union types before a program runs.
//
// It loads packages with golang.org/x/tools/go/packages and walks the
// generic instantiations recorded by go/types. Each instantiation of a union
// type and each call of a type-directed union function is checked against
// the enabled rules:
//
//   - UC001 membership: the requested type (Has[T], Find[T], sum.On[T] ...)
//     must be an alternative of the union;
//   - UC002 duplicate: alternatives must be distinct;
//   - UC003 gap: Void may only fill trailing slots;
//   - UC004 trivial: pod unions hold trivial alternatives only;
//   - UC005 strategy: a managed union of trivial alternatives could be a pod
//     union (warning).
//
// The checker also reports the static layout of every union it sees.
package check
