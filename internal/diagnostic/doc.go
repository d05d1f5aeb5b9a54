// Package diagnostic provides structured errors, warnings and notes
// reported by the union checker.
//
// Every diagnostic carries a stable code (UC001, UC002, ...), the source
// position of the offending instantiation, the union type it concerns and
// optional "did you mean" suggestions.
package diagnostic
