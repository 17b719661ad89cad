// Package mapper translates between wire messages and the typed object
// model.
//
// From* functions are total over their input. A nil message maps to the
// zero model value, absent lists map to empty slices and nested messages go
// through their own From* function. To* functions populate every field of
// the wire message, including the ones the model leaves at their zero value.
package mapper
