// Package shape models the declared structure of a workbook's state.
//
// A [Shape] is one of three variants:
//
//   - [Array]: a homogeneous list of an element shape
//   - [Record]: named fields, each with its own shape, in declared order
//   - [Scalar]: one of the primitive [Kind] values
//
// The set of variants is closed. Renderers consume shapes through [Match],
// which requires a handler for every variant, so adding a variant is a
// compile error at every use site rather than a silent fallthrough.
//
// # Introspection
//
// Shapes are written in workbooks by example, following the kram
// convention:
//
//	shape:
//	  count: int
//	  tags: [string]
//	  owner:
//	    name: string
//	    admin: boolean
//
// A single-element sequence is an array of that element's shape, a mapping is
// a record, and a string names a scalar kind. [ArrayType], [RecordType] and
// [ScalarType] probe a raw decoded value for each variant; [Of] combines
// them. Field order is taken from ordered YAML maps; plain Go maps have no
// order, so their keys are sorted.
package shape
