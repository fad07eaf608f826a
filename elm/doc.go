// Package elm collates the Elm blocks of a workbook into one program.
//
// The generated module follows The Elm Architecture. Its Model is the
// workbook's declared shape, rendered by [Type]; incoming JSON values on the
// kram_input port are decoded by [Decoder] and replace the model, and values
// that fail to decode leave the model untouched. The initial model decodes
// the program's flags, falling back to the workbook's init value rendered by
// [Init].
//
// Blocks are split by [Classify]. Definitions are copied verbatim as
// top-level declarations; every other block becomes one item of the view's
// ordered list, with the model's record fields in scope by name.
//
// Nothing here fails. A shape with an unrecognized scalar kind, an init value
// that does not match the shape, or a misclassified block all yield source
// that the Elm compiler rejects downstream.
package elm
