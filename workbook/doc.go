// Package workbook is the document model language plugins collate from.
//
// A workbook is a markdown document. Optional YAML front matter declares the
// generated module's name, its imports, the shape of its state, and the
// state's initial value. Fenced code blocks carry the embedded sources:
//
//	---
//	moduleName: Counter
//	imports:
//	  - from: Html.Events
//	    as: Events
//	shape:
//	  count: int
//	init:
//	  count: 0
//	---
//
//	```elm #total
//	Html.text (String.fromInt count)
//	```
//
//	```css
//	li { color: teal; }
//	```
//
// The fence info string is the block's language followed by attributes,
// either bare (`elm #total kind=demo`) or braced (`elm {#total kind="demo"}`).
//
// Every block is classified when the workbook is parsed, using the
// [Classifier] registered for its language with [WithClassifier]. Blocks of a
// language with no classifier are definitions. [Extract] then selects the
// ordered blocks of one language and mode.
package workbook
