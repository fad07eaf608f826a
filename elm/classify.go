package elm

import (
	"regexp"

	"github.com/ardnew/kelm/workbook"
)

// definition matches an identifier at the start of a block followed either
// by a type annotation colon or by parameter names and an equals sign.
//
// This is a heuristic: an expression such as "x == y" also matches.
var definition = regexp.MustCompile(`^\s*(\w+)(\s*:|(\s+\w+)*\s*=)`)

// Classify reports whether code defines a top-level value or is an
// expression to evaluate.
func Classify(code string) workbook.Classification {
	m := definition.FindStringSubmatch(code)
	if m == nil {
		return workbook.Classification{Mode: workbook.ModeEval}
	}

	return workbook.Classification{
		Mode: workbook.ModeDefine,
		Type: "function",
		Name: m[1],
	}
}

var _ workbook.Classifier = Classify
