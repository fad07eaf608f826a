package workbook

import (
	"github.com/goccy/go-yaml"

	"github.com/ardnew/kelm/shape"
)

// DefaultModuleName names the generated module when the workbook does not.
const DefaultModuleName = "Main"

// Mode is the role a block plays in its language's generated artifact.
type Mode string

const (
	// ModeDefine marks a named top-level declaration, emitted verbatim.
	ModeDefine Mode = "define"
	// ModeEval marks a bare expression, rendered inline.
	ModeEval Mode = "eval"
)

// Classification is the result of classifying a block's source.
type Classification struct {
	Mode Mode   `json:"mode"           yaml:"mode"`
	Type string `json:"type,omitempty" yaml:"type,omitempty"`
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
}

// Classifier classifies a block's source text. It must be a pure function of
// its input.
type Classifier func(code string) Classification

// Define is the classification of blocks in languages with no [Classifier].
func Define(string) Classification {
	return Classification{Mode: ModeDefine}
}

// Import names a module the generated code imports, and its local alias.
type Import struct {
	From string `json:"from"         yaml:"from"`
	As   string `json:"as,omitempty" yaml:"as,omitempty"`
}

// Attrs are the attributes declared on a block's fence.
type Attrs map[string]string

// ID returns the block's id attribute.
func (a Attrs) ID() string { return a["id"] }

// Ref locates a block in its workbook.
type Ref struct {
	Lang  string `json:"lang"  yaml:"lang"`
	Index int    `json:"index" yaml:"index"` // position among all fenced blocks
	Line  int    `json:"line"  yaml:"line"`  // line of the opening fence
}

// Block is a fenced code block and its classification.
type Block struct {
	Ref   Ref            `json:"ref"   yaml:"ref"`
	Attrs Attrs          `json:"attrs" yaml:"attrs"`
	Code  string         `json:"code"  yaml:"code"`
	Class Classification `json:"class" yaml:"class"`
}

// Workbook holds everything a language plugin reads from a document.
type Workbook struct {
	ModuleName string
	Init       yaml.MapSlice
	Imports    []Import
	Shape      shape.Shape
	Blocks     []*Block
}

// Artifact is the single source file a language plugin generates from a
// workbook.
type Artifact struct {
	Name     string `json:"name"     yaml:"name"`
	Language string `json:"language" yaml:"language"`
	Code     string `json:"code"     yaml:"code"`
}

// Extract returns the blocks of language lang classified as mode, in
// document order.
func Extract(wb *Workbook, mode Mode, lang string) []*Block {
	if wb == nil {
		return nil
	}

	var blocks []*Block

	for _, b := range wb.Blocks {
		if b != nil && b.Ref.Lang == lang && b.Class.Mode == mode {
			blocks = append(blocks, b)
		}
	}

	return blocks
}

// Languages returns the distinct block languages in order of first
// appearance.
func (wb *Workbook) Languages() []string {
	var (
		langs []string
		seen  = map[string]bool{}
	)

	for _, b := range wb.Blocks {
		if b != nil && !seen[b.Ref.Lang] {
			seen[b.Ref.Lang] = true
			langs = append(langs, b.Ref.Lang)
		}
	}

	return langs
}
