package workbook

import (
	"fmt"
	"log/slog"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/ardnew/kelm/pkg"
)

// env is the expression environment a [Selector] evaluates against.
type env struct {
	Lang  string            `expr:"lang"`
	ID    string            `expr:"id"`
	Attrs map[string]string `expr:"attrs"`
	Code  string            `expr:"code"`
	Mode  string            `expr:"mode"`
	Name  string            `expr:"name"`
	Line  int               `expr:"line"`
}

func envOf(b *Block) env {
	return env{
		Lang:  b.Ref.Lang,
		ID:    b.Attrs.ID(),
		Attrs: b.Attrs,
		Code:  b.Code,
		Mode:  string(b.Class.Mode),
		Name:  b.Class.Name,
		Line:  b.Ref.Line,
	}
}

// Selector is a compiled boolean expression over a block.
//
// The expression sees lang, id, attrs, code, mode, name and line, for
// example:
//
//	lang == "elm" && mode == "eval" && id startsWith "demo-"
type Selector struct {
	source  string
	program *vm.Program
}

// Compile compiles src into a Selector.
func Compile(src string) (*Selector, error) {
	program, err := expr.Compile(src, expr.Env(env{}), expr.AsBool())
	if err != nil {
		return nil, pkg.ErrCompileSelector.Wrap(err).
			With(slog.String("source", src))
	}

	return &Selector{source: src, program: program}, nil
}

// String returns the selector's source expression.
func (s *Selector) String() string { return s.source }

// Match reports whether b satisfies the selector.
func (s *Selector) Match(b *Block) (bool, error) {
	out, err := expr.Run(s.program, envOf(b))
	if err != nil {
		return false, pkg.ErrEvalSelector.Wrap(err).
			With(
				slog.String("source", s.source),
				slog.Int("block", b.Ref.Index),
			)
	}

	ok, isBool := out.(bool)
	if !isBool {
		return false, pkg.ErrEvalSelector.
			Wrap(fmt.Errorf("result is %T, not bool", out)).
			With(slog.String("source", s.source))
	}

	return ok, nil
}

// Select returns a copy of wb keeping only the blocks s matches. A nil
// selector keeps every block.
func (wb *Workbook) Select(s *Selector) (*Workbook, error) {
	out := *wb
	if s == nil {
		return &out, nil
	}

	out.Blocks = make([]*Block, 0, len(wb.Blocks))

	for _, b := range wb.Blocks {
		if b == nil {
			continue
		}

		ok, err := s.Match(b)
		if err != nil {
			return nil, err
		}

		if ok {
			out.Blocks = append(out.Blocks, b)
		}
	}

	return &out, nil
}
