package cmd

import (
	"context"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/ardnew/kelm/plugin"
	"github.com/ardnew/kelm/workbook"
)

// Classify lists how each block of a workbook is classified.
type Classify struct {
	Source string `arg:"" default:"-" help:"Workbook file or '-' for stdin" optional:""`
	Code   string `help:"Classify this snippet instead of a workbook" placeholder:"SNIPPET"`
	Lang   string `default:"elm" help:"Language of --code: ${languages}" short:"l"`
	Plain  bool   `help:"Disable colors"`
}

var classifyHeaders = []string{"LINE", "LANG", "ID", "MODE", "TYPE", "NAME"}

// Run executes the classify command.
func (c *Classify) Run(ctx context.Context, reg *plugin.Registry) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	t := table{headers: classifyHeaders}

	if c.Code != "" {
		lang, err := reg.Lookup(c.Lang)
		if err != nil {
			return err
		}

		class := classify(lang.Classify, c.Code)
		t.add("-", lang.Name, "", string(class.Mode), class.Type, class.Name)
	} else {
		wb, err := load(ctx, reg, c.Source)
		if err != nil {
			return err
		}

		for _, b := range wb.Blocks {
			t.add(
				strconv.Itoa(b.Ref.Line),
				b.Ref.Lang,
				b.Attrs.ID(),
				string(b.Class.Mode),
				b.Class.Type,
				b.Class.Name,
			)
		}
	}

	return t.render(outputFrom(ctx), styleFor(c.Plain, classifyCell))
}

func classify(fn workbook.Classifier, code string) workbook.Classification {
	if fn == nil {
		return workbook.Define(code)
	}

	return fn(code)
}

func classifyCell(col int, value string) lipgloss.Style {
	switch classifyHeaders[col] {
	case "LINE":
		return mutedStyle
	case "MODE":
		if value == string(workbook.ModeEval) {
			return evalStyle
		}

		return defineStyle
	case "NAME":
		return nameStyle
	default:
		return plainStyle
	}
}
