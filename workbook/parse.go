package workbook

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/ardnew/kelm/pkg"
	"github.com/ardnew/kelm/shape"
)

// Option configures parsing.
type Option func(config) config

type config struct {
	classify map[string]Classifier
}

func apply(cfg config, opts ...Option) config {
	for _, opt := range opts {
		cfg = opt(cfg)
	}

	return cfg
}

// WithClassifier classifies blocks of language lang with fn.
func WithClassifier(lang string, fn Classifier) Option {
	return func(c config) config {
		m := make(map[string]Classifier, len(c.classify)+1)
		for k, v := range c.classify {
			m[k] = v
		}

		m[lang] = fn
		c.classify = m

		return c
	}
}

func (c config) classifier(lang string) Classifier {
	if fn, ok := c.classify[lang]; ok && fn != nil {
		return fn
	}

	return Define
}

// Parse reads a markdown workbook from r.
func Parse(r io.Reader, opts ...Option) (*Workbook, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, pkg.ErrReadInput.Wrap(err)
	}

	return ParseBytes(data, opts...)
}

// ParseString reads a markdown workbook from s.
func ParseString(s string, opts ...Option) (*Workbook, error) {
	return ParseBytes([]byte(s), opts...)
}

// ParseBytes reads a markdown workbook from data.
func ParseBytes(data []byte, opts ...Option) (*Workbook, error) {
	cfg := apply(config{}, opts...)

	head, body, offset := splitFrontMatter(data)

	wb, err := parseFrontMatter(head)
	if err != nil {
		return nil, err
	}

	wb.Blocks = parseBlocks(body, offset, cfg)

	return wb, nil
}

// frontMatter is the YAML header of a workbook.
type frontMatter struct {
	ModuleName string   `yaml:"moduleName"`
	Imports    []Import `yaml:"imports"`
	Shape      any      `yaml:"shape"`
	Init       any      `yaml:"init"`
}

func parseFrontMatter(head []byte) (*Workbook, error) {
	var fm frontMatter

	if len(bytes.TrimSpace(head)) > 0 {
		err := yaml.UnmarshalWithOptions(head, &fm, yaml.UseOrderedMap())
		if err != nil {
			return nil, pkg.ErrFrontMatter.Wrap(err)
		}
	}

	wb := &Workbook{
		ModuleName: strings.TrimSpace(fm.ModuleName),
		Imports:    fm.Imports,
		Shape:      shape.Of(fm.Shape),
	}

	if wb.ModuleName == "" {
		wb.ModuleName = DefaultModuleName
	}

	if fm.Shape == nil {
		wb.Shape = shape.Record{}
	}

	if fm.Init != nil {
		init, ok := shape.RecordType(fm.Init)
		if !ok {
			return nil, pkg.ErrFrontMatter.
				Wrap(fmt.Errorf("init must be a mapping, got %T", fm.Init)).
				With(slog.String("field", "init"))
		}

		wb.Init = init
	}

	return wb, nil
}

// splitFrontMatter separates a leading "---" delimited YAML header from the
// markdown body. offset is the number of lines consumed by the header.
func splitFrontMatter(data []byte) (head, body []byte, offset int) {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))

	first, rest, ok := bytes.Cut(data, []byte("\n"))
	if !ok || string(bytes.TrimRight(first, " \t\r")) != "---" {
		return nil, data, 0
	}

	lines := 1

	for pos := 0; pos <= len(rest); {
		end := bytes.IndexByte(rest[pos:], '\n')
		if end < 0 {
			end = len(rest) - pos
		}

		line := string(bytes.TrimRight(rest[pos:pos+end], " \t\r"))
		lines++

		if line == "---" || line == "..." {
			next := min(pos+end+1, len(rest))

			return rest[:pos], rest[next:], lines
		}

		pos += end + 1
	}

	// Unterminated header: treat the whole input as markdown.
	return nil, data, 0
}

func parseBlocks(body []byte, offset int, cfg config) []*Block {
	doc := goldmark.New().Parser().Parse(text.NewReader(body))

	var (
		blocks []*Block
		index  int
	)

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		fence, ok := n.(*ast.FencedCodeBlock)
		if !ok {
			return ast.WalkContinue, nil
		}

		lang := string(fence.Language(body))
		if lang == "" {
			return ast.WalkSkipChildren, nil
		}

		var code bytes.Buffer

		lines := fence.Lines()
		for i := range lines.Len() {
			seg := lines.At(i)
			code.Write(seg.Value(body))
		}

		b := &Block{
			Ref: Ref{
				Lang:  lang,
				Index: index,
				Line:  offset + fenceLine(fence, body),
			},
			Attrs: fenceAttrs(fence, body, lang),
			Code:  strings.TrimRight(code.String(), "\n"),
		}
		b.Class = cfg.classifier(lang)(b.Code)

		blocks = append(blocks, b)
		index++

		return ast.WalkSkipChildren, nil
	})

	return blocks
}

// fenceLine returns the 1-based line of the opening fence within body.
func fenceLine(fence *ast.FencedCodeBlock, body []byte) int {
	switch {
	case fence.Info != nil:
		return bytes.Count(body[:fence.Info.Segment.Start], []byte("\n")) + 1
	case fence.Lines().Len() > 0:
		return bytes.Count(body[:fence.Lines().At(0).Start], []byte("\n"))
	default:
		return 0
	}
}

// fenceAttrs parses the attributes following the language in the fence info
// string. Bare attribute lists are parsed as if they were braced.
func fenceAttrs(fence *ast.FencedCodeBlock, body []byte, lang string) Attrs {
	attrs := Attrs{}

	if fence.Info == nil {
		return attrs
	}

	info := strings.TrimSpace(string(fence.Info.Segment.Value(body)))
	rest := strings.TrimSpace(strings.TrimPrefix(info, lang))

	if rest == "" {
		return attrs
	}

	if !strings.HasPrefix(rest, "{") {
		rest = "{" + rest + "}"
	}

	parsed, ok := parser.ParseAttributes(text.NewReader([]byte(rest)))
	if !ok {
		return attrs
	}

	for _, a := range parsed {
		switch v := a.Value.(type) {
		case []byte:
			attrs[string(a.Name)] = string(v)
		case string:
			attrs[string(a.Name)] = v
		default:
			attrs[string(a.Name)] = fmt.Sprint(v)
		}
	}

	return attrs
}
