package plugin

import (
	"iter"
	"log/slog"
	"slices"
	"sync"

	"github.com/sahilm/fuzzy"

	"github.com/ardnew/kelm/log"
	"github.com/ardnew/kelm/pkg"
	"github.com/ardnew/kelm/workbook"
)

// maxSuggestions bounds the alternatives reported for an unknown language.
const maxSuggestions = 3

// Registry is a [Host] that records provided languages in registration
// order. It is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	order []string
	langs map[string]Language
}

// NewRegistry returns a registry with each plugin registered.
func NewRegistry(plugins ...Plugin) *Registry {
	r := &Registry{langs: map[string]Language{}}

	for _, p := range plugins {
		log.Debug("register plugin", slog.String("plugin", p.Name))
		p.Register(r)
	}

	return r
}

// ProvidesLanguage implements [Host]. Registering a name again replaces the
// earlier language but keeps its position.
func (r *Registry) ProvidesLanguage(name string, lang Language) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.langs == nil {
		r.langs = map[string]Language{}
	}

	if _, exists := r.langs[name]; !exists {
		r.order = append(r.order, name)
	}

	if lang.Name == "" {
		lang.Name = name
	}

	r.langs[name] = lang

	log.Debug("provides language",
		slog.String("language", name),
		slog.Bool("classify", lang.Classify != nil),
	)
}

// Names returns the registered language names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.order)
}

// Languages iterates over the registered languages in registration order.
func (r *Registry) Languages() iter.Seq[Language] {
	return func(yield func(Language) bool) {
		for _, name := range r.Names() {
			lang, ok := r.get(name)
			if ok && !yield(lang) {
				return
			}
		}
	}
}

func (r *Registry) get(name string) (Language, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lang, ok := r.langs[name]

	return lang, ok
}

// Lookup returns the named language. An unknown name yields
// [pkg.ErrUnknownLanguage] annotated with the closest registered names.
func (r *Registry) Lookup(name string) (Language, error) {
	if lang, ok := r.get(name); ok {
		return lang, nil
	}

	err := pkg.ErrUnknownLanguage.With(slog.String("language", name))

	if suggest := r.Suggest(name); len(suggest) > 0 {
		err = err.With(slog.Any("suggest", suggest))
	}

	return Language{}, err
}

// Suggest returns up to three registered names that fuzzily match name,
// best first.
func (r *Registry) Suggest(name string) []string {
	names := r.Names()

	var out []string

	for _, m := range fuzzy.Find(name, names) {
		out = append(out, m.Str)
		if len(out) == maxSuggestions {
			break
		}
	}

	return out
}

// ParseOptions returns the workbook options that classify blocks of every
// registered language that has a classifier.
func (r *Registry) ParseOptions() []workbook.Option {
	var opts []workbook.Option

	for lang := range r.Languages() {
		if lang.Classify != nil {
			opts = append(opts, workbook.WithClassifier(lang.Name, lang.Classify))
		}
	}

	return opts
}

// Parse reads a workbook, classifying blocks with the registered
// classifiers.
func (r *Registry) Parse(data []byte) (*workbook.Workbook, error) {
	wb, err := workbook.ParseBytes(data, r.ParseOptions()...)
	if err != nil {
		return nil, pkg.ErrParseWorkbook.Wrap(err)
	}

	return wb, nil
}

// Collate generates the named language's artifact from wb.
func (r *Registry) Collate(wb *workbook.Workbook, name string) (workbook.Artifact, error) {
	lang, err := r.Lookup(name)
	if err != nil {
		return workbook.Artifact{}, err
	}

	art := lang.Collate(wb)

	log.Debug("collated",
		slog.String("language", name),
		slog.String("artifact", art.Name),
		slog.Int("bytes", len(art.Code)),
	)

	return art, nil
}
