// Package conjugation synthesizes person-by-tense verb tables for Spanish,
// French and German from suffix patterns, irregular overrides and, for the
// French preterite, an auxiliary plus past participle.
//
// All rule data is package-level and read-only, so an Engine can be shared
// across goroutines without locking.
package conjugation

import (
	"fmt"
	"sort"

	"github.com/samber/lo"

	"github.com/eslsoft/conjugator/internal/entity"
)

// Engine is the per-call entry point of the conjugation rules.
type Engine struct{}

// New returns an Engine after checking the rule tables.
func New() (*Engine, error) {
	e := &Engine{}
	if err := e.Validate(); err != nil {
		return nil, fmt.Errorf("invalid conjugation rules: %w", err)
	}
	return e, nil
}

// Conjugate returns every tense defined for the language, or false when the
// infinitive is not a verb pattern the engine models. A false result is an
// expected outcome for ordinary vocabulary, not a failure.
func (e *Engine) Conjugate(infinitive string, lang entity.Language) (*entity.Conjugation, bool) {
	infinitive = entity.NormalizeWordToken(infinitive)
	if infinitive == "" || !lang.IsConjugable() {
		return nil, false
	}
	if !e.Recognizes(infinitive, lang) {
		return nil, false
	}

	tenses := entity.TensesFor(lang)
	result := &entity.Conjugation{
		Infinitive: infinitive,
		Language:   lang,
		Tenses:     make(map[entity.Tense]entity.Forms, len(tenses)),
	}
	for _, t := range tenses {
		forms, ok := Resolve(lang, infinitive, t)
		if !ok {
			return nil, false
		}
		result.Tenses[t] = forms
	}
	return result, true
}

// Recognizes reports whether Conjugate would produce a table. A verb whose
// ending is unknown is still recognized when its irregular entry covers every
// tense of the language (German "sein").
func (e *Engine) Recognizes(infinitive string, lang entity.Language) bool {
	infinitive = entity.NormalizeWordToken(infinitive)
	if _, ok := Classify(lang, infinitive); ok {
		return true
	}
	return coversAllTenses(lang, infinitive)
}

// IrregularVerbs lists, sorted, the infinitives with override entries for a language.
func (e *Engine) IrregularVerbs(lang entity.Language) []string {
	out := lo.Keys(irregularTables[lang])
	sort.Strings(out)
	return out
}
