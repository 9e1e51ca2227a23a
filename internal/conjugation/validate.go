package conjugation

import (
	"errors"
	"fmt"

	"github.com/eslsoft/conjugator/internal/entity"
)

// Validate checks the rule tables for authoring defects: missing patterns,
// overrides for tenses a language does not have and empty forms.
func (e *Engine) Validate() error {
	var errs []error
	for _, lang := range entity.ConjugableLanguages {
		rules, ok := classifierRules[lang]
		if !ok {
			errs = append(errs, fmt.Errorf("%s: no classifier rules", lang))
			continue
		}
		for _, rule := range rules {
			patterns, ok := endingTable[lang][rule.group]
			if !ok {
				errs = append(errs, fmt.Errorf("%s/%s: no ending patterns", lang, rule.group))
				continue
			}
			for _, t := range entity.TensesFor(lang) {
				if lang == entity.LanguageFrench && t == entity.TensePreterite {
					if _, ok := participleEndings[rule.group]; !ok {
						errs = append(errs, fmt.Errorf("%s/%s: no participle ending", lang, rule.group))
					}
					continue
				}
				if _, ok := patterns[t]; !ok {
					errs = append(errs, fmt.Errorf("%s/%s: missing %s pattern", lang, rule.group, t))
				}
			}
			for t := range patterns {
				if !entity.HasTense(lang, t) {
					errs = append(errs, fmt.Errorf("%s/%s: pattern for unsupported tense %s", lang, rule.group, t))
				}
			}
		}

		for inf, entry := range irregularTables[lang] {
			if inf != entity.NormalizeWordToken(inf) {
				errs = append(errs, fmt.Errorf("%s/%s: irregular key must be normalized", lang, inf))
			}
			for t, f := range entry {
				if !entity.HasTense(lang, t) {
					errs = append(errs, fmt.Errorf("%s/%s: override for unsupported tense %s", lang, inf, t))
				}
				for slot, form := range f {
					if form == "" {
						errs = append(errs, fmt.Errorf("%s/%s/%s: empty form at slot %d", lang, inf, t, slot))
					}
				}
			}
		}
	}

	if _, ok := lookupIrregular(entity.LanguageFrench, avoirInfinitive, entity.TensePresent); !ok {
		errs = append(errs, errors.New("fr: auxiliary avoir has no present override"))
	}
	return errors.Join(errs...)
}
