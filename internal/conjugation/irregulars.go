package conjugation

import "github.com/eslsoft/conjugator/internal/entity"

// irregularEntry holds only the tenses that deviate from the regular pattern.
type irregularEntry map[entity.Tense]entity.Forms

var irregularTables = map[entity.Language]map[string]irregularEntry{
	entity.LanguageSpanish: spanishIrregulars,
	entity.LanguageFrench:  frenchIrregulars,
	entity.LanguageGerman:  germanIrregulars,
}

// lookupIrregular returns the override forms for one verb and tense.
func lookupIrregular(lang entity.Language, infinitive string, tense entity.Tense) (entity.Forms, bool) {
	entry, ok := irregularTables[lang][infinitive]
	if !ok {
		return entity.Forms{}, false
	}
	f, ok := entry[tense]
	return f, ok
}

// coversAllTenses reports whether the verb's override entry defines every
// tense of the language.
func coversAllTenses(lang entity.Language, infinitive string) bool {
	entry, ok := irregularTables[lang][infinitive]
	if !ok {
		return false
	}
	for _, t := range entity.TensesFor(lang) {
		if _, ok := entry[t]; !ok {
			return false
		}
	}
	return true
}

// withEndings attaches a shared ending set to an irregular base such as the
// Spanish future stem "tendr".
func withEndings(base string, endings []string) entity.Forms {
	var f entity.Forms
	for i, e := range endings {
		f[i] = base + e
	}
	return f
}
