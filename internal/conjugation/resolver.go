package conjugation

import "github.com/eslsoft/conjugator/internal/entity"

// Resolve returns the six forms of one tense. Irregular data for the
// (verb, tense) pair is returned verbatim and suppresses the regular path.
func Resolve(lang entity.Language, infinitive string, tense entity.Tense) (entity.Forms, bool) {
	infinitive = entity.NormalizeWordToken(infinitive)
	if !entity.HasTense(lang, tense) {
		return entity.Forms{}, false
	}
	if f, ok := lookupIrregular(lang, infinitive, tense); ok {
		return f, true
	}
	if lang == entity.LanguageFrench && tense == entity.TensePreterite {
		return compoundPreterite(infinitive)
	}
	c, ok := Classify(lang, infinitive)
	if !ok {
		return entity.Forms{}, false
	}
	return Synthesize(lang, c, tense)
}
