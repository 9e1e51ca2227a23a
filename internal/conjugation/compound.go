package conjugation

import "github.com/eslsoft/conjugator/internal/entity"

// irregularParticiples overrides the group-derived French past participle.
var irregularParticiples = map[string]string{
	"être":    "été",
	"avoir":   "eu",
	"faire":   "fait",
	"aller":   "allé",
	"pouvoir": "pu",
	"vouloir": "voulu",
	"venir":   "venu",
	"prendre": "pris",
	"voir":    "vu",
	"savoir":  "su",
	"devoir":  "dû",
	"dire":    "dit",
	"mettre":  "mis",
}

var participleEndings = map[Group]string{
	GroupER: "é",
	GroupIR: "i",
	GroupRE: "u",
}

// Participle returns the French past participle of an infinitive.
func Participle(infinitive string) (string, bool) {
	infinitive = entity.NormalizeWordToken(infinitive)
	if p, ok := irregularParticiples[infinitive]; ok {
		return p, true
	}
	c, ok := Classify(entity.LanguageFrench, infinitive)
	if !ok {
		return "", false
	}
	ending, ok := participleEndings[c.Group]
	if !ok {
		return "", false
	}
	return c.Stem + ending, true
}

// compoundPreterite builds the passé composé used as the French preterite:
// the present of avoir followed by the participle, slot by slot.
func compoundPreterite(infinitive string) (entity.Forms, bool) {
	participle, ok := Participle(infinitive)
	if !ok {
		return entity.Forms{}, false
	}
	aux, ok := Resolve(entity.LanguageFrench, avoirInfinitive, entity.TensePresent)
	if !ok {
		return entity.Forms{}, false
	}
	var out entity.Forms
	for i, a := range aux {
		out[i] = a + " " + participle
	}
	return out, true
}
