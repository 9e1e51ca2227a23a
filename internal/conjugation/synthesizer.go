package conjugation

import (
	"strings"

	"github.com/eslsoft/conjugator/internal/entity"
)

// Synthesize builds the six regular forms for a classified verb. It reports
// false when the language has no pattern for the group and tense.
func Synthesize(lang entity.Language, c Classification, tense entity.Tense) (entity.Forms, bool) {
	p, ok := endingTable[lang][c.Group][tense]
	if !ok {
		return entity.Forms{}, false
	}

	var base string
	switch p.base {
	case baseInfinitive:
		base = c.Infinitive
	case baseInfinitiveDropE:
		base = strings.TrimSuffix(c.Infinitive, "e")
	default:
		base = c.Stem
	}

	var out entity.Forms
	for i, suffix := range p.suffixes {
		out[i] = base + suffix
	}
	return out, true
}
