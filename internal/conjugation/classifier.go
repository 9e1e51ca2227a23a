package conjugation

import (
	"strings"

	"github.com/eslsoft/conjugator/internal/entity"
)

// Group is a verb class selected from the infinitive's ending.
type Group string

const (
	GroupAR Group = "ar"
	GroupER Group = "er"
	GroupIR Group = "ir"
	GroupRE Group = "re"
	GroupEN Group = "en"
	GroupLN Group = "ln"
	GroupRN Group = "rn"
)

// Classification is the result of inspecting an infinitive.
type Classification struct {
	Infinitive string
	Group      Group
	Stem       string
}

type suffixRule struct {
	group Group
	// keep is the number of suffix bytes that stay on the stem.
	keep int
}

// classifierRules are checked in order against the last two characters.
var classifierRules = map[entity.Language][]suffixRule{
	entity.LanguageSpanish: {
		{group: GroupAR},
		{group: GroupER},
		{group: GroupIR},
	},
	entity.LanguageFrench: {
		{group: GroupER},
		{group: GroupIR},
		{group: GroupRE},
	},
	// ln and rn keep their consonant: sammeln -> sammel, wandern -> wander.
	entity.LanguageGerman: {
		{group: GroupEN},
		{group: GroupLN, keep: 1},
		{group: GroupRN, keep: 1},
	},
}

// Classify selects the verb group for an infinitive. It reports false when
// no ending of the language matches.
func Classify(lang entity.Language, infinitive string) (Classification, bool) {
	infinitive = entity.NormalizeWordToken(infinitive)
	for _, rule := range classifierRules[lang] {
		suffix := string(rule.group)
		if len(infinitive) <= len(suffix) || !strings.HasSuffix(infinitive, suffix) {
			continue
		}
		return Classification{
			Infinitive: infinitive,
			Group:      rule.group,
			Stem:       infinitive[:len(infinitive)-len(suffix)+rule.keep],
		}, true
	}
	return Classification{}, false
}
