package entity

import "time"

// PersonSlot indexes one of the six canonical positions of a conjugation row.
// The order is identical for every language.
type PersonSlot int

const (
	P1 PersonSlot = iota // first singular
	P2                   // second singular, informal
	P3                   // third singular / formal second
	P4                   // first plural
	P5                   // second plural
	P6                   // third plural
)

// SlotCount is the number of person slots in every Forms value.
const SlotCount = 6

// storageLabels is the language-agnostic key set used when persisting rows.
// The labels are borrowed from Spanish pronouns purely as stable identifiers.
var storageLabels = [SlotCount]string{"yo", "tu", "el/ella/usted", "nosotros", "vosotros", "ellos/ellas/ustedes"}

// PersonSlots returns the six slots in canonical order.
func PersonSlots() []PersonSlot {
	return []PersonSlot{P1, P2, P3, P4, P5, P6}
}

// StorageLabel returns the persistence key for the slot.
func (p PersonSlot) StorageLabel() string {
	if p < P1 || p > P6 {
		return ""
	}
	return storageLabels[p]
}

// PersonSlotFromLabel resolves a persistence key back into a slot.
func PersonSlotFromLabel(label string) (PersonSlot, bool) {
	for i, l := range storageLabels {
		if l == label {
			return PersonSlot(i), true
		}
	}
	return 0, false
}

var displayPronouns = map[Language][SlotCount]string{
	LanguageSpanish: {"yo", "tú", "él/ella/usted", "nosotros", "vosotros", "ellos/ellas/ustedes"},
	LanguageFrench:  {"je", "tu", "il/elle", "nous", "vous", "ils/elles"},
	LanguageGerman:  {"ich", "du", "er/sie/es", "wir", "ihr", "sie/Sie"},
}

// Pronoun returns the subject pronoun shown next to the slot's form, falling
// back to the storage label for languages without a pronoun set.
func (p PersonSlot) Pronoun(lang Language) string {
	if p < P1 || p > P6 {
		return ""
	}
	if set, ok := displayPronouns[lang]; ok {
		return set[p]
	}
	return storageLabels[p]
}

// Forms holds the six surface forms of one tense in PersonSlot order.
type Forms [SlotCount]string

// At returns the form for a slot.
func (f Forms) At(p PersonSlot) string { return f[p] }

// Conjugation maps every tense of a language to its six forms.
type Conjugation struct {
	Infinitive string
	Language   Language
	Tenses     map[Tense]Forms
}

// TenseForms is a single row of an ordered conjugation table.
type TenseForms struct {
	Tense Tense
	Forms Forms
}

// Ordered returns the tenses in the language's display order.
func (c *Conjugation) Ordered() []TenseForms {
	if c == nil {
		return nil
	}
	out := make([]TenseForms, 0, len(c.Tenses))
	for _, t := range TensesFor(c.Language) {
		if forms, ok := c.Tenses[t]; ok {
			out = append(out, TenseForms{Tense: t, Forms: forms})
		}
	}
	return out
}

// VerbCandidate is a vocabulary entry offered to the engine.
type VerbCandidate struct {
	Infinitive  string   `json:"infinitive" yaml:"infinitive"`
	Translation string   `json:"translation" yaml:"translation"`
	Language    Language `json:"language" yaml:"language"`
}

// Normalize trims the infinitive and resolves the language code.
func (c VerbCandidate) Normalize() VerbCandidate {
	return VerbCandidate{
		Infinitive:  NormalizeWordToken(c.Infinitive),
		Translation: c.Translation,
		Language:    ParseLanguage(string(c.Language)),
	}
}

// StoredConjugation is a persisted conjugation with its vocabulary metadata.
type StoredConjugation struct {
	ID int64
	Conjugation
	Translation string
	CreatedAt   time.Time
}
