package entity

import (
	"fmt"
	"strings"
)

// Tense is the closed set of tenses the engine can produce.
type Tense int

const (
	TensePresent Tense = iota + 1
	TensePreterite
	TenseImperfect
	TenseFuture
	TenseConditional
)

var tenseNames = map[Tense]string{
	TensePresent:     "present",
	TensePreterite:   "preterite",
	TenseImperfect:   "imperfect",
	TenseFuture:      "future",
	TenseConditional: "conditional",
}

var (
	romanceTenses = []Tense{TensePresent, TensePreterite, TenseImperfect, TenseFuture, TenseConditional}
	germanTenses  = []Tense{TensePresent, TensePreterite}
)

func (t Tense) String() string {
	if name, ok := tenseNames[t]; ok {
		return name
	}
	return fmt.Sprintf("tense(%d)", int(t))
}

// ParseTense converts a tense name into a Tense.
func ParseTense(name string) (Tense, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for t, n := range tenseNames {
		if n == name {
			return t, true
		}
	}
	return 0, false
}

// TensesFor returns the tenses implemented for a language in display order.
// The returned slice must not be modified.
func TensesFor(lang Language) []Tense {
	switch lang {
	case LanguageSpanish, LanguageFrench:
		return romanceTenses
	case LanguageGerman:
		return germanTenses
	default:
		return nil
	}
}

// HasTense reports whether the tense belongs to the language's tense set.
func HasTense(lang Language, tense Tense) bool {
	for _, t := range TensesFor(lang) {
		if t == tense {
			return true
		}
	}
	return false
}
