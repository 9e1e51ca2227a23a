package entity

import "strings"

// Language represents supported language codes using ISO-style abbreviations.
type Language string

const (
	LanguageUnspecified Language = ""
	LanguageEnglish     Language = "en"
	LanguageSpanish     Language = "es"
	LanguageFrench      Language = "fr"
	LanguageGerman      Language = "de"
)

// ConjugableLanguages lists the languages the conjugation engine has rules for.
var ConjugableLanguages = []Language{LanguageSpanish, LanguageFrench, LanguageGerman}

// Code returns the lowercase language code (without defaulting).
func (l Language) Code() string {
	return strings.TrimSpace(string(l))
}

// IsConjugable reports whether the engine has rule tables for the language.
func (l Language) IsConjugable() bool {
	switch l {
	case LanguageSpanish, LanguageFrench, LanguageGerman:
		return true
	default:
		return false
	}
}

// NormalizeWordToken trims and lowercases a vocabulary token.
func NormalizeWordToken(word string) string {
	trimmed := strings.TrimSpace(word)
	if trimmed == "" {
		return ""
	}
	return strings.ToLower(trimmed)
}

// ParseLanguage converts an arbitrary string into a supported Language value.
func ParseLanguage(code string) Language {
	switch strings.ToLower(strings.TrimSpace(code)) {
	case "en":
		return LanguageEnglish
	case "es", "spanish":
		return LanguageSpanish
	case "fr", "french":
		return LanguageFrench
	case "de", "german":
		return LanguageGerman
	default:
		return LanguageUnspecified
	}
}
