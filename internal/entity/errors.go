package entity

import "errors"

// Domain errors for conjugation lookups and persistence.
var (
	ErrVerbNotRecognized   = errors.New("not a recognized verb pattern")
	ErrUnsupportedLanguage = errors.New("unsupported language")
	ErrInvalidInfinitive   = errors.New("invalid infinitive")
	ErrConjugationNotFound = errors.New("conjugation not found")
)
