package connectrpc

import (
	"errors"
	"time"

	"connectrpc.com/connect"
	"github.com/samber/lo"

	"github.com/eslsoft/conjugator/internal/entity"
	"github.com/eslsoft/conjugator/pkg/filterexpr"
)

func toConjugation(c *entity.Conjugation) Conjugation {
	out := Conjugation{
		Infinitive: c.Infinitive,
		Language:   c.Language.Code(),
	}
	out.Tenses = lo.Map(c.Ordered(), func(tf entity.TenseForms, _ int) TenseTable {
		return TenseTable{
			Tense: tf.Tense.String(),
			Forms: lo.Map(entity.PersonSlots(), func(slot entity.PersonSlot, _ int) PersonForm {
				return PersonForm{
					Person:  slot.StorageLabel(),
					Pronoun: slot.Pronoun(c.Language),
					Form:    tf.Forms.At(slot),
				}
			}),
		}
	})
	return out
}

func toStoredConjugation(s *entity.StoredConjugation) Conjugation {
	out := toConjugation(&s.Conjugation)
	out.ID = s.ID
	out.Translation = s.Translation
	if !s.CreatedAt.IsZero() {
		out.CreatedAt = lo.ToPtr(s.CreatedAt.UTC().Truncate(time.Second))
	}
	return out
}

// toConnectError maps domain errors onto connect codes.
func toConnectError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, entity.ErrInvalidInfinitive), errors.Is(err, entity.ErrUnsupportedLanguage),
		errors.Is(err, filterexpr.ErrInvalidQuery):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, entity.ErrVerbNotRecognized), errors.Is(err, entity.ErrConjugationNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}
