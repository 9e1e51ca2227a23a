package repository

import (
	"context"

	"github.com/eslsoft/conjugator/internal/entity"
)

// ListConjugationQuery holds parameters for listing stored conjugations.
type ListConjugationQuery struct {
	Pagination
	FilterOrder
}

// ConjugationRepository persists engine output. Save is idempotent per
// (language, infinitive): an existing verb is left untouched and reported as
// not inserted.
type ConjugationRepository interface {
	Exists(ctx context.Context, language entity.Language, infinitive string) (bool, error)
	Save(ctx context.Context, conj *entity.StoredConjugation) (bool, error)
	Get(ctx context.Context, language entity.Language, infinitive string) (*entity.StoredConjugation, error)
	List(ctx context.Context, query *ListConjugationQuery) ([]entity.StoredConjugation, int64, error)
}
