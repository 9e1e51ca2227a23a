package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/eslsoft/conjugator/internal/entity"
	"github.com/eslsoft/conjugator/internal/repository"
	"github.com/eslsoft/conjugator/pkg/filterexpr"
)

// PgxConjugationRepository stores conjugations in PostgreSQL through a pgx
// pool, sending the form rows of a verb as one batch.
type PgxConjugationRepository struct {
	pool *pgxpool.Pool
	now  func() time.Time
}

var _ repository.ConjugationRepository = (*PgxConjugationRepository)(nil)

func NewPgxConjugationRepository(pool *pgxpool.Pool) *PgxConjugationRepository {
	return &PgxConjugationRepository{pool: pool, now: time.Now}
}

func (r *PgxConjugationRepository) Exists(ctx context.Context, language entity.Language, infinitive string) (bool, error) {
	var one int
	err := r.pool.QueryRow(ctx, rebind(placeholderDollar, existsVerbSQL), language.Code(), infinitive).Scan(&one)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check verb exists: %w", err)
	}
	return true, nil
}

func (r *PgxConjugationRepository) Save(ctx context.Context, conj *entity.StoredConjugation) (bool, error) {
	if conj == nil {
		return false, errors.New("conjugation payload required")
	}
	createdAt := conj.CreatedAt
	if createdAt.IsZero() {
		createdAt = r.now().UTC()
	}

	var (
		verbID   int64
		inserted bool
	)
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, rebind(placeholderDollar, insertVerbSQL),
			conj.Language.Code(), conj.Infinitive, conj.Translation, createdAt).Scan(&verbID)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("insert verb %s/%s: %w", conj.Language, conj.Infinitive, err)
		}
		inserted = true

		b := &pgx.Batch{}
		for _, row := range formRows(conj) {
			b.Queue(rebind(placeholderDollar, insertFormSQL), verbID, row[0], row[1], row[2])
		}
		br := tx.SendBatch(ctx, b)
		for i := 0; i < b.Len(); i++ {
			if _, err := br.Exec(); err != nil {
				br.Close()
				return fmt.Errorf("insert forms: %w", err)
			}
		}
		return br.Close()
	})
	if err != nil {
		return false, err
	}
	if inserted {
		conj.ID = verbID
		conj.CreatedAt = createdAt
	}
	return inserted, nil
}

func (r *PgxConjugationRepository) Get(ctx context.Context, language entity.Language, infinitive string) (*entity.StoredConjugation, error) {
	items, err := r.queryVerbs(ctx, selectVerbSQL+" WHERE language = ? AND infinitive = ?", language.Code(), infinitive)
	if err != nil {
		return nil, fmt.Errorf("get conjugation: %w", err)
	}
	if len(items) == 0 {
		return nil, entity.ErrConjugationNotFound
	}
	if err := r.loadForms(ctx, items); err != nil {
		return nil, err
	}
	return items[0], nil
}

func (r *PgxConjugationRepository) List(ctx context.Context, query *repository.ListConjugationQuery) ([]entity.StoredConjugation, int64, error) {
	var params listConjugationsParams
	if err := filterexpr.Bind(query, &params, listConjugationsSchema); err != nil {
		return nil, 0, err
	}
	lq := buildListQuery(params)

	var total int64
	if err := r.pool.QueryRow(ctx, rebind(placeholderDollar, lq.countSQL()), lq.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count conjugations: %w", err)
	}
	items, err := r.queryVerbs(ctx, lq.selectSQL(query.PageSize, query.Offset()), lq.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list conjugations: %w", err)
	}
	if err := r.loadForms(ctx, items); err != nil {
		return nil, 0, err
	}
	return derefAll(items), total, nil
}

func (r *PgxConjugationRepository) queryVerbs(ctx context.Context, query string, args ...any) ([]*entity.StoredConjugation, error) {
	rows, err := r.pool.Query(ctx, rebind(placeholderDollar, query), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanVerbs(rows)
}

func (r *PgxConjugationRepository) loadForms(ctx context.Context, items []*entity.StoredConjugation) error {
	if len(items) == 0 {
		return nil
	}
	byID, ids := indexByID(items)
	rows, err := r.pool.Query(ctx, rebind(placeholderDollar, formsQuery(len(ids))), ids...)
	if err != nil {
		return fmt.Errorf("load forms: %w", err)
	}
	defer rows.Close()
	if err := scanForms(rows, byID); err != nil {
		return fmt.Errorf("scan forms: %w", err)
	}
	return nil
}
