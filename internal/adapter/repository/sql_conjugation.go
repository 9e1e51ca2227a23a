package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/eslsoft/conjugator/internal/entity"
	"github.com/eslsoft/conjugator/internal/repository"
	"github.com/eslsoft/conjugator/pkg/filterexpr"
)

// SQLConjugationRepository stores conjugations through database/sql. It
// serves the sqlite3 and postgres (lib/pq) drivers.
type SQLConjugationRepository struct {
	db    *sql.DB
	style placeholderStyle
	now   func() time.Time
}

var _ repository.ConjugationRepository = (*SQLConjugationRepository)(nil)

// NewSQLConjugationRepository wraps an open database handle.
func NewSQLConjugationRepository(db *sql.DB, driver string) *SQLConjugationRepository {
	style := placeholderQuestion
	if driver == "postgres" {
		style = placeholderDollar
	}
	return &SQLConjugationRepository{db: db, style: style, now: time.Now}
}

func (r *SQLConjugationRepository) Exists(ctx context.Context, language entity.Language, infinitive string) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx, rebind(r.style, existsVerbSQL), language.Code(), infinitive).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check verb exists: %w", err)
	}
	return true, nil
}

func (r *SQLConjugationRepository) Save(ctx context.Context, conj *entity.StoredConjugation) (inserted bool, err error) {
	if conj == nil {
		return false, errors.New("conjugation payload required")
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	createdAt := conj.CreatedAt
	if createdAt.IsZero() {
		createdAt = r.now().UTC()
	}

	var verbID int64
	err = tx.QueryRowContext(ctx, rebind(r.style, insertVerbSQL),
		conj.Language.Code(), conj.Infinitive, conj.Translation, createdAt).Scan(&verbID)
	if errors.Is(err, sql.ErrNoRows) {
		// already stored; skip-if-exists
		err = tx.Rollback()
		return false, err
	}
	if err != nil {
		return false, fmt.Errorf("insert verb %s/%s: %w", conj.Language, conj.Infinitive, err)
	}

	stmt, err := tx.PrepareContext(ctx, rebind(r.style, insertFormSQL))
	if err != nil {
		return false, fmt.Errorf("prepare form insert: %w", err)
	}
	defer stmt.Close()

	for _, row := range formRows(conj) {
		if _, err = stmt.ExecContext(ctx, verbID, row[0], row[1], row[2]); err != nil {
			return false, fmt.Errorf("insert form %s/%s: %w", row[0], row[1], err)
		}
	}
	if err = tx.Commit(); err != nil {
		return false, fmt.Errorf("commit: %w", err)
	}
	conj.ID = verbID
	conj.CreatedAt = createdAt
	return true, nil
}

func (r *SQLConjugationRepository) Get(ctx context.Context, language entity.Language, infinitive string) (*entity.StoredConjugation, error) {
	query := selectVerbSQL + " WHERE language = ? AND infinitive = ?"
	items, err := r.queryVerbs(ctx, query, language.Code(), infinitive)
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

func (r *SQLConjugationRepository) List(ctx context.Context, query *repository.ListConjugationQuery) ([]entity.StoredConjugation, int64, error) {
	var params listConjugationsParams
	if err := filterexpr.Bind(query, &params, listConjugationsSchema); err != nil {
		return nil, 0, err
	}
	lq := buildListQuery(params)

	var total int64
	if err := r.db.QueryRowContext(ctx, rebind(r.style, lq.countSQL()), lq.args...).Scan(&total); err != nil {
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

func (r *SQLConjugationRepository) queryVerbs(ctx context.Context, query string, args ...any) ([]*entity.StoredConjugation, error) {
	rows, err := r.db.QueryContext(ctx, rebind(r.style, query), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanVerbs(rows)
}

func (r *SQLConjugationRepository) loadForms(ctx context.Context, items []*entity.StoredConjugation) error {
	if len(items) == 0 {
		return nil
	}
	byID, ids := indexByID(items)
	rows, err := r.db.QueryContext(ctx, rebind(r.style, formsQuery(len(ids))), ids...)
	if err != nil {
		return fmt.Errorf("load forms: %w", err)
	}
	defer rows.Close()
	if err := scanForms(rows, byID); err != nil {
		return fmt.Errorf("scan forms: %w", err)
	}
	return nil
}
