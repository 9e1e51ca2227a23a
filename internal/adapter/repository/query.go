package repository

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/eslsoft/conjugator/internal/entity"
)

// placeholderStyle selects how bind parameters are written.
type placeholderStyle int

const (
	placeholderQuestion placeholderStyle = iota // sqlite3
	placeholderDollar                           // postgres, pgx
)

// rebind rewrites "?" placeholders into "$n" for postgres drivers.
func rebind(style placeholderStyle, query string) string {
	if style != placeholderDollar {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}

const (
	insertVerbSQL = `INSERT INTO verbs (language, infinitive, translation, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (language, infinitive) DO NOTHING
		RETURNING id`
	insertFormSQL = `INSERT INTO conjugations (verb_id, tense, person, form)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (verb_id, tense, person) DO NOTHING`
	existsVerbSQL = `SELECT 1 FROM verbs WHERE language = ? AND infinitive = ? LIMIT 1`
	selectVerbSQL = `SELECT id, language, infinitive, translation, created_at FROM verbs`
)

// listQuery renders the WHERE clause, ordering and paging of a list request.
type listQuery struct {
	where []string
	args  []any
	order []string
}

func buildListQuery(params listConjugationsParams) listQuery {
	var q listQuery
	if params.Language != nil {
		q.where = append(q.where, "language = ?")
		q.args = append(q.args, *params.Language)
	}
	if len(params.Languages) > 0 {
		q.where = append(q.where, "language IN ("+placeholders(len(params.Languages))+")")
		q.args = append(q.args, lo.ToAnySlice(params.Languages)...)
	}
	if params.Infinitive != nil {
		q.where = append(q.where, "infinitive = ?")
		q.args = append(q.args, *params.Infinitive)
	}
	if params.InfinitivePrefix != nil {
		q.where = append(q.where, `infinitive LIKE ? ESCAPE '\'`)
		q.args = append(q.args, escapeLike(*params.InfinitivePrefix)+"%")
	}
	if len(params.Infinitives) > 0 {
		q.where = append(q.where, "infinitive IN ("+placeholders(len(params.Infinitives))+")")
		q.args = append(q.args, lo.ToAnySlice(params.Infinitives)...)
	}

	for _, term := range []struct {
		key  string
		desc bool
	}{
		{key: params.PrimaryKey, desc: params.PrimaryDesc},
		{key: params.SecondaryKey, desc: params.SecondaryDesc},
	} {
		field, ok := listConjugationsSchema.Order.Fields[term.key]
		if !ok {
			continue
		}
		dir := "ASC"
		if term.desc {
			dir = "DESC"
		}
		q.order = append(q.order, field.Expr+" "+dir)
	}
	return q
}

func (q listQuery) whereSQL() string {
	if len(q.where) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(q.where, " AND ")
}

func (q listQuery) countSQL() string {
	return "SELECT COUNT(*) FROM verbs" + q.whereSQL()
}

func (q listQuery) selectSQL(limit, offset int32) string {
	s := selectVerbSQL + q.whereSQL()
	if len(q.order) > 0 {
		s += " ORDER BY " + strings.Join(q.order, ", ")
	}
	if limit > 0 {
		s += fmt.Sprintf(" LIMIT %d OFFSET %d", limit, offset)
	}
	return s
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func formsQuery(n int) string {
	return `SELECT verb_id, tense, person, form FROM conjugations WHERE verb_id IN (` + placeholders(n) + `)`
}

// rowScanner is satisfied by both *sql.Rows and pgx.Rows.
type rowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanVerbs(rows rowScanner) ([]*entity.StoredConjugation, error) {
	var out []*entity.StoredConjugation
	for rows.Next() {
		var (
			id        int64
			language  string
			createdAt time.Time
			item      entity.StoredConjugation
		)
		if err := rows.Scan(&id, &language, &item.Infinitive, &item.Translation, &createdAt); err != nil {
			return nil, err
		}
		item.Language = entity.ParseLanguage(language)
		item.CreatedAt = createdAt.UTC()
		item.Tenses = make(map[entity.Tense]entity.Forms)
		item.ID = id
		out = append(out, &item)
	}
	return out, rows.Err()
}

func scanForms(rows rowScanner, byID map[int64]*entity.StoredConjugation) error {
	for rows.Next() {
		var (
			verbID            int64
			tense, person, fm string
		)
		if err := rows.Scan(&verbID, &tense, &person, &fm); err != nil {
			return err
		}
		item, ok := byID[verbID]
		if !ok {
			continue
		}
		t, ok := entity.ParseTense(tense)
		if !ok {
			return fmt.Errorf("unknown tense %q for verb %d", tense, verbID)
		}
		slot, ok := entity.PersonSlotFromLabel(person)
		if !ok {
			return fmt.Errorf("unknown person label %q for verb %d", person, verbID)
		}
		forms := item.Tenses[t]
		forms[slot] = fm
		item.Tenses[t] = forms
	}
	return rows.Err()
}

func indexByID(items []*entity.StoredConjugation) (map[int64]*entity.StoredConjugation, []any) {
	byID := make(map[int64]*entity.StoredConjugation, len(items))
	ids := make([]any, 0, len(items))
	for _, item := range items {
		byID[item.ID] = item
		ids = append(ids, item.ID)
	}
	return byID, ids
}

// formRows flattens a conjugation into (tense, person, form) rows.
func formRows(conj *entity.StoredConjugation) [][3]string {
	ordered := conj.Ordered()
	rows := make([][3]string, 0, len(ordered)*entity.SlotCount)
	for _, tf := range ordered {
		for _, slot := range entity.PersonSlots() {
			rows = append(rows, [3]string{tf.Tense.String(), slot.StorageLabel(), tf.Forms.At(slot)})
		}
	}
	return rows
}

func derefAll(items []*entity.StoredConjugation) []entity.StoredConjugation {
	return lo.Map(items, func(item *entity.StoredConjugation, _ int) entity.StoredConjugation { return *item })
}
