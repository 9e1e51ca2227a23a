package backup

import (
	"bufio"
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/eslsoft/conjugator/internal/entity"
	"github.com/eslsoft/conjugator/internal/repository"
)

const (
	defaultBatchSize = 512
	formatVersion    = 1
	verbRecordType   = "verb"
)

type ProgressReporter interface {
	Start(total int)
	Increment(delta int)
	Finish()
}

type noopProgress struct{}

func (noopProgress) Start(int)     {}
func (noopProgress) Increment(int) {}
func (noopProgress) Finish()       {}

// Service streams stored conjugations to and from newline-delimited JSON.
type Service struct {
	repo       repository.ConjugationRepository
	batchSize  int
	schemaHash string
	now        func() time.Time
}

type Option func(*Service)

func WithBatchSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.batchSize = size
		}
	}
}

// NewService constructs a backup service on top of the conjugation repository.
func NewService(repo repository.ConjugationRepository, opts ...Option) (*Service, error) {
	if repo == nil {
		return nil, errors.New("backup: repository is required")
	}
	svc := &Service{
		repo:       repo,
		batchSize:  defaultBatchSize,
		schemaHash: computeSchemaHash(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc, nil
}

type ExportOption func(*exportConfig)

type exportConfig struct {
	languages []entity.Language
	reporter  ProgressReporter
}

// WithLanguages restricts export to the provided language codes.
func WithLanguages(codes []string) ExportOption {
	return func(cfg *exportConfig) {
		for _, code := range codes {
			if lang := entity.ParseLanguage(code); lang != entity.LanguageUnspecified {
				cfg.languages = append(cfg.languages, lang)
			}
		}
	}
}

// WithProgressReporter registers a reporter that receives progress callbacks during export.
func WithProgressReporter(reporter ProgressReporter) ExportOption {
	return func(cfg *exportConfig) {
		cfg.reporter = reporter
	}
}

// ImportReport counts the verb records applied by Import.
type ImportReport struct {
	Inserted int
	Skipped  int
}

type record struct {
	Type       string       `json:"type"`
	Version    int          `json:"version,omitempty"`
	ExportedAt *time.Time   `json:"exported_at,omitempty"`
	SchemaHash string       `json:"schema_hash,omitempty"`
	Languages  []string     `json:"languages,omitempty"`
	Total      int64        `json:"total,omitempty"`
	Payload    *verbPayload `json:"payload,omitempty"`
}

type rawRecord struct {
	Type       string          `json:"type"`
	Version    int             `json:"version"`
	SchemaHash string          `json:"schema_hash"`
	Payload    json.RawMessage `json:"payload"`
}

// verbPayload is the serialized form of one stored conjugation. Tenses map a
// tense name to its forms keyed by storage label.
type verbPayload struct {
	Language    string                       `json:"language"`
	Infinitive  string                       `json:"infinitive"`
	Translation string                       `json:"translation,omitempty"`
	CreatedAt   time.Time                    `json:"created_at"`
	Tenses      map[string]map[string]string `json:"tenses"`
}

func (s *Service) Export(ctx context.Context, w io.Writer, opts ...ExportOption) error {
	cfg := exportConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	reporter := cfg.reporter
	if reporter == nil {
		reporter = noopProgress{}
	}
	filter := languageFilter(cfg.languages)

	_, total, err := s.repo.List(ctx, &repository.ListConjugationQuery{
		Pagination:  repository.Pagination{PageNo: 1, PageSize: 1},
		FilterOrder: repository.FilterOrder{Filter: filter},
	})
	if err != nil {
		return fmt.Errorf("count conjugations: %w", err)
	}

	writer := bufio.NewWriter(w)
	defer writer.Flush()

	now := s.now().UTC()
	meta := record{
		Type:       "meta",
		Version:    formatVersion,
		ExportedAt: &now,
		SchemaHash: s.schemaHash,
		Languages:  lo.Map(cfg.languages, func(l entity.Language, _ int) string { return l.Code() }),
		Total:      total,
	}
	if err := writeRecord(writer, meta); err != nil {
		return err
	}

	reporter.Start(int(total))
	batch := int32(s.batchSize)
	for page := int32(1); ; page++ {
		items, _, err := s.repo.List(ctx, &repository.ListConjugationQuery{
			Pagination:  repository.Pagination{PageNo: page, PageSize: batch},
			FilterOrder: repository.FilterOrder{Filter: filter, OrderBy: "id"},
		})
		if err != nil {
			return fmt.Errorf("list page %d: %w", page, err)
		}
		for i := range items {
			if err := writeRecord(writer, record{Type: verbRecordType, Payload: toPayload(&items[i])}); err != nil {
				return err
			}
		}
		reporter.Increment(len(items))
		if len(items) < int(batch) {
			break
		}
	}
	reporter.Finish()
	return writer.Flush()
}

// Import replays verb records through the repository. Verbs already stored
// are skipped.
func (s *Service) Import(ctx context.Context, r io.Reader) (*ImportReport, error) {
	br := bufio.NewReader(r)
	var (
		metaSeen bool
		report   ImportReport
	)

	for {
		line, err := br.ReadBytes('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return &report, fmt.Errorf("read backup: %w", err)
		}
		line = bytes.TrimSpace(line)
		if len(line) > 0 {
			var rec rawRecord
			if err := json.Unmarshal(line, &rec); err != nil {
				return &report, fmt.Errorf("decode record: %w", err)
			}

			switch rec.Type {
			case "meta":
				if rec.Version != formatVersion {
					return &report, fmt.Errorf("backup: unsupported format version %d", rec.Version)
				}
				if rec.SchemaHash != s.schemaHash {
					return &report, errors.New("backup: tense or person layout differs from this build")
				}
				metaSeen = true
			case verbRecordType:
				if !metaSeen {
					return &report, errors.New("backup: missing meta record")
				}
				if len(rec.Payload) == 0 {
					return &report, errors.New("backup: missing payload for verb record")
				}
				inserted, err := s.importVerb(ctx, rec.Payload)
				if err != nil {
					return &report, err
				}
				if inserted {
					report.Inserted++
				} else {
					report.Skipped++
				}
			default:
				// Unknown record types are ignored for forward compatibility.
			}
		}
		if errors.Is(err, io.EOF) {
			break
		}
	}

	if !metaSeen {
		return &report, errors.New("backup: missing meta record")
	}
	return &report, nil
}

func (s *Service) importVerb(ctx context.Context, raw json.RawMessage) (bool, error) {
	var payload verbPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return false, fmt.Errorf("decode verb payload: %w", err)
	}
	conj, err := fromPayload(payload)
	if err != nil {
		return false, err
	}
	inserted, err := s.repo.Save(ctx, conj)
	if err != nil {
		return false, fmt.Errorf("save %s/%s: %w", conj.Language, conj.Infinitive, err)
	}
	return inserted, nil
}

func toPayload(item *entity.StoredConjugation) *verbPayload {
	tenses := make(map[string]map[string]string, len(item.Tenses))
	for _, tf := range item.Ordered() {
		byLabel := make(map[string]string, entity.SlotCount)
		for _, slot := range entity.PersonSlots() {
			byLabel[slot.StorageLabel()] = tf.Forms.At(slot)
		}
		tenses[tf.Tense.String()] = byLabel
	}
	return &verbPayload{
		Language:    item.Language.Code(),
		Infinitive:  item.Infinitive,
		Translation: item.Translation,
		CreatedAt:   item.CreatedAt.UTC(),
		Tenses:      tenses,
	}
}

func fromPayload(p verbPayload) (*entity.StoredConjugation, error) {
	lang := entity.ParseLanguage(p.Language)
	if !lang.IsConjugable() {
		return nil, fmt.Errorf("backup: %q: %w", p.Language, entity.ErrUnsupportedLanguage)
	}
	infinitive := entity.NormalizeWordToken(p.Infinitive)
	if infinitive == "" {
		return nil, entity.ErrInvalidInfinitive
	}

	tenses := make(map[entity.Tense]entity.Forms, len(p.Tenses))
	for name, byLabel := range p.Tenses {
		tense, ok := entity.ParseTense(name)
		if !ok || !entity.HasTense(lang, tense) {
			return nil, fmt.Errorf("backup: %s/%s has unexpected tense %q", lang, infinitive, name)
		}
		var forms entity.Forms
		for label, form := range byLabel {
			slot, ok := entity.PersonSlotFromLabel(label)
			if !ok {
				return nil, fmt.Errorf("backup: %s/%s has unknown person %q", lang, infinitive, label)
			}
			forms[slot] = form
		}
		tenses[tense] = forms
	}

	return &entity.StoredConjugation{
		Conjugation: entity.Conjugation{Infinitive: infinitive, Language: lang, Tenses: tenses},
		Translation: p.Translation,
		CreatedAt:   p.CreatedAt,
	}, nil
}

func languageFilter(langs []entity.Language) string {
	if len(langs) == 0 {
		return ""
	}
	quoted := lo.Map(lo.Uniq(langs), func(l entity.Language, _ int) string { return `"` + l.Code() + `"` })
	return "language in [" + strings.Join(quoted, ", ") + "]"
}

// computeSchemaHash fingerprints the tense names and person labels rows are
// keyed by, so a backup is only replayed into a compatible build.
func computeSchemaHash() string {
	var b strings.Builder
	for _, lang := range entity.ConjugableLanguages {
		b.WriteString(lang.Code())
		b.WriteByte(':')
		for _, t := range entity.TensesFor(lang) {
			b.WriteString(t.String())
			b.WriteByte(',')
		}
		b.WriteByte(';')
	}
	for _, slot := range entity.PersonSlots() {
		b.WriteString(slot.StorageLabel())
		b.WriteByte('|')
	}
	sum := sha256.Sum256([]byte(b.String()))
	return base64.RawURLEncoding.EncodeToString(sum[:])
}

func writeRecord(w io.Writer, rec record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	if _, err := w.Write([]byte("\n")); err != nil {
		return err
	}
	return nil
}
