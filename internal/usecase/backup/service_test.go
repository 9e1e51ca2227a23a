package backup

import (
	"bytes"
	"context"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	adapterrepo "github.com/eslsoft/conjugator/internal/adapter/repository"
	"github.com/eslsoft/conjugator/internal/entity"
	"github.com/eslsoft/conjugator/internal/infrastructure/database"
	"github.com/eslsoft/conjugator/internal/repository"
)

func TestServiceExportImportRoundTrip(t *testing.T) {
	ctx := context.Background()

	src := openRepo(t, "src.db")
	seed := seedData(t, ctx, src)

	exporter, err := NewService(src, WithBatchSize(2))
	if err != nil {
		t.Fatalf("new exporter: %v", err)
	}
	progress := &countingProgress{}
	var buf bytes.Buffer
	if err := exporter.Export(ctx, &buf, WithProgressReporter(progress)); err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if progress.total != len(seed) || progress.done != len(seed) || !progress.finished {
		t.Fatalf("unexpected progress %+v", *progress)
	}

	dst := openRepo(t, "dst.db")
	importer, err := NewService(dst)
	if err != nil {
		t.Fatalf("new importer: %v", err)
	}
	report, err := importer.Import(ctx, bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}
	if report.Inserted != len(seed) || report.Skipped != 0 {
		t.Fatalf("unexpected import report %+v", *report)
	}

	for _, want := range seed {
		got, err := dst.Get(ctx, want.Language, want.Infinitive)
		if err != nil {
			t.Fatalf("get %s: %v", want.Infinitive, err)
		}
		if got.Translation != want.Translation || !got.CreatedAt.Equal(want.CreatedAt) {
			t.Fatalf("metadata mismatch for %s: %+v", want.Infinitive, got)
		}
		if !reflect.DeepEqual(got.Tenses, want.Tenses) {
			t.Fatalf("tenses mismatch for %s:\nwant %#v\ngot  %#v", want.Infinitive, want.Tenses, got.Tenses)
		}
	}

	again, err := importer.Import(ctx, bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("second import failed: %v", err)
	}
	if again.Inserted != 0 || again.Skipped != len(seed) {
		t.Fatalf("expected re-import to skip everything, got %+v", *again)
	}
}

func TestServiceExportLanguagesFilter(t *testing.T) {
	ctx := context.Background()
	src := openRepo(t, "src.db")
	seedData(t, ctx, src)

	svc, err := NewService(src)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	var buf bytes.Buffer
	if err := svc.Export(ctx, &buf, WithLanguages([]string{"de"})); err != nil {
		t.Fatalf("export: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected meta + 1 verb, got %d lines", len(lines))
	}
	if !strings.Contains(lines[1], `"infinitive":"spielen"`) {
		t.Fatalf("unexpected verb record %s", lines[1])
	}
}

func TestServiceImportRejectsBadInput(t *testing.T) {
	ctx := context.Background()
	svc, err := NewService(openRepo(t, "dst.db"))
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	meta := `{"type":"meta","version":1,"schema_hash":"` + computeSchemaHash() + `"}`

	cases := map[string]string{
		"missing meta":   `{"type":"verb","payload":{"language":"es","infinitive":"hablar"}}`,
		"wrong version":  `{"type":"meta","version":9}`,
		"wrong schema":   `{"type":"meta","version":1,"schema_hash":"other"}`,
		"bad tense":      meta + "\n" + `{"type":"verb","payload":{"language":"de","infinitive":"spielen","tenses":{"future":{"yo":"x"}}}}`,
		"bad person":     meta + "\n" + `{"type":"verb","payload":{"language":"es","infinitive":"hablar","tenses":{"present":{"me":"x"}}}}`,
		"bad language":   meta + "\n" + `{"type":"verb","payload":{"language":"en","infinitive":"walk"}}`,
		"not json":       "nope",
		"empty document": "",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := svc.Import(ctx, strings.NewReader(body)); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestNewServiceRequiresRepository(t *testing.T) {
	if _, err := NewService(nil); err == nil {
		t.Fatalf("expected error for nil repository")
	}
}

type countingProgress struct {
	total    int
	done     int
	finished bool
}

func (p *countingProgress) Start(total int)     { p.total = total }
func (p *countingProgress) Increment(delta int) { p.done += delta }
func (p *countingProgress) Finish()             { p.finished = true }

func openRepo(t *testing.T, name string) repository.ConjugationRepository {
	t.Helper()
	dsn := "file:" + filepath.Join(t.TempDir(), name) + "?_fk=1"
	db, cleanup, err := database.OpenSQL("sqlite3", dsn)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(cleanup)
	if err := database.Migrate(context.Background(), db, "sqlite3"); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return adapterrepo.NewSQLConjugationRepository(db, "sqlite3")
}

func seedData(t *testing.T, ctx context.Context, repo repository.ConjugationRepository) []entity.StoredConjugation {
	t.Helper()
	base := time.Date(2025, 5, 4, 10, 0, 0, 0, time.UTC)
	items := []entity.StoredConjugation{
		{
			Conjugation: entity.Conjugation{
				Infinitive: "hablar",
				Language:   entity.LanguageSpanish,
				Tenses: map[entity.Tense]entity.Forms{
					entity.TensePresent:  {"hablo", "hablas", "habla", "hablamos", "habláis", "hablan"},
					entity.TensePreterite: {"hablé", "hablaste", "habló", "hablamos", "hablasteis", "hablaron"},
				},
			},
			Translation: "to speak",
			CreatedAt:   base,
		},
		{
			Conjugation: entity.Conjugation{
				Infinitive: "finir",
				Language:   entity.LanguageFrench,
				Tenses: map[entity.Tense]entity.Forms{
					entity.TensePreterite: {"ai fini", "as fini", "a fini", "avons fini", "avez fini", "ont fini"},
				},
			},
			Translation: "to finish",
			CreatedAt:   base.Add(time.Minute),
		},
		{
			Conjugation: entity.Conjugation{
				Infinitive: "spielen",
				Language:   entity.LanguageGerman,
				Tenses: map[entity.Tense]entity.Forms{
					entity.TensePresent: {"spiele", "spielst", "spielt", "spielen", "spielt", "spielen"},
				},
			},
			CreatedAt: base.Add(2 * time.Minute),
		},
	}
	for i := range items {
		if _, err := repo.Save(ctx, &items[i]); err != nil {
			t.Fatalf("seed %s: %v", items[i].Infinitive, err)
		}
	}
	return items
}
