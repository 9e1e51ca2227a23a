package repository_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	adapterrepo "github.com/eslsoft/conjugator/internal/adapter/repository"
	"github.com/eslsoft/conjugator/internal/entity"
	"github.com/eslsoft/conjugator/internal/infrastructure/database"
	"github.com/eslsoft/conjugator/internal/repository"
)

func newSQLiteRepo(t *testing.T) *adapterrepo.SQLConjugationRepository {
	t.Helper()
	dsn := "file:" + filepath.Join(t.TempDir(), "test.db") + "?_fk=1"
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

func storedHablar(createdAt time.Time) *entity.StoredConjugation {
	return &entity.StoredConjugation{
		Conjugation: entity.Conjugation{
			Infinitive: "hablar",
			Language:   entity.LanguageSpanish,
			Tenses: map[entity.Tense]entity.Forms{
				entity.TensePresent: {"hablo", "hablas", "habla", "hablamos", "habláis", "hablan"},
				entity.TenseFuture:  {"hablaré", "hablarás", "hablará", "hablaremos", "hablaréis", "hablarán"},
			},
		},
		Translation: "to speak",
		CreatedAt:   createdAt,
	}
}

func TestSQLConjugationRepository_SaveAndGet(t *testing.T) {
	repo := newSQLiteRepo(t)
	ctx := context.Background()
	createdAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	inserted, err := repo.Save(ctx, storedHablar(createdAt))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if !inserted {
		t.Fatalf("expected first save to insert")
	}

	got, err := repo.Get(ctx, entity.LanguageSpanish, "hablar")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID == 0 {
		t.Fatalf("expected id to be assigned")
	}
	if got.Translation != "to speak" {
		t.Fatalf("unexpected translation %q", got.Translation)
	}
	if !got.CreatedAt.Equal(createdAt) {
		t.Fatalf("unexpected created_at %v", got.CreatedAt)
	}
	if len(got.Tenses) != 2 {
		t.Fatalf("expected 2 tenses, got %d", len(got.Tenses))
	}
	if got.Tenses[entity.TensePresent].At(entity.P5) != "habláis" {
		t.Fatalf("unexpected vosotros form %q", got.Tenses[entity.TensePresent].At(entity.P5))
	}
	if got.Tenses[entity.TenseFuture].At(entity.P6) != "hablarán" {
		t.Fatalf("unexpected future form %q", got.Tenses[entity.TenseFuture].At(entity.P6))
	}
}

func TestSQLConjugationRepository_SaveSkipsExisting(t *testing.T) {
	repo := newSQLiteRepo(t)
	ctx := context.Background()

	if _, err := repo.Save(ctx, storedHablar(time.Time{})); err != nil {
		t.Fatalf("save: %v", err)
	}
	second := storedHablar(time.Time{})
	second.Translation = "changed"
	inserted, err := repo.Save(ctx, second)
	if err != nil {
		t.Fatalf("second save: %v", err)
	}
	if inserted {
		t.Fatalf("expected duplicate save to be skipped")
	}

	got, err := repo.Get(ctx, entity.LanguageSpanish, "hablar")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Translation != "to speak" {
		t.Fatalf("existing row was modified: %q", got.Translation)
	}
}

func TestSQLConjugationRepository_Exists(t *testing.T) {
	repo := newSQLiteRepo(t)
	ctx := context.Background()

	ok, err := repo.Exists(ctx, entity.LanguageSpanish, "hablar")
	if err != nil || ok {
		t.Fatalf("expected missing verb, got ok=%v err=%v", ok, err)
	}
	if _, err := repo.Save(ctx, storedHablar(time.Time{})); err != nil {
		t.Fatalf("save: %v", err)
	}
	ok, err = repo.Exists(ctx, entity.LanguageSpanish, "hablar")
	if err != nil || !ok {
		t.Fatalf("expected stored verb, got ok=%v err=%v", ok, err)
	}
	ok, err = repo.Exists(ctx, entity.LanguageFrench, "hablar")
	if err != nil || ok {
		t.Fatalf("language must scope existence, got ok=%v err=%v", ok, err)
	}
}

func TestSQLConjugationRepository_GetNotFound(t *testing.T) {
	repo := newSQLiteRepo(t)
	_, err := repo.Get(context.Background(), entity.LanguageGerman, "spielen")
	if !errors.Is(err, entity.ErrConjugationNotFound) {
		t.Fatalf("expected ErrConjugationNotFound, got %v", err)
	}
}

func TestSQLConjugationRepository_ListFilterAndOrder(t *testing.T) {
	repo := newSQLiteRepo(t)
	ctx := context.Background()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	seed := []entity.StoredConjugation{
		{Conjugation: entity.Conjugation{Infinitive: "hablar", Language: entity.LanguageSpanish}},
		{Conjugation: entity.Conjugation{Infinitive: "comer", Language: entity.LanguageSpanish}},
		{Conjugation: entity.Conjugation{Infinitive: "habiter", Language: entity.LanguageFrench}},
		{Conjugation: entity.Conjugation{Infinitive: "spielen", Language: entity.LanguageGerman}},
	}
	for i := range seed {
		seed[i].CreatedAt = base.Add(time.Duration(i) * time.Hour)
		seed[i].Tenses = map[entity.Tense]entity.Forms{
			entity.TensePresent: {"a", "b", "c", "d", "e", "f"},
		}
		if _, err := repo.Save(ctx, &seed[i]); err != nil {
			t.Fatalf("save %s: %v", seed[i].Infinitive, err)
		}
	}

	items, total, err := repo.List(ctx, &repository.ListConjugationQuery{
		FilterOrder: repository.FilterOrder{Filter: `language == "es"`, OrderBy: "infinitive"},
	})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 2 || len(items) != 2 {
		t.Fatalf("expected 2 spanish verbs, got total=%d len=%d", total, len(items))
	}
	if items[0].Infinitive != "comer" || items[1].Infinitive != "hablar" {
		t.Fatalf("unexpected order: %s, %s", items[0].Infinitive, items[1].Infinitive)
	}
	if items[0].Tenses[entity.TensePresent].At(entity.P1) != "a" {
		t.Fatalf("forms not loaded for list items")
	}

	items, total, err = repo.List(ctx, &repository.ListConjugationQuery{
		FilterOrder: repository.FilterOrder{Filter: `infinitive.startsWith("hab")`},
	})
	if err != nil {
		t.Fatalf("list prefix: %v", err)
	}
	if total != 2 {
		t.Fatalf("expected 2 prefix matches, got %d", total)
	}
	// default order is created_at desc
	if items[0].Infinitive != "habiter" {
		t.Fatalf("expected newest first, got %s", items[0].Infinitive)
	}

	items, total, err = repo.List(ctx, &repository.ListConjugationQuery{
		Pagination:  repository.Pagination{PageNo: 2, PageSize: 3},
		FilterOrder: repository.FilterOrder{OrderBy: "created_at"},
	})
	if err != nil {
		t.Fatalf("list page: %v", err)
	}
	if total != 4 || len(items) != 1 || items[0].Infinitive != "spielen" {
		t.Fatalf("unexpected second page: total=%d items=%v", total, items)
	}
}

func TestSQLConjugationRepository_ListRejectsUnknownField(t *testing.T) {
	repo := newSQLiteRepo(t)
	_, _, err := repo.List(context.Background(), &repository.ListConjugationQuery{
		FilterOrder: repository.FilterOrder{Filter: `translation == "x"`},
	})
	if err == nil {
		t.Fatalf("expected error for unsupported filter field")
	}
}
