package conjugation

import (
	"reflect"
	"strings"
	"sync"
	"testing"

	"github.com/eslsoft/conjugator/internal/entity"
)

func newEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return e
}

func mustConjugate(t *testing.T, e *Engine, infinitive string, lang entity.Language) *entity.Conjugation {
	t.Helper()
	c, ok := e.Conjugate(infinitive, lang)
	if !ok {
		t.Fatalf("Conjugate(%q, %s) not recognized", infinitive, lang)
	}
	return c
}

func TestConjugate_Scenarios(t *testing.T) {
	e := newEngine(t)
	cases := []struct {
		name       string
		infinitive string
		lang       entity.Language
		tense      entity.Tense
		want       entity.Forms
	}{
		{"regular ar present", "hablar", entity.LanguageSpanish, entity.TensePresent,
			entity.Forms{"hablo", "hablas", "habla", "hablamos", "habláis", "hablan"}},
		{"irregular ser present", "ser", entity.LanguageSpanish, entity.TensePresent,
			entity.Forms{"soy", "eres", "es", "somos", "sois", "son"}},
		{"regular er preterite", "comer", entity.LanguageSpanish, entity.TensePreterite,
			entity.Forms{"comí", "comiste", "comió", "comimos", "comisteis", "comieron"}},
		{"regular ir present", "vivir", entity.LanguageSpanish, entity.TensePresent,
			entity.Forms{"vivo", "vives", "vive", "vivimos", "vivís", "viven"}},
		{"spanish future from infinitive", "hablar", entity.LanguageSpanish, entity.TenseFuture,
			entity.Forms{"hablaré", "hablarás", "hablará", "hablaremos", "hablaréis", "hablarán"}},
		{"irregular future stem", "tener", entity.LanguageSpanish, entity.TenseConditional,
			entity.Forms{"tendría", "tendrías", "tendría", "tendríamos", "tendríais", "tendrían"}},
		{"german irregular sein", "sein", entity.LanguageGerman, entity.TensePresent,
			entity.Forms{"bin", "bist", "ist", "sind", "seid", "sind"}},
		{"german regular en", "spielen", entity.LanguageGerman, entity.TensePreterite,
			entity.Forms{"spielte", "spieltest", "spielte", "spielten", "spieltet", "spielten"}},
		{"german ln stem", "sammeln", entity.LanguageGerman, entity.TensePresent,
			entity.Forms{"sammele", "sammelst", "sammelt", "sammeln", "sammelt", "sammeln"}},
		{"german rn stem", "wandern", entity.LanguageGerman, entity.TensePresent,
			entity.Forms{"wandere", "wanderst", "wandert", "wandern", "wandert", "wandern"}},
		{"french er present", "parler", entity.LanguageFrench, entity.TensePresent,
			entity.Forms{"parle", "parles", "parle", "parlons", "parlez", "parlent"}},
		{"french ir present", "finir", entity.LanguageFrench, entity.TensePresent,
			entity.Forms{"finis", "finis", "finit", "finissons", "finissez", "finissent"}},
		{"french re future drops e", "attendre", entity.LanguageFrench, entity.TenseFuture,
			entity.Forms{"attendrai", "attendras", "attendra", "attendrons", "attendrez", "attendront"}},
		{"french er future keeps infinitive", "parler", entity.LanguageFrench, entity.TenseFuture,
			entity.Forms{"parlerai", "parleras", "parlera", "parlerons", "parlerez", "parleront"}},
		{"french re conditional", "vendre", entity.LanguageFrench, entity.TenseConditional,
			entity.Forms{"vendrais", "vendrais", "vendrait", "vendrions", "vendriez", "vendraient"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := mustConjugate(t, e, tc.infinitive, tc.lang)
			got, ok := c.Tenses[tc.tense]
			if !ok {
				t.Fatalf("tense %s missing", tc.tense)
			}
			if got != tc.want {
				t.Fatalf("%s %s: got %v want %v", tc.infinitive, tc.tense, got, tc.want)
			}
		})
	}
}

func TestConjugate_FrenchCompoundPreterite(t *testing.T) {
	e := newEngine(t)
	cases := map[string]string{
		"parler":   "ai parlé",
		"finir":    "ai fini",
		"attendre": "ai attendu",
		"pouvoir":  "ai pu",
		"prendre":  "ai pris",
	}
	for inf, want := range cases {
		c := mustConjugate(t, e, inf, entity.LanguageFrench)
		if got := c.Tenses[entity.TensePreterite][entity.P1]; got != want {
			t.Fatalf("%s preterite P1: got %q want %q", inf, got, want)
		}
	}

	avoir := mustConjugate(t, e, "avoir", entity.LanguageFrench).Tenses[entity.TensePresent]
	parler := mustConjugate(t, e, "parler", entity.LanguageFrench).Tenses[entity.TensePreterite]
	for i := range parler {
		if parler[i] != avoir[i]+" parlé" {
			t.Fatalf("slot %d: %q is not avoir %q + participle", i, parler[i], avoir[i])
		}
	}
}

func TestConjugate_FrenchOwnPreteriteWins(t *testing.T) {
	e := newEngine(t)
	etre := mustConjugate(t, e, "être", entity.LanguageFrench)
	want := entity.Forms{"ai été", "as été", "a été", "avons été", "avez été", "ont été"}
	if etre.Tenses[entity.TensePreterite] != want {
		t.Fatalf("être preterite: got %v", etre.Tenses[entity.TensePreterite])
	}

	aller := mustConjugate(t, e, "aller", entity.LanguageFrench)
	if got := aller.Tenses[entity.TensePreterite][entity.P1]; got != "suis allé" {
		t.Fatalf("aller preterite P1: got %q want %q", got, "suis allé")
	}
}

func TestConjugate_NotRecognized(t *testing.T) {
	e := newEngine(t)
	cases := []struct {
		infinitive string
		lang       entity.Language
	}{
		{"xyz123", entity.LanguageSpanish},
		{"xyz", entity.LanguageSpanish},
		{"", entity.LanguageSpanish},
		{"maison", entity.LanguageFrench},
		{"hallo", entity.LanguageGerman},
		{"hablar", entity.LanguageEnglish},
		{"hablar", entity.LanguageUnspecified},
	}
	for _, tc := range cases {
		if c, ok := e.Conjugate(tc.infinitive, tc.lang); ok || c != nil {
			t.Fatalf("Conjugate(%q, %q) should not be recognized, got %+v", tc.infinitive, tc.lang, c)
		}
	}
}

func TestConjugate_TenseSetPerLanguage(t *testing.T) {
	e := newEngine(t)
	verbs := map[entity.Language][]string{
		entity.LanguageSpanish: {"hablar", "comer", "vivir", "ser", "ir", "dar"},
		entity.LanguageFrench:  {"parler", "finir", "attendre", "être", "avoir", "venir", "dire"},
		entity.LanguageGerman:  {"spielen", "sammeln", "wandern", "sein", "tun", "gehen"},
	}
	for lang, infinitives := range verbs {
		for _, inf := range infinitives {
			c := mustConjugate(t, e, inf, lang)
			if len(c.Tenses) != len(entity.TensesFor(lang)) {
				t.Fatalf("%s/%s: got %d tenses want %d", lang, inf, len(c.Tenses), len(entity.TensesFor(lang)))
			}
			for tense, forms := range c.Tenses {
				for slot, form := range forms {
					if form == "" {
						t.Fatalf("%s/%s %s: empty form at slot %d", lang, inf, tense, slot)
					}
				}
			}
		}
	}
	de := mustConjugate(t, e, "spielen", entity.LanguageGerman)
	if _, ok := de.Tenses[entity.TenseFuture]; ok {
		t.Fatalf("german future should be absent")
	}
}

func TestConjugate_IrregularPrecedence(t *testing.T) {
	e := newEngine(t)
	for _, lang := range entity.ConjugableLanguages {
		for inf, entry := range irregularTables[lang] {
			c, ok := e.Conjugate(inf, lang)
			if !ok {
				t.Fatalf("%s/%s: irregular verb not recognized", lang, inf)
			}
			for tense, want := range entry {
				if c.Tenses[tense] != want {
					t.Fatalf("%s/%s %s: got %v want override %v", lang, inf, tense, c.Tenses[tense], want)
				}
			}
		}
	}
}

func TestConjugate_PerTenseFallback(t *testing.T) {
	e := newEngine(t)
	// estar overrides present and preterite only.
	c := mustConjugate(t, e, "estar", entity.LanguageSpanish)
	want := entity.Forms{"estaba", "estabas", "estaba", "estábamos", "estabais", "estaban"}
	if c.Tenses[entity.TenseImperfect] != want {
		t.Fatalf("estar imperfect: got %v want %v", c.Tenses[entity.TenseImperfect], want)
	}
	if c.Tenses[entity.TensePresent][entity.P1] != "estoy" {
		t.Fatalf("estar present P1: got %q", c.Tenses[entity.TensePresent][entity.P1])
	}
}

func TestConjugate_NormalizesInput(t *testing.T) {
	e := newEngine(t)
	c := mustConjugate(t, e, "  Hablar ", entity.LanguageSpanish)
	if c.Infinitive != "hablar" {
		t.Fatalf("infinitive not normalized: %q", c.Infinitive)
	}
}

func TestConjugate_Deterministic(t *testing.T) {
	e := newEngine(t)
	first := mustConjugate(t, e, "parler", entity.LanguageFrench)

	var wg sync.WaitGroup
	results := make([]*entity.Conjugation, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = e.Conjugate("parler", entity.LanguageFrench)
		}(i)
	}
	wg.Wait()
	for i, r := range results {
		if !reflect.DeepEqual(first, r) {
			t.Fatalf("result %d differs: %+v", i, r)
		}
	}

	// Mutating a result must not leak into later calls.
	first.Tenses[entity.TensePresent] = entity.Forms{}
	again := mustConjugate(t, e, "parler", entity.LanguageFrench)
	if again.Tenses[entity.TensePresent][entity.P1] != "parle" {
		t.Fatalf("result state leaked between calls")
	}
}

func TestIrregularVerbsSorted(t *testing.T) {
	e := newEngine(t)
	verbs := e.IrregularVerbs(entity.LanguageGerman)
	if len(verbs) == 0 {
		t.Fatal("expected german irregular verbs")
	}
	for i := 1; i < len(verbs); i++ {
		if verbs[i-1] > verbs[i] {
			t.Fatalf("not sorted: %v", verbs)
		}
	}
}

func TestValidate(t *testing.T) {
	if err := (&Engine{}).Validate(); err != nil {
		t.Fatalf("rule tables invalid: %v", err)
	}
}

func TestValidate_rejectsMalformedTables(t *testing.T) {
	tests := []struct {
		name    string
		corrupt func() (restore func())
		want    string
	}{
		{
			name: "missing pattern",
			corrupt: func() func() {
				saved := endingTable[entity.LanguageSpanish][GroupAR][entity.TenseImperfect]
				delete(endingTable[entity.LanguageSpanish][GroupAR], entity.TenseImperfect)
				return func() { endingTable[entity.LanguageSpanish][GroupAR][entity.TenseImperfect] = saved }
			},
			want: "es/ar: missing imperfect pattern",
		},
		{
			name: "override for unsupported tense",
			corrupt: func() func() {
				irregularTables[entity.LanguageGerman]["bogus"] = irregularEntry{
					entity.TenseFuture: {"a", "b", "c", "d", "e", "f"},
				}
				return func() { delete(irregularTables[entity.LanguageGerman], "bogus") }
			},
			want: "de/bogus: override for unsupported tense future",
		},
		{
			name: "empty form",
			corrupt: func() func() {
				irregularTables[entity.LanguageSpanish]["bogus"] = irregularEntry{
					entity.TensePresent: {"a", "", "c", "d", "e", "f"},
				}
				return func() { delete(irregularTables[entity.LanguageSpanish], "bogus") }
			},
			want: "es/bogus/present: empty form at slot 1",
		},
		{
			name: "unnormalized irregular key",
			corrupt: func() func() {
				irregularTables[entity.LanguageFrench]["Bogus"] = irregularEntry{
					entity.TensePresent: {"a", "b", "c", "d", "e", "f"},
				}
				return func() { delete(irregularTables[entity.LanguageFrench], "Bogus") }
			},
			want: "fr/Bogus: irregular key must be normalized",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			restore := tt.corrupt()
			err := (&Engine{}).Validate()
			restore()
			if err == nil {
				t.Fatalf("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("error %q does not mention %q", err, tt.want)
			}
			if _, err := New(); err != nil {
				t.Fatalf("tables not restored: %v", err)
			}
		})
	}
}
