package vocabulary

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/eslsoft/conjugator/internal/entity"
)

func TestLoad_DocumentWithDefaultLanguage(t *testing.T) {
	src := `
language: es
entries:
  - infinitive: " Hablar "
    translation: to speak
  - infinitive: parler
    translation: to speak
    language: french
  - infinitive: ""
    translation: dropped
`
	got, err := Load(strings.NewReader(src))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	if got[0].Infinitive != "hablar" || got[0].Language != entity.LanguageSpanish {
		t.Fatalf("unexpected first entry %+v", got[0])
	}
	if got[1].Language != entity.LanguageFrench {
		t.Fatalf("explicit language should win, got %q", got[1].Language)
	}
}

func TestLoad_BareList(t *testing.T) {
	src := `
- {infinitive: spielen, translation: to play, language: de}
- {infinitive: vivir, translation: to live, language: es}
`
	got, err := Load(strings.NewReader(src))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 2 || got[0].Infinitive != "spielen" || got[1].Language != entity.LanguageSpanish {
		t.Fatalf("unexpected entries %+v", got)
	}
}

func TestLoad_JSON(t *testing.T) {
	src := `{"language": "de", "entries": [{"infinitive": "sein", "translation": "to be"}]}`
	got, err := Load(strings.NewReader(src))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 1 || got[0].Language != entity.LanguageGerman || got[0].Translation != "to be" {
		t.Fatalf("unexpected entries %+v", got)
	}
}

func TestLoad_EmptyAndInvalid(t *testing.T) {
	got, err := Load(strings.NewReader("   \n"))
	if err != nil || got != nil {
		t.Fatalf("expected empty result, got %v, %v", got, err)
	}
	if _, err := Load(strings.NewReader("just a string")); err == nil {
		t.Fatalf("expected error for scalar document")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "verbs.yaml")
	if err := os.WriteFile(path, []byte("- infinitive: finir\n  language: fr\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load file: %v", err)
	}
	if len(got) != 1 || got[0].Infinitive != "finir" {
		t.Fatalf("unexpected entries %+v", got)
	}
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
