// Package vocabulary reads verb candidates from YAML or JSON vocabulary files.
package vocabulary

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/eslsoft/conjugator/internal/entity"
)

// File is the document layout of a vocabulary file. Entries without a
// language inherit Language.
//
//	language: es
//	entries:
//	  - infinitive: hablar
//	    translation: to speak
//
// A bare list of entries is accepted as well. JSON parses as YAML.
type File struct {
	Language entity.Language        `yaml:"language"`
	Entries  []entity.VerbCandidate `yaml:"entries"`
}

// LoadFile reads candidates from path.
func LoadFile(path string) ([]entity.VerbCandidate, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open vocabulary: %w", err)
	}
	defer f.Close()

	out, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return out, nil
}

// Load decodes candidates from r, applying the document language default and
// dropping entries without an infinitive.
func Load(r io.Reader) ([]entity.VerbCandidate, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read vocabulary: %w", err)
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, nil
	}

	var node yaml.Node
	if err := yaml.Unmarshal(raw, &node); err != nil {
		return nil, fmt.Errorf("parse vocabulary: %w", err)
	}
	if len(node.Content) == 0 {
		return nil, nil
	}

	var doc File
	switch root := node.Content[0]; root.Kind {
	case yaml.SequenceNode:
		if err := root.Decode(&doc.Entries); err != nil {
			return nil, fmt.Errorf("decode entries: %w", err)
		}
	case yaml.MappingNode:
		if err := root.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode document: %w", err)
		}
	default:
		return nil, errors.New("vocabulary must be a list of entries or a document with entries")
	}

	entries := lo.Map(doc.Entries, func(c entity.VerbCandidate, _ int) entity.VerbCandidate {
		if c.Language == entity.LanguageUnspecified {
			c.Language = doc.Language
		}
		return c.Normalize()
	})
	return lo.Filter(entries, func(c entity.VerbCandidate, _ int) bool {
		return c.Infinitive != ""
	}), nil
}
