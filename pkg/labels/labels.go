// Package labels cleans CPI category labels for display and translates them
// into French.
package labels

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

// baseAnnotation matches a base-period annotation such as " (2013=100)" or
// "(202404=100)", including the whitespace in front of it.
var baseAnnotation = regexp.MustCompile(`\s*\([^()]*=100\)`)

//go:embed translations.yaml
var defaultTranslations []byte

// Normalize strips every base-period annotation from label. Only innermost
// "(…=100)" groups are removed, so "Meat (excluding poultry) (2013=100)"
// keeps "(excluding poultry)".
func Normalize(label string) string {
	if !strings.Contains(label, "=100)") {
		return label
	}
	return baseAnnotation.ReplaceAllString(label, "")
}

// TranslationTable maps a normalized English label to its French label.
// It is not expected to cover every category.
type TranslationTable map[string]string

// Lookup returns the French label of a normalized English label.
func (t TranslationTable) Lookup(label string) (string, bool) {
	fr, ok := t[norm.NFC.String(label)]
	return fr, ok
}

// DefaultTable returns the translation table bundled with the binary.
func DefaultTable() (TranslationTable, error) {
	return LoadTable(bytes.NewReader(defaultTranslations))
}

// LoadTableFile reads a YAML translation table from path.
func LoadTableFile(path string) (TranslationTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open translation table: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	table, err := LoadTable(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return table, nil
}

// LoadTable decodes a YAML mapping of English labels to French labels. Keys
// are normalized so that annotated labels may be used as keys; both sides are
// converted to Unicode NFC.
func LoadTable(r io.Reader) (TranslationTable, error) {
	var raw map[string]string
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return TranslationTable{}, nil
		}
		return nil, fmt.Errorf("failed to parse translation table: %w", err)
	}

	table := make(TranslationTable, len(raw))
	for en, fr := range raw {
		key := norm.NFC.String(strings.TrimSpace(Normalize(en)))
		value := norm.NFC.String(strings.TrimSpace(fr))
		if key == "" {
			return nil, fmt.Errorf("translation table: empty English label for %q", fr)
		}
		if value == "" {
			return nil, fmt.Errorf("translation table: empty French label for %q", en)
		}
		table[key] = value
	}
	return table, nil
}

// Translator turns raw category labels into display labels.
type Translator struct {
	table TranslationTable
}

// NewTranslator returns a Translator backed by table. A nil table translates
// nothing.
func NewTranslator(table TranslationTable) *Translator {
	if table == nil {
		table = TranslationTable{}
	}
	return &Translator{table: table}
}

// Translate returns the display label of a raw category label. English labels
// are only normalized; French labels fall back to the normalized English label
// when the table has no entry.
func (t *Translator) Translate(label string, french bool) string {
	cleaned := Normalize(label)
	if !french {
		return cleaned
	}
	if fr, ok := t.table.Lookup(cleaned); ok {
		return fr
	}
	return cleaned
}

// Func binds Translate to one language.
func (t *Translator) Func(french bool) func(string) string {
	return func(label string) string {
		return t.Translate(label, french)
	}
}

// Len returns the number of translations known.
func (t *Translator) Len() int {
	return len(t.table)
}
