// Package display renders mappings, concepts and schemes as text for the
// terminal surfaces (CLI, editor prompt, TUI and MCP results).
package display

import (
	"cmp"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/custodia-labs/skosmap/internal/core/domain"
)

// FallbackLanguage is tried after the requested language and its base.
const FallbackLanguage = "en"

var upper = cases.Upper(language.Und)

// Notation returns the primary notation of an item, or "".
// Scheme notations are uppercased.
func Notation(item domain.Item, isScheme bool) string {
	if len(item.Notation) == 0 {
		return ""
	}
	if isScheme {
		return upper.String(item.Notation[0])
	}
	return item.Notation[0]
}

// BaseLanguage returns the base language of a BCP 47 tag ("de-AT" gives
// "de"), or "" when the tag does not parse.
func BaseLanguage(tag string) string {
	if tag == "" {
		return ""
	}
	t, err := language.Parse(tag)
	if err != nil {
		return ""
	}
	base, _ := t.Base()
	return base.String()
}

// pick looks up lm in the order: lang, its base language, FallbackLanguage,
// then the first other language in sorted order. The "-" key is never picked
// by the last step.
func pick[V any](lm map[string]V, lang string, empty func(V) bool) (V, bool) {
	var zero V
	if len(lm) == 0 {
		return zero, false
	}
	candidates := []string{lang}
	if base := BaseLanguage(lang); base != "" && base != lang {
		candidates = append(candidates, base)
	}
	candidates = append(candidates, FallbackLanguage)
	for _, c := range candidates {
		if v, ok := lm[c]; ok && !empty(v) {
			return v, true
		}
	}

	keys := make([]string, 0, len(lm))
	for k := range lm {
		if k != "-" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		if !empty(lm[k]) {
			return lm[k], true
		}
	}
	return zero, false
}

// LanguageContent returns the best value of a language map for lang.
func LanguageContent(lm domain.LanguageMap, lang string) (string, bool) {
	return pick(lm, lang, func(v string) bool { return v == "" })
}

// PrefLabel returns the preferred label of an item for lang. Without a label
// it returns the URI when fallbackToURI is set, else "".
func PrefLabel(item domain.Item, lang string, fallbackToURI bool) string {
	if label, ok := LanguageContent(item.PrefLabel, lang); ok {
		return label
	}
	if fallbackToURI {
		return item.URI
	}
	return ""
}

// Definition returns the definitions of an item for lang. The result is never nil.
func Definition(item domain.Item, lang string) []string {
	values, ok := pick(item.Definition, lang, func(v []string) bool { return v == nil })
	if !ok {
		return []string{}
	}
	return append([]string{}, values...)
}

// Note returns the note of a mapping for lang, or nil.
func Note(note domain.LanguageMapList, lang string) []string {
	values, ok := pick(note, lang, func(v []string) bool { return len(v) == 0 })
	if !ok {
		return nil
	}
	return values
}

// CanConceptBeSelected reports whether a concept has a scheme and, when a
// scheme is given, belongs to it.
func CanConceptBeSelected(concept domain.Concept, scheme *domain.Scheme) bool {
	primary := concept.PrimaryScheme()
	if primary == nil {
		return false
	}
	return scheme == nil || domain.SameScheme(primary, scheme)
}

// CompareMappingsByConcepts orders two mappings by the notation of the first
// concept on one side. Mappings without a concept there sort first.
func CompareMappingsByConcepts(a, b domain.Mapping, isLeft bool) int {
	return cmp.Compare(firstNotation(a, isLeft), firstNotation(b, isLeft))
}

func firstNotation(m domain.Mapping, isLeft bool) string {
	concepts := m.Concepts(isLeft)
	if len(concepts) == 0 {
		return ""
	}
	return Notation(concepts[0].Item, false)
}

// TypeName returns the short name of a mapping type URI, or the URI itself.
func TypeName(uri string) string {
	for name, known := range domain.MappingTypes() {
		if known == uri {
			return name
		}
	}
	return uri
}

// Concept renders a concept as "notation label", falling back to the URI.
func Concept(c domain.Concept, lang string) string {
	label := PrefLabel(c.Item, lang, false)
	notation := Notation(c.Item, false)
	switch {
	case notation != "" && label != "":
		return notation + " " + label
	case notation != "":
		return notation
	case label != "":
		return label
	default:
		return c.URI
	}
}

// Scheme renders a scheme by notation, then label, then URI. Nil gives "-".
func Scheme(s *domain.Scheme, lang string) string {
	if s == nil {
		return "-"
	}
	if n := Notation(s.Item, true); n != "" {
		return n
	}
	return PrefLabel(s.Item, lang, true)
}

// MappingSummary renders a mapping on one line:
//
//	FROMSCHEME concept --type--> TOSCHEME concept, concept
func MappingSummary(m domain.Mapping, lang string) string {
	side := func(isLeft bool) string {
		concepts := m.Concepts(isLeft)
		if len(concepts) == 0 {
			return "(none)"
		}
		parts := make([]string, len(concepts))
		for i, c := range concepts {
			parts[i] = Concept(c, lang)
		}
		return strings.Join(parts, ", ")
	}
	return fmt.Sprintf("%s %s --%s--> %s %s",
		Scheme(m.FromScheme, lang), side(true),
		TypeName(m.PrimaryType()),
		Scheme(m.ToScheme, lang), side(false))
}
