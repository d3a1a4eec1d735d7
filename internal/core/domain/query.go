package domain

import "strings"

// Direction controls which side of a mapping a concept filter applies to.
type Direction string

// Query directions.
const (
	// DirectionForward matches From against "from" and To against "to".
	DirectionForward Direction = "forward"
	// DirectionBackward matches From against "to" and To against "from".
	DirectionBackward Direction = "backward"
	// DirectionBoth matches either orientation.
	DirectionBoth Direction = "both"
)

// IsValid returns true if the direction is recognised. Empty means forward.
func (d Direction) IsValid() bool {
	switch d {
	case "", DirectionForward, DirectionBackward, DirectionBoth:
		return true
	default:
		return false
	}
}

// QueryMode controls how From and To filters combine.
type QueryMode string

// Query modes.
const (
	ModeAnd QueryMode = "and"
	ModeOr  QueryMode = "or"
)

// IsValid returns true if the mode is recognised. Empty means and.
func (m QueryMode) IsValid() bool {
	switch m {
	case "", ModeAnd, ModeOr:
		return true
	default:
		return false
	}
}

// MappingQuery filters mappings held by a registry.
type MappingQuery struct {
	// From is a concept URI.
	From string `json:"from,omitempty"`

	// To is a concept URI.
	To string `json:"to,omitempty"`

	// FromScheme and ToScheme are scheme URIs.
	FromScheme string `json:"fromScheme,omitempty"`
	ToScheme   string `json:"toScheme,omitempty"`

	Direction Direction `json:"direction,omitempty"`
	Mode      QueryMode `json:"mode,omitempty"`

	// Identifier holds one or more mapping identifiers separated by "|".
	Identifier string `json:"identifier,omitempty"`

	// Selected is consulted by "all mappings" lookups.
	Selected *Selection `json:"-"`

	// Limit caps the number of results; zero means no limit.
	Limit int `json:"limit,omitempty"`
}

// Identifiers splits the identifier filter.
func (q MappingQuery) Identifiers() []string {
	if q.Identifier == "" {
		return nil
	}
	var ids []string
	for _, id := range strings.Split(q.Identifier, "|") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// WithSelection fills empty concept filters from the selected concepts and
// widens the query to both directions in or-mode.
func (q MappingQuery) WithSelection() MappingQuery {
	if q.Selected == nil || q.From != "" || q.To != "" {
		return q
	}
	if c := q.Selected.Concept(true); c != nil {
		q.From = c.URI
	}
	if c := q.Selected.Concept(false); c != nil {
		q.To = c.URI
	}
	if q.From != "" || q.To != "" {
		q.Direction = DirectionBoth
		q.Mode = ModeOr
	}
	return q
}

// Matches evaluates the query against a mapping.
func (q MappingQuery) Matches(m Mapping) bool {
	if ids := q.Identifiers(); len(ids) > 0 {
		found := false
		for _, id := range ids {
			if m.HasIdentifier(id) || id == m.URI {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	switch q.Direction {
	case DirectionBackward:
		return q.matchOriented(m, false)
	case DirectionBoth:
		return q.matchOriented(m, true) || q.matchOriented(m, false)
	default:
		return q.matchOriented(m, true)
	}
}

// matchOriented applies the filters with From against the "from" side when
// forward is true and against the "to" side otherwise.
func (q MappingQuery) matchOriented(m Mapping, forward bool) bool {
	if !schemeMatches(q.FromScheme, m.Scheme(forward)) || !schemeMatches(q.ToScheme, m.Scheme(!forward)) {
		return false
	}

	fromSet, toSet := q.From != "", q.To != ""
	fromOK := !fromSet || bundleHas(m.Side(forward), q.From)
	toOK := !toSet || bundleHas(m.Side(!forward), q.To)

	if q.Mode == ModeOr && fromSet && toSet {
		return fromOK || toOK
	}
	return fromOK && toOK
}

func schemeMatches(uri string, scheme *Scheme) bool {
	if uri == "" {
		return true
	}
	return scheme != nil && SameURI(scheme.URI, uri)
}

func bundleHas(b *ConceptBundle, uri string) bool {
	for _, c := range b.MemberSet {
		if SameURI(c.URI, uri) {
			return true
		}
	}
	return false
}
