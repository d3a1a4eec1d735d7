package domain

// Mapping type URIs from SKOS.
const (
	// DefaultMappingType is the generic mapping relation used when none is chosen.
	DefaultMappingType = "http://www.w3.org/2004/02/skos/core#mappingRelation"

	MappingTypeExact   = "http://www.w3.org/2004/02/skos/core#exactMatch"
	MappingTypeClose   = "http://www.w3.org/2004/02/skos/core#closeMatch"
	MappingTypeBroad   = "http://www.w3.org/2004/02/skos/core#broadMatch"
	MappingTypeNarrow  = "http://www.w3.org/2004/02/skos/core#narrowMatch"
	MappingTypeRelated = "http://www.w3.org/2004/02/skos/core#relatedMatch"
)

// MappingTypes returns the known mapping types keyed by short name.
func MappingTypes() map[string]string {
	return map[string]string{
		"mapping": DefaultMappingType,
		"exact":   MappingTypeExact,
		"close":   MappingTypeClose,
		"broad":   MappingTypeBroad,
		"narrow":  MappingTypeNarrow,
		"related": MappingTypeRelated,
	}
}

// ConceptBundle is an ordered set of concepts, unique by URI.
type ConceptBundle struct {
	MemberSet []Concept `json:"memberSet"`
}

// Clone returns a deep copy of the bundle. The member set is never nil.
func (b ConceptBundle) Clone() ConceptBundle {
	out := ConceptBundle{MemberSet: make([]Concept, len(b.MemberSet))}
	for i, c := range b.MemberSet {
		out.MemberSet[i] = c.Clone()
	}
	return out
}

// IndexOf returns the position of the concept with the same URI, or -1.
func (b ConceptBundle) IndexOf(concept Concept) int {
	for i, c := range b.MemberSet {
		if c.Is(concept.Item) {
			return i
		}
	}
	return -1
}

// Mapping is a correspondence between concepts on a "from" scheme and
// concepts on a "to" scheme.
//
// The "from" side holds at most one concept; the "to" side may hold any number.
// A nil scheme means the side is unconstrained.
type Mapping struct {
	URI        string          `json:"uri,omitempty"`
	From       ConceptBundle   `json:"from"`
	To         ConceptBundle   `json:"to"`
	FromScheme *Scheme         `json:"fromScheme"`
	ToScheme   *Scheme         `json:"toScheme"`
	Type       []string        `json:"type"`
	Creator    []Agent         `json:"creator,omitempty"`
	Note       LanguageMapList `json:"note,omitempty"`
	Identifier []string        `json:"identifier,omitempty"`
	Created    string          `json:"created,omitempty"`
	Modified   string          `json:"modified,omitempty"`

	// Local marks mappings that came from the local registry.
	Local bool `json:"-"`
}

// NewMapping returns an empty mapping with the default type.
func NewMapping() Mapping {
	return Mapping{
		From: ConceptBundle{MemberSet: []Concept{}},
		To:   ConceptBundle{MemberSet: []Concept{}},
		Type: []string{DefaultMappingType},
	}
}

// Side returns the concept bundle of one side.
func (m *Mapping) Side(isLeft bool) *ConceptBundle {
	if isLeft {
		return &m.From
	}
	return &m.To
}

// SchemeRef returns a pointer to the scheme slot of one side.
func (m *Mapping) SchemeRef(isLeft bool) **Scheme {
	if isLeft {
		return &m.FromScheme
	}
	return &m.ToScheme
}

// Concepts returns the concepts of one side.
func (m Mapping) Concepts(isLeft bool) []Concept {
	return m.Side(isLeft).MemberSet
}

// Scheme returns the scheme of one side, or nil.
func (m Mapping) Scheme(isLeft bool) *Scheme {
	return *m.SchemeRef(isLeft)
}

// Added reports whether a concept with the same URI is on the given side.
func (m Mapping) Added(concept Concept, isLeft bool) bool {
	return m.Side(isLeft).IndexOf(concept) != -1
}

// CheckScheme reports whether the scheme fits the side: either the side has
// no scheme yet or the URIs match.
func (m Mapping) CheckScheme(scheme *Scheme, isLeft bool) bool {
	actual := m.Scheme(isLeft)
	if actual == nil {
		return true
	}
	return SameScheme(actual, scheme)
}

// CanAdd reports whether the concept could be added to the side.
func (m Mapping) CanAdd(concept Concept, isLeft bool) bool {
	if concept.URI == "" {
		return false
	}
	return !m.Added(concept, isLeft)
}

// PrimaryType returns the canonical mapping type.
func (m Mapping) PrimaryType() string {
	if len(m.Type) == 0 || m.Type[0] == "" {
		return DefaultMappingType
	}
	return m.Type[0]
}

// Clone returns a deep copy of the mapping.
func (m Mapping) Clone() Mapping {
	return Mapping{
		URI:        m.URI,
		From:       m.From.Clone(),
		To:         m.To.Clone(),
		FromScheme: m.FromScheme.Clone(),
		ToScheme:   m.ToScheme.Clone(),
		Type:       append([]string(nil), m.Type...),
		Creator:    cloneAgents(m.Creator),
		Note:       m.Note.Clone(),
		Identifier: append([]string(nil), m.Identifier...),
		Created:    m.Created,
		Modified:   m.Modified,
		Local:      m.Local,
	}
}

// Minify returns a copy reduced to identifying fields. Concepts and schemes
// keep only URI and notation. The local flag is dropped.
func (m Mapping) Minify() Mapping {
	out := Mapping{
		URI:        m.URI,
		From:       minifyBundle(m.From),
		To:         minifyBundle(m.To),
		FromScheme: m.FromScheme.minify(),
		ToScheme:   m.ToScheme.minify(),
		Type:       append([]string(nil), m.Type...),
		Creator:    cloneAgents(m.Creator),
		Note:       m.Note.Clone(),
		Identifier: append([]string(nil), m.Identifier...),
		Created:    m.Created,
		Modified:   m.Modified,
	}
	return out
}

func minifyBundle(b ConceptBundle) ConceptBundle {
	out := ConceptBundle{MemberSet: make([]Concept, len(b.MemberSet))}
	for i, c := range b.MemberSet {
		out.MemberSet[i] = c.minify()
	}
	return out
}

// Members returns the concepts of both sides, "from" first.
func (m Mapping) Members() []Concept {
	members := make([]Concept, 0, len(m.From.MemberSet)+len(m.To.MemberSet))
	members = append(members, m.From.MemberSet...)
	return append(members, m.To.MemberSet...)
}
