package domain

// LanguageMap maps language tags to a single string value.
type LanguageMap map[string]string

// LanguageMapList maps language tags to a list of string values.
// It is the shape of notes and definitions.
type LanguageMapList map[string][]string

// Count returns the total number of values across all languages.
func (l LanguageMapList) Count() int {
	n := 0
	for _, values := range l {
		n += len(values)
	}
	return n
}

// Clone returns a deep copy of the map. A nil map stays nil.
func (l LanguageMapList) Clone() LanguageMapList {
	if l == nil {
		return nil
	}
	out := make(LanguageMapList, len(l))
	for lang, values := range l {
		out[lang] = append([]string(nil), values...)
	}
	return out
}

// Clone returns a copy of the map. A nil map stays nil.
func (l LanguageMap) Clone() LanguageMap {
	if l == nil {
		return nil
	}
	out := make(LanguageMap, len(l))
	for lang, value := range l {
		out[lang] = value
	}
	return out
}

// Item holds the fields shared by concepts and schemes.
type Item struct {
	// URI identifies the item. Two items are the same item when their URIs match.
	URI string `json:"uri,omitempty"`

	// Notation lists codes for the item; the first one is primary.
	Notation []string `json:"notation,omitempty"`

	// PrefLabel is the preferred label per language.
	PrefLabel LanguageMap `json:"prefLabel,omitempty"`

	// Definition holds definitions per language.
	Definition LanguageMapList `json:"definition,omitempty"`
}

// Is reports whether both items carry the same, non-empty URI.
func (i Item) Is(other Item) bool {
	return SameURI(i.URI, other.URI)
}

// Clone returns a deep copy of the item.
func (i Item) Clone() Item {
	return Item{
		URI:        i.URI,
		Notation:   append([]string(nil), i.Notation...),
		PrefLabel:  i.PrefLabel.Clone(),
		Definition: i.Definition.Clone(),
	}
}

// minify keeps only the identifying fields.
func (i Item) minify() Item {
	return Item{
		URI:      i.URI,
		Notation: append([]string(nil), i.Notation...),
	}
}

// SameURI compares two identities. Empty URIs never match anything.
func SameURI(a, b string) bool {
	return a != "" && a == b
}

// Scheme is a concept vocabulary or classification system.
type Scheme struct {
	Item
}

// NewScheme returns a scheme with the given URI.
func NewScheme(uri string) *Scheme {
	return &Scheme{Item: Item{URI: uri}}
}

// Clone returns a deep copy of the scheme. A nil scheme stays nil.
func (s *Scheme) Clone() *Scheme {
	if s == nil {
		return nil
	}
	return &Scheme{Item: s.Item.Clone()}
}

func (s *Scheme) minify() *Scheme {
	if s == nil {
		return nil
	}
	return &Scheme{Item: s.Item.minify()}
}

// SameScheme compares two nullable schemes by URI. Nil never matches.
func SameScheme(a, b *Scheme) bool {
	if a == nil || b == nil {
		return false
	}
	return a.Is(b.Item)
}

// Concept is an entry within a scheme.
type Concept struct {
	Item

	// InScheme lists the schemes the concept belongs to; the first one is primary.
	InScheme []Scheme `json:"inScheme,omitempty"`
}

// NewConcept returns a concept with the given URI, optionally placed in a scheme.
func NewConcept(uri string, scheme *Scheme) Concept {
	c := Concept{Item: Item{URI: uri}}
	if scheme != nil {
		c.InScheme = []Scheme{*scheme.Clone()}
	}
	return c
}

// PrimaryScheme returns the first scheme of the concept, or nil.
func (c Concept) PrimaryScheme() *Scheme {
	if len(c.InScheme) == 0 {
		return nil
	}
	s := c.InScheme[0]
	return s.Clone()
}

// Clone returns a deep copy of the concept.
func (c Concept) Clone() Concept {
	out := Concept{Item: c.Item.Clone()}
	if c.InScheme != nil {
		out.InScheme = make([]Scheme, len(c.InScheme))
		for i := range c.InScheme {
			out.InScheme[i] = *c.InScheme[i].Clone()
		}
	}
	return out
}

func (c Concept) minify() Concept {
	return Concept{Item: c.Item.minify()}
}

// Agent is a person or organisation credited on a mapping.
// URL is the agent's homepage, separate from its identifying URI.
type Agent struct {
	URI       string      `json:"uri,omitempty"`
	URL       string      `json:"url,omitempty"`
	PrefLabel LanguageMap `json:"prefLabel,omitempty"`
}

// IsEmpty reports whether the agent has no URI, URL or label.
func (a Agent) IsEmpty() bool {
	if a.URI != "" || a.URL != "" {
		return false
	}
	for _, label := range a.PrefLabel {
		if label != "" {
			return false
		}
	}
	return true
}

// Clone returns a copy of the agent.
func (a Agent) Clone() Agent {
	return Agent{URI: a.URI, URL: a.URL, PrefLabel: a.PrefLabel.Clone()}
}

func cloneAgents(agents []Agent) []Agent {
	if agents == nil {
		return nil
	}
	out := make([]Agent, len(agents))
	for i, a := range agents {
		out[i] = a.Clone()
	}
	return out
}
