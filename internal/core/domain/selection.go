package domain

// SelectionKind names what is selected on a side.
type SelectionKind string

// Selection kinds.
const (
	SelectScheme  SelectionKind = "scheme"
	SelectConcept SelectionKind = "concept"
	// SelectBoth sets scheme and concept together.
	SelectBoth SelectionKind = "both"
)

// IsValid returns true if the kind is recognised.
func (k SelectionKind) IsValid() bool {
	switch k {
	case SelectScheme, SelectConcept, SelectBoth:
		return true
	default:
		return false
	}
}

// Selection tracks the selected scheme and concept for each side.
// Index 0 is the left side, index 1 the right side.
type Selection struct {
	Schemes  [2]*Scheme  `json:"schemes"`
	Concepts [2]*Concept `json:"concepts"`
}

func sideIndex(isLeft bool) int {
	if isLeft {
		return 0
	}
	return 1
}

// Scheme returns the selected scheme of a side, or nil.
func (s Selection) Scheme(isLeft bool) *Scheme {
	return s.Schemes[sideIndex(isLeft)]
}

// Concept returns the selected concept of a side, or nil.
func (s Selection) Concept(isLeft bool) *Concept {
	return s.Concepts[sideIndex(isLeft)]
}

// Clear unsets one kind on a side. Clearing a scheme also clears the concept
// of that side; clearing both does the same.
func (s *Selection) Clear(kind SelectionKind, isLeft bool) {
	i := sideIndex(isLeft)
	switch kind {
	case SelectScheme, SelectBoth:
		s.Schemes[i] = nil
		s.Concepts[i] = nil
	case SelectConcept:
		s.Concepts[i] = nil
	}
}

// Set stores the selection for a side. Only the argument matching kind is
// used, except for SelectBoth which stores both.
func (s *Selection) Set(kind SelectionKind, isLeft bool, scheme *Scheme, concept *Concept) {
	i := sideIndex(isLeft)
	switch kind {
	case SelectScheme:
		s.Schemes[i] = scheme.Clone()
	case SelectConcept:
		s.Concepts[i] = cloneConceptPtr(concept)
	case SelectBoth:
		s.Schemes[i] = scheme.Clone()
		s.Concepts[i] = cloneConceptPtr(concept)
	}
}

// Clone returns a deep copy of the selection.
func (s Selection) Clone() Selection {
	var out Selection
	for i := range s.Schemes {
		out.Schemes[i] = s.Schemes[i].Clone()
		out.Concepts[i] = cloneConceptPtr(s.Concepts[i])
	}
	return out
}

func cloneConceptPtr(c *Concept) *Concept {
	if c == nil {
		return nil
	}
	out := c.Clone()
	return &out
}
