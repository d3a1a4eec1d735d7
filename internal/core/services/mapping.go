package services

import (
	"slices"
	"sync"

	"github.com/custodia-labs/skosmap/internal/core/domain"
	"github.com/custodia-labs/skosmap/internal/core/ports/driven"
	"github.com/custodia-labs/skosmap/internal/core/ports/driving"
	"github.com/custodia-labs/skosmap/internal/logger"
)

// Ensure MappingService implements the interface.
var _ driving.MappingEditor = (*MappingService)(nil)

// MappingService holds the single mapping being edited.
//
// Mutations are serialised on mu. Registry calls made by the actions in
// mapping_actions.go run without holding the lock.
type MappingService struct {
	mu         sync.Mutex
	registries *RegistryDirectory

	mapping         domain.Mapping
	original        *domain.Mapping
	needsRefresh    bool
	refreshRegistry string
	mappingRegistry *domain.Registry

	language func() string
}

// NewMappingService creates a mapping service over a registry directory.
func NewMappingService(registries *RegistryDirectory) *MappingService {
	if registries == nil {
		registries = NewRegistryDirectory()
	}
	return &MappingService{
		registries: registries,
		mapping:    domain.NewMapping(),
	}
}

// SetLanguage sets the source of the language used for labels the editor
// writes itself, such as creator names. Without one, "en" is used.
func (s *MappingService) SetLanguage(language func() string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.language = language
}

func (s *MappingService) labelLanguage() string {
	s.mu.Lock()
	language := s.language
	s.mu.Unlock()
	if language == nil {
		return "en"
	}
	if lang := language(); lang != "" {
		return lang
	}
	return "en"
}

// Mapping returns a copy of the working mapping.
func (s *MappingService) Mapping() domain.Mapping {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mapping.Clone()
}

// Original returns a copy of the source snapshot, or nil.
func (s *MappingService) Original() *domain.Mapping {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.original == nil {
		return nil
	}
	o := s.original.Clone()
	return &o
}

// Added reports whether a concept with the same URI is on the side.
func (s *MappingService) Added(concept domain.Concept, isLeft bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mapping.Added(concept, isLeft)
}

// CheckScheme reports whether the scheme fits the side.
func (s *MappingService) CheckScheme(scheme *domain.Scheme, isLeft bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mapping.CheckScheme(scheme, isLeft)
}

// CanAdd reports whether the concept could be added to the side.
func (s *MappingService) CanAdd(concept domain.Concept, isLeft bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mapping.CanAdd(concept, isLeft)
}

// Concepts returns a copy of the concepts on one side.
func (s *MappingService) Concepts(isLeft bool) []domain.Concept {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mapping.Side(isLeft).Clone().MemberSet
}

// Scheme returns a copy of the scheme of one side, or nil.
func (s *MappingService) Scheme(isLeft bool) *domain.Scheme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mapping.Scheme(isLeft).Clone()
}

// Add puts a concept on a side.
//
// The scheme defaults to the concept's first inScheme entry; without either
// the call does nothing. The "from" side never holds more than one concept,
// so adding to a non-empty "from" side replaces it. A concept from a different
// scheme also replaces the side. Replacing drops the original snapshot.
func (s *MappingService) Add(concept domain.Concept, scheme *domain.Scheme, isLeft bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if scheme == nil {
		scheme = concept.PrimaryScheme()
	}
	if scheme == nil {
		logger.Debug("add: concept %q has no scheme, ignoring", concept.URI)
		return
	}
	if concept.URI == "" || s.mapping.Added(concept, isLeft) {
		return
	}

	side := s.mapping.Side(isLeft)
	if (isLeft && len(side.MemberSet) > 0) || !s.mapping.CheckScheme(scheme, isLeft) {
		side.MemberSet = []domain.Concept{concept.Clone()}
		s.original = nil
	} else {
		side.MemberSet = append(side.MemberSet, concept.Clone())
	}
	*s.mapping.SchemeRef(isLeft) = scheme.Clone()
}

// Remove takes a concept off a side. An emptied "from" side also loses its
// scheme; the "to" side keeps it.
func (s *MappingService) Remove(concept domain.Concept, isLeft bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	side := s.mapping.Side(isLeft)
	i := side.IndexOf(concept)
	if i == -1 {
		return
	}
	side.MemberSet = slices.Delete(side.MemberSet, i, i+1)
	if isLeft && len(side.MemberSet) == 0 {
		s.mapping.FromScheme = nil
	}
}

// RemoveAll clears the concepts and the scheme of a side.
func (s *MappingService) RemoveAll(isLeft bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.mapping.Side(isLeft).MemberSet = []domain.Concept{}
	*s.mapping.SchemeRef(isLeft) = nil
}

// Set replaces the working mapping and/or the original snapshot.
//
// A non-nil original is stored minified, with fresh identifiers and its
// local flag preserved. Passing nil for both clears the original.
func (s *MappingService) Set(mapping, original *domain.Mapping) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if mapping != nil {
		s.mapping = normalizeBundles(mapping.Clone())
	}
	switch {
	case original != nil:
		o := snapshot(*original)
		s.original = &o
	case mapping == nil:
		s.original = nil
	}
}

// Empty resets the working mapping and drops the original.
func (s *MappingService) Empty() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.mapping = domain.NewMapping()
	s.original = nil
}

// SetType replaces the mapping type.
func (s *MappingService) SetType(uri string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mapping.Type = []string{uri}
}

// SetCreator replaces the creators.
func (s *MappingService) SetCreator(creator []domain.Agent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if creator == nil {
		s.mapping.Creator = nil
		return
	}
	s.mapping.Creator = make([]domain.Agent, len(creator))
	for i, a := range creator {
		s.mapping.Creator[i] = a.Clone()
	}
}

// SetNote replaces the note. A note without any entries removes the field.
func (s *MappingService) SetNote(note domain.LanguageMapList) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if note.Count() == 0 {
		s.mapping.Note = nil
		return
	}
	s.mapping.Note = note.Clone()
}

// SetScheme sets the scheme of a side that has no concepts yet.
func (s *MappingService) SetScheme(isLeft bool, scheme *domain.Scheme) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.mapping.Concepts(isLeft)) > 0 {
		return
	}
	*s.mapping.SchemeRef(isLeft) = scheme.Clone()
}

// Switch swaps both sides together with their schemes.
func (s *MappingService) Switch() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.mapping.From, s.mapping.To = s.mapping.To, s.mapping.From
	s.mapping.FromScheme, s.mapping.ToScheme = s.mapping.ToScheme, s.mapping.FromScheme
}

// SetIdentifier stamps content and members identifiers once both schemes are set.
func (s *MappingService) SetIdentifier() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mapping.FromScheme == nil || s.mapping.ToScheme == nil {
		return
	}
	s.mapping = s.mapping.AddIdentifiers()
}

// SetRefresh flags that mapping lists need reloading.
//
// With onlyMain the hint names the home registry of the current mapping, or
// the first save-capable registry. Otherwise it names registryURI if that
// registry is known. Clearing the flag clears the hint.
func (s *MappingService) SetRefresh(refresh bool, registryURI string, onlyMain bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.needsRefresh = refresh
	if !refresh {
		s.refreshRegistry = ""
		return
	}

	var (
		reg driven.Registry
		ok  bool
	)
	switch {
	case onlyMain:
		reg, ok = s.registries.Home(s.mappingRegistry, domain.CapSaveMappings)
	case registryURI != "":
		reg, ok = s.registries.ByURI(registryURI)
	}
	if ok {
		s.refreshRegistry = reg.URI
	}
}

// RefreshState reports the refresh flag and the registry hint.
func (s *MappingService) RefreshState() (bool, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.needsRefresh, s.refreshRegistry
}

// SetMappingRegistry records the home registry of the working mapping.
func (s *MappingService) SetMappingRegistry(registry *domain.Registry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mappingRegistry = cloneRegistry(registry)
}

// MappingRegistry returns the home registry, or nil.
func (s *MappingService) MappingRegistry() *domain.Registry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneRegistry(s.mappingRegistry)
}

// Registries lists the configured registries in order.
func (s *MappingService) Registries() []domain.Registry {
	return s.registries.Descriptions()
}

// snapshot normalises a mapping the way the original is stored.
func snapshot(m domain.Mapping) domain.Mapping {
	out := m.Minify().AddIdentifiers()
	out.Local = m.Local
	return out
}

func normalizeBundles(m domain.Mapping) domain.Mapping {
	if m.From.MemberSet == nil {
		m.From.MemberSet = []domain.Concept{}
	}
	if m.To.MemberSet == nil {
		m.To.MemberSet = []domain.Concept{}
	}
	return m
}

func cloneRegistry(r *domain.Registry) *domain.Registry {
	if r == nil {
		return nil
	}
	out := *r
	out.PrefLabel = r.PrefLabel.Clone()
	return &out
}
