package domain

// SettingKey names a single editor setting.
type SettingKey string

// Editor setting keys. The values double as persistence keys below the
// "editor." prefix.
const (
	SettingCreator                       SettingKey = "creator"
	SettingCreatorURL                    SettingKey = "creator_url"
	SettingMappingBrowserAllSchemes      SettingKey = "mapping_browser_all_schemes"
	SettingMappingBrowserOnlyLocal       SettingKey = "mapping_browser_only_local"
	SettingMappingBrowserShowReverse     SettingKey = "mapping_browser_show_reverse"
	SettingConceptDetailShowAllAncestors SettingKey = "concept_detail_show_all_ancestors"
	SettingConceptDetailDoNotTruncate    SettingKey = "concept_detail_do_not_truncate_notes"
	SettingMappingBrowserLocal           SettingKey = "mapping_browser_local"
	SettingMappingBrowserProvider        SettingKey = "mapping_browser_provider"
	SettingMappingBrowserCatalog         SettingKey = "mapping_browser_catalog"
	SettingMappingBrowserShowRegistry    SettingKey = "mapping_browser_show_registry"
	SettingMinimized                     SettingKey = "minimized"
	SettingFlex                          SettingKey = "flex"
	SettingMappingBrowserShowAll         SettingKey = "mapping_browser_show_all"
	SettingTypesForSchemes               SettingKey = "types_for_schemes"
	SettingLocale                        SettingKey = "locale"
	SettingAutoInsertLabels              SettingKey = "auto_insert_labels"
	SettingMappingEditorClearOnSave      SettingKey = "mapping_editor_clear_on_save"
	SettingFavoriteSchemes               SettingKey = "favorite_schemes"
)

// AllSettingKeys returns every editor setting key in display order.
func AllSettingKeys() []SettingKey {
	return []SettingKey{
		SettingCreator,
		SettingCreatorURL,
		SettingMappingBrowserAllSchemes,
		SettingMappingBrowserOnlyLocal,
		SettingMappingBrowserShowReverse,
		SettingConceptDetailShowAllAncestors,
		SettingConceptDetailDoNotTruncate,
		SettingMappingBrowserLocal,
		SettingMappingBrowserProvider,
		SettingMappingBrowserCatalog,
		SettingMappingBrowserShowRegistry,
		SettingMinimized,
		SettingFlex,
		SettingMappingBrowserShowAll,
		SettingTypesForSchemes,
		SettingLocale,
		SettingAutoInsertLabels,
		SettingMappingEditorClearOnSave,
		SettingFavoriteSchemes,
	}
}

// IsValid returns true if the key is recognised.
func (k SettingKey) IsValid() bool {
	for _, known := range AllSettingKeys() {
		if k == known {
			return true
		}
	}
	return false
}

// String returns the string representation.
func (k SettingKey) String() string {
	return string(k)
}

// EditorSettings holds the persisted user preferences of the mapping editor.
type EditorSettings struct {
	// Creator is the display name attached to new mappings.
	Creator string `json:"creator"`

	// CreatorURL identifies the creator; "http://" is added when missing.
	CreatorURL string `json:"creatorUrl"`

	MappingBrowserAllSchemes        bool `json:"mappingBrowserAllSchemes"`
	MappingBrowserOnlyLocal         bool `json:"mappingBrowserOnlyLocal"`
	MappingBrowserShowReverse       bool `json:"mappingBrowserShowReverse"`
	ConceptDetailShowAllAncestors   bool `json:"conceptDetailShowAllAncestors"`
	ConceptDetailDoNotTruncateNotes bool `json:"conceptDetailDoNotTruncateNotes"`
	MappingBrowserLocal             bool `json:"mappingBrowserLocal"`
	MappingBrowserCatalog           bool `json:"mappingBrowserCatalog"`
	MappingBrowserShowAll           bool `json:"mappingBrowserShowAll"`

	// MappingBrowserProvider toggles providers per registry URI.
	MappingBrowserProvider map[string]bool `json:"mappingBrowserProvider"`

	// MappingBrowserShowRegistry toggles registry visibility per registry URI.
	MappingBrowserShowRegistry map[string]bool `json:"mappingBrowserShowRegistry"`

	// Minimized records collapsed components by name.
	Minimized map[string]bool `json:"minimized"`

	// Flex records component sizes by name.
	Flex map[string]float64 `json:"flex"`

	// TypesForSchemes lists preferred mapping types per scheme URI pair.
	TypesForSchemes map[string][]string `json:"typesForSchemes"`

	// Locale is the preferred interface language; empty means "en".
	Locale string `json:"locale"`

	AutoInsertLabels         bool `json:"autoInsertLabels"`
	MappingEditorClearOnSave bool `json:"mappingEditorClearOnSave"`

	// FavoriteSchemes lists scheme URIs; nil means "not chosen yet".
	FavoriteSchemes []string `json:"favoriteSchemes"`
}

// DefaultEditorSettings returns the settings used before anything is persisted.
func DefaultEditorSettings() EditorSettings {
	return EditorSettings{
		MappingBrowserAllSchemes:   true,
		MappingBrowserShowReverse:  true,
		MappingBrowserLocal:        true,
		MappingBrowserCatalog:      true,
		MappingBrowserProvider:     map[string]bool{},
		MappingBrowserShowRegistry: map[string]bool{},
		Minimized:                  map[string]bool{},
		Flex:                       map[string]float64{},
		TypesForSchemes:            map[string][]string{},
		AutoInsertLabels:           true,
		MappingEditorClearOnSave:   true,
	}
}

// Language returns the locale or "en" when unset.
func (s EditorSettings) Language() string {
	if s.Locale == "" {
		return "en"
	}
	return s.Locale
}

// Clone returns a deep copy of the settings.
func (s EditorSettings) Clone() EditorSettings {
	out := s
	out.MappingBrowserProvider = cloneBoolMap(s.MappingBrowserProvider)
	out.MappingBrowserShowRegistry = cloneBoolMap(s.MappingBrowserShowRegistry)
	out.Minimized = cloneBoolMap(s.Minimized)
	if s.Flex != nil {
		out.Flex = make(map[string]float64, len(s.Flex))
		for k, v := range s.Flex {
			out.Flex[k] = v
		}
	}
	if s.TypesForSchemes != nil {
		out.TypesForSchemes = make(map[string][]string, len(s.TypesForSchemes))
		for k, v := range s.TypesForSchemes {
			out.TypesForSchemes[k] = append([]string(nil), v...)
		}
	}
	if s.FavoriteSchemes != nil {
		out.FavoriteSchemes = append([]string{}, s.FavoriteSchemes...)
	}
	return out
}

func cloneBoolMap(m map[string]bool) map[string]bool {
	if m == nil {
		return nil
	}
	out := make(map[string]bool, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
