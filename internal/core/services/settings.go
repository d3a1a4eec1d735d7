package services

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/custodia-labs/skosmap/internal/core/domain"
	"github.com/custodia-labs/skosmap/internal/core/ports/driven"
	"github.com/custodia-labs/skosmap/internal/core/ports/driving"
	"github.com/custodia-labs/skosmap/internal/logger"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// settingsPrefix namespaces editor settings in the config store.
const settingsPrefix = "editor."

func settingStoreKey(key domain.SettingKey) string {
	return settingsPrefix + string(key)
}

// SettingsService manages the editor settings.
//
// Until Load has completed, Save and Set are ignored so that defaults never
// overwrite persisted values.
type SettingsService struct {
	mu          sync.RWMutex
	configStore driven.ConfigStore
	settings    domain.EditorSettings
	loaded      bool
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
		settings:    domain.DefaultEditorSettings(),
	}
}

// Load reads the config store and merges persisted values over the defaults.
// Stored values of the wrong shape are skipped with a warning.
func (s *SettingsService) Load() error {
	if err := s.configStore.Load(); err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	settings := domain.DefaultEditorSettings()
	for _, key := range domain.AllSettingKeys() {
		raw, ok := s.configStore.Get(settingStoreKey(key))
		if !ok {
			continue
		}
		if err := applySetting(&settings, key, raw); err != nil {
			logger.Warn("ignoring stored setting %s: %v", key, err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings
	s.loaded = true
	logger.Debug("settings loaded from %s", s.configStore.Path())
	return nil
}

// Loaded reports whether Load has completed.
func (s *SettingsService) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Get returns a copy of the current settings.
func (s *SettingsService) Get() domain.EditorSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings.Clone()
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.EditorSettings {
	return domain.DefaultEditorSettings()
}

// Save replaces all settings and persists them.
func (s *SettingsService) Save(settings domain.EditorSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		logger.Warn("settings not loaded yet, ignoring save")
		return nil
	}

	next := settings.Clone()
	for _, key := range domain.AllSettingKeys() {
		if err := s.persist(next, key); err != nil {
			return err
		}
	}
	s.settings = next
	return nil
}

// Set changes one setting and persists it.
//
// Values may be given typed (bool, string, maps, []string) or as strings:
// booleans parse with strconv, maps as JSON objects and favorite schemes as
// a comma separated list.
func (s *SettingsService) Set(key domain.SettingKey, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		logger.Warn("settings not loaded yet, ignoring change to %s", key)
		return nil
	}
	if !key.IsValid() {
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}

	next := s.settings.Clone()
	if err := applySetting(&next, key, value); err != nil {
		return err
	}
	if err := s.persist(next, key); err != nil {
		return err
	}
	s.settings = next
	return nil
}

// Creator returns the agent described by the creator settings. The creator
// URL is the agent's url and gains an "http://" prefix when it lacks a scheme.
func (s *SettingsService) Creator() domain.Agent {
	settings := s.Get()

	agent := domain.Agent{
		PrefLabel: domain.LanguageMap{settings.Language(): settings.Creator},
	}
	if url := settings.CreatorURL; url != "" {
		if !strings.HasPrefix(url, "http") {
			url = "http://" + url
		}
		agent.URL = url
	}
	return agent
}

// persist writes one setting from settings into the config store.
func (s *SettingsService) persist(settings domain.EditorSettings, key domain.SettingKey) error {
	storeKey := settingStoreKey(key)

	value, err := encodeSetting(settings, key)
	if err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	if value == nil {
		if err := s.configStore.Delete(storeKey); err != nil {
			return fmt.Errorf("save %s: %w", key, err)
		}
		return nil
	}
	if err := s.configStore.Set(storeKey, value); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// encodeSetting returns the store representation of one setting. Maps are
// stored as JSON strings. A nil result means the key should be absent.
func encodeSetting(settings domain.EditorSettings, key domain.SettingKey) (any, error) {
	switch key {
	case domain.SettingCreator:
		return settings.Creator, nil
	case domain.SettingCreatorURL:
		return settings.CreatorURL, nil
	case domain.SettingLocale:
		return settings.Locale, nil
	case domain.SettingMappingBrowserProvider:
		return encodeJSON(settings.MappingBrowserProvider)
	case domain.SettingMappingBrowserShowRegistry:
		return encodeJSON(settings.MappingBrowserShowRegistry)
	case domain.SettingMinimized:
		return encodeJSON(settings.Minimized)
	case domain.SettingFlex:
		return encodeJSON(settings.Flex)
	case domain.SettingTypesForSchemes:
		return encodeJSON(settings.TypesForSchemes)
	case domain.SettingFavoriteSchemes:
		if settings.FavoriteSchemes == nil {
			return nil, nil
		}
		return append([]string{}, settings.FavoriteSchemes...), nil
	}
	if field := boolField(&settings, key); field != nil {
		return *field, nil
	}
	return nil, fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
}

func encodeJSON(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// applySetting converts value and assigns it to the field named by key.
// The field is left untouched when the value does not convert.
func applySetting(settings *domain.EditorSettings, key domain.SettingKey, value any) error {
	var err error
	switch key {
	case domain.SettingCreator:
		err = assign(&settings.Creator, value, toString)
	case domain.SettingCreatorURL:
		err = assign(&settings.CreatorURL, value, toString)
	case domain.SettingLocale:
		err = assign(&settings.Locale, value, toString)
	case domain.SettingMappingBrowserProvider:
		err = decodeInto(value, &settings.MappingBrowserProvider)
	case domain.SettingMappingBrowserShowRegistry:
		err = decodeInto(value, &settings.MappingBrowserShowRegistry)
	case domain.SettingMinimized:
		err = decodeInto(value, &settings.Minimized)
	case domain.SettingFlex:
		err = decodeInto(value, &settings.Flex)
	case domain.SettingTypesForSchemes:
		err = decodeInto(value, &settings.TypesForSchemes)
	case domain.SettingFavoriteSchemes:
		err = assign(&settings.FavoriteSchemes, value, toStringSlice)
	default:
		field := boolField(settings, key)
		if field == nil {
			return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
		}
		err = assign(field, value, toBool)
	}
	if err != nil {
		return fmt.Errorf("%w: setting %s: %v", domain.ErrInvalidInput, key, err)
	}
	return nil
}

func assign[T any](dst *T, value any, convert func(any) (T, error)) error {
	converted, err := convert(value)
	if err != nil {
		return err
	}
	*dst = converted
	return nil
}

func boolField(settings *domain.EditorSettings, key domain.SettingKey) *bool {
	switch key {
	case domain.SettingMappingBrowserAllSchemes:
		return &settings.MappingBrowserAllSchemes
	case domain.SettingMappingBrowserOnlyLocal:
		return &settings.MappingBrowserOnlyLocal
	case domain.SettingMappingBrowserShowReverse:
		return &settings.MappingBrowserShowReverse
	case domain.SettingConceptDetailShowAllAncestors:
		return &settings.ConceptDetailShowAllAncestors
	case domain.SettingConceptDetailDoNotTruncate:
		return &settings.ConceptDetailDoNotTruncateNotes
	case domain.SettingMappingBrowserLocal:
		return &settings.MappingBrowserLocal
	case domain.SettingMappingBrowserCatalog:
		return &settings.MappingBrowserCatalog
	case domain.SettingMappingBrowserShowAll:
		return &settings.MappingBrowserShowAll
	case domain.SettingAutoInsertLabels:
		return &settings.AutoInsertLabels
	case domain.SettingMappingEditorClearOnSave:
		return &settings.MappingEditorClearOnSave
	default:
		return nil
	}
}

func toString(value any) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("expected string, got %T", value)
	}
	return s, nil
}

func toBool(value any) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		return strconv.ParseBool(strings.TrimSpace(v))
	default:
		return false, fmt.Errorf("expected bool, got %T", value)
	}
}

// toStringSlice accepts []string, a decoded []any of strings, or a comma
// separated string. Nil stays nil.
func toStringSlice(value any) ([]string, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case []string:
		return append([]string{}, v...), nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("expected string list entry, got %T", item)
			}
			out = append(out, s)
		}
		return out, nil
	case string:
		out := []string{}
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected string list, got %T", value)
	}
}

// decodeInto assigns a map-valued setting. A string is parsed as JSON; any
// other value is round-tripped through JSON so decoded config trees and
// typed maps are handled alike.
func decodeInto[T any](value any, dst *T) error {
	var data []byte
	switch v := value.(type) {
	case string:
		data = []byte(v)
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return err
		}
		data = encoded
	}
	var decoded T
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*dst = decoded
	return nil
}
