package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/custodia-labs/skosmap/internal/core/domain"
	"github.com/custodia-labs/skosmap/internal/core/ports/driven"
)

// Ensure mappingStore implements the interface.
var _ driven.MappingStore = (*mappingStore)(nil)

// mappingStore implements driven.MappingStore on the shared database.
type mappingStore struct {
	store *Store
}

// Save upserts a mapping and replaces its member rows. Updates keep the
// original insertion position.
func (m *mappingStore) Save(ctx context.Context, mapping domain.Mapping) error {
	if mapping.URI == "" {
		return fmt.Errorf("%w: mapping has no URI", domain.ErrInvalidInput)
	}

	data, err := json.Marshal(mapping)
	if err != nil {
		return fmt.Errorf("marshalling mapping: %w", err)
	}

	tx, err := m.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	_, err = tx.ExecContext(ctx, `
		INSERT INTO mappings (uri, from_scheme, to_scheme, content_id, members_id, created, modified, data)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(uri) DO UPDATE SET
			from_scheme = excluded.from_scheme,
			to_scheme = excluded.to_scheme,
			content_id = excluded.content_id,
			members_id = excluded.members_id,
			created = excluded.created,
			modified = excluded.modified,
			data = excluded.data
	`,
		mapping.URI,
		schemeURI(mapping.FromScheme),
		schemeURI(mapping.ToScheme),
		domain.ContentIdentifier(mapping),
		domain.MembersIdentifier(mapping),
		mapping.Created,
		mapping.Modified,
		string(data),
	)
	if err != nil {
		return fmt.Errorf("saving mapping: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM mapping_members WHERE mapping_uri = ?", mapping.URI); err != nil {
		return fmt.Errorf("clearing mapping members: %w", err)
	}
	for side, bundle := range map[string]domain.ConceptBundle{"from": mapping.From, "to": mapping.To} {
		for _, concept := range bundle.MemberSet {
			if concept.URI == "" {
				continue
			}
			_, err := tx.ExecContext(ctx, `
				INSERT OR IGNORE INTO mapping_members (mapping_uri, side, concept_uri)
				VALUES (?, ?, ?)
			`, mapping.URI, side, concept.URI)
			if err != nil {
				return fmt.Errorf("saving mapping member: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing mapping: %w", err)
	}
	return nil
}

// Get retrieves a mapping by URI.
func (m *mappingStore) Get(ctx context.Context, uri string) (*domain.Mapping, error) {
	var data string
	err := m.store.db.QueryRowContext(ctx, "SELECT data FROM mappings WHERE uri = ?", uri).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying mapping: %w", err)
	}

	mapping, err := decodeMapping(data)
	if err != nil {
		return nil, err
	}
	return &mapping, nil
}

// Delete removes a mapping and its member rows.
func (m *mappingStore) Delete(ctx context.Context, uri string) error {
	tx, err := m.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err := tx.ExecContext(ctx, "DELETE FROM mapping_members WHERE mapping_uri = ?", uri); err != nil {
		return fmt.Errorf("deleting mapping members: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM mappings WHERE uri = ?", uri); err != nil {
		return fmt.Errorf("deleting mapping: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing delete: %w", err)
	}
	return nil
}

// List returns all mappings in insertion order.
func (m *mappingStore) List(ctx context.Context) ([]domain.Mapping, error) {
	return m.Query(ctx, domain.MappingQuery{})
}

// Query returns the mappings matching the query in insertion order.
// Concept filters narrow the candidate rows in SQL; the query itself
// decides the final match.
func (m *mappingStore) Query(ctx context.Context, query domain.MappingQuery) ([]domain.Mapping, error) {
	stmt := "SELECT data FROM mappings"
	var args []any

	var concepts []string
	for _, uri := range []string{query.From, query.To} {
		if uri != "" {
			concepts = append(concepts, uri)
		}
	}
	if len(concepts) > 0 {
		placeholders := strings.TrimSuffix(strings.Repeat("?,", len(concepts)), ",")
		stmt += " WHERE uri IN (SELECT mapping_uri FROM mapping_members WHERE concept_uri IN (" + placeholders + "))"
		for _, uri := range concepts {
			args = append(args, uri)
		}
	}
	stmt += " ORDER BY seq"

	rows, err := m.store.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("querying mappings: %w", err)
	}
	defer rows.Close()

	result := []domain.Mapping{}
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("scanning mapping: %w", err)
		}
		mapping, err := decodeMapping(data)
		if err != nil {
			return nil, err
		}
		if !query.Matches(mapping) {
			continue
		}
		result = append(result, mapping)
		if query.Limit > 0 && len(result) >= query.Limit {
			break
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating mappings: %w", err)
	}
	return result, nil
}

func decodeMapping(data string) (domain.Mapping, error) {
	var mapping domain.Mapping
	if err := json.Unmarshal([]byte(data), &mapping); err != nil {
		return domain.Mapping{}, fmt.Errorf("decoding mapping: %w", err)
	}
	if mapping.From.MemberSet == nil {
		mapping.From.MemberSet = []domain.Concept{}
	}
	if mapping.To.MemberSet == nil {
		mapping.To.MemberSet = []domain.Concept{}
	}
	return mapping, nil
}

func schemeURI(scheme *domain.Scheme) string {
	if scheme == nil {
		return ""
	}
	return scheme.URI
}
