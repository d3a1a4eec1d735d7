package domain

import (
	"crypto/sha1" //nolint:gosec // fingerprint format, not a security boundary
	"encoding/hex"
	"encoding/json"
	"sort"
	"strings"
)

// Identifier prefixes for derived mapping fingerprints.
const (
	ContentIdentifierPrefix = "urn:jskos:mapping:content:"
	MembersIdentifierPrefix = "urn:jskos:mapping:members:"
)

type identifierMember struct {
	URI string `json:"uri"`
}

type identifierBundle struct {
	MemberSet []identifierMember `json:"memberSet"`
}

// identifierContent is serialised with keys in lexical order: from, to, type.
type identifierContent struct {
	From *identifierBundle `json:"from,omitempty"`
	To   *identifierBundle `json:"to,omitempty"`
	Type []string          `json:"type"`
}

func reduceBundle(b ConceptBundle) *identifierBundle {
	if len(b.MemberSet) == 0 {
		return nil
	}
	out := &identifierBundle{MemberSet: make([]identifierMember, len(b.MemberSet))}
	for i, c := range b.MemberSet {
		out.MemberSet[i] = identifierMember{URI: c.URI}
	}
	return out
}

func sha1Hex(data []byte) string {
	sum := sha1.Sum(data) //nolint:gosec // see import
	return hex.EncodeToString(sum[:])
}

// ContentIdentifier fingerprints the concepts of both sides and the mapping type.
func ContentIdentifier(m Mapping) string {
	content := identifierContent{
		From: reduceBundle(m.From),
		To:   reduceBundle(m.To),
		Type: []string{m.PrimaryType()},
	}
	data, _ := json.Marshal(content) //nolint:errchkjson // plain structs of strings
	return ContentIdentifierPrefix + sha1Hex(data)
}

// MembersIdentifier fingerprints the set of member URIs regardless of side and type.
func MembersIdentifier(m Mapping) string {
	uris := make([]string, 0, len(m.From.MemberSet)+len(m.To.MemberSet))
	for _, c := range m.Members() {
		uris = append(uris, c.URI)
	}
	sort.Strings(uris)
	data, _ := json.Marshal(uris) //nolint:errchkjson // slice of strings
	return MembersIdentifierPrefix + sha1Hex(data)
}

// AddIdentifiers returns a copy of the mapping with fresh content and members
// identifiers. Identifiers of other kinds are kept in their original order.
func (m Mapping) AddIdentifiers() Mapping {
	out := m.Clone()
	kept := make([]string, 0, len(m.Identifier)+2)
	for _, id := range m.Identifier {
		if strings.HasPrefix(id, ContentIdentifierPrefix) || strings.HasPrefix(id, MembersIdentifierPrefix) {
			continue
		}
		kept = append(kept, id)
	}
	out.Identifier = append(kept, ContentIdentifier(m), MembersIdentifier(m))
	return out
}

// HasIdentifier reports whether the mapping carries the identifier.
func (m Mapping) HasIdentifier(id string) bool {
	for _, existing := range m.Identifier {
		if existing == id {
			return true
		}
	}
	return false
}
