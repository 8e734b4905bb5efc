package core

import (
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"github.com/hashsdn/hashsdn-yangtools/internal/types"
)

// nsKey addresses one entry within a namespace store.
type nsKey struct {
	kind types.NamespaceKind
	key  string
}

// namespaceStore is an insertion-ordered, write-once keyed mapping.
// One store instance backs either the global scope or one source's
// local scope; the partition's declared scope decides which store a
// write lands in.
type namespaceStore struct {
	entries map[nsKey]any
	order   []nsKey
}

func newNamespaceStore() *namespaceStore {
	return &namespaceStore{entries: map[nsKey]any{}}
}

// add inserts a value under (kind, key). A second write to the same
// slot is a defect in a statement support, never valid user input.
func (s *namespaceStore) add(kind types.NamespaceKind, key string, value any) error {
	slot := nsKey{kind: kind, key: key}
	if _, ok := s.entries[slot]; ok {
		return errbuilder.New().
			WithCode(errbuilder.CodeAlreadyExists).
			WithMsg(fmt.Sprintf("duplicate namespace write: partition %q key %q already populated", kind, key))
	}
	s.entries[slot] = value
	s.order = append(s.order, slot)
	return nil
}

// get returns the value at (kind, key). Absence is expected during
// early phases and is not an error.
func (s *namespaceStore) get(kind types.NamespaceKind, key string) (any, bool) {
	value, ok := s.entries[nsKey{kind: kind, key: key}]
	return value, ok
}

// keys returns the keys of one partition in insertion order.
func (s *namespaceStore) keys(kind types.NamespaceKind) []string {
	var out []string
	for _, slot := range s.order {
		if slot.kind == kind {
			out = append(out, slot.key)
		}
	}
	return out
}
