package core

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/require"

	"github.com/hashsdn/hashsdn-yangtools/internal/types"
)

func TestNamespaceStoreWriteOnce(t *testing.T) {
	store := newNamespaceStore()
	require.NoError(t, store.add(types.NamespaceModule, "foo", 1))

	err := store.add(types.NamespaceModule, "foo", 1)
	require.Error(t, err)
	require.Equal(t, errbuilder.CodeAlreadyExists, errbuilder.CodeOf(err))
	require.ErrorContains(t, err, "duplicate namespace write")

	// Same key under another partition is a different slot.
	require.NoError(t, store.add(types.NamespacePrefix, "foo", 2))
}

func TestNamespaceStoreAbsenceIsNotAnError(t *testing.T) {
	store := newNamespaceStore()
	value, ok := store.get(types.NamespaceModule, "missing")
	require.False(t, ok)
	require.Nil(t, value)
}

func TestNamespaceStoreKeysKeepInsertionOrder(t *testing.T) {
	store := newNamespaceStore()
	for _, key := range []string{"zulu", "alpha", "mike"} {
		require.NoError(t, store.add(types.NamespaceModule, key, key))
	}
	require.NoError(t, store.add(types.NamespacePrefix, "other", "other"))
	require.Equal(t, []string{"zulu", "alpha", "mike"}, store.keys(types.NamespaceModule))
}
