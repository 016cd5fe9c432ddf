// Package testutil provides shared test helpers for config files and store
// fixtures.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hanzideck/hanzideck/internal/dataset"
	"github.com/hanzideck/hanzideck/internal/deck"
)

// SetupTestConfig creates a minimal offline config file for testing and
// returns its path.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()

	configContent := fmt.Sprintf(`datasets:
  offline: true
decks:
  file: %s
quiz:
  advance_delay: 1ms
`,
		filepath.Join(tmpDir, "decks.yml"),
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// NewSampleStore returns a store populated from the embedded sample
// datasets.
func NewSampleStore(t *testing.T) *deck.Store {
	t.Helper()

	store, err := deck.NewStore()
	require.NoError(t, err)
	require.NoError(t, dataset.PopulateFromSamples(store))
	return store
}

// NewTestCollection adds a custom collection with count generated cards to
// the store. Cards are distinct in every field.
func NewTestCollection(t *testing.T, store *deck.Store, name string, count int) *deck.Collection {
	t.Helper()

	collection, err := store.CreateCollection(name, "test collection")
	require.NoError(t, err)
	for i := 0; i < count; i++ {
		_, err := store.AddCard(collection.ID, deck.CardInput{
			Character:   fmt.Sprintf("字%d", i),
			Pinyin:      fmt.Sprintf("zi%d", i),
			Palladius:   fmt.Sprintf("цзы%d", i),
			Translation: fmt.Sprintf("знак %d", i),
		})
		require.NoError(t, err)
	}
	return collection
}
