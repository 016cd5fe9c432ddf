package dataset

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hanzideck/hanzideck/internal/deck"
)

func TestBuildHSK1Collections(t *testing.T) {
	payload := HSK1Payload{
		Vocabulary: map[string][]HSK1Entry{
			"numbers": {
				{Character: "一", Pinyin: "yī", Palladius: "и", Translation: "один"},
				{Character: "二", Pinyin: "èr", Palladius: "эр", Translation: "два"},
			},
			"verbs": {
				{Character: "吃", Pinyin: "chī", Palladius: "чи", Translation: "есть"},
			},
			"unknown_category": {
				{Character: "х", Pinyin: "x", Palladius: "х", Translation: "x"},
			},
			"family": {},
		},
	}

	collections := BuildHSK1Collections(payload)

	// Two themed collections plus the aggregate; unknown and empty
	// categories produce nothing.
	require.Len(t, collections, 3)

	numbers := collections[0]
	assert.Equal(t, "Числа", numbers.Name)
	assert.Equal(t, "HSK 1: Числа", numbers.Description)
	assert.Equal(t, deck.TypeHSK1, numbers.Type)
	assert.True(t, numbers.IsEditable)
	require.Len(t, numbers.Cards, 2)
	assert.Equal(t, "一", numbers.Cards[0].Character)
	assert.Equal(t, "и", numbers.Cards[0].Palladius)

	verbs := collections[1]
	assert.Equal(t, "Глаголы", verbs.Name)
	require.Len(t, verbs.Cards, 1)

	aggregate := collections[2]
	assert.Equal(t, "Все HSK 1", aggregate.Name)
	assert.Equal(t, deck.TypeHSK1All, aggregate.Type)
	assert.Equal(t, "Все иероглифы уровня HSK 1 (3 карточек)", aggregate.Description)
	assert.Len(t, aggregate.Cards, len(numbers.Cards)+len(verbs.Cards))
}

func TestBuildHSK1Collections_Empty(t *testing.T) {
	collections := BuildHSK1Collections(HSK1Payload{})
	assert.Empty(t, collections)
}

func TestBuildKangxiCollections(t *testing.T) {
	payload := KangxiPayload{
		Radicals: map[string][]KangxiEntry{
			"1_stroke": {
				{Radical: "一", Pinyin: "yī", Meaning: "один", Number: 1},
				{Radical: "丨", Pinyin: "gǔn", Meaning: "вертикальная черта", Number: 2},
			},
			"2_strokes": {
				{Radical: "人", Pinyin: "rén", Meaning: "человек", Number: 9},
			},
			"3_strokes": {
				{Radical: "口", Pinyin: "kǒu", Meaning: "рот", Number: 30},
			},
		},
	}

	collections := BuildKangxiCollections(payload)

	// Only the two known buckets are imported.
	require.Len(t, collections, 3)

	oneStroke := collections[0]
	assert.Equal(t, "Ключи: 1 черта", oneStroke.Name)
	assert.Equal(t, "Ключи Канси с 1 черта", oneStroke.Description)
	assert.Equal(t, deck.TypeKangxi, oneStroke.Type)
	require.Len(t, oneStroke.Cards, 2)

	first := oneStroke.Cards[0]
	assert.Equal(t, "一", first.Character)
	assert.Equal(t, "yī", first.Pinyin)
	// Radicals have no separate transliteration; pinyin doubles as
	// palladius and the radical number lands in the translation.
	assert.Equal(t, "yī", first.Palladius)
	assert.Equal(t, "один (ключ 1)", first.Translation)

	twoStrokes := collections[1]
	assert.Equal(t, "Ключи: 2 черты", twoStrokes.Name)
	require.Len(t, twoStrokes.Cards, 1)

	aggregate := collections[2]
	assert.Equal(t, "Все ключи Канси", aggregate.Name)
	assert.Equal(t, deck.TypeKangxiAll, aggregate.Type)
	assert.Equal(t, "Все загруженные ключи Канси (3 карточек)", aggregate.Description)
	assert.Len(t, aggregate.Cards, 3)
}

func TestSamplePayloads(t *testing.T) {
	hsk1, kangxi, err := SamplePayloads()
	require.NoError(t, err)

	wantCategoryCounts := map[string]int{
		"numbers":        10,
		"pronouns":       6,
		"verbs":          9,
		"family":         4,
		"common_phrases": 4,
	}
	require.Len(t, hsk1.Vocabulary, len(wantCategoryCounts))
	for category, want := range wantCategoryCounts {
		assert.Len(t, hsk1.Vocabulary[category], want, category)
	}

	require.Len(t, kangxi.Radicals, 1)
	assert.Len(t, kangxi.Radicals["1_stroke"], 5)
}

func TestSamplePayloads_ImportCounts(t *testing.T) {
	hsk1, kangxi, err := SamplePayloads()
	require.NoError(t, err)

	hsk1Collections := BuildHSK1Collections(hsk1)
	require.NotEmpty(t, hsk1Collections)

	// The aggregate holds exactly the sum of the themed collections.
	aggregate := hsk1Collections[len(hsk1Collections)-1]
	require.Equal(t, deck.TypeHSK1All, aggregate.Type)
	sum := 0
	for _, collection := range hsk1Collections[:len(hsk1Collections)-1] {
		require.Equal(t, deck.TypeHSK1, collection.Type)
		sum += len(collection.Cards)
	}
	assert.Equal(t, sum, len(aggregate.Cards))
	assert.Equal(t, 33, len(aggregate.Cards))
	assert.Equal(t, fmt.Sprintf("Все иероглифы уровня HSK 1 (%d карточек)", sum), aggregate.Description)

	kangxiCollections := BuildKangxiCollections(kangxi)
	require.Len(t, kangxiCollections, 2)
	assert.Len(t, kangxiCollections[1].Cards, 5)
}
