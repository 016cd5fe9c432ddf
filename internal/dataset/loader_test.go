package dataset_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hanzideck/hanzideck/internal/dataset"
	"github.com/hanzideck/hanzideck/internal/deck"
	mock_dataset "github.com/hanzideck/hanzideck/internal/mocks/dataset"
)

func TestLoader_Populate(t *testing.T) {
	hsk1 := dataset.HSK1Payload{
		Vocabulary: map[string][]dataset.HSK1Entry{
			"numbers": {
				{Character: "一", Pinyin: "yī", Palladius: "и", Translation: "один"},
			},
		},
	}
	kangxi := dataset.KangxiPayload{
		Radicals: map[string][]dataset.KangxiEntry{
			"1_stroke": {
				{Radical: "一", Pinyin: "yī", Meaning: "один", Number: 1},
			},
		},
	}

	tests := []struct {
		name            string
		setup           func(fetcher *mock_dataset.MockFetcher)
		wantCollections []string
	}{
		{
			name: "fetched datasets fill the store",
			setup: func(fetcher *mock_dataset.MockFetcher) {
				fetcher.EXPECT().FetchHSK1(gomock.Any()).Return(hsk1, nil)
				fetcher.EXPECT().FetchKangxi(gomock.Any()).Return(kangxi, nil)
			},
			wantCollections: []string{
				"Все HSK 1",
				"Числа",
				"Все ключи Канси",
				"Ключи: 1 черта",
			},
		},
		{
			name: "hsk1 fetch failure falls back to samples",
			setup: func(fetcher *mock_dataset.MockFetcher) {
				fetcher.EXPECT().FetchHSK1(gomock.Any()).
					Return(dataset.HSK1Payload{}, errors.New("connection refused"))
			},
		},
		{
			name: "kangxi fetch failure falls back to samples",
			setup: func(fetcher *mock_dataset.MockFetcher) {
				fetcher.EXPECT().FetchHSK1(gomock.Any()).Return(hsk1, nil)
				fetcher.EXPECT().FetchKangxi(gomock.Any()).
					Return(dataset.KangxiPayload{}, errors.New("connection refused"))
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			fetcher := mock_dataset.NewMockFetcher(ctrl)
			tc.setup(fetcher)

			store, err := deck.NewStore()
			require.NoError(t, err)
			require.NoError(t, dataset.NewLoader(fetcher).Populate(context.Background(), store))

			collections := store.ListCollectionsSorted()
			require.NotEmpty(t, collections, "a failed import must still leave the samples")
			if tc.wantCollections != nil {
				names := make([]string, 0, len(collections))
				for _, collection := range collections {
					names = append(names, collection.Name)
				}
				assert.Equal(t, tc.wantCollections, names)
			} else {
				// Sample fallback: both aggregates present.
				_, ok := store.FindByName("Все HSK 1")
				assert.True(t, ok)
				_, ok = store.FindByName("Все ключи Канси")
				assert.True(t, ok)
			}
		})
	}
}

func TestPopulateFromSamples(t *testing.T) {
	store, err := deck.NewStore()
	require.NoError(t, err)
	require.NoError(t, dataset.PopulateFromSamples(store))

	aggregate, ok := store.FindByName("Все HSK 1")
	require.True(t, ok)
	assert.Len(t, aggregate.Cards, 33)

	radicals, ok := store.FindByName("Ключи: 1 черта")
	require.True(t, ok)
	assert.Len(t, radicals.Cards, 5)
}
