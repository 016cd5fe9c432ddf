package dataset

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hanzideck/hanzideck/internal/deck"
)

// ErrImport marks a dataset that could not be fetched or decoded. The loader
// always recovers from it by substituting the embedded samples; it is logged,
// never returned to the caller.
var ErrImport = errors.New("dataset import failed")

// Loader runs the import pipeline against a store.
type Loader struct {
	fetcher Fetcher
}

func NewLoader(fetcher Fetcher) *Loader {
	return &Loader{fetcher: fetcher}
}

// Populate fetches both datasets and fills the store with the resulting
// collections. If either fetch fails the whole fetch result is discarded and
// both importers run against the embedded samples instead, so the store is
// never left empty.
func (l *Loader) Populate(ctx context.Context, store *deck.Store) error {
	hsk1, kangxi, err := l.fetchPayloads(ctx)
	if err != nil {
		slog.Warn("falling back to embedded sample datasets", "error", err)
		return PopulateFromSamples(store)
	}

	insertPayloads(store, hsk1, kangxi)
	return nil
}

// PopulateFromSamples fills the store from the embedded sample datasets
// without touching the network.
func PopulateFromSamples(store *deck.Store) error {
	hsk1, kangxi, err := SamplePayloads()
	if err != nil {
		return fmt.Errorf("SamplePayloads() > %w", err)
	}
	insertPayloads(store, hsk1, kangxi)
	return nil
}

func insertPayloads(store *deck.Store, hsk1 HSK1Payload, kangxi KangxiPayload) {
	for _, collection := range BuildHSK1Collections(hsk1) {
		store.Insert(collection)
	}
	for _, collection := range BuildKangxiCollections(kangxi) {
		store.Insert(collection)
	}
}

func (l *Loader) fetchPayloads(ctx context.Context) (HSK1Payload, KangxiPayload, error) {
	hsk1, err := l.fetcher.FetchHSK1(ctx)
	if err != nil {
		return HSK1Payload{}, KangxiPayload{}, fmt.Errorf("%w: fetcher.FetchHSK1 > %w", ErrImport, err)
	}

	kangxi, err := l.fetcher.FetchKangxi(ctx)
	if err != nil {
		return HSK1Payload{}, KangxiPayload{}, fmt.Errorf("%w: fetcher.FetchKangxi > %w", ErrImport, err)
	}

	return hsk1, kangxi, nil
}
