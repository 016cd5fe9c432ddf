package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hanzideck/hanzideck/internal/config"
	"github.com/hanzideck/hanzideck/internal/dataset"
	"github.com/hanzideck/hanzideck/internal/deck"
	"github.com/hanzideck/hanzideck/internal/quiz"
)

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// buildStore runs the import pipeline: built-in datasets (with fallback to
// embedded samples), then user-defined decks from the decks file.
func buildStore(ctx context.Context, cfg *config.Config) (*deck.Store, error) {
	store, err := deck.NewStore()
	if err != nil {
		return nil, fmt.Errorf("deck.NewStore() > %w", err)
	}

	if cfg.Datasets.Offline {
		if err := dataset.PopulateFromSamples(store); err != nil {
			return nil, fmt.Errorf("dataset.PopulateFromSamples() > %w", err)
		}
	} else {
		fetcher := dataset.NewHTTPFetcher(
			cfg.Datasets.HSK1URL,
			cfg.Datasets.KangxiURL,
			cfg.Datasets.FetchTimeout,
			cfg.Datasets.RetryAttempts,
		)
		if err := dataset.NewLoader(fetcher).Populate(ctx, store); err != nil {
			return nil, fmt.Errorf("loader.Populate() > %w", err)
		}
	}

	decks, err := dataset.ReadCustomDecks(cfg.Decks.File)
	if err != nil {
		// A broken decks file must not take the application down.
		if !errors.Is(err, dataset.ErrImport) {
			return nil, fmt.Errorf("dataset.ReadCustomDecks(%s) > %w", cfg.Decks.File, err)
		}
		slog.Warn("ignoring malformed decks file", "path", cfg.Decks.File, "error", err)
	}
	if err := dataset.PopulateCustomDecks(store, decks); err != nil {
		return nil, fmt.Errorf("dataset.PopulateCustomDecks() > %w", err)
	}

	return store, nil
}

func quizOptions(cfg *config.Config) quiz.Options {
	return quiz.Options{
		OptionCount:  cfg.Quiz.OptionCount,
		AdvanceDelay: cfg.Quiz.AdvanceDelay,
	}
}

// findCollection resolves a collection by its display name.
func findCollection(store *deck.Store, name string) (*deck.Collection, error) {
	collection, ok := store.FindByName(name)
	if !ok {
		return nil, fmt.Errorf("collection %q not found", name)
	}
	return collection, nil
}
