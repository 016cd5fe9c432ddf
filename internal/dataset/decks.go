package dataset

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hanzideck/hanzideck/internal/deck"
)

// CustomDeck is one user-defined collection read from the decks file.
type CustomDeck struct {
	Name        string           `yaml:"name"`
	Description string           `yaml:"description"`
	Cards       []CustomDeckCard `yaml:"cards"`
}

type CustomDeckCard struct {
	Character   string `yaml:"character"`
	Pinyin      string `yaml:"pinyin"`
	Palladius   string `yaml:"palladius"`
	Translation string `yaml:"translation"`
}

// ReadCustomDecks loads user-defined decks from a YAML file. A missing file
// is not an error; a path of "" disables the feature.
func ReadCustomDecks(path string) ([]CustomDeck, error) {
	if path == "" {
		return nil, nil
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("os.ReadFile(%s) > %w", path, err)
	}

	var decks []CustomDeck
	if err := yaml.Unmarshal(contents, &decks); err != nil {
		return nil, fmt.Errorf("%w: yaml.Unmarshal(%s) > %w", ErrImport, path, err)
	}
	return decks, nil
}

// PopulateCustomDecks appends user-defined decks to the store as custom
// collections. Invalid cards are skipped with a warning so that one bad entry
// does not drop the whole deck.
func PopulateCustomDecks(store *deck.Store, decks []CustomDeck) error {
	for _, customDeck := range decks {
		collection, err := store.CreateCollection(customDeck.Name, customDeck.Description)
		if err != nil {
			var validationErr deck.ValidationError
			if errors.As(err, &validationErr) {
				slog.Warn("skipping custom deck", "name", customDeck.Name, "error", err)
				continue
			}
			return fmt.Errorf("store.CreateCollection(%s) > %w", customDeck.Name, err)
		}

		for _, card := range customDeck.Cards {
			input := deck.CardInput{
				Character:   card.Character,
				Pinyin:      card.Pinyin,
				Palladius:   card.Palladius,
				Translation: card.Translation,
			}
			if _, err := store.AddCard(collection.ID, input); err != nil {
				var validationErr deck.ValidationError
				if errors.As(err, &validationErr) {
					slog.Warn("skipping custom deck card",
						"deck", customDeck.Name,
						"character", card.Character,
						"error", err)
					continue
				}
				return fmt.Errorf("store.AddCard > %w", err)
			}
		}
	}
	return nil
}
