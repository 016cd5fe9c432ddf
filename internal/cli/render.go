package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/hanzideck/hanzideck/internal/deck"
)

// RenderCollections writes the sorted collection list.
func RenderCollections(w io.Writer, collections []*deck.Collection) {
	if len(collections) == 0 {
		fmt.Fprintln(w, "No collections.")
		return
	}

	bold := color.New(color.Bold)
	for _, collection := range collections {
		_, _ = bold.Fprintf(w, "%s", collection.Name)
		fmt.Fprintf(w, " (%d)\n", len(collection.Cards))
		fmt.Fprintf(w, "  %s\n", collection.Description)
	}
}

// RenderCards writes a collection's cards in insertion order.
func RenderCards(w io.Writer, collection *deck.Collection) {
	bold := color.New(color.Bold)
	_, _ = bold.Fprintf(w, "%s", collection.Name)
	fmt.Fprintf(w, " — %s\n", collection.Description)

	if len(collection.Cards) == 0 {
		fmt.Fprintln(w, "No cards in this collection.")
		return
	}
	for _, card := range collection.Cards {
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\n", card.Character, card.Pinyin, card.Palladius, card.Translation)
	}
}

// RenderSearchResults writes search matches with their owning collections.
func RenderSearchResults(w io.Writer, results []deck.SearchResult) {
	if len(results) == 0 {
		fmt.Fprintln(w, "Nothing found.")
		return
	}

	bold := color.New(color.Bold)
	for _, result := range results {
		card := result.Card
		_, _ = bold.Fprintf(w, "%s", card.Character)
		fmt.Fprintf(w, "  %s — %s", card.Pinyin, card.Translation)
		fmt.Fprintf(w, "  [%s]\n", result.CollectionName)
	}
}
