package dataset

import (
	"fmt"

	"github.com/hanzideck/hanzideck/internal/deck"
)

// hsk1Categories maps dataset category keys to Russian collection names, in
// display order. Keys outside this table are ignored.
var hsk1Categories = []struct {
	key  string
	name string
}{
	{"numbers", "Числа"},
	{"pronouns", "Местоимения"},
	{"family", "Семья"},
	{"time", "Время"},
	{"places", "Места"},
	{"people", "Люди"},
	{"food_drinks", "Еда и напитки"},
	{"verbs", "Глаголы"},
	{"adjectives", "Прилагательные"},
	{"objects", "Предметы"},
	{"transport_animals", "Транспорт и животные"},
	{"common_phrases", "Фразы"},
	{"particles_adverbs", "Частицы и наречия"},
	{"measure_words", "Счётные слова"},
}

// kangxiBuckets maps stroke-count bucket keys to Russian names, in display
// order.
var kangxiBuckets = []struct {
	key  string
	name string
}{
	{"1_stroke", "1 черта"},
	{"2_strokes", "2 черты"},
}

// BuildHSK1Collections creates one themed collection per known non-empty
// category plus an aggregate collection holding every produced card.
func BuildHSK1Collections(payload HSK1Payload) []*deck.Collection {
	var collections []*deck.Collection
	var allCards []deck.Card

	for _, category := range hsk1Categories {
		entries := payload.Vocabulary[category.key]
		if len(entries) == 0 {
			continue
		}

		cards := make([]deck.Card, 0, len(entries))
		for _, entry := range entries {
			cards = append(cards, deck.Card{
				ID:          deck.NewID(),
				Character:   entry.Character,
				Pinyin:      entry.Pinyin,
				Palladius:   entry.Palladius,
				Translation: entry.Translation,
			})
		}

		collections = append(collections, &deck.Collection{
			ID:          deck.NewID(),
			Name:        category.name,
			Description: fmt.Sprintf("HSK 1: %s", category.name),
			Cards:       cards,
			Type:        deck.TypeHSK1,
			IsEditable:  true,
		})
		allCards = append(allCards, cards...)
	}

	if len(allCards) > 0 {
		collections = append(collections, &deck.Collection{
			ID:          deck.NewID(),
			Name:        "Все HSK 1",
			Description: fmt.Sprintf("Все иероглифы уровня HSK 1 (%d карточек)", len(allCards)),
			Cards:       append([]deck.Card{}, allCards...),
			Type:        deck.TypeHSK1All,
			IsEditable:  true,
		})
	}

	return collections
}

// BuildKangxiCollections creates one collection per known non-empty stroke
// bucket plus an aggregate collection. Radicals carry no separate Cyrillic
// transliteration, so pinyin doubles as palladius, and the radical number is
// folded into the translation.
func BuildKangxiCollections(payload KangxiPayload) []*deck.Collection {
	var collections []*deck.Collection
	var allCards []deck.Card

	for _, bucket := range kangxiBuckets {
		entries := payload.Radicals[bucket.key]
		if len(entries) == 0 {
			continue
		}

		cards := make([]deck.Card, 0, len(entries))
		for _, entry := range entries {
			cards = append(cards, deck.Card{
				ID:          deck.NewID(),
				Character:   entry.Radical,
				Pinyin:      entry.Pinyin,
				Palladius:   entry.Pinyin,
				Translation: fmt.Sprintf("%s (ключ %d)", entry.Meaning, entry.Number),
			})
		}

		collections = append(collections, &deck.Collection{
			ID:          deck.NewID(),
			Name:        fmt.Sprintf("Ключи: %s", bucket.name),
			Description: fmt.Sprintf("Ключи Канси с %s", bucket.name),
			Cards:       cards,
			Type:        deck.TypeKangxi,
			IsEditable:  true,
		})
		allCards = append(allCards, cards...)
	}

	if len(allCards) > 0 {
		collections = append(collections, &deck.Collection{
			ID:          deck.NewID(),
			Name:        "Все ключи Канси",
			Description: fmt.Sprintf("Все загруженные ключи Канси (%d карточек)", len(allCards)),
			Cards:       append([]deck.Card{}, allCards...),
			Type:        deck.TypeKangxiAll,
			IsEditable:  true,
		})
	}

	return collections
}
