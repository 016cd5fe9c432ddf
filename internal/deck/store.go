package deck

import (
	"fmt"
	"sort"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
)

// DefaultCustomDescription is used when a collection is created without a
// description.
const DefaultCustomDescription = "Пользовательская коллекция"

// Store holds every collection for the lifetime of the process. It is
// populated once by the dataset importers and mutated only by user commands
// afterwards. A single goroutine drives all mutations; the store is not safe
// for concurrent use.
type Store struct {
	collections map[string]*Collection
	order       []string

	validate *validator.Validate
	trans    ut.Translator
}

func NewStore() (*Store, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("newValidator() > %w", err)
	}
	return &Store{
		collections: make(map[string]*Collection),
		validate:    validate,
		trans:       trans,
	}, nil
}

// Insert adds an importer-built collection to the store.
func (s *Store) Insert(c *Collection) {
	if _, ok := s.collections[c.ID]; !ok {
		s.order = append(s.order, c.ID)
	}
	s.collections[c.ID] = c
}

// CreateCollection creates an empty custom collection. The name is required;
// a blank description falls back to DefaultCustomDescription.
func (s *Store) CreateCollection(name, description string) (*Collection, error) {
	name = strings.TrimSpace(name)
	input := struct {
		Name string `validate:"required"`
	}{Name: name}
	if err := validateStruct(s.validate, s.trans, input); err != nil {
		return nil, err
	}

	description = strings.TrimSpace(description)
	if description == "" {
		description = DefaultCustomDescription
	}

	collection := &Collection{
		ID:          NewID(),
		Name:        name,
		Description: description,
		Cards:       []Card{},
		Type:        TypeCustom,
		IsEditable:  true,
	}
	s.Insert(collection)
	return collection, nil
}

// RenameCollection sets a new name on a collection. Missing ids and blank
// names make the call a no-op.
func (s *Store) RenameCollection(id, newName string) {
	collection, ok := s.collections[id]
	if !ok {
		return
	}
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return
	}
	collection.Name = newName
}

// DeleteCollection removes a collection and all of its cards. Deleting a
// missing id is a no-op.
func (s *Store) DeleteCollection(id string) {
	if _, ok := s.collections[id]; !ok {
		return
	}
	delete(s.collections, id)
	for i, orderedID := range s.order {
		if orderedID == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Get returns a collection by id.
func (s *Store) Get(id string) (*Collection, bool) {
	collection, ok := s.collections[id]
	return collection, ok
}

// FindByName returns the first collection with the given name, scanning in
// sorted order so the match is deterministic when names repeat.
func (s *Store) FindByName(name string) (*Collection, bool) {
	for _, collection := range s.ListCollectionsSorted() {
		if collection.Name == name {
			return collection, true
		}
	}
	return nil, false
}

// AddCard validates the input and appends a new card to the collection.
func (s *Store) AddCard(collectionID string, input CardInput) (Card, error) {
	collection, ok := s.collections[collectionID]
	if !ok {
		return Card{}, ErrCollectionNotFound
	}

	input = trimCardInput(input)
	if err := validateStruct(s.validate, s.trans, input); err != nil {
		return Card{}, err
	}

	card := Card{
		ID:          NewID(),
		Character:   input.Character,
		Pinyin:      input.Pinyin,
		Palladius:   input.Palladius,
		Translation: input.Translation,
	}
	collection.Cards = append(collection.Cards, card)
	return card, nil
}

// UpdateCard edits a card in place. Edits always happen from within a
// collection view, so the card is addressed through its owning collection
// rather than by a store-wide id scan.
func (s *Store) UpdateCard(collectionID, cardID string, input CardInput) error {
	collection, ok := s.collections[collectionID]
	if !ok {
		return ErrCollectionNotFound
	}

	input = trimCardInput(input)
	if err := validateStruct(s.validate, s.trans, input); err != nil {
		return err
	}

	i := collection.findCard(cardID)
	if i < 0 {
		return nil
	}
	card := &collection.Cards[i]
	card.Character = input.Character
	card.Pinyin = input.Pinyin
	card.Palladius = input.Palladius
	card.Translation = input.Translation
	return nil
}

// RemoveCard removes a card by id. Removing a missing card or collection is
// a no-op.
func (s *Store) RemoveCard(collectionID, cardID string) {
	collection, ok := s.collections[collectionID]
	if !ok {
		return
	}
	i := collection.findCard(cardID)
	if i < 0 {
		return
	}
	collection.Cards = append(collection.Cards[:i], collection.Cards[i+1:]...)
}

// ListCollectionsSorted returns every collection ordered by type rank and
// then by locale-aware name. The order is a pure function of the current
// store contents and is recomputed on every call.
func (s *Store) ListCollectionsSorted() []*Collection {
	collections := make([]*Collection, 0, len(s.collections))
	for _, id := range s.order {
		collections = append(collections, s.collections[id])
	}
	sort.SliceStable(collections, func(i, j int) bool {
		return lessCollections(collections[i], collections[j])
	})
	return collections
}

// CardPool returns every card across all collections, in insertion order of
// collections and cards. The quiz draws distractors from this pool.
func (s *Store) CardPool() []Card {
	var pool []Card
	for _, id := range s.order {
		pool = append(pool, s.collections[id].Cards...)
	}
	return pool
}

// Len returns the number of collections.
func (s *Store) Len() int {
	return len(s.collections)
}

func trimCardInput(input CardInput) CardInput {
	return CardInput{
		Character:   strings.TrimSpace(input.Character),
		Pinyin:      strings.TrimSpace(input.Pinyin),
		Palladius:   strings.TrimSpace(input.Palladius),
		Translation: strings.TrimSpace(input.Translation),
	}
}
