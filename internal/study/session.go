// Package study implements the flip-card study session: a sequential,
// flippable traversal over a snapshot of a collection's cards.
package study

import (
	"errors"

	"github.com/hanzideck/hanzideck/internal/deck"
)

// ErrEmptyCollection is returned when a study session is started on a
// collection with no cards.
var ErrEmptyCollection = errors.New("collection has no cards to study")

// Session walks a snapshot of a collection's cards. The snapshot keeps an
// in-progress session stable when the underlying collection is edited or
// deleted. There is no terminal state; the caller ends the session by
// abandoning it.
type Session struct {
	cards   []deck.Card
	index   int
	flipped bool
}

// Start begins a session over a snapshot of the collection's cards.
func Start(collection *deck.Collection) (*Session, error) {
	if len(collection.Cards) == 0 {
		return nil, ErrEmptyCollection
	}
	return &Session{cards: collection.SnapshotCards()}, nil
}

// Current returns the card the session is positioned on.
func (s *Session) Current() deck.Card {
	return s.cards[s.index]
}

// Index returns the zero-based position of the current card.
func (s *Session) Index() int {
	return s.index
}

// Len returns the number of cards in the session snapshot.
func (s *Session) Len() int {
	return len(s.cards)
}

// Next advances to the following card. At the last card it is a no-op.
// Moving resets the flip state.
func (s *Session) Next() {
	s.move(1)
}

// Prev moves back one card. At the first card it is a no-op. Moving resets
// the flip state.
func (s *Session) Prev() {
	s.move(-1)
}

func (s *Session) move(direction int) {
	next := s.index + direction
	if next < 0 || next >= len(s.cards) {
		return
	}
	s.index = next
	s.flipped = false
}

// Flip toggles between the front and back of the current card.
func (s *Session) Flip() {
	s.flipped = !s.flipped
}

// Flipped reports whether the back of the current card is showing.
func (s *Session) Flipped() bool {
	return s.flipped
}

// ProgressFraction returns (index+1)/len, always in (0, 1].
func (s *Session) ProgressFraction() float64 {
	return float64(s.index+1) / float64(len(s.cards))
}
