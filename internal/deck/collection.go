package deck

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// CollectionType tags a collection with its origin and controls its default
// position in the collection list.
type CollectionType string

const (
	TypeHSK1All   CollectionType = "hsk1-all"
	TypeHSK1      CollectionType = "hsk1"
	TypeKangxiAll CollectionType = "kangxi-all"
	TypeKangxi    CollectionType = "kangxi"
	TypeCustom    CollectionType = "custom"
)

// rank returns the sort rank of the type. Unknown types sort last.
func (t CollectionType) rank() int {
	switch t {
	case TypeHSK1All:
		return 0
	case TypeHSK1:
		return 1
	case TypeKangxiAll:
		return 2
	case TypeKangxi:
		return 3
	case TypeCustom:
		return 4
	}
	return 5
}

// Collection is a named, ordered set of cards. Card order is insertion order.
type Collection struct {
	ID          string
	Name        string
	Description string
	Cards       []Card
	Type        CollectionType
	IsEditable  bool
}

// findCard returns the position of a card by id, or -1.
func (c *Collection) findCard(cardID string) int {
	for i, card := range c.Cards {
		if card.ID == cardID {
			return i
		}
	}
	return -1
}

// SnapshotCards returns a copy of the card sequence. Study and quiz sessions
// operate on snapshots so that edits to the collection cannot corrupt an
// in-progress session.
func (c *Collection) SnapshotCards() []Card {
	cards := make([]Card, len(c.Cards))
	copy(cards, c.Cards)
	return cards
}

// collectionCollator orders collection names. Names are Russian display
// strings, so the comparator is pinned to a Russian collation rather than
// byte order.
var collectionCollator = collate.New(language.Russian)

// lessCollections is the ordering used by ListCollectionsSorted: built-in
// dataset collections first by type rank, then locale-aware by name.
func lessCollections(a, b *Collection) bool {
	if ra, rb := a.Type.rank(), b.Type.rank(); ra != rb {
		return ra < rb
	}
	return collectionCollator.CompareString(a.Name, b.Name) < 0
}
