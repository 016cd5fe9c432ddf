package deck

// Card is a single vocabulary or radical entry. A card always belongs to
// exactly one collection; deleting the collection deletes its cards.
type Card struct {
	ID          string
	Character   string
	Pinyin      string
	Palladius   string
	Translation string
}

// CardInput is user-provided card content before validation. All fields are
// required after trimming.
type CardInput struct {
	Character   string `validate:"required"`
	Pinyin      string `validate:"required"`
	Palladius   string `validate:"required"`
	Translation string `validate:"required"`
}

// ConflictsWith reports whether another card shares this card's character or
// translation. The quiz excludes such cards from the distractor pool so that
// a wrong option can never read as a second correct answer.
func (c Card) ConflictsWith(other Card) bool {
	return c.Character == other.Character || c.Translation == other.Translation
}
