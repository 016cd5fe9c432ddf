package deck

import "strings"

// SearchResult is one card matched by a search, annotated with its owning
// collection for display and navigation.
type SearchResult struct {
	Card           Card
	CollectionID   string
	CollectionName string
}

// Search scans every card for the query. Pinyin, palladius and translation
// match case-insensitively; the character field matches as a plain substring
// since there is no case to fold in logographic text. A blank query returns
// no results rather than all cards.
func (s *Store) Search(query string) []SearchResult {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}
	lowered := strings.ToLower(query)

	var results []SearchResult
	for _, id := range s.order {
		collection := s.collections[id]
		for _, card := range collection.Cards {
			if !matchesCard(card, query, lowered) {
				continue
			}
			results = append(results, SearchResult{
				Card:           card,
				CollectionID:   collection.ID,
				CollectionName: collection.Name,
			})
		}
	}
	return results
}

func matchesCard(card Card, query, lowered string) bool {
	return strings.Contains(card.Character, query) ||
		strings.Contains(strings.ToLower(card.Pinyin), lowered) ||
		strings.Contains(strings.ToLower(card.Palladius), lowered) ||
		strings.Contains(strings.ToLower(card.Translation), lowered)
}
