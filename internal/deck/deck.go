package deck

// Size is the number of cards in a standard deck
const Size = 52

// NewDeck creates a standard 52-card deck, one card per (suit, rank) pair,
// ordered by suit then rank.
func NewDeck() []*Card {
	cards := make([]*Card, 0, Size)
	for _, suit := range Suits {
		for _, rank := range Ranks {
			cards = append(cards, NewCard(suit, rank))
		}
	}
	return cards
}

// NewCards concatenates n freshly built decks. Every card is a distinct
// instance, so duplicates across decks never alias each other.
func NewCards(n int) []*Card {
	cards := make([]*Card, 0, n*Size)
	for range n {
		cards = append(cards, NewDeck()...)
	}
	return cards
}
