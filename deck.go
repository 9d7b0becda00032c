package ygodeck

// Deck represents a deck. An empty Name means the deck has no name.
type Deck struct {
	Name  string
	Parts map[DeckPart][]*Card
}

// NewDeck returns an unnamed deck with an empty sequence per default deck part.
func NewDeck() *Deck {
	parts := make(map[DeckPart][]*Card, len(DefaultDeckParts))
	for _, part := range DefaultDeckParts {
		parts[part] = []*Card{}
	}

	return &Deck{
		Parts: parts,
	}
}

// AllCards returns the cards of every deck part, main first, then extra, then side.
func (deck *Deck) AllCards() []*Card {
	cards := []*Card{}
	for _, part := range DefaultDeckParts {
		cards = append(cards, deck.Parts[part]...)
	}

	return cards
}

func (deck *Deck) count(passcode string) int {
	n := 0
	for _, card := range deck.AllCards() {
		if card.Passcode == passcode {
			n++
		}
	}

	return n
}

func (deck *Deck) hasGroup(group CardTypeGroup) bool {
	for _, card := range deck.AllCards() {
		if card.Type != nil && card.Type.Group == group {
			return true
		}
	}

	return false
}

// AddCard appends the card to the deck part.
// It does not check legality; use CanAdd first.
func (deck *Deck) AddCard(part DeckPart, card *Card) {
	deck.Parts[part] = append(deck.Parts[part], card)
}

// RemoveCard removes the first card in the deck part with the same passcode.
// It reports whether a card was removed.
func (deck *Deck) RemoveCard(part DeckPart, card *Card) bool {
	cards := deck.Parts[part]
	for i, c := range cards {
		if c.Passcode == card.Passcode {
			deck.Parts[part] = append(cards[:i:i], cards[i+1:]...)
			return true
		}
	}

	return false
}

// CanAdd reports whether one more copy of the card may be added to the deck part
// under the format. It panics if the format or the deck part is unknown to the
// rulesets.
func CanAdd(deck *Deck, part DeckPart, format Format, card *Card) bool {
	ruleset := mustRules(format)
	if !ruleset.has(part) {
		panic("ygodeck: " + format.String() + " has no deck part " + part.String())
	}

	if card.Type == nil || !card.Type.AllowedIn(part) {
		return false
	}

	if len(deck.Parts[part]) >= ruleset.Limits[part].Max {
		return false
	}

	// only a single skill card is allowed across the whole deck
	if card.Type.Group == Skill && deck.hasGroup(Skill) {
		return false
	}

	return deck.count(card.Passcode) < card.BanState(format).Count()
}
