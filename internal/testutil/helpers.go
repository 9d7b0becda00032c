package testutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	ygodeck "github.com/m0t0k1ch1/ygo-deckcode-go"
)

func Equal(t *testing.T, expected any, actual any, opts ...cmp.Option) {
	t.Helper()

	if diff := cmp.Diff(expected, actual, opts...); len(diff) > 0 {
		t.Errorf("diff: %s", diff)
	}
}

// NewCardType returns a spell-like card type allowed in the main and side deck
// unless parts are given.
func NewCardType(group ygodeck.CardTypeGroup, parts ...ygodeck.DeckPart) *ygodeck.CardType {
	if len(parts) == 0 {
		parts = []ygodeck.DeckPart{ygodeck.Main, ygodeck.Side}
	}

	deckParts := map[ygodeck.DeckPart]bool{}
	for _, part := range parts {
		deckParts[part] = true
	}

	return &ygodeck.CardType{
		Name:      group.String(),
		Group:     group,
		DeckParts: deckParts,
	}
}

// NewCard returns an unlimited spell card with the passcode.
func NewCard(passcode string) *ygodeck.Card {
	return &ygodeck.Card{
		Passcode: passcode,
		Name:     "card " + passcode,
		Type:     NewCardType(ygodeck.Spell),
		Banlist:  map[ygodeck.Format]ygodeck.BanState{},
	}
}

// NewDeck returns a deck holding the given cards per deck part.
func NewDeck(name string, main, extra, side []*ygodeck.Card) *ygodeck.Deck {
	deck := ygodeck.NewDeck()
	deck.Name = name
	deck.Parts[ygodeck.Main] = append(deck.Parts[ygodeck.Main], main...)
	deck.Parts[ygodeck.Extra] = append(deck.Parts[ygodeck.Extra], extra...)
	deck.Parts[ygodeck.Side] = append(deck.Parts[ygodeck.Side], side...)

	return deck
}
