package ygodeck_test

import (
	"testing"

	ygodeck "github.com/m0t0k1ch1/ygo-deckcode-go"
	"github.com/m0t0k1ch1/ygo-deckcode-go/internal/testutil"
)

func TestNewDeck(t *testing.T) {
	testutil.Equal(t, &ygodeck.Deck{
		Name: "",
		Parts: map[ygodeck.DeckPart][]*ygodeck.Card{
			ygodeck.Main:  {},
			ygodeck.Extra: {},
			ygodeck.Side:  {},
		},
	}, ygodeck.NewDeck())
}

func TestAllCards(t *testing.T) {
	card1 := testutil.NewCard("123")
	card2 := testutil.NewCard("456")
	card3 := testutil.NewCard("789")

	deck := testutil.NewDeck("",
		[]*ygodeck.Card{card1},
		[]*ygodeck.Card{card2, card2},
		[]*ygodeck.Card{card3},
	)

	testutil.Equal(t, []*ygodeck.Card{card1, card2, card2, card3}, deck.AllCards())
}

func TestAddCard(t *testing.T) {
	card := testutil.NewCard("456")

	deck := ygodeck.NewDeck()
	deck.AddCard(ygodeck.Side, card)

	testutil.Equal(t, testutil.NewDeck("", nil, nil, []*ygodeck.Card{card}), deck)
}

func TestRemoveCard(t *testing.T) {
	card1 := testutil.NewCard("123")
	card2 := testutil.NewCard("456")

	t.Run("removes the first occurrence", func(t *testing.T) {
		side := []*ygodeck.Card{card1, card2, card1}
		deck := testutil.NewDeck("", nil, nil, side)

		if !deck.RemoveCard(ygodeck.Side, testutil.NewCard("123")) {
			t.Error("expected a card to be removed")
		}

		testutil.Equal(t, testutil.NewDeck("", nil, nil, []*ygodeck.Card{card2, card1}), deck)
		testutil.Equal(t, []*ygodeck.Card{card1, card2, card1}, side)
	})

	t.Run("ignores missing cards", func(t *testing.T) {
		deck := testutil.NewDeck("", []*ygodeck.Card{card2}, nil, nil)

		if deck.RemoveCard(ygodeck.Main, card1) {
			t.Error("expected no card to be removed")
		}
		if deck.RemoveCard(ygodeck.Side, card2) {
			t.Error("expected no card to be removed")
		}

		testutil.Equal(t, testutil.NewDeck("", []*ygodeck.Card{card2}, nil, nil), deck)
	})
}

func TestCanAdd(t *testing.T) {
	t.Run("checks deck part card types", func(t *testing.T) {
		card := testutil.NewCard("456")
		card.Type = testutil.NewCardType(ygodeck.Monster, ygodeck.Extra)

		if ygodeck.CanAdd(ygodeck.NewDeck(), ygodeck.Main, ygodeck.TCG, card) {
			t.Error("expected an extra deck card to be rejected from the main deck")
		}
		if !ygodeck.CanAdd(ygodeck.NewDeck(), ygodeck.Extra, ygodeck.TCG, card) {
			t.Error("expected an extra deck card to be accepted in the extra deck")
		}
	})

	t.Run("checks deck part limit", func(t *testing.T) {
		filler := make([]*ygodeck.Card, 14)
		for i := range filler {
			filler[i] = testutil.NewCard("123")
		}
		deck := testutil.NewDeck("", nil, nil, filler)
		card := testutil.NewCard("456")

		if !ygodeck.CanAdd(deck, ygodeck.Side, ygodeck.TCG, card) {
			t.Error("expected a card to be accepted one below the limit")
		}

		deck.AddCard(ygodeck.Side, testutil.NewCard("123"))

		if ygodeck.CanAdd(deck, ygodeck.Side, ygodeck.TCG, card) {
			t.Error("expected a card to be rejected at the limit")
		}
	})

	t.Run("uses format specific limits", func(t *testing.T) {
		filler := make([]*ygodeck.Card, 8)
		for i := range filler {
			filler[i] = testutil.NewCard("123")
		}
		deck := testutil.NewDeck("", nil, nil, filler)
		card := testutil.NewCard("456")

		if ygodeck.CanAdd(deck, ygodeck.Side, ygodeck.DuelLinks, card) {
			t.Error("expected a card to be rejected at the duel links limit")
		}
		if !ygodeck.CanAdd(deck, ygodeck.Side, ygodeck.TCG, card) {
			t.Error("expected a card to be accepted below the tcg limit")
		}
	})

	t.Run("checks total skill card count", func(t *testing.T) {
		skill1 := testutil.NewCard("456")
		skill1.Type = testutil.NewCardType(ygodeck.Skill)
		skill2 := testutil.NewCard("789")
		skill2.Type = skill1.Type

		deck := testutil.NewDeck("", []*ygodeck.Card{skill1}, nil, nil)

		if ygodeck.CanAdd(deck, ygodeck.Side, ygodeck.OCG, skill1) {
			t.Error("expected a second copy of a skill card to be rejected")
		}
		if ygodeck.CanAdd(deck, ygodeck.Side, ygodeck.OCG, skill2) {
			t.Error("expected a second skill card to be rejected")
		}
	})

	t.Run("checks against ban list", func(t *testing.T) {
		card := testutil.NewCard("456")
		card.Banlist = map[ygodeck.Format]ygodeck.BanState{
			ygodeck.OCG:  ygodeck.Limited,
			ygodeck.TCG:  ygodeck.Unlimited,
			ygodeck.GOAT: ygodeck.Banned,
		}

		deck := ygodeck.NewDeck()

		if !ygodeck.CanAdd(deck, ygodeck.Main, ygodeck.OCG, card) {
			t.Error("expected the first copy of a limited card to be accepted")
		}
		if ygodeck.CanAdd(deck, ygodeck.Main, ygodeck.GOAT, card) {
			t.Error("expected a banned card to be rejected")
		}

		deck.AddCard(ygodeck.Side, card)

		if ygodeck.CanAdd(deck, ygodeck.Main, ygodeck.OCG, card) {
			t.Error("expected the second copy of a limited card to be rejected")
		}
		if !ygodeck.CanAdd(deck, ygodeck.Main, ygodeck.TCG, card) {
			t.Error("expected the second copy of an unlimited card to be accepted")
		}

		deck.AddCard(ygodeck.Main, card)
		deck.AddCard(ygodeck.Main, card)

		if ygodeck.CanAdd(deck, ygodeck.Main, ygodeck.TCG, card) {
			t.Error("expected the fourth copy of an unlimited card to be rejected")
		}
	})

	t.Run("returns true if a card can be added", func(t *testing.T) {
		if !ygodeck.CanAdd(ygodeck.NewDeck(), ygodeck.Side, ygodeck.OCG, testutil.NewCard("456")) {
			t.Error("expected the card to be accepted")
		}
	})

	t.Run("panics on unknown formats", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected a panic")
			}
		}()

		ygodeck.CanAdd(ygodeck.NewDeck(), ygodeck.Main, ygodeck.Format(0), testutil.NewCard("456"))
	})
}
