package ygodeck

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrUnknownDeckPart      = errors.New("unknown deck part")
	ErrUnknownFormat        = errors.New("unknown format")
	ErrUnknownBanState      = errors.New("unknown ban state")
	ErrUnknownCardTypeGroup = errors.New("unknown card type group")
)

// DeckPart represents a deck partition.
type DeckPart uint8

const (
	Main DeckPart = iota + 1
	Extra
	Side
)

// DefaultDeckParts is the fixed partition order used by every wire format.
var DefaultDeckParts = []DeckPart{Main, Extra, Side}

var deckPartNames = map[DeckPart]string{
	Main:  "main",
	Extra: "extra",
	Side:  "side",
}

func (part DeckPart) String() string {
	if name, ok := deckPartNames[part]; ok {
		return name
	}

	return fmt.Sprintf("DeckPart(%d)", part)
}

// ParseDeckPart parses the text form of a deck part.
func ParseDeckPart(s string) (DeckPart, error) {
	for part, name := range deckPartNames {
		if name == s {
			return part, nil
		}
	}

	return 0, errors.Wrapf(ErrUnknownDeckPart, "%q", s)
}

// Format represents a ruleset.
type Format uint8

const (
	TCG Format = iota + 1
	OCG
	GOAT
	DuelLinks
)

var formatNames = map[Format]string{
	TCG:       "tcg",
	OCG:       "ocg",
	GOAT:      "goat",
	DuelLinks: "duel_links",
}

func (format Format) String() string {
	if name, ok := formatNames[format]; ok {
		return name
	}

	return fmt.Sprintf("Format(%d)", format)
}

// ParseFormat parses the text form of a format.
func ParseFormat(s string) (Format, error) {
	for format, name := range formatNames {
		if name == s {
			return format, nil
		}
	}

	return 0, errors.Wrapf(ErrUnknownFormat, "%q", s)
}

// BanState represents the legality tier of a card within a format.
type BanState uint8

const (
	Unlimited BanState = iota
	SemiLimited
	Limited
	Banned
	Absent
)

var banStateNames = map[BanState]string{
	Unlimited:   "unlimited",
	SemiLimited: "semi_limited",
	Limited:     "limited",
	Banned:      "banned",
	Absent:      "absent",
}

var banStateCounts = map[BanState]int{
	Unlimited:   3,
	SemiLimited: 2,
	Limited:     1,
	Banned:      0,
	Absent:      0,
}

func (state BanState) String() string {
	if name, ok := banStateNames[state]; ok {
		return name
	}

	return fmt.Sprintf("BanState(%d)", state)
}

// Count returns the number of copies allowed in a deck.
func (state BanState) Count() int {
	return banStateCounts[state]
}

// ParseBanState parses the text form of a ban state.
func ParseBanState(s string) (BanState, error) {
	for state, name := range banStateNames {
		if name == s {
			return state, nil
		}
	}

	return 0, errors.Wrapf(ErrUnknownBanState, "%q", s)
}

// CardTypeGroup represents the broad kind of a card type.
type CardTypeGroup uint8

const (
	Monster CardTypeGroup = iota + 1
	Spell
	Trap
	Skill
)

var cardTypeGroupNames = map[CardTypeGroup]string{
	Monster: "monster",
	Spell:   "spell",
	Trap:    "trap",
	Skill:   "skill",
}

func (group CardTypeGroup) String() string {
	if name, ok := cardTypeGroupNames[group]; ok {
		return name
	}

	return fmt.Sprintf("CardTypeGroup(%d)", group)
}

// ParseCardTypeGroup parses the text form of a card type group.
func ParseCardTypeGroup(s string) (CardTypeGroup, error) {
	for group, name := range cardTypeGroupNames {
		if name == s {
			return group, nil
		}
	}

	return 0, errors.Wrapf(ErrUnknownCardTypeGroup, "%q", s)
}

// CardType represents a card type such as "Effect Monster" or "Spell Card".
type CardType struct {
	Name      string
	Group     CardTypeGroup
	SortGroup int
	DeckParts map[DeckPart]bool
}

// AllowedIn reports whether cards of the type may be placed in the deck part.
func (cardType *CardType) AllowedIn(part DeckPart) bool {
	return cardType.DeckParts[part]
}

// Card represents a card. Cards are owned by a catalog and shared by reference.
type Card struct {
	Passcode  string
	Name      string
	Type      *CardType
	Attribute string
	ATK       *int
	DEF       *int
	Level     *int
	Banlist   map[Format]BanState
}

// BanState returns the ban state of the card in the format.
// A card without an entry for the format is unlimited there.
func (card *Card) BanState(format Format) BanState {
	state, ok := card.Banlist[format]
	if !ok {
		return Unlimited
	}

	return state
}
