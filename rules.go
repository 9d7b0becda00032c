package ygodeck

// Limits represents the capacity range of a deck part.
type Limits struct {
	Min int
	Max int
}

// Ruleset represents the deck construction rules of a format.
type Ruleset struct {
	Parts  []DeckPart
	Limits map[DeckPart]Limits
}

func (ruleset Ruleset) has(part DeckPart) bool {
	_, ok := ruleset.Limits[part]
	return ok
}

var (
	standardRuleset = Ruleset{
		Parts: DefaultDeckParts,
		Limits: map[DeckPart]Limits{
			Main:  {Min: 40, Max: 60},
			Extra: {Min: 0, Max: 15},
			Side:  {Min: 0, Max: 15},
		},
	}

	duelLinksRuleset = Ruleset{
		Parts: DefaultDeckParts,
		Limits: map[DeckPart]Limits{
			Main:  {Min: 20, Max: 30},
			Extra: {Min: 0, Max: 8},
			Side:  {Min: 0, Max: 8},
		},
	}

	rulesets = map[Format]Ruleset{
		TCG:       standardRuleset,
		OCG:       standardRuleset,
		GOAT:      standardRuleset,
		DuelLinks: duelLinksRuleset,
	}
)

// Rules returns the ruleset of the format.
func Rules(format Format) (Ruleset, bool) {
	ruleset, ok := rulesets[format]
	return ruleset, ok
}

func mustRules(format Format) Ruleset {
	ruleset, ok := rulesets[format]
	if !ok {
		panic("ygodeck: no ruleset for " + format.String())
	}

	return ruleset
}
