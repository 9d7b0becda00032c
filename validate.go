package ygodeck

import (
	"fmt"
)

// Report represents the result of validating a whole deck.
type Report struct {
	Errors   []string
	Warnings []string
}

// Valid reports whether the deck has no errors.
func (report Report) Valid() bool {
	return len(report.Errors) == 0
}

// Validate checks a deck against the format by adding its cards one at a time,
// in deck order, to an empty deck.
func Validate(deck *Deck, format Format) Report {
	ruleset := mustRules(format)

	report := Report{
		Errors:   []string{},
		Warnings: []string{},
	}

	replay := NewDeck()
	for _, part := range ruleset.Parts {
		for _, card := range deck.Parts[part] {
			if !CanAdd(replay, part, format, card) {
				report.Errors = append(report.Errors, fmt.Sprintf(
					"%s: cannot add %s (%s) under %s", part, card.Name, card.Passcode, format))
				continue
			}
			replay.AddCard(part, card)
		}

		if n, limits := len(deck.Parts[part]), ruleset.Limits[part]; n < limits.Min {
			report.Warnings = append(report.Warnings, fmt.Sprintf(
				"%s: %d cards, at least %d required", part, n, limits.Min))
		}
	}

	return report
}
