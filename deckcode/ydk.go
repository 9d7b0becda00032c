package deckcode

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	ygodeck "github.com/m0t0k1ch1/ygo-deckcode-go"
)

const ydkCreator = "#created by ygo-deckcode-go"

var ydkHeaders = map[ygodeck.DeckPart]string{
	ygodeck.Main:  "#main",
	ygodeck.Extra: "#extra",
	ygodeck.Side:  "!side",
}

// EncodeYDK writes a deck as a ydk file.
// The deck name is not stored; ydk files are named by their file name.
func (codec *Codec) EncodeYDK(w io.Writer, deck *ygodeck.Deck) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintln(bw, ydkCreator); err != nil {
		return errors.Wrap(err, "failed to write creator")
	}

	for _, part := range ygodeck.DefaultDeckParts {
		if _, err := fmt.Fprintln(bw, ydkHeaders[part]); err != nil {
			return errors.Wrapf(err, "failed to write %s header", part)
		}

		for _, card := range deck.Parts[part] {
			n, err := parsePasscode(card.Passcode)
			if err != nil {
				return errors.Wrapf(err, "failed to encode %s deck", part)
			}
			if _, err := fmt.Fprintln(bw, n); err != nil {
				return errors.Wrapf(err, "failed to write %s deck", part)
			}
		}
	}

	return errors.Wrap(bw.Flush(), "failed to flush")
}

// DecodeYDK reads a deck from a ydk file.
func (codec *Codec) DecodeYDK(r io.Reader) (*ygodeck.Deck, error) {
	deck := ygodeck.NewDeck()

	var part ygodeck.DeckPart

	scanner := bufio.NewScanner(r)
	for lineNumber := 1; scanner.Scan(); lineNumber++ {
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 {
			continue
		}

		if header, ok := ydkPart(line); ok {
			part = header
			continue
		}
		if strings.HasPrefix(line, "#") || strings.HasPrefix(line, "!") {
			continue
		}

		if part == 0 {
			return nil, errors.Wrapf(ErrMalformed, "line %d: card outside of a deck part", lineNumber)
		}

		n, err := parsePasscode(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}

		card, err := codec.resolve(fmt.Sprint(n))
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		deck.AddCard(part, card)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to scan ydk file")
	}

	return deck, nil
}

func ydkPart(line string) (ygodeck.DeckPart, bool) {
	for part, header := range ydkHeaders {
		if line == header {
			return part, true
		}
	}

	return 0, false
}
