package deckcode

import (
	"bytes"
	"encoding/base64"
	"strings"

	"github.com/pkg/errors"

	ygodeck "github.com/m0t0k1ch1/ygo-deckcode-go"
)

const (
	YDKEScheme    = "ydke://"
	YDKEDelimiter = "!"
)

// EncodeURI encodes a deck to a ydke URI.
// The deck name is not stored in the URI.
func (codec *Codec) EncodeURI(deck *ygodeck.Deck) (string, error) {
	var sb strings.Builder
	sb.WriteString(YDKEScheme)

	for _, part := range ygodeck.DefaultDeckParts {
		buf := new(bytes.Buffer)
		for _, card := range deck.Parts[part] {
			block, err := encodeCardBlock(card)
			if err != nil {
				return "", errors.Wrapf(err, "failed to encode %s deck", part)
			}
			buf.Write(block)
		}

		sb.WriteString(base64.StdEncoding.EncodeToString(buf.Bytes()))
		sb.WriteString(YDKEDelimiter)
	}

	return sb.String(), nil
}

// DecodeURI decodes a ydke URI to a deck.
// The decoded deck never has a name.
func (codec *Codec) DecodeURI(uri string) (*ygodeck.Deck, error) {
	if !strings.HasPrefix(uri, YDKEScheme) {
		return nil, errors.Wrapf(ErrMalformed, "missing %q scheme", YDKEScheme)
	}

	segments := strings.Split(strings.TrimPrefix(uri, YDKEScheme), YDKEDelimiter)

	// a URI always ends with a delimiter, so the last segment must be empty
	if last := segments[len(segments)-1]; last != "" {
		return nil, errors.Wrapf(ErrMalformed, "unexpected data %q after the last delimiter", last)
	}
	segments = segments[:len(segments)-1]

	if len(segments) != len(ygodeck.DefaultDeckParts) {
		return nil, errors.Wrapf(ErrMalformed,
			"expected URI to have %d delimiters but found %d", len(ygodeck.DefaultDeckParts), len(segments))
	}

	deck := ygodeck.NewDeck()

	for i, part := range ygodeck.DefaultDeckParts {
		b, err := base64.StdEncoding.DecodeString(segments[i])
		if err != nil {
			return nil, errors.Wrapf(ErrMalformed, "failed to base64 decode %s deck: %v", part, err)
		}

		cardBlocks, err := blocks(b)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to split %s deck", part)
		}

		for _, block := range cardBlocks {
			card, err := codec.decodeCardBlock(block)
			if err != nil {
				return nil, errors.Wrapf(err, "failed to decode %s deck", part)
			}
			deck.AddCard(part, card)
		}
	}

	return deck, nil
}
