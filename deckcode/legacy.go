package deckcode

import (
	"bytes"
	"encoding/base64"
	"io"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zlib"
	"github.com/pkg/errors"

	ygodeck "github.com/m0t0k1ch1/ygo-deckcode-go"
)

const (
	legacyDeckPartDelimiter = "|"
	legacyPasscodeDelimiter = ";"
	legacyCardAmountPrefix  = "*"
)

// LegacyDecoder turns a legacy query parameter value into the decompressed
// deck list text.
type LegacyDecoder func(value string) (string, error)

// NewZlibLegacyDecoder returns a LegacyDecoder that applies decodeBase64 and
// inflates the result as a zlib stream. A nil decodeBase64 uses standard base64.
func NewZlibLegacyDecoder(decodeBase64 func(string) ([]byte, error)) LegacyDecoder {
	if decodeBase64 == nil {
		decodeBase64 = base64.StdEncoding.DecodeString
	}

	return func(value string) (string, error) {
		compressed, err := decodeBase64(value)
		if err != nil {
			return "", errors.Wrap(err, "failed to base64 decode")
		}

		r, err := zlib.NewReader(bytes.NewReader(compressed))
		if err != nil {
			return "", errors.Wrap(err, "failed to create zlib reader")
		}
		defer r.Close()

		text, err := io.ReadAll(r)
		if err != nil {
			return "", errors.Wrap(err, "failed to inflate")
		}

		return string(text), nil
	}
}

// DecodeLegacyQueryParam decodes a deck from the deprecated query parameter format.
//
// The decoded text lists deck parts separated by "|" and cards separated by ";".
// An entry is either a passcode or "*" followed by a single digit count and the passcode.
func (codec *Codec) DecodeLegacyQueryParam(value string, decoder LegacyDecoder) (*ygodeck.Deck, error) {
	text, err := decoder(value)
	if err != nil {
		return nil, errors.Wrapf(ErrMalformed, "failed to decode legacy value: %v", err)
	}

	lists := strings.Split(text, legacyDeckPartDelimiter)
	if len(lists) > len(ygodeck.DefaultDeckParts) {
		return nil, errors.Wrapf(ErrMalformed,
			"expected at most %d deck parts but found %d", len(ygodeck.DefaultDeckParts), len(lists))
	}

	deck := ygodeck.NewDeck()

	for i, list := range lists {
		if len(list) == 0 {
			continue
		}

		part := ygodeck.DefaultDeckParts[i]

		for _, entry := range strings.Split(list, legacyPasscodeDelimiter) {
			count, passcode, err := parseLegacyEntry(entry)
			if err != nil {
				return nil, errors.Wrapf(err, "failed to parse %s deck", part)
			}

			card, err := codec.resolve(passcode)
			if err != nil {
				return nil, errors.Wrapf(err, "failed to decode %s deck", part)
			}

			for j := 0; j < count; j++ {
				deck.AddCard(part, card)
			}
		}
	}

	return deck, nil
}

// parseLegacyEntry only reads a single digit count, so runs of 10 or more
// copies cannot be represented. Links in the wild were produced that way.
func parseLegacyEntry(entry string) (int, string, error) {
	count := 1
	passcode := entry

	if strings.HasPrefix(entry, legacyCardAmountPrefix) {
		if len(entry) < 3 {
			return 0, "", errors.Wrapf(ErrMalformedLegacyEntry, "%q", entry)
		}

		n, err := strconv.Atoi(entry[1:2])
		if err != nil {
			return 0, "", errors.Wrapf(ErrMalformedLegacyEntry, "invalid count in %q", entry)
		}

		count = n
		passcode = entry[2:]
	}

	if len(passcode) == 0 {
		return 0, "", errors.Wrapf(ErrMalformedLegacyEntry, "empty passcode in %q", entry)
	}
	for _, r := range passcode {
		if r < '0' || r > '9' {
			return 0, "", errors.Wrapf(ErrMalformedLegacyEntry, "invalid passcode in %q", entry)
		}
	}

	return count, passcode, nil
}
