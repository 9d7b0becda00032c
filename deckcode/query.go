package deckcode

import (
	"bytes"
	"encoding/base64"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/klauspost/compress/flate"
	"github.com/pkg/errors"

	ygodeck "github.com/m0t0k1ch1/ygo-deckcode-go"
)

var (
	queryParamEncoder = strings.NewReplacer("+", "_", "/", "-", "=", "~")
	queryParamDecoder = strings.NewReplacer("_", "+", "-", "/", "~", "=")
)

// queryParamCompressionLevel is the lowest level at which the deflate writer
// compresses short payloads instead of emitting them as a stored block.
const queryParamCompressionLevel = 7

// EncodeQueryParam encodes a deck to a value that is safe to use in a URL query parameter.
//
// The payload is a sequence of 4 byte card blocks where an all-zero block ends
// each deck part. The UTF-8 deck name, if any, follows the last delimiter.
// The payload is deflated without a zlib header and base64 encoded with
// "+/=" replaced by "_-~".
func (codec *Codec) EncodeQueryParam(deck *ygodeck.Deck) (string, error) {
	payload := new(bytes.Buffer)

	for _, part := range ygodeck.DefaultDeckParts {
		for _, card := range deck.Parts[part] {
			block, err := encodeCardBlock(card)
			if err != nil {
				return "", errors.Wrapf(err, "failed to encode %s deck", part)
			}
			payload.Write(block)
		}
		payload.Write(delimiterBlock)
	}

	if deck.Name != "" {
		payload.WriteString(deck.Name)
	}

	compressed := new(bytes.Buffer)

	w, err := flate.NewWriter(compressed, queryParamCompressionLevel)
	if err != nil {
		return "", errors.Wrap(err, "failed to create deflate writer")
	}
	if _, err := w.Write(payload.Bytes()); err != nil {
		return "", errors.Wrap(err, "failed to deflate")
	}
	if err := w.Close(); err != nil {
		return "", errors.Wrap(err, "failed to flush deflate writer")
	}

	return queryParamEncoder.Replace(base64.StdEncoding.EncodeToString(compressed.Bytes())), nil
}

// DecodeQueryParam decodes a value created by EncodeQueryParam to a deck.
func (codec *Codec) DecodeQueryParam(value string) (*ygodeck.Deck, error) {
	compressed, err := base64.StdEncoding.DecodeString(queryParamDecoder.Replace(value))
	if err != nil {
		return nil, errors.Wrapf(ErrMalformed, "failed to base64 decode: %v", err)
	}

	r := flate.NewReader(bytes.NewReader(compressed))
	defer r.Close()

	payload, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrapf(ErrMalformed, "failed to inflate: %v", err)
	}

	deck := ygodeck.NewDeck()

	partIndex := 0
	offset := 0
	for partIndex < len(ygodeck.DefaultDeckParts) {
		end := offset + BlockSize
		if end > len(payload) {
			return nil, errors.Wrapf(ErrMalformed,
				"payload ended after %d of %d deck parts", partIndex, len(ygodeck.DefaultDeckParts))
		}

		block := payload[offset:end]
		offset = end

		if bytes.Equal(block, delimiterBlock) {
			partIndex++
			continue
		}

		part := ygodeck.DefaultDeckParts[partIndex]

		card, err := codec.decodeCardBlock(block)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to decode %s deck", part)
		}
		deck.AddCard(part, card)
	}

	if offset < len(payload) {
		deck.Name = strings.ToValidUTF8(string(payload[offset:]), string(utf8.RuneError))
	}

	return deck, nil
}
