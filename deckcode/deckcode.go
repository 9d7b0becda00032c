package deckcode

import (
	"encoding/binary"
	"strconv"

	"github.com/pkg/errors"

	ygodeck "github.com/m0t0k1ch1/ygo-deckcode-go"
)

const (
	// a 32 bit integer is able to store every 8 digit passcode
	BlockSize int = 4

	MaxPasscode uint64 = 1<<(BlockSize*8) - 1
)

var (
	ErrPasscodeOutOfRange   = errors.New("passcode out of range")
	ErrMalformed            = errors.New("malformed deck code")
	ErrUnknownCard          = errors.New("unknown card")
	ErrMalformedLegacyEntry = errors.New("malformed legacy entry")
)

var delimiterBlock = make([]byte, BlockSize)

// Catalog resolves passcodes to cards.
type Catalog interface {
	HasCard(passcode string) bool
	Card(passcode string) *ygodeck.Card
}

// Codec encodes and decodes decks. It is safe for concurrent use.
type Codec struct {
	catalog Catalog
}

// New returns a codec resolving decoded passcodes with the catalog.
func New(catalog Catalog) *Codec {
	return &Codec{
		catalog: catalog,
	}
}

func (codec *Codec) resolve(passcode string) (*ygodeck.Card, error) {
	if !codec.catalog.HasCard(passcode) {
		return nil, errors.Wrapf(ErrUnknownCard, "could not find card for passcode %q", passcode)
	}

	return codec.catalog.Card(passcode), nil
}

func encodeCardBlock(card *ygodeck.Card) ([]byte, error) {
	n, err := parsePasscode(card.Passcode)
	if err != nil {
		return nil, err
	}

	block := make([]byte, BlockSize)
	binary.LittleEndian.PutUint32(block, uint32(n))

	return block, nil
}

func (codec *Codec) decodeCardBlock(block []byte) (*ygodeck.Card, error) {
	if len(block) != BlockSize {
		return nil, errors.Wrapf(ErrMalformed, "truncated card block of %d bytes", len(block))
	}

	return codec.resolve(strconv.FormatUint(uint64(binary.LittleEndian.Uint32(block)), 10))
}

func parsePasscode(passcode string) (uint64, error) {
	n, err := strconv.ParseUint(passcode, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrPasscodeOutOfRange, "failed to parse passcode %q", passcode)
	}
	if n == 0 || n > MaxPasscode {
		return 0, errors.Wrapf(ErrPasscodeOutOfRange, "passcode %d has to be > 0 and <= %d", n, MaxPasscode)
	}

	return n, nil
}

func blocks(b []byte) ([][]byte, error) {
	if len(b)%BlockSize != 0 {
		return nil, errors.Wrapf(ErrMalformed, "%d bytes is not a multiple of the block size", len(b))
	}

	out := make([][]byte, 0, len(b)/BlockSize)
	for start := 0; start < len(b); start += BlockSize {
		out = append(out, b[start:start+BlockSize])
	}

	return out, nil
}
