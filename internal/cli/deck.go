package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"

	ygodeck "github.com/m0t0k1ch1/ygo-deckcode-go"
	"github.com/m0t0k1ch1/ygo-deckcode-go/deckcode"
)

const (
	targetURI   = "uri"
	targetQuery = "query"
	targetYDK   = "ydk"
)

// decode detects the encoding of value and decodes it.
func (a *app) decode(value string, legacy bool) (*ygodeck.Deck, error) {
	value = strings.TrimSpace(value)

	switch {
	case legacy:
		a.logger.Debug("decoding legacy query value")
		return a.codec.DecodeLegacyQueryParam(value, deckcode.NewZlibLegacyDecoder(nil))
	case strings.HasPrefix(value, deckcode.YDKEScheme):
		a.logger.Debug("decoding ydke uri")
		return a.codec.DecodeURI(value)
	default:
		a.logger.Debug("decoding query value")
		return a.codec.DecodeQueryParam(value)
	}
}

func (a *app) readYDK(path string) (*ygodeck.Deck, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open ydk file")
	}
	defer f.Close()

	return a.codec.DecodeYDK(f)
}

func (a *app) encode(w io.Writer, deck *ygodeck.Deck, target string) error {
	switch target {
	case targetURI:
		uri, err := a.codec.EncodeURI(deck)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, uri)
		return err
	case targetQuery:
		value, err := a.codec.EncodeQueryParam(deck)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, value)
		return err
	case targetYDK:
		return a.codec.EncodeYDK(w, deck)
	default:
		return errors.Errorf("unknown target %q (expected %s, %s or %s)", target, targetURI, targetQuery, targetYDK)
	}
}

func printDeck(w io.Writer, deck *ygodeck.Deck) {
	header := color.New(color.FgCyan, color.Bold)
	passcode := color.New(color.FgHiBlack)

	if deck.Name != "" {
		fmt.Fprintf(w, "%s %s\n", header.Sprint("Name:"), color.HiWhiteString(deck.Name))
	}

	for _, part := range ygodeck.DefaultDeckParts {
		cards := deck.Parts[part]
		fmt.Fprintf(w, "%s\n", header.Sprintf("%s (%d)", part, len(cards)))
		for _, card := range cards {
			fmt.Fprintf(w, "  %s %s\n", passcode.Sprintf("%9s", card.Passcode), card.Name)
		}
	}
}
