// Package catalog provides an in-memory card catalog that can be loaded from
// YAML or TOML documents.
package catalog

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	ygodeck "github.com/m0t0k1ch1/ygo-deckcode-go"
)

var (
	ErrUnknownType       = errors.New("unknown card type")
	ErrDuplicatePasscode = errors.New("duplicate passcode")
	ErrUnknownSyntax     = errors.New("unknown catalog syntax")
)

// Syntax represents the document syntax of a catalog file.
type Syntax string

const (
	YAML Syntax = "yaml"
	TOML Syntax = "toml"
)

// Catalog maps passcodes to cards. It must not be modified while it is in use
// by a codec.
type Catalog struct {
	cards map[string]*ygodeck.Card
}

// New returns a catalog containing the cards.
// It returns ErrDuplicatePasscode if two cards share a passcode.
func New(cards ...*ygodeck.Card) (*Catalog, error) {
	catalog := &Catalog{
		cards: make(map[string]*ygodeck.Card, len(cards)),
	}
	for _, card := range cards {
		if err := catalog.Add(card); err != nil {
			return nil, err
		}
	}

	return catalog, nil
}

// MustNew is like New but panics on a duplicate passcode.
func MustNew(cards ...*ygodeck.Card) *Catalog {
	catalog, err := New(cards...)
	if err != nil {
		panic(err)
	}

	return catalog
}

// Add adds a card to the catalog.
func (catalog *Catalog) Add(card *ygodeck.Card) error {
	if _, ok := catalog.cards[card.Passcode]; ok {
		return errors.Wrapf(ErrDuplicatePasscode, "%q", card.Passcode)
	}
	catalog.cards[card.Passcode] = card

	return nil
}

func (catalog *Catalog) HasCard(passcode string) bool {
	_, ok := catalog.cards[passcode]
	return ok
}

func (catalog *Catalog) Card(passcode string) *ygodeck.Card {
	return catalog.cards[passcode]
}

func (catalog *Catalog) Len() int {
	return len(catalog.cards)
}

type document struct {
	Types []typeEntry `yaml:"types" toml:"types"`
	Cards []cardEntry `yaml:"cards" toml:"cards"`
}

type typeEntry struct {
	Name      string   `yaml:"name" toml:"name"`
	Group     string   `yaml:"group" toml:"group"`
	SortGroup int      `yaml:"sort_group" toml:"sort_group"`
	DeckParts []string `yaml:"deck_parts" toml:"deck_parts"`
}

type cardEntry struct {
	Passcode  string            `yaml:"passcode" toml:"passcode"`
	Name      string            `yaml:"name" toml:"name"`
	Type      string            `yaml:"type" toml:"type"`
	Attribute string            `yaml:"attribute" toml:"attribute"`
	ATK       *int              `yaml:"atk" toml:"atk"`
	DEF       *int              `yaml:"def" toml:"def"`
	Level     *int              `yaml:"level" toml:"level"`
	Banlist   map[string]string `yaml:"banlist" toml:"banlist"`
}

// LoadFile loads a catalog from a file. The syntax is chosen by the file extension.
func LoadFile(path string) (*Catalog, error) {
	var syntax Syntax
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		syntax = YAML
	case ".toml":
		syntax = TOML
	default:
		return nil, errors.Wrapf(ErrUnknownSyntax, "extension of %s", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open catalog file")
	}
	defer f.Close()

	return Load(f, syntax)
}

// Load reads a catalog document and links every card to its card type.
func Load(r io.Reader, syntax Syntax) (*Catalog, error) {
	var doc document

	switch syntax {
	case YAML:
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil && err != io.EOF {
			return nil, errors.Wrap(err, "failed to decode yaml")
		}
	case TOML:
		if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
			return nil, errors.Wrap(err, "failed to decode toml")
		}
	default:
		return nil, errors.Wrapf(ErrUnknownSyntax, "%q", syntax)
	}

	types, err := linkTypes(doc.Types)
	if err != nil {
		return nil, err
	}

	catalog := MustNew()
	for _, entry := range doc.Cards {
		card, err := linkCard(entry, types)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to link card %q", entry.Passcode)
		}
		if err := catalog.Add(card); err != nil {
			return nil, err
		}
	}

	return catalog, nil
}

func linkTypes(entries []typeEntry) (map[string]*ygodeck.CardType, error) {
	types := make(map[string]*ygodeck.CardType, len(entries))

	for _, entry := range entries {
		group, err := ygodeck.ParseCardTypeGroup(entry.Group)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse group of type %q", entry.Name)
		}

		deckParts := make(map[ygodeck.DeckPart]bool, len(entry.DeckParts))
		for _, s := range entry.DeckParts {
			part, err := ygodeck.ParseDeckPart(s)
			if err != nil {
				return nil, errors.Wrapf(err, "failed to parse deck parts of type %q", entry.Name)
			}
			deckParts[part] = true
		}

		types[entry.Name] = &ygodeck.CardType{
			Name:      entry.Name,
			Group:     group,
			SortGroup: entry.SortGroup,
			DeckParts: deckParts,
		}
	}

	return types, nil
}

func linkCard(entry cardEntry, types map[string]*ygodeck.CardType) (*ygodeck.Card, error) {
	cardType, ok := types[entry.Type]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownType, "%q", entry.Type)
	}

	banlist := make(map[ygodeck.Format]ygodeck.BanState, len(entry.Banlist))
	for f, s := range entry.Banlist {
		format, err := ygodeck.ParseFormat(f)
		if err != nil {
			return nil, errors.Wrap(err, "failed to parse banlist format")
		}

		state, err := ygodeck.ParseBanState(s)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse %s ban state", format)
		}

		banlist[format] = state
	}

	return &ygodeck.Card{
		Passcode:  entry.Passcode,
		Name:      entry.Name,
		Type:      cardType,
		Attribute: entry.Attribute,
		ATK:       entry.ATK,
		DEF:       entry.DEF,
		Level:     entry.Level,
		Banlist:   banlist,
	}, nil
}
