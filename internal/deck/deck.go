// Package deck loads card data from TOML deck files.
package deck

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gogpu/gg"

	"github.com/ytget/swipecards/internal/model"
)

// ErrNoCards is returned for a deck file without any card entries
var ErrNoCards = errors.New("deck has no cards")

// Default colours for cards that omit them
const (
	DefaultBackground = "#ffffff"
	DefaultText       = "#000000"
)

// Config mirrors the on-disk layout of a deck file
type Config struct {
	Name  string       `toml:"name"`
	Cards []CardConfig `toml:"card"`
}

// CardConfig is a single [[card]] entry
type CardConfig struct {
	Image      string `toml:"image"`
	Name       string `toml:"name"`
	Background string `toml:"background"`
	Text       string `toml:"text"`
}

// Deck is a named, ordered list of cards ready to be stacked
type Deck struct {
	Name  string
	Path  string
	Cards []*model.Card
}

// Stack returns a new card stack populated with the deck's cards
func (d *Deck) Stack() *model.CardStack {
	return model.NewCardStack(d.Cards...)
}

// LoadDeck loads a deck from a TOML file. Relative image paths resolve
// against the directory holding the file.
func LoadDeck(path string) (*Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read deck %s: %w", path, err)
	}

	d, err := ParseDeck(data, filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("failed to load deck %s: %w", path, err)
	}
	d.Path = path
	if d.Name == "" {
		d.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return d, nil
}

// ParseDeck decodes deck TOML. baseDir anchors relative image paths; an
// empty baseDir leaves them untouched.
func ParseDeck(data []byte, baseDir string) (*Deck, error) {
	var cfg Config
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return nil, fmt.Errorf("error parsing deck: %w", err)
	}
	if len(cfg.Cards) == 0 {
		return nil, ErrNoCards
	}

	d := &Deck{Name: cfg.Name}
	for i, cc := range cfg.Cards {
		bg, err := ParseColor(orDefault(cc.Background, DefaultBackground))
		if err != nil {
			return nil, fmt.Errorf("card %d (%s): background: %w", i+1, cc.Name, err)
		}
		fg, err := ParseColor(orDefault(cc.Text, DefaultText))
		if err != nil {
			return nil, fmt.Errorf("card %d (%s): text: %w", i+1, cc.Name, err)
		}

		image := cc.Image
		if image != "" && baseDir != "" && !filepath.IsAbs(image) {
			image = filepath.Join(baseDir, image)
		}

		d.Cards = append(d.Cards, model.NewCard(image, cc.Name, bg, fg))
	}
	return d, nil
}

// ParseColor parses #rgb, #rgba, #rrggbb and #rrggbbaa hex colours
func ParseColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")

	switch len(hex) {
	case 3, 4, 6, 8:
	default:
		return color.NRGBA{}, fmt.Errorf("invalid colour %q", s)
	}
	if i := strings.IndexFunc(hex, notHexDigit); i >= 0 {
		return color.NRGBA{}, fmt.Errorf("invalid colour %q: bad digit %q", s, hex[i])
	}

	c := gg.Hex(hex)
	return color.NRGBA{
		R: channel(c.R),
		G: channel(c.G),
		B: channel(c.B),
		A: channel(c.A),
	}, nil
}

func notHexDigit(r rune) bool {
	return !('0' <= r && r <= '9' || 'a' <= r && r <= 'f' || 'A' <= r && r <= 'F')
}

func channel(v float64) uint8 {
	return uint8(math.Round(v * 255))
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
