package deck

import (
	"image/color"

	"github.com/ytget/swipecards/internal/model"
)

// DefaultDeck returns the built-in sample deck used when no file is given
func DefaultDeck() *Deck {
	return &Deck{
		Name: "Sample",
		Cards: []*model.Card{
			model.NewCard("", "Alice", color.NRGBA{R: 255, G: 205, B: 210, A: 255}, color.NRGBA{R: 136, G: 14, B: 79, A: 255}),
			model.NewCard("", "Bob", color.NRGBA{R: 187, G: 222, B: 251, A: 255}, color.NRGBA{R: 13, G: 71, B: 161, A: 255}),
			model.NewCard("", "Carol", color.NRGBA{R: 200, G: 230, B: 201, A: 255}, color.NRGBA{R: 27, G: 94, B: 32, A: 255}),
			model.NewCard("", "Dave", color.NRGBA{R: 255, G: 236, B: 179, A: 255}, color.NRGBA{R: 230, G: 81, B: 0, A: 255}),
		},
	}
}
