package model

import (
	"image/color"

	"github.com/google/uuid"
)

// Card is a single swipable item. It is immutable once created.
type Card struct {
	id              string
	imageName       string
	name            string
	backgroundColor color.Color
	textColor       color.Color
}

// NewCard creates a card with a freshly generated identity
func NewCard(imageName, name string, backgroundColor, textColor color.Color) *Card {
	return &Card{
		id:              uuid.NewString(),
		imageName:       imageName,
		name:            name,
		backgroundColor: backgroundColor,
		textColor:       textColor,
	}
}

// ID returns the unique card identity
func (c *Card) ID() string {
	return c.id
}

// ImageName returns the image reference (file path or resource name)
func (c *Card) ImageName() string {
	return c.imageName
}

// Name returns the label text
func (c *Card) Name() string {
	return c.name
}

// BackgroundColor returns the card background, defaulting to white
func (c *Card) BackgroundColor() color.Color {
	if c.backgroundColor == nil {
		return color.White
	}
	return c.backgroundColor
}

// TextColor returns the label color, defaulting to black
func (c *Card) TextColor() color.Color {
	if c.textColor == nil {
		return color.Black
	}
	return c.textColor
}
