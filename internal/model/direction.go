package model

// Direction is the side a card was swiped towards
type Direction int

const (
	// DirectionLeft means the card was thrown to the left
	DirectionLeft Direction = iota

	// DirectionRight means the card was thrown to the right
	DirectionRight
)

// String returns the string representation of Direction
func (d Direction) String() string {
	switch d {
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return "unknown"
	}
}
