package swipe

import (
	"math"

	"github.com/ytget/swipecards/internal/model"
)

// Gesture tuning defaults
const (
	DefaultThreshold       float32 = 100
	DefaultRotationDivisor float32 = 10
)

// Translation is the cumulative (dx, dy) offset of a gesture from its start
type Translation struct {
	DX float32
	DY float32
}

// Add returns the sum of two translations
func (t Translation) Add(o Translation) Translation {
	return Translation{DX: t.DX + o.DX, DY: t.DY + o.DY}
}

// IsZero reports whether the translation is at rest
func (t Translation) IsZero() bool {
	return t.DX == 0 && t.DY == 0
}

// Options tunes the decision rule. Zero values select the defaults.
type Options struct {
	// Threshold is the absolute horizontal distance a drag must exceed
	// to commit a swipe.
	Threshold float32

	// RotationDivisor maps horizontal drag to degrees of tilt.
	RotationDivisor float32
}

func (o Options) withDefaults() Options {
	if o.Threshold <= 0 {
		o.Threshold = DefaultThreshold
	}
	if o.RotationDivisor <= 0 {
		o.RotationDivisor = DefaultRotationDivisor
	}
	return o
}

// State is a snapshot of the visual state of one card
type State struct {
	Offset    Translation // committed offset, set when a swipe is decided
	Drag      Translation // live drag accumulator
	Rotation  float32     // degrees, positive is clockwise
	Committed bool
	Direction model.Direction
}

// Position returns where the card is drawn relative to its rest position
func (s State) Position() Translation {
	return s.Offset.Add(s.Drag)
}

// Controller owns the drag state of a single card
type Controller struct {
	opts  Options
	state State

	onSwipeLeft  func()
	onSwipeRight func()
	listeners    []func(State)
}

// NewController creates a controller with the given swipe callbacks.
// Either callback may be nil.
func NewController(onSwipeLeft, onSwipeRight func(), opts Options) *Controller {
	return &Controller{
		opts:         opts.withDefaults(),
		onSwipeLeft:  onSwipeLeft,
		onSwipeRight: onSwipeRight,
	}
}

// Options returns the effective tuning
func (c *Controller) Options() Options {
	return c.opts
}

// State returns the current visual state
func (c *Controller) State() State {
	return c.state
}

// Committed reports whether the card has already been swiped away
func (c *Controller) Committed() bool {
	return c.state.Committed
}

// AddListener registers a function called after every state change
func (c *Controller) AddListener(l func(State)) {
	if l != nil {
		c.listeners = append(c.listeners, l)
	}
}

// OnDragChange updates the live offset and tilt. No callback fires.
func (c *Controller) OnDragChange(t Translation) {
	if c.state.Committed {
		return
	}

	c.state.Drag = t
	c.state.Rotation = t.DX / c.opts.RotationDivisor
	c.notify()
}

// OnDragEnd decides the gesture. A horizontal distance strictly greater
// than the threshold commits a swipe and fires exactly one callback;
// anything else snaps the card back to rest.
func (c *Controller) OnDragEnd(t Translation) {
	if c.state.Committed {
		return
	}

	if abs32(t.DX) <= c.opts.Threshold {
		c.state = State{}
		c.notify()
		return
	}

	c.state.Committed = true
	c.state.Offset = t
	if t.DX > 0 {
		c.state.Direction = model.DirectionRight
	} else {
		c.state.Direction = model.DirectionLeft
	}
	c.notify()

	if c.state.Direction == model.DirectionRight {
		if c.onSwipeRight != nil {
			c.onSwipeRight()
		}
		return
	}
	if c.onSwipeLeft != nil {
		c.onSwipeLeft()
	}
}

func (c *Controller) notify() {
	for _, l := range c.listeners {
		l(c.state)
	}
}

func abs32(v float32) float32 {
	return float32(math.Abs(float64(v)))
}
