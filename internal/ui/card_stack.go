package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/swipecards/internal/model"
	"github.com/ytget/swipecards/internal/render"
	"github.com/ytget/swipecards/internal/swipe"
)

// CardStack shows a stack of swipable cards. The last card of the model
// is the topmost one and the only one accepting gestures. A card swiped
// in either direction is removed from the stack.
type CardStack struct {
	widget.BaseWidget

	stack     *model.CardStack
	presenter *render.Presenter
	opts      swipe.Options

	views   map[string]*SwipableCard
	content *fyne.Container
	empty   fyne.CanvasObject

	// OnSwiped is called after a card was swiped and removed
	OnSwiped func(card *model.Card, direction model.Direction)

	// OnEmpty is called once the last card has been swiped away
	OnEmpty func()
}

// NewCardStack creates a stack widget for the given cards
func NewCardStack(stack *model.CardStack, presenter *render.Presenter, opts swipe.Options) *CardStack {
	if stack == nil {
		log.Printf("Warning: NewCardStack called with nil stack")
		stack = model.NewCardStack()
	}

	cs := &CardStack{
		stack:     stack,
		presenter: presenter,
		opts:      opts,
		views:     make(map[string]*SwipableCard),
		content:   container.NewStack(),
	}
	cs.ExtendBaseWidget(cs)

	placeholder := canvas.NewImageFromImage(render.Placeholder(theme.Color(theme.ColorNameDisabled)))
	placeholder.FillMode = canvas.ImageFillOriginal
	cs.empty = placeholder

	stack.AddListener(cs.sync)
	cs.sync()
	return cs
}

// Stack returns the underlying card sequence
func (cs *CardStack) Stack() *model.CardStack {
	return cs.stack
}

// Top returns the widget of the topmost card, or nil for an empty stack
func (cs *CardStack) Top() *SwipableCard {
	top := cs.stack.Top()
	if top == nil {
		return nil
	}
	return cs.views[top.ID()]
}

// View returns the widget showing the card with the given id
func (cs *CardStack) View(id string) *SwipableCard {
	return cs.views[id]
}

// RemoveCard removes a card by id. Unknown ids are ignored.
func (cs *CardStack) RemoveCard(id string) {
	cs.stack.RemoveCard(id)
}

// Release drops the cached faces of the cards still in the stack. The
// host calls it before replacing the widget.
func (cs *CardStack) Release() {
	for id := range cs.views {
		cs.presenter.Forget(id)
		delete(cs.views, id)
	}
}

// CreateRenderer creates the widget renderer
func (cs *CardStack) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewPadded(cs.content))
}

// sync rebuilds the card widgets from the model. Cards are added bottom
// first so the topmost card is drawn last and receives input.
func (cs *CardStack) sync() {
	cards := cs.stack.Cards()

	alive := make(map[string]bool, len(cards))
	objects := make([]fyne.CanvasObject, 0, len(cards))
	for _, c := range cards {
		alive[c.ID()] = true

		view, ok := cs.views[c.ID()]
		if !ok {
			view = cs.newView(c)
			cs.views[c.ID()] = view
		}
		view.SetInteractive(cs.stack.IsTop(c.ID()))
		objects = append(objects, view)
	}

	for id := range cs.views {
		if !alive[id] {
			delete(cs.views, id)
			cs.presenter.Forget(id)
		}
	}

	if len(objects) == 0 {
		objects = append(objects, cs.empty)
	}
	cs.content.Objects = objects
	cs.content.Refresh()
}

func (cs *CardStack) newView(c *model.Card) *SwipableCard {
	return NewSwipableCard(c, cs.presenter,
		func() { cs.handleSwipe(c, model.DirectionLeft) },
		func() { cs.handleSwipe(c, model.DirectionRight) },
		cs.opts,
	)
}

func (cs *CardStack) handleSwipe(c *model.Card, direction model.Direction) {
	log.Printf("Swiped %s on %s", direction, c.Name())

	if !cs.stack.RemoveCard(c.ID()) {
		return
	}

	if cs.OnSwiped != nil {
		cs.OnSwiped(c, direction)
	}
	if cs.stack.IsEmpty() && cs.OnEmpty != nil {
		cs.OnEmpty()
	}
}
