package ui

import (
	"fyne.io/fyne/v2"
		"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/swipecards/internal/model"
	"github.com/ytget/swipecards/internal/render"
	"github.com/ytget/swipecards/internal/swipe"
)

// SwipableCard is a card that follows drag gestures, tilts while dragged
// and reports a swipe left or right once released past the threshold.
type SwipableCard struct {
	widget.BaseWidget

	card       *model.Card
	presenter  *render.Presenter
	controller *swipe.Controller

	drag  *swipe.DragTracker
	touch *swipe.TouchTracker

	interactive bool
}

var (
	_ fyne.Draggable   = (*SwipableCard)(nil)
	_ mobile.Touchable = (*SwipableCard)(nil)
)

// NewSwipableCard creates a swipable card. The callbacks fire at most once,
// when a gesture commits to a direction.
func NewSwipableCard(card *model.Card, presenter *render.Presenter, onSwipeLeft, onSwipeRight func(), opts swipe.Options) *SwipableCard {
	sc := &SwipableCard{
		card:        card,
		presenter:   presenter,
		controller:  swipe.NewController(onSwipeLeft, onSwipeRight, opts),
		drag:        swipe.NewDragTracker(),
		touch:       swipe.NewTouchTracker(),
		interactive: true,
	}
	sc.ExtendBaseWidget(sc)

	swipe.Bind(sc.drag, sc.controller)
	swipe.Bind(sc.touch, sc.controller)
	sc.controller.AddListener(func(swipe.State) {
		sc.Refresh()
	})
	return sc
}

// Card returns the card shown by this widget
func (sc *SwipableCard) Card() *model.Card {
	return sc.card
}

// Controller returns the gesture controller driving this card
func (sc *SwipableCard) Controller() *swipe.Controller {
	return sc.controller
}

// SetInteractive enables or disables gesture input. Only the topmost card
// of a stack accepts input.
func (sc *SwipableCard) SetInteractive(interactive bool) {
	sc.interactive = interactive
}

// Interactive reports whether the card accepts gestures
func (sc *SwipableCard) Interactive() bool {
	return sc.interactive
}

// Dragged handles pointer drag events
func (sc *SwipableCard) Dragged(event *fyne.DragEvent) {
	if !sc.interactive {
		return
	}
	sc.drag.Dragged(event)
}

// DragEnd handles the end of a pointer drag
func (sc *SwipableCard) DragEnd() {
	if !sc.interactive {
		return
	}
	sc.drag.DragEnd()
}

// TouchDown handles touch down events
func (sc *SwipableCard) TouchDown(event *mobile.TouchEvent) {
	if !sc.interactive {
		return
	}
	sc.touch.TouchDown(event)
}

// TouchUp handles touch up events
func (sc *SwipableCard) TouchUp(event *mobile.TouchEvent) {
	if !sc.interactive {
		return
	}
	sc.touch.TouchUp(event)
}

// TouchCancel handles touch cancel events. The pointer drag fed by the
// same touch is dropped too, so the card snaps back.
func (sc *SwipableCard) TouchCancel(event *mobile.TouchEvent) {
	if !sc.interactive {
		return
	}
	sc.drag.Cancel()
	sc.touch.TouchCancel(event)
}

// CreateRenderer creates the widget renderer
func (sc *SwipableCard) CreateRenderer() fyne.WidgetRenderer {
	r := &swipableCardRenderer{card: sc, view: NewCardView(sc.card, sc.presenter)}
	r.view.SetRotation(sc.controller.State().Rotation)
	return r
}

// swipableCardRenderer shifts the card view by the drag position and
// passes the tilt on to it
type swipableCardRenderer struct {
	card *SwipableCard
	view *CardView

	size fyne.Size
}

func (r *swipableCardRenderer) Layout(size fyne.Size) {
	r.size = size
	r.place()
}

func (r *swipableCardRenderer) MinSize() fyne.Size {
	return r.view.MinSize()
}

func (r *swipableCardRenderer) Refresh() {
	r.view.SetRotation(r.card.controller.State().Rotation)
	r.place()
}

func (r *swipableCardRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.view}
}

func (r *swipableCardRenderer) Destroy() {}

func (r *swipableCardRenderer) place() {
	pos := r.card.controller.State().Position()
	r.view.Resize(r.size)
	r.view.Move(fyne.NewPos(pos.DX, pos.DY))
}
