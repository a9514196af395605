package swipe

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/mobile"
)

// Recognizer turns raw host input into cumulative drag translations
type Recognizer interface {
	OnChange(func(Translation))
	OnEnd(func(Translation))
}

// Bind connects a recognizer to a controller
func Bind(r Recognizer, c *Controller) {
	r.OnChange(c.OnDragChange)
	r.OnEnd(c.OnDragEnd)
}

// handlers holds the two registrations shared by every recognizer
type handlers struct {
	onChange func(Translation)
	onEnd    func(Translation)
}

// OnChange registers the live translation handler
func (h *handlers) OnChange(f func(Translation)) {
	h.onChange = f
}

// OnEnd registers the terminal translation handler
func (h *handlers) OnEnd(f func(Translation)) {
	h.onEnd = f
}

func (h *handlers) change(t Translation) {
	if h.onChange != nil {
		h.onChange(t)
	}
}

func (h *handlers) end(t Translation) {
	if h.onEnd != nil {
		h.onEnd(t)
	}
}

// DragTracker recognizes pointer drags. Fyne reports drags as incremental
// deltas, so the tracker accumulates them into a translation measured from
// the start of the gesture.
type DragTracker struct {
	handlers

	translation Translation
	active      bool
}

// NewDragTracker creates a new pointer drag recognizer
func NewDragTracker() *DragTracker {
	return &DragTracker{}
}

// Dragged handles one incremental pointer move
func (dt *DragTracker) Dragged(event *fyne.DragEvent) {
	if event == nil {
		return
	}
	dt.active = true
	dt.translation = dt.translation.Add(Translation{DX: event.Dragged.DX, DY: event.Dragged.DY})
	dt.change(dt.translation)
}

// DragEnd ends the gesture and resets the accumulator
func (dt *DragTracker) DragEnd() {
	if !dt.active {
		return
	}
	final := dt.translation
	dt.translation = Translation{}
	dt.active = false
	dt.end(final)
}

// Cancel drops the gesture in flight without reporting an end
func (dt *DragTracker) Cancel() {
	dt.translation = Translation{}
	dt.active = false
}

// Translation returns the cumulative translation of the gesture in flight
func (dt *DragTracker) Translation() Translation {
	return dt.translation
}

// TouchTracker recognizes single-finger touches from mobile drivers. The
// mobile interface has no move event: live movement arrives through
// fyne.Draggable, so this tracker only reports how a touch ends. The final
// translation is measured from the touch-down point.
type TouchTracker struct {
	handlers

	startPos fyne.Position
	touching bool
}

// NewTouchTracker creates a new touch recognizer
func NewTouchTracker() *TouchTracker {
	return &TouchTracker{}
}

// TouchDown handles touch down events
func (tt *TouchTracker) TouchDown(event *mobile.TouchEvent) {
	if event == nil {
		return
	}
	tt.startPos = event.Position
	tt.touching = true
}

// TouchUp ends the gesture at the lift-off position
func (tt *TouchTracker) TouchUp(event *mobile.TouchEvent) {
	if !tt.touching || event == nil {
		return
	}
	tt.touching = false
	tt.end(tt.translationTo(event.Position))
}

// TouchCancel ends the gesture without movement, which snaps the card back
func (tt *TouchTracker) TouchCancel(event *mobile.TouchEvent) {
	if !tt.touching {
		return
	}
	tt.touching = false
	tt.end(Translation{})
}

func (tt *TouchTracker) translationTo(pos fyne.Position) Translation {
	return Translation{DX: pos.X - tt.startPos.X, DY: pos.Y - tt.startPos.Y}
}
