package swipe

import (
	"testing"

	"github.com/ytget/swipecards/internal/model"
)

type callbackCounter struct {
	left  int
	right int
}

func (cc *callbackCounter) controller() *Controller {
	return NewController(func() { cc.left++ }, func() { cc.right++ }, Options{})
}

func TestController_DragChangeRotation(t *testing.T) {
	tests := []struct {
		dx       float32
		expected float32
	}{
		{0, 0},
		{10, 1},
		{-10, -1},
		{55, 5.5},
		{-250, -25},
		{1000, 100},
		{-10000, -1000},
	}

	for _, test := range tests {
		cc := &callbackCounter{}
		c := cc.controller()
		c.OnDragChange(Translation{DX: test.dx, DY: 7})

		state := c.State()
		if state.Rotation != test.expected {
			t.Errorf("OnDragChange(dx=%v) rotation = %v, expected %v", test.dx, state.Rotation, test.expected)
		}
		if state.Drag != (Translation{DX: test.dx, DY: 7}) {
			t.Errorf("OnDragChange(dx=%v) drag = %+v", test.dx, state.Drag)
		}
		if cc.left != 0 || cc.right != 0 {
			t.Errorf("OnDragChange(dx=%v) must not fire callbacks", test.dx)
		}
	}
}

func TestController_DragEndCancel(t *testing.T) {
	for _, dx := range []float32{0, 1, -1, 50, -50, 99.9, -99.9, 100, -100} {
		cc := &callbackCounter{}
		c := cc.controller()
		c.OnDragChange(Translation{DX: dx, DY: 30})
		c.OnDragEnd(Translation{DX: dx, DY: 30})

		state := c.State()
		if !state.Offset.IsZero() || !state.Drag.IsZero() || state.Rotation != 0 {
			t.Errorf("OnDragEnd(dx=%v) should snap back, got %+v", dx, state)
		}
		if state.Committed {
			t.Errorf("OnDragEnd(dx=%v) should not commit", dx)
		}
		if cc.left != 0 || cc.right != 0 {
			t.Errorf("OnDragEnd(dx=%v) fired callbacks left=%d right=%d", dx, cc.left, cc.right)
		}
	}
}

func TestController_DragEndSwipe(t *testing.T) {
	tests := []struct {
		dx        float32
		direction model.Direction
		left      int
		right     int
	}{
		{100.5, model.DirectionRight, 0, 1},
		{150, model.DirectionRight, 0, 1},
		{5000, model.DirectionRight, 0, 1},
		{-100.5, model.DirectionLeft, 1, 0},
		{-150, model.DirectionLeft, 1, 0},
		{-5000, model.DirectionLeft, 1, 0},
	}

	for _, test := range tests {
		cc := &callbackCounter{}
		c := cc.controller()
		translation := Translation{DX: test.dx, DY: -20}
		c.OnDragChange(translation)
		c.OnDragEnd(translation)

		state := c.State()
		if state.Offset != translation {
			t.Errorf("OnDragEnd(dx=%v) offset = %+v, expected %+v", test.dx, state.Offset, translation)
		}
		if !state.Committed || state.Direction != test.direction {
			t.Errorf("OnDragEnd(dx=%v) committed=%v direction=%s", test.dx, state.Committed, state.Direction)
		}
		if cc.left != test.left || cc.right != test.right {
			t.Errorf("OnDragEnd(dx=%v) callbacks left=%d right=%d, expected left=%d right=%d",
				test.dx, cc.left, cc.right, test.left, test.right)
		}
	}
}

func TestController_SwipeFiresOnce(t *testing.T) {
	cc := &callbackCounter{}
	c := cc.controller()

	c.OnDragEnd(Translation{DX: 200})
	c.OnDragEnd(Translation{DX: 200})
	c.OnDragChange(Translation{DX: -300})
	c.OnDragEnd(Translation{DX: -300})

	if cc.right != 1 || cc.left != 0 {
		t.Errorf("Expected exactly one right swipe, got left=%d right=%d", cc.left, cc.right)
	}
	if c.State().Offset.DX != 200 {
		t.Errorf("Committed offset must not change, got %+v", c.State().Offset)
	}
}

func TestController_NilCallbacks(t *testing.T) {
	c := NewController(nil, nil, Options{})
	c.OnDragEnd(Translation{DX: 300})
	if !c.Committed() {
		t.Error("Swipe should commit even without callbacks")
	}

	c = NewController(nil, nil, Options{})
	c.OnDragEnd(Translation{DX: -300})
	if c.State().Direction != model.DirectionLeft {
		t.Errorf("Expected left swipe, got %s", c.State().Direction)
	}
}

func TestController_Options(t *testing.T) {
	c := NewController(nil, nil, Options{})
	if c.Options().Threshold != DefaultThreshold || c.Options().RotationDivisor != DefaultRotationDivisor {
		t.Errorf("Expected defaults, got %+v", c.Options())
	}

	cc := &callbackCounter{}
	c = NewController(func() { cc.left++ }, func() { cc.right++ }, Options{Threshold: 40, RotationDivisor: 4})
	c.OnDragChange(Translation{DX: 20})
	if c.State().Rotation != 5 {
		t.Errorf("Expected rotation 5 with divisor 4, got %v", c.State().Rotation)
	}
	c.OnDragEnd(Translation{DX: 41})
	if cc.right != 1 {
		t.Error("Expected right swipe past custom threshold")
	}
}

func TestController_Listeners(t *testing.T) {
	c := NewController(nil, nil, Options{})
	var states []State
	c.AddListener(func(s State) { states = append(states, s) })
	c.AddListener(nil)

	c.OnDragChange(Translation{DX: 10})
	c.OnDragChange(Translation{DX: 20})
	c.OnDragEnd(Translation{DX: 20})

	if len(states) != 3 {
		t.Fatalf("Expected 3 notifications, got %d", len(states))
	}
	if states[1].Rotation != 2 {
		t.Errorf("Expected rotation 2 in second notification, got %v", states[1].Rotation)
	}
	if states[2] != (State{}) {
		t.Errorf("Expected rest state after snap back, got %+v", states[2])
	}
}

func TestState_Position(t *testing.T) {
	s := State{Offset: Translation{DX: 1, DY: 2}, Drag: Translation{DX: 10, DY: 20}}
	if p := s.Position(); p != (Translation{DX: 11, DY: 22}) {
		t.Errorf("Position() = %+v, expected {11 22}", p)
	}
}
