package ui

import (
	"image/color"
	"math"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
)

// GestureType represents different types of gestures
type GestureType int

const (
	GestureTap GestureType = iota
	GestureSwipeLeft
	GestureSwipeRight
	GestureSwipeUp
	GestureSwipeDown
	GestureLongPress
)

// Gesture thresholds constants
const (
	DefaultSwipeThreshold    float32 = 50.0
	DefaultLongPressDuration         = 500 * time.Millisecond
)

// GestureHandler classifies a press/release pair into a gesture
type GestureHandler struct {
	onGesture func(GestureType)

	// Touch tracking
	touchStartTime time.Time
	touchStartPos  fyne.Position
	tracking       bool

	// Gesture thresholds
	swipeThreshold    float32
	longPressDuration time.Duration

	now func() time.Time
}

// NewGestureHandler creates a new gesture handler
func NewGestureHandler(onGesture func(GestureType)) *GestureHandler {
	return &GestureHandler{
		onGesture:         onGesture,
		swipeThreshold:    DefaultSwipeThreshold,
		longPressDuration: DefaultLongPressDuration,
		now:               time.Now,
	}
}

// Begin records the start of a press
func (gh *GestureHandler) Begin(pos fyne.Position) {
	gh.touchStartTime = gh.now()
	gh.touchStartPos = pos
	gh.tracking = true
}

// End classifies the gesture that finished at pos
func (gh *GestureHandler) End(pos fyne.Position) {
	if !gh.tracking {
		return
	}
	gh.tracking = false

	duration := gh.now().Sub(gh.touchStartTime)
	dx := pos.X - gh.touchStartPos.X
	dy := pos.Y - gh.touchStartPos.Y
	distance := float32(math.Hypot(float64(dx), float64(dy)))

	switch {
	case distance >= gh.swipeThreshold:
		gh.detectSwipeDirection(dx, dy)
	case duration >= gh.longPressDuration:
		gh.triggerGesture(GestureLongPress)
	default:
		gh.triggerGesture(GestureTap)
	}
}

// Cancel drops the press being tracked
func (gh *GestureHandler) Cancel() {
	gh.tracking = false
	gh.touchStartTime = time.Time{}
}

// detectSwipeDirection determines the direction of a swipe gesture
func (gh *GestureHandler) detectSwipeDirection(dx, dy float32) {
	absDx := dx
	if absDx < 0 {
		absDx = -absDx
	}
	absDy := dy
	if absDy < 0 {
		absDy = -absDy
	}

	if absDx > absDy {
		if dx > 0 {
			gh.triggerGesture(GestureSwipeRight)
		} else {
			gh.triggerGesture(GestureSwipeLeft)
		}
		return
	}

	if dy > 0 {
		gh.triggerGesture(GestureSwipeDown)
	} else {
		gh.triggerGesture(GestureSwipeUp)
	}
}

// triggerGesture triggers a gesture callback
func (gh *GestureHandler) triggerGesture(gesture GestureType) {
	if gh.onGesture != nil {
		gh.onGesture(gesture)
	}
}

// EdgeSwipe is a thin invisible strip that reports swipes, used to drag the
// side panel open from the screen edge. It accepts touch events on mobile
// and drags on desktop.
type EdgeSwipe struct {
	widget.BaseWidget
	handler *GestureHandler

	dragOrigin fyne.Position
	dragLast   fyne.Position
	dragging   bool
}

var (
	_ mobile.Touchable = (*EdgeSwipe)(nil)
	_ fyne.Draggable   = (*EdgeSwipe)(nil)
)

// NewEdgeSwipe creates an edge strip reporting gestures to onGesture
func NewEdgeSwipe(onGesture func(GestureType)) *EdgeSwipe {
	e := &EdgeSwipe{handler: NewGestureHandler(onGesture)}
	e.ExtendBaseWidget(e)
	return e
}

// CreateRenderer implements fyne.Widget
func (e *EdgeSwipe) CreateRenderer() fyne.WidgetRenderer {
	strip := canvas.NewRectangle(color.Transparent)
	strip.SetMinSize(fyne.NewSize(EdgeSwipeWidth, 0))
	return widget.NewSimpleRenderer(strip)
}

// TouchDown handles touch down events
func (e *EdgeSwipe) TouchDown(event *mobile.TouchEvent) {
	e.handler.Begin(event.Position)
}

// TouchUp handles touch up events
func (e *EdgeSwipe) TouchUp(event *mobile.TouchEvent) {
	e.handler.End(event.Position)
}

// TouchCancel handles touch cancel events
func (e *EdgeSwipe) TouchCancel(*mobile.TouchEvent) {
	e.handler.Cancel()
}

// Dragged accumulates a desktop drag
func (e *EdgeSwipe) Dragged(event *fyne.DragEvent) {
	if !e.dragging {
		e.dragging = true
		e.dragOrigin = event.Position.SubtractXY(event.Dragged.DX, event.Dragged.DY)
		e.handler.Begin(e.dragOrigin)
	}
	e.dragLast = event.Position
}

// DragEnd finishes a desktop drag
func (e *EdgeSwipe) DragEnd() {
	if !e.dragging {
		return
	}
	e.dragging = false
	e.handler.End(e.dragLast)
}
