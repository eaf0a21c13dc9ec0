package ui

import (
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/mobile"
	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestGestureHandler() (*GestureHandler, *fakeClock, *[]GestureType) {
	var got []GestureType
	clock := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	gh := NewGestureHandler(func(g GestureType) { got = append(got, g) })
	gh.now = clock.now
	return gh, clock, &got
}

func TestGestureHandler_Swipes(t *testing.T) {
	tests := []struct {
		name string
		end  fyne.Position
		want GestureType
	}{
		{"right", fyne.NewPos(160, 105), GestureSwipeRight},
		{"left", fyne.NewPos(40, 95), GestureSwipeLeft},
		{"down", fyne.NewPos(105, 170), GestureSwipeDown},
		{"up", fyne.NewPos(95, 30), GestureSwipeUp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gh, clock, got := newTestGestureHandler()

			gh.Begin(fyne.NewPos(100, 100))
			clock.advance(100 * time.Millisecond)
			gh.End(tt.end)

			assert.Equal(t, []GestureType{tt.want}, *got)
		})
	}
}

func TestGestureHandler_TapAndLongPress(t *testing.T) {
	gh, clock, got := newTestGestureHandler()

	gh.Begin(fyne.NewPos(10, 10))
	clock.advance(50 * time.Millisecond)
	gh.End(fyne.NewPos(12, 11))

	gh.Begin(fyne.NewPos(10, 10))
	clock.advance(DefaultLongPressDuration)
	gh.End(fyne.NewPos(10, 10))

	assert.Equal(t, []GestureType{GestureTap, GestureLongPress}, *got)
}

func TestGestureHandler_DiagonalUsesDistance(t *testing.T) {
	gh, _, got := newTestGestureHandler()

	// 40 on each axis is under the threshold per axis but over it in distance
	gh.Begin(fyne.NewPos(0, 0))
	gh.End(fyne.NewPos(40, 41))

	assert.Equal(t, []GestureType{GestureSwipeDown}, *got)
}

func TestGestureHandler_EndWithoutBegin(t *testing.T) {
	gh, _, got := newTestGestureHandler()

	gh.End(fyne.NewPos(200, 0))
	gh.Begin(fyne.NewPos(0, 0))
	gh.Cancel()
	gh.End(fyne.NewPos(200, 0))

	assert.Empty(t, *got)
}

func TestEdgeSwipe_Touch(t *testing.T) {
	var got []GestureType
	edge := NewEdgeSwipe(func(g GestureType) { got = append(got, g) })

	edge.TouchDown(&mobile.TouchEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(2, 300)}})
	edge.TouchUp(&mobile.TouchEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(180, 310)}})

	assert.Equal(t, []GestureType{GestureSwipeRight}, got)
}

func TestEdgeSwipe_Drag(t *testing.T) {
	var got []GestureType
	edge := NewEdgeSwipe(func(g GestureType) { got = append(got, g) })

	edge.Dragged(&fyne.DragEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(12, 300)},
		Dragged:    fyne.NewDelta(10, 0),
	})
	edge.Dragged(&fyne.DragEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(90, 302)},
		Dragged:    fyne.NewDelta(78, 2),
	})
	edge.DragEnd()

	// A second DragEnd without a drag is ignored
	edge.DragEnd()

	assert.Equal(t, []GestureType{GestureSwipeRight}, got)
}
