package ui

import (
	"context"
	"image"
	"sync"

	"fyne.io/fyne/v2"

	"github.com/ytget/recipes-feed/internal/thumbnail"
)

// recordingSide records side panel calls
type recordingSide struct {
	toggles  int
	enabled  bool
	setCalls []bool
}

func (r *recordingSide) ToggleLeftPanel() { r.toggles++ }

func (r *recordingSide) SetEnabled(enabled bool) {
	r.enabled = enabled
	r.setCalls = append(r.setCalls, enabled)
}

// recordingNav records navigation calls
type recordingNav struct {
	pushed    []Screen
	presented []Screen
	pops      int
	dismisses int
}

func (r *recordingNav) Push(screen Screen)    { r.pushed = append(r.pushed, screen) }
func (r *recordingNav) Pop()                  { r.pops++ }
func (r *recordingNav) Present(screen Screen) { r.presented = append(r.presented, screen) }
func (r *recordingNav) Dismiss()              { r.dismisses++ }

// stubScreen is a minimal Screen
type stubScreen struct {
	title   string
	content fyne.CanvasObject
	appears int
	sizes   []fyne.Size
}

func (s *stubScreen) Title() string                     { return s.title }
func (s *stubScreen) Content() fyne.CanvasObject        { return s.content }
func (s *stubScreen) OnAppear()                         { s.appears++ }
func (s *stubScreen) OnLayoutSizeChange(size fyne.Size) { s.sizes = append(s.sizes, size) }

// manualRenderer captures loads so tests decide when and how they finish
type manualRenderer struct {
	mu        sync.Mutex
	requests  []thumbnail.Request
	callbacks []func(thumbnail.Result)

	// When set, loads complete immediately with these values
	immediate bool
	image     image.Image
	err       error
}

func (m *manualRenderer) Render(context.Context, thumbnail.Request) (image.Image, error) {
	return m.image, m.err
}

func (m *manualRenderer) Load(_ context.Context, req thumbnail.Request, done func(thumbnail.Result)) {
	m.mu.Lock()
	m.requests = append(m.requests, req)
	m.callbacks = append(m.callbacks, done)
	immediate := m.immediate
	m.mu.Unlock()

	if immediate {
		done(thumbnail.Result{Request: req, Image: m.image, Err: m.err})
	}
}

func (m *manualRenderer) Wait() {}

// complete finishes the i-th captured load
func (m *manualRenderer) complete(i int, img image.Image, err error) {
	m.mu.Lock()
	req := m.requests[i]
	done := m.callbacks[i]
	m.mu.Unlock()
	done(thumbnail.Result{Request: req, Image: img, Err: err})
}

func (m *manualRenderer) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.requests)
}

// syncDispatch runs UI work inline
func syncDispatch(fn func()) { fn() }

func solidImage(width, height int) image.Image {
	return image.NewRGBA(image.Rect(0, 0, width, height))
}
