package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Shell hosts screens in a window: a shared navigation bar, a stack of
// pushed screens, at most one modal, and a collapsible left panel.
// It implements both Navigator and SideNavigator.
type Shell struct {
	window fyne.Window
	bar    *NavigationBar

	stack []Screen
	body  *fyne.Container

	leftPanel   *fyne.Container
	sideEnabled bool

	modal       *widget.PopUp
	modalScreen Screen

	edge     *EdgeSwipe
	lastSize fyne.Size
}

var (
	_ Navigator     = (*Shell)(nil)
	_ SideNavigator = (*Shell)(nil)
)

// NewShell creates a shell and installs it as the window content
func NewShell(window fyne.Window) *Shell {
	s := &Shell{
		window:    window,
		body:      container.NewStack(),
		leftPanel: container.NewStack(),
	}
	s.bar = NewNavigationBar(s.Pop)
	s.edge = NewEdgeSwipe(s.onEdgeGesture)
	s.leftPanel.Hide()

	content := container.New(&shellBodyLayout{onResize: s.onBodyResize}, s.body, s.edge)
	window.SetContent(container.NewBorder(s.bar, nil, s.leftPanel, nil, content))
	return s
}

// Bar returns the shared navigation bar
func (s *Shell) Bar() *NavigationBar {
	return s.bar
}

// SetLeftPanel sets the content of the collapsible left panel
func (s *Shell) SetLeftPanel(content fyne.CanvasObject) {
	sized := container.NewStack(content)
	spacer := widget.NewSeparator()
	s.leftPanel.Objects = []fyne.CanvasObject{
		container.NewBorder(nil, nil, nil, spacer, container.New(&fixedWidthLayout{width: SidePanelWidth}, sized)),
	}
	s.leftPanel.Refresh()
}

// SetRoot replaces the whole stack with screen
func (s *Shell) SetRoot(screen Screen) {
	s.stack = []Screen{screen}
	s.show(screen)
}

// Push shows screen on top of the stack
func (s *Shell) Push(screen Screen) {
	if screen == nil {
		return
	}
	log.Printf("Navigation push: %s", screen.Title())
	s.stack = append(s.stack, screen)
	s.show(screen)
}

// Pop removes the top screen; the root screen is never popped
func (s *Shell) Pop() {
	if len(s.stack) <= 1 {
		return
	}
	top := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	log.Printf("Navigation pop: %s", top.Title())
	s.show(s.stack[len(s.stack)-1])
}

// Present shows screen as a modal over the window
func (s *Shell) Present(screen Screen) {
	if screen == nil {
		return
	}
	if s.modal != nil {
		s.modal.Hide()
	}
	log.Printf("Navigation present: %s", screen.Title())

	closeBtn := widget.NewButtonWithIcon("", theme.CancelIcon(), s.Dismiss)
	closeBtn.Importance = widget.LowImportance
	title := widget.NewLabel(screen.Title())
	title.TextStyle = fyne.TextStyle{Bold: true}
	header := container.NewBorder(nil, nil, nil, closeBtn, title)

	s.modalScreen = screen
	s.modal = widget.NewModalPopUp(container.NewBorder(header, nil, nil, nil, screen.Content()), s.window.Canvas())
	s.modal.Resize(s.window.Canvas().Size())
	s.modal.Show()

	if appearer, ok := screen.(Appearer); ok {
		appearer.OnAppear()
	}
}

// Dismiss hides the modal, if any, and re-asserts the top screen
func (s *Shell) Dismiss() {
	if s.modal == nil {
		return
	}
	log.Printf("Navigation dismiss: %s", s.modalScreen.Title())
	s.modal.Hide()
	s.modal = nil
	s.modalScreen = nil

	if top := s.Top(); top != nil {
		if appearer, ok := top.(Appearer); ok {
			appearer.OnAppear()
		}
	}
}

// Top returns the visible screen of the stack
func (s *Shell) Top() Screen {
	if len(s.stack) == 0 {
		return nil
	}
	return s.stack[len(s.stack)-1]
}

// Depth returns the number of stacked screens
func (s *Shell) Depth() int {
	return len(s.stack)
}

// Modal returns the presented screen, if any
func (s *Shell) Modal() Screen {
	return s.modalScreen
}

// ToggleLeftPanel opens or closes the left panel while the panel is enabled
func (s *Shell) ToggleLeftPanel() {
	if !s.sideEnabled {
		return
	}
	s.setLeftPanelOpen(!s.leftPanel.Visible())
}

// SetEnabled enables or disables the left panel; disabling closes it
func (s *Shell) SetEnabled(enabled bool) {
	s.sideEnabled = enabled
	if !enabled && s.leftPanel.Visible() {
		s.setLeftPanelOpen(false)
	}
}

// Enabled reports whether the left panel may be opened
func (s *Shell) Enabled() bool {
	return s.sideEnabled
}

// LeftPanelOpen reports whether the left panel is showing
func (s *Shell) LeftPanelOpen() bool {
	return s.leftPanel.Visible()
}

// RefreshNavigationItem re-reads the top screen's bar controls
func (s *Shell) RefreshNavigationItem() {
	if top := s.Top(); top != nil {
		s.bar.SetItem(navigationItemFor(top), len(s.stack) > 1)
	}
}

func (s *Shell) setLeftPanelOpen(open bool) {
	if open {
		s.leftPanel.Show()
	} else {
		s.leftPanel.Hide()
	}
	if content := s.window.Content(); content != nil {
		content.Refresh()
	}
}

func (s *Shell) show(screen Screen) {
	s.body.Objects = []fyne.CanvasObject{screen.Content()}
	s.body.Refresh()
	s.bar.SetItem(navigationItemFor(screen), len(s.stack) > 1)

	if appearer, ok := screen.(Appearer); ok {
		appearer.OnAppear()
	}
	if resizer, ok := screen.(Resizer); ok && s.lastSize != (fyne.Size{}) {
		resizer.OnLayoutSizeChange(s.lastSize)
	}
}

func (s *Shell) onBodyResize(size fyne.Size) {
	s.lastSize = size
	if resizer, ok := s.Top().(Resizer); ok {
		resizer.OnLayoutSizeChange(size)
	}
	if s.modal != nil {
		s.modal.Resize(s.window.Canvas().Size())
	}
}

func (s *Shell) onEdgeGesture(gesture GestureType) {
	switch gesture {
	case GestureSwipeRight:
		if s.sideEnabled && !s.leftPanel.Visible() {
			s.setLeftPanelOpen(true)
		}
	case GestureSwipeLeft:
		if s.leftPanel.Visible() {
			s.setLeftPanelOpen(false)
		}
	}
}

// navigationItemFor returns the screen's own item or a plain title
func navigationItemFor(screen Screen) NavigationItem {
	if provider, ok := screen.(NavigationItemProvider); ok {
		return provider.NavigationItem()
	}
	title := widget.NewLabel(screen.Title())
	title.TextStyle = fyne.TextStyle{Bold: true}
	return NavigationItem{Title: title}
}

// shellBodyLayout fills the first object and pins the second to the left
// edge, reporting size changes to onResize
type shellBodyLayout struct {
	onResize func(fyne.Size)
	last     fyne.Size
}

func (l *shellBodyLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) > 0 {
		objects[0].Move(fyne.NewPos(0, 0))
		objects[0].Resize(size)
	}
	if len(objects) > 1 {
		objects[1].Move(fyne.NewPos(0, 0))
		objects[1].Resize(fyne.NewSize(EdgeSwipeWidth, size.Height))
	}

	if size != l.last {
		l.last = size
		if l.onResize != nil {
			l.onResize(size)
		}
	}
}

func (l *shellBodyLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	if len(objects) == 0 {
		return fyne.NewSize(0, 0)
	}
	return objects[0].MinSize()
}

// fixedWidthLayout gives its children a fixed width
type fixedWidthLayout struct {
	width float32
}

func (l *fixedWidthLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	for _, o := range objects {
		o.Move(fyne.NewPos(0, 0))
		o.Resize(fyne.NewSize(l.width, size.Height))
	}
}

func (l *fixedWidthLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	height := float32(0)
	for _, o := range objects {
		if h := o.MinSize().Height; h > height {
			height = h
		}
	}
	return fyne.NewSize(l.width, height)
}
