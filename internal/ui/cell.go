package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// CellSlot is a row object recycled by the feed list. It owns at most one
// CardView, built on first population and reused for every later item.
// All fields are touched only on the UI goroutine.
type CellSlot struct {
	widget.BaseWidget

	holder *fyne.Container
	card   *CardView

	generation uint64
	index      int
}

// NewCellSlot creates an empty slot
func NewCellSlot() *CellSlot {
	s := &CellSlot{
		holder: container.NewStack(),
		index:  -1,
	}
	s.ExtendBaseWidget(s)
	return s
}

// CreateRenderer implements fyne.Widget
func (s *CellSlot) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(s.holder)
}

// Card returns the slot's card, or nil before the first population
func (s *CellSlot) Card() *CardView {
	return s.card
}

// Attach installs card as the slot's only card. A slot never holds two
// cards; a second attach is ignored.
func (s *CellSlot) Attach(card *CardView) {
	if s.card != nil {
		log.Printf("Warning: CellSlot already holds a card, ignoring attach")
		return
	}
	s.card = card
	s.holder.Objects = []fyne.CanvasObject{card}
	s.holder.Refresh()
}

// Bind records that the slot now shows the item at index and returns the
// new generation. Work started under an older generation is stale.
func (s *CellSlot) Bind(index int) uint64 {
	s.generation++
	s.index = index
	return s.generation
}

// Generation returns the current binding generation
func (s *CellSlot) Generation() uint64 {
	return s.generation
}

// Index returns the feed position the slot currently shows, or -1
func (s *CellSlot) Index() int {
	return s.index
}

// IsCurrent reports whether generation is still the slot's binding
func (s *CellSlot) IsCurrent(generation uint64) bool {
	return s.generation == generation
}
