package ui

import (
	"context"
	"errors"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/recipes-feed/internal/config"
	"github.com/ytget/recipes-feed/internal/model"
	"github.com/ytget/recipes-feed/internal/thumbnail"
)

// FeedDeps are the collaborators a FeedScreen is built with
type FeedDeps struct {
	Feed         *model.Feed
	Side         SideNavigator
	Nav          Navigator
	Bar          BarStyler
	Theme        ThemeProvider
	Thumbnails   thumbnail.Renderer
	Settings     *config.Settings
	Localization *Localization

	// NewDetail builds the screen pushed when an item is selected
	NewDetail func(item model.FeedItem) Screen
	// NewSearch builds the modal search screen
	NewSearch func() Screen

	// Dispatch marshals thumbnail results onto the UI goroutine; defaults to fyne.Do
	Dispatch Dispatcher
}

// FeedScreen renders a fixed feed as recycled card rows
type FeedScreen struct {
	feed         *model.Feed
	side         SideNavigator
	nav          Navigator
	bar          BarStyler
	theme        ThemeProvider
	thumbs       thumbnail.Renderer
	settings     *config.Settings
	localization *Localization
	newDetail    func(item model.FeedItem) Screen
	newSearch    func() Screen
	dispatch     Dispatcher

	ctx    context.Context
	cancel context.CancelFunc

	// Navigation bar controls
	titleText     *canvas.Text
	menuButton    *widget.Button
	switchControl *widget.Check
	searchButton  *widget.Button

	list    *widget.List
	content fyne.CanvasObject

	// Counters observed by tests and logs
	cardBuilds  int
	textWrites  int
	discarded   int
	appliedLate int
}

var (
	_ Screen                 = (*FeedScreen)(nil)
	_ Appearer               = (*FeedScreen)(nil)
	_ Resizer                = (*FeedScreen)(nil)
	_ NavigationItemProvider = (*FeedScreen)(nil)
)

// NewFeedScreen creates the feed screen
func NewFeedScreen(deps FeedDeps) *FeedScreen {
	s := &FeedScreen{
		feed:         deps.Feed,
		side:         deps.Side,
		nav:          deps.Nav,
		bar:          deps.Bar,
		theme:        deps.Theme,
		thumbs:       deps.Thumbnails,
		settings:     deps.Settings,
		localization: deps.Localization,
		newDetail:    deps.NewDetail,
		newSearch:    deps.NewSearch,
		dispatch:     deps.Dispatch,
	}
	if s.dispatch == nil {
		s.dispatch = fyne.Do
	}
	if s.localization == nil {
		s.localization = NewLocalization()
	}
	s.ctx, s.cancel = context.WithCancel(context.Background())

	s.createNavigationControls()
	s.createList()

	log.Printf("FeedScreen initialized with %d items", s.ItemCount())
	return s
}

// Title returns the screen title
func (s *FeedScreen) Title() string {
	return s.localization.GetText(KeyFeedTitle)
}

// Content returns the screen's canvas object
func (s *FeedScreen) Content() fyne.CanvasObject {
	return s.content
}

// NavigationItem returns the bar controls: menu on the left, switch and search on the right
func (s *FeedScreen) NavigationItem() NavigationItem {
	return NavigationItem{
		Title: s.titleText,
		Left:  []fyne.CanvasObject{s.menuButton},
		Right: []fyne.CanvasObject{s.switchControl, s.searchButton},
	}
}

// Close stops waiting for decode workers; in-flight renders still finish
func (s *FeedScreen) Close() {
	s.cancel()
}

// OnAppear re-enables the side panel and re-applies the bar style.
// The shell may share the bar with other screens, so this runs on every appearance.
func (s *FeedScreen) OnAppear() {
	if s.side != nil {
		s.side.SetEnabled(true)
	}
	if s.bar != nil {
		s.bar.SetStyle(BarStyle{
			Background: s.theme.ColorToken(ColorNameNavigationBar),
			Tint:       s.theme.ColorToken(ColorNameOnPrimary),
		})
	}
}

// OnLayoutSizeChange re-lays the visible rows for a new viewport size
func (s *FeedScreen) OnLayoutSizeChange(size fyne.Size) {
	log.Printf("FeedScreen layout size changed: %.0fx%.0f", size.Width, size.Height)
	s.list.Refresh()
}

// OnMenuAction toggles the side panel
func (s *FeedScreen) OnMenuAction() {
	if s.side != nil {
		s.side.ToggleLeftPanel()
	}
}

// OnSearchAction presents the search screen
func (s *FeedScreen) OnSearchAction() {
	if s.nav == nil || s.newSearch == nil {
		return
	}
	s.nav.Present(s.newSearch())
}

// OnItemSelected pushes the detail screen for index; out-of-range indexes are ignored
func (s *FeedScreen) OnItemSelected(index int) {
	if !s.feed.Contains(index) {
		log.Printf("FeedScreen ignoring selection of index %d (count %d)", index, s.ItemCount())
		return
	}
	if s.nav == nil || s.newDetail == nil {
		return
	}
	s.nav.Push(s.newDetail(s.feed.At(index)))
}

// ItemCount returns the number of feed items
func (s *FeedScreen) ItemCount() int {
	return s.feed.Len()
}

// Item returns the feed item at index; index must be in [0, ItemCount())
func (s *FeedScreen) Item(index int) model.FeedItem {
	return s.feed.At(index)
}

// RowHeight returns the declared height of the item at index
func (s *FeedScreen) RowHeight(index int) float32 {
	return s.feed.At(index).Height
}

// RefreshTexts updates localized labels after a language change
func (s *FeedScreen) RefreshTexts() {
	s.titleText.Text = s.Title()
	s.titleText.Refresh()
}

// CardBuilds returns how many card views have been constructed
func (s *FeedScreen) CardBuilds() int {
	return s.cardBuilds
}

// TextWrites returns how many times card text has been overwritten
func (s *FeedScreen) TextWrites() int {
	return s.textWrites
}

// DiscardedThumbnails returns how many late thumbnails were dropped
func (s *FeedScreen) DiscardedThumbnails() int {
	return s.discarded
}

// LateThumbnailsApplied returns how many late thumbnails were painted into recycled cells
func (s *FeedScreen) LateThumbnailsApplied() int {
	return s.appliedLate
}

// List returns the underlying list widget
func (s *FeedScreen) List() *widget.List {
	return s.list
}

// createNavigationControls builds the title, menu button, switch and search button
func (s *FeedScreen) createNavigationControls() {
	s.titleText = canvas.NewText(s.Title(), s.theme.ColorToken(ColorNameOnPrimary))
	s.titleText.TextSize = NavigationTitleSize
	s.titleText.Alignment = fyne.TextAlignLeading

	s.menuButton = widget.NewButtonWithIcon("", theme.MenuIcon(), s.OnMenuAction)
	s.menuButton.Importance = widget.LowImportance

	s.switchControl = widget.NewCheck("", func(on bool) {
		if s.settings != nil {
			s.settings.SetToolbarSwitch(on)
		}
	})
	if s.settings != nil {
		s.switchControl.Checked = s.settings.GetToolbarSwitch()
	}

	s.searchButton = widget.NewButtonWithIcon("", theme.SearchIcon(), s.OnSearchAction)
	s.searchButton.Importance = widget.LowImportance
}

// createList builds the recycled-row list
func (s *FeedScreen) createList() {
	s.list = widget.NewList(
		s.ItemCount,
		func() fyne.CanvasObject { return NewCellSlot() },
		s.updateCell,
	)

	for i := 0; i < s.ItemCount(); i++ {
		s.list.SetItemHeight(i, s.RowHeight(i))
	}

	s.list.OnSelected = func(id widget.ListItemID) {
		s.list.Unselect(id)
		s.OnItemSelected(id)
	}

	background := canvas.NewRectangle(s.theme.ColorToken(ColorNameFeedBackground))
	s.content = container.NewStack(background, container.NewPadded(s.list))
}

// updateCell is the list's update callback
func (s *FeedScreen) updateCell(id widget.ListItemID, obj fyne.CanvasObject) {
	slot, ok := obj.(*CellSlot)
	if !ok {
		log.Printf("Warning: feed list row is %T, expected *CellSlot", obj)
		return
	}
	s.populate(slot, id)
}

// populate renders item index into slot. The card is built once per slot;
// text is written synchronously and the thumbnail loads in the background.
func (s *FeedScreen) populate(slot *CellSlot, index int) {
	item := s.Item(index)

	card := slot.Card()
	if card == nil {
		card = NewCardView(s.theme)
		slot.Attach(card)
		s.cardBuilds++
	}

	card.SetContent(item.Title, item.Detail)
	s.textWrites++

	generation := slot.Bind(index)
	s.loadThumbnail(slot, card, generation, item)

	card.Resize(slot.Size())
}

// loadThumbnail requests the item's image at the slot's current width
func (s *FeedScreen) loadThumbnail(slot *CellSlot, card *CardView, generation uint64, item model.FeedItem) {
	if s.thumbs == nil {
		return
	}

	// A freshly created row may not be laid out yet; rows span the list
	width := slot.Size().Width
	if listWidth := s.list.Size().Width; listWidth > width {
		width = listWidth
	}
	if width <= 0 {
		// The next size change re-populates the row
		card.SetThumbnailState(model.ThumbnailDiscarded)
		return
	}

	if card.Pending() {
		log.Printf("Superseding pending thumbnail for row %d", slot.Index())
	}

	req := thumbnail.NewRequest(item.Image, int(width), int(model.ThumbnailHeight))
	card.SetThumbnailState(model.ThumbnailLoading)
	s.thumbs.Load(s.ctx, req, func(result thumbnail.Result) {
		s.dispatch(func() {
			s.applyThumbnail(slot, card, generation, result)
		})
	})
}

// applyThumbnail runs on the UI goroutine once a render finishes
func (s *FeedScreen) applyThumbnail(slot *CellSlot, card *CardView, generation uint64, result thumbnail.Result) {
	current := slot.IsCurrent(generation)

	if result.Err != nil {
		// Keep whatever image the card already shows
		if !current {
			return
		}
		if errors.Is(result.Err, context.Canceled) {
			card.SetThumbnailState(model.ThumbnailDiscarded)
			return
		}
		card.SetThumbnailState(model.ThumbnailFailed)
		return
	}

	if !current {
		if s.stalePolicy() == config.StaleDiscard {
			s.discarded++
			log.Printf("Discarded late thumbnail %s (%s) for recycled row %d", result.Request.ID, result.Request.Name, slot.Index())
			return
		}
		s.appliedLate++
	}

	card.SetImage(result.Image)
}

func (s *FeedScreen) stalePolicy() config.StalePolicy {
	if s.settings == nil {
		return config.DefaultStalePolicy
	}
	return s.settings.GetStalePolicy()
}
