package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/recipes-feed/internal/model"
)

// SearchDeps are the collaborators of a SearchScreen
type SearchDeps struct {
	Feed         *model.Feed
	Nav          Navigator
	Localization *Localization
	NewDetail    func(item model.FeedItem) Screen
}

// SearchScreen filters the feed by a typed query
type SearchScreen struct {
	feed         *model.Feed
	nav          Navigator
	localization *Localization
	newDetail    func(item model.FeedItem) Screen

	entry   *widget.Entry
	list    *widget.List
	empty   *widget.Label
	query   string
	results []int
	content fyne.CanvasObject
}

// NewSearchScreen creates a search screen showing every item until a query is typed
func NewSearchScreen(deps SearchDeps) *SearchScreen {
	s := &SearchScreen{
		feed:         deps.Feed,
		nav:          deps.Nav,
		localization: deps.Localization,
		newDetail:    deps.NewDetail,
	}
	if s.localization == nil {
		s.localization = NewLocalization()
	}

	s.entry = widget.NewEntry()
	s.entry.SetPlaceHolder(s.localization.GetText(KeySearchPlaceholder))
	s.entry.OnChanged = s.applyQuery
	s.entry.OnSubmitted = func(string) {
		if len(s.results) == 1 {
			s.OnResultSelected(0)
		}
	}

	s.list = widget.NewList(
		func() int { return len(s.results) },
		func() fyne.CanvasObject {
			title := widget.NewLabel("")
			title.TextStyle = fyne.TextStyle{Bold: true}
			title.Truncation = fyne.TextTruncateEllipsis
			date := widget.NewLabel("")
			date.Importance = widget.LowImportance
			return container.NewBorder(nil, nil, nil, date, title)
		},
		s.updateRow,
	)
	s.list.OnSelected = func(id widget.ListItemID) {
		s.list.Unselect(id)
		s.OnResultSelected(id)
	}

	s.empty = widget.NewLabel(s.localization.GetText(KeyNoResults))
	s.empty.Alignment = fyne.TextAlignCenter
	s.empty.Hide()

	s.content = container.NewBorder(s.entry, nil, nil, nil, container.NewStack(s.list, s.empty))
	s.applyQuery("")
	return s
}

// Title returns the screen title
func (s *SearchScreen) Title() string {
	return s.localization.GetText(KeySearch)
}

// Content returns the screen's canvas object
func (s *SearchScreen) Content() fyne.CanvasObject {
	return s.content
}

// SetQuery types query into the search field
func (s *SearchScreen) SetQuery(query string) {
	s.entry.SetText(query)
	if s.query != query {
		s.applyQuery(query)
	}
}

// Results returns feed positions matching the current query
func (s *SearchScreen) Results() []int {
	return s.results
}

// OnResultSelected dismisses the search and pushes the chosen item's detail
func (s *SearchScreen) OnResultSelected(row int) {
	if row < 0 || row >= len(s.results) {
		return
	}
	item := s.feed.At(s.results[row])
	log.Printf("Search selected %q", item.Title)

	if s.nav == nil {
		return
	}
	s.nav.Dismiss()
	if s.newDetail != nil {
		s.nav.Push(s.newDetail(item))
	}
}

func (s *SearchScreen) applyQuery(query string) {
	s.query = query
	s.results = s.feed.Search(query)
	if len(s.results) == 0 {
		s.empty.Show()
	} else {
		s.empty.Hide()
	}
	s.list.Refresh()
}

func (s *SearchScreen) updateRow(id widget.ListItemID, obj fyne.CanvasObject) {
	if id < 0 || id >= len(s.results) {
		return
	}
	row, ok := obj.(*fyne.Container)
	if !ok || len(row.Objects) < 2 {
		return
	}
	item := s.feed.At(s.results[id])

	// Border layout stores the center object first, then the trailing one
	if title, ok := row.Objects[0].(*widget.Label); ok {
		title.SetText(item.Title)
	}
	if date, ok := row.Objects[1].(*widget.Label); ok {
		date.SetText(item.Date)
	}
}
