package ui

import (
	"context"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/recipes-feed/internal/model"
	"github.com/ytget/recipes-feed/internal/thumbnail"
)

// DetailDeps are the collaborators of a DetailScreen
type DetailDeps struct {
	Side       SideNavigator
	Bar        BarStyler
	Theme      ThemeProvider
	Thumbnails thumbnail.Renderer
	Dispatch   Dispatcher
}

// DetailScreen shows a single feed item in full
type DetailScreen struct {
	item     model.FeedItem
	side     SideNavigator
	bar      BarStyler
	theme    ThemeProvider
	thumbs   thumbnail.Renderer
	dispatch Dispatcher

	image      *canvas.Image
	content    fyne.CanvasObject
	imageWidth int
}

var (
	_ Appearer = (*DetailScreen)(nil)
	_ Resizer  = (*DetailScreen)(nil)
)

// NewDetailScreen creates a detail screen for item
func NewDetailScreen(item model.FeedItem, deps DetailDeps) *DetailScreen {
	d := &DetailScreen{
		item:     item,
		side:     deps.Side,
		bar:      deps.Bar,
		theme:    deps.Theme,
		thumbs:   deps.Thumbnails,
		dispatch: deps.Dispatch,
	}
	if d.dispatch == nil {
		d.dispatch = fyne.Do
	}

	d.image = canvas.NewImageFromImage(nil)
	d.image.FillMode = canvas.ImageFillContain
	d.image.SetMinSize(fyne.NewSize(0, DetailImageHeight))

	title := canvas.NewText(item.Title, d.theme.ColorToken(ColorNameCardTitle))
	title.TextSize = d.theme.SizeToken(SizeNameCardTitle)
	title.TextStyle = fyne.TextStyle{Bold: true}

	date := widget.NewLabel(item.Date)
	date.Importance = widget.LowImportance

	detail := widget.NewLabel(item.Detail)
	detail.Wrapping = fyne.TextWrapWord

	d.content = container.NewVScroll(container.NewVBox(d.image, container.NewPadded(container.NewVBox(title, date, detail))))
	return d
}

// Title returns the item title
func (d *DetailScreen) Title() string {
	return d.item.Title
}

// Content returns the screen's canvas object
func (d *DetailScreen) Content() fyne.CanvasObject {
	return d.content
}

// Item returns the item shown
func (d *DetailScreen) Item() model.FeedItem {
	return d.item
}

// Image returns the header image shown, if loaded
func (d *DetailScreen) Image() *canvas.Image {
	return d.image
}

// OnAppear locks the side panel while the detail is on screen
func (d *DetailScreen) OnAppear() {
	if d.side != nil {
		d.side.SetEnabled(false)
	}
	if d.bar != nil {
		d.bar.SetStyle(BarStyle{
			Background: d.theme.ColorToken(ColorNameNavigationBar),
			Tint:       d.theme.ColorToken(ColorNameOnPrimary),
		})
	}
}

// OnLayoutSizeChange reloads the header image when the width changes
func (d *DetailScreen) OnLayoutSizeChange(size fyne.Size) {
	width := int(size.Width)
	if width <= 0 || width == d.imageWidth || d.thumbs == nil {
		return
	}
	d.imageWidth = width

	req := thumbnail.NewRequest(d.item.Image, width, int(DetailImageHeight))
	d.thumbs.Load(context.Background(), req, func(result thumbnail.Result) {
		if result.Err != nil {
			log.Printf("Detail image for %q not loaded: %v", d.item.Title, result.Err)
			return
		}
		d.dispatch(func() {
			// A newer width may have been requested meanwhile
			if result.Request.Width != d.imageWidth {
				return
			}
			d.image.Image = result.Image
			d.image.Refresh()
		})
	})
}
