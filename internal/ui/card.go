package ui

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/recipes-feed/internal/model"
)

// CardView renders one feed item: a thumbnail on top, then title and detail.
// The template (insets, radius, fonts) is fixed at construction; only the
// text and image change when the card is reused.
type CardView struct {
	widget.BaseWidget

	background *canvas.Rectangle
	image      *canvas.Image
	title      *canvas.Text
	detail     *widget.RichText
	detailText *widget.TextSegment

	state model.ThumbnailState
}

// NewCardView creates a card styled from th
func NewCardView(th ThemeProvider) *CardView {
	c := &CardView{state: model.ThumbnailEmpty}

	// No shadow, no divider: a flat rounded surface
	c.background = canvas.NewRectangle(th.ColorToken(ColorNameCardBackground))
	c.background.CornerRadius = th.SizeToken(SizeNameCardRadius)

	c.image = canvas.NewImageFromImage(nil)
	c.image.FillMode = canvas.ImageFillContain
	c.image.ScaleMode = canvas.ImageScaleSmooth
	c.image.SetMinSize(fyne.NewSize(0, model.ThumbnailHeight))

	c.title = canvas.NewText("", th.ColorToken(ColorNameCardTitle))
	c.title.TextSize = th.SizeToken(SizeNameCardTitle)
	c.title.Alignment = fyne.TextAlignLeading

	c.detailText = &widget.TextSegment{Style: widget.RichTextStyleParagraph}
	c.detailText.Style.ColorName = ColorNameCardDetail
	c.detail = widget.NewRichText(c.detailText)
	c.detail.Wrapping = fyne.TextWrapWord
	c.detail.Truncation = fyne.TextTruncateEllipsis

	c.ExtendBaseWidget(c)
	return c
}

// CreateRenderer implements fyne.Widget
func (c *CardView) CreateRenderer() fyne.WidgetRenderer {
	text := container.NewBorder(c.title, nil, nil, nil, c.detail)
	body := container.NewBorder(c.image, nil, nil, nil, text)
	inset := container.New(layout.NewCustomPaddedLayout(CardInsetTop, CardInsetBottom, CardInsetLeft, CardInsetRight), body)
	return widget.NewSimpleRenderer(container.NewStack(c.background, inset))
}

// SetContent overwrites the title and detail text
func (c *CardView) SetContent(title, detail string) {
	c.title.Text = title
	c.title.Refresh()
	c.detailText.Text = detail
	c.detail.Refresh()
}

// Title returns the displayed title
func (c *CardView) Title() string {
	return c.title.Text
}

// Detail returns the displayed detail text
func (c *CardView) Detail() string {
	return c.detailText.Text
}

// DetailColorName returns the theme color the detail text is drawn with
func (c *CardView) DetailColorName() fyne.ThemeColorName {
	return c.detailText.Style.ColorName
}

// SetImage shows img as the thumbnail
func (c *CardView) SetImage(img image.Image) {
	c.image.Image = img
	c.image.Refresh()
	c.state = model.ThumbnailLoaded
}

// Image returns the thumbnail currently shown
func (c *CardView) Image() image.Image {
	return c.image.Image
}

// SetThumbnailState records where the card's image load stands
func (c *CardView) SetThumbnailState(state model.ThumbnailState) {
	c.state = state
}

// Pending reports whether the card is waiting for an image
func (c *CardView) Pending() bool {
	return c.state.IsPending()
}

// ThumbnailState returns the image load state
func (c *CardView) ThumbnailState() model.ThumbnailState {
	return c.state
}

// CornerRadius returns the background corner radius
func (c *CardView) CornerRadius() float32 {
	return c.background.CornerRadius
}

// BackgroundColor returns the card surface color
func (c *CardView) BackgroundColor() color.Color {
	return c.background.FillColor
}
