package ui

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"folderer/models"
)

var (
	badgeIdle  = color.NRGBA{R: 0x6b, G: 0x72, B: 0x80, A: 0xff}
	badgeOK    = color.NRGBA{R: 0x16, G: 0xa3, B: 0x4a, A: 0xff}
	badgeWarn  = color.NRGBA{R: 0xd9, G: 0x77, B: 0x06, A: 0xff}
	badgeError = color.NRGBA{R: 0xdc, G: 0x26, B: 0x26, A: 0xff}
	badgeText  = color.White
)

// StatusBadge shows the outcome of the last run as short text on a coloured
// background: green when clean, amber when items were skipped, red on errors.
type StatusBadge struct {
	widget.BaseWidget
	text    string
	bgColor color.Color
	textObj *canvas.Text
	bgRect  *canvas.Rectangle
}

// NewStatusBadge creates an idle badge
func NewStatusBadge() *StatusBadge {
	b := &StatusBadge{text: "Ready", bgColor: badgeIdle}
	b.ExtendBaseWidget(b)
	return b
}

// CreateRenderer implements fyne.Widget
func (b *StatusBadge) CreateRenderer() fyne.WidgetRenderer {
	b.textObj = canvas.NewText(" "+b.text+" ", badgeText)
	b.textObj.TextStyle = fyne.TextStyle{Bold: true}
	b.bgRect = canvas.NewRectangle(b.bgColor)
	b.bgRect.CornerRadius = 4

	return &statusBadgeRenderer{
		badge:   b,
		content: container.NewStack(b.bgRect, container.NewPadded(b.textObj)),
	}
}

// Text returns the current badge text
func (b *StatusBadge) Text() string {
	return b.text
}

// SetReport updates the badge from a finished run
func (b *StatusBadge) SetReport(r *models.Report) {
	switch {
	case r == nil:
		b.set("Ready", badgeIdle)
	case r.Errors > 0:
		b.set(fmt.Sprintf("%d error(s)", r.Errors), badgeError)
	case r.Action == models.ActionOrganize:
		b.set(fmt.Sprintf("Moved %d", r.Moved), badgeOK)
	case r.Skipped > 0:
		b.set(fmt.Sprintf("Created %d, skipped %d", r.Created, r.Skipped), badgeWarn)
	default:
		b.set(fmt.Sprintf("Created %d", r.Created), badgeOK)
	}
}

func (b *StatusBadge) set(text string, bg color.Color) {
	b.text = text
	b.bgColor = bg
	b.Refresh()
}

type statusBadgeRenderer struct {
	badge   *StatusBadge
	content *fyne.Container
}

func (r *statusBadgeRenderer) MinSize() fyne.Size {
	return r.content.MinSize()
}

func (r *statusBadgeRenderer) Layout(size fyne.Size) {
	r.content.Resize(size)
}

func (r *statusBadgeRenderer) Refresh() {
	r.badge.textObj.Text = " " + r.badge.text + " "
	r.badge.bgRect.FillColor = r.badge.bgColor
	r.badge.textObj.Refresh()
	r.badge.bgRect.Refresh()
	r.content.Refresh()
}

func (r *statusBadgeRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.content}
}

func (r *statusBadgeRenderer) Destroy() {}
