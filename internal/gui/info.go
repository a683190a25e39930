package gui

import (
	"net/url"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/philipparndt/gofolio/pkg/content"
)

// InfoPanel shows the active experience entry
type InfoPanel struct {
	Title       *widget.Label
	Role        *widget.Label
	Date        *widget.Label
	Description *widget.RichText
	Link        *widget.Hyperlink

	box *fyne.Container
}

// NewInfoPanel creates an empty panel
func NewInfoPanel() *InfoPanel {
	p := &InfoPanel{
		Title:       widget.NewLabel(""),
		Role:        widget.NewLabel(""),
		Date:        widget.NewLabel(""),
		Description: widget.NewRichText(),
		Link:        widget.NewHyperlink("", nil),
	}
	p.Title.TextStyle = fyne.TextStyle{Bold: true}
	p.Date.TextStyle = fyne.TextStyle{Monospace: true}
	p.Description.Wrapping = fyne.TextWrapWord

	p.box = container.NewVBox(
		p.Title,
		p.Role,
		p.Date,
		widget.NewSeparator(),
		p.Description,
		p.Link,
	)
	return p
}

// Object returns the panel container
func (p *InfoPanel) Object() fyne.CanvasObject {
	return p.box
}

// Show fills the panel with e
func (p *InfoPanel) Show(e content.Experience) {
	p.Title.SetText(e.Title)
	p.Role.SetText(e.Role)
	p.Date.SetText(e.Date)
	p.Description.ParseMarkdown(e.Description)

	if u, err := url.Parse(e.URL); err == nil && e.URL != "" {
		p.Link.SetURL(u)
		p.Link.SetText("Visit " + e.Title)
		p.Link.Show()
	} else {
		p.Link.Hide()
	}
}

// SetVisible hides the panel while the carousel is between items
func (p *InfoPanel) SetVisible(visible bool) {
	if visible == p.box.Visible() {
		return
	}
	if visible {
		p.box.Show()
	} else {
		p.box.Hide()
	}
}

// Visible reports whether the panel is shown
func (p *InfoPanel) Visible() bool {
	return p.box.Visible()
}
