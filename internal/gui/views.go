package gui

import (
	"image/color"
	"net/url"
	"slices"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/philipparndt/gofolio/internal/scene"
	"github.com/philipparndt/gofolio/pkg/content"
	"github.com/philipparndt/gofolio/pkg/motion"
)

// allTags is the filter entry that shows every project
const allTags = "All"

var accent = color.NRGBA{R: 0xE8, G: 0xB4, B: 0xA0, A: 0xFF}

// HomeView types out the profile title and bio
type HomeView struct {
	home    scene.Home
	title   *widget.RichText
	bio     *widget.RichText
	links   *fyne.Container
	started time.Time
	anim    *fyne.Animation
	box     *fyne.Container
}

// NewHomeView creates the home page for p
func NewHomeView(p content.Profile) *HomeView {
	v := &HomeView{
		title: widget.NewRichText(),
		bio:   widget.NewRichText(),
		links: container.NewHBox(),
	}
	v.bio.Wrapping = fyne.TextWrapWord
	v.box = container.NewVBox(v.title, v.bio, v.links)
	v.SetProfile(p)
	return v
}

// SetProfile restarts the reveal with p
func (v *HomeView) SetProfile(p content.Profile) {
	v.home = scene.NewHome(p)
	v.links.RemoveAll()
	for _, l := range p.Links {
		if u, err := url.Parse(l.URL); err == nil {
			v.links.Add(widget.NewHyperlink(l.Label, u))
		}
	}
	v.started = time.Now()
	v.Update(0)
}

// Start animates the reveal from now
func (v *HomeView) Start() {
	v.started = time.Now()
	if v.anim != nil {
		v.anim.Stop()
	}
	v.anim = &fyne.Animation{
		Duration: v.home.Sequence.Stages[0].Writer.Duration() +
			v.home.Sequence.Stages[1].Writer.Duration() + scene.ContactDelay + time.Second,
		Tick: func(float32) { v.Update(time.Since(v.started)) },
	}
	v.anim.Start()
}

// Update shows the page as it looks after elapsed
func (v *HomeView) Update(elapsed time.Duration) {
	v.title.Segments = highlighted(v.home.Title(elapsed), v.home.TitleSpans(), widget.RichTextStyleHeading)
	v.title.Refresh()
	v.bio.Segments = highlighted(v.home.Bio(elapsed), v.home.BioSpans(), widget.RichTextStyleParagraph)
	v.bio.Refresh()

	if v.home.ContactVisible(elapsed) {
		v.links.Show()
	} else {
		v.links.Hide()
	}
}

// Object returns the page container
func (v *HomeView) Object() fyne.CanvasObject {
	return v.box
}

// highlighted splits the revealed prefix of a text into plain and accented segments
func highlighted(visible string, spans []motion.Span, style widget.RichTextStyle) []widget.RichTextSegment {
	runes := []rune(visible)
	accentStyle := style
	accentStyle.ColorName = theme.ColorNamePrimary

	var segs []widget.RichTextSegment
	pos := 0
	add := func(end int, st widget.RichTextStyle) {
		end = min(end, len(runes))
		if end <= pos {
			return
		}
		st.Inline = true
		segs = append(segs, &widget.TextSegment{Text: string(runes[pos:end]), Style: st})
		pos = end
	}
	for _, s := range spans {
		add(s.Start, style)
		add(s.End, accentStyle)
	}
	add(len(runes), style)
	return segs
}

// ProjectsView lists the project gallery with a tag filter
type ProjectsView struct {
	projects content.Projects
	filter   *widget.Select
	list     *fyne.Container
	box      fyne.CanvasObject
}

// NewProjectsView creates the gallery
func NewProjectsView(projects content.Projects) *ProjectsView {
	v := &ProjectsView{list: container.NewVBox()}
	v.filter = widget.NewSelect(nil, func(string) { v.refreshList() })
	v.box = container.NewBorder(v.filter, nil, nil, nil, container.NewVScroll(v.list))
	v.SetProjects(projects)
	return v
}

// SetProjects replaces the gallery content
func (v *ProjectsView) SetProjects(projects content.Projects) {
	v.projects = projects
	v.filter.Options = append([]string{allTags}, tags(projects)...)
	if !slices.Contains(v.filter.Options, v.filter.Selected) {
		v.filter.SetSelected(allTags)
	}
	v.refreshList()
}

// Shown returns the projects currently listed
func (v *ProjectsView) Shown() content.Projects {
	if v.filter.Selected == "" || v.filter.Selected == allTags {
		return v.projects
	}
	return v.projects.WithTag(v.filter.Selected)
}

func (v *ProjectsView) refreshList() {
	v.list.RemoveAll()
	for _, p := range v.Shown() {
		v.list.Add(projectCard(p))
	}
}

// Object returns the gallery container
func (v *ProjectsView) Object() fyne.CanvasObject {
	return v.box
}

func projectCard(p content.Project) *widget.Card {
	body := widget.NewRichTextFromMarkdown(p.Description)
	body.Wrapping = fyne.TextWrapWord

	items := []fyne.CanvasObject{body}
	if len(p.Tags) > 0 {
		tagLine := canvas.NewText(strings.Join(p.Tags, " · "), accent)
		tagLine.TextStyle = fyne.TextStyle{Monospace: true}
		items = append(items, tagLine)
	}
	if u, err := url.Parse(p.URL); err == nil && p.URL != "" {
		items = append(items, widget.NewHyperlink(p.URL, u))
	}
	return widget.NewCard(p.Title, p.Subtitle, container.NewVBox(items...))
}

// tags returns every distinct tag in first-seen order
func tags(projects content.Projects) []string {
	var out []string
	for _, p := range projects {
		for _, t := range p.Tags {
			if !slices.ContainsFunc(out, func(o string) bool { return strings.EqualFold(o, t) }) {
				out = append(out, t)
			}
		}
	}
	return out
}
