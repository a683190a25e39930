package gui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/philipparndt/gofolio/internal/scene"
	"github.com/philipparndt/gofolio/pkg/carousel"
	"github.com/philipparndt/gofolio/pkg/config"
	"github.com/philipparndt/gofolio/pkg/content"
)

// App is the gofolio window
type App struct {
	window   fyne.Window
	cfg      config.Config
	content  *content.Content
	opts     []carousel.Option
	carousel *CarouselWidget
	info     *InfoPanel
	home     *HomeView
	projects *ProjectsView
	tabs     *container.AppTabs
	reloader *scene.Reloader

	unsubscribe func()
}

// New builds the window. opts are passed to every engine it mounts.
func New(a fyne.App, cfg config.Config, c *content.Content, opts ...carousel.Option) *App {
	app := &App{
		window:   a.NewWindow(cfg.Window.Title),
		cfg:      cfg,
		content:  c,
		opts:     opts,
		info:     NewInfoPanel(),
		home:     NewHomeView(c.Profile),
		projects: NewProjectsView(c.Projects),
	}

	engine := app.mount(c)
	app.carousel = NewCarouselWidget(engine, scene.Background(cfg, c))
	app.carousel.SetOnFrame(app.onFrame)
	app.subscribe(engine)

	prev := widget.NewButton("<", app.carousel.Prev)
	next := widget.NewButton(">", app.carousel.Next)

	infoScroll := container.NewVScroll(container.NewVBox(
		app.info.Object(),
		container.NewHBox(prev, next),
	))
	infoScroll.SetMinSize(fyne.NewSize(320, 0))

	experience := container.NewBorder(nil, nil, nil, infoScroll, app.carousel)

	app.tabs = container.NewAppTabs(
		container.NewTabItem("Home", app.home.Object()),
		container.NewTabItem("Experience", experience),
		container.NewTabItem("Projects", app.projects.Object()),
	)
	app.tabs.OnSelected = func(t *container.TabItem) {
		if t.Text == "Home" {
			app.home.Start()
		}
	}

	app.window.SetContent(app.tabs)
	app.window.Resize(fyne.NewSize(float32(cfg.Window.Width), float32(cfg.Window.Height)))
	app.window.Canvas().SetOnTypedKey(app.typedKey)
	app.window.SetOnClosed(app.Close)
	return app
}

// Window returns the fyne window
func (a *App) Window() fyne.Window {
	return a.window
}

// Carousel returns the carousel widget
func (a *App) Carousel() *CarouselWidget {
	return a.carousel
}

// Info returns the experience info panel
func (a *App) Info() *InfoPanel {
	return a.info
}

// Projects returns the gallery view
func (a *App) Projects() *ProjectsView {
	return a.projects
}

// Watch starts content hot reload when the config enables it
func (a *App) Watch() error {
	r, err := scene.WatchContent(a.cfg, a.content)
	if err != nil {
		return fmt.Errorf("failed to watch content: %w", err)
	}
	a.reloader = r
	if r == nil {
		return nil
	}

	go func() {
		for c := range r.Updates() {
			fyne.Do(func() { a.Reload(c) })
		}
	}()
	return nil
}

// ShowAndRun starts the animations and runs the fyne event loop
func (a *App) ShowAndRun() {
	a.carousel.Start()
	a.home.Start()
	a.window.ShowAndRun()
}

// Reload swaps in new content: the carousel is remounted and the pages rebuilt
func (a *App) Reload(c *content.Content) {
	a.content = c
	if a.unsubscribe != nil {
		a.unsubscribe()
	}
	engine := a.mount(c)
	a.subscribe(engine)
	a.carousel.SetEngine(engine, scene.Background(a.cfg, c))
	a.home.SetProfile(c.Profile)
	a.projects.SetProjects(c.Projects)
	fmt.Println("Content reloaded")
}

// Close stops the animations, the watcher and the engine
func (a *App) Close() {
	a.carousel.Stop()
	if a.reloader != nil {
		a.reloader.Close()
	}
	a.carousel.Engine().Close()
}

func (a *App) mount(c *content.Content) *carousel.Engine {
	viewport := carousel.Viewport{Width: float64(a.cfg.Window.Width), Height: float64(a.cfg.Window.Height)}
	return scene.Mount(a.cfg, c, viewport, a.opts...)
}

func (a *App) subscribe(engine *carousel.Engine) {
	a.showExperience(engine.ActiveIndex())
	a.unsubscribe = engine.Subscribe(carousel.ObserverFunc(a.showExperience))
}

func (a *App) showExperience(index int) {
	if index < 0 || index >= len(a.content.Experience) {
		return
	}
	a.info.Show(a.content.Experience[index])
}

func (a *App) onFrame() {
	a.info.SetVisible(!a.carousel.Engine().Transitioning())
}

func (a *App) typedKey(ev *fyne.KeyEvent) {
	switch ev.Name {
	case fyne.KeyLeft:
		a.carousel.Prev()
	case fyne.KeyRight:
		a.carousel.Next()
	}
}
