// Package gui is the fyne front end: the experience carousel widget over the marquee
// background, the info panel and the projects gallery.
package gui

import (
	"image"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/philipparndt/gofolio/internal/scene"
	"github.com/philipparndt/gofolio/pkg/carousel"
	"github.com/philipparndt/gofolio/pkg/pattern"
)

// CarouselWidget draws a carousel engine and forwards pointer input to it
type CarouselWidget struct {
	widget.BaseWidget

	mu         sync.Mutex
	engine     *carousel.Engine
	background pattern.Layer
	started    time.Time
	raster     *canvas.Raster
	anim       *fyne.Animation
	onFrame    func()

	// pressed is set from the first event of a gesture until it ends; only that first
	// event may start a drag
	pressed bool
}

var (
	_ fyne.Draggable      = (*CarouselWidget)(nil)
	_ desktop.Mouseable   = (*CarouselWidget)(nil)
	_ desktop.Hoverable   = (*CarouselWidget)(nil)
	_ fyne.WidgetRenderer = (*carouselRenderer)(nil)
)

// NewCarouselWidget creates a widget for engine drawn over background
func NewCarouselWidget(engine *carousel.Engine, background pattern.Layer) *CarouselWidget {
	w := &CarouselWidget{
		engine:     engine,
		background: background,
		started:    time.Now(),
	}
	w.raster = canvas.NewRaster(w.generate)
	w.ExtendBaseWidget(w)
	return w
}

// SetOnFrame registers a callback run after every animation frame
func (w *CarouselWidget) SetOnFrame(f func()) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onFrame = f
}

// Engine returns the engine currently shown
func (w *CarouselWidget) Engine() *carousel.Engine {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.engine
}

// SetEngine swaps the engine, closing the old one. Used on content reload.
func (w *CarouselWidget) SetEngine(engine *carousel.Engine, background pattern.Layer) {
	w.mu.Lock()
	old := w.engine
	w.engine = engine
	w.background = background
	w.pressed = false
	size := w.Size()
	w.mu.Unlock()

	old.Close()
	if size.Width > 0 && size.Height > 0 {
		engine.Resize(carousel.Viewport{Width: float64(size.Width), Height: float64(size.Height)})
	}
	w.Refresh()
}

// Start runs the engine once per frame until Stop
func (w *CarouselWidget) Start() {
	if w.anim != nil {
		return
	}
	w.anim = &fyne.Animation{
		Duration:    time.Second,
		RepeatCount: fyne.AnimationRepeatForever,
		Tick:        func(float32) { w.Tick() },
	}
	w.anim.Start()
}

// Stop halts the animation
func (w *CarouselWidget) Stop() {
	if w.anim != nil {
		w.anim.Stop()
		w.anim = nil
	}
}

// Tick advances the engine one frame and redraws
func (w *CarouselWidget) Tick() {
	w.mu.Lock()
	w.engine.Tick()
	onFrame := w.onFrame
	w.mu.Unlock()

	w.raster.Refresh()
	if onFrame != nil {
		onFrame()
	}
}

// generate renders the raster at its pixel size
func (w *CarouselWidget) generate(width, height int) image.Image {
	w.mu.Lock()
	defer w.mu.Unlock()
	return scene.Compose(w.engine, w.background, time.Since(w.started), width, height)
}

// Resize keeps the engine viewport in step with the widget
func (w *CarouselWidget) Resize(size fyne.Size) {
	w.BaseWidget.Resize(size)
	w.mu.Lock()
	w.engine.Resize(carousel.Viewport{Width: float64(size.Width), Height: float64(size.Height)})
	w.mu.Unlock()
}

// Prev rotates one item backwards
func (w *CarouselWidget) Prev() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.engine.Prev()
}

// Next rotates one item forwards
func (w *CarouselWidget) Next() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.engine.Next()
}

// MouseDown starts a drag inside the interactive region
func (w *CarouselWidget) MouseDown(ev *desktop.MouseEvent) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.press(float64(ev.Position.X), float64(ev.Position.Y))
}

// MouseUp ends a drag
func (w *CarouselWidget) MouseUp(*desktop.MouseEvent) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.release()
}

// press starts a gesture; the engine decides once whether it is a drag
func (w *CarouselWidget) press(x, y float64) {
	if w.pressed {
		return
	}
	w.pressed = true
	w.engine.PointerDown(x, y)
}

func (w *CarouselWidget) release() {
	w.pressed = false
	w.engine.PointerUp()
}

// MouseIn feeds the look-at effect like MouseMoved
func (w *CarouselWidget) MouseIn(ev *desktop.MouseEvent) {
	w.MouseMoved(ev)
}

// MouseMoved feeds the look-at effect
func (w *CarouselWidget) MouseMoved(ev *desktop.MouseEvent) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.engine.PointerMove(float64(ev.Position.X), float64(ev.Position.Y))
}

// MouseOut leaves the pointer where it was last seen
func (w *CarouselWidget) MouseOut() {}

// Dragged moves the carousel. Touch input has no MouseDown, so the drag is started here.
func (w *CarouselWidget) Dragged(ev *fyne.DragEvent) {
	w.mu.Lock()
	defer w.mu.Unlock()

	x, y := float64(ev.Position.X), float64(ev.Position.Y)
	w.press(x-float64(ev.Dragged.DX), y-float64(ev.Dragged.DY))
	w.engine.PointerMove(x, y)
}

// DragEnd snaps to the nearest item
func (w *CarouselWidget) DragEnd() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.release()
}

// CreateRenderer creates the renderer for the widget
func (w *CarouselWidget) CreateRenderer() fyne.WidgetRenderer {
	return &carouselRenderer{widget: w}
}

type carouselRenderer struct {
	widget *CarouselWidget
}

func (r *carouselRenderer) Layout(size fyne.Size) {
	r.widget.raster.Resize(size)
}

func (r *carouselRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 300)
}

func (r *carouselRenderer) Refresh() {
	r.widget.raster.Refresh()
}

func (r *carouselRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.widget.raster}
}

func (r *carouselRenderer) Destroy() {
	r.widget.Stop()
}
