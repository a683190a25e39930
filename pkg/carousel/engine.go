// Package carousel drives the Experience carousel: N items on a circle that rotate
// smoothly towards a target angle set by drag gestures or prev/next commands.
//
// The engine is single threaded. Update, the pointer handlers, Prev, Next, Resize,
// Subscribe and Close must be called from the same goroutine (the render loop).
// Asset loads run on worker goroutines and are handed back to Update through a channel.
package carousel

import (
	"context"
	"log"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/philipparndt/gofolio/pkg/geometry"
	"github.com/philipparndt/gofolio/pkg/motion"
	"github.com/philipparndt/gofolio/pkg/viewer"
)

// Logger receives non-fatal diagnostics such as failed asset loads
type Logger interface {
	Printf(format string, v ...any)
}

// Observer is notified when the frontmost item changes
type Observer interface {
	OnActiveIndexChanged(index int)
}

// ObserverFunc adapts a function to the Observer interface
type ObserverFunc func(index int)

// OnActiveIndexChanged calls f(index)
func (f ObserverFunc) OnActiveIndexChanged(index int) {
	f(index)
}

// Option configures an Engine
type Option func(*Engine)

// WithConfig replaces the default tuning
func WithConfig(cfg Config) Option {
	return func(e *Engine) { e.cfg = cfg }
}

// WithClock sets the time source used for the entrance and the transition timer
func WithClock(c Clock) Option {
	return func(e *Engine) { e.clock = c }
}

// WithLoader enables asset loading for entries with an AssetRef
func WithLoader(l Loader) Option {
	return func(e *Engine) { e.loader = l }
}

// WithLogger sets the diagnostics sink
func WithLogger(l Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithViewport sets the initial viewport
func WithViewport(v Viewport) Option {
	return func(e *Engine) { e.viewport = v }
}

type loadResult struct {
	index int
	ref   string
	asset Asset
	err   error
}

type drag struct {
	active         bool
	originX        float64
	originRotation float64
}

type subscription struct {
	id       int
	observer Observer
}

// Engine is the carousel state for one mounted view
type Engine struct {
	cfg      Config
	clock    Clock
	loader   Loader
	logger   Logger
	viewport Viewport

	items    []*Item
	step     float64
	rotation float64
	target   float64
	drag     drag
	active   int
	started  time.Time

	pointerX, pointerY float64
	pointerSet         bool

	layout Layout
	camera *viewer.Camera

	observers []subscription
	nextSubID int

	transitioning atomic.Bool
	transitionGen atomic.Uint64
	timer         Timer

	inbox   chan loadResult
	settled chan struct{}
	ctx     context.Context
	cancel  context.CancelFunc
	closed  bool
}

// New mounts a carousel for entries and starts loading their assets
func New(entries []Entry, opts ...Option) *Engine {
	e := &Engine{
		cfg:      DefaultConfig(),
		clock:    SystemClock{},
		logger:   log.Default(),
		viewport: Viewport{Width: 1280, Height: 720},
		settled:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(e)
	}

	e.ctx, e.cancel = context.WithCancel(context.Background())
	e.inbox = make(chan loadResult, len(entries))
	e.started = e.clock.Now()
	if n := len(entries); n > 0 {
		e.step = 2 * math.Pi / float64(n)
	}

	e.items = make([]*Item, len(entries))
	for i, entry := range entries {
		e.items[i] = &Item{
			Index:     i,
			BaseAngle: float64(i) * e.step,
			Entry:     entry,
			Visual:    VisualState{Orientation: geometry.IdentityQuaternion()},
		}
	}

	e.camera = viewer.NewCarouselCamera(0, e.cfg.CameraDistance)
	e.Resize(e.viewport)
	e.startLoads()

	return e
}

func (e *Engine) startLoads() {
	var wg sync.WaitGroup
	if e.loader != nil {
		for _, it := range e.items {
			if it.Entry.AssetRef == "" {
				continue
			}
			it.state = AssetPending
			wg.Add(1)
			go func(index int, ref string) {
				defer wg.Done()
				a, err := e.loader.Load(e.ctx, ref)
				if err == nil && a == nil {
					err = errNilAsset
				}
				select {
				case e.inbox <- loadResult{index: index, ref: ref, asset: a, err: err}:
				case <-e.ctx.Done():
				}
			}(it.Index, it.Entry.AssetRef)
		}
	}
	go func() {
		wg.Wait()
		close(e.settled)
	}()
}

// Tick advances the engine to the clock's current time
func (e *Engine) Tick() {
	e.Update(e.clock.Now())
}

// Update runs one animation frame at time now
func (e *Engine) Update(now time.Time) {
	if e.closed || len(e.items) == 0 {
		return
	}
	e.drainLoads()

	e.rotation = motion.Approach(e.rotation, e.target, e.cfg.Smoothing)

	// First pass: geometry and the frontmost item
	elapsed := now.Sub(e.started).Seconds()
	stagger := e.cfg.Stagger.Seconds()
	window := 0.8 * e.cfg.Entrance.Seconds()
	active := 0
	best := math.Inf(-1)
	for i, it := range e.items {
		ent := EntranceAt(motion.EaseOutCubic(motion.Progress(elapsed, float64(i)*stagger, window)))
		p := e.layout.Place(it.BaseAngle+e.rotation, ent)

		v := &it.Visual
		v.Position = p.Position
		v.ModelPosition = p.Position.Add(geometry.NewVector3(0, 0, modelLift*p.Scale))
		v.Scale = p.Scale
		v.ModelScale = p.ModelScale
		v.Opacity = p.Opacity
		v.Spin = ent.Spin
		v.Entrance = ent.Progress

		if p.Front > best {
			best = p.Front
			active = i
		}
	}

	// Second pass: effects that depend on the active item
	idle := geometry.QuaternionFromEuler(e.cfg.IdleSpinX, e.cfg.IdleSpinY, 0)
	for i, it := range e.items {
		if i != active {
			it.Visual.Orientation = it.Visual.Orientation.Mul(idle).Normalize()
		}
	}
	e.lookAtPointer(e.items[active])

	if active != e.active {
		e.active = active
		e.startTransition()
		for _, s := range e.observers {
			s.observer.OnActiveIndexChanged(active)
		}
	}
}

func (e *Engine) drainLoads() {
	for {
		select {
		case r := <-e.inbox:
			it := e.items[r.index]
			if r.err != nil {
				if it.fail() {
					e.logger.Printf("carousel: load %s: %v", r.ref, r.err)
				}
				continue
			}
			it.setAsset(r.asset, e.cfg.TargetSize)
		default:
			return
		}
	}
}

func (e *Engine) lookAtPointer(it *Item) {
	ray := e.camera.Unproject(e.pointerX, e.pointerY)
	point, ok := ray.IntersectPlaneZ(it.Visual.Position.Z + modelLift)
	if !ok {
		return
	}
	look, ok := geometry.LookRotation(point.Sub(it.Visual.ModelPosition), geometry.NewVector3(0, 1, 0))
	if !ok {
		return
	}
	it.Visual.Orientation = it.Visual.Orientation.Slerp(look, e.cfg.LookDamping).Normalize()
}

func (e *Engine) startTransition() {
	gen := e.transitionGen.Add(1)
	e.transitioning.Store(true)
	if e.timer != nil {
		e.timer.Stop()
	}
	e.timer = e.clock.AfterFunc(e.cfg.TransitionDelay, func() {
		if e.transitionGen.Load() == gen {
			e.transitioning.Store(false)
		}
	})
}

// PointerDown starts a drag when (x, y) lies in the interactive region and reports whether it did
func (e *Engine) PointerDown(x, y float64) bool {
	e.trackPointer(x, y)
	if e.closed || !e.layout.InDragRegion(x, y) {
		return false
	}
	e.drag = drag{active: true, originX: x, originRotation: e.target}
	return true
}

// PointerMove tracks the pointer for the look-at effect and updates the target while dragging
func (e *Engine) PointerMove(x, y float64) {
	e.trackPointer(x, y)
	if !e.drag.active {
		return
	}
	dx := x - e.drag.originX
	e.target = e.drag.originRotation - dx/e.layout.Viewport.Width*2*math.Pi
}

// PointerUp ends a drag and snaps the target to the nearest item
func (e *Engine) PointerUp() {
	if !e.drag.active {
		return
	}
	e.drag.active = false
	e.target = e.snap(e.target)
}

func (e *Engine) snap(angle float64) float64 {
	if e.step == 0 {
		return angle
	}
	return math.Floor(angle/e.step+0.5) * e.step
}

func (e *Engine) trackPointer(x, y float64) {
	e.pointerX, e.pointerY = x, y
	e.pointerSet = true
}

// Prev rotates one item backwards
func (e *Engine) Prev() {
	if e.closed {
		return
	}
	e.target += e.step
}

// Next rotates one item forwards
func (e *Engine) Next() {
	if e.closed {
		return
	}
	e.target -= e.step
}

// Resize recomputes the layout and camera for a new viewport.
// Rotation, target and active index are left untouched.
func (e *Engine) Resize(v Viewport) {
	e.layout = LayoutFor(v, e.cfg)
	e.viewport = e.layout.Viewport
	e.camera.Position.Y = e.layout.CameraY
	e.camera.Target.Y = e.layout.CameraY
	e.camera.Resize(e.viewport.Width, e.viewport.Height)
	if !e.pointerSet {
		e.pointerX, e.pointerY = e.viewport.Width/2, e.viewport.Height/2
	}
}

// Subscribe registers an observer for active index changes. The returned func removes it.
func (e *Engine) Subscribe(o Observer) (cancel func()) {
	id := e.nextSubID
	e.nextSubID++
	e.observers = append(e.observers, subscription{id: id, observer: o})
	return func() {
		for i, s := range e.observers {
			if s.id == id {
				e.observers = append(e.observers[:i], e.observers[i+1:]...)
				return
			}
		}
	}
}

// Close unmounts the engine: pending loads are cancelled, the transition timer is stopped
// and observers are dropped. It is safe to call more than once.
func (e *Engine) Close() {
	if e.closed {
		return
	}
	e.closed = true
	e.cancel()
	if e.timer != nil {
		e.timer.Stop()
	}
	e.transitioning.Store(false)
	e.observers = nil
	e.drag = drag{}
}

// ActiveIndex returns the frontmost item as of the last Update
func (e *Engine) ActiveIndex() int { return e.active }

// Transitioning reports whether the active item changed within the transition delay.
// It may be called from any goroutine.
func (e *Engine) Transitioning() bool { return e.transitioning.Load() }

// Items returns the carousel items; callers must not modify them
func (e *Engine) Items() []*Item { return e.items }

// Item returns item i
func (e *Engine) Item(i int) *Item { return e.items[i] }

// Len returns the number of items
func (e *Engine) Len() int { return len(e.items) }

// Rotation returns the current, smoothed rotation
func (e *Engine) Rotation() float64 { return e.rotation }

// TargetRotation returns the rotation the carousel is heading to
func (e *Engine) TargetRotation() float64 { return e.target }

// StepAngle returns 2π/N
func (e *Engine) StepAngle() float64 { return e.step }

// Dragging reports whether a drag gesture is in progress
func (e *Engine) Dragging() bool { return e.drag.active }

// Layout returns the current layout constants
func (e *Engine) Layout() Layout { return e.layout }

// Camera returns the carousel camera
func (e *Engine) Camera() *viewer.Camera { return e.camera }

// Config returns the engine tuning
func (e *Engine) Config() Config { return e.cfg }

// Closed reports whether Close has been called
func (e *Engine) Closed() bool { return e.closed }

// AssetsSettled is closed once every asset load has finished or been cancelled.
// Results are applied by the next Update.
func (e *Engine) AssetsSettled() <-chan struct{} { return e.settled }
