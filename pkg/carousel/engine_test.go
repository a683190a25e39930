package carousel

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"math"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/philipparndt/gofolio/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	t0     = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	wide   = Viewport{Width: 1400, Height: 900}
	narrow = Viewport{Width: 1000, Height: 800}
)

type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Printf(format string, v ...any) {
	l.lines = append(l.lines, fmt.Sprintf(format, v...))
}

type boxAsset struct {
	bounds geometry.BoundingBox
}

func (a boxAsset) Bounds() geometry.BoundingBox { return a.bounds }

func entries(n int) []Entry {
	out := make([]Entry, n)
	for i := range out {
		out[i] = Entry{Color: color.RGBA{R: uint8(40 * i), A: 0xFF}}
	}
	return out
}

func newEngine(t *testing.T, n int, v Viewport, opts ...Option) (*Engine, *FakeClock) {
	t.Helper()
	clock := NewFakeClock(t0)
	e := New(entries(n), append([]Option{WithClock(clock), WithViewport(v)}, opts...)...)
	t.Cleanup(e.Close)
	return e, clock
}

// settle runs frames without advancing time until the rotation has converged
func settle(e *Engine, now time.Time) {
	for i := 0; i < 400; i++ {
		e.Update(now)
	}
}

func waitSettled(t *testing.T, e *Engine) {
	t.Helper()
	select {
	case <-e.AssetsSettled():
	case <-time.After(5 * time.Second):
		t.Fatal("asset loads did not settle")
	}
}

func TestBaseAnglesAreEvenlySpaced(t *testing.T) {
	for n := 1; n <= 6; n++ {
		e, _ := newEngine(t, n, wide)
		step := 2 * math.Pi / float64(n)

		assert.InDelta(t, step, e.StepAngle(), 1e-12)
		for i, it := range e.Items() {
			assert.Equal(t, i, it.Index)
			assert.InDelta(t, float64(i)*step, it.BaseAngle, 1e-12, "n=%d i=%d", n, i)
		}
	}
}

func TestEmptyCarousel(t *testing.T) {
	e, clock := newEngine(t, 0, wide)

	e.Next()
	e.Update(clock.Now())
	assert.Equal(t, 0, e.ActiveIndex())
	assert.Equal(t, 0, e.Len())
}

func TestDragRotatesTarget(t *testing.T) {
	e, _ := newEngine(t, 3, narrow)

	require.True(t, e.PointerDown(100, 50))
	assert.True(t, e.Dragging())

	e.PointerMove(200, 60)
	assert.InDelta(t, -0.2*math.Pi, e.TargetRotation(), 1e-12)

	e.PointerMove(100, 60)
	assert.InDelta(t, 0, e.TargetRotation(), 1e-12)
}

func TestDragStartsFromTarget(t *testing.T) {
	e, _ := newEngine(t, 4, wide)

	e.Next()
	require.True(t, e.PointerDown(100, 100))
	e.PointerMove(100+140, 100)

	want := -e.StepAngle() - 0.1*2*math.Pi
	assert.InDelta(t, want, e.TargetRotation(), 1e-12)
}

func TestDragRegion(t *testing.T) {
	tests := []struct {
		name     string
		viewport Viewport
		x, y     float64
		want     bool
	}{
		{"WideLeft", wide, 100, 850, true},
		{"WideRight", wide, 900, 100, false},
		{"WideEdge", wide, 0.6 * 1400, 100, false},
		{"NarrowTop", narrow, 900, 100, true},
		{"NarrowBottom", narrow, 100, 500, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newEngine(t, 3, tt.viewport)
			assert.Equal(t, tt.want, e.PointerDown(tt.x, tt.y))
			assert.Equal(t, tt.want, e.Dragging())

			e.PointerMove(tt.x+300, tt.y)
			if !tt.want {
				assert.Zero(t, e.TargetRotation())
			}
		})
	}
}

func TestReleaseSnapsToStep(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))

	for n := 1; n <= 6; n++ {
		e, _ := newEngine(t, n, wide)
		for i := 0; i < 50; i++ {
			x := rng.Float64() * 800
			require.True(t, e.PointerDown(x, 100))
			e.PointerMove(x+(rng.Float64()-0.5)*3000, 100)
			e.PointerUp()

			assert.False(t, e.Dragging())
			k := e.TargetRotation() / e.StepAngle()
			assert.InDelta(t, math.Round(k), k, 1e-9, "n=%d target=%v", n, e.TargetRotation())
		}
	}
}

func TestReleaseRoundsToNearest(t *testing.T) {
	e, _ := newEngine(t, 4, narrow)
	step := e.StepAngle()

	// -0.2π is closer to 0 than to -π/2
	e.PointerDown(100, 10)
	e.PointerMove(200, 10)
	e.PointerUp()
	assert.InDelta(t, 0, e.TargetRotation(), 1e-12)

	// -0.4π is closer to -π/2
	e.PointerDown(100, 10)
	e.PointerMove(300, 10)
	e.PointerUp()
	assert.InDelta(t, -step, e.TargetRotation(), 1e-12)
}

func TestPointerUpWithoutDragIsIgnored(t *testing.T) {
	e, _ := newEngine(t, 3, wide)

	e.PointerMove(500, 500)
	e.PointerUp()
	assert.Zero(t, e.TargetRotation())
}

func TestPrevNext(t *testing.T) {
	e, _ := newEngine(t, 3, wide)
	step := e.StepAngle()

	e.Next()
	assert.InDelta(t, -2*math.Pi/3, e.TargetRotation(), 1e-12)
	assert.Zero(t, e.Rotation())

	e.Prev()
	e.Prev()
	assert.InDelta(t, step, e.TargetRotation(), 1e-12)
}

func TestRotationConvergesMonotonically(t *testing.T) {
	e, clock := newEngine(t, 3, wide)
	e.Next()

	gap := math.Abs(e.Rotation() - e.TargetRotation())
	for i := 0; i < 150; i++ {
		e.Update(clock.Now())
		next := math.Abs(e.Rotation() - e.TargetRotation())
		require.Less(t, next, gap, "tick %d", i)
		require.GreaterOrEqual(t, e.Rotation(), e.TargetRotation()-1e-12, "overshoot at tick %d", i)
		gap = next
	}
}

func TestNextBringsNextItemToFront(t *testing.T) {
	for _, v := range []Viewport{wide, narrow} {
		t.Run(fmt.Sprintf("%vx%v", v.Width, v.Height), func(t *testing.T) {
			e, clock := newEngine(t, 3, v)
			var seen []int
			e.Subscribe(ObserverFunc(func(i int) { seen = append(seen, i) }))

			e.Update(clock.Now())
			assert.Equal(t, 0, e.ActiveIndex())

			e.Next()
			settle(e, clock.Now())

			assert.Equal(t, 1, e.ActiveIndex())
			assert.Equal(t, []int{1}, seen)
			assert.InDelta(t, 0, math.Remainder(e.Item(1).BaseAngle+e.Rotation(), 2*math.Pi), 1e-6)
		})
	}
}

func TestActiveIndexAlwaysInRange(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	for n := 1; n <= 6; n++ {
		e, clock := newEngine(t, n, wide)
		for i := 0; i < 500; i++ {
			switch rng.IntN(6) {
			case 0:
				e.Next()
			case 1:
				e.Prev()
			case 2:
				e.PointerDown(rng.Float64()*1400, rng.Float64()*900)
			case 3:
				e.PointerMove(rng.Float64()*1400, rng.Float64()*900)
			case 4:
				e.PointerUp()
			case 5:
				if rng.IntN(2) == 0 {
					e.Resize(wide)
				} else {
					e.Resize(narrow)
				}
			}
			clock.Advance(16 * time.Millisecond)
			e.Tick()

			require.GreaterOrEqual(t, e.ActiveIndex(), 0)
			require.Less(t, e.ActiveIndex(), n)
		}
	}
}

func TestTransitionFlagClearsAfterDelay(t *testing.T) {
	e, clock := newEngine(t, 3, wide)

	e.Next()
	settle(e, clock.Now())
	require.Equal(t, 1, e.ActiveIndex())
	assert.True(t, e.Transitioning())

	clock.Advance(299 * time.Millisecond)
	assert.True(t, e.Transitioning())

	clock.Advance(time.Millisecond)
	assert.False(t, e.Transitioning())
}

func TestTransitionFlagFollowsLatestChange(t *testing.T) {
	e, clock := newEngine(t, 3, wide)

	e.Next()
	settle(e, clock.Now())
	require.Equal(t, 1, e.ActiveIndex())

	clock.Advance(200 * time.Millisecond)
	e.Next()
	settle(e, clock.Now())
	require.Equal(t, 2, e.ActiveIndex())

	// the first change's timer would have fired here
	clock.Advance(100 * time.Millisecond)
	assert.True(t, e.Transitioning())

	clock.Advance(200 * time.Millisecond)
	assert.False(t, e.Transitioning())
	assert.Zero(t, clock.Pending())
}

func TestEntranceAnimation(t *testing.T) {
	e, clock := newEngine(t, 3, wide)

	e.Update(clock.Now())
	first := e.Item(0).Visual
	assert.Zero(t, first.Entrance)
	assert.InDelta(t, -6, first.Position.Y, 1e-12)
	assert.InDelta(t, 1.5*math.Pi, first.Spin, 1e-12)
	assert.Zero(t, first.Opacity)

	// item 1 starts 150ms after item 0
	clock.Advance(150 * time.Millisecond)
	e.Tick()
	assert.Greater(t, e.Item(0).Visual.Entrance, 0.0)
	assert.Zero(t, e.Item(1).Visual.Entrance)

	clock.Advance(2 * time.Second)
	e.Tick()
	for _, it := range e.Items() {
		assert.InDelta(t, 1, it.Visual.Entrance, 1e-12)
		assert.InDelta(t, 0, it.Visual.Position.Y, 1e-12)
		assert.InDelta(t, 0, it.Visual.Spin, 1e-12)
	}
	front := e.Item(0).Visual
	assert.InDelta(t, 1.15, front.Scale, 1e-12)
	assert.InDelta(t, 2.0, front.ModelScale, 1e-12)
	assert.InDelta(t, 1.0, front.Opacity, 1e-12)
}

func TestIdleSpinOnlyForBackgroundItems(t *testing.T) {
	e, clock := newEngine(t, 3, wide)
	e.Update(clock.Now())

	before := e.Item(1).Visual.Orientation
	e.Update(clock.Now())
	after := e.Item(1).Visual.Orientation

	want := geometry.QuaternionFromEuler(0.008, 0.012, 0).Angle(geometry.IdentityQuaternion())
	assert.InDelta(t, want, before.Angle(after), 1e-6)
}

func TestActiveItemEasesTowardsPointer(t *testing.T) {
	e, clock := newEngine(t, 3, wide)
	clock.Advance(2 * time.Second)
	e.PointerMove(100, 100)

	e.Tick()
	start := e.Item(0).Visual.Orientation
	e.Tick()
	step1 := start.Angle(e.Item(0).Visual.Orientation)
	for i := 0; i < 300; i++ {
		e.Tick()
	}
	settled := e.Item(0).Visual.Orientation
	e.Tick()
	late := settled.Angle(e.Item(0).Visual.Orientation)

	assert.Greater(t, step1, 0.0)
	assert.Less(t, step1, 0.2, "look-at must not snap")
	assert.Less(t, late, step1)
}

func TestLoadedAssetReplacesPlaceholder(t *testing.T) {
	bounds := geometry.NewBoundingBox()
	bounds.Extend(geometry.NewVector3(0, 0, 0))
	bounds.Extend(geometry.NewVector3(8, 4, 2))
	loader := LoaderFunc(func(ctx context.Context, ref string) (Asset, error) {
		return boxAsset{bounds: bounds}, nil
	})

	clock := NewFakeClock(t0)
	es := entries(3)
	es[0].AssetRef = "logo.glb"
	e := New(es, WithClock(clock), WithLoader(loader))
	defer e.Close()

	it := e.Item(0)
	assert.Equal(t, AssetPending, it.AssetState())
	assert.True(t, it.Placeholder())
	assert.Equal(t, AssetNone, e.Item(1).AssetState())

	waitSettled(t, e)
	assert.True(t, it.Placeholder(), "assets are only applied by Update")
	e.Tick()

	assert.Equal(t, AssetReady, it.AssetState())
	assert.False(t, it.Placeholder())
	scale, offset := it.Fit()
	assert.InDelta(t, 0.25, scale, 1e-12)
	assert.Equal(t, geometry.NewVector3(-1, -0.5, -0.25), offset)

	assert.False(t, it.setAsset(boxAsset{}, 2), "an asset is only replaced once")
	assert.False(t, it.fail())
	assert.Equal(t, AssetReady, it.AssetState())
}

func TestFailedLoadKeepsPlaceholder(t *testing.T) {
	logger := &recordingLogger{}
	loader := LoaderFunc(func(ctx context.Context, ref string) (Asset, error) {
		if ref == "broken.glb" {
			return nil, errors.New("no such file")
		}
		return boxAsset{bounds: geometry.BoundingBox{Max: geometry.NewVector3(1, 1, 1)}}, nil
	})

	clock := NewFakeClock(t0)
	es := entries(3)
	es[0].AssetRef = "ok.glb"
	es[2].AssetRef = "broken.glb"
	e := New(es, WithClock(clock), WithLoader(loader), WithLogger(logger))
	defer e.Close()

	waitSettled(t, e)
	require.NotPanics(t, e.Tick)

	failed := e.Item(2)
	assert.Equal(t, AssetFailed, failed.AssetState())
	assert.True(t, failed.Placeholder())
	assert.Nil(t, failed.Asset())
	assert.Equal(t, []string{"carousel: load broken.glb: no such file"}, logger.lines)
	assert.Equal(t, AssetReady, e.Item(0).AssetState())

	for i := 0; i < 10; i++ {
		e.Tick()
	}
	assert.Equal(t, AssetFailed, failed.AssetState())
	assert.Len(t, logger.lines, 1)
}

func TestNilAssetCountsAsFailure(t *testing.T) {
	logger := &recordingLogger{}
	loader := LoaderFunc(func(ctx context.Context, ref string) (Asset, error) { return nil, nil })

	es := entries(1)
	es[0].AssetRef = "empty"
	e := New(es, WithClock(NewFakeClock(t0)), WithLoader(loader), WithLogger(logger))
	defer e.Close()

	waitSettled(t, e)
	e.Tick()
	assert.Equal(t, AssetFailed, e.Item(0).AssetState())
	assert.Len(t, logger.lines, 1)
}

func TestCloseCancelsLoads(t *testing.T) {
	started := make(chan struct{})
	loader := LoaderFunc(func(ctx context.Context, ref string) (Asset, error) {
		close(started)
		<-ctx.Done()
		return nil, ctx.Err()
	})

	es := entries(2)
	es[1].AssetRef = "slow.glb"
	e := New(es, WithClock(NewFakeClock(t0)), WithLoader(loader))

	<-started
	e.Close()
	waitSettled(t, e)

	e.Tick()
	assert.Equal(t, AssetPending, e.Item(1).AssetState())
	assert.True(t, e.Closed())
}

func TestCloseIsIdempotentAndStopsUpdates(t *testing.T) {
	e, clock := newEngine(t, 3, wide)
	var calls int
	e.Subscribe(ObserverFunc(func(int) { calls++ }))

	e.Next()
	e.Close()
	e.Close()

	settle(e, clock.Now())
	e.Next()
	assert.Zero(t, e.Rotation())
	assert.Zero(t, calls)
	assert.False(t, e.PointerDown(10, 10))
	assert.False(t, e.Transitioning())
}

func TestSubscribeCancel(t *testing.T) {
	e, clock := newEngine(t, 3, wide)
	var a, b []int
	cancelA := e.Subscribe(ObserverFunc(func(i int) { a = append(a, i) }))
	e.Subscribe(ObserverFunc(func(i int) { b = append(b, i) }))

	e.Next()
	settle(e, clock.Now())
	cancelA()
	cancelA()

	e.Next()
	settle(e, clock.Now())

	assert.Equal(t, []int{1}, a)
	assert.Equal(t, []int{1, 2}, b)
}

func TestResizeKeepsRotationState(t *testing.T) {
	e, clock := newEngine(t, 4, wide)
	e.Next()
	for i := 0; i < 20; i++ {
		e.Update(clock.Now())
	}
	rotation, target, active := e.Rotation(), e.TargetRotation(), e.ActiveIndex()

	e.Resize(narrow)
	first := e.Layout()
	cam := *e.Camera()
	e.Resize(narrow)

	assert.Equal(t, first, e.Layout())
	assert.Equal(t, cam, *e.Camera())
	assert.Equal(t, rotation, e.Rotation())
	assert.Equal(t, target, e.TargetRotation())
	assert.Equal(t, active, e.ActiveIndex())
	assert.False(t, e.Layout().Wide)
	assert.InDelta(t, -2.2, e.Camera().Position.Y, 1e-12)

	e.Resize(wide)
	assert.True(t, e.Layout().Wide)
	assert.Zero(t, e.Camera().Position.Y)
	assert.InDelta(t, 1400.0/900.0, e.Camera().Aspect(), 1e-12)
}

func TestZeroSizedViewportIsClamped(t *testing.T) {
	e, clock := newEngine(t, 3, Viewport{})

	assert.Equal(t, Viewport{Width: 1, Height: 1}, e.Layout().Viewport)
	e.PointerDown(0, 0)
	e.PointerMove(0.5, 0)
	e.PointerUp()
	e.Update(clock.Now())

	assert.False(t, math.IsNaN(e.TargetRotation()) || math.IsInf(e.TargetRotation(), 0))
	for _, it := range e.Items() {
		assert.False(t, math.IsNaN(it.Visual.Position.X))
		assert.False(t, math.IsNaN(it.Visual.Orientation.W))
	}
}

func TestModelTransformFoldsInFit(t *testing.T) {
	bounds := geometry.NewBoundingBox()
	bounds.Extend(geometry.NewVector3(10, 10, 10))
	bounds.Extend(geometry.NewVector3(14, 12, 11))
	loader := LoaderFunc(func(ctx context.Context, ref string) (Asset, error) {
		return boxAsset{bounds: bounds}, nil
	})

	clock := NewFakeClock(t0)
	es := entries(2)
	es[0].AssetRef = "logo.stl"
	e := New(es, WithClock(clock), WithLoader(loader), WithViewport(wide))
	defer e.Close()

	waitSettled(t, e)
	clock.Advance(3 * time.Second)
	e.Tick()

	it := e.Item(0)
	xf := it.ModelTransform()
	center := xf.Apply(bounds.Center())
	assert.InDelta(t, 0, center.Distance(it.Visual.ModelPosition), 1e-9, "asset center lands on the model position")

	size := xf.Apply(bounds.Max).Sub(xf.Apply(bounds.Min)).Length()
	want := bounds.Diagonal() * 0.5 * it.Visual.ModelScale * it.Visual.Scale
	assert.InDelta(t, want, size, 1e-9)

	placeholder := e.Item(1).ModelTransform()
	assert.Equal(t, e.Item(1).Visual.ModelPosition, placeholder.Translation)
	assert.InDelta(t, e.Item(1).Visual.ModelScale*e.Item(1).Visual.Scale, placeholder.Scale, 1e-12)
}
