package carousel

import "time"

// Config holds the tuning constants of the engine
type Config struct {
	Smoothing       float64       // fraction of the remaining rotation covered per frame
	Breakpoint      float64       // viewport width at and above which the wide layout is used
	DragRegion      float64       // wide layout: drags start left of this fraction of the width
	TouchBand       float64       // narrow layout: drags start above this fraction of the height
	Entrance        time.Duration // nominal entrance length
	Stagger         time.Duration // entrance delay between consecutive items
	TransitionDelay time.Duration // how long Transitioning stays set after an active change
	TargetSize      float64       // loaded assets are scaled so their largest side matches this
	LookDamping     float64       // slerp factor of the active item's look-at
	IdleSpinX       float64       // radians per frame for non-active items
	IdleSpinY       float64
	CameraDistance  float64
}

// DefaultConfig returns the stock tuning
func DefaultConfig() Config {
	return Config{
		Smoothing:       0.08,
		Breakpoint:      1024,
		DragRegion:      0.6,
		TouchBand:       0.42,
		Entrance:        1200 * time.Millisecond,
		Stagger:         150 * time.Millisecond,
		TransitionDelay: 300 * time.Millisecond,
		TargetSize:      2.0,
		LookDamping:     0.05,
		IdleSpinX:       0.008,
		IdleSpinY:       0.012,
		CameraDistance:  12,
	}
}
