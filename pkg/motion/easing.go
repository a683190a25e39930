// Package motion holds the small numeric helpers shared by the animated views:
// easing curves, exponential smoothing and the typewriter text reveal.
package motion

import "math"

// Clamp01 limits v to the range [0, 1]
func Clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// Lerp interpolates linearly between a and b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Approach moves current towards target by a fixed fraction of the remaining gap.
// For 0 < factor < 1 the gap shrinks geometrically and never changes sign.
func Approach(current, target, factor float64) float64 {
	return current + (target-current)*factor
}

// EaseOutCubic decelerates towards 1: fast start, soft landing
func EaseOutCubic(t float64) float64 {
	t = Clamp01(t)
	inv := 1 - t
	return 1 - inv*inv*inv
}

// Progress returns how far elapsed is through a window that opens after delay and lasts duration,
// clamped to [0, 1]. A non-positive duration completes immediately once the delay has passed.
func Progress(elapsed, delay, duration float64) float64 {
	if duration <= 0 {
		if elapsed >= delay {
			return 1
		}
		return 0
	}
	return Clamp01((elapsed - delay) / duration)
}

// WrapAngle maps an angle in radians to [-Pi, Pi]
func WrapAngle(angle float64) float64 {
	return math.Remainder(angle, 2*math.Pi)
}
