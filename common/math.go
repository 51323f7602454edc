package common

import "math"

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// EaseInOutSine maps t in [0, 1] onto a sine ease that starts and ends at
// rest.
func EaseInOutSine(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return -(math.Cos(math.Pi*t) - 1) / 2
}

// Yoyo folds a tick counter into a 0..1..0 ramp with period ticks per leg.
func Yoyo(tick, period int) float64 {
	if period <= 0 {
		return 0
	}
	leg := tick % (2 * period)
	if leg < 0 {
		leg += 2 * period
	}
	if leg <= period {
		return float64(leg) / float64(period)
	}
	return float64(2*period-leg) / float64(period)
}
