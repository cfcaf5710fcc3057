package gamemath

// Clamp constrains value to [min, max]. When max < min the range collapses to min.
func Clamp(value, min, max float64) float64 {
	if max < min {
		max = min
	}
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// HorizontalIntent returns the per-tick horizontal displacement for the held
// direction keys. Holding both cancels out.
func HorizontalIntent(left, right bool, speed float64) float64 {
	dx := 0.0
	if left {
		dx -= speed
	}
	if right {
		dx += speed
	}
	return dx
}
