package sky

const (
	minStarSize = 0.5
	maxStarSize = 8.0
)

// StarSize maps apparent magnitude to a render radius in pixels, scaled by
// the camera zoom. Magnitude is logarithmic and inverted (lower = brighter),
// so size falls off linearly with magnitude from a bright anchor at -1.5.
// The result is clamped to [0.5, 8] whatever the inputs.
func StarSize(mag, zoom float64) float64 {
	size := (6.5 - mag) * 0.55 * zoom
	if size < minStarSize {
		return minStarSize
	}
	if size > maxStarSize {
		return maxStarSize
	}
	return size
}
