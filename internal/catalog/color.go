package catalog

import "fmt"

// RGB is a color with channels in [0, 1].
type RGB struct {
	R, G, B float64
}

// Hex renders the color as a #rrggbb string, the form lipgloss and web
// canvases both accept.
func (c RGB) Hex() string {
	to255 := func(v float64) int {
		n := int(v*255 + 0.5)
		if n < 0 {
			n = 0
		}
		if n > 255 {
			n = 255
		}
		return n
	}
	return fmt.Sprintf("#%02x%02x%02x", to255(c.R), to255(c.G), to255(c.B))
}

// BVToRGB converts a B-V color index to an approximate display color by
// interpolating a blackbody-derived table. Inputs outside [-0.4, 2.0] are
// clamped; hot O/B stars come out blue-white, cool M stars orange.
func BVToRGB(bv float64) RGB {
	if bv < -0.4 {
		bv = -0.4
	}
	if bv > 2.0 {
		bv = 2.0
	}

	// Table steps of 0.2 starting at -0.4.
	pos := (bv + 0.4) / 0.2
	i := int(pos)
	if i >= len(bvTable)-1 {
		return bvTable[len(bvTable)-1]
	}

	f := pos - float64(i)
	lo, hi := bvTable[i], bvTable[i+1]
	return RGB{
		R: lo.R*(1-f) + hi.R*f,
		G: lo.G*(1-f) + hi.G*f,
		B: lo.B*(1-f) + hi.B*f,
	}
}

var bvTable = []RGB{
	{0.607, 0.698, 1.000}, // -0.4
	{0.698, 0.772, 1.000}, // -0.2
	{0.827, 0.866, 1.000}, // 0.0
	{0.913, 0.925, 1.000}, // 0.2
	{0.979, 0.969, 1.000}, // 0.4
	{1.000, 0.981, 0.954}, // 0.6
	{1.000, 0.953, 0.890}, // 0.8
	{1.000, 0.916, 0.818}, // 1.0
	{1.000, 0.873, 0.744}, // 1.2
	{1.000, 0.833, 0.671}, // 1.4
	{1.000, 0.798, 0.607}, // 1.6
	{1.000, 0.772, 0.561}, // 1.8
	{1.000, 0.753, 0.530}, // 2.0
}
