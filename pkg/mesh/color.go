package mesh

// RGBA is a floating-point vertex color.
type RGBA struct {
	R, G, B, A float32
}

// Lerp returns c*(1-t) + other*t, component-wise.
func (c RGBA) Lerp(other RGBA, t float32) RGBA {
	return RGBA{
		c.R + t*(other.R-c.R),
		c.G + t*(other.G-c.G),
		c.B + t*(other.B-c.B),
		c.A + t*(other.A-c.A),
	}
}
