package waveform

import "math"

// Bar is one renderable segment of the waveform. Positions are normalized:
// linear layouts place bar centers along X in [0,1] with Y at the baseline;
// the circular layout gives an angle (radians) plus a unit-circle position,
// with Height as radial extent.
type Bar struct {
	Index  int     `json:"index"`
	Height float64 `json:"height"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Angle  float64 `json:"angle,omitempty"`
}

// Geometry is the full renderable bar layout at a point in time. It is
// always recomputed whole, never patched in place.
type Geometry []Bar

// Compose maps a height sequence and a layout mode into final bar geometry.
// The input is never mutated; the result is always freshly allocated. Output
// length is defined purely by layout and bar count: 2n for the mirrored
// symmetric layout, n otherwise.
func Compose(heights []float64, layout LayoutMode) Geometry {
	switch layout {
	case LayoutSymmetric:
		return composeMirrored(heights)
	case LayoutLeftOnly:
		return composeLinear(heights, 0, 0.5)
	case LayoutRightOnly:
		return composeLinear(heights, 0.5, 1)
	case LayoutCircular:
		return composeCircular(heights)
	default: // LayoutHorizontal
		return composeLinear(heights, 0, 1)
	}
}

// composeLinear spreads bars left-to-right across the span [lo, hi].
func composeLinear(heights []float64, lo, hi float64) Geometry {
	n := len(heights)
	geo := make(Geometry, n)
	width := hi - lo
	for i, h := range heights {
		geo[i] = Bar{
			Index:  i,
			Height: h,
			X:      lo + (float64(i)+0.5)/float64(n)*width,
		}
	}
	return geo
}

// composeMirrored doubles the sequence, mirroring it about the midpoint:
// the left half is the reversed input, the right half the input itself.
func composeMirrored(heights []float64) Geometry {
	n := len(heights)
	mirrored := make([]float64, 0, 2*n)
	for i := n - 1; i >= 0; i-- {
		mirrored = append(mirrored, heights[i])
	}
	mirrored = append(mirrored, heights...)
	return composeLinear(mirrored, 0, 1)
}

// composeCircular places bars around a unit circle, angular step 2π/n,
// starting at twelve o'clock.
func composeCircular(heights []float64) Geometry {
	n := len(heights)
	geo := make(Geometry, n)
	step := 2 * math.Pi / float64(n)
	for i, h := range heights {
		angle := -math.Pi/2 + float64(i)*step
		geo[i] = Bar{
			Index:  i,
			Height: h,
			X:      math.Cos(angle),
			Y:      math.Sin(angle),
			Angle:  angle,
		}
	}
	return geo
}
