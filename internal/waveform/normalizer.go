package waveform

import (
	"math"

	"github.com/linksound/wavekit/pkg/numeric"
)

// DefaultSmoothing is the exponential smoothing factor applied to incoming
// amplitudes. Lower values smooth harder. 0.35 keeps the waveform responsive
// at capture-buffer cadence without visible jitter.
const DefaultSmoothing = 0.35

// Normalizer clamps raw amplitude input to [0,1] and applies exponential
// smoothing against the previously accepted sample.
//
// Invalid input (NaN, ±Inf) is treated as silence. Amplitudes arrive at high
// frequency from a live signal, so normalization never fails; it only clamps.
type Normalizer struct {
	smoothing float64
	prev      float64
	primed    bool
}

// NewNormalizer creates a Normalizer. A smoothing factor outside (0,1]
// falls back to DefaultSmoothing.
func NewNormalizer(smoothing float64) *Normalizer {
	if smoothing <= 0 || smoothing > 1 {
		smoothing = DefaultSmoothing
	}
	return &Normalizer{smoothing: smoothing}
}

// Normalize maps a raw amplitude to a clamped, smoothed sample in [0,1].
func (n *Normalizer) Normalize(raw float64) float64 {
	if math.IsNaN(raw) || math.IsInf(raw, 0) {
		raw = 0
	}

	v := numeric.Clamp(raw, 0, 1)

	if !n.primed {
		n.prev = v
		n.primed = true
		return v
	}

	v = numeric.Lerp(n.prev, v, n.smoothing)
	n.prev = v

	return v
}

// Reset clears the smoothing state so the next sample passes through
// unsmoothed.
func (n *Normalizer) Reset() {
	n.prev = 0
	n.primed = false
}
