package waveform

import (
	"math"
	"math/rand"
	"time"

	"github.com/linksound/wavekit/pkg/numeric"
)

// highLowShortFraction is the fixed height of the "short" bars in the
// HighLow/LowHigh modes, as a fraction of the min..max span. Amplitude only
// modulates the tall bars.
const highLowShortFraction = 0.2

// Computer converts amplitude history into a bar-height sequence.
//
// Every mode is deterministic for identical inputs except HeightRandom,
// which re-rolls from the Computer's random source on each invocation.
type Computer struct {
	rng *rand.Rand
}

// NewComputer creates a Computer with a time-seeded random source.
func NewComputer() *Computer {
	return NewSeededComputer(time.Now().UnixNano())
}

// NewSeededComputer creates a Computer whose HeightRandom output is
// reproducible for a given seed.
func NewSeededComputer(seed int64) *Computer {
	return &Computer{rng: rand.New(rand.NewSource(seed))}
}

// Compute returns exactly barCount heights, each within [minHeight,
// maxHeight] inclusive. Bars beyond the available history are padded with
// minHeight. Consumers rely on the range invariant for layout safety.
func (c *Computer) Compute(history []float64, mode HeightMode, barCount int, minHeight, maxHeight float64) []float64 {
	heights := make([]float64, barCount)
	span := maxHeight - minHeight

	if mode == HeightUniform {
		// Every bar tracks the latest sample.
		var latest float64
		if len(history) > 0 {
			latest = history[len(history)-1]
		}
		h := numeric.Clamp(minHeight+latest*span, minHeight, maxHeight)
		for i := range heights {
			heights[i] = h
		}
		return heights
	}

	for i := range heights {
		if i >= len(history) {
			heights[i] = minHeight
			continue
		}

		amp := history[i]

		var h float64
		switch mode {
		case HeightSymmetric:
			mid := float64(barCount-1) / 2
			weight := 1 - math.Abs(float64(i)-mid)/(mid+1)
			h = minHeight + amp*span*weight
		case HeightAscending:
			ramp := float64(i+1) / float64(barCount)
			h = minHeight + amp*span*ramp
		case HeightDescending:
			ramp := float64(barCount-i) / float64(barCount)
			h = minHeight + amp*span*ramp
		case HeightHighLow:
			if i%2 == 0 {
				h = minHeight + amp*span
			} else {
				h = minHeight + highLowShortFraction*span
			}
		case HeightLowHigh:
			if i%2 == 0 {
				h = minHeight + highLowShortFraction*span
			} else {
				h = minHeight + amp*span
			}
		case HeightRandom:
			h = minHeight + amp*c.rng.Float64()*span
		default:
			h = minHeight + amp*span
		}

		heights[i] = numeric.Clamp(h, minHeight, maxHeight)
	}

	return heights
}
