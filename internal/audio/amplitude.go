// Package audio provides the amplitude collaborators around the waveform
// engine: a live capture feed and a WAV-file source. Both reduce raw sample
// buffers to one amplitude per tick; the engine never sees PCM data.
package audio

import (
	"encoding/binary"
	"math"
)

// BytesToInt16 converts S16LE (signed 16-bit little-endian) bytes to int16
// samples.
func BytesToInt16(data []byte) []int16 {
	numSamples := len(data) / 2
	if numSamples == 0 {
		return nil
	}

	samples := make([]int16, numSamples)
	for i := 0; i < numSamples; i++ {
		samples[i] = int16(binary.LittleEndian.Uint16(data[i*2:]))
	}

	return samples
}

// PeakAmplitude returns the peak absolute amplitude of the buffer,
// normalized to [0,1].
func PeakAmplitude(samples []int16) float64 {
	var peak int
	for _, s := range samples {
		v := int(s)
		if v < 0 {
			v = -v // -32768 negates safely in int
		}
		if v > peak {
			peak = v
		}
	}
	return float64(peak) / 32768.0
}

// RMSAmplitude returns the root-mean-square amplitude of the buffer,
// normalized to [0,1].
func RMSAmplitude(samples []int16) float64 {
	if len(samples) == 0 {
		return 0
	}

	var sum float64
	for _, s := range samples {
		v := float64(s) / 32768.0
		sum += v * v
	}

	return math.Sqrt(sum / float64(len(samples)))
}
