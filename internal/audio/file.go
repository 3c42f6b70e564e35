package audio

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/linksound/wavekit/internal/waveform"
)

// DefaultWindow is the number of PCM frames reduced to one amplitude when
// replaying a file, roughly one 50ms tick at 16kHz.
const DefaultWindow = 800

// FileSource is a file-backed amplitude source: a decoded WAV file reduced
// to one peak amplitude per window, replayable through a session as if it
// were a live feed.
type FileSource struct {
	path       string
	sampleRate int
	amplitudes []float64
}

// OpenFile decodes a WAV file into windowed amplitudes. A missing file is
// reported with CodeFileNotFound; undecodable content with
// CodePlaybackFailed. window <= 0 uses DefaultWindow.
func OpenFile(path string, window int) (*FileSource, error) {
	if window <= 0 {
		window = DefaultWindow
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, waveform.WrapError(waveform.CodeFileNotFound, err,
				"waveform file %q not found", path)
		}
		return nil, waveform.WrapError(waveform.CodePlaybackFailed, err,
			"failed to open waveform file %q", path)
	}
	defer f.Close()

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		return nil, waveform.NewError(waveform.CodePlaybackFailed,
			"%q is not a valid WAV file", path)
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, waveform.WrapError(waveform.CodePlaybackFailed, err,
			"failed to decode %q", path)
	}

	return &FileSource{
		path:       path,
		sampleRate: int(decoder.SampleRate),
		amplitudes: windowedPeaks(buf, int(decoder.BitDepth), window),
	}, nil
}

// Amplitudes returns one peak amplitude in [0,1] per window, in playback
// order.
func (s *FileSource) Amplitudes() []float64 {
	return s.amplitudes
}

// SampleRate returns the source file's sample rate.
func (s *FileSource) SampleRate() int {
	return s.sampleRate
}

// Path returns the source file path.
func (s *FileSource) Path() string {
	return s.path
}

// windowedPeaks reduces interleaved PCM data to one normalized peak per
// window of frames. Channels are not downmixed; the peak across all
// channels in the window wins.
func windowedPeaks(buf *audio.IntBuffer, bitDepth, window int) []float64 {
	if buf == nil || len(buf.Data) == 0 {
		return nil
	}

	numChans := 1
	if buf.Format != nil && buf.Format.NumChannels > 0 {
		numChans = buf.Format.NumChannels
	}

	maxVal := float64(audio.IntMaxSignedValue(bitDepth))
	if maxVal == 0 {
		maxVal = 32767
	}

	stride := window * numChans
	data := buf.Data

	out := make([]float64, 0, len(data)/stride+1)
	for start := 0; start < len(data); start += stride {
		end := start + stride
		if end > len(data) {
			end = len(data)
		}

		var peak int
		for _, v := range data[start:end] {
			if v < 0 {
				v = -v
			}
			if v > peak {
				peak = v
			}
		}

		amp := float64(peak) / maxVal
		if amp > 1 {
			amp = 1
		}
		out = append(out, amp)
	}

	return out
}
