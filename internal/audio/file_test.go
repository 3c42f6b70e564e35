package audio_test

import (
	"os"
	"path/filepath"
	"testing"

	gaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/linksound/wavekit/internal/audio"
	"github.com/linksound/wavekit/internal/waveform"
	"github.com/stretchr/testify/require"
)

// writeTestWAV writes a mono 16-bit WAV with the given samples.
func writeTestWAV(t *testing.T, path string, samples []int) {
	t.Helper()

	f, err := os.Create(path)
	require.NoError(t, err)

	enc := wav.NewEncoder(f, 16000, 16, 1, 1)
	buf := &gaudio.IntBuffer{
		Format: &gaudio.Format{NumChannels: 1, SampleRate: 16000},
		Data:   samples,
	}
	require.NoError(t, enc.Write(buf))
	require.NoError(t, enc.Close())
	require.NoError(t, f.Close())
}

func TestOpenFile_Missing(t *testing.T) {
	t.Parallel()

	_, err := audio.OpenFile(filepath.Join(t.TempDir(), "nope.wav"), 0)
	require.Error(t, err)
	require.True(t, waveform.IsCode(err, waveform.CodeFileNotFound))
}

func TestOpenFile_InvalidContent(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bogus.wav")
	require.NoError(t, os.WriteFile(path, []byte("definitely not riff"), 0o644))

	_, err := audio.OpenFile(path, 0)
	require.Error(t, err)
	require.True(t, waveform.IsCode(err, waveform.CodePlaybackFailed))
}

func TestOpenFile_WindowedAmplitudes(t *testing.T) {
	t.Parallel()

	// Two windows of 4 frames: a loud one and a quiet one.
	samples := []int{16384, -16384, 8000, 0, 100, -100, 50, 0}
	path := filepath.Join(t.TempDir(), "clip.wav")
	writeTestWAV(t, path, samples)

	src, err := audio.OpenFile(path, 4)
	require.NoError(t, err)
	require.Equal(t, 16000, src.SampleRate())

	amps := src.Amplitudes()
	require.Len(t, amps, 2)
	require.InDelta(t, 0.5, amps[0], 0.01)
	require.Less(t, amps[1], 0.01)
	for _, a := range amps {
		require.GreaterOrEqual(t, a, 0.0)
		require.LessOrEqual(t, a, 1.0)
	}
}
