package waveform_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/linksound/wavekit/internal/waveform"
	"github.com/stretchr/testify/require"
)

// The numeric codes are part of the API surface and must never drift.
func TestErrorCodes_Stable(t *testing.T) {
	t.Parallel()

	require.EqualValues(t, 1000, waveform.CodeRecordingFailed)
	require.EqualValues(t, 1001, waveform.CodePlaybackFailed)
	require.EqualValues(t, 1002, waveform.CodeMicrophoneDenied)
	require.EqualValues(t, 1003, waveform.CodeInvalidConfiguration)
	require.EqualValues(t, 1004, waveform.CodeFileNotFound)
}

func TestError_WrappingAndCodeOf(t *testing.T) {
	t.Parallel()

	cause := errors.New("device busy")
	err := waveform.WrapError(waveform.CodeRecordingFailed, cause, "capture failed")

	require.ErrorIs(t, err, cause)
	require.Contains(t, err.Error(), "1000")

	wrapped := fmt.Errorf("outer: %w", err)
	code, ok := waveform.CodeOf(wrapped)
	require.True(t, ok)
	require.Equal(t, waveform.CodeRecordingFailed, code)
	require.True(t, waveform.IsCode(wrapped, waveform.CodeRecordingFailed))
	require.False(t, waveform.IsCode(wrapped, waveform.CodeFileNotFound))
}

func TestCodeOf_PlainError(t *testing.T) {
	t.Parallel()

	_, ok := waveform.CodeOf(errors.New("plain"))
	require.False(t, ok)
}
