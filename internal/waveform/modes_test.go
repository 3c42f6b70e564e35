package waveform_test

import (
	"testing"

	"github.com/linksound/wavekit/internal/style"
	"github.com/linksound/wavekit/internal/waveform"
	"github.com/stretchr/testify/require"
)

func TestParseHeightMode(t *testing.T) {
	t.Parallel()

	for _, m := range waveform.HeightModes() {
		got, err := waveform.ParseHeightMode(m.String())
		require.NoError(t, err)
		require.Equal(t, m, got)
	}

	_, err := waveform.ParseHeightMode("sideways")
	require.Error(t, err)
	require.True(t, waveform.IsCode(err, waveform.CodeInvalidConfiguration))
}

func TestParseLayoutMode(t *testing.T) {
	t.Parallel()

	for _, m := range waveform.LayoutModes() {
		got, err := waveform.ParseLayoutMode(m.String())
		require.NoError(t, err)
		require.Equal(t, m, got)
	}

	_, err := waveform.ParseLayoutMode("spiral")
	require.Error(t, err)
	require.True(t, waveform.IsCode(err, waveform.CodeInvalidConfiguration))
}

func TestParseStyle_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, tok := range style.Tokens() {
		got, err := waveform.ParseStyle(tok.String())
		require.NoError(t, err)
		require.Equal(t, tok, got)
	}
}

func TestParseStyle_CaseInsensitive(t *testing.T) {
	t.Parallel()

	got, err := waveform.ParseStyle("  Spotify ")
	require.NoError(t, err)
	require.Equal(t, style.TokenSpotify, got)
}

// Unknown names must carry the stable configuration code, same as every
// other enum rejected at this boundary.
func TestParseStyle_UnknownCarriesCode(t *testing.T) {
	t.Parallel()

	_, err := waveform.ParseStyle("winamp")
	require.Error(t, err)
	require.True(t, waveform.IsCode(err, waveform.CodeInvalidConfiguration))
}
