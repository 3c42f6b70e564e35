package waveform

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/linksound/wavekit/internal/style"
	"github.com/linksound/wavekit/pkg/collections"
)

// Config is the full session configuration: a style preset plus explicit
// named options. Every field is concrete; ConfigForStyle fills them from the
// preset, and callers override what they need before applying.
type Config struct {
	Style      style.Token
	HeightMode HeightMode
	LayoutMode LayoutMode

	BarCount  int
	MinHeight float64
	MaxHeight float64
	BarWidth  float64
	Spacing   float64

	// Smoothing is the normalizer's exponential smoothing factor in (0,1].
	Smoothing float64

	// ColorStops, when non-empty, overrides the preset's gradient.
	ColorStops []string
}

// DefaultConfig returns the configuration for the default style preset.
func DefaultConfig() Config {
	return ConfigForStyle(style.TokenDefault)
}

// ConfigForStyle builds a Config from a preset's resolved parameters.
func ConfigForStyle(tok style.Token) Config {
	p := style.Resolve(tok)
	return Config{
		Style:      tok,
		HeightMode: HeightSymmetric,
		LayoutMode: LayoutHorizontal,
		BarCount:   p.BarCount,
		MinHeight:  p.MinHeight,
		MaxHeight:  p.MaxHeight,
		BarWidth:   p.BarWidth,
		Spacing:    p.Spacing,
		Smoothing:  DefaultSmoothing,
	}
}

// Validate rejects invalid configuration eagerly, before it can reach the
// geometry pipeline. All failures carry CodeInvalidConfiguration.
func (c Config) Validate() error {
	if !c.Style.Valid() {
		return NewError(CodeInvalidConfiguration, "unknown style token %d", int(c.Style))
	}
	if !c.HeightMode.Valid() {
		return NewError(CodeInvalidConfiguration, "unknown height mode %d", int(c.HeightMode))
	}
	if !c.LayoutMode.Valid() {
		return NewError(CodeInvalidConfiguration, "unknown layout mode %d", int(c.LayoutMode))
	}
	if c.BarCount <= 0 {
		return NewError(CodeInvalidConfiguration, "bar count must be positive, got %d", c.BarCount)
	}
	if c.MinHeight > c.MaxHeight {
		return NewError(CodeInvalidConfiguration,
			"min height %v exceeds max height %v", c.MinHeight, c.MaxHeight)
	}
	if c.Smoothing <= 0 || c.Smoothing > 1 {
		return NewError(CodeInvalidConfiguration,
			"smoothing factor must be in (0,1], got %v", c.Smoothing)
	}
	return nil
}

// parameters resolves the preset and layers the config's explicit options
// on top, producing the parameter set pushed to the render sink.
func (c Config) parameters() style.Parameters {
	p := style.Resolve(c.Style)
	p.BarCount = c.BarCount
	p.MinHeight = c.MinHeight
	p.MaxHeight = c.MaxHeight
	p.BarWidth = c.BarWidth
	p.Spacing = c.Spacing
	if len(c.ColorStops) > 0 {
		p.ColorStops = collections.Apply(c.ColorStops, func(s string) lipgloss.Color {
			return lipgloss.Color(s)
		})
	}
	return p
}
