package waveform

import (
	"fmt"
	"strings"

	"github.com/linksound/wavekit/internal/style"
)

// HeightMode selects the algorithm mapping amplitude history to the shape
// of the bar-height distribution.
type HeightMode int

const (
	HeightSymmetric HeightMode = iota
	HeightRandom
	HeightAscending
	HeightDescending
	HeightHighLow
	HeightLowHigh
	HeightUniform
)

var heightModeNames = map[HeightMode]string{
	HeightSymmetric:  "symmetric",
	HeightRandom:     "random",
	HeightAscending:  "ascending",
	HeightDescending: "descending",
	HeightHighLow:    "highlow",
	HeightLowHigh:    "lowhigh",
	HeightUniform:    "uniform",
}

// Valid reports whether m is a known height mode.
func (m HeightMode) Valid() bool {
	_, ok := heightModeNames[m]
	return ok
}

func (m HeightMode) String() string {
	if name, ok := heightModeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("heightmode(%d)", int(m))
}

// HeightModes returns all height modes in declaration order.
func HeightModes() []HeightMode {
	out := make([]HeightMode, 0, len(heightModeNames))
	for m := HeightSymmetric; m <= HeightUniform; m++ {
		out = append(out, m)
	}
	return out
}

// ParseHeightMode resolves a mode name; unknown names are rejected with
// CodeInvalidConfiguration.
func ParseHeightMode(name string) (HeightMode, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for m, n := range heightModeNames {
		if n == want {
			return m, nil
		}
	}
	return HeightSymmetric, NewError(CodeInvalidConfiguration, "unknown height mode %q", name)
}

// LayoutMode selects the spatial arrangement strategy for bars.
type LayoutMode int

const (
	LayoutSymmetric LayoutMode = iota
	LayoutLeftOnly
	LayoutRightOnly
	LayoutHorizontal
	LayoutCircular
)

var layoutModeNames = map[LayoutMode]string{
	LayoutSymmetric:  "symmetric",
	LayoutLeftOnly:   "leftonly",
	LayoutRightOnly:  "rightonly",
	LayoutHorizontal: "horizontal",
	LayoutCircular:   "circular",
}

// Valid reports whether m is a known layout mode.
func (m LayoutMode) Valid() bool {
	_, ok := layoutModeNames[m]
	return ok
}

func (m LayoutMode) String() string {
	if name, ok := layoutModeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("layoutmode(%d)", int(m))
}

// LayoutModes returns all layout modes in declaration order.
func LayoutModes() []LayoutMode {
	out := make([]LayoutMode, 0, len(layoutModeNames))
	for m := LayoutSymmetric; m <= LayoutCircular; m++ {
		out = append(out, m)
	}
	return out
}

// ParseLayoutMode resolves a layout name; unknown names are rejected with
// CodeInvalidConfiguration.
func ParseLayoutMode(name string) (LayoutMode, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for m, n := range layoutModeNames {
		if n == want {
			return m, nil
		}
	}
	return LayoutHorizontal, NewError(CodeInvalidConfiguration, "unknown layout mode %q", name)
}

// ParseStyle resolves a preset name (case-insensitive); unknown names are
// rejected with CodeInvalidConfiguration.
func ParseStyle(name string) (style.Token, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for _, t := range style.Tokens() {
		if t.String() == want {
			return t, nil
		}
	}
	return style.TokenDefault, NewError(CodeInvalidConfiguration, "unknown style %q", name)
}
