// Package style maps waveform style presets to concrete visual parameters.
//
// Presets are a pure lookup table: every token resolves to a fully populated
// Parameters value, recomputed on demand and never mutated in place.
package style

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Token identifies a named visual preset.
type Token int

const (
	TokenDefault Token = iota
	TokenQQ
	TokenWechat
	TokenWhatsApp
	TokenIOS
	TokenKugou
	TokenQQMusic
	TokenKuwo
	TokenLuoxue
	TokenNetease
	TokenXiami
	TokenAppleMusic
	TokenYouTubeMusic
	TokenSpotify
	TokenNeon
	TokenMinimal
	TokenRetro
	TokenGlassmorphism
)

// Stable preset names, usable as CLI values and API identifiers.
const (
	NameDefault       = "default"
	NameQQ            = "qq"
	NameWechat        = "wechat"
	NameWhatsApp      = "whatsapp"
	NameIOS           = "ios"
	NameKugou         = "kugou"
	NameQQMusic       = "qqmusic"
	NameKuwo          = "kuwo"
	NameLuoxue        = "luoxue"
	NameNetease       = "netease"
	NameXiami         = "xiami"
	NameAppleMusic    = "applemusic"
	NameYouTubeMusic  = "youtubemusic"
	NameSpotify       = "spotify"
	NameNeon          = "neon"
	NameMinimal       = "minimal"
	NameRetro         = "retro"
	NameGlassmorphism = "glassmorphism"
)

// Parameters is the concrete visual parameter set a render sink paints with.
type Parameters struct {
	Name          string           `json:"name"`
	ColorStops    []lipgloss.Color `json:"colorStops"`
	Background    lipgloss.Color   `json:"background"`
	BarWidth      float64          `json:"barWidth"`
	Spacing       float64          `json:"spacing"`
	CornerRadius  float64          `json:"cornerRadius"`
	GlowIntensity float64          `json:"glowIntensity"`
	BarCount      int              `json:"barCount"`
	MinHeight     float64          `json:"minHeight"`
	MaxHeight     float64          `json:"maxHeight"`
}

var names = map[Token]string{
	TokenDefault:       NameDefault,
	TokenQQ:            NameQQ,
	TokenWechat:        NameWechat,
	TokenWhatsApp:      NameWhatsApp,
	TokenIOS:           NameIOS,
	TokenKugou:         NameKugou,
	TokenQQMusic:       NameQQMusic,
	TokenKuwo:          NameKuwo,
	TokenLuoxue:        NameLuoxue,
	TokenNetease:       NameNetease,
	TokenXiami:         NameXiami,
	TokenAppleMusic:    NameAppleMusic,
	TokenYouTubeMusic:  NameYouTubeMusic,
	TokenSpotify:       NameSpotify,
	TokenNeon:          NameNeon,
	TokenMinimal:       NameMinimal,
	TokenRetro:         NameRetro,
	TokenGlassmorphism: NameGlassmorphism,
}

// presets is the full lookup table. Brand presets approximate the color
// language of the app they are named after; abstract presets (neon, minimal,
// retro, glassmorphism) are free-standing.
var presets = map[Token]Parameters{
	TokenDefault: {
		ColorStops:    stops("#5A9CF8", "#7FB5FA", "#A4CDFC"),
		Background:    "#1A1B26",
		BarWidth:      3, Spacing: 2, CornerRadius: 1.5, GlowIntensity: 0,
		BarCount: 32, MinHeight: 0.05, MaxHeight: 1,
	},
	TokenQQ: {
		ColorStops:    stops("#12B7F5", "#3FC6F7", "#7ED8FA"),
		Background:    "#0E1621",
		BarWidth:      3, Spacing: 2, CornerRadius: 1.5, GlowIntensity: 0.1,
		BarCount: 28, MinHeight: 0.06, MaxHeight: 1,
	},
	TokenWechat: {
		ColorStops:    stops("#07C160", "#2FD07E", "#6FE0A6"),
		Background:    "#111A13",
		BarWidth:      3, Spacing: 2, CornerRadius: 1.5, GlowIntensity: 0,
		BarCount: 28, MinHeight: 0.06, MaxHeight: 1,
	},
	TokenWhatsApp: {
		ColorStops:    stops("#25D366", "#4BE083", "#8CEBAF"),
		Background:    "#0B141A",
		BarWidth:      3, Spacing: 3, CornerRadius: 1.5, GlowIntensity: 0,
		BarCount: 30, MinHeight: 0.05, MaxHeight: 1,
	},
	TokenIOS: {
		ColorStops:    stops("#FFFFFF", "#D1D1D6", "#8E8E93"),
		Background:    "#000000",
		BarWidth:      2, Spacing: 3, CornerRadius: 1, GlowIntensity: 0,
		BarCount: 40, MinHeight: 0.04, MaxHeight: 1,
	},
	TokenKugou: {
		ColorStops:    stops("#00A9FF", "#2E8BF7", "#5A6CF0"),
		Background:    "#10131F",
		BarWidth:      4, Spacing: 2, CornerRadius: 2, GlowIntensity: 0.2,
		BarCount: 24, MinHeight: 0.08, MaxHeight: 1,
	},
	TokenQQMusic: {
		ColorStops:    stops("#31C27C", "#53CE93", "#8ADFB6"),
		Background:    "#121A15",
		BarWidth:      3, Spacing: 2, CornerRadius: 1.5, GlowIntensity: 0.1,
		BarCount: 32, MinHeight: 0.05, MaxHeight: 1,
	},
	TokenKuwo: {
		ColorStops:    stops("#FFD500", "#FFC10A", "#FFAD14"),
		Background:    "#1C1708",
		BarWidth:      4, Spacing: 2, CornerRadius: 2, GlowIntensity: 0.15,
		BarCount: 24, MinHeight: 0.08, MaxHeight: 1,
	},
	TokenLuoxue: {
		ColorStops:    stops("#E8F4FF", "#BFE0FF", "#96CCFF"),
		Background:    "#14202E",
		BarWidth:      2, Spacing: 2, CornerRadius: 1, GlowIntensity: 0.3,
		BarCount: 36, MinHeight: 0.04, MaxHeight: 1,
	},
	TokenNetease: {
		ColorStops:    stops("#E60026", "#EE3A55", "#F67485"),
		Background:    "#1D0E11",
		BarWidth:      3, Spacing: 2, CornerRadius: 1.5, GlowIntensity: 0.1,
		BarCount: 32, MinHeight: 0.05, MaxHeight: 1,
	},
	TokenXiami: {
		ColorStops:    stops("#FF8C00", "#FFA333", "#FFBA66"),
		Background:    "#1C130A",
		BarWidth:      3, Spacing: 2, CornerRadius: 1.5, GlowIntensity: 0.1,
		BarCount: 30, MinHeight: 0.05, MaxHeight: 1,
	},
	TokenAppleMusic: {
		ColorStops:    stops("#FA243C", "#FB5568", "#FC8793"),
		Background:    "#161616",
		BarWidth:      3, Spacing: 3, CornerRadius: 1.5, GlowIntensity: 0,
		BarCount: 36, MinHeight: 0.04, MaxHeight: 1,
	},
	TokenYouTubeMusic: {
		ColorStops:    stops("#FF0000", "#FF3B3B", "#FF7676"),
		Background:    "#0F0F0F",
		BarWidth:      4, Spacing: 2, CornerRadius: 0, GlowIntensity: 0,
		BarCount: 28, MinHeight: 0.06, MaxHeight: 1,
	},
	TokenSpotify: {
		ColorStops:    stops("#1DB954", "#3FC86F", "#7BDA9B"),
		Background:    "#121212",
		BarWidth:      4, Spacing: 2, CornerRadius: 2, GlowIntensity: 0,
		BarCount: 24, MinHeight: 0.08, MaxHeight: 1,
	},
	TokenNeon: {
		ColorStops:    stops("#FF00E5", "#B829F8", "#00E5FF"),
		Background:    "#05000A",
		BarWidth:      3, Spacing: 3, CornerRadius: 1.5, GlowIntensity: 0.8,
		BarCount: 32, MinHeight: 0.06, MaxHeight: 1,
	},
	TokenMinimal: {
		ColorStops:    stops("#E0E0E0"),
		Background:    "#FAFAFA",
		BarWidth:      1, Spacing: 4, CornerRadius: 0, GlowIntensity: 0,
		BarCount: 48, MinHeight: 0.02, MaxHeight: 0.8,
	},
	TokenRetro: {
		ColorStops:    stops("#FFB000", "#FF8800", "#CC5500"),
		Background:    "#221100",
		BarWidth:      5, Spacing: 1, CornerRadius: 0, GlowIntensity: 0.4,
		BarCount: 20, MinHeight: 0.1, MaxHeight: 1,
	},
	TokenGlassmorphism: {
		ColorStops:    stops("#FFFFFFCC", "#FFFFFF99", "#FFFFFF66"),
		Background:    "#2B3A67",
		BarWidth:      4, Spacing: 3, CornerRadius: 3, GlowIntensity: 0.25,
		BarCount: 28, MinHeight: 0.06, MaxHeight: 0.9,
	},
}

// Tokens returns all preset tokens in declaration order.
func Tokens() []Token {
	out := make([]Token, 0, len(names))
	for t := TokenDefault; t <= TokenGlassmorphism; t++ {
		out = append(out, t)
	}
	return out
}

// Valid reports whether t names a known preset.
func (t Token) Valid() bool {
	_, ok := names[t]
	return ok
}

// String returns the stable preset name.
func (t Token) String() string {
	if name, ok := names[t]; ok {
		return name
	}
	return fmt.Sprintf("style(%d)", int(t))
}

// Resolve maps a token to its visual parameter set. The returned value is a
// fresh copy; callers may modify it freely.
func Resolve(t Token) Parameters {
	p, ok := presets[t]
	if !ok {
		p = presets[TokenDefault]
	}
	p.Name = names[t]
	if p.Name == "" {
		p.Name = NameDefault
	}
	p.ColorStops = append([]lipgloss.Color(nil), p.ColorStops...)
	return p
}

func stops(colors ...string) []lipgloss.Color {
	out := make([]lipgloss.Color, len(colors))
	for i, c := range colors {
		out[i] = lipgloss.Color(c)
	}
	return out
}
