package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// Theme holds UI styling constants.
type Theme struct {
	PanelBg      rl.Color
	PanelBorder  rl.Color
	TitleColor   rl.Color
	LabelColor   rl.Color
	ValueColor   rl.Color
	BarBg        rl.Color
	BannerBg     rl.Color
	BannerBorder rl.Color
	BannerText   rl.Color
	StatusOK     rl.Color
	StatusIdle   rl.Color
	HintColor    rl.Color

	FontSize       int32
	TitleFontSize  int32
	BannerFontSize int32
}

// DefaultTheme returns the default UI theme.
func DefaultTheme() Theme {
	return Theme{
		PanelBg:        rl.Color{R: 0, G: 0, B: 0, A: 153},
		PanelBorder:    rl.Color{R: 255, G: 255, B: 255, A: 26},
		TitleColor:     rl.White,
		LabelColor:     rl.Color{R: 161, G: 161, B: 170, A: 255},
		ValueColor:     rl.Color{R: 161, G: 161, B: 170, A: 255},
		BarBg:          rl.Color{R: 39, G: 39, B: 42, A: 255},
		BannerBg:       rl.Color{R: 0, G: 0, B: 0, A: 204},
		BannerBorder:   rl.Color{R: 234, G: 179, B: 8, A: 77},
		BannerText:     rl.Color{R: 234, G: 179, B: 8, A: 255},
		StatusOK:       rl.Color{R: 74, G: 222, B: 128, A: 255},
		StatusIdle:     rl.Color{R: 161, G: 161, B: 170, A: 255},
		HintColor:      rl.Gray,
		FontSize:       12,
		TitleFontSize:  20,
		BannerFontSize: 18,
	}
}
