package main

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Palette shared with the overlay windows and the picker dots.
var (
	colorBackground = color.NRGBA{R: 0x1a, G: 0x1a, B: 0x2e, A: 0xff}
	colorCard       = color.NRGBA{R: 0x1f, G: 0x29, B: 0x40, A: 0xff}
	colorAccent     = color.NRGBA{R: 0xe9, G: 0x45, B: 0x60, A: 0xff}
	colorAccentDim  = color.NRGBA{R: 0xc2, G: 0x31, B: 0x52, A: 0xff}
	colorSuccess    = color.NRGBA{R: 0x2e, G: 0xcc, B: 0x71, A: 0xff}
	colorTextMuted  = color.NRGBA{R: 0x6c, G: 0x6c, B: 0x80, A: 0xff}
)

// dotPalette colors the numbered markers placed by the location picker and
// the dry-run preview.
var dotPalette = []color.NRGBA{
	{R: 0xe9, G: 0x45, B: 0x60, A: 0xff},
	{R: 0x2e, G: 0xcc, B: 0x71, A: 0xff},
	{R: 0x34, G: 0x98, B: 0xdb, A: 0xff},
	{R: 0xf1, G: 0xc4, B: 0x0f, A: 0xff},
	{R: 0x9b, G: 0x59, B: 0xb6, A: 0xff},
	{R: 0xe6, G: 0x7e, B: 0x22, A: 0xff},
	{R: 0x1a, G: 0xbc, B: 0x9c, A: 0xff},
	{R: 0xe7, G: 0x4c, B: 0x3c, A: 0xff},
	{R: 0x29, G: 0x80, B: 0xb9, A: 0xff},
	{R: 0x27, G: 0xae, B: 0x60, A: 0xff},
	{R: 0xf3, G: 0x9c, B: 0x12, A: 0xff},
	{R: 0x8e, G: 0x44, B: 0xad, A: 0xff},
}

type slickTheme struct {
	base fyne.Theme
}

func newSlickTheme() fyne.Theme {
	return &slickTheme{base: theme.DarkTheme()}
}

func (t *slickTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return colorBackground
	case theme.ColorNameHeaderBackground:
		return color.NRGBA{R: 0x16, G: 0x21, B: 0x3e, A: 0xff}
	case theme.ColorNameButton:
		return color.NRGBA{R: 0x24, G: 0x33, B: 0x52, A: 0xff}
	case theme.ColorNameDisabledButton:
		return color.NRGBA{R: 0x1a, G: 0x25, B: 0x3c, A: 0xff}
	case theme.ColorNameInputBackground:
		return color.NRGBA{R: 0x12, G: 0x19, B: 0x2b, A: 0xff}
	case theme.ColorNameInputBorder, theme.ColorNameSeparator:
		return color.NRGBA{R: 0x2a, G: 0x2a, B: 0x4a, A: 0xff}
	case theme.ColorNamePrimary, theme.ColorNameHyperlink:
		return colorAccent
	case theme.ColorNameFocus:
		return color.NRGBA{R: 0xff, G: 0x6b, B: 0x81, A: 0x66}
	case theme.ColorNameHover:
		return color.NRGBA{R: 0xff, G: 0x6b, B: 0x81, A: 0x22}
	case theme.ColorNamePressed:
		return color.NRGBA{R: 0xff, G: 0x6b, B: 0x81, A: 0x40}
	case theme.ColorNameSelection:
		return color.NRGBA{R: 0x0f, G: 0x34, B: 0x60, A: 0xff}
	case theme.ColorNameForeground:
		return color.NRGBA{R: 0xea, G: 0xea, B: 0xea, A: 0xff}
	case theme.ColorNamePlaceHolder:
		return color.NRGBA{R: 0xa0, G: 0xa0, B: 0xb0, A: 0xff}
	case theme.ColorNameError:
		return color.NRGBA{R: 0xff, G: 0x6b, B: 0x81, A: 0xff}
	case theme.ColorNameWarning:
		return color.NRGBA{R: 0xf3, G: 0x9c, B: 0x12, A: 0xff}
	case theme.ColorNameSuccess:
		return colorSuccess
	}
	return t.base.Color(name, variant)
}

func (t *slickTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

func (t *slickTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

func (t *slickTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 6
	case theme.SizeNameInnerPadding:
		return 8
	case theme.SizeNameInputRadius:
		return 8
	}
	return t.base.Size(name)
}
