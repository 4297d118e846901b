package main

import "github.com/zucenko/folio/model"

func HexToF32(u uint32) GameColor {
	b := float64(0xff&u) / 255
	g := float64(0xff&(u>>8)) / 255
	r := float64(0xff&(u>>16)) / 255
	return GameColor{r, g, b}
}

type GameColor struct {
	r float64
	g float64
	b float64
}

func (c GameColor) RGBA() (r, g, b, a uint32) {
	return uint32(c.r * 0xffff), uint32(c.g * 0xffff), uint32(c.b * 0xffff), 0xffff
}

var (
	COLOR_BACKGROUND = HexToF32(0x262626)
	COLOR_BOARD      = HexToF32(0x111111)
	COLOR_GRID       = HexToF32(0x1c1c1c)
	COLOR_HEAD       = HexToF32(0x7cfc00)
	COLOR_BODY       = HexToF32(0x0abd38)
	COLOR_FOOD       = HexToF32(0xfa3636)
	COLOR_BUTTON     = HexToF32(0x3a3a3a)
	COLOR_CARD       = HexToF32(0x321ecc)
	COLOR_TEXT       = HexToF32(0xffffff)
	COLOR_ACCENT     = HexToF32(0xedbc1e)
)

// segmentColor fades the body towards the tail.
func segmentColor(i, length int) GameColor {
	if i == 0 {
		return COLOR_HEAD
	}
	f := 1 - 0.5*float64(i)/float64(length)
	return GameColor{COLOR_BODY.r * f, COLOR_BODY.g * f, COLOR_BODY.b * f}
}

// phaseChanged reports whether the overlay should animate in.
func phaseChanged(prev, next model.Snapshot) bool {
	return prev.Phase != next.Phase || (next.Phase == model.COUNTDOWN && prev.Countdown != next.Countdown)
}
