package model

import (
	"fmt"
	"strconv"
)

// Color represents an RGB color
type Color struct {
	R, G, B uint8
}

// RGB returns a pointer to a new color, convenient for optional font and
// fill colors.
func RGB(r, g, b uint8) *Color {
	return &Color{R: r, G: g, B: b}
}

// Hex returns the color as six upper-case hex digits, e.g. "0969DA".
func (c Color) Hex() string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

// ParseHex parses six hex digits (an optional leading '#' is accepted).
func ParseHex(s string) (Color, error) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return Color{}, fmt.Errorf("invalid color %q: want 6 hex digits", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}
