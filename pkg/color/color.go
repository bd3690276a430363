// Package color derives border and highlight variants of category colors.
//
// Colors are "#RRGGBB" strings. [Shade] moves every channel by the same
// absolute amount, round(2.55 × percent), and clamps the result into
// [0, 255]. Because of the clamp, darkening then lightening by the same
// percentage does not always return the original color.
package color

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/careermap/pkg/errors"
)

// Direction selects whether [Shade] adds to or subtracts from each channel.
type Direction int

const (
	ShadeLighten Direction = iota
	ShadeDarken
)

func (d Direction) String() string {
	if d == ShadeDarken {
		return "darken"
	}
	return "lighten"
}

// Shade lightens or darkens hex by percent. percent is expected to be
// non-negative; a negative value reverses the direction.
//
// Returns an INVALID_COLOR error when hex is not a "#RRGGBB" string.
func Shade(hex string, percent float64, dir Direction) (string, error) {
	if err := errors.ValidateHexColor(hex); err != nil {
		return "", err
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidColor, err, "parse %q", hex)
	}

	amt := int(math.Round(2.55 * percent))
	if dir == ShadeDarken {
		amt = -amt
	}

	r, g, b := c.RGB255()
	return toHex(clamp(int(r)+amt), clamp(int(g)+amt), clamp(int(b)+amt)), nil
}

// Darken is Shade(hex, percent, ShadeDarken).
func Darken(hex string, percent float64) (string, error) {
	return Shade(hex, percent, ShadeDarken)
}

// Lighten is Shade(hex, percent, ShadeLighten).
func Lighten(hex string, percent float64) (string, error) {
	return Shade(hex, percent, ShadeLighten)
}

// MustShade is like Shade but panics on malformed input. It is meant for
// package-level tables whose colors are known at compile time.
func MustShade(hex string, percent float64, dir Direction) string {
	s, err := Shade(hex, percent, dir)
	if err != nil {
		panic(err)
	}
	return s
}

func clamp(v int) uint8 {
	switch {
	case v < 1:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v)
	}
}

func toHex(r, g, b uint8) string {
	return colorful.Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
	}.Hex()
}
