package lighting

import (
	"errors"
	"fmt"
	gomath "math"
	"strconv"
	"strings"

	"github.com/civicmap/cinematic/pkg/math"
)

// ErrInvalidColor is returned for strings that are not #rgb or #rrggbb.
var ErrInvalidColor = errors.New("invalid hex color")

// Color is an 8-bit RGB color.
type Color struct {
	R, G, B uint8
}

// ParseHex parses "#rrggbb" or "#rgb" (the leading '#' is optional).
func ParseHex(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// Hex formats the color as lower-case "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Lerp blends towards other by factor, clamped to [0,1]. Channels round half
// down so an exact midpoint lands on the lower value.
func (c Color) Lerp(other Color, factor float64) Color {
	f := math.Clamp01(factor)
	return Color{
		R: lerpChannel(c.R, other.R, f),
		G: lerpChannel(c.G, other.G, f),
		B: lerpChannel(c.B, other.B, f),
	}
}

func lerpChannel(a, b uint8, f float64) uint8 {
	v := gomath.Ceil(math.Lerp(float64(a), float64(b), f) - 0.5)
	return uint8(math.Clamp(v, 0, 255))
}

// InterpolateColor blends two hex colors by factor and returns a hex color.
// If either input does not parse, c1 is returned unchanged.
func InterpolateColor(c1, c2 string, factor float64) string {
	a, err := ParseHex(c1)
	if err != nil {
		return c1
	}
	b, err := ParseHex(c2)
	if err != nil {
		return c1
	}
	return a.Lerp(b, factor).Hex()
}
