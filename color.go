package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a text colour: one of the 16 named palette colours, or an
// arbitrary 24-bit RGB value. Colour values are immutable.
type Color interface {
	// IsDefault reports whether this is a named palette colour.
	IsDefault() bool
	// Hex returns the colour as six lowercase hex digits.
	Hex() string
	// Name returns the value used in map projections: the palette
	// name for named colours, "#rrggbb" otherwise.
	Name() string
	// String returns the legacy marker token for palette colours and
	// the "#rrggbb" form for RGB colours.
	String() string
}

// ChatColor is one of the 16 named palette colours.
type ChatColor uint8

const (
	Black ChatColor = iota
	DarkBlue
	DarkGreen
	DarkAqua
	DarkRed
	DarkPurple
	Gold
	Gray
	DarkGray
	Blue
	Green
	Aqua
	Red
	LightPurple
	Yellow
	White
)

// chatColorData carries the projection name, legacy code and canonical
// hex value of each palette colour.
var chatColorData = [...]struct {
	name string
	code byte
	hex  string
}{
	{"black", '0', "000000"},
	{"dark_blue", '1', "0000aa"},
	{"dark_green", '2', "00aa00"},
	{"dark_aqua", '3', "00aaaa"},
	{"dark_red", '4', "aa0000"},
	{"dark_purple", '5', "aa00aa"},
	{"gold", '6', "ffaa00"},
	{"gray", '7', "aaaaaa"},
	{"dark_gray", '8', "555555"},
	{"blue", '9', "5555ff"},
	{"green", 'a', "55ff55"},
	{"aqua", 'b', "55ffff"},
	{"red", 'c', "ff5555"},
	{"light_purple", 'd', "ff55ff"},
	{"yellow", 'e', "ffff55"},
	{"white", 'f', "ffffff"},
}

// IsDefault implements Color.
func (c ChatColor) IsDefault() bool {
	return true
}

// Hex returns the palette colour's canonical hex value.
func (c ChatColor) Hex() string {
	return chatColorData[c].hex
}

// Name returns the palette colour's name, e.g. "dark_red".
func (c ChatColor) Name() string {
	return chatColorData[c].name
}

// String returns the palette colour's legacy marker token.
func (c ChatColor) String() string {
	return string([]byte{legacyMarker, chatColorData[c].code})
}

// HexColor is an arbitrary 24-bit RGB colour.
type HexColor struct {
	R, G, B uint8
}

// RGB returns the colour with the given 8-bit channels.
func RGB(r, g, b uint8) HexColor {
	return HexColor{r, g, b}
}

// FromHex parses a colour from a hex string such as "#1a2b3c" or
// "1a2b3c".
func FromHex(s string) (HexColor, error) {
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return HexColor{}, fmt.Errorf("components: %w", err)
	}
	r, g, b := c.RGB255()
	return HexColor{r, g, b}, nil
}

// IsDefault implements Color.
func (c HexColor) IsDefault() bool {
	return false
}

// Hex returns the colour as six lowercase hex digits.
func (c HexColor) Hex() string {
	return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
}

// Name returns the "#rrggbb" form used in map projections.
func (c HexColor) Name() string {
	return "#" + c.Hex()
}

// String returns the "#rrggbb" form.
func (c HexColor) String() string {
	return c.Name()
}

// Closest returns the named palette colour nearest to c, measured in
// CIE-Lab space. Useful for consumers limited to the legacy palette.
func (c HexColor) Closest() ChatColor {
	target := colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
	best := Black
	bestDist := math.Inf(1)
	for i := range chatColorData {
		candidate, _ := colorful.Hex("#" + chatColorData[i].hex)
		if d := target.DistanceLab(candidate); d < bestDist {
			bestDist = d
			best = ChatColor(i)
		}
	}
	return best
}
