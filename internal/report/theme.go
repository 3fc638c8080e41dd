package report

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
)

// ErrInvalidColor is returned by ParseRGB for anything but "#rrggbb".
var ErrInvalidColor = errors.New("invalid color: want #rrggbb")

// RGB is a 24-bit terminal color.
type RGB struct {
	R, G, B int
}

// ParseRGB parses a "#rrggbb" hex color.
func ParseRGB(s string) (RGB, error) {
	if len(s) != 7 || s[0] != '#' {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return RGB{R: int(v >> 16 & 0xff), G: int(v >> 8 & 0xff), B: int(v & 0xff)}, nil
}

// hex returns c as "#rrggbb".
func (c RGB) hex() lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}

// Theme is the palette used by StyledFormatter.
type Theme struct {
	Error   RGB
	Warning RGB
	Info    RGB
	Success RGB
	Context RGB
}

// GruvboxTheme returns the default palette.
func GruvboxTheme() Theme {
	return Theme{
		Error:   RGB{0xfb, 0x49, 0x34},
		Warning: RGB{0xfa, 0xbd, 0x2f},
		Info:    RGB{0x83, 0xa5, 0x98},
		Success: RGB{0xb8, 0xbb, 0x26},
		Context: RGB{0x92, 0x83, 0x74},
	}
}

// styles holds the resolved marker colors and panel border colors for a Theme.
type styles struct {
	errorMarker   *color.Color
	warningMarker *color.Color
	infoMarker    *color.Color
	otherMarker   *color.Color
	message       *color.Color
	context       *color.Color

	errorBorder   lipgloss.Color
	warningBorder lipgloss.Color
	infoBorder    lipgloss.Color
	successBorder lipgloss.Color
}

// newStyles resolves a Theme. Every marker color is forced on; fatih/color
// would otherwise drop styling whenever stdout is not a terminal.
func newStyles(t Theme) styles {
	return styles{
		errorMarker:   forced(rgb(t.Error).Add(color.Bold)),
		warningMarker: forced(rgb(t.Warning).Add(color.Bold)),
		infoMarker:    forced(rgb(t.Info).Add(color.Bold)),
		otherMarker:   forced(color.New(color.Bold)),
		message:       forced(color.New(color.Bold)),
		context:       forced(rgb(t.Context).Add(color.Faint)),
		errorBorder:   t.Error.hex(),
		warningBorder: t.Warning.hex(),
		infoBorder:    t.Info.hex(),
		successBorder: t.Success.hex(),
	}
}

func rgb(c RGB) *color.Color {
	return color.RGB(c.R, c.G, c.B)
}

func forced(c *color.Color) *color.Color {
	c.EnableColor()
	return c
}
