package styles

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ParseColor turns a color string from the style configuration into an RGBA
// value. Supported forms are #RGB, #RRGGBB and the CSS named colors.
func ParseColor(value string) (color.RGBA, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return color.RGBA{}, &Error{Message: "color value must be a non-empty string"}
	}

	if strings.HasPrefix(trimmed, "#") {
		return parseHexColor(trimmed)
	}

	if named, ok := colornames.Map[strings.ToLower(trimmed)]; ok {
		return named, nil
	}
	return color.RGBA{}, &Error{Message: fmt.Sprintf("invalid color: %q", value)}
}

func parseHexColor(value string) (color.RGBA, error) {
	hex := value[1:]
	switch len(hex) {
	case 3:
		expanded := make([]byte, 6)
		for i := 0; i < 3; i++ {
			expanded[2*i] = hex[i]
			expanded[2*i+1] = hex[i]
		}
		hex = string(expanded)
	case 6:
	default:
		return color.RGBA{}, &Error{Message: fmt.Sprintf("invalid color: %q", value)}
	}

	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, &Error{Message: fmt.Sprintf("invalid color: %q", value), Cause: err}
	}
	return color.RGBA{
		R: uint8(n >> 16),
		G: uint8(n >> 8),
		B: uint8(n),
		A: 0xff,
	}, nil
}

// CSSColor renders an RGBA value as a CSS hex literal.
func CSSColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
