package core

// Color is a cell foreground color as a "#rrggbb" hex string.
// The zero value renders with the terminal's default foreground.
type Color string

// Colors used by the HUD and overlays.
const (
	ColorDefault Color = ""
	ColorWhite   Color = "#f8f9fa"
	ColorGray    Color = "#8d99ae"
	ColorAccent  Color = "#4cc9f0"
	ColorWarning Color = "#f72585"
	ColorSuccess Color = "#80ffdb"
)

// IsDefault reports whether c uses the terminal default color.
func (c Color) IsDefault() bool {
	return c == ColorDefault
}
