package backend

// Color is a terminal color. Non-negative values index the 256-color
// palette; ColorDefault leaves the terminal's own color in place. True
// colors pack their RGB components behind a marker bit so the zero
// palette entries stay distinguishable.
type Color int32

const colorIsRGB Color = 0x01000000

const (
	ColorDefault Color = -1
	ColorBlack   Color = 0
	ColorRed     Color = 1
	ColorGreen   Color = 2
	ColorYellow  Color = 3
	ColorBlue    Color = 4
	ColorMagenta Color = 5
	ColorCyan    Color = 6
	ColorWhite   Color = 7
)

// ColorRGB packs a true color.
func ColorRGB(r, g, b uint8) Color {
	return Color(int32(r)<<16|int32(g)<<8|int32(b)) | colorIsRGB
}

// IsRGB reports whether c is a true color rather than a palette index.
func (c Color) IsRGB() bool {
	return c&colorIsRGB != 0
}

// RGB unpacks a true color. Palette colors come back as 0, 0, 0.
func (c Color) RGB() (r, g, b uint8) {
	if !c.IsRGB() {
		return 0, 0, 0
	}
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// AttrMask is a bit set of text attributes.
type AttrMask uint32

const (
	AttrBold AttrMask = 1 << iota
	AttrReverse
	AttrUnderline
	AttrDim
)

// Style is what a screen cell looks like: foreground, background, and
// text attributes. The zero value is NOT the default style; use
// DefaultStyle so both colors start as ColorDefault.
type Style struct {
	fg    Color
	bg    Color
	attrs AttrMask
}

// DefaultStyle returns the terminal's own colors with no attributes set.
func DefaultStyle() Style {
	return Style{fg: ColorDefault, bg: ColorDefault}
}

// Foreground returns a copy of s with the foreground color replaced.
func (s Style) Foreground(c Color) Style {
	s.fg = c
	return s
}

// Background returns a copy of s with the background color replaced.
func (s Style) Background(c Color) Style {
	s.bg = c
	return s
}

func (s Style) withAttr(a AttrMask, on bool) Style {
	if on {
		s.attrs |= a
	} else {
		s.attrs &^= a
	}
	return s
}

func (s Style) Bold(on bool) Style      { return s.withAttr(AttrBold, on) }
func (s Style) Reverse(on bool) Style   { return s.withAttr(AttrReverse, on) }
func (s Style) Underline(on bool) Style { return s.withAttr(AttrUnderline, on) }
func (s Style) Dim(on bool) Style       { return s.withAttr(AttrDim, on) }

// FG returns the foreground color.
func (s Style) FG() Color { return s.fg }

// BG returns the background color.
func (s Style) BG() Color { return s.bg }

// Attributes returns the attribute bits.
func (s Style) Attributes() AttrMask { return s.attrs }

// Decompose splits the style into its parts, for backend conversion.
func (s Style) Decompose() (fg, bg Color, attrs AttrMask) {
	return s.fg, s.bg, s.attrs
}
