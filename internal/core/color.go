package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorLeaf
	ColorForest
	ColorLime
	ColorSky
	ColorMint
	ColorSand
	ColorGold
	ColorBlack
	colorCount
)

// palette approximates the xterm rendition of each color.
var palette = [colorCount][3]uint8{
	ColorDefault:       {192, 192, 192},
	ColorRed:           {205, 0, 0},
	ColorGreen:         {0, 205, 0},
	ColorYellow:        {205, 205, 0},
	ColorBlue:          {0, 0, 238},
	ColorMagenta:       {205, 0, 205},
	ColorCyan:          {0, 205, 205},
	ColorWhite:         {229, 229, 229},
	ColorBrightRed:     {255, 0, 0},
	ColorBrightGreen:   {0, 255, 0},
	ColorBrightYellow:  {255, 255, 0},
	ColorBrightBlue:    {92, 92, 255},
	ColorBrightMagenta: {255, 0, 255},
	ColorBrightCyan:    {0, 255, 255},
	ColorBrightWhite:   {255, 255, 255},
	ColorOrange:        {255, 135, 0},
	ColorGray:          {138, 138, 138},
	ColorLeaf:          {95, 175, 0},
	ColorForest:        {95, 135, 0},
	ColorLime:          {175, 215, 95},
	ColorSky:           {135, 215, 215},
	ColorMint:          {215, 255, 215},
	ColorSand:          {215, 215, 175},
	ColorGold:          {255, 215, 0},
	ColorBlack:         {0, 0, 0},
}

// codes are the xterm color numbers of each color.
var codes = [colorCount]string{
	ColorDefault:       "",
	ColorRed:           "1",
	ColorGreen:         "2",
	ColorYellow:        "3",
	ColorBlue:          "4",
	ColorMagenta:       "5",
	ColorCyan:          "6",
	ColorWhite:         "7",
	ColorBrightRed:     "9",
	ColorBrightGreen:   "10",
	ColorBrightYellow:  "11",
	ColorBrightBlue:    "12",
	ColorBrightMagenta: "13",
	ColorBrightCyan:    "14",
	ColorBrightWhite:   "15",
	ColorOrange:        "208",
	ColorGray:          "245",
	ColorLeaf:          "70",
	ColorForest:        "64",
	ColorLime:          "149",
	ColorSky:           "116",
	ColorMint:          "194",
	ColorSand:          "187",
	ColorGold:          "220",
	ColorBlack:         "16",
}

// Code returns the xterm color number, or "" for ColorDefault.
func (c Color) Code() string {
	if c >= colorCount {
		return ""
	}
	return codes[c]
}

// RGB returns the approximate 8-bit components of the color.
func (c Color) RGB() (r, g, b uint8) {
	if c >= colorCount {
		c = ColorDefault
	}
	p := palette[c]
	return p[0], p[1], p[2]
}

// NearestColor maps an 8-bit RGB triple to the closest palette entry.
// ColorDefault is never returned so quantized sprites keep explicit colors.
func NearestColor(r, g, b uint8) Color {
	best := ColorWhite
	bestDist := -1
	for c := ColorRed; c < colorCount; c++ {
		p := palette[c]
		dr := int(r) - int(p[0])
		dg := int(g) - int(p[1])
		db := int(b) - int(p[2])
		d := dr*dr + dg*dg + db*db
		if bestDist < 0 || d < bestDist {
			best = c
			bestDist = d
		}
	}
	return best
}
