package graphics

// Color is one entry of the watch palette
type Color uint8

const (
	ColorClear Color = iota
	ColorBlack
	ColorWhite
	ColorLightGray
	ColorYellow
	ColorGreen
)

var colorHex = map[Color]string{
	ColorBlack:     "#000000",
	ColorWhite:     "#FFFFFF",
	ColorLightGray: "#AAAAAA",
	ColorYellow:    "#FFFF00",
	ColorGreen:     "#00FF00",
}

var colorNames = map[Color]string{
	ColorClear:     "clear",
	ColorBlack:     "black",
	ColorWhite:     "white",
	ColorLightGray: "light-gray",
	ColorYellow:    "yellow",
	ColorGreen:     "green",
}

// Hex returns the colour as #RRGGBB, or "" for ColorClear
func (c Color) Hex() string {
	return colorHex[c]
}

func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return "unknown"
}
