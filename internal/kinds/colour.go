package kinds

// Colour represents a colour a user may prefer
type Colour uint8

const (
	ColourRed Colour = 1 << iota
	ColourGreen
	ColourBlue
)

var colourNames = map[Colour]string{
	ColourRed:   "Red",
	ColourGreen: "Green",
	ColourBlue:  "Blue",
}

// KindName returns the name colours are registered under
func (Colour) KindName() string {
	return "colour"
}

// Variants returns all colours
func (Colour) Variants() []Colour {
	return []Colour{ColourRed, ColourGreen, ColourBlue}
}

func (colour Colour) String() string {
	if name, ok := colourNames[colour]; ok {
		return name
	}
	return "Colour(invalid)"
}
