package bitflag

import "fmt"

type Warning uint8

const (
	LowFuel Warning = 1 << iota
	CheckEngine
	TyrePressure
	Brakes
)

func (Warning) KindName() string {
	return "warning"
}

func (Warning) Variants() []Warning {
	return []Warning{LowFuel, CheckEngine, TyrePressure, Brakes}
}

func (warning Warning) String() string {
	switch warning {
	case LowFuel:
		return "LowFuel"
	case CheckEngine:
		return "CheckEngine"
	case TyrePressure:
		return "TyrePressure"
	case Brakes:
		return "Brakes"
	}
	return fmt.Sprintf("Warning(%d)", uint8(warning))
}

type Colour uint16

const (
	Red Colour = 1 << iota
	Green
	Blue
)

var colourNames = map[Colour]string{Red: "Red", Green: "Green", Blue: "Blue"}

func (Colour) Variants() []Colour {
	return []Colour{Red, Green, Blue}
}

func (colour Colour) String() string {
	return colourNames[colour]
}

// Shade mirrors Colour but is a distinct enumeration
type Shade uint16

func (Shade) KindName() string {
	return "shade"
}

func (Shade) Variants() []Shade {
	return []Shade{1, 2, 4}
}

func (shade Shade) String() string {
	return colourNames[Colour(shade)]
}

// Priority declares its variants out of numeric order
type Priority uint32

const (
	PriorityLow    Priority = 1
	PriorityMedium Priority = 2
	PriorityHigh   Priority = 4
)

func (Priority) Variants() []Priority {
	return []Priority{PriorityHigh, PriorityLow, PriorityMedium}
}

func (priority Priority) String() string {
	switch priority {
	case PriorityLow:
		return "Low"
	case PriorityMedium:
		return "Medium"
	case PriorityHigh:
		return "High"
	}
	return "?"
}

type badValue uint8

func (badValue) Variants() []badValue { return []badValue{1, 2, 3} }
func (v badValue) String() string     { return fmt.Sprint(uint8(v)) }

type badZero uint8

func (badZero) Variants() []badZero { return []badZero{0, 1} }
func (v badZero) String() string    { return fmt.Sprint(uint8(v)) }

type badDuplicate uint8

func (badDuplicate) Variants() []badDuplicate { return []badDuplicate{1, 2, 2} }
func (v badDuplicate) String() string         { return fmt.Sprint(uint8(v)) }

type badEmpty uint8

func (badEmpty) Variants() []badEmpty { return nil }
func (v badEmpty) String() string     { return fmt.Sprint(uint8(v)) }

type badNames uint8

func (badNames) Variants() []badNames { return []badNames{1, 2} }
func (badNames) String() string       { return "same" }

type badUnnamed uint8

func (badUnnamed) Variants() []badUnnamed { return []badUnnamed{1} }
func (badUnnamed) String() string         { return "" }
