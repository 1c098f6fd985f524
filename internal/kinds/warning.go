package kinds

// Warning represents a warning a vehicle may report
type Warning uint8

const (
	WarningLowFuel Warning = 1 << iota
	WarningCheckEngine
	WarningTyrePressure
	WarningBrakes
)

var warningNames = map[Warning]string{
	WarningLowFuel:      "LowFuel",
	WarningCheckEngine:  "CheckEngine",
	WarningTyrePressure: "TyrePressure",
	WarningBrakes:       "Brakes",
}

// KindName returns the name warnings are registered under
func (Warning) KindName() string {
	return "warning"
}

// Variants returns all warnings
func (Warning) Variants() []Warning {
	return []Warning{WarningLowFuel, WarningCheckEngine, WarningTyrePressure, WarningBrakes}
}

func (warning Warning) String() string {
	if name, ok := warningNames[warning]; ok {
		return name
	}
	return "Warning(invalid)"
}
