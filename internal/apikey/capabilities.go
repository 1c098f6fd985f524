package apikey

import (
	"fmt"
	"strings"

	"github.com/skybi/bitty/internal/bitflag"
)

// Capability represents a single API key capability
type Capability uint8

const (
	CapabilityReadKinds Capability = 1 << iota
	CapabilityReadFlagSets
	CapabilityWriteFlagSets
)

var capabilityNames = map[Capability]string{
	CapabilityReadKinds:     "read_kinds",
	CapabilityReadFlagSets:  "read_flag_sets",
	CapabilityWriteFlagSets: "write_flag_sets",
}

// KindName returns the name capabilities are known by
func (Capability) KindName() string {
	return "capability"
}

// Variants returns all capabilities
func (Capability) Variants() []Capability {
	return []Capability{CapabilityReadKinds, CapabilityReadFlagSets, CapabilityWriteFlagSets}
}

func (capability Capability) String() string {
	if name, ok := capabilityNames[capability]; ok {
		return name
	}
	return fmt.Sprintf("capability(%d)", uint8(capability))
}

// Capabilities represents the container of capabilities granted to an API key
type Capabilities = bitflag.Container[Capability]

// ParseCapabilities parses capability names separated by '|'.
// A single '*' grants every capability.
func ParseCapabilities(raw string) (*Capabilities, error) {
	capabilities := bitflag.MustNew[Capability]()
	raw = strings.TrimSpace(raw)
	switch raw {
	case "":
		return capabilities, nil
	case "*":
		return capabilities.SetAll(), nil
	}

	names := strings.Split(raw, "|")
	for i, name := range names {
		names[i] = strings.TrimSpace(name)
	}
	if err := capabilities.Dynamic().Set(names...); err != nil {
		return nil, err
	}
	return capabilities, nil
}

// Missing returns the capabilities of required that are not granted by granted
func Missing(granted, required *Capabilities) *Capabilities {
	missing := required.Clone()
	// Both containers are bound to the same enumeration, so this cannot fail
	_, _ = missing.Unset(granted)
	return missing
}
