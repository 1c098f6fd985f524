package kinds

import (
	"github.com/skybi/bitty/internal/bitflag"
)

// RegisterAll registers every built-in flag enumeration
func RegisterAll(registry *bitflag.Registry) error {
	if err := bitflag.Register[Warning](registry); err != nil {
		return err
	}
	return bitflag.Register[Colour](registry)
}
