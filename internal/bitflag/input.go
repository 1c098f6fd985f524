package bitflag

// Input is a set of flags accepted by Set, Unset, HasAny and HasAll.
// It is either a single flag (One), a sequence of flags (Flags or Of) or another container of the same enumeration.
type Input[F Enum[F]] interface {
	flags() []F
}

type single[F Enum[F]] struct {
	flag F
}

// One wraps a single flag as an Input
func One[F Enum[F]](flag F) Input[F] {
	return single[F]{flag: flag}
}

func (in single[F]) flags() []F {
	return []F{in.flag}
}

// Flags is a sequence of flags usable as an Input
type Flags[F Enum[F]] []F

// Of wraps any number of flags as an Input
func Of[F Enum[F]](flags ...F) Flags[F] {
	return flags
}

func (in Flags[F]) flags() []F {
	return in
}

// flags expands a container input into the flags currently set in it; a nil container is empty
func (container *Container[F]) flags() []F {
	if container == nil {
		return nil
	}
	return container.Choices()
}

// expand validates every flag of the input against the bound enumeration and returns their combined bits along with
// the number of flags the input referenced
func (container *Container[F]) expand(input Input[F]) (F, int, error) {
	if input == nil {
		return 0, 0, nil
	}
	flags := input.flags()
	var mask F
	for _, flag := range flags {
		if !container.kind.Contains(flag) {
			return 0, 0, container.kind.rejectFlag(flag)
		}
		mask |= flag
	}
	return mask, len(flags), nil
}
