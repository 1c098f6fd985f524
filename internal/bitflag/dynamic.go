package bitflag

import (
	"strconv"
)

// Dynamic is a kind-erased view on a container.
// It addresses flags by their names and is meant for code that only knows enumerations at runtime (see Registry).
type Dynamic interface {
	// KindName returns the name of the bound enumeration
	KindName() string

	// Descriptor describes the bound enumeration
	Descriptor() Descriptor

	// Value returns the raw bit-field
	Value() uint64

	// Load replaces the bit-field with a raw value as returned by Value
	Load(value uint64) error

	// Choices returns the names of the set flags in declaration order
	Choices() []string

	// Set sets the flags with the given names
	Set(names ...string) error

	// Unset unsets the flags with the given names
	Unset(names ...string) error

	// SetFrom sets all flags set in another container of the same enumeration
	SetFrom(other Dynamic) error

	// UnsetFrom unsets all flags set in another container of the same enumeration
	UnsetFrom(other Dynamic) error

	// SetAll sets every variant of the bound enumeration
	SetAll()

	// Clear unsets all flags
	Clear()

	// Has reports whether the flag with the given name is set
	Has(name string) (bool, error)

	// HasAny reports whether at least one of the named flags is set; an empty list never matches
	HasAny(names ...string) (bool, error)

	// HasAll reports whether all of the named flags are set; an empty list never matches
	HasAll(names ...string) (bool, error)
}

type erased[F Enum[F]] struct {
	container *Container[F]
}

// Dynamic returns a kind-erased view on the container.
// Changes made through the view are reflected in the container and vice versa.
func (container *Container[F]) Dynamic() Dynamic {
	return &erased[F]{container: container}
}

// Typed returns the container behind a Dynamic view if it is bound to the enumeration F
func Typed[F Enum[F]](dyn Dynamic) (*Container[F], bool) {
	cast, ok := dyn.(*erased[F])
	if !ok {
		return nil, false
	}
	return cast.container, true
}

func (dyn *erased[F]) KindName() string {
	return dyn.container.kind.name
}

func (dyn *erased[F]) Descriptor() Descriptor {
	return dyn.container.kind.Describe()
}

func (dyn *erased[F]) Value() uint64 {
	return uint64(dyn.container.bits)
}

func (dyn *erased[F]) Load(value uint64) error {
	bits := F(value)
	if uint64(bits) != value || bits&^dyn.container.kind.mask != 0 {
		return &FlagError{Kind: dyn.KindName(), Value: strconv.FormatUint(value, 10)}
	}
	dyn.container.bits = bits
	return nil
}

func (dyn *erased[F]) Choices() []string {
	choices := dyn.container.Choices()
	names := make([]string, len(choices))
	for i, choice := range choices {
		names[i] = choice.String()
	}
	return names
}

func (dyn *erased[F]) Set(names ...string) error {
	flags, err := dyn.resolve(names)
	if err != nil {
		return err
	}
	_, err = dyn.container.Set(flags)
	return err
}

func (dyn *erased[F]) Unset(names ...string) error {
	flags, err := dyn.resolve(names)
	if err != nil {
		return err
	}
	_, err = dyn.container.Unset(flags)
	return err
}

func (dyn *erased[F]) SetFrom(other Dynamic) error {
	peer, err := dyn.peer(other)
	if err != nil {
		return err
	}
	_, err = dyn.container.Set(peer)
	return err
}

func (dyn *erased[F]) UnsetFrom(other Dynamic) error {
	peer, err := dyn.peer(other)
	if err != nil {
		return err
	}
	_, err = dyn.container.Unset(peer)
	return err
}

func (dyn *erased[F]) SetAll() {
	dyn.container.SetAll()
}

func (dyn *erased[F]) Clear() {
	dyn.container.Clear()
}

func (dyn *erased[F]) Has(name string) (bool, error) {
	flag, ok := dyn.container.kind.Lookup(name)
	if !ok {
		return false, dyn.container.kind.rejectName(name)
	}
	return dyn.container.Has(flag)
}

func (dyn *erased[F]) HasAny(names ...string) (bool, error) {
	flags, err := dyn.resolve(names)
	if err != nil {
		return false, err
	}
	return dyn.container.HasAny(flags)
}

func (dyn *erased[F]) HasAll(names ...string) (bool, error) {
	flags, err := dyn.resolve(names)
	if err != nil {
		return false, err
	}
	return dyn.container.HasAll(flags)
}

func (dyn *erased[F]) resolve(names []string) (Flags[F], error) {
	flags := make(Flags[F], 0, len(names))
	for _, name := range names {
		flag, ok := dyn.container.kind.Lookup(name)
		if !ok {
			return nil, dyn.container.kind.rejectName(name)
		}
		flags = append(flags, flag)
	}
	return flags, nil
}

// peer returns the container behind other if it is bound to the same enumeration; nil views count as empty
func (dyn *erased[F]) peer(other Dynamic) (*Container[F], error) {
	if other == nil {
		return nil, nil
	}
	peer, ok := Typed[F](other)
	if !ok || peer.kind != dyn.container.kind {
		return nil, &FlagError{Kind: dyn.KindName(), Value: "a container of kind " + strconv.Quote(other.KindName())}
	}
	return peer, nil
}
