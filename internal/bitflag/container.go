// Package bitflag packs the variants of a flag enumeration into a single integer and provides set operations on it.
package bitflag

import (
	"math/bits"
	"strings"
)

// Container holds a set of flags of the enumeration F packed into a single integer.
// Containers have to be created using New, MustNew, FromValues, FromValue or Kind.New; the zero value is not usable.
// A container is not safe for concurrent mutation.
type Container[F Enum[F]] struct {
	kind *Kind[F]
	bits F
}

// New creates a new empty container bound to the enumeration F
func New[F Enum[F]]() (*Container[F], error) {
	kind, err := KindOf[F]()
	if err != nil {
		return nil, err
	}
	return kind.New(), nil
}

// MustNew works like New but panics if F is no valid flag enumeration
func MustNew[F Enum[F]]() *Container[F] {
	container, err := New[F]()
	if err != nil {
		panic(err)
	}
	return container
}

// FromValues creates a new container with the given flags set
func FromValues[F Enum[F]](values ...F) (*Container[F], error) {
	container, err := New[F]()
	if err != nil {
		return nil, err
	}
	if _, err := container.Set(Flags[F](values)); err != nil {
		return nil, err
	}
	return container, nil
}

// FromValue creates a new container out of a raw bit-field as returned by Value.
// Bits not belonging to any variant are rejected.
func FromValue[F Enum[F]](value F) (*Container[F], error) {
	container, err := New[F]()
	if err != nil {
		return nil, err
	}
	if value&^container.kind.mask != 0 {
		return nil, container.kind.rejectFlag(value)
	}
	container.bits = value
	return container, nil
}

// Kind returns the enumeration the container is bound to
func (container *Container[F]) Kind() *Kind[F] {
	return container.kind
}

// Set sets all flags of the input.
// Nothing is changed if any flag does not belong to the bound enumeration.
func (container *Container[F]) Set(input Input[F]) (*Container[F], error) {
	mask, _, err := container.expand(input)
	if err != nil {
		return container, err
	}
	container.bits |= mask
	return container, nil
}

// Unset unsets all flags of the input.
// Nothing is changed if any flag does not belong to the bound enumeration.
func (container *Container[F]) Unset(input Input[F]) (*Container[F], error) {
	mask, _, err := container.expand(input)
	if err != nil {
		return container, err
	}
	container.bits &^= mask
	return container, nil
}

// SetAll sets every variant of the bound enumeration
func (container *Container[F]) SetAll() *Container[F] {
	container.bits = container.kind.mask
	return container
}

// Clear unsets all flags
func (container *Container[F]) Clear() *Container[F] {
	container.bits = 0
	return container
}

// Value returns the raw bit-field
func (container *Container[F]) Value() F {
	return container.bits
}

// Has reports whether the given flag is set
func (container *Container[F]) Has(flag F) (bool, error) {
	if !container.kind.Contains(flag) {
		return false, container.kind.rejectFlag(flag)
	}
	return container.bits&flag != 0, nil
}

// HasAny reports whether at least one flag of the input is set.
// An empty input never matches.
func (container *Container[F]) HasAny(input Input[F]) (bool, error) {
	mask, n, err := container.expand(input)
	if err != nil || n == 0 {
		return false, err
	}
	return container.bits&mask != 0, nil
}

// HasAll reports whether every flag of the input is set.
// An empty input never matches.
func (container *Container[F]) HasAll(input Input[F]) (bool, error) {
	mask, n, err := container.expand(input)
	if err != nil || n == 0 {
		return false, err
	}
	return container.bits&mask == mask, nil
}

// Choices returns the set flags in the declaration order of the enumeration
func (container *Container[F]) Choices() []F {
	choices := make([]F, 0, container.Len())
	for _, variant := range container.kind.variants {
		if container.bits&variant != 0 {
			choices = append(choices, variant)
		}
	}
	return choices
}

// Len returns the amount of set flags
func (container *Container[F]) Len() int {
	return bits.OnesCount64(uint64(container.bits))
}

// IsEmpty reports whether no flag is set
func (container *Container[F]) IsEmpty() bool {
	return container.bits == 0
}

// Clone returns an independent copy of the container
func (container *Container[F]) Clone() *Container[F] {
	cpy := *container
	return &cpy
}

// Equal reports whether both containers hold the same flags
func (container *Container[F]) Equal(other *Container[F]) bool {
	return other != nil && container.bits == other.bits
}

// String returns the names of the set flags joined by '|'
func (container *Container[F]) String() string {
	if container.bits == 0 {
		return "<empty>"
	}
	names := make([]string, 0, container.Len())
	for i, variant := range container.kind.variants {
		if container.bits&variant != 0 {
			names = append(names, container.kind.names[i])
		}
	}
	return strings.Join(names, "|")
}
