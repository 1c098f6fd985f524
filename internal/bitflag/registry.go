package bitflag

import (
	"fmt"
	"strings"

	"github.com/skybi/bitty/internal/hashmap"
	"golang.org/x/exp/slices"
)

type registration struct {
	describe func() Descriptor
	factory  func() Dynamic
}

// Registry maps kind names to the flag enumerations they stand for and creates containers for them on request.
// It is safe for concurrent use.
type Registry struct {
	kinds *hashmap.NormalMap[string, registration]
}

// NewRegistry creates a new empty registry
func NewRegistry() *Registry {
	return &Registry{
		kinds: hashmap.NewNormal[string, registration](),
	}
}

// Register makes the flag enumeration F available under its kind name
func Register[F Enum[F]](registry *Registry) error {
	kind, err := KindOf[F]()
	if err != nil {
		return err
	}
	reg := registration{
		describe: kind.Describe,
		factory: func() Dynamic {
			return kind.New().Dynamic()
		},
	}
	if !registry.kinds.SetIfAbsent(kind.Name(), reg) {
		return fmt.Errorf("%w: %s", ErrKindAlreadyRegistered, kind.Name())
	}
	return nil
}

// Make creates a new empty container bound to the enumeration registered under the given name
func (registry *Registry) Make(name string) (Dynamic, error) {
	reg, ok := registry.kinds.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, name)
	}
	return reg.factory(), nil
}

// Describe returns the descriptor of the enumeration registered under the given name
func (registry *Registry) Describe(name string) (Descriptor, bool) {
	reg, ok := registry.kinds.Lookup(name)
	if !ok {
		return Descriptor{}, false
	}
	return reg.describe(), true
}

// Kinds returns the descriptors of all registered enumerations ordered by their names
func (registry *Registry) Kinds() []Descriptor {
	registered := registry.kinds.Snapshot()
	descriptors := make([]Descriptor, 0, len(registered))
	for _, reg := range registered {
		descriptors = append(descriptors, reg.describe())
	}
	slices.SortFunc(descriptors, func(a, b Descriptor) int {
		return strings.Compare(a.Name, b.Name)
	})
	return descriptors
}
