package bitflag

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/skybi/bitty/internal/hashmap"
	"golang.org/x/exp/constraints"
)

// Enum is implemented by flag enumeration types.
// Variants returns every variant in declaration order and String returns the name of a variant.
// Every variant has to carry a distinct power of two.
//
// An enumeration may additionally implement KindName() string to choose the name it is known by; the Go type name is
// used otherwise.
type Enum[F any] interface {
	constraints.Unsigned
	Variants() []F
	String() string
}

type kindNamer interface {
	KindName() string
}

// Variant is the kind-erased representation of a single flag
type Variant struct {
	Name  string `json:"name"`
	Value uint64 `json:"value"`
}

// Descriptor is the kind-erased representation of a flag enumeration
type Descriptor struct {
	Name     string    `json:"name"`
	Mask     uint64    `json:"mask"`
	Variants []Variant `json:"variants"`
}

// Kind describes a validated flag enumeration.
// There is exactly one Kind per enumeration type; use KindOf to retrieve it.
type Kind[F Enum[F]] struct {
	name     string
	variants []F
	names    []string
	mask     F
}

var kindCache = hashmap.NewNormal[reflect.Type, any]()

// KindOf returns the Kind of the flag enumeration F.
// It fails with ErrInvalidEnumerationKind if F does not declare a valid set of variants.
func KindOf[F Enum[F]]() (*Kind[F], error) {
	typ := reflect.TypeOf((*F)(nil)).Elem()
	if cached, ok := kindCache.Lookup(typ); ok {
		return cached.(*Kind[F]), nil
	}

	kind, err := buildKind[F](typ)
	if err != nil {
		return nil, err
	}
	kindCache.SetIfAbsent(typ, kind)
	return kindCache.Get(typ).(*Kind[F]), nil
}

func buildKind[F Enum[F]](typ reflect.Type) (*Kind[F], error) {
	var zero F
	name := typ.String()
	if namer, ok := any(zero).(kindNamer); ok {
		name = namer.KindName()
	}
	if name == "" {
		return nil, &KindError{Kind: typ.String(), Reason: "empty kind name"}
	}

	variants := append([]F(nil), zero.Variants()...)
	if len(variants) == 0 {
		return nil, &KindError{Kind: name, Reason: "no variants declared"}
	}

	names := make([]string, len(variants))
	seen := make(map[string]struct{}, len(variants))
	var mask F
	for i, variant := range variants {
		label := variant.String()
		switch {
		case variant == 0:
			return nil, &KindError{Kind: name, Reason: fmt.Sprintf("variant %q has the value 0", label)}
		case variant&(variant-1) != 0:
			return nil, &KindError{Kind: name, Reason: fmt.Sprintf("variant %q (%d) is no power of two", label, uint64(variant))}
		case mask&variant != 0:
			return nil, &KindError{Kind: name, Reason: fmt.Sprintf("variant %q (%d) reuses the value of another variant", label, uint64(variant))}
		case label == "":
			return nil, &KindError{Kind: name, Reason: fmt.Sprintf("variant %d has no name", uint64(variant))}
		}
		if _, ok := seen[label]; ok {
			return nil, &KindError{Kind: name, Reason: fmt.Sprintf("variant name %q is declared twice", label)}
		}
		seen[label] = struct{}{}
		names[i] = label
		mask |= variant
	}

	return &Kind[F]{
		name:     name,
		variants: variants,
		names:    names,
		mask:     mask,
	}, nil
}

// Name returns the name the enumeration is known by
func (kind *Kind[F]) Name() string {
	return kind.name
}

// Variants returns all variants in declaration order
func (kind *Kind[F]) Variants() []F {
	return append([]F(nil), kind.variants...)
}

// Mask returns the bitwise OR of all variants
func (kind *Kind[F]) Mask() F {
	return kind.mask
}

// Contains reports whether flag is a declared variant.
// Combinations of variants are no variants themselves.
func (kind *Kind[F]) Contains(flag F) bool {
	return flag != 0 && flag&(flag-1) == 0 && kind.mask&flag != 0
}

// Lookup returns the variant with the given name
func (kind *Kind[F]) Lookup(name string) (F, bool) {
	for i, candidate := range kind.names {
		if candidate == name {
			return kind.variants[i], true
		}
	}
	return 0, false
}

// Describe returns the kind-erased representation of the enumeration
func (kind *Kind[F]) Describe() Descriptor {
	variants := make([]Variant, len(kind.variants))
	for i, variant := range kind.variants {
		variants[i] = Variant{
			Name:  kind.names[i],
			Value: uint64(variant),
		}
	}
	return Descriptor{
		Name:     kind.name,
		Mask:     uint64(kind.mask),
		Variants: variants,
	}
}

// New returns a new empty container bound to the enumeration
func (kind *Kind[F]) New() *Container[F] {
	return &Container[F]{kind: kind}
}

func (kind *Kind[F]) rejectFlag(flag F) error {
	return &FlagError{Kind: kind.name, Value: strconv.FormatUint(uint64(flag), 10)}
}

func (kind *Kind[F]) rejectName(name string) error {
	return &FlagError{Kind: kind.name, Value: strconv.Quote(name)}
}
