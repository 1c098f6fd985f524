package bitflag

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidEnumerationKind is returned when a type is used as a flag enumeration but does not declare a valid
	// set of variants
	ErrInvalidEnumerationKind = errors.New("invalid flag enumeration kind")

	// ErrIncompatibleEnumeration is returned when a flag, flag name, raw value or container does not belong to the
	// enumeration a container is bound to
	ErrIncompatibleEnumeration = errors.New("incompatible flag enumeration")

	// ErrUnknownKind is returned by a Registry asked for a kind it does not know
	ErrUnknownKind = errors.New("unknown flag enumeration kind")

	// ErrKindAlreadyRegistered is returned when registering a kind name twice
	ErrKindAlreadyRegistered = errors.New("flag enumeration kind already registered")
)

// KindError describes why a type is no valid flag enumeration.
// It matches ErrInvalidEnumerationKind using errors.Is.
type KindError struct {
	Kind   string
	Reason string
}

func (err *KindError) Error() string {
	return fmt.Sprintf("%s is no valid flag enumeration: %s", err.Kind, err.Reason)
}

func (err *KindError) Unwrap() error {
	return ErrInvalidEnumerationKind
}

// FlagError describes a value that was rejected because it does not belong to the enumeration Kind.
// It matches ErrIncompatibleEnumeration using errors.Is.
type FlagError struct {
	Kind  string
	Value string
}

func (err *FlagError) Error() string {
	return fmt.Sprintf("%s does not belong to the flag enumeration %s", err.Value, err.Kind)
}

func (err *FlagError) Unwrap() error {
	return ErrIncompatibleEnumeration
}
