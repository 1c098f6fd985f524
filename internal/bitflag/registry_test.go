package bitflag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, Register[Warning](registry))
	require.NoError(t, Register[Shade](registry))

	dyn, err := registry.Make("warning")
	require.NoError(t, err)
	assert.Equal(t, "warning", dyn.KindName())
	assert.Equal(t, uint64(0), dyn.Value())

	require.NoError(t, dyn.Set("LowFuel"))
	fresh, err := registry.Make("warning")
	require.NoError(t, err)
	assert.Equal(t, uint64(0), fresh.Value())

	kinds := registry.Kinds()
	require.Len(t, kinds, 2)
	assert.Equal(t, "shade", kinds[0].Name)
	assert.Equal(t, "warning", kinds[1].Name)

	descriptor, ok := registry.Describe("warning")
	require.True(t, ok)
	assert.Equal(t, uint64(15), descriptor.Mask)
}

func TestRegistryUnknownKind(t *testing.T) {
	registry := NewRegistry()
	_, err := registry.Make("warning")
	assert.ErrorIs(t, err, ErrUnknownKind)

	_, ok := registry.Describe("warning")
	assert.False(t, ok)
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, Register[Warning](registry))
	assert.ErrorIs(t, Register[Warning](registry), ErrKindAlreadyRegistered)
}

func TestRegistryRejectsInvalidKinds(t *testing.T) {
	registry := NewRegistry()
	assert.ErrorIs(t, Register[badValue](registry), ErrInvalidEnumerationKind)
	assert.Empty(t, registry.Kinds())
}
