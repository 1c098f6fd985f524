package kinds

import (
	"testing"

	"github.com/skybi/bitty/internal/bitflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAll(t *testing.T) {
	registry := bitflag.NewRegistry()
	require.NoError(t, RegisterAll(registry))

	kinds := registry.Kinds()
	require.Len(t, kinds, 2)
	assert.Equal(t, "colour", kinds[0].Name)
	assert.Equal(t, "warning", kinds[1].Name)

	assert.ErrorIs(t, RegisterAll(registry), bitflag.ErrKindAlreadyRegistered)
}

func TestWarningContainer(t *testing.T) {
	container, err := bitflag.New[Warning]()
	require.NoError(t, err)

	_, err = container.Set(bitflag.One(WarningLowFuel))
	require.NoError(t, err)
	_, err = container.Set(bitflag.One(WarningCheckEngine))
	require.NoError(t, err)
	assert.Equal(t, Warning(3), container.Value())

	_, err = container.Unset(bitflag.One(WarningLowFuel))
	require.NoError(t, err)
	assert.Equal(t, Warning(2), container.Value())

	container, err = bitflag.FromValues(WarningLowFuel, WarningCheckEngine, WarningTyrePressure)
	require.NoError(t, err)
	assert.Equal(t, Warning(7), container.Value())
	assert.Equal(t, "LowFuel|CheckEngine|TyrePressure", container.String())
}

func TestWarningQueries(t *testing.T) {
	container, err := bitflag.FromValues(WarningLowFuel, WarningCheckEngine)
	require.NoError(t, err)

	matched, err := container.HasAny(bitflag.Of(WarningLowFuel, WarningCheckEngine))
	require.NoError(t, err)
	assert.True(t, matched)

	matched, err = container.HasAll(bitflag.Of(WarningCheckEngine, WarningTyrePressure))
	require.NoError(t, err)
	assert.False(t, matched)
}

func TestColourSetAll(t *testing.T) {
	container := bitflag.MustNew[Colour]().SetAll()
	assert.Equal(t, Colour(7), container.Value())
	assert.Equal(t, []Colour{ColourRed, ColourGreen, ColourBlue}, container.Choices())
}

func TestStringOfInvalidValue(t *testing.T) {
	assert.Equal(t, "Warning(invalid)", Warning(3).String())
	assert.Equal(t, "Colour(invalid)", Colour(8).String())
}
