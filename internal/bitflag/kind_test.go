package bitflag

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	kind, err := KindOf[Warning]()
	require.NoError(t, err)

	assert.Equal(t, "warning", kind.Name())
	assert.Equal(t, []Warning{LowFuel, CheckEngine, TyrePressure, Brakes}, kind.Variants())
	assert.Equal(t, Warning(15), kind.Mask())

	again, err := KindOf[Warning]()
	require.NoError(t, err)
	assert.Same(t, kind, again)
}

func TestKindOfDefaultName(t *testing.T) {
	kind, err := KindOf[Colour]()
	require.NoError(t, err)
	assert.Equal(t, "bitflag.Colour", kind.Name())
}

func TestKindVariantsIsCopy(t *testing.T) {
	kind, err := KindOf[Warning]()
	require.NoError(t, err)

	variants := kind.Variants()
	variants[0] = Brakes
	assert.Equal(t, LowFuel, kind.Variants()[0])
}

func TestKindContains(t *testing.T) {
	kind, err := KindOf[Warning]()
	require.NoError(t, err)

	testCases := []struct {
		flag     Warning
		expected bool
	}{
		{LowFuel, true},
		{Brakes, true},
		{0, false},
		{3, false},
		{16, false},
		{255, false},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, kind.Contains(tc.flag), "flag %d", uint8(tc.flag))
	}
}

func TestKindLookup(t *testing.T) {
	kind, err := KindOf[Warning]()
	require.NoError(t, err)

	flag, ok := kind.Lookup("TyrePressure")
	require.True(t, ok)
	assert.Equal(t, TyrePressure, flag)

	_, ok = kind.Lookup("tyrepressure")
	assert.False(t, ok)
}

func TestKindDescribe(t *testing.T) {
	kind, err := KindOf[Priority]()
	require.NoError(t, err)

	assert.Equal(t, Descriptor{
		Name: "bitflag.Priority",
		Mask: 7,
		Variants: []Variant{
			{Name: "High", Value: 4},
			{Name: "Low", Value: 1},
			{Name: "Medium", Value: 2},
		},
	}, kind.Describe())
}

func TestKindOfInvalid(t *testing.T) {
	testCases := []struct {
		name  string
		build func() error
	}{
		{"non power of two", func() error { _, err := KindOf[badValue](); return err }},
		{"zero value", func() error { _, err := KindOf[badZero](); return err }},
		{"duplicate value", func() error { _, err := KindOf[badDuplicate](); return err }},
		{"no variants", func() error { _, err := KindOf[badEmpty](); return err }},
		{"duplicate names", func() error { _, err := KindOf[badNames](); return err }},
		{"unnamed variant", func() error { _, err := KindOf[badUnnamed](); return err }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.build()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidEnumerationKind))

			var kindErr *KindError
			require.True(t, errors.As(err, &kindErr))
			assert.NotEmpty(t, kindErr.Reason)
		})
	}
}
