package apikey

import (
	"testing"

	"github.com/skybi/bitty/internal/bitflag"
	"github.com/skybi/bitty/internal/secret"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCapabilities(t *testing.T) {
	testCases := []struct {
		raw      string
		expected []Capability
	}{
		{"", []Capability{}},
		{"*", []Capability{CapabilityReadKinds, CapabilityReadFlagSets, CapabilityWriteFlagSets}},
		{"read_flag_sets", []Capability{CapabilityReadFlagSets}},
		{"write_flag_sets | read_kinds", []Capability{CapabilityReadKinds, CapabilityWriteFlagSets}},
	}

	for _, tc := range testCases {
		capabilities, err := ParseCapabilities(tc.raw)
		require.NoError(t, err)
		assert.Equal(t, tc.expected, capabilities.Choices(), "raw %q", tc.raw)
	}
}

func TestParseCapabilitiesUnknown(t *testing.T) {
	_, err := ParseCapabilities("read_kinds|delete_everything")
	assert.ErrorIs(t, err, bitflag.ErrIncompatibleEnumeration)
}

func TestMissing(t *testing.T) {
	granted, err := bitflag.FromValues(CapabilityReadKinds, CapabilityReadFlagSets)
	require.NoError(t, err)
	required, err := bitflag.FromValues(CapabilityReadFlagSets, CapabilityWriteFlagSets)
	require.NoError(t, err)

	missing := Missing(granted, required)
	assert.Equal(t, []Capability{CapabilityWriteFlagSets}, missing.Choices())
	assert.Equal(t, CapabilityReadFlagSets|CapabilityWriteFlagSets, required.Value())
}

func TestKeyring(t *testing.T) {
	token, _ := secret.MustGenerate(16)
	keyring, err := LoadKeyring(map[string]string{
		token: "read_kinds",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, keyring.Size())

	key := keyring.Lookup(token)
	require.NotNil(t, key)
	assert.Len(t, key.ID, 12)
	assert.Equal(t, []Capability{CapabilityReadKinds}, key.Capabilities.Choices())

	assert.Nil(t, keyring.Lookup("unknown"))
	assert.Nil(t, keyring.Lookup("%%%"))

	generated, raw := keyring.Generate(bitflag.MustNew[Capability]().SetAll())
	assert.Same(t, generated, keyring.Lookup(raw))
	assert.Len(t, keyring.IDs(), 2)
}

func TestLoadKeyringInvalid(t *testing.T) {
	_, err := LoadKeyring(map[string]string{"not base64!": "*"})
	assert.ErrorIs(t, err, ErrInvalidToken)

	token, _ := secret.MustGenerate(16)
	_, err = LoadKeyring(map[string]string{token: "fly"})
	assert.ErrorIs(t, err, bitflag.ErrIncompatibleEnumeration)
}
