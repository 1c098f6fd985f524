package secret

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndHash(t *testing.T) {
	encoded, hash := MustGenerate(32)
	require.NotEmpty(t, encoded)

	rehashed, err := Hash(encoded)
	require.NoError(t, err)
	assert.Equal(t, hash, rehashed)

	other, _ := MustGenerate(32)
	assert.NotEqual(t, encoded, other)
}

func TestHashInvalid(t *testing.T) {
	_, err := Hash("not base64!")
	assert.Error(t, err)
}
