package apikey

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/skybi/bitty/internal/hashmap"
	"github.com/skybi/bitty/internal/secret"
	"golang.org/x/exp/slices"
)

var ErrInvalidToken = errors.New("API key tokens have to be base64 encoded")

var tokenLength = 48

// Key represents an API key used to access the API
type Key struct {
	ID           string        `json:"id"`
	Capabilities *Capabilities `json:"-"`
}

// Keyring holds the API keys accepted by the API.
// Only the hashes of the raw tokens are retained.
type Keyring struct {
	keys *hashmap.NormalMap[[64]byte, *Key]
}

// NewKeyring creates a new empty keyring
func NewKeyring() *Keyring {
	return &Keyring{
		keys: hashmap.NewNormal[[64]byte, *Key](),
	}
}

// LoadKeyring creates a keyring out of raw tokens mapped to their capability lists (see ParseCapabilities)
func LoadKeyring(tokens map[string]string) (*Keyring, error) {
	keyring := NewKeyring()
	for token, rawCapabilities := range tokens {
		capabilities, err := ParseCapabilities(rawCapabilities)
		if err != nil {
			return nil, fmt.Errorf("invalid capabilities of API key: %w", err)
		}
		if _, err := keyring.Add(token, capabilities); err != nil {
			return nil, err
		}
	}
	return keyring, nil
}

// Add adds an API key identified by its raw token
func (keyring *Keyring) Add(token string, capabilities *Capabilities) (*Key, error) {
	hash, err := secret.Hash(token)
	if err != nil {
		return nil, ErrInvalidToken
	}
	key := newKey(hash, capabilities)
	keyring.keys.Set(hash, key)
	return key, nil
}

// Generate adds an API key using a freshly generated token and returns the raw token
func (keyring *Keyring) Generate(capabilities *Capabilities) (*Key, string) {
	token, hash := secret.MustGenerate(tokenLength)
	key := newKey(hash, capabilities)
	keyring.keys.Set(hash, key)
	return key, token
}

// Lookup retrieves the API key of a raw token; nil if the token is unknown
func (keyring *Keyring) Lookup(token string) *Key {
	hash, err := secret.Hash(token)
	if err != nil {
		// A token that is no valid base64 string cannot be known
		return nil
	}
	return keyring.keys.Get(hash)
}

// Size returns the amount of known API keys
func (keyring *Keyring) Size() int {
	return keyring.keys.Size()
}

// IDs returns the IDs of all known API keys in ascending order
func (keyring *Keyring) IDs() []string {
	keys := keyring.keys.Snapshot()
	ids := make([]string, 0, len(keys))
	for _, key := range keys {
		ids = append(ids, key.ID)
	}
	slices.Sort(ids)
	return ids
}

func newKey(hash [64]byte, capabilities *Capabilities) *Key {
	return &Key{
		ID:           hex.EncodeToString(hash[:6]),
		Capabilities: capabilities,
	}
}
