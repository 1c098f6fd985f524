package flagset

import (
	"github.com/google/uuid"
)

// FlagSet represents the packed flags of a single subject for one flag enumeration kind
type FlagSet struct {
	ID        uuid.UUID `json:"id"`
	Kind      string    `json:"kind"`
	Subject   string    `json:"subject"`
	Value     uint64    `json:"value"`
	UpdatedAt int64     `json:"updated_at"`
}

// CacheKey returns the key identifying the flag set of a subject
func CacheKey(kind, subject string) string {
	return kind + "/" + subject
}
