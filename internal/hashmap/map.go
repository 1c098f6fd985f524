package hashmap

// Map is the thread safe map abstraction implemented by NormalMap and ExpiringMap
type Map[K comparable, V any] interface {
	// Size returns the amount of stored entries
	Size() int

	// Has reports whether an entry exists for the given key
	Has(key K) bool

	// Lookup returns the value stored for the given key and whether it exists
	Lookup(key K) (V, bool)

	// Get returns the value stored for the given key or the zero value of V
	Get(key K) V

	// Set stores a value for the given key, replacing any existing one
	Set(key K, value V)

	// SetIfAbsent stores a value only if no entry exists for the given key and reports whether it did
	SetIfAbsent(key K, value V) bool

	// Unset removes the entry of the given key
	Unset(key K)

	// Clear removes all entries
	Clear()

	// Snapshot returns a copy of all entries
	Snapshot() map[K]V
}
