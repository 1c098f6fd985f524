package hashmap

import "sync"

// NormalMap is a Map guarding a builtin map with a RWMutex
type NormalMap[K comparable, V any] struct {
	mtx        sync.RWMutex
	underlying map[K]V
}

var _ Map[int, any] = (*NormalMap[int, any])(nil)

// NewNormal creates a new empty NormalMap
func NewNormal[K comparable, V any]() *NormalMap[K, V] {
	return &NormalMap[K, V]{
		underlying: make(map[K]V),
	}
}

// Size returns the amount of stored entries
func (obj *NormalMap[K, V]) Size() int {
	obj.mtx.RLock()
	defer obj.mtx.RUnlock()
	return len(obj.underlying)
}

// Has reports whether an entry exists for the given key
func (obj *NormalMap[K, V]) Has(key K) bool {
	_, ok := obj.Lookup(key)
	return ok
}

// Lookup returns the value stored for the given key and whether it exists
func (obj *NormalMap[K, V]) Lookup(key K) (V, bool) {
	obj.mtx.RLock()
	defer obj.mtx.RUnlock()
	val, ok := obj.underlying[key]
	return val, ok
}

// Get returns the value stored for the given key or the zero value of V
func (obj *NormalMap[K, V]) Get(key K) V {
	val, _ := obj.Lookup(key)
	return val
}

// Set stores a value for the given key, replacing any existing one
func (obj *NormalMap[K, V]) Set(key K, value V) {
	obj.mtx.Lock()
	defer obj.mtx.Unlock()
	obj.underlying[key] = value
}

// SetIfAbsent stores a value only if no entry exists for the given key and reports whether it did
func (obj *NormalMap[K, V]) SetIfAbsent(key K, value V) bool {
	obj.mtx.Lock()
	defer obj.mtx.Unlock()
	if _, ok := obj.underlying[key]; ok {
		return false
	}
	obj.underlying[key] = value
	return true
}

// Unset removes the entry of the given key
func (obj *NormalMap[K, V]) Unset(key K) {
	obj.mtx.Lock()
	defer obj.mtx.Unlock()
	delete(obj.underlying, key)
}

// Clear removes all entries
func (obj *NormalMap[K, V]) Clear() {
	obj.mtx.Lock()
	defer obj.mtx.Unlock()
	obj.underlying = make(map[K]V)
}

// Snapshot returns a copy of all entries
func (obj *NormalMap[K, V]) Snapshot() map[K]V {
	obj.mtx.RLock()
	defer obj.mtx.RUnlock()
	cpy := make(map[K]V, len(obj.underlying))
	for key, val := range obj.underlying {
		cpy[key] = val
	}
	return cpy
}

// Manipulate runs action while holding the write lock, allowing direct access to the underlying map.
// The map must not be retained after action returns.
func (obj *NormalMap[K, V]) Manipulate(action func(underlying map[K]V)) {
	obj.mtx.Lock()
	defer obj.mtx.Unlock()
	action(obj.underlying)
}
