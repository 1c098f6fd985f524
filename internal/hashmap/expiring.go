package hashmap

import (
	"sync"
	"time"

	"github.com/skybi/bitty/internal/task"
)

type expiringEntry[V any] struct {
	value    V
	inserted time.Time
}

// ExpiringMap is a Map whose entries expire after a fixed lifetime.
// Expired entries are invisible right away but only released by the cleanup task (see ScheduleCleanupTask).
type ExpiringMap[K comparable, V any] struct {
	normal   *NormalMap[K, expiringEntry[V]]
	lifetime time.Duration
	now      func() time.Time

	cleanupMtx  sync.Mutex
	cleanupTask *task.RepeatingTask
}

var _ Map[int, any] = (*ExpiringMap[int, any])(nil)

// NewExpiring creates a new ExpiringMap whose entries live for the given duration
func NewExpiring[K comparable, V any](lifetime time.Duration) *ExpiringMap[K, V] {
	return &ExpiringMap[K, V]{
		normal:   NewNormal[K, expiringEntry[V]](),
		lifetime: lifetime,
		now:      time.Now,
	}
}

// ScheduleCleanupTask starts releasing expired entries in the given interval.
// StopCleanupTask has to be called once the map is no longer used; the map is not garbage collected before.
func (obj *ExpiringMap[K, V]) ScheduleCleanupTask(interval time.Duration) {
	obj.cleanupMtx.Lock()
	defer obj.cleanupMtx.Unlock()
	if obj.cleanupTask != nil {
		return
	}
	obj.cleanupTask = task.NewRepeating(obj.Cleanup, interval)
	obj.cleanupTask.Start()
}

// StopCleanupTask stops the cleanup task after a final cleanup run
func (obj *ExpiringMap[K, V]) StopCleanupTask() {
	obj.cleanupMtx.Lock()
	defer obj.cleanupMtx.Unlock()
	if obj.cleanupTask == nil {
		return
	}
	obj.cleanupTask.Stop(true)
	obj.cleanupTask = nil
}

// Cleanup releases all expired entries
func (obj *ExpiringMap[K, V]) Cleanup() {
	now := obj.now()
	obj.normal.Manipulate(func(raw map[K]expiringEntry[V]) {
		for key, entry := range raw {
			if obj.expired(entry, now) {
				delete(raw, key)
			}
		}
	})
}

// Size returns the amount of stored entries, including expired ones that were not cleaned up yet
func (obj *ExpiringMap[K, V]) Size() int {
	return obj.normal.Size()
}

// Has reports whether a non-expired entry exists for the given key
func (obj *ExpiringMap[K, V]) Has(key K) bool {
	_, ok := obj.Lookup(key)
	return ok
}

// Lookup returns the value stored for the given key and whether a non-expired entry exists
func (obj *ExpiringMap[K, V]) Lookup(key K) (V, bool) {
	entry, ok := obj.normal.Lookup(key)
	if !ok || obj.expired(entry, obj.now()) {
		var zero V
		return zero, false
	}
	return entry.value, true
}

// Get returns the value stored for the given key or the zero value of V
func (obj *ExpiringMap[K, V]) Get(key K) V {
	val, _ := obj.Lookup(key)
	return val
}

// Set stores a value for the given key and resets its lifetime
func (obj *ExpiringMap[K, V]) Set(key K, value V) {
	obj.normal.Set(key, expiringEntry[V]{
		value:    value,
		inserted: obj.now(),
	})
}

// SetIfAbsent stores a value only if no non-expired entry exists for the given key and reports whether it did
func (obj *ExpiringMap[K, V]) SetIfAbsent(key K, value V) bool {
	now := obj.now()
	stored := false
	obj.normal.Manipulate(func(raw map[K]expiringEntry[V]) {
		if entry, ok := raw[key]; ok && !obj.expired(entry, now) {
			return
		}
		raw[key] = expiringEntry[V]{
			value:    value,
			inserted: now,
		}
		stored = true
	})
	return stored
}

// Unset removes the entry of the given key
func (obj *ExpiringMap[K, V]) Unset(key K) {
	obj.normal.Unset(key)
}

// Clear removes all entries
func (obj *ExpiringMap[K, V]) Clear() {
	obj.normal.Clear()
}

// Snapshot returns a copy of all non-expired entries
func (obj *ExpiringMap[K, V]) Snapshot() map[K]V {
	now := obj.now()
	raw := obj.normal.Snapshot()
	cpy := make(map[K]V, len(raw))
	for key, entry := range raw {
		if !obj.expired(entry, now) {
			cpy[key] = entry.value
		}
	}
	return cpy
}

func (obj *ExpiringMap[K, V]) expired(entry expiringEntry[V], now time.Time) bool {
	return now.Sub(entry.inserted) > obj.lifetime
}
