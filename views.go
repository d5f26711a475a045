// views.go: read-only snapshots over a Dictionary's contents, in
// insertion order. Since the entry vector is never compacted, a forward
// walk that skips tombstones already yields insertion order.
package dictionary

// Keys returns the live keys in insertion order. The returned slice is
// independent storage; mutating it does not affect d.
func (d *Dictionary[K, V]) Keys() []K {
	keys := make([]K, 0, d.activeCount)
	for i := 0; i < d.entries.used; i++ {
		e := d.entries.get(i)
		if e.tombstone {
			continue
		}
		keys = append(keys, e.key)
	}
	return keys
}

// Values returns the live values in insertion order. The returned slice
// is independent storage; mutating it does not affect d.
func (d *Dictionary[K, V]) Values() []V {
	values := make([]V, 0, d.activeCount)
	for i := 0; i < d.entries.used; i++ {
		e := d.entries.get(i)
		if e.tombstone {
			continue
		}
		values = append(values, e.value)
	}
	return values
}

// Items returns every live (key, value) pair in insertion order.
func (d *Dictionary[K, V]) Items() []Item[K, V] {
	items := make([]Item[K, V], 0, d.activeCount)
	for i := 0; i < d.entries.used; i++ {
		e := d.entries.get(i)
		if e.tombstone {
			continue
		}
		items = append(items, Item[K, V]{Key: e.key, Value: e.value})
	}
	return items
}
