// dictionary.go: the Dictionary type and its public operation contract.
// Every lookup starts at the hash index using
// hash & (size-1), walks the perturbed probe sequence, and on a
// non-negative slot dereferences into the entry vector to compare keys.
// Every insertion first appends to the entry vector, then writes the
// resulting position into a free hash index slot. Resize rebuilds the
// hash index from the entry vector.
package dictionary

import (
	"reflect"
)

// Dictionary is an insertion-ordered, open-addressed mapping from keys of
// type K to values of type V. The zero value is not usable; construct one
// with New, NewPresized, or NewFromSlices.
type Dictionary[K comparable, V any] struct {
	entries entryVector[K, V]
	index   hashIndex

	usedCount   int // entries + tombstones
	activeCount int // live entries
	freeCount   int // usable(capacity) - usedCount; resize resets it to usable(capacity) - activeCount

	hasher  Hasher[K]
	valueEq func(a, b V) bool
	logger  Logger
}

func defaultHasher[K comparable]() Hasher[K] {
	var zero K
	switch any(zero).(type) {
	case float64:
		return any(Float64Hasher{}).(Hasher[K])
	case string:
		return any(StringHasher{}).(Hasher[K])
	case int64:
		return any(Int64Hasher{}).(Hasher[K])
	default:
		return nil
	}
}

func defaultValueEqual[V any]() func(a, b V) bool {
	return func(a, b V) bool { return reflect.DeepEqual(a, b) }
}

func resolveConfig[K comparable, V any](opts []Option[K, V]) config[K, V] {
	c := config[K, V]{
		hasher:  defaultHasher[K](),
		valueEq: defaultValueEqual[V](),
		logger:  NoOpLogger{},
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// New creates an empty Dictionary with capacity MINSIZE.
//
// If K is not float64, string, or int64, a Hasher must be supplied via
// WithHasher, or every Hash call will panic with a nil Hasher — this is a
// construction-time programmer error, not a runtime data condition, so it
// is not reported through the error-return taxonomy the other operations use.
func New[K comparable, V any](opts ...Option[K, V]) *Dictionary[K, V] {
	c := resolveConfig(opts)
	d := &Dictionary[K, V]{
		entries:   newEntryVector[K, V](MINSIZE),
		index:     newHashIndex(MINSIZE),
		freeCount: MIN_NUM_ENT,
		hasher:    c.hasher,
		valueEq:   c.valueEq,
		logger:    c.logger,
	}
	return d
}

// NewPresized creates an empty Dictionary whose hash index capacity is the
// smallest power of two >= ceil((3n+1)/2), with its entry vector
// pre-reserving roughly 1.5n slots.
func NewPresized[K comparable, V any](n int, opts ...Option[K, V]) *Dictionary[K, V] {
	c := resolveConfig(opts)
	capacity := actualSize(estimateSize(n))
	d := &Dictionary[K, V]{
		entries:   newEntryVector[K, V](n),
		index:     newHashIndex(capacity),
		freeCount: usable(capacity),
		hasher:    c.hasher,
		valueEq:   c.valueEq,
		logger:    c.logger,
	}
	return d
}

// NewFromSlices creates a presized Dictionary and inserts each
// (keys[i], values[i]) pair in order. If values is nil, every entry is
// created pre-tombstoned (value absent) rather than inserted, since there
// is no value to compare an absent slot against.
func NewFromSlices[K comparable, V any](keys []K, values []V, opts ...Option[K, V]) (*Dictionary[K, V], error) {
	n := len(keys)
	if values != nil && len(values) != n {
		return nil, NewErrInvalidInput("NewFromSlices: len(keys) != len(values)")
	}
	d := NewPresized[K, V](n, opts...)
	if n == 0 {
		return d, nil
	}
	if values == nil {
		for _, k := range keys {
			if err := d.insertTombstoned(k); err != nil {
				return nil, err
			}
		}
		return d, nil
	}
	for i := 0; i < n; i++ {
		if _, err := d.Insert(keys[i], values[i]); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// insertTombstoned appends a pre-tombstoned entry for key without touching
// activeCount, used by NewFromSlices when values is absent.
func (d *Dictionary[K, V]) insertTombstoned(key K) error {
	h := remapSentinel(d.hasher.Hash(key))
	if d.freeCount <= 0 {
		if err := d.growForInsert(); err != nil {
			return err
		}
	}
	var zero V
	pos := d.entries.append(entry[K, V]{hash: h, key: key, value: zero, tombstone: true})
	slot := d.findEmptySlot(h)
	d.index.set(slot, pos)
	d.usedCount++
	d.freeCount--
	return nil
}

// Insert computes hash(key) and inserts (key, value), returning OK for a
// brand-new entry, OKReplaced when an existing key's value was
// overwritten, or OKUnchanged when the identical (key, value) pair was
// already present (see DESIGN.md "sentinel aliasing" for why this is a
// distinct Status rather than reusing an error code).
func (d *Dictionary[K, V]) Insert(key K, value V) (Status, error) {
	h := remapSentinel(d.hasher.Hash(key))
	return d.insertWithHash(h, key, value)
}

func (d *Dictionary[K, V]) insertWithHash(h uint64, key K, value V) (Status, error) {
	pos, found := d.lookup(h, key)
	if !found {
		if d.freeCount <= 0 {
			if err := d.growForInsert(); err != nil {
				return 0, err
			}
		}
		newPos := d.entries.append(entry[K, V]{hash: h, key: key, value: value})
		slot := d.findEmptySlot(h)
		d.index.set(slot, newPos)
		d.usedCount++
		d.freeCount--
		d.activeCount++
		return OK, nil
	}

	existing := d.entries.get(pos)
	if d.valueEq(existing.value, value) {
		return OKUnchanged, nil
	}
	d.entries.setValue(pos, value)
	return OKReplaced, nil
}

// growForInsert triggers a resize when the table has no more free slots.
func (d *Dictionary[K, V]) growForInsert() error {
	target := d.activeCount * 3
	if target < MINSIZE {
		target = MINSIZE
	}
	return d.resize(target)
}

// resize rebuilds the hash index at the smallest power of two >= minsize,
// walking the entry vector in insertion order and re-probing every live
// entry into the fresh index. The entry vector itself is never touched:
// positions never move. An allocation failure building the new index
// (reported by the runtime as a panic, since Go's allocator has no
// error-returning path) is recovered and reported as a structured error
// instead, leaving d's existing index and counts untouched.
func (d *Dictionary[K, V]) resize(minsize int) (err error) {
	newCapacity := actualSize(minsize)
	if newCapacity == d.index.capacity && d.usedCount == 0 {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			cause, ok := r.(error)
			if !ok {
				cause = NewErrConsistencyViolation("resize: allocation panic")
			}
			err = NewErrAllocationFailed(cause, newCapacity)
			d.logger.Error("dictionary: resize failed", "new_capacity", newCapacity, "error", err)
		}
	}()
	d.logger.Warn("dictionary: resizing", "old_capacity", d.index.capacity, "new_capacity", newCapacity, "active_count", d.activeCount)
	d.index = newHashIndex(newCapacity)
	d.buildIndices()
	d.freeCount = usable(d.index.capacity) - d.activeCount
	return nil
}

// buildIndices walks the entry vector in order and, for every
// non-tombstoned entry, probes to the first EMPTY slot and writes the
// entry's position there.
func (d *Dictionary[K, V]) buildIndices() {
	mask := d.index.mask()
	for pos := 0; pos < d.entries.used; pos++ {
		e := d.entries.get(pos)
		if e.tombstone {
			continue
		}
		seq := newProbeSeq(e.hash, mask)
		for d.index.get(seq.i) != emptySlot {
			seq.advance()
		}
		d.index.set(seq.i, pos)
	}
}

// findEmptySlot probes from hash's initial slot until it finds the first
// EMPTY or DUMMY slot; DUMMY slots are reusable for insertion.
func (d *Dictionary[K, V]) findEmptySlot(hash uint64) uint64 {
	seq := newProbeSeq(hash, d.index.mask())
	for {
		if d.index.get(seq.i) < 0 {
			return seq.i
		}
		seq.advance()
	}
}

// lookup walks the probe sequence for (hash, key) and returns the entry
// vector position of a match, or found=false on reaching EMPTY. DUMMY
// slots are skipped (occupied-but-not-matching).
func (d *Dictionary[K, V]) lookup(hash uint64, key K) (pos int, found bool) {
	seq := newProbeSeq(hash, d.index.mask())
	for {
		ix := d.index.get(seq.i)
		if ix == emptySlot {
			return -1, false
		}
		if ix >= 0 {
			e := d.entries.get(ix)
			if e.hash == hash && e.key == key && !e.tombstone {
				return ix, true
			}
		}
		seq.advance()
	}
}

// lookdictIndex re-walks the probe sequence for hash to find the hash
// index slot that stores the given entry vector position exactly —
// because probe collisions mean the position is not necessarily at
// hash & mask.
func (d *Dictionary[K, V]) lookdictIndex(hash uint64, position int) (uint64, bool) {
	seq := newProbeSeq(hash, d.index.mask())
	for {
		ix := d.index.get(seq.i)
		if ix == position {
			return seq.i, true
		}
		if ix == emptySlot {
			return 0, false
		}
		seq.advance()
	}
}

// Get returns the stored value for key, or the zero value and false if
// key is absent. The boolean tells a missing key apart from a stored zero
// value.
func (d *Dictionary[K, V]) Get(key K) (V, bool) {
	h := remapSentinel(d.hasher.Hash(key))
	pos, found := d.lookup(h, key)
	if !found {
		var zero V
		return zero, false
	}
	return d.entries.get(pos).value, true
}

// Item is a (key, value) pair returned from a Dictionary snapshot.
type Item[K comparable, V any] struct {
	Key   K
	Value V
}

// GetItem returns the (key, value) pair for key, or false if absent.
func (d *Dictionary[K, V]) GetItem(key K) (Item[K, V], bool) {
	h := remapSentinel(d.hasher.Hash(key))
	pos, found := d.lookup(h, key)
	if !found {
		return Item[K, V]{}, false
	}
	e := d.entries.get(pos)
	return Item[K, V]{Key: e.key, Value: e.value}, true
}

// Contains reports whether key maps to a live value.
func (d *Dictionary[K, V]) Contains(key K) bool {
	h := remapSentinel(d.hasher.Hash(key))
	_, found := d.lookup(h, key)
	return found
}

// Delete removes key from the dictionary. It writes a DUMMY marker to
// key's hash index slot (the entry vector is not compacted) and tombstones
// the underlying entry. It returns a key-not-found error if key is absent.
func (d *Dictionary[K, V]) Delete(key K) error {
	h := remapSentinel(d.hasher.Hash(key))
	pos, found := d.lookup(h, key)
	if !found {
		return NewErrKeyNotFound(key)
	}
	slot, ok := d.lookdictIndex(h, pos)
	if !ok {
		return NewErrConsistencyViolation("delete: entry position has no corresponding index slot")
	}
	d.index.set(slot, dummySlot)
	d.entries.clearAt(pos)
	d.activeCount--

	if tombstones := d.usedCount - d.activeCount; tombstones > 0 && tombstones%64 == 0 {
		d.logger.Debug("dictionary: tombstones accumulating", "tombstones", tombstones, "active_count", d.activeCount)
	}
	return nil
}

// Len returns the number of live entries.
func (d *Dictionary[K, V]) Len() int { return d.activeCount }

// IsEmpty reports whether Len() == 0.
func (d *Dictionary[K, V]) IsEmpty() bool { return d.activeCount == 0 }

// Clear drops all entries and resets the hash index to EMPTY at MINSIZE
// capacity.
func (d *Dictionary[K, V]) Clear() {
	d.entries.clear()
	d.index = newHashIndex(MINSIZE)
	d.usedCount = 0
	d.activeCount = 0
	d.freeCount = MIN_NUM_ENT
}

// Copy returns a deep copy of the dictionary: entry records are
// duplicated (value handles are shared, not cloned) and the hash index is
// copied slot-for-slot at the same capacity.
func (d *Dictionary[K, V]) Copy() *Dictionary[K, V] {
	nd := &Dictionary[K, V]{
		usedCount:   d.usedCount,
		activeCount: d.activeCount,
		freeCount:   d.freeCount,
		hasher:      d.hasher,
		valueEq:     d.valueEq,
		logger:      d.logger,
	}
	nd.entries.items = make([]entry[K, V], d.entries.used)
	copy(nd.entries.items, d.entries.items[:d.entries.used])
	nd.entries.used = d.entries.used
	nd.index = d.index.clone()
	return nd
}

// Update inserts every live entry of other into d. If override is false,
// keys already present in d are left untouched; if true, they are
// overwritten. Update fails if other mutates during the traversal
// (detected by comparing its active count before and during the walk).
func (d *Dictionary[K, V]) Update(other *Dictionary[K, V], override bool) error {
	if other == nil {
		return NewErrDictionaryNil("Update")
	}
	if other == d || other.usedCount == 0 {
		return nil
	}
	if usable(d.index.capacity) < other.activeCount+d.usedCount {
		if err := d.resize(estimateSize(d.usedCount + other.usedCount)); err != nil {
			return err
		}
	}
	d.entries.grow(d.entries.used + other.activeCount)

	beforeActive := other.activeCount
	for i := 0; i < other.entries.used; i++ {
		e := other.entries.get(i)
		if e.tombstone {
			continue
		}
		if override {
			if _, err := d.insertWithHash(e.hash, e.key, e.value); err != nil {
				return err
			}
		} else if _, found := d.lookup(e.hash, e.key); !found {
			if _, err := d.insertWithHash(e.hash, e.key, e.value); err != nil {
				return err
			}
		}
		if other.activeCount != beforeActive {
			return NewErrConcurrentMutation(beforeActive, other.activeCount)
		}
	}
	return nil
}

// Merge returns copy(a).Update(b, override).
func Merge[K comparable, V any](a, b *Dictionary[K, V], override bool) (*Dictionary[K, V], error) {
	if a == nil {
		return nil, NewErrDictionaryNil("Merge")
	}
	result := a.Copy()
	if err := result.Update(b, override); err != nil {
		return nil, err
	}
	return result, nil
}

// Equal reports whether d and other have equal active counts and every
// live entry of d finds an entry with an equal value in other at the same
// key, using d's value-equality predicate.
func (d *Dictionary[K, V]) Equal(other *Dictionary[K, V]) bool {
	if other == nil {
		return false
	}
	if d.activeCount != other.activeCount {
		return false
	}
	for i := 0; i < d.entries.used; i++ {
		e := d.entries.get(i)
		if e.tombstone {
			continue
		}
		pos, found := other.lookup(e.hash, e.key)
		if !found {
			return false
		}
		if !d.valueEq(e.value, other.entries.get(pos).value) {
			return false
		}
	}
	return true
}
