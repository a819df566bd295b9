package f14

// All returns an iterator over every live entry, in chunk/slot order
// (an implementation detail, not a guaranteed traversal order). The
// iteration function must not call Insert, Remove, Clear, Rebuild, or any
// method that can grow or migrate the table; doing so invalidates the
// control-byte/slot slices All is walking.
func (t *Table[K, V]) All() func(yield func(K, V) bool) {
	return func(yield func(K, V) bool) {
		for chunkIdx := 0; chunkIdx < t.chunkCount; chunkIdx++ {
			ctrls := t.chunkCtrls(chunkIdx)

			for bit := 0; bit < chunkSize; bit++ {
				if _, ok := ctrlIsFull(ctrls[bit]); !ok {
					continue
				}

				s := t.slots[chunkIdx*chunkSize+bit]
				if !yield(s.key, s.val) {
					return
				}
			}
		}
	}
}

// MutCursor exposes a live entry during a [Table.Mutate] pass, letting the
// callback update the value in place or delete the entry without a second
// probe.
type MutCursor[K comparable, V any] struct {
	table *Table[K, V]
	slot  int
}

// Key returns the entry's key.
func (c *MutCursor[K, V]) Key() K { return c.table.slots[c.slot].key }

// Value returns the entry's current value.
func (c *MutCursor[K, V]) Value() V { return c.table.slots[c.slot].val }

// SetValue overwrites the entry's value in place.
func (c *MutCursor[K, V]) SetValue(v V) { c.table.slots[c.slot].val = v }

// Delete tombstones the entry. Safe to call at most once per cursor.
func (c *MutCursor[K, V]) Delete() {
	t := c.table

	t.slots[c.slot] = slot[K, V]{}
	t.ctrls[c.slot] = ctrlTombstone

	t.length--
	t.deleted++
}

// Mutate iterates every live entry, giving fn exclusive access through a
// MutCursor so it can update or delete entries in place without
// triggering a grow or rebuild mid-pass (a deletion here only tombstones;
// [Rebuild] is the caller's to call afterward if desired). fn must not
// call Insert, Get, Remove, Clear, or Rebuild on the table it was handed.
// Returning false from fn stops the iteration early.
func (t *Table[K, V]) Mutate(fn func(c *MutCursor[K, V]) bool) {
	for chunkIdx := 0; chunkIdx < t.chunkCount; chunkIdx++ {
		ctrls := t.chunkCtrls(chunkIdx)

		for bit := 0; bit < chunkSize; bit++ {
			if _, ok := ctrlIsFull(ctrls[bit]); !ok {
				continue
			}

			slotIdx := chunkIdx*chunkSize + bit
			if !fn(&MutCursor[K, V]{table: t, slot: slotIdx}) {
				return
			}
		}
	}
}

// IntoSeq drains the table, yielding each live entry exactly once and
// removing it as it is yielded. Letting iteration run to completion leaves
// the table empty (same allocated capacity, zero length, zero tombstones).
// Stopping early (the yield function returns false) leaves the
// not-yet-visited entries in place; IntoSeq is meant to consume a table
// once, so callers that stop early should treat the table as invalidated
// rather than rely on its exact remaining contents. Intended for call
// sites that want to move a table's contents into another structure
// without keeping two copies of every value alive at once.
func (t *Table[K, V]) IntoSeq() func(yield func(K, V) bool) {
	return func(yield func(K, V) bool) {
		for chunkIdx := 0; chunkIdx < t.chunkCount; chunkIdx++ {
			ctrls := t.chunkCtrls(chunkIdx)

			for bit := 0; bit < chunkSize; bit++ {
				if _, ok := ctrlIsFull(ctrls[bit]); !ok {
					continue
				}

				slotIdx := chunkIdx*chunkSize + bit
				s := t.slots[slotIdx]

				t.slots[slotIdx] = slot[K, V]{}
				t.ctrls[slotIdx] = ctrlEmpty
				t.length--

				if !yield(s.key, s.val) {
					return
				}
			}
		}

		// Every Full slot is now Empty; clear the remaining tombstones so
		// the control bytes agree with the zeroed deleted count.
		t.kern.fill(t.ctrls, ctrlEmpty)
		t.deleted = 0
	}
}
