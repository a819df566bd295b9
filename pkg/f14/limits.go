package f14

import "math"

// Hardcoded table geometry constants.
//
// These exist primarily to:
//   - keep the probe budget bounded regardless of hash quality
//   - keep capacity arithmetic safely away from overflow boundaries
//
// All limit violations surface as [ErrCapacityExceeded].
const (
	// chunkSize is the number of slots per chunk ("group"), and the unit
	// the control-byte kernels scan. Fixed at 16 so a chunk's control
	// bytes fit in two uint64 words for the SWAR kernel.
	chunkSize = 16

	// growLoadFactor is the fraction of capacity that, once live entries
	// reach it, triggers a grow to double capacity.
	growLoadFactor = 0.7

	// rebuildTombstoneFactor: rebuild triggers when deleted > len/2, i.e.
	// tombstones outnumber half the live set.
	rebuildTombstoneFactor = 2

	// maxCapacity bounds chunk_count*chunkSize so that 2*chunk_count (the
	// probe budget) and chunk_count*chunkSize (the slot count) never
	// overflow a platform uint.
	maxCapacityDivisor = chunkSize * 2
)

// maxCapacity is MAX_CAPACITY = (uint.Max) / (CHUNK_SIZE * 2), computed once.
var maxCapacity = int(uint(math.MaxUint) / maxCapacityDivisor)
