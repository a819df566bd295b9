package f14

import "errors"

// Sentinel errors returned by Table operations.
//
// Callers should use [errors.Is] to check error types:
//
//	_, err := f14.NewWithCapacity[string, int](n)
//	if errors.Is(err, f14.ErrCapacityExceeded) {
//	    // choose a smaller capacity
//	}
var (
	// ErrCapacityExceeded indicates a requested capacity was too large,
	// an allocation failed, or layout arithmetic would overflow.
	//
	// Recovery: request a smaller capacity.
	ErrCapacityExceeded = errors.New("f14: capacity exceeded")

	// ErrUnsupportedSimd is reserved for a kernel that has no usable
	// fallback. The kernels this package ships always have a scalar
	// fallback, so this should not occur in practice.
	ErrUnsupportedSimd = errors.New("f14: unsupported simd kernel")

	// ErrConcurrentModification is reserved for implementations that add
	// runtime concurrent-access checks. This package does no internal
	// locking and does not emit it today.
	ErrConcurrentModification = errors.New("f14: concurrent modification")

	// ErrInvalidSlotState indicates an internal consistency violation was
	// discovered during a mutation (e.g. a corrupted control byte). This
	// should be unreachable in a correct build of this package.
	ErrInvalidSlotState = errors.New("f14: invalid slot state")
)
