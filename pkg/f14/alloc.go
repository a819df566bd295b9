package f14

import "unsafe"

// ctrlAlignment is the byte alignment the control array is allocated at.
// A chunk's 16 control bytes fit one cache line's worth of comparisons at
// this alignment and never straddle a cache line boundary, which is the
// property a real vector load kernel would require; the SWAR kernel does
// not strictly need it, but alignment is requested regardless so swapping
// in a future assembly kernel (see golang.org/x/sys/cpu in kernel.go) does
// not also require touching the allocator.
const ctrlAlignment = 64

// allocAlignedBytes returns a slice of exactly n bytes whose first element
// is aligned to ctrlAlignment, by over-allocating and trimming the front,
// the same align-and-round shape as this domain's align8 helper generalized
// from an 8-byte to a ctrlAlignment-byte boundary.
//
// The backing array is ordinary GC-managed memory; there is no matching
// free function because there is nothing to release by hand.
func allocAlignedBytes(n int) []byte {
	buf := make([]byte, n+ctrlAlignment-1)

	base := uintptr(unsafe.Pointer(unsafe.SliceData(buf)))
	offset := (ctrlAlignment - int(base%ctrlAlignment)) % ctrlAlignment

	return buf[offset : offset+n : offset+n]
}
