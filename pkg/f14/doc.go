// Package f14 provides an in-memory, F14-inspired hash table.
//
// f14 stores key/value pairs in a flat, chunk-partitioned open-addressed
// table. Each chunk ("group") of 16 slots has a parallel 16-byte control
// array; probing scans a chunk's control bytes for a 7-bit tag before ever
// comparing a key, and advances to the next chunk via a double-hashing step
// on miss. This is the same shape of table as Facebook's F14, adapted to
// Go's generics and garbage collector instead of manual memory management.
//
// # Basic Usage
//
//	table := f14.New[string, int]()
//	table.Insert("a", 1)
//	v, ok := table.Get("a")
//
// # Concurrency
//
// A Table is not safe for concurrent use. It is exclusively owned by one
// goroutine at a time; callers needing concurrent access must provide their
// own synchronization.
//
// # Growth
//
// Capacity only grows (via Insert crossing a load-factor threshold); there is
// no automatic shrink. Rebuild reclaims tombstones left behind by Remove
// without changing capacity.
package f14
