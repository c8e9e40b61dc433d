// Package hmap implements the engine's keyed store: a fixed-capacity chained
// hash table mapping keys to caller-owned values.
//
// # Overview
//
// Every named engine object (vertex and index buffers, shaders, textures,
// render pipelines, cameras, scenes) is registered by name in a Table and
// looked up by name later. A Table is defined by its key type, its value type
// and its capacity (the number of buckets):
//
//	cameras := hmap.NewString[*Camera](99)
//	cameras.Insert(cam.Name, cam)
//	cam := cameras.Get("main")
//
// # Structure
//
// A Table owns an array of capacity bucket slots. Each slot is the head of a
// chain of entries whose keys hashed to that slot. Entries carry one pointer
// to their predecessor and one to their successor, so removal from any chain
// position is O(1) once the entry is found.
//
// The bucket array does not exist until the first Insert. Read operations on
// a table that was never written report "not found"; Delete on such a table
// is a no-op.
//
// # Keys
//
// How a key is hashed and compared is chosen at compile time by a Hasher:
//
//   - StringHasher, BytesHasher: identity-like keys. The hash covers the
//     referenced bytes and equality is content comparison.
//   - ScalarHasher: fixed-width value keys (integers, floats, bools). The hash
//     covers the value's in-memory bytes and equality is bit-pattern equality.
//
// All hashers use the same byte hash: seed 5381, then h = h*37 + c for every
// byte. It is deterministic and not collision resistant.
//
// # Capacity
//
// Capacity never changes. Load factor is unbounded: inserting more keys than
// buckets only makes chains longer, lookups degrade to O(chain length) but
// stay correct. WithGrowth opts a table into doubling its capacity once a
// load factor is exceeded; tables created without it never resize.
//
// # Ownership
//
// The table owns its bucket array and its entry nodes, and reports both to
// memtrack.Default (or the allocator given by WithAllocator) so leaks show up
// in memtrack.Alert. The table never owns
// values: when V is a pointer, the caller releases the payload before or
// after Remove/Delete. All iterates entries for that purpose.
//
// String keys share the caller's string data; Go strings are immutable, so
// this is always safe. []byte keys are NOT copied: the caller must not mutate
// a slice after using it as a key.
//
// # Errors
//
// Get and Remove treat a missing key as a programming error: they print a
// diagnostic and terminate the process. Lookup and TryRemove are the
// recoverable forms and report absence through their results.
//
// # Thread Safety
//
// Tables are not thread-safe. Callers must synchronize access externally.
package hmap
