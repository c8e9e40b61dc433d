package hmap

const (
	// hashSeed is the initial value of every hash.
	hashSeed int64 = 5381

	// hashMultiplier is applied to the running hash before each byte is added.
	hashMultiplier int64 = 37
)

// HashBytes computes the store's rolling hash of data:
// h = 5381, then h = h*37 + c for every byte c. Overflow wraps.
func HashBytes(data []byte) int64 {
	h := hashSeed
	for _, c := range data {
		h = h*hashMultiplier + int64(c)
	}
	return h
}

// HashString is HashBytes over the bytes of s, without converting s.
func HashString(s string) int64 {
	h := hashSeed
	for i := 0; i < len(s); i++ {
		h = h*hashMultiplier + int64(s[i])
	}
	return h
}

// IndexOf maps a hash onto one of capacity buckets.
// The hash is reinterpreted as unsigned so the index is never negative.
func IndexOf(hash int64, capacity int) int {
	return int(uint64(hash) % uint64(capacity))
}
