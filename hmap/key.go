package hmap

import (
	"bytes"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// KeyKind classifies how a key type is hashed and compared.
type KeyKind uint8

const (
	// KindIdentity keys reference externally owned bytes (strings, byte
	// slices). They hash the referenced bytes and compare by content.
	KindIdentity KeyKind = iota + 1

	// KindScalar keys are self-contained fixed-width values. They hash their
	// own in-memory bytes and compare by bit pattern.
	KindScalar
)

func (k KeyKind) String() string {
	switch k {
	case KindIdentity:
		return "identity"
	case KindScalar:
		return "scalar"
	default:
		return "unknown"
	}
}

// Hasher defines the hash function and the equality relation for keys of
// type K. Equal keys must hash identically.
type Hasher[K any] interface {
	Hash(key K) int64
	Equal(a, b K) bool
	Kind() KeyKind
}

// Scalar is the set of fixed-width key types ScalarHasher accepts.
type Scalar interface {
	constraints.Integer | constraints.Float | ~bool
}

// StringHasher hashes and compares string keys by content.
type StringHasher[K ~string] struct{}

func (StringHasher[K]) Hash(key K) int64  { return HashString(string(key)) }
func (StringHasher[K]) Equal(a, b K) bool { return a == b }
func (StringHasher[K]) Kind() KeyKind     { return KindIdentity }

// BytesHasher hashes and compares []byte keys by content.
// The table keeps the caller's slice; it is not copied.
type BytesHasher struct{}

func (BytesHasher) Hash(key []byte) int64  { return HashBytes(key) }
func (BytesHasher) Equal(a, b []byte) bool { return bytes.Equal(a, b) }
func (BytesHasher) Kind() KeyKind          { return KindIdentity }

// ScalarHasher hashes the raw in-memory bytes of a scalar key and compares
// keys by bit pattern. For floats this means -0.0 and +0.0 are distinct keys
// and a NaN key matches a NaN with the same payload.
type ScalarHasher[K Scalar] struct{}

func (ScalarHasher[K]) Hash(key K) int64 { return HashBytes(scalarBytes(&key)) }

func (ScalarHasher[K]) Equal(a, b K) bool {
	return bytes.Equal(scalarBytes(&a), scalarBytes(&b))
}

func (ScalarHasher[K]) Kind() KeyKind { return KindScalar }

// scalarBytes views the memory of *v. The slice aliases v.
func scalarBytes[K Scalar](v *K) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(v)), unsafe.Sizeof(*v))
}
