package hash

import "math/bits"

// QuadraticProbingHashAlgorithm - The internally used slot selection algorithm for quadratic probing.
// The home slot is h0 = courseNumber mod tableSize and iteration i probes (h0 + i*i) mod tableSize.
type QuadraticProbingHashAlgorithm struct {
	tableSize int64
}

// NewQuadraticProbingHashAlgorithm - Returns a pointer to a new QuadraticProbingHashAlgorithm instance
func NewQuadraticProbingHashAlgorithm(tableSize int64) *QuadraticProbingHashAlgorithm {
	ha := &QuadraticProbingHashAlgorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
// Unlike power of two based quadratic probing the size is used as is, which means the probe sequence is not
// guaranteed to be a full permutation of the slots. Callers bound the iterations by the table size.
func (Q *QuadraticProbingHashAlgorithm) SetTableSize(tableSize int64) {
	Q.tableSize = tableSize
}

// HashFunc1 - Given a course number it generates an index (slot) between 0 and table size - 1
func (Q *QuadraticProbingHashAlgorithm) HashFunc1(courseNumber uint32) int64 {
	return Modulo(courseNumber, Q.tableSize)
}

// GetTableSize - Returns the table size the implemented hash functions are supporting
func (Q *QuadraticProbingHashAlgorithm) GetTableSize() int64 {
	return Q.tableSize
}

// ProbeIteration - Implements Quadratic Probing
func (Q *QuadraticProbingHashAlgorithm) ProbeIteration(hf1Value, iteration int64) int64 {
	// Square and add in unsigned 128/64 bit arithmetic so no table size overflows
	size := uint64(Q.tableSize)
	i := uint64(iteration) % size
	hi, lo := bits.Mul64(i, i)
	square := bits.Rem64(hi, lo, size)
	return int64((uint64(hf1Value)%size + square) % size)
}
