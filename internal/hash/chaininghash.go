package hash

// SeparateChainingHashAlgorithm - The internally used slot selection algorithm for separate chaining.
// It applies slot = courseNumber mod tableSize.
type SeparateChainingHashAlgorithm struct {
	tableSize int64
}

// NewSeparateChainingHashAlgorithm - Returns a pointer to a new SeparateChainingHashAlgorithm instance
func NewSeparateChainingHashAlgorithm(tableSize int64) *SeparateChainingHashAlgorithm {
	ha := &SeparateChainingHashAlgorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
//   - tableSize is the number of slots the table will address
func (S *SeparateChainingHashAlgorithm) SetTableSize(tableSize int64) {
	S.tableSize = tableSize
}

// HashFunc1 - Given a course number it generates an index (slot) between 0 and table size - 1
func (S *SeparateChainingHashAlgorithm) HashFunc1(courseNumber uint32) int64 {
	return Modulo(courseNumber, S.tableSize)
}

// GetTableSize - Returns the table size the implemented hash functions are supporting
func (S *SeparateChainingHashAlgorithm) GetTableSize() int64 {
	return S.tableSize
}

// ProbeIteration - Not used in separate chaining collision resolution techniques, returns a dummy value
func (S *SeparateChainingHashAlgorithm) ProbeIteration(hf1Value, iteration int64) int64 {
	return 0
}

// Modulo - Returns courseNumber mod tableSize. The table size has to be validated to be at least 1 by the caller.
func Modulo(courseNumber uint32, tableSize int64) int64 {
	return int64(courseNumber) % tableSize
}
