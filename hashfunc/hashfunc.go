package hashfunc

// HashAlgorithm - Interface that permits a user of the CourseIndex to supply a custom slot
// selection algorithm suited for its particular distribution of course numbers.
type HashAlgorithm interface {
	// SetTableSize - Sets the table size for the hash algorithm.
	// It is called when a table is built, hence if a custom hash algorithm is supplied that already has a table size
	// it will be overwritten by the size given in the index configuration.
	//   - tableSize is the number of slots the table will address
	SetTableSize(tableSize int64)

	// HashFunc1 - Given a course number it generates an index (slot) between 0 and table size - 1
	// Any number returned outside the table size (0 -> table size - 1) will result in an error down stream.
	HashFunc1(courseNumber uint32) int64

	// GetTableSize - Returns the table size the implemented hash functions are supporting.
	// The table allocates exactly this number of slots.
	GetTableSize() int64

	// ProbeIteration - Returns the slot to visit in a given probe iteration, given the value from HashFunc1.
	// Iteration 0 must return hf1Value itself. The table bounds the number of iterations by the table size,
	// so an algorithm is not required to visit every slot.
	// The function is not used for the Separate Chaining Collision Resolution Technique.
	ProbeIteration(hf1Value, iteration int64) int64
}
