package separatechaining

import (
	"fmt"
	"github.com/gostonefire/courseindex/course"
	"github.com/gostonefire/courseindex/crt"
	"github.com/gostonefire/courseindex/hashfunc"
	"github.com/gostonefire/courseindex/internal/hash"
	"github.com/gostonefire/courseindex/internal/model"
	"github.com/gostonefire/courseindex/internal/storage"
	"iter"
)

// SCTable - Represents an implementation of the Separate Chaining Collision Resolution Technique.
// Every slot holds an ordered chain of records, a colliding record is appended to the end of the chain of its
// home slot. Chains are never reordered nor deduplicated, and the table is read only once built.
type SCTable struct {
	buckets           [][]*course.Course
	tableSize         int64
	hashAlgorithm     hashfunc.HashAlgorithm
	internalAlgorithm bool
	nRecords          int64
	nCollisions       int64
	nProbeSteps       int64
}

// NewSCTable - Returns a pointer to a new Separate Chaining table populated with the given courses.
//   - crtConf is a model.CRTConf struct providing the table size and an optional hash algorithm
//   - courses are the records to store, in the order they are to be inserted
//
// It returns:
//   - scTable which is a pointer to the created instance, nil if err is not nil
//   - err is of type crt.ConfigError for an unusable configuration, or a standard error if the hash algorithm misbehaves
func NewSCTable(crtConf model.CRTConf, courses []*course.Course) (scTable *SCTable, err error) {
	hashAlgorithm, tableSize, internalAlg, err := storage.ResolveHashAlgorithm(
		crtConf,
		func(tableSize int64) hashfunc.HashAlgorithm { return hash.NewSeparateChainingHashAlgorithm(tableSize) },
	)
	if err != nil {
		return
	}

	table := &SCTable{
		buckets:           make([][]*course.Course, tableSize),
		tableSize:         tableSize,
		hashAlgorithm:     hashAlgorithm,
		internalAlgorithm: internalAlg,
	}

	for i, record := range courses {
		err = table.set(record)
		if err != nil {
			err = fmt.Errorf("error while adding record #%d to chaining table: %w", i, err)
			return
		}
	}

	scTable = table

	return
}

// GetStorageParameters - Returns a struct with storage parameters and build diagnostics from SCTable
func (S *SCTable) GetStorageParameters() (params model.StorageParameters) {
	params = model.StorageParameters{
		CollisionResolutionTechnique: crt.SeparateChaining,
		TableSize:                    S.tableSize,
		Records:                      S.nRecords,
		Collisions:                   S.nCollisions,
		ProbeSteps:                   S.nProbeSteps,
		InternalAlgorithm:            S.internalAlgorithm,
	}

	return
}

// GetBucket - Returns a bucket with its records given the bucket number
//   - bucketNo is the identifier of a bucket, between 0 and table size - 1
//
// It returns:
//   - bucket is a model.Bucket struct containing a copy of the chain of the slot
//   - err is standard error
func (S *SCTable) GetBucket(bucketNo int64) (bucket model.Bucket, err error) {
	if bucketNo < 0 || bucketNo >= S.tableSize {
		err = fmt.Errorf("bucket number %d is outside table of size %d", bucketNo, S.tableSize)
		return
	}

	records := make([]*course.Course, len(S.buckets[bucketNo]))
	_ = copy(records, S.buckets[bucketNo])

	bucket = model.Bucket{Records: records, BucketNo: bucketNo}

	return
}

// Get - Gets the record that corresponds to the given composite key.
// The chain of the home slot is walked front to back, so if duplicates of a key exist the earliest inserted wins.
//   - key is the composite key to look for
//
// It returns:
//   - record is the matching record if found, if not found an error of type crt.NoRecordFound is also returned.
//   - steps is the number of chain entries compared
//   - err is either of type crt.NoRecordFound or a standard error, if something went wrong
func (S *SCTable) Get(key course.Key) (record *course.Course, steps int64, err error) {
	bucketNo, err := S.getBucketNo(key.Number)
	if err != nil {
		return
	}

	for _, r := range S.buckets[bucketNo] {
		steps++
		if r.Matches(key) {
			record = r
			return
		}
	}

	err = crt.NoRecordFound{}

	return
}

// Courses - Returns a sequence over every record in the table, visiting slots in index order and each chain in
// insertion order. The sequence can be ranged over any number of times.
func (S *SCTable) Courses() iter.Seq[*course.Course] {
	return func(yield func(*course.Course) bool) {
		for _, chain := range S.buckets {
			for _, record := range chain {
				if !yield(record) {
					return
				}
			}
		}
	}
}
