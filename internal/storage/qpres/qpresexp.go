package qpres

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

// QPTable - Represents an implementation of the Quadratic Probing Collision Resolution Technique.
// It uses one array of slots where each slot holds at most one record. In case of a collision, it probes through
// the table using a quadratic algorithm, looking for an empty slot, and assigns the free slot to the record.
// Slots are never cleared, which lets a get stop at the first empty slot in the probe sequence.
type QPTable struct {
	slots             []*course.Course
	tableSize         int64
	hashAlgorithm     hashfunc.HashAlgorithm
	internalAlgorithm bool
	nRecords          int64
	nCollisions       int64
	nProbeSteps       int64
}

// NewQPTable - Returns a pointer to a new Quadratic Probing table populated with the given courses.
// The build either succeeds for every record or fails as a whole.
//   - crtConf is a model.CRTConf struct providing the table size and an optional hash algorithm
//   - courses are the records to store, in the order they are to be inserted
//
// It returns:
//   - qpTable which is a pointer to the created instance, nil if err is not nil
//   - err is of type crt.ConfigError for an unusable configuration, crt.TableFull if a record found no empty slot
//     within table size probes, or crt.ProbingAlgorithm if a custom algorithm probes outside the table
func NewQPTable(crtConf model.CRTConf, courses []*course.Course) (qpTable *QPTable, err error) {
	hashAlgorithm, tableSize, internalAlg, err := storage.ResolveHashAlgorithm(
		crtConf,
		func(tableSize int64) hashfunc.HashAlgorithm { return hash.NewQuadraticProbingHashAlgorithm(tableSize) },
	)
	if err != nil {
		return
	}

	table := &QPTable{
		slots:             make([]*course.Course, tableSize),
		tableSize:         tableSize,
		hashAlgorithm:     hashAlgorithm,
		internalAlgorithm: internalAlg,
	}

	for i, record := range courses {
		err = table.set(record)
		if err != nil {
			err = fmt.Errorf("error while adding record #%d to open addressing table: %w", i, err)
			return
		}
	}

	qpTable = table

	return
}

// GetStorageParameters - Returns a struct with storage parameters and build diagnostics from QPTable
func (Q *QPTable) GetStorageParameters() (params model.StorageParameters) {
	params = model.StorageParameters{
		CollisionResolutionTechnique: crt.QuadraticProbing,
		TableSize:                    Q.tableSize,
		Records:                      Q.nRecords,
		Collisions:                   Q.nCollisions,
		ProbeSteps:                   Q.nProbeSteps,
		InternalAlgorithm:            Q.internalAlgorithm,
	}

	return
}

// GetBucket - Returns a bucket with its record given the bucket number
//   - bucketNo is the identifier of a bucket, between 0 and table size - 1
//
// It returns:
//   - bucket is a model.Bucket struct with zero or one record
//   - err is standard error
func (Q *QPTable) GetBucket(bucketNo int64) (bucket model.Bucket, err error) {
	if bucketNo < 0 || bucketNo >= Q.tableSize {
		err = fmt.Errorf("bucket number %d is outside table of size %d", bucketNo, Q.tableSize)
		return
	}

	bucket = model.Bucket{Records: []*course.Course{}, BucketNo: bucketNo}
	if Q.slots[bucketNo] != nil {
		bucket.Records = append(bucket.Records, Q.slots[bucketNo])
	}

	return
}

// Get - Gets the record that corresponds to the given composite key.
//   - key is the composite key to look for
//
// It returns:
//   - record is the matching record if found, if not found an error of type crt.NoRecordFound is also returned.
//   - steps is the number of slots probed
//   - err is either of type crt.NoRecordFound or crt.ProbingAlgorithm if a custom algorithm misbehaves
func (Q *QPTable) Get(key course.Key) (record *course.Course, steps int64, err error) {
	bucketNo, err := Q.getBucketNo(key.Number)
	if err != nil {
		return
	}

	record, steps, err = Q.quadraticProbingForGet(bucketNo, key)

	return
}

// Courses - Returns a sequence over every record in the table in slot order, skipping empty slots.
// The sequence can be ranged over any number of times.
func (Q *QPTable) Courses() iter.Seq[*course.Course] {
	return func(yield func(*course.Course) bool) {
		for _, record := range Q.slots {
			if record == nil {
				continue
			}
			if !yield(record) {
				return
			}
		}
	}
}
