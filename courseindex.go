package courseindex

import (
	"fmt"
	"github.com/dgraph-io/ristretto/v2"
	"github.com/gostonefire/courseindex/course"
	"github.com/gostonefire/courseindex/crt"
	"github.com/gostonefire/courseindex/hashfunc"
	"github.com/gostonefire/courseindex/internal/model"
	"github.com/gostonefire/courseindex/internal/professors"
	"github.com/gostonefire/courseindex/internal/storage/qpres"
	"github.com/gostonefire/courseindex/internal/storage/separatechaining"
	"iter"
)

// IndexManagement - Interface for any hash table implementation backing the CourseIndex
type IndexManagement interface {
	Get(key course.Key) (record *course.Course, steps int64, err error)
	GetBucket(bucketNo int64) (bucket model.Bucket, err error)
	GetStorageParameters() (params model.StorageParameters)
	Courses() iter.Seq[*course.Course]
}

// IndexConf - Configuration for a new CourseIndex
//   - TableSize is the number of slots in both hash tables, it must be at least 1
//   - ChainingHashAlgorithm is an optional custom hash algorithm for the separate chaining table
//   - QuadraticHashAlgorithm is an optional custom hash algorithm for the quadratic probing table
//   - CacheSize is the number of professor profiles to keep in the lookup cache, 0 disables the cache
type IndexConf struct {
	TableSize              int64
	ChainingHashAlgorithm  hashfunc.HashAlgorithm
	QuadraticHashAlgorithm hashfunc.HashAlgorithm
	CacheSize              int64
}

// IndexInfo - Information about the indexes built
//   - TableSize is the number of slots in each hash table
//   - Records is the number of course records indexed
//   - ChainingCollisions is the number of records that landed in a non-empty chaining bucket
//   - ProbingCollisions is the number of records that could not be placed in their home slot
//   - Professors is the number of distinct professors in the professor tree
//   - ProfessorTreeDepth is the number of levels in the professor tree
type IndexInfo struct {
	TableSize          int64
	Records            int64
	ChainingCollisions int64
	ProbingCollisions  int64
	Professors         int
	ProfessorTreeDepth int
}

// IndexStat - Statistics on the usage and distribution over buckets for one collision resolution technique
//   - Technique is either crt.SeparateChaining or crt.QuadraticProbing
//   - Records is the total number of records stored
//   - Collisions and ProbeSteps are the diagnostics counted while the table was built
//   - UsedBuckets is the number of buckets holding at least one record
//   - LongestBucket is the highest number of records in any single bucket
//   - LoadFactor is Records divided by the table size
//   - BucketDistribution is the number of records stored in each bucket
//   - InternalAlgorithm is true if the default hash algorithm is used
type IndexStat struct {
	Technique          int
	Records            int64
	Collisions         int64
	ProbeSteps         int64
	UsedBuckets        int64
	LongestBucket      int64
	LoadFactor         float64
	BucketDistribution []int64
	InternalAlgorithm  bool
}

// CourseIndex - The main implementation struct, holding both hash tables and the professor tree built from
// the same set of course records. It is immutable once returned from NewCourseIndex.
type CourseIndex struct {
	chaining   IndexManagement
	probing    IndexManagement
	professors *professors.Tree
	cache      *ristretto.Cache[string, course.Professor]
}

// NewCourseIndex - Builds all indexes from the given courses. Either every index is built or none is.
//   - courses are the course records to index, each record is shared by all indexes
//   - indexConf is an IndexConf struct holding table size and optional custom hash algorithms
//
// It returns:
//   - courseIndex is a pointer to a CourseIndex, nil if anything failed
//   - indexInfo is an IndexInfo struct with data about the indexes built
//   - err is either of type crt.ConfigError, crt.TableFull, crt.ProbingAlgorithm, crt.InvariantViolation or a standard error
func NewCourseIndex(courses []*course.Course, indexConf IndexConf) (courseIndex *CourseIndex, indexInfo IndexInfo, err error) {
	if indexConf.CacheSize < 0 {
		err = crt.NewConfigError("cache size can not be negative")
		return
	}

	scTable, err := separatechaining.NewSCTable(
		model.CRTConf{TableSize: indexConf.TableSize, HashAlgorithm: indexConf.ChainingHashAlgorithm},
		courses,
	)
	if err != nil {
		err = fmt.Errorf("error while building separate chaining table: %w", err)
		return
	}

	qpTable, err := qpres.NewQPTable(
		model.CRTConf{TableSize: indexConf.TableSize, HashAlgorithm: indexConf.QuadraticHashAlgorithm},
		courses,
	)
	if err != nil {
		err = fmt.Errorf("error while building quadratic probing table: %w", err)
		return
	}

	tree, err := professors.BuildTree(courses)
	if err != nil {
		err = fmt.Errorf("error while building professor tree: %w", err)
		return
	}

	var cache *ristretto.Cache[string, course.Professor]
	if indexConf.CacheSize > 0 {
		cache, err = ristretto.NewCache(&ristretto.Config[string, course.Professor]{
			NumCounters:        indexConf.CacheSize * 10,
			MaxCost:            indexConf.CacheSize,
			BufferItems:        64,
			IgnoreInternalCost: true,
		})
		if err != nil {
			err = fmt.Errorf("error while creating professor cache: %w", err)
			return
		}
	}

	courseIndex = &CourseIndex{
		chaining:   scTable,
		probing:    qpTable,
		professors: tree,
		cache:      cache,
	}

	scParams := scTable.GetStorageParameters()
	qpParams := qpTable.GetStorageParameters()

	indexInfo = IndexInfo{
		TableSize:          scParams.TableSize,
		Records:            scParams.Records,
		ChainingCollisions: scParams.Collisions,
		ProbingCollisions:  qpParams.Collisions,
		Professors:         tree.Len(),
		ProfessorTreeDepth: tree.Depth(),
	}

	return
}

// Close - Releases the professor cache. Lookups still work after Close but are no longer cached,
// and calling Close more than once is harmless.
func (C *CourseIndex) Close() {
	if C.cache != nil {
		C.cache.Close()
	}
}

// index - Returns the table implementing the given collision resolution technique
func (C *CourseIndex) index(technique int) (im IndexManagement, err error) {
	switch technique {
	case crt.SeparateChaining:
		im = C.chaining
	case crt.QuadraticProbing:
		im = C.probing
	default:
		err = crt.NewConfigError(fmt.Sprintf("unknown collision resolution technique %d", technique))
	}

	return
}
