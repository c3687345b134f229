package model

import (
	"github.com/gostonefire/courseindex/course"
	"github.com/gostonefire/courseindex/hashfunc"
)

// Bucket - Represents the contents of one slot in a table
//   - Records are the records in the slot in insertion order, at most one for open addressing tables
//   - BucketNo is the slot index
type Bucket struct {
	Records  []*course.Course
	BucketNo int64
}

// StorageParameters - Represents parameters and build diagnostics of any implementation of storage
//   - CollisionResolutionTechnique is one of the crt constants
//   - TableSize is the number of slots allocated
//   - Records is the number of records stored
//   - Collisions is the number of records that did not land alone in their home slot
//   - ProbeSteps is the number of chain walk or probe steps performed while building
//   - InternalAlgorithm is true if the default hash algorithm is used
type StorageParameters struct {
	CollisionResolutionTechnique int
	TableSize                    int64
	Records                      int64
	Collisions                   int64
	ProbeSteps                   int64
	InternalAlgorithm            bool
}

// CRTConf - Is a struct to be passed in the call to NewXXTable and contains configuration that affects
// table building.
//   - TableSize is the number of slots to allocate, has to be at least 1
//   - HashAlgorithm is the hash function(s) to use, nil selects the internal algorithm of the technique
type CRTConf struct {
	TableSize     int64
	HashAlgorithm hashfunc.HashAlgorithm
}
