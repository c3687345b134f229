package separatechaining

import (
	"github.com/gostonefire/courseindex/course"
	"github.com/gostonefire/courseindex/internal/storage"
)

// getBucketNo - Returns which bucket number that the given course number results in
func (S *SCTable) getBucketNo(courseNumber uint32) (bucketNo int64, err error) {
	bucketNo = S.hashAlgorithm.HashFunc1(courseNumber)
	err = storage.CheckSlot(bucketNo, S.tableSize)

	return
}

// set - Places a record in its home slot, appending it to the end of the chain if the slot is already in use
func (S *SCTable) set(record *course.Course) (err error) {
	bucketNo, err := S.getBucketNo(record.Number())
	if err != nil {
		return
	}

	chain := S.buckets[bucketNo]
	if len(chain) > 0 {
		S.nCollisions++
		// Walking to the end of the chain visits every entry once
		S.nProbeSteps += int64(len(chain))
	}

	S.buckets[bucketNo] = append(chain, record)
	S.nRecords++

	return
}
