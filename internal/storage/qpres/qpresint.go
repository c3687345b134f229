package qpres

import (
	"fmt"
	"github.com/gostonefire/courseindex/course"
	"github.com/gostonefire/courseindex/crt"
	"github.com/gostonefire/courseindex/internal/storage"
)

// getBucketNo - Returns which bucket number that the given course number results in
func (Q *QPTable) getBucketNo(courseNumber uint32) (bucketNo int64, err error) {
	bucketNo = Q.hashAlgorithm.HashFunc1(courseNumber)
	err = storage.CheckSlot(bucketNo, Q.tableSize)

	return
}

// set - Places a record in the first empty slot of its probe sequence
func (Q *QPTable) set(record *course.Course) (err error) {
	bucketNo, err := Q.getBucketNo(record.Number())
	if err != nil {
		return
	}

	probe, err := Q.quadraticProbingForSet(bucketNo)
	if err != nil {
		return
	}

	Q.slots[probe] = record
	Q.nRecords++
	if probe != bucketNo {
		Q.nCollisions++
	}

	return
}

// quadraticProbingForGet - Is the Quadratic Probing Collision Resolution Technique algorithm for getting a record.
// An empty slot proves absence since slots are never cleared.
func (Q *QPTable) quadraticProbingForGet(bucketNo int64, key course.Key) (record *course.Course, steps int64, err error) {
	var probe int64

	// The probe sequence is not a full permutation of the slots, so the bound is the number of attempts
	for i := int64(0); i < Q.tableSize; i++ {
		probe = Q.hashAlgorithm.ProbeIteration(bucketNo, i)
		err = storage.CheckSlot(probe, Q.tableSize)
		if err != nil {
			return
		}

		steps++
		if Q.slots[probe] == nil {
			err = crt.NoRecordFound{}
			return
		}
		if Q.slots[probe].Matches(key) {
			record = Q.slots[probe]
			return
		}
	}

	// Attempts exhausted without a gap or a match
	err = crt.NoRecordFound{}
	return
}

// quadraticProbingForSet - Is the Quadratic Probing Collision Resolution Technique algorithm for finding a free slot.
func (Q *QPTable) quadraticProbingForSet(bucketNo int64) (probe int64, err error) {
	for i := int64(0); i < Q.tableSize; i++ {
		probe = Q.hashAlgorithm.ProbeIteration(bucketNo, i)
		err = storage.CheckSlot(probe, Q.tableSize)
		if err != nil {
			return
		}

		if Q.slots[probe] == nil {
			return
		}
		Q.nProbeSteps++
	}

	err = crt.NewTableFull(fmt.Sprintf("no empty slot found within %d probes from slot %d", Q.tableSize, bucketNo))
	return
}
