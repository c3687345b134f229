package courseindex

import (
	"fmt"
	"github.com/gostonefire/courseindex/course"
	"github.com/gostonefire/courseindex/crt"
	"iter"
	"slices"
)

// Get - Gets the course matching the composite key from the table of the given technique.
//   - technique is either crt.SeparateChaining or crt.QuadraticProbing
//   - year, number and professorID form the composite key
//
// It returns:
//   - record is the matching course, shared with the other indexes
//   - err is either of type crt.NoRecordFound, crt.ConfigError for an unknown technique, or crt.ProbingAlgorithm
func (C *CourseIndex) Get(technique int, year string, number uint32, professorID string) (record *course.Course, err error) {
	record, _, err = C.GetWithSteps(technique, course.Key{Year: year, Number: number, ProfessorID: professorID})

	return
}

// GetWithSteps - Same as Get but takes a course.Key and also returns the number of slots or chain entries inspected
func (C *CourseIndex) GetWithSteps(technique int, key course.Key) (record *course.Course, steps int64, err error) {
	im, err := C.index(technique)
	if err != nil {
		return
	}

	record, steps, err = im.Get(key)

	return
}

// GetProfessor - Gets the profile of a professor with all courses taught in insertion order.
// Profiles are served from the cache when one is configured.
//   - professorID is the unique professor id
//
// It returns:
//   - professor is the profile, its course slice is owned by the caller
//   - err is of type crt.NoRecordFound if the professor is unknown
func (C *CourseIndex) GetProfessor(professorID string) (professor course.Professor, err error) {
	if C.cache != nil {
		if cached, ok := C.cache.Get(professorID); ok {
			professor = cached
			professor.Courses = slices.Clone(cached.Courses)
			return
		}
	}

	professor, ok := C.professors.Find(professorID)
	if !ok {
		err = crt.NoRecordFound{}
		return
	}

	if C.cache != nil {
		cached := professor
		cached.Courses = slices.Clone(professor.Courses)
		C.cache.Set(professorID, cached, 1)
	}

	return
}

// Courses - Returns a restartable sequence over every course in the table of the given technique,
// in slot order and, within a chaining bucket, insertion order.
func (C *CourseIndex) Courses(technique int) (courses iter.Seq[*course.Course], err error) {
	im, err := C.index(technique)
	if err != nil {
		return
	}

	courses = im.Courses()

	return
}

// Professors - Returns a restartable sequence over every professor profile ordered by professor id
func (C *CourseIndex) Professors() iter.Seq[course.Professor] {
	return C.professors.Professors()
}

// GetBucket - Returns the courses stored in a bucket (chaining) or slot (quadratic probing).
// An empty slot gives an empty slice.
//   - technique is either crt.SeparateChaining or crt.QuadraticProbing
//   - bucketNo is the bucket or slot number between 0 and table size - 1
func (C *CourseIndex) GetBucket(technique int, bucketNo int64) (records []*course.Course, err error) {
	im, err := C.index(technique)
	if err != nil {
		return
	}

	bucket, err := im.GetBucket(bucketNo)
	if err != nil {
		err = fmt.Errorf("error while getting bucket %d: %w", bucketNo, err)
		return
	}

	records = bucket.Records

	return
}

// Stat - Walks through every bucket of the table of the given technique and produces an IndexStat
func (C *CourseIndex) Stat(technique int) (indexStat IndexStat, err error) {
	im, err := C.index(technique)
	if err != nil {
		return
	}

	params := im.GetStorageParameters()
	indexStat = IndexStat{
		Technique:          technique,
		Collisions:         params.Collisions,
		ProbeSteps:         params.ProbeSteps,
		BucketDistribution: make([]int64, params.TableSize),
		InternalAlgorithm:  params.InternalAlgorithm,
	}

	for i := int64(0); i < params.TableSize; i++ {
		bucket, err := im.GetBucket(i)
		if err != nil {
			return IndexStat{}, fmt.Errorf("error while getting bucket %d: %w", i, err)
		}

		n := int64(len(bucket.Records))
		indexStat.Records += n
		indexStat.BucketDistribution[i] = n
		indexStat.LongestBucket = max(indexStat.LongestBucket, n)
		if n > 0 {
			indexStat.UsedBuckets++
		}
	}

	indexStat.LoadFactor = float64(indexStat.Records) / float64(params.TableSize)

	return
}
