//go:build stress

package test

import (
	"errors"
	"fmt"
	"github.com/gostonefire/courseindex"
	"github.com/gostonefire/courseindex/course"
	"github.com/gostonefire/courseindex/crt"
	"github.com/gostonefire/courseindex/internal/file"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"math/rand"
	"path/filepath"
	"testing"
)

// createAndStoreTestdata - Writes amount random courses with distinct composite keys to a CSV file.
// Keys are made distinct by a running year and professor suffix starting at offset.
func createAndStoreTestdata(amount, offset, professors int, fileName string) error {
	courses := make([]*course.Course, amount)
	for i := 0; i < amount; i++ {
		p := rand.Intn(professors)
		courses[i] = course.NewCourse(
			fmt.Sprintf("%d", 1000+(offset+i)%9000),
			"DEPT",
			uint32(rand.Int63n(1<<32)),
			fmt.Sprintf("Course %d", offset+i),
			fmt.Sprintf("p%06d-%d", p, (offset+i)/9000),
			fmt.Sprintf("First%d", p),
			fmt.Sprintf("Last%d", p),
		)
	}

	return file.WriteCourses(fileName, courses)
}

// getTestdata - Looks up every course of a test set in both hash tables
func getTestdata(courses []*course.Course, ci *courseindex.CourseIndex, shouldNotExist bool) error {
	for _, technique := range []int{crt.SeparateChaining, crt.QuadraticProbing} {
		for _, record := range courses {
			found, err := ci.Get(technique, record.Year(), record.Number(), record.ProfessorID())
			if shouldNotExist {
				if err == nil {
					return fmt.Errorf("get should not find %+v", record.Key())
				} else if !errors.Is(err, crt.NoRecordFound{}) {
					return err
				}
				continue
			}
			if err != nil {
				return fmt.Errorf("%s: %w", crt.Name(technique), err)
			}
			if !found.Matches(record.Key()) {
				return fmt.Errorf("got wrong course for %+v", record.Key())
			}
		}
	}

	return nil
}

// nextPrime - Returns the smallest prime not less than n
func nextPrime(n int64) int64 {
	for ; ; n++ {
		isPrime := n > 1
		for d := int64(2); d*d <= n; d++ {
			if n%d == 0 {
				isPrime = false
				break
			}
		}
		if isPrime {
			return n
		}
	}
}

type TestCaseStressTest struct {
	name       string
	nTestdata  int
	professors int
}

func TestStress(t *testing.T) {
	t.Run("stress tests for all indexes", func(t *testing.T) {
		// Prepare
		tests := []TestCaseStressTest{
			{name: "FewProfessors", nTestdata: 100000, professors: 50},
			{name: "ManyProfessors", nTestdata: 200000, professors: 100000},
		}

		for _, test := range tests {
			t.Run(fmt.Sprintf("handles lots of courses for %s", test.name), func(t *testing.T) {
				// Prepare test data
				rand.Seed(123)
				dir := t.TempDir()
				present := filepath.Join(dir, "testdata_1.csv")
				absent := filepath.Join(dir, "testdata_2.csv")
				err := createAndStoreTestdata(test.nTestdata, 0, test.professors, present)
				require.NoError(t, err, "create testdata 1")
				err = createAndStoreTestdata(test.nTestdata/10, test.nTestdata, test.professors, absent)
				require.NoError(t, err, "create testdata 2")

				courses, err := file.ReadCourses(present)
				require.NoError(t, err, "read testdata 1")
				absentCourses, err := file.ReadCourses(absent)
				require.NoError(t, err, "read testdata 2")

				// Execute
				tableSize := nextPrime(int64(2*test.nTestdata + 1))
				ci, info, err := courseindex.NewCourseIndex(courses, courseindex.IndexConf{TableSize: tableSize, CacheSize: 1000})
				require.NoError(t, err, "create course index")
				defer ci.Close()

				// Check
				assert.Equal(t, int64(test.nTestdata), info.Records, "all records indexed")

				err = getTestdata(courses, ci, false)
				assert.NoError(t, err, "get test set 1")
				err = getTestdata(absentCourses, ci, true)
				assert.NoError(t, err, "get test set 2, should not exist")

				for _, technique := range []int{crt.SeparateChaining, crt.QuadraticProbing} {
					stat, err := ci.Stat(technique)
					assert.NoError(t, err, "get stat")
					assert.Equal(t, int64(test.nTestdata), stat.Records, "correct number of records")

					seq, err := ci.Courses(technique)
					assert.NoError(t, err, "get courses")
					var n int
					for range seq {
						n++
					}
					assert.Equal(t, test.nTestdata, n, "every record listed")
				}

				var total, profiles int
				var previous string
				for professor := range ci.Professors() {
					assert.Less(t, previous, professor.ID, "professors in id order")
					previous = professor.ID
					total += len(professor.Courses)
					profiles++
				}
				assert.Equal(t, test.nTestdata, total, "every course belongs to one professor")
				assert.Equal(t, info.Professors, profiles, "every professor listed")
			})
		}
	})
}
