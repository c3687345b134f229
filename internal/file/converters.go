package file

import (
	"fmt"
	"github.com/gostonefire/courseindex/course"
	"github.com/gostonefire/courseindex/internal/utils"
	"strconv"
)

// NumberOfColumns - Number of columns in a course file line
const NumberOfColumns = 7

// Header - The column names written as the first line of a course file
var Header = []string{"year", "department", "course_num", "course_name", "prof_id", "prof_fname", "prof_lname"}

// fieldsToCourse - Converts the columns of one course file line to a Course
func fieldsToCourse(fields []string) (record *course.Course, err error) {
	if len(fields) != NumberOfColumns {
		err = fmt.Errorf("expected %d columns, got %d", NumberOfColumns, len(fields))
		return
	}

	number, err := utils.ParseCourseNumber(fields[2])
	if err != nil {
		return
	}

	record = course.NewCourse(fields[0], fields[1], number, fields[3], fields[4], fields[5], fields[6])

	return
}

// courseToFields - Converts a Course to the columns of one course file line
func courseToFields(record *course.Course) (fields []string) {
	fields = []string{
		record.Year(),
		record.Department(),
		strconv.FormatUint(uint64(record.Number()), 10),
		record.Name(),
		record.ProfessorID(),
		record.ProfessorFirstName(),
		record.ProfessorLastName(),
	}

	return
}
