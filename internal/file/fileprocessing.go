package file

import (
	"encoding/csv"
	"errors"
	"fmt"
	"github.com/gostonefire/courseindex/course"
	"io"
	"os"
)

// ReadCourses - Reads all courses from a comma separated course file.
// The first line is a header and is skipped, blank lines are ignored.
//   - fileName is the path to the course file
//
// It returns:
//   - courses are the records in file order
//   - err is a standard error naming the offending line if the file is malformed
func ReadCourses(fileName string) (courses []*course.Course, err error) {
	f, err := os.OpenFile(fileName, os.O_RDONLY, 0644)
	if err != nil {
		err = fmt.Errorf("error while opening course file: %w", err)
		return
	}
	defer func(f *os.File) { _ = f.Close() }(f)

	courses, err = DecodeCourses(f)

	return
}

// DecodeCourses - Decodes courses in course file format from r
func DecodeCourses(r io.Reader) (courses []*course.Course, err error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	// Skip header
	_, err = cr.Read()
	if errors.Is(err, io.EOF) {
		err = nil
		return
	}
	if err != nil {
		err = fmt.Errorf("error while reading course file header: %w", err)
		return
	}

	var fields []string
	var record *course.Course
	for {
		fields, err = cr.Read()
		if errors.Is(err, io.EOF) {
			err = nil
			return
		}
		if err != nil {
			err = fmt.Errorf("error while reading course file: %w", err)
			return
		}

		record, err = fieldsToCourse(fields)
		if err != nil {
			line, _ := cr.FieldPos(0)
			err = fmt.Errorf("invalid course on line %d: %w", line, err)
			return
		}
		courses = append(courses, record)
	}
}

// WriteCourses - Writes courses to a new course file, including the header line.
// An existing file is truncated.
func WriteCourses(fileName string, courses []*course.Course) (err error) {
	f, err := os.OpenFile(fileName, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		err = fmt.Errorf("error while creating course file: %w", err)
		return
	}
	defer func(f *os.File) { _ = f.Close() }(f)

	err = EncodeCourses(f, courses)

	return
}

// EncodeCourses - Encodes courses in course file format to w
func EncodeCourses(w io.Writer, courses []*course.Course) (err error) {
	cw := csv.NewWriter(w)

	err = cw.Write(Header)
	if err != nil {
		return
	}

	for _, record := range courses {
		err = cw.Write(courseToFields(record))
		if err != nil {
			return
		}
	}

	cw.Flush()
	err = cw.Error()

	return
}
