//go:build unit

package menu

import (
	"bytes"
	"context"
	"errors"
	"github.com/fatih/color"
	"github.com/gostonefire/courseindex"
	"github.com/gostonefire/courseindex/course"
	"github.com/gostonefire/courseindex/internal/conf"
	"github.com/gostonefire/courseindex/internal/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
)

func testCourses() []*course.Course {
	return []*course.Course{
		course.NewCourse("2021", "CSCI", 2270, "Data Structures", "llytellf", "Lorne", "Lytell"),
		course.NewCourse("2020", "APPM", 1350, "Calculus 1", "nscollan0", "Nerti", "Scollan"),
		course.NewCourse("2021", "APPM", 1360, "Calculus 2", "nscollan0", "Nerti", "Scollan"),
	}
}

func staticLoader(courses []*course.Course) Loader {
	return func(ctx context.Context) ([]*course.Course, error) {
		return courses, nil
	}
}

// runMenu - Runs a menu over the given input lines and returns what was written
func runMenu(t *testing.T, indexConf courseindex.IndexConf, load Loader, lines ...string) string {
	color.NoColor = true
	out := &bytes.Buffer{}
	renderer, err := render.NewRenderer(out, conf.OutputTable)
	require.NoError(t, err, "creates renderer")

	m := NewMenu(strings.NewReader(strings.Join(lines, "\n")+"\n"), out, renderer, indexConf, load)
	err = m.Run(context.Background())
	require.NoError(t, err, "menu runs to the end")

	return out.String()
}

func TestMenu_Run(t *testing.T) {
	indexConf := courseindex.IndexConf{TableSize: 11, CacheSize: 10}

	t.Run("searching before populating asks to populate", func(t *testing.T) {
		// Execute
		out := runMenu(t, indexConf, staticLoader(testCourses()), "2", "3", "llytellf", "4", "6", "5")

		// Check
		assert.Equal(t, 4, strings.Count(out, "Populate hash tables first!"), "every search refused")
		assert.Contains(t, out, "Exiting...")
	})

	t.Run("populates and finds a course in both tables", func(t *testing.T) {
		// Execute
		out := runMenu(t, indexConf, staticLoader(testCourses()), "1", "2", "2021", "2270", "llytellf", "5")

		// Check
		assert.Contains(t, out, "Populated 3 courses by 2 professors", "population summary")
		assert.Contains(t, out, "Found via Open Addressing")
		assert.Contains(t, out, "Found via Chaining")
		assert.Contains(t, out, "Data Structures")
	})

	t.Run("reports a missing course for both tables", func(t *testing.T) {
		// Execute
		out := runMenu(t, indexConf, staticLoader(testCourses()), "1", "2", "2021", "2270", "someoneelse", "5")

		// Check
		assert.Contains(t, out, "Course not found via Open Addressing")
		assert.Contains(t, out, "Course not found via Chaining")
	})

	t.Run("rejects an invalid course number", func(t *testing.T) {
		// Execute
		out := runMenu(t, indexConf, staticLoader(testCourses()), "1", "2", "2021", "twenty", "llytellf", "5")

		// Check
		assert.Contains(t, out, "Error: course number \"twenty\"")
		assert.Contains(t, out, "Exiting...", "menu keeps running")
	})

	t.Run("shows a professor with all courses", func(t *testing.T) {
		// Execute
		out := runMenu(t, indexConf, staticLoader(testCourses()), "1", "3", "nscollan0", "3", "nobody", "5")

		// Check
		assert.Contains(t, out, "Nerti Scollan (nscollan0)")
		assert.Contains(t, out, "Calculus 1")
		assert.Contains(t, out, "Calculus 2")
		assert.Contains(t, out, "Professor nobody not found")
	})

	t.Run("displays all courses after a valid table choice", func(t *testing.T) {
		// Execute
		out := runMenu(t, indexConf, staticLoader(testCourses()), "1", "4", "X", "c", "5")

		// Check
		assert.Contains(t, out, "Select O or C", "invalid choice repeated")
		assert.Contains(t, out, "All courses via Chaining")
		assert.Contains(t, out, "Data Structures")
		assert.Contains(t, out, "Calculus 1")
		assert.Contains(t, out, "Calculus 2")
	})

	t.Run("shows statistics for both tables", func(t *testing.T) {
		// Execute
		out := runMenu(t, indexConf, staticLoader(testCourses()), "1", "6", "5")

		// Check
		assert.Contains(t, out, "Chaining")
		assert.Contains(t, out, "Open Addressing")
		assert.Contains(t, out, "0.273", "3 records in 11 slots")
	})

	t.Run("reports invalid choices", func(t *testing.T) {
		// Execute
		out := runMenu(t, indexConf, staticLoader(testCourses()), "9", "5")

		// Check
		assert.Contains(t, out, "Enter 1-6")
	})

	t.Run("loader failure leaves the tables unpopulated", func(t *testing.T) {
		// Prepare
		failing := func(ctx context.Context) ([]*course.Course, error) {
			return nil, errors.New("disk on fire")
		}

		// Execute
		out := runMenu(t, indexConf, failing, "1", "2", "5")

		// Check
		assert.Contains(t, out, "Error: error while loading courses: disk on fire")
		assert.Contains(t, out, "Populate hash tables first!")
	})

	t.Run("a table that is too small is reported", func(t *testing.T) {
		// Execute
		out := runMenu(t, courseindex.IndexConf{TableSize: 2}, staticLoader(testCourses()), "1", "6", "5")

		// Check
		assert.Contains(t, out, "no empty slot found", "TableFull reported")
		assert.Contains(t, out, "Populate hash tables first!")
	})

	t.Run("ends quietly when input ends", func(t *testing.T) {
		// Execute
		out := runMenu(t, indexConf, staticLoader(testCourses()), "1")

		// Check
		assert.Contains(t, out, "Populated 3 courses")
		assert.NotContains(t, out, "Exiting...")
	})
}
