//go:build unit

package course

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestCourse_Matches(t *testing.T) {
	t.Run("matches on full composite key", func(t *testing.T) {
		// Prepare
		c := NewCourse("2021", "CSCI", 2270, "Data Structures", "llytellf", "Lorne", "Lytell")

		// Execute
		isMatch := c.Matches(Key{Year: "2021", Number: 2270, ProfessorID: "llytellf"})

		// Check
		assert.True(t, isMatch, "same composite key matches")
	})

	t.Run("does not match when any key part differs", func(t *testing.T) {
		// Prepare
		c := NewCourse("2021", "CSCI", 2270, "Data Structures", "llytellf", "Lorne", "Lytell")
		keys := []Key{
			{Year: "2020", Number: 2270, ProfessorID: "llytellf"},
			{Year: "2021", Number: 2271, ProfessorID: "llytellf"},
			{Year: "2021", Number: 2270, ProfessorID: "someoneelse"},
		}

		for _, key := range keys {
			// Execute
			isMatch := c.Matches(key)

			// Check
			assert.Falsef(t, isMatch, "key %+v does not match", key)
		}
	})
}

func TestCourse_Accessors(t *testing.T) {
	t.Run("returns constructor values", func(t *testing.T) {
		// Prepare
		c := NewCourse("2021", "CSCI", 2270, "Data Structures", "llytellf", "Lorne", "Lytell")

		// Execute
		key := c.Key()

		// Check
		assert.Equal(t, Key{Year: "2021", Number: 2270, ProfessorID: "llytellf"}, key, "key built from record")
		assert.Equal(t, "CSCI", c.Department())
		assert.Equal(t, "Data Structures", c.Name())
		assert.Equal(t, "Lorne", c.ProfessorFirstName())
		assert.Equal(t, "Lytell", c.ProfessorLastName())
		assert.Equal(t, "Lorne Lytell", c.ProfessorName(), "display name joins first and last name")
	})
}
