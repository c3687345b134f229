//go:build unit

package utils

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestParseCourseNumber(t *testing.T) {
	t.Run("parses valid course numbers", func(t *testing.T) {
		// Execute
		a, errA := ParseCourseNumber("2270")
		b, errB := ParseCourseNumber(" 4294967295 ")

		// Check
		assert.NoError(t, errA)
		assert.Equal(t, uint32(2270), a)
		assert.NoError(t, errB)
		assert.Equal(t, uint32(4294967295), b, "largest value accepted")
	})

	t.Run("rejects invalid course numbers", func(t *testing.T) {
		for _, s := range []string{"", "-1", "abc", "4294967296", "22.5"} {
			// Execute
			_, err := ParseCourseNumber(s)

			// Check
			assert.Errorf(t, err, "%q rejected", s)
		}
	})
}

func TestParseNonNegative(t *testing.T) {
	t.Run("parses zero and positive integers with surrounding space", func(t *testing.T) {
		for s, expected := range map[string]int64{"0": 0, " 0": 0, "5 ": 5, "\t12": 12} {
			// Execute
			n, err := ParseNonNegative(s)

			// Check
			assert.NoErrorf(t, err, "%q accepted", s)
			assert.Equalf(t, expected, n, "%q parsed", s)
		}
	})

	t.Run("rejects negatives and garbage", func(t *testing.T) {
		for _, s := range []string{"-1", "ten", ""} {
			// Execute
			n, err := ParseNonNegative(s)

			// Check
			assert.Errorf(t, err, "%q rejected", s)
			assert.Zero(t, n, "no value returned")
		}
	})
}

func TestParsePositive(t *testing.T) {
	t.Run("parses positive integers", func(t *testing.T) {
		// Execute
		n, err := ParsePositive("10")

		// Check
		assert.NoError(t, err)
		assert.Equal(t, int64(10), n)
	})

	t.Run("rejects zero, negatives and garbage", func(t *testing.T) {
		for _, s := range []string{"0", "-3", "ten", ""} {
			// Execute
			n, err := ParsePositive(s)

			// Check
			assert.Errorf(t, err, "%q rejected", s)
			assert.Zero(t, n, "no value returned")
		}
	})
}
