package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseCourseNumber - Parses a course number, which has to fit an unsigned 32 bit integer
func ParseCourseNumber(s string) (number uint32, err error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil {
		err = fmt.Errorf("course number %q is not an unsigned 32 bit integer", s)
		return
	}

	number = uint32(n)

	return
}

// ParseNonNegative - Parses a positive integer or zero, used where zero disables a feature
func ParseNonNegative(s string) (n int64, err error) {
	n, err = strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || n < 0 {
		n = 0
		err = fmt.Errorf("%q is not a non-negative integer", s)
		return
	}

	return
}

// ParsePositive - Parses a strictly positive integer, used for table and cache sizes
func ParsePositive(s string) (n int64, err error) {
	n, err = strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || n < 1 {
		n = 0
		err = fmt.Errorf("%q is not a positive integer", s)
		return
	}

	return
}
