//go:build unit

package crt

import (
	"errors"
	"fmt"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestErrors(t *testing.T) {
	t.Run("default messages", func(t *testing.T) {
		assert.Equal(t, "no record found", NoRecordFound{}.Error())
		assert.Equal(t, "table full", TableFull{}.Error())
		assert.Equal(t, "probing algorithm out of range", ProbingAlgorithm{}.Error())
		assert.Equal(t, "invalid configuration", ConfigError{}.Error())
		assert.Equal(t, "invariant violation", InvariantViolation{}.Error())
	})

	t.Run("errors with messages still match their type when wrapped", func(t *testing.T) {
		// Prepare
		configErr := fmt.Errorf("error while building: %w", NewConfigError("table size must be at least 1"))
		fullErr := fmt.Errorf("error while building: %w", NewTableFull("no free slot for course 2270"))
		invariantErr := fmt.Errorf("error while building: %w", NewInvariantViolation("duplicate professor"))

		// Check
		assert.ErrorIs(t, configErr, ConfigError{}, "config error matches")
		assert.ErrorIs(t, fullErr, TableFull{}, "table full matches")
		assert.ErrorIs(t, invariantErr, InvariantViolation{}, "invariant violation matches")
		assert.False(t, errors.Is(configErr, TableFull{}), "config error is not table full")
		assert.Contains(t, fullErr.Error(), "course 2270", "custom message preserved")
	})
}

func TestName(t *testing.T) {
	assert.Equal(t, "Chaining", Name(SeparateChaining))
	assert.Equal(t, "Open Addressing", Name(QuadraticProbing))
	assert.Equal(t, "Unknown", Name(0))
}
