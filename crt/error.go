package crt

// NoRecordFound - Custom error to inform that no record was found
type NoRecordFound struct {
	msg string
}

// Error - Used to notify that no record was found
func (E NoRecordFound) Error() string {
	if E.msg == "" {
		return "no record found"
	}
	return E.msg
}

// TableFull - Custom error to inform that an open addressing table can't take more records
type TableFull struct {
	msg string
}

// NewTableFull - Returns a TableFull with a custom message
func NewTableFull(msg string) TableFull {
	return TableFull{msg: msg}
}

// Error - Used to notify that the table is full
func (E TableFull) Error() string {
	if E.msg == "" {
		return "table full"
	}
	return E.msg
}

// Is - Makes errors.Is match any TableFull regardless of message
func (E TableFull) Is(target error) bool {
	_, ok := target.(TableFull)
	return ok
}

// ProbingAlgorithm - Custom error to inform that something went wrong concerning a probing algorithm
type ProbingAlgorithm struct {
	msg string
}

// Error - Used to notify that a probing algorithm misbehaved
func (P ProbingAlgorithm) Error() string {
	if P.msg == "" {
		return "probing algorithm out of range"
	}
	return P.msg
}

// ConfigError - Custom error to inform that a configuration value is not acceptable
type ConfigError struct {
	msg string
}

// NewConfigError - Returns a ConfigError with a custom message
func NewConfigError(msg string) ConfigError {
	return ConfigError{msg: msg}
}

// Error - Used to notify a configuration problem
func (C ConfigError) Error() string {
	if C.msg == "" {
		return "invalid configuration"
	}
	return C.msg
}

// Is - Makes errors.Is match any ConfigError regardless of message
func (C ConfigError) Is(target error) bool {
	_, ok := target.(ConfigError)
	return ok
}

// InvariantViolation - Custom error to inform that an index structure reached a state its own protocol forbids
type InvariantViolation struct {
	msg string
}

// NewInvariantViolation - Returns an InvariantViolation with a custom message
func NewInvariantViolation(msg string) InvariantViolation {
	return InvariantViolation{msg: msg}
}

// Error - Used to notify an invariant violation
func (I InvariantViolation) Error() string {
	if I.msg == "" {
		return "invariant violation"
	}
	return I.msg
}

// Is - Makes errors.Is match any InvariantViolation regardless of message
func (I InvariantViolation) Is(target error) bool {
	_, ok := target.(InvariantViolation)
	return ok
}
