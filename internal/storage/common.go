package storage

import (
	"fmt"
	"github.com/gostonefire/courseindex/crt"
	"github.com/gostonefire/courseindex/hashfunc"
	"github.com/gostonefire/courseindex/internal/model"
)

// ResolveHashAlgorithm - Validates the configuration and returns the hash algorithm to use.
// If no algorithm is given in crtConf the one created by newInternal is used.
//   - crtConf is the table configuration
//   - newInternal returns the default algorithm of the collision resolution technique for a table size
//
// It returns:
//   - hashAlgorithm is the algorithm with its table size set
//   - tableSize is the number of slots to allocate, as reported by the algorithm
//   - internalAlg is true if the default algorithm was selected
//   - err is of type crt.ConfigError if the configuration is not usable
func ResolveHashAlgorithm(
	crtConf model.CRTConf,
	newInternal func(tableSize int64) hashfunc.HashAlgorithm,
) (
	hashAlgorithm hashfunc.HashAlgorithm,
	tableSize int64,
	internalAlg bool,
	err error,
) {
	// Check if table size is valid before any modulo is computed
	if crtConf.TableSize < 1 {
		err = crt.NewConfigError(fmt.Sprintf("table size must be a positive value higher than 0 (zero), got %d", crtConf.TableSize))
		return
	}

	// If no HashAlgorithm was given then use the default internal
	if crtConf.HashAlgorithm == nil {
		hashAlgorithm = newInternal(crtConf.TableSize)
		internalAlg = true
	} else {
		hashAlgorithm = crtConf.HashAlgorithm
		hashAlgorithm.SetTableSize(crtConf.TableSize)
	}

	tableSize = hashAlgorithm.GetTableSize()
	if tableSize < 1 {
		err = crt.NewConfigError(fmt.Sprintf("hash algorithm reports a table size of %d", tableSize))
		return
	}

	return
}

// CheckSlot - Returns an error of type crt.ProbingAlgorithm if slot is outside the table
func CheckSlot(slot, tableSize int64) (err error) {
	if slot < 0 || slot >= tableSize {
		err = crt.ProbingAlgorithm{}
	}

	return
}
