package quno

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidQubitIndex = errors.New("invalid qubit index")
	ErrInvalidOracleSize = errors.New("invalid oracle size")
	ErrAlreadyMeasured   = errors.New("card already measured")
	ErrNotYetMeasured    = errors.New("card not yet measured")
	ErrEmptyBranchSet    = errors.New("empty branch set")
	ErrTooManyBranches   = errors.New("too many branches")
	ErrInvalidColor      = errors.New("invalid color")
	ErrInvalidType       = errors.New("invalid type")
	ErrInvalidShots      = errors.New("invalid shot count")
	ErrUnmarkedOutcome   = errors.New("outcome not marked by oracle")
	ErrAmplifierFailed   = errors.New("amplifier run failed")

	// ErrGateArity is a wiring error, so it is also an ErrInvalidQubitIndex.
	ErrGateArity = fmt.Errorf("%w: gate arity mismatch", ErrInvalidQubitIndex)
)
