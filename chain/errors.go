package chain

import (
	"fmt"

	"github.com/katalvlaran/lvbayes/bayeserr"
)

var (
	// ErrFrozen is returned by mutators called after Freeze.
	ErrFrozen = fmt.Errorf("chain: chain is frozen: %w", bayeserr.ErrInvalidParameter)

	// ErrFull is returned by Append once every reserved row is filled.
	ErrFull = fmt.Errorf("chain: chain is full: %w", bayeserr.ErrInvalidParameter)

	// ErrUnknownParam is returned when a parameter name is not in the chain.
	ErrUnknownParam = fmt.Errorf("chain: unknown parameter: %w", bayeserr.ErrInvalidParameter)
)

func chainErrorf(op string, err error) error {
	return fmt.Errorf("chain.%s: %w", op, err)
}
