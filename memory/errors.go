package memory

import "errors"

var (
	// ErrMemoryLimitExceeded indicates an allocation was refused because it
	// would push a pool past its configured limit.
	ErrMemoryLimitExceeded = errors.New("memory: limit exceeded")

	// ErrNegativeBytes indicates a negative byte amount was passed to an
	// accounting or estimation call.
	ErrNegativeBytes = errors.New("memory: negative byte amount")
)
