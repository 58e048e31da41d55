package collect

import "errors"

// Sentinel errors returned by collect operations.
var (
	// ErrNotSequence is returned by [Reduce] when its input is not a sequence.
	ErrNotSequence = errors.New("collect: value is not a sequence")

	// ErrNilCallback is returned by [Reduce] when no callback is supplied.
	ErrNilCallback = errors.New("collect: callback must not be nil")

	// ErrEmptyCollection is returned by [Reduce] when an empty sequence is
	// folded without a seed.
	ErrEmptyCollection = errors.New("collect: reduce of empty sequence with no seed")

	// ErrHandlerNotFound is returned when an unregistered handler name is called.
	ErrHandlerNotFound = errors.New("collect: handler not found")

	// ErrEmptyHandlerName is returned by [Registry.Register] for an empty name.
	ErrEmptyHandlerName = errors.New("collect: handler name must not be empty")

	// ErrNilHandler is returned by [Registry.Register] when Fn is nil.
	ErrNilHandler = errors.New("collect: handler func must not be nil")
)
