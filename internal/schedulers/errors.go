package schedulers

import "errors"

var (
	// ErrConfiguration means a process lacks a field the algorithm needs, or a
	// scheduler parameter is out of range. It is reported before any
	// simulation starts.
	ErrConfiguration = errors.New("configuration error")

	// ErrEmptyInput is returned by the average-metric queries on an empty
	// process set.
	ErrEmptyInput = errors.New("empty process set")

	// ErrLimitExceeded means the hyperperiod of a periodic set is above the
	// scheduler's ceiling.
	ErrLimitExceeded = errors.New("hyperperiod limit exceeded")

	ErrAlreadyScheduled = errors.New("scheduler already ran")

	ErrUnknownAlgorithm = errors.New("unknown algorithm")
)
