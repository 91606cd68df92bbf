package queue

import "errors"

// Sentinel errors for queue operations.
var (
	ErrQueueFull   = errors.New("queue full")
	ErrQueueClosed = errors.New("queue closed")
)
