package events

import "errors"

var (
	ErrNotFound    = errors.New("event not found")
	ErrInvalidDate = errors.New("invalid event date")
)
