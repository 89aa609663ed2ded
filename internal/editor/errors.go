package editor

import "errors"

var (
	// ErrEmptyAmount is returned by Submit while the amount field is empty
	// or not a number.
	ErrEmptyAmount = errors.New("amount is empty")

	// ErrEmptyTagName is returned when confirming a new tag without a name.
	ErrEmptyTagName = errors.New("tag name is empty")

	// ErrNoNewTag is returned when confirming while the new-tag sub-mode is
	// not active.
	ErrNoNewTag = errors.New("new-tag mode not active")
)
