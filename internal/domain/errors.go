package domain

import "errors"

var (
	// ErrInvalidType is returned when a transaction type is not one of
	// expense, income, or transfer.
	ErrInvalidType = errors.New("invalid transaction type")

	// ErrMissingAccount is returned when a required account reference is
	// empty.
	ErrMissingAccount = errors.New("missing account")

	// ErrSameAccountTransfer is returned when a transfer names the same
	// account as both source and destination.
	ErrSameAccountTransfer = errors.New("transfer source and destination are the same account")

	// ErrTooManyImages is returned when a transaction carries more than
	// MaxImages attachments.
	ErrTooManyImages = errors.New("too many image attachments")
)
