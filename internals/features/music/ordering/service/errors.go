package service

import "errors"

// Failure taxonomy for the ordering subsystem. Controllers map these to
// status codes; anything not matching is a storage failure and becomes a 500
// after the transaction rolled back.
var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidReference = errors.New("invalid reference")
	ErrConflict         = errors.New("conflict")
)
