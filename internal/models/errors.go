package models

import "errors"

// Custom errors
var (
	ErrEmptyBatch     = errors.New("batch contains no games")
	ErrInvalidPayload = errors.New("payload failed validation")
	ErrUnknownMarket  = errors.New("unknown market")
	ErrUnknownOption  = errors.New("unknown option for market")
)
