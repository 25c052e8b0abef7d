package service

import "errors"

// Sentinel errors
var (
	ErrRoundNotFound = errors.New("round not found")
	ErrInvalidAmount = errors.New("xp amount must be positive")
	ErrNoAccount     = errors.New("account id is empty")
)
