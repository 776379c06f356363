package domain

import "errors"

var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrKeyNotFound        = errors.New("storage key not found")
	ErrInvalidAccountType = errors.New("invalid account type")
)
