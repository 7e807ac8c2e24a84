package domain

import "errors"

var (
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrRecordWriteFailed  = errors.New("completion record write failed")
	ErrRecordReadFailed   = errors.New("completion record read failed")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCatalog     = errors.New("invalid habit catalog")
)
