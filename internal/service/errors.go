package service

import "errors"

var (
	ErrNotFound              = errors.New("not found")
	ErrPermissionDenied      = errors.New("permission denied")
	ErrInvalidInput          = errors.New("invalid input")
	ErrInvalidDateFormat     = errors.New("invalid date format")
	ErrDataSourceUnavailable = errors.New("data source unavailable")
)
