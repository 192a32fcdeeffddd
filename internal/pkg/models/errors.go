package models

import "errors"

var (
	ErrInvalidDriverID = errors.New("driver_id is required")
	ErrDriverNotFound  = errors.New("driver not found")
	ErrInvalidLocation = errors.New("invalid location coordinates")
	ErrInvalidRadius   = errors.New("radius must not be negative")
	ErrEmptyUpdate     = errors.New("no fields to update")
	ErrInvalidPage     = errors.New("limit and offset must not be negative")
)
