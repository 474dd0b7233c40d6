package comparisons

import "errors"

var (
	ErrNotFound     = errors.New("comparison not found")
	ErrInvalidInput = errors.New("invalid comparison input")
)
