package nes

import "errors"

var (
	ErrInvalidROM        = errors.New("invalid ROM file")
	ErrUnsupportedMapper = errors.New("unsupported mapper")
)
