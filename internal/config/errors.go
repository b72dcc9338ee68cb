package config

import "errors"

var (
	ErrNoName        = errors.New("config: table has no name")
	ErrNoAxes        = errors.New("config: table has no axes")
	ErrUnknownLeaf   = errors.New("config: unknown leaf kind")
	ErrValueCount    = errors.New("config: value count does not match axes")
	ErrBadSettings   = errors.New("config: invalid settings")
	ErrUnknownPreset = errors.New("config: unknown preset")
)
