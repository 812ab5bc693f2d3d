package clock

import "errors"

var (
	ErrInvalidDivider    = errors.New("invalid divider")
	ErrUnsupportedSource = errors.New("unsupported clock source")
	ErrUnknownGenerator  = errors.New("unknown clock generator")
	ErrUnknownChannel    = errors.New("unknown clock channel")
	ErrPeripheralsInUse  = errors.New("clock peripherals are already owned by a controller")
	ErrControllerFreed   = errors.New("clock controller has given up its peripherals")
	ErrClockLoop         = errors.New("clock tree contains a loop")
)
