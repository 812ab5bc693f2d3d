package chip

import "errors"

var (
	ErrBusTaken           = errors.New("peripherals of this bus are already taken")
	ErrPeripheralsClaimed = errors.New("peripherals are still claimed by a driver")
	ErrImageSize          = errors.New("register image has an unexpected size")
)
