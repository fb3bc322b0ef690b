package entities

import (
	"errors"
	"fmt"
)

// ErrUnrecognizedPlatform is returned when an OS family has no distribution entry
var ErrUnrecognizedPlatform = errors.New("unrecognized platform")

// ErrUnrecognizedWidth is returned for a pointer width that is neither 32 nor 64 bits
var ErrUnrecognizedWidth = errors.New("unrecognized pointer width")

// UnrecognizedPlatformError carries the family name that failed the lookup
type UnrecognizedPlatformError struct {
	Family string
}

func (e *UnrecognizedPlatformError) Error() string {
	return fmt.Sprintf("%s: %s", ErrUnrecognizedPlatform, e.Family)
}

// Is makes errors.Is(err, ErrUnrecognizedPlatform) match
func (e *UnrecognizedPlatformError) Is(target error) bool {
	return target == ErrUnrecognizedPlatform
}

// UnrecognizedWidthError carries the width descriptor that failed to parse
type UnrecognizedWidthError struct {
	Value string
}

func (e *UnrecognizedWidthError) Error() string {
	return fmt.Sprintf("%s: %s", ErrUnrecognizedWidth, e.Value)
}

// Is makes errors.Is(err, ErrUnrecognizedWidth) match
func (e *UnrecognizedWidthError) Is(target error) bool {
	return target == ErrUnrecognizedWidth
}
