package sensor

import (
	"errors"
	"fmt"
)

// ErrEmptyValue is returned when the manufacturer specific data value holds
// no bytes at all, so the data format version cannot be determined.
var ErrEmptyValue = errors.New("empty value, expected at least one byte")

// UnknownManufacturerIDError is returned when the manufacturer id of the
// advertisement does not belong to Ruuvi Innovations.
type UnknownManufacturerIDError struct {
	ID uint16
}

func (e UnknownManufacturerIDError) Error() string {
	return fmt.Sprintf("unknown manufacturer id %#06x, only %#06x is supported", e.ID, ManufacturerID)
}

// UnsupportedFormatVersionError is returned when the data format version of
// the value is not supported by this module.
type UnsupportedFormatVersionError struct {
	Version byte
}

func (e UnsupportedFormatVersionError) Error() string {
	return fmt.Sprintf("unsupported data format version %d, only versions 3 and 5 are supported", e.Version)
}

// InvalidValueLengthError is returned when the length of the value does not
// match the expected length of the recognized data format. Lengths include
// the leading format version byte.
type InvalidValueLengthError struct {
	Version  byte
	Length   int
	Expected int
}

func (e InvalidValueLengthError) Error() string {
	return fmt.Sprintf("invalid data length of %d for format version %d, expected %d", e.Length, e.Version, e.Expected)
}
