package sensor

import (
	"encoding/binary"
	"math"
)

const (
	format5Version    = 5
	format5PayloadLen = 23
	format5ValueLen   = 24 // including the format version byte
)

// parseFormat5 decodes a data format 5 (RAWv2) payload, i.e. the 23 bytes
// following the format version byte. All multi-byte fields are big-endian and
// signed fields are two's complement. Every field has its own unavailable
// sentinel; a field at its sentinel is left nil in the returned Data.
func parseFormat5(payload []byte) (Data, error) {
	if len(payload) != format5PayloadLen {
		return Data{}, InvalidValueLengthError{
			Version:  format5Version,
			Length:   len(payload) + 1,
			Expected: format5ValueLen,
		}
	}
	powerInfo := binary.BigEndian.Uint16(payload[12:14])
	return Data{
		Temperature: format5Temperature(int16(binary.BigEndian.Uint16(payload[0:2]))),
		Humidity:    format5Humidity(binary.BigEndian.Uint16(payload[2:4])),
		Pressure:    format5Pressure(binary.BigEndian.Uint16(payload[4:6])),
		Acceleration: format5Acceleration(
			int16(binary.BigEndian.Uint16(payload[6:8])),
			int16(binary.BigEndian.Uint16(payload[8:10])),
			int16(binary.BigEndian.Uint16(payload[10:12])),
		),
		BatteryVoltage:            format5BatteryVoltage(powerInfo),
		TxPower:                   format5TxPower(powerInfo),
		MovementCounter:           format5MovementCounter(payload[14]),
		MeasurementSequenceNumber: format5SequenceNumber(binary.BigEndian.Uint16(payload[15:17])),
		MAC:                       format5MAC(payload[17:23]),
	}, nil
}

func format5Temperature(raw int16) *uint32 {
	if raw == math.MinInt16 {
		return nil
	}
	mk := uint32(int32(raw)*5 + zeroCelsius)
	return &mk
}

func format5Humidity(raw uint16) *uint32 {
	if raw == 0xFFFF {
		return nil
	}
	ppm := uint32(raw) * 25
	return &ppm
}

func format5Pressure(raw uint16) *uint32 {
	if raw == 0xFFFF {
		return nil
	}
	pa := uint32(raw) + 50000
	return &pa
}

// format5Acceleration returns nil if any axis is at its sentinel; the vector
// is only usable as a whole.
func format5Acceleration(x, y, z int16) *AccelerationVector {
	if x == math.MinInt16 || y == math.MinInt16 || z == math.MinInt16 {
		return nil
	}
	return &AccelerationVector{X: x, Y: y, Z: z}
}

// format5BatteryVoltage decodes the upper 11 bits of the power info field.
func format5BatteryVoltage(powerInfo uint16) *uint16 {
	raw := powerInfo >> 5
	if raw == 2047 {
		return nil
	}
	mv := 1600 + raw
	return &mv
}

// format5TxPower decodes the lower 5 bits of the power info field.
func format5TxPower(powerInfo uint16) *int8 {
	raw := int8(powerInfo & 0x1F)
	if raw == 31 {
		return nil
	}
	dbm := raw*2 - 40
	return &dbm
}

func format5MovementCounter(raw byte) *uint32 {
	if raw == 0xFF {
		return nil
	}
	count := uint32(raw)
	return &count
}

func format5SequenceNumber(raw uint16) *uint32 {
	if raw == 0xFFFF {
		return nil
	}
	seq := uint32(raw)
	return &seq
}

func format5MAC(raw []byte) *MACAddress {
	var mac MACAddress
	copy(mac[:], raw)
	if mac == (MACAddress{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}) {
		return nil
	}
	return &mac
}
