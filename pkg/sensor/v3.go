package sensor

import "encoding/binary"

const (
	format3Version    = 3
	format3PayloadLen = 13
	format3ValueLen   = 14 // including the format version byte
)

// parseFormat3 decodes a data format 3 (RAWv1) payload, i.e. the 13 bytes
// following the format version byte. All multi-byte fields are big-endian.
// The format has no unavailable sentinels, so every field it carries is set.
func parseFormat3(payload []byte) (Data, error) {
	if len(payload) != format3PayloadLen {
		return Data{}, InvalidValueLengthError{
			Version:  format3Version,
			Length:   len(payload) + 1,
			Expected: format3ValueLen,
		}
	}
	humidity := uint32(payload[0]) * 5000
	temperature := format3Temperature(binary.BigEndian.Uint16(payload[1:3]))
	pressure := uint32(binary.BigEndian.Uint16(payload[3:5])) + 50000
	acceleration := AccelerationVector{
		X: int16(binary.BigEndian.Uint16(payload[5:7])),
		Y: int16(binary.BigEndian.Uint16(payload[7:9])),
		Z: int16(binary.BigEndian.Uint16(payload[9:11])),
	}
	batteryVoltage := binary.BigEndian.Uint16(payload[11:13])
	return Data{
		Humidity:       &humidity,
		Temperature:    &temperature,
		Pressure:       &pressure,
		Acceleration:   &acceleration,
		BatteryVoltage: &batteryVoltage,
	}, nil
}

// format3Temperature decodes the sign-and-magnitude temperature field into
// millikelvins. Bit 15 is the sign, bits 8-14 are whole degrees Celsius and
// bits 0-7 hundredths of a degree.
func format3Temperature(raw uint16) uint32 {
	sign := int32(raw>>15)*-2 + 1
	integer := int32((raw >> 8) & 0x7F)
	fraction := int32(raw & 0xFF)
	millicelsius := sign * (integer*1000 + fraction*10)
	return uint32(zeroCelsius + millicelsius)
}
