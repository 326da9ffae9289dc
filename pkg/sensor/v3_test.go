package sensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat3(t *testing.T) {
	t.Parallel()

	t.Run("InvalidLength", func(t *testing.T) {
		t.Parallel()

		_, err := parseFormat3([]byte{103, 22, 50, 60, 70})
		var lengthErr InvalidValueLengthError
		require.ErrorAs(t, err, &lengthErr)
		assert.Equal(t, InvalidValueLengthError{Version: 3, Length: 6, Expected: 14}, lengthErr)
	})
	t.Run("Valid", func(t *testing.T) {
		t.Parallel()

		payload := []byte{0x17, 0x01, 0x45, 0x35, 0x58, 0x03, 0xE8, 0x04, 0xE7, 0x05, 0xE6, 0x08, 0x86}
		data, err := parseFormat3(payload)
		require.NoError(t, err)
		assert.Equal(t, Data{
			Humidity:       uint32Ptr(115000),
			Temperature:    uint32Ptr(274840),
			Pressure:       uint32Ptr(63656),
			Acceleration:   &AccelerationVector{X: 1000, Y: 1255, Z: 1510},
			BatteryVoltage: uint16Ptr(2182),
		}, data)
		require.NotNil(t, data.TemperatureMillicelsius())
		assert.Equal(t, int32(1690), *data.TemperatureMillicelsius())
	})
	t.Run("NegativeTemperature", func(t *testing.T) {
		t.Parallel()

		payload := []byte{0x17, 0x81, 0x45, 0x35, 0x58, 0x03, 0xE8, 0x04, 0xE7, 0x05, 0xE6, 0x08, 0x86}
		data, err := parseFormat3(payload)
		require.NoError(t, err)
		require.NotNil(t, data.Temperature)
		assert.Equal(t, uint32(271460), *data.Temperature)
		assert.Equal(t, int32(-1690), *data.TemperatureMillicelsius())
	})
	t.Run("NegativeAcceleration", func(t *testing.T) {
		t.Parallel()

		payload := []byte{0x17, 0x01, 0x45, 0x35, 0x58, 0xFC, 0x18, 0xFB, 0x19, 0xFA, 0x1A, 0x08, 0x86}
		data, err := parseFormat3(payload)
		require.NoError(t, err)
		assert.Equal(t, &AccelerationVector{X: -1000, Y: -1255, Z: -1510}, data.Acceleration)
	})
	t.Run("FieldsNotInFormat", func(t *testing.T) {
		t.Parallel()

		payload := []byte{0x17, 0x01, 0x45, 0x35, 0x58, 0x03, 0xE8, 0x04, 0xE7, 0x05, 0xE6, 0x08, 0x86}
		data, err := parseFormat3(payload)
		require.NoError(t, err)
		assert.Nil(t, data.TxPower)
		assert.Nil(t, data.MovementCounter)
		assert.Nil(t, data.MeasurementSequenceNumber)
		assert.Nil(t, data.MAC)
	})
}

func TestFormat3Temperature(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		raw      uint16
		expected uint32
	}{
		{"Zero", 0x0000, 273150},
		{"Positive", 0x0145, 274840},
		{"Negative", 0x8145, 271460},
		{"MaxMagnitude", 0x7FFF, 273150 + 127*1000 + 255*10},
		{"MinMagnitude", 0xFFFF, 273150 - (127*1000 + 255*10)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, format3Temperature(tt.raw))
		})
	}
}
