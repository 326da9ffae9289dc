package sensor

import (
	"encoding/json"
	"fmt"
)

// zeroCelsius is 0 °C expressed in millikelvins.
const zeroCelsius = 273150

// AccelerationVector is a 3-dimensional acceleration vector, each component
// in milli-G.
type AccelerationVector struct {
	X int16 `json:"x"`
	Y int16 `json:"y"`
	Z int16 `json:"z"`
}

// MACAddress is the Bluetooth MAC address of the tag.
type MACAddress [6]byte

func (m MACAddress) String() string {
	return fmt.Sprintf("%02X:%02X:%02X:%02X:%02X:%02X", m[0], m[1], m[2], m[3], m[4], m[5])
}

func (m MACAddress) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// Data is one set of sensor values decoded from a RuuviTag broadcast. A field
// is nil when the source data format cannot represent it or the tag reported
// the field's unavailable sentinel.
type Data struct {
	Humidity                  *uint32             `json:"humidity,omitempty"`        // parts per million
	Temperature               *uint32             `json:"temperature,omitempty"`     // millikelvins
	Pressure                  *uint32             `json:"pressure,omitempty"`        // pascals
	Acceleration              *AccelerationVector `json:"acceleration,omitempty"`    // milli-G
	BatteryVoltage            *uint16             `json:"battery_voltage,omitempty"` // millivolts
	TxPower                   *int8               `json:"tx_power,omitempty"`        // dBm
	MovementCounter           *uint32             `json:"movement_counter,omitempty"`
	MeasurementSequenceNumber *uint32             `json:"measurement_number,omitempty"`
	MAC                       *MACAddress         `json:"mac,omitempty"`
}

// TemperatureMillicelsius returns the temperature converted from
// millikelvins to millidegrees Celsius, or nil if the temperature is not
// available.
func (d Data) TemperatureMillicelsius() *int32 {
	if d.Temperature == nil {
		return nil
	}
	mc := int32(*d.Temperature) - zeroCelsius
	return &mc
}
