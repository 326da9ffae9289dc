// Package gateway implements the data formats used by Ruuvi Gateway for
// relaying RuuviTag advertisements. Only the format used in MQTT message
// payloads is implemented. For a complete description of the payload
// formats, read https://docs.ruuvi.com/gw-data-formats.
package gateway

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/niktheblak/ruuvitag-sensor-protocol/pkg/advertisement"
	"github.com/niktheblak/ruuvitag-sensor-protocol/pkg/sensor"
)

// Message is one Ruuvi Gateway MQTT message payload. Data holds the raw
// advertisement bytes decoded from the hex-encoded data field of the
// message. The counter and timestamp fields are relayed as JSON strings by
// gateway firmware and are kept as such.
type Message struct {
	GatewayMAC       string `json:"gw_mac"`
	RSSI             int    `json:"rssi"`
	Counter          string `json:"cnt,omitempty"`
	Timestamp        string `json:"ts,omitempty"`
	GatewayTimestamp string `json:"gwts,omitempty"`
	Coordinates      string `json:"coords,omitempty"`
	Data             []byte `json:"-"`
}

func (m *Message) UnmarshalJSON(data []byte) error {
	type alias Message
	raw := struct {
		*alias
		Data string `json:"data"`
	}{alias: (*alias)(m)}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	b, err := hex.DecodeString(raw.Data)
	if err != nil {
		return fmt.Errorf("invalid data field: %w", err)
	}
	m.Data = b
	return nil
}

func (m Message) MarshalJSON() ([]byte, error) {
	type alias Message
	return json.Marshal(struct {
		alias
		Data string `json:"data"`
	}{alias: alias(m), Data: hex.EncodeToString(m.Data)})
}

// SensorData locates the manufacturer specific data element within the
// message's advertisement data and decodes the sensor values from it.
// advertisement.ErrNoManufacturerData is returned when the advertisement
// holds no such element.
func (m Message) SensorData() (sensor.Data, error) {
	id, payload, err := advertisement.FindManufacturerData(m.Data)
	if err != nil {
		return sensor.Data{}, err
	}
	return sensor.Parse(id, payload)
}
