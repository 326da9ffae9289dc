// Package sensor decodes environmental sensor values broadcast by RuuviTag
// beacons in the manufacturer specific data element of a Bluetooth LE
// advertisement. Data formats 3 (RAWv1) and 5 (RAWv2) are supported.
//
// See https://docs.ruuvi.com/communication/bluetooth-advertisements for the
// protocol documentation.
package sensor

// ManufacturerID is the Bluetooth SIG company identifier of Ruuvi
// Innovations Ltd.
const ManufacturerID uint16 = 0x0499

// Parse decodes sensor values from the value of a manufacturer specific data
// element. The value consists of one data format version byte followed by
// the format's fixed-length payload. Parse is pure and safe to call from
// multiple goroutines.
func Parse(manufacturerID uint16, value []byte) (Data, error) {
	if len(value) == 0 {
		return Data{}, ErrEmptyValue
	}
	if manufacturerID != ManufacturerID {
		return Data{}, UnknownManufacturerIDError{ID: manufacturerID}
	}
	switch value[0] {
	case 3:
		return parseFormat3(value[1:])
	case 5:
		return parseFormat5(value[1:])
	default:
		return Data{}, UnsupportedFormatVersionError{Version: value[0]}
	}
}
