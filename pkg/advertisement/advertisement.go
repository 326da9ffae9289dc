// Package advertisement splits raw Bluetooth LE advertisement buffers into
// their length-prefixed elements (AD structures) so that the manufacturer
// specific data element can be located. Elements other than manufacturer
// specific data are surfaced with their AD type but not interpreted.
package advertisement

import (
	"encoding/binary"
	"errors"
	"iter"
)

// TypeManufacturerData is the AD type of a manufacturer specific data
// element.
const TypeManufacturerData byte = 0xFF

// ErrInvalidPacket is returned for advertisement framing errors: an element
// length that runs past the end of the buffer, or a malformed element body.
var ErrInvalidPacket = errors.New("invalid packet")

// ErrNoManufacturerData is returned when an advertisement buffer holds no
// readable manufacturer specific data element.
var ErrNoManufacturerData = errors.New("no manufacturer specific data in advertisement")

// Packet is one advertisement element. Payload aliases the buffer the packet
// was read from and must not be retained past the buffer's lifetime.
type Packet struct {
	Type           byte
	ManufacturerID uint16 // set only when Type is TypeManufacturerData
	Payload        []byte
}

// IsManufacturerData reports whether the packet is a manufacturer specific
// data element.
func (p Packet) IsManufacturerData() bool {
	return p.Type == TypeManufacturerData
}

// Packets returns an iterator over the advertisement elements in buf. Each
// element consists of one length byte followed by that many bytes of body.
//
// An element length that runs past the end of the buffer ends iteration
// after yielding one ErrInvalidPacket; the remaining bytes are discarded. A
// malformed element body yields ErrInvalidPacket for that element only and
// iteration continues with the next element. The sequence is lazy, finite
// and single-use.
func Packets(buf []byte) iter.Seq2[Packet, error] {
	return func(yield func(Packet, error) bool) {
		for len(buf) > 0 {
			n := int(buf[0])
			buf = buf[1:]
			if n > len(buf) {
				yield(Packet{}, ErrInvalidPacket)
				return
			}
			body := buf[:n]
			buf = buf[n:]
			if !yield(parseBody(body)) {
				return
			}
		}
	}
}

func parseBody(body []byte) (Packet, error) {
	if len(body) == 0 {
		return Packet{}, ErrInvalidPacket
	}
	if body[0] != TypeManufacturerData {
		return Packet{Type: body[0], Payload: body[1:]}, nil
	}
	// A manufacturer data body needs at least the type byte and the
	// two-byte little-endian company identifier.
	if len(body) < 3 {
		return Packet{}, ErrInvalidPacket
	}
	return Packet{
		Type:           TypeManufacturerData,
		ManufacturerID: binary.LittleEndian.Uint16(body[1:3]),
		Payload:        body[3:],
	}, nil
}

// FindManufacturerData scans buf for the first manufacturer specific data
// element and returns its company identifier and payload. Malformed elements
// are skipped; scanning stops at the end of the buffer or at a framing error
// that makes the rest of the buffer unreadable.
func FindManufacturerData(buf []byte) (id uint16, payload []byte, err error) {
	for p, err := range Packets(buf) {
		if err != nil {
			continue
		}
		if p.IsManufacturerData() {
			return p.ManufacturerID, p.Payload, nil
		}
	}
	return 0, nil, ErrNoManufacturerData
}
