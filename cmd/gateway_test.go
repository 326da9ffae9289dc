package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeMessages(t *testing.T) {
	input := `{"gw_mac":"C8:25:2D:8E:9C:2C","rssi":-25,"cnt":"338","data":"0201061BFF990405166455D5C6DE0008FFF403F0AE760F2A8BF41F0C28CBD6"}
{"gw_mac":"C8:25:2D:8E:9C:2C","rssi":-25,"cnt":"339","data":"020106"}
{"gw_mac":"C8:25:2D:8E:9C:2C","rssi":-25,"cnt":"340","data":"0201061BFF990405158A5B05C6810004004403DCAB767A45BDE375CF374E23"}
`
	var buf bytes.Buffer
	err := decodeMessages(json.NewDecoder(strings.NewReader(input)), json.NewEncoder(&buf))
	require.NoError(t, err)

	dec := json.NewDecoder(&buf)
	var readings []map[string]any
	for dec.More() {
		m := make(map[string]any)
		require.NoError(t, dec.Decode(&m))
		readings = append(readings, m)
	}
	// The message without manufacturer data is skipped.
	require.Len(t, readings, 2)
	assert.Equal(t, 301810.0, readings[0]["temperature"])
	assert.Equal(t, "F4:1F:0C:28:CB:D6", readings[0]["mac"])
	assert.Equal(t, "E3:75:CF:37:4E:23", readings[1]["mac"])
}

func TestDecodeMessagesInvalidJSON(t *testing.T) {
	var buf bytes.Buffer
	err := decodeMessages(json.NewDecoder(strings.NewReader("{")), json.NewEncoder(&buf))
	assert.Error(t, err)
}
