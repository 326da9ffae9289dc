package cmd

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/niktheblak/ruuvitag-sensor-protocol/pkg/gateway"
)

var gatewayCmd = &cobra.Command{
	Use:   "gateway",
	Short: "Decode Ruuvi Gateway MQTT message payloads",
	Long: `Gateway reads Ruuvi Gateway MQTT message payloads (JSON objects with a
hex-encoded data field) from standard input and writes the sensor values
decoded from each message as JSON to standard output. Messages without a
readable manufacturer specific data element are skipped.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		enc := json.NewEncoder(cmd.OutOrStdout())
		if !viper.GetBool("decode.compact") {
			enc.SetIndent("", "  ")
		}
		return decodeMessages(json.NewDecoder(cmd.InOrStdin()), enc)
	},
}

func decodeMessages(dec *json.Decoder, enc *json.Encoder) error {
	for {
		var msg gateway.Message
		err := dec.Decode(&msg)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		data, err := msg.SensorData()
		if err != nil {
			logger.LogAttrs(nil, slog.LevelWarn, "Skipping message without sensor data", slog.String("gw_mac", msg.GatewayMAC), slog.Any("error", err))
			continue
		}
		if err := enc.Encode(data); err != nil {
			return err
		}
	}
}

func init() {
	rootCmd.AddCommand(gatewayCmd)
}
