package cmd

import (
	"bufio"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/niktheblak/ruuvitag-sensor-protocol/pkg/advertisement"
	"github.com/niktheblak/ruuvitag-sensor-protocol/pkg/sensor"
)

var decodeCmd = &cobra.Command{
	Use:   "decode [advertisement...]",
	Short: "Decode hex-encoded BLE advertisements into sensor readings",
	Long: `Decode reads hex-encoded BLE advertisement buffers from the given arguments,
or from standard input one per line, locates the manufacturer specific data
element within each buffer and writes the decoded sensor values as JSON to
standard output.

With --decode.raw the input is taken to be a bare manufacturer specific data
value (format version byte first) instead of a full advertisement buffer.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		enc := json.NewEncoder(cmd.OutOrStdout())
		if !viper.GetBool("decode.compact") {
			enc.SetIndent("", "  ")
		}
		if len(args) > 0 {
			for _, arg := range args {
				if err := decodeHex(enc, arg); err != nil {
					return err
				}
			}
			return nil
		}
		scanner := bufio.NewScanner(cmd.InOrStdin())
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			if err := decodeHex(enc, line); err != nil {
				logger.LogAttrs(nil, slog.LevelError, "Failed to decode advertisement", slog.String("advertisement", line), slog.Any("error", err))
			}
		}
		return scanner.Err()
	},
}

func decodeHex(enc *json.Encoder, s string) error {
	buf, err := hex.DecodeString(s)
	if err != nil {
		return fmt.Errorf("invalid hex data: %w", err)
	}
	var data sensor.Data
	if viper.GetBool("decode.raw") {
		data, err = sensor.Parse(uint16(viper.GetUint32("decode.manufacturer_id")), buf)
	} else {
		var id uint16
		var payload []byte
		id, payload, err = advertisement.FindManufacturerData(buf)
		if err == nil {
			data, err = sensor.Parse(id, payload)
		}
	}
	if err != nil {
		return err
	}
	return enc.Encode(data)
}

func init() {
	decodeCmd.Flags().Bool("decode.compact", false, "write one reading per line instead of indented JSON")
	decodeCmd.Flags().Bool("decode.raw", false, "decode a bare manufacturer data value instead of a full advertisement")
	decodeCmd.Flags().Uint32("decode.manufacturer_id", uint32(sensor.ManufacturerID), "manufacturer id to assume with --decode.raw")

	cobra.CheckErr(viper.BindPFlags(decodeCmd.Flags()))

	rootCmd.AddCommand(decodeCmd)
}
