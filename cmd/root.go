package cmd

import (
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/niktheblak/ruuvitag-sensor-protocol/internal/logging"
)

var (
	cfgFile string
	logger  *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:          "ruuvitag-sensor-protocol",
	Short:        "Decoder for RuuviTag sensor broadcasts and Ruuvi Gateway messages",
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	logger = slog.Default()
	cobra.OnInitialize(initConfig, initLogger)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.ruuvitag-sensor-protocol.toml)")
	rootCmd.PersistentFlags().String("logging.level", "info", "log level")
	rootCmd.PersistentFlags().Bool("logging.json", false, "write logs as JSON")
	cobra.CheckErr(viper.BindPFlags(rootCmd.PersistentFlags()))
}

func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath("/etc/ruuvitag-sensor-protocol")
		viper.AddConfigPath("$HOME/.ruuvitag-sensor-protocol")
		viper.SetConfigName("config")
		viper.SetConfigType("toml")
	}
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	if err := viper.ReadInConfig(); err == nil {
		logger.LogAttrs(nil, slog.LevelInfo, "Using config file", slog.String("config", viper.ConfigFileUsed()))
	}
}

func initLogger() {
	l, err := logging.New(viper.GetString("logging.level"), viper.GetBool("logging.json"))
	cobra.CheckErr(err)
	logger = l
}
