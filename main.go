package main

import (
	"os"

	"github.com/niktheblak/ruuvitag-sensor-protocol/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
