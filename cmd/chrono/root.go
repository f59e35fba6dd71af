//
// chrono
// SPDX-License-Identifier: GPL-3.0
//

// Command chrono is a thin cobra-based CLI exercising chrono's calendar
// engine: reading the Clock, formatting and parsing Dates, adding and
// diffing Durations, and converting between zones.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zerjioang/chrono"
	"github.com/zerjioang/chrono/internal/logging"
)

var (
	configPath string
	cfg        chrono.Config
	log        = logging.Base("cli")
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "chrono",
		Short: "A nanosecond-resolution calendar and duration toolkit",
		Long: `chrono is a small CLI over the chrono module: reading the process
Clock, formatting and parsing Dates, adding and diffing Durations, and
converting DateTimes between zones.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := chrono.LoadConfig(configPath)
			if err != nil {
				return err
			}
			cfg = loaded
			if err := logging.SetLevel(cfg.LogLevel); err != nil {
				return err
			}
			chrono.SetPreferredBackend(cfg.PreferredBackend)
			log.WithField("args", args).Debug("resolved command arguments")
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")

	rootCmd.AddCommand(newNowCmd())
	rootCmd.AddCommand(newDateCmd())
	rootCmd.AddCommand(newAddCmd())
	rootCmd.AddCommand(newDiffCmd())
	rootCmd.AddCommand(newDurationCmd())
	rootCmd.AddCommand(newClockCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
