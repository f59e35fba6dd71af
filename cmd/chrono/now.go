//
// chrono
// SPDX-License-Identifier: GPL-3.0
//

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zerjioang/chrono"
)

func newNowCmd() *cobra.Command {
	var zoneName string
	cmd := &cobra.Command{
		Use:   "now",
		Short: "Print the current DateTime",
		RunE: func(cmd *cobra.Command, args []string) error {
			if zoneName == "" {
				zoneName = cfg.DefaultZone
			}
			var zone chrono.Zone
			if zoneName != "" && zoneName != "local" {
				z, err := chrono.LoadZone(zoneName)
				if err != nil {
					return err
				}
				zone = z
			}
			dt, err := chrono.Now(zone)
			if err != nil {
				return err
			}
			fmt.Println(dt.String())
			return nil
		},
	}
	cmd.Flags().StringVar(&zoneName, "zone", "", "IANA zone name, or \"local\" for the Clock's local offset")
	return cmd
}
