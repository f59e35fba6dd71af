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

func newClockCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clock",
		Short: "Print the selected Clock backend, its precision and UUID tag",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := chrono.NewClock()
			if err != nil {
				return err
			}
			log.WithField("clock_id", c.ID().String()).Debug("clock command invoked")
			fmt.Printf("backend=%s precision=%d id=%s reading=%s\n",
				c.Backend(), c.Precision(), c.ID(), c.ReadUTC())
			return nil
		},
	}
}
