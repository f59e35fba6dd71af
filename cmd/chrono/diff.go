//
// chrono
// SPDX-License-Identifier: GPL-3.0
//

package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func newDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <date-1> <date-2>",
		Short: "Print the Duration between two Dates, exact and humanized",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d1, err := parseDateArg(args[0])
			if err != nil {
				return err
			}
			d2, err := parseDateArg(args[1])
			if err != nil {
				return err
			}
			dur := d1.Sub(d2)
			fmt.Println(dur.String())
			fmt.Printf("%s days\n", humanize.Comma(dur.Days))
			return nil
		},
	}
}
