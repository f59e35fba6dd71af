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

func newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <YYYY-MM-DD> <duration-spec>",
		Short: "Add a Duration to a Date (e.g. chrono add 1976-01-31 1mo1d)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseDateArg(args[0])
			if err != nil {
				return err
			}
			components, err := parseDurationSpec(args[1])
			if err != nil {
				return err
			}
			dur, err := chrono.NewDuration(components)
			if err != nil {
				return err
			}
			result, err := d.Add(dur)
			if err != nil {
				return err
			}
			fmt.Println(result.String())
			return nil
		},
	}
}
