//
// chrono
// SPDX-License-Identifier: GPL-3.0
//

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/zerjioang/chrono"
)

func newDateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "date <ordinal|YYYY-MM-DD>",
		Short: "Parse a Date and print it back, alongside its ordinal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseDateArg(args[0])
			if err != nil {
				return err
			}
			fmt.Printf("%s (ordinal %d)\n", d.String(), d.Ordinal())
			return nil
		},
	}
}

func parseDateArg(arg string) (chrono.Date, error) {
	if ordinal, err := strconv.ParseInt(arg, 10, 64); err == nil {
		return chrono.DateFromOrdinal(ordinal)
	}
	return chrono.ParseDate(arg)
}
