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

func newDurationCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "duration <spec>",
		Short: "Construct a Duration and print its debug, compact and ISO-8601 forms",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			components, err := parseDurationSpec(args[0])
			if err != nil {
				return err
			}
			dur, err := chrono.NewDuration(components)
			if err != nil {
				return err
			}
			fmt.Println(dur.GoString())
			fmt.Println(dur.String())
			fmt.Println(dur.ISOFormat())
			return nil
		},
	}
}
