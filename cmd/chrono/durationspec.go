//
// chrono
// SPDX-License-Identifier: GPL-3.0
//

package main

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/zerjioang/chrono"
)

var durationTokenRE = regexp.MustCompile(`(-?\d+)(mo|y|w|d|h|m|s)`)

// parseDurationSpec parses a compact duration spec like "1y2mo3d4h5m6s"
// into DurationComponents. Units: y (years), mo (months), w (weeks),
// d (days), h (hours), m (minutes), s (seconds).
func parseDurationSpec(spec string) (chrono.DurationComponents, error) {
	matches := durationTokenRE.FindAllStringSubmatch(spec, -1)
	if matches == nil {
		return chrono.DurationComponents{}, fmt.Errorf("invalid duration spec %q, expected tokens like 1y2mo3d4h5m6s", spec)
	}
	var c chrono.DurationComponents
	for _, m := range matches {
		n, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return chrono.DurationComponents{}, err
		}
		switch m[2] {
		case "y":
			c.Years += n
		case "mo":
			c.Months += n
		case "w":
			c.Weeks += n
		case "d":
			c.Days += n
		case "h":
			c.Hours += n
		case "m":
			c.Minutes += n
		case "s":
			c.Seconds += n
		}
	}
	return c, nil
}
