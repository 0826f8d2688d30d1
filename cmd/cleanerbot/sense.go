package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zeusync/cleanerbot/internal/core/boundary"
	"github.com/zeusync/cleanerbot/internal/core/robot"
	"github.com/zeusync/cleanerbot/internal/core/world"
)

func newSenseCmd(a *app) *cobra.Command {
	var rays int

	cmd := &cobra.Command{
		Use:   "sense",
		Short: "Print the robot's sensor readings without a visualizer",
		RunE: func(cmd *cobra.Command, _ []string) error {
			w, err := world.New(nil, a.logger)
			if err != nil {
				return err
			}
			if err := w.SetRoom(a.room); err != nil {
				return err
			}

			r := robot.New(w, a.robotOptions()...)
			readings := r.Sense()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "front=%s left=%s right=%s\n",
				formatReading(readings.Front), formatReading(readings.Left), formatReading(readings.Right))

			if rays == 0 {
				return nil
			}
			x, y := r.Position()
			scan, err := w.Scan(cmd.Context(), x, y, r.HeadingRad(), r.Diameter(), rays)
			if err != nil {
				return err
			}
			parts := make([]string, len(scan))
			for i, d := range scan {
				parts[i] = formatReading(d)
			}
			fmt.Fprintf(out, "scan=%s\n", strings.Join(parts, ","))
			return nil
		},
	}

	cmd.Flags().IntVar(&rays, "rays", 0, "additionally sweep this many rays over a full turn")
	return cmd
}

func formatReading(d float64) string {
	if boundary.IsUnbounded(d) {
		return "inf"
	}
	return strconv.FormatFloat(d, 'f', 3, 64)
}
