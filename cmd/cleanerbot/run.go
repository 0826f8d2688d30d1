package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/zeusync/cleanerbot/internal/core/observability/log"
	"github.com/zeusync/cleanerbot/internal/core/protocol"
	"github.com/zeusync/cleanerbot/internal/core/robot"
	"github.com/zeusync/cleanerbot/internal/core/world"
	"github.com/zeusync/cleanerbot/internal/injector"
)

type runOptions struct {
	addr      string
	transport string
	trace     bool
	poll      time.Duration
	step      float64
	turn      float64
}

func newRunCmd(a *app) *cobra.Command {
	o := runOptions{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Connect to the visualizer and drive the robot with the keyboard",
		Long: "Connect to the visualizer, draw the room and drive the robot: " +
			"w/s move forward/backward, a/d turn left/right, q quits.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			w, cleanup, err := o.connect(cmd.Context(), a.logger)
			if err != nil {
				return err
			}
			defer cleanup()
			defer func() {
				if err := w.Close(); err != nil {
					a.logger.Warn("closing visualizer connection", log.Error(err))
				}
			}()

			if err := w.SetRoom(a.room); err != nil {
				return err
			}
			r := robot.New(w, a.robotOptions()...)
			if err := r.Show(); err != nil {
				return err
			}
			return drive(cmd.Context(), w, r, o, a.logger)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&o.addr, "addr", protocol.DefaultAddress(), "visualizer address (host:port, or ws:// url)")
	flags.StringVar(&o.transport, "transport", "tcp", "visualizer transport: tcp or ws")
	flags.BoolVar(&o.trace, "trace", false, "log every command exchanged with the visualizer")
	flags.DurationVar(&o.poll, "poll", 100*time.Millisecond, "key polling interval")
	flags.Float64Var(&o.step, "step", 0.1, "distance per move in meters")
	flags.Float64Var(&o.turn, "turn", 15, "angle per turn in degrees")
	return cmd
}

// connect returns the world and a cleanup to run once the world is closed.
func (o runOptions) connect(ctx context.Context, logger *log.Logger) (*world.World, func(), error) {
	cfg := protocol.DefaultConfig()
	noop := func() {}

	switch o.transport {
	case "tcp":
		if !o.trace {
			return injector.InitializeWorld(ctx, o.addr, cfg, logger)
		}
		transport, err := protocol.DialTCP(ctx, o.addr, cfg)
		if err != nil {
			return nil, nil, err
		}
		w, err := o.newWorld(transport, logger)
		return w, noop, err
	case "ws":
		transport, err := protocol.DialWebSocket(ctx, o.addr, cfg)
		if err != nil {
			return nil, nil, err
		}
		w, err := o.newWorld(transport, logger)
		return w, noop, err
	default:
		return nil, nil, fmt.Errorf("unknown transport %q", o.transport)
	}
}

func (o runOptions) newWorld(transport protocol.Transport, logger *log.Logger) (*world.World, error) {
	client := protocol.NewClient(transport, logger)
	client.SetTrace(o.trace)
	w, err := world.New(client, logger)
	if err != nil {
		_ = transport.Close()
		return nil, err
	}
	return w, nil
}

// drive polls the visualizer for keys and moves the robot until q is
// pressed or ctx is done. The status line shows the current readings.
func drive(ctx context.Context, w *world.World, r *robot.Robot, o runOptions, logger log.Log) error {
	ticker := time.NewTicker(o.poll)
	defer ticker.Stop()

	if err := showReadings(w, r); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		key, err := w.Key()
		if err != nil {
			return err
		}

		switch key {
		case "":
			continue
		case "q":
			logger.Info("quit requested")
			return nil
		case "w":
			err = r.MoveMeters(o.step)
		case "s":
			err = r.MoveMeters(-o.step)
		case "a":
			err = r.RotateDegrees(o.turn)
		case "d":
			err = r.RotateDegrees(-o.turn)
		default:
			logger.Debug("ignoring key", log.String("key", key))
			continue
		}
		if err != nil {
			return err
		}
		if err := showReadings(w, r); err != nil {
			return err
		}
	}
}

func showReadings(w *world.World, r *robot.Robot) error {
	s := r.Sense()
	return w.ShowStatus(fmt.Sprintf("front %s  left %s  right %s",
		formatReading(s.Front), formatReading(s.Left), formatReading(s.Right)))
}
