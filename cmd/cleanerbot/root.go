package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zeusync/cleanerbot/internal/core/boundary"
	"github.com/zeusync/cleanerbot/internal/core/observability/log"
	"github.com/zeusync/cleanerbot/internal/core/robot"
	"github.com/zeusync/cleanerbot/internal/core/scene"
)

// app carries the state shared by all subcommands once the persistent
// flags have been processed.
type app struct {
	scenePath string
	logLevel  string
	logFile   string

	logger *log.Logger
	scene  *scene.Config
	room   *boundary.Room
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "cleanerbot",
		Short:         "Simulate a vacuum cleaner robot's distance sensors in a room",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup()
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.scenePath, "scene", "s", "scene.yaml", "scene file describing the room")
	flags.StringVar(&a.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	flags.StringVar(&a.logFile, "log-file", "", "also write logs to this rotating file")

	root.AddCommand(newSenseCmd(a), newRunCmd(a))
	return root
}

func (a *app) setup() error {
	a.logger = log.New(log.ParseLevel(a.logLevel), log.Options{
		File:       a.logFile,
		MaxSizeMB:  10,
		MaxBackups: 3,
		MaxAgeDays: 7,
	})

	cfg, err := scene.LoadFile(a.scenePath)
	if err != nil {
		return err
	}
	room, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("build scene %s: %w", a.scenePath, err)
	}

	a.scene = cfg
	a.room = room
	a.logger.Debug("scene loaded", log.String("path", a.scenePath), log.Int("walls", room.Len()))
	return nil
}

// robotOptions places the robot as the scene asks.
func (a *app) robotOptions() []robot.Option {
	r := a.scene.Robot
	opts := []robot.Option{robot.WithDiameter(r.RobotDiameter())}
	if r != nil {
		opts = append(opts, robot.WithPose(r.X, r.Y, r.Heading))
	}
	return opts
}
