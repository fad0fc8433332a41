package main

import (
	"flag"

	"hexball/internal/commands"
	"hexball/internal/debug"
	"hexball/internal/graphics"
	"hexball/internal/logger"
	"hexball/internal/scene"
	"hexball/internal/sim"
)

func registerRun(reg *commands.Registry, lg *logger.Logger) {
	var cf configFlags
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	cf.bind(fs)
	velocity := fs.Bool("velocity", false, "draw the ball's velocity arrow")

	reg.Register("run", "open a window and animate the cage (default)", fs, func() error {
		cfg, err := cf.load(lg)
		if err != nil {
			return err
		}
		if *velocity {
			cfg.Debug.ShowVelocity = true
		}
		s, err := sim.New(cfg)
		if err != nil {
			return err
		}
		lg.Logf("run: %dx%d at %d FPS, cage %d sides r=%.0f spinning %.0f°/s",
			cfg.Window.Width, cfg.Window.Height, cfg.Window.FPS, cfg.Cage.Sides, cfg.Cage.Radius, cfg.Cage.RotationDegPerSec)

		scn := scene.New(cfg.Debug.ShowVelocity)
		dbg := debug.New(cfg.Debug.ShowFPS, cfg.Debug.ShowStats)
		draw := func() {
			scn.Draw(s.Shapes(), s.World().Bodies())
			dbg.Draw(s.State())
		}
		graphics.Run(cfg.Window, s.Step, draw)

		lg.Logf("run: closed after %d ticks; %v", s.World().Ticks(), s.State())
		return nil
	})
}
