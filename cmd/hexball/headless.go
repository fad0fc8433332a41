package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"hexball/internal/commands"
	"hexball/internal/logger"
	"hexball/internal/sim"
)

func registerSim(reg *commands.Registry, lg *logger.Logger) {
	var cf configFlags
	fs := flag.NewFlagSet("sim", flag.ContinueOnError)
	cf.bind(fs)
	ticks := fs.Int("ticks", 600, "number of ticks to simulate")
	every := fs.Int("every", 60, "print the state every N ticks (0: only at the end)")

	reg.Register("sim", "step the simulation without a window and print the ball state", fs, func() error {
		cfg, err := cf.load(lg)
		if err != nil {
			return err
		}
		s, err := sim.New(cfg)
		if err != nil {
			return err
		}
		ball := s.Ball()
		lg.Logf("sim: %d ticks at dt=%.5fs, gravity %v, ball m=%.2f I=%.2f, cage %d sides",
			*ticks, s.Dt(), s.World().Gravity(), ball.Mass(), ball.Moment(), s.Config().Cage.Sides)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		contained := s.Contained()
		err = s.Run(ctx, *ticks, 1, func(st sim.State) {
			if contained && !st.Contained {
				lg.Logf("sim: ball left the cage at tick %d (%v)", st.Tick, st.Position)
			}
			contained = st.Contained
			if (*every > 0 && st.Tick%uint64(*every) == 0) || st.Tick == uint64(*ticks) {
				fmt.Println(st)
			}
		})
		if errors.Is(err, context.Canceled) {
			lg.Logf("sim: interrupted at tick %d", s.World().Ticks())
			return nil
		}
		if err != nil {
			return err
		}
		lg.Logf("sim: done; %v", s.State())
		return nil
	})
}
