package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"hexball/internal/commands"
	"hexball/internal/engineconfig"
	"hexball/internal/env"
	"hexball/internal/logger"
)

func main() {
	lg := logger.New(logger.LogFilePath)
	if keys, err := env.Load(".env"); err != nil {
		lg.Logf("env: %v", err)
	} else if len(keys) > 0 {
		lg.Logf("env: loaded %v from .env", keys)
	}

	reg := commands.NewRegistry()
	registerRun(reg, lg)
	registerSim(reg, lg)
	registerInit(reg, lg)
	reg.SetDefault("run")

	if err := reg.Execute(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		lg.Log(err.Error())
		fmt.Fprintln(os.Stderr, "usage: hexball [command] [flags]")
		reg.Usage(os.Stderr)
		log.Fatal(err)
	}
}

// configFlags are the overrides shared by every command. Only flags given on the command line
// replace the file's values, so -gravity 0 and -spin 0 switch gravity and rotation off.
type configFlags struct {
	fs        *flag.FlagSet
	path      string
	overrides engineconfig.Config
}

func (c *configFlags) bind(fs *flag.FlagSet) {
	c.fs = fs
	fs.StringVar(&c.path, "config", engineconfig.Path(), "path to the YAML config file")
	fs.IntVar(&c.overrides.Window.FPS, "fps", 0, "tick rate and frame rate (overrides config)")
	fs.Float64Var(&c.overrides.Cage.RotationDegPerSec, "spin", 0, "cage rotation in degrees per second (overrides config)")
	fs.Float64Var(&c.overrides.World.GravityY, "gravity", 0, "vertical gravity in px/s² (overrides config)")
}

// load reads the config file and applies the flag overrides. A broken file is logged and the
// defaults are used instead.
func (c *configFlags) load(lg *logger.Logger) (engineconfig.Config, error) {
	cfg, err := engineconfig.Load(c.path)
	if err != nil {
		lg.Logf("config: %v; using defaults", err)
	}
	if err := engineconfig.Merge(&cfg, c.overrides); err != nil {
		return cfg, err
	}
	c.applyZeros(&cfg)
	return cfg, cfg.Validate()
}

// applyZeros copies flags that were set explicitly to zero; Merge skips zero values.
func (c *configFlags) applyZeros(cfg *engineconfig.Config) {
	if c.fs == nil {
		return
	}
	c.fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "fps":
			cfg.Window.FPS = c.overrides.Window.FPS
		case "spin":
			cfg.Cage.RotationDegPerSec = c.overrides.Cage.RotationDegPerSec
		case "gravity":
			cfg.World.GravityY = c.overrides.World.GravityY
		}
	})
}

func registerInit(reg *commands.Registry, lg *logger.Logger) {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	path := fs.String("config", engineconfig.Path(), "where to write the default config")
	reg.Register("init", "write the default config file", fs, func() error {
		if err := engineconfig.Save(*path, engineconfig.Default()); err != nil {
			return fmt.Errorf("init: %w", err)
		}
		lg.Logf("wrote default config to %s", *path)
		fmt.Println("wrote", *path)
		return nil
	})
}
