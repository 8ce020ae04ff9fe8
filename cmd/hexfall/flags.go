package main

import (
	"flag"

	"github.com/lixenwraith/hexfall/parameter"
)

var (
	configFlag   = flag.String("config", "", "TOML config file")
	envFlag      = flag.String("env", ".env", "dotenv file, ignored when missing")
	debugFlag    = flag.Bool("debug", false, "write logs to logs/hexfall.log")
	strategyFlag = flag.String("strategy", "", "collision strategy: nearest, halfplane, segment")
	capacityFlag = flag.Int("capacity", 0, "particle ring buffer capacity")
	seedFlag     = flag.Int64("seed", 0, "random seed, 0 derives one from the clock")
	fpsFlag      = flag.Int("fps", 0, "frame rate")
	fixedFlag    = flag.Bool("fixed", false, "step with a fixed 1/fps delta instead of wall time")
	muteFlag     = flag.Bool("mute", false, "disable audio")
)

// applyFlags overrides cfg with flags explicitly set on fs; unset flags leave lower layers intact
func applyFlags(fs *flag.FlagSet, cfg *parameter.Config) {
	fs.Visit(func(f *flag.Flag) {
		v := f.Value.(flag.Getter).Get()
		switch f.Name {
		case "strategy":
			cfg.Strategy = v.(string)
		case "capacity":
			cfg.ParticleCapacity = v.(int)
		case "seed":
			cfg.Seed = v.(int64)
		case "fps":
			cfg.FPS = v.(int)
		case "mute":
			cfg.Audio = !v.(bool)
		}
	})
}
