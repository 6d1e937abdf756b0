package main

import (
	"flag"
	"os"
	"runtime/pprof"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/nyoung/checkers/config"
	"github.com/nyoung/checkers/shell"
)

var (
	profilePath = flag.String("profilepath", "", "path for profile")
	configDir   = flag.String("configdir", ".", "directory holding checkers.cfg.json")
)

func main() {
	flag.Parse()

	if *profilePath != "" {
		f, err := os.Create(*profilePath)
		if err != nil {
			log.Fatal().Err(err).Msg("")
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	cfg, err := config.Load(*configDir)
	if err != nil {
		log.Fatal().Err(err).Msg("could not load config")
	}
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	sc := shell.NewShellController(cfg)
	sc.Loop()
}
