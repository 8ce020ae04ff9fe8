package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/lixenwraith/hexfall/audio"
	"github.com/lixenwraith/hexfall/core"
	"github.com/lixenwraith/hexfall/engine"
	"github.com/lixenwraith/hexfall/input"
	"github.com/lixenwraith/hexfall/parameter"
	"github.com/lixenwraith/hexfall/render"
)

func main() {
	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "hexfall needs an interactive terminal")
		os.Exit(1)
	}

	cfg, err := parameter.Load(*configFlag, *envFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	applyFlags(flag.CommandLine, cfg)
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	log.Printf("starting: strategy=%s capacity=%d seed=%d fps=%d workers=%d",
		cfg.Strategy, cfg.ParticleCapacity, cfg.Seed, cfg.FPS, cfg.Workers)

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "hexfall: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *parameter.Config) error {
	state, err := engine.New(cfg)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	// Panic Recovery: restore the terminal before printing the crash
	core.RegisterCrashScreen(screen)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	screen.HideCursor()
	renderer := render.NewTerminalRenderer(screen, render.WorldRect(cfg.Width, cfg.Height))

	sound := audio.NewSoundManager(cfg.Volume)
	noAudio := !cfg.Audio
	if cfg.Audio {
		if err := sound.Initialize(); err != nil {
			log.Printf("audio initialization failed: %v (continuing without audio)", err)
			noAudio = true
		} else {
			defer sound.Cleanup()
		}
	}

	keys := input.DefaultKeyTable()
	hold := input.NewHoldTracker(cfg.HoldWindow())

	events := make(chan tcell.Event, 256)
	done := make(chan struct{})
	defer close(done)
	// Input polling recovers panics so the terminal is restored
	core.Go(func() { pollEvents(screen, events, done) })

	interval := time.Second / time.Duration(cfg.FPS)
	fixedDelta := interval.Seconds()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var (
		snap  engine.Snapshot
		meter fpsMeter
		last  = time.Now()
	)

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch action := keys.Lookup(ev); action {
				case input.ActionNone:
				case input.ActionQuit:
					log.Printf("quit after %d steps", state.Tick)
					return nil
				case input.ActionToggleMute:
					log.Printf("audio muted=%v", sound.ToggleMute())
				default:
					hold.Press(action, time.Now())
				}
			case *tcell.EventResize:
				screen.Sync()
				renderer.Resize()
			}

		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			fps := meter.Tick(dt)
			if *fixedFlag {
				dt = fixedDelta
			}

			report := engine.Step(state, dt, hold.Intent(now))
			if report.Reset {
				log.Printf("reset at step %d", state.Tick)
			}
			if report.Toggled {
				log.Printf("palette confetti=%v after %d presses", state.Confetti(), state.TogglePresses())
			}
			playCues(sound, report, state.Confetti())

			state.SnapshotInto(&snap)
			renderer.RenderFrame(&snap, render.Status{
				FPS:      fps,
				Strategy: cfg.Strategy,
				Muted:    sound.Muted(),
				NoAudio:  noAudio,
			})
		}
	}
}
