package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/eco-fighter/audio"
	"github.com/lixenwraith/eco-fighter/config"
	"github.com/lixenwraith/eco-fighter/constants"
	"github.com/lixenwraith/eco-fighter/core"
	"github.com/lixenwraith/eco-fighter/engine"
	"github.com/lixenwraith/eco-fighter/ledger"
	"github.com/lixenwraith/eco-fighter/modes"
	"github.com/lixenwraith/eco-fighter/render"
	"github.com/lixenwraith/eco-fighter/render/renderers"
	"github.com/lixenwraith/eco-fighter/service"
	"github.com/lixenwraith/eco-fighter/status"
	"github.com/lixenwraith/eco-fighter/systems"
)

func main() {
	// Panic Recovery: restore the terminal even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "eco-fighter: %v\n", err)
		os.Exit(2)
	}

	log, logFile := setupLogging(cfg.Debug)
	if logFile != nil {
		defer logFile.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error().Err(err).Msg("run failed")
		fmt.Fprintf(os.Stderr, "eco-fighter: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, log zerolog.Logger) error {
	round, err := service.NewYAMLRounds(cfg.RoundsFile).GetRound(ctx, cfg.RoundID)
	if err != nil {
		return fmt.Errorf("load round: %w", err)
	}

	// Infrastructure services
	audioCfg := audio.DefaultAudioConfig()
	audioCfg.Enabled = cfg.AudioEnabled
	audioCfg.SetMasterVolume(cfg.MasterVolume)

	audioSvc := audio.NewService(log)
	for _, svc := range []service.Service{audioSvc} {
		if err := svc.Init(audioCfg); err != nil {
			return fmt.Errorf("init %s: %w", svc.Name(), err)
		}
		if err := svc.Start(); err != nil {
			return fmt.Errorf("start %s: %w", svc.Name(), err)
		}
		defer svc.Stop()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	var finiOnce sync.Once
	fini := func() { finiOnce.Do(screen.Fini) }
	defer fini()
	core.SetCrashCleanup(fini)

	screen.HideCursor()
	screen.Clear()

	navigator := service.NewLogNavigator(log)
	xp := ledger.New(cfg.AccountID, service.NewYAMLProfiles(cfg.ProfilesFile), log)

	session := engine.NewSession(
		engine.SessionConfig{Round: round, Difficulty: cfg.Difficulty, Seed: cfg.Seed},
		xp,
		systems.NewDefaultSimulator(),
		engine.Collaborators{Navigator: navigator, Ads: service.TimedAd{Duration: cfg.AdDuration}},
		engine.NewPausableClock(),
		log,
	)

	width, height := screen.Size()
	gc := engine.NewGameContext(session, width, height)

	// Player is nil when audio is disabled; keep the interface nil too
	if player := audioSvc.Player(); player != nil {
		gc.SetAudio(player)
		gc.RegisterEventHandler(audio.NewCues(player))
	}

	metrics := status.NewRegistry()
	metrics.Labels.Get(status.KeyRound).Store(round.ID)
	gc.RegisterEventHandler(status.NewCollector(metrics))

	orchestrator := render.NewRenderOrchestrator(screen, width, height)
	renderers.RegisterAll(orchestrator)

	// Terminal events are polled off-loop and serialized through the channel
	events := make(chan tcell.Event, constants.EventChannelSize)
	pollCtx, cancelPoll := context.WithCancel(ctx)
	defer cancelPoll()
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-pollCtx.Done():
				return
			}
		}
	})

	log.Info().
		Str("round", round.ID).
		Str("mode", round.Mode.String()).
		Str("difficulty", cfg.Difficulty.String()).
		Str("session", xp.SessionID().String()).
		Msg("session starting")

	scheduler := engine.NewClockScheduler(constants.FrameInterval, constants.CountdownInterval)
	loop := engine.NewLoop(
		gc,
		scheduler,
		events,
		modes.NewInputHandler(gc, log),
		orchestrator,
		log,
	)
	loopErr := loop.Run(ctx)
	cancelPoll()
	fini()

	frames, seconds := scheduler.Counts()
	metrics.Counters.Get(status.KeyFrames).Store(int64(frames))
	metrics.Counters.Get(status.KeySeconds).Store(int64(seconds))
	log.Info().Dict("status", metrics.Dict()).Msg("session summary")

	earned := 0
	for _, e := range xp.History() {
		earned += e.Amount
	}
	fmt.Printf("Returning to %s with %d XP earned.\n", round.Title, earned)

	if loopErr != nil && !errors.Is(loopErr, context.Canceled) {
		return loopErr
	}
	return nil
}
