package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/lixenwraith/hopper/audio"
	"github.com/lixenwraith/hopper/config"
	"github.com/lixenwraith/hopper/constant"
	"github.com/lixenwraith/hopper/core"
	"github.com/lixenwraith/hopper/engine"
	"github.com/lixenwraith/hopper/entity"
	"github.com/lixenwraith/hopper/input"
	"github.com/lixenwraith/hopper/parameter"
	"github.com/lixenwraith/hopper/render"
	"github.com/lixenwraith/hopper/replay"
	"github.com/lixenwraith/hopper/status"
	"github.com/lixenwraith/hopper/vmath"
)

var (
	configPath = pflag.StringP("config", "c", "", "Config file (default: ./hopper.{toml,json,yaml} if present)")
	listFlag   = pflag.Bool("list", false, "List stored recordings and exit")
)

// defineFlags registers flags that override config keys
func defineFlags(fs *pflag.FlagSet) map[string]*pflag.Flag {
	fs.Bool("debug", false, "Enable file logging")
	fs.String("log-dir", "logs", "Log directory")
	fs.String("log-level", "info", "Log level: trace, debug, info, warn, error")
	fs.Bool("audio", true, "Play sound cues")
	fs.Float64("volume", 0.5, "Master volume in [0,1]")
	fs.Int("hold-frames", parameter.DefaultHoldFrames, "Frames a key press counts as held")
	fs.String("jump", "A", "Jump button")
	fs.Bool("cascade", false, "Composite entities also update their child")
	fs.String("db", "hopper.db", "Replay database file")
	fs.String("record", "", "Record the session under this name")
	fs.String("play", "", "Play back the named recording")
	fs.Int("frames", 0, "Run headless for this many frames")
	fs.Bool("metrics", false, "Report OpenTelemetry counters to the global provider")

	return map[string]*pflag.Flag{
		"debug":               fs.Lookup("debug"),
		"logDir":              fs.Lookup("log-dir"),
		"logLevel":            fs.Lookup("log-level"),
		"audio.enabled":       fs.Lookup("audio"),
		"audio.volume":        fs.Lookup("volume"),
		"input.holdFrames":    fs.Lookup("hold-frames"),
		"input.jumpButton":    fs.Lookup("jump"),
		"entity.cascadeChild": fs.Lookup("cascade"),
		"replay.db":           fs.Lookup("db"),
		"replay.record":       fs.Lookup("record"),
		"replay.play":         fs.Lookup("play"),
		"headless.frames":     fs.Lookup("frames"),
		"metrics.enabled":     fs.Lookup("metrics"),
	}
}

func main() {
	// Panic Recovery: restore the terminal even if the loop crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	bindings := defineFlags(pflag.CommandLine)
	pflag.Parse()

	cfg, _, err := config.Load(*configPath, "", bindings)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, logFile := setupLogging(cfg.Debug, cfg.LogDir, cfg.LogLevel)
	if logFile != nil {
		defer logFile.Close()
	}

	if *listFlag {
		if err := listRecordings(cfg, logger); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error().Err(err).Msg("Exited with error")
		fmt.Fprintf(os.Stderr, "hopper: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger zerolog.Logger) error {
	var store *replay.Store
	if cfg.Replay.Record != "" || cfg.Replay.Play != "" {
		s, err := replay.Open(cfg.Replay.DB, logger)
		if err != nil {
			return err
		}
		defer s.Close()
		store = s
	}

	var playback *replay.Player
	if cfg.Replay.Play != "" {
		frames, err := store.Load(cfg.Replay.Play)
		if err != nil {
			return err
		}
		playback = replay.NewPlayer(frames, true)
		logger.Info().Str("name", cfg.Replay.Play).Int("frames", len(frames)).Msg("Playing recording")
	}

	scene, err := buildScene(cfg.Entity.CascadeChild)
	if err != nil {
		return fmt.Errorf("build scene: %w", err)
	}

	env := &entity.Env{
		Screen:     vmath.Vec2F{X: constant.ScreenWidth, Y: constant.ScreenHeight},
		JumpButton: cfg.JumpButton(),
		Log:        logger,
	}

	reg := status.NewRegistry()
	meter := engine.NoopMeter()
	if cfg.Metrics.Enabled {
		meter = engine.Meter()
	}

	loopCfg := engine.LoopConfig{
		Env:        env,
		Log:        logger,
		Status:     reg,
		Meter:      meter,
		FrameLimit: uint64(cfg.Headless.Frames),
	}

	var (
		src      input.Source
		renderer render.Renderer
		vsync    engine.VSync
		recorder *replay.Recorder
		term     *render.TcellRenderer
	)

	headless := cfg.Headless.Frames > 0
	if headless {
		if playback != nil {
			src = playback
		} else {
			src = input.NewScript()
		}
		renderer = render.NewCapture()
		vsync = engine.FreeRun{}
	} else {
		table, err := cfg.KeyTable()
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
		core.SetCrashScreen(screen)
		defer func() {
			core.SetCrashScreen(nil)
			screen.Fini()
		}()
		screen.HideCursor()

		events := make(chan tcell.Event, parameter.InputEventBuffer)
		core.Go(func() { input.PumpEvents(screen, events) })

		keys := input.NewTcellSource(events, table, cfg.Input.HoldFrames)
		keys.OnResize(func() { screen.Sync() })
		if playback != nil {
			src = &watchedPlayback{Player: playback, keys: keys}
		} else {
			src = keys
		}

		term = render.NewTcellRenderer(screen, constant.ScreenWidth, constant.ScreenHeight, reg)
		renderer = term
		ticker := engine.NewTickerVSync(parameter.FrameInterval)
		defer ticker.Stop()
		vsync = ticker

		if cfg.Audio.Enabled {
			sm := newSoundManager(cfg, logger)
			defer sm.Cleanup()
			loopCfg.OnEvents = soundCues(sm)
		}
	}

	if cfg.Replay.Record != "" {
		recorder = replay.NewRecorder(src)
		src = recorder
	}

	loop, err := engine.NewLoop(src, renderer, scene, loopCfg)
	if err != nil {
		return err
	}
	if term != nil {
		assignSprites(term, loop)
	}

	logger.Info().
		Bool("headless", headless).
		Bool("cascade", cfg.Entity.CascadeChild).
		Str("jump", cfg.JumpButton().String()).
		Msg("Starting loop")

	frames, runErr := loop.Run(ctx, vsync)
	logger.Info().Uint64("frames", frames).Msg("Loop stopped")

	if recorder != nil {
		if err := store.Save(cfg.Replay.Record, recorder.Frames()); err != nil {
			return errors.Join(runErr, err)
		}
	}
	if runErr != nil {
		return runErr
	}

	if headless {
		printSummary(loop, frames)
	}
	return nil
}

// watchedPlayback plays a recording while still honoring terminal quit keys
type watchedPlayback struct {
	*replay.Player
	keys *input.TcellSource
}

func (w *watchedPlayback) ReadHeld() input.ButtonSet {
	w.keys.ReadHeld()
	return w.Player.ReadHeld()
}

func (w *watchedPlayback) QuitRequested() bool {
	return w.keys.QuitRequested() || w.Player.QuitRequested()
}

func newSoundManager(cfg *config.Config, logger zerolog.Logger) *audio.SoundManager {
	acfg := audio.DefaultAudioConfig()
	acfg.MasterVolume = cfg.Audio.Volume
	sm := audio.NewSoundManager(acfg)
	if err := sm.Initialize(); err != nil {
		// Non-fatal, the game runs without sound
		logger.Warn().Err(err).Msg("Audio initialization failed, continuing without audio")
	}
	return sm
}

func soundCues(sm *audio.SoundManager) func(*entity.Entity, entity.Events) {
	return func(e *entity.Entity, ev entity.Events) {
		if ev&entity.EventJumped != 0 {
			sm.Play(audio.SoundJump)
		}
		if ev&entity.EventLanded != 0 {
			sm.Play(audio.SoundLand)
		}
	}
}

func printSummary(l *engine.Loop, frames uint64) {
	fmt.Printf("frames: %d\n", frames)
	for _, e := range l.Entities() {
		k := e.Kinetic()
		if k == nil {
			continue
		}
		fmt.Printf("%-8s id=%d pos=(%.2f, %.2f) vel=(%.2f, %.2f)\n",
			e.Name, e.ID, k.Pos.X, k.Pos.Y, k.Vel.X, k.Vel.Y)
	}
}

func listRecordings(cfg *config.Config, logger zerolog.Logger) error {
	store, err := replay.Open(cfg.Replay.DB, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	recs, err := store.List()
	if err != nil {
		return err
	}
	for _, r := range recs {
		fmt.Printf("%-24s %6d frames  %s\n", r.Name, r.FrameCount, r.CreatedAt.Format("2006-01-02 15:04:05"))
	}
	return nil
}
