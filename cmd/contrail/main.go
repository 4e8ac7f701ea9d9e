package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/contrail/audio"
	"github.com/lixenwraith/contrail/config"
	"github.com/lixenwraith/contrail/engine"
)

var (
	configFlag      = flag.String("config", "", "Path to TOML configuration file")
	debugFlag       = flag.Bool("debug", false, "Write a debug log to logs/contrail.log")
	muteFlag        = flag.Bool("mute", false, "Start with sound muted")
	printConfigFlag = flag.Bool("print-config", false, "Print the effective configuration and exit")
)

func main() {
	flag.Parse()

	cfg := config.Default()
	if *configFlag != "" {
		loaded, err := config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "contrail: %v\n", err)
			os.Exit(2)
		}
		cfg = loaded
	}
	if *printConfigFlag {
		if err := cfg.Write(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "contrail: %v\n", err)
			os.Exit(1)
		}
		return
	}

	log, logFile := setupLogging(logDir, *debugFlag)
	err := run(cfg, log)
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "contrail: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, log zerolog.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "create screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "init screen")
	}
	defer screen.Fini()

	// Panic Recovery: restore the terminal before the stack is printed
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mCONTRAIL CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	screen.EnableMouse(tcell.MouseButtonEvents | tcell.MouseDragEvents)
	screen.HideCursor()

	sound := audio.NewSoundManager(log)
	if cfg.Audio.Enabled {
		if err := sound.Initialize(); err != nil {
			log.Warn().Err(err).Msg("continuing without audio")
		}
	}
	defer sound.Cleanup()
	sound.SetMuted(*muteFlag)

	a, err := newApp(screen, cfg, sound, log)
	if err != nil {
		return err
	}
	defer a.close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loop := &engine.Loop{
		Events:    screen,
		Scheduler: engine.NewTickerScheduler(cfg.Engine.FrameInterval),
		Clock:     engine.SystemClock{},
		OnEvent:   a.handleEvent,
		OnFrame:   a.frame,
		Metrics:   a.metrics,
		Log:       log,
	}
	log.Info().
		Dur("frame_interval", cfg.Engine.FrameInterval).
		Bool("audio", sound.Enabled()).
		Msg("started")
	return loop.Run(ctx)
}
