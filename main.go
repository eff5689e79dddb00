package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/quickframe/quickframe/internal/app"
	"github.com/quickframe/quickframe/internal/app/scenes"
	"github.com/quickframe/quickframe/internal/config"
	"github.com/quickframe/quickframe/internal/frame"
	"github.com/quickframe/quickframe/internal/render"
	"github.com/quickframe/quickframe/internal/render/window"
	"github.com/quickframe/quickframe/internal/state"
	"github.com/quickframe/quickframe/internal/web"
)

const EnvStdioLog = "QUICKFRAME_STDIO_LOG"

func main() {
	defaults, err := web.DefaultServerConfigFromEnv("")
	if err != nil {
		fmt.Println("server config error:", err)
		os.Exit(2)
	}

	// Flags
	backend := flag.String("backend", "window", "display backend: window | fb | headless")
	configPath := flag.String("config", "", "TOML window config file (optional)")
	sceneName := flag.String("scene", "shapes", "scene to run: shapes | bounce")
	width := flag.Int("width", 0, "window width; overrides config and "+config.EnvWidth)
	height := flag.Int("height", 0, "window height; overrides config and "+config.EnvHeight)
	title := flag.String("title", "", "window title; overrides config and "+config.EnvTitle)
	fps := flag.Int("fps", app.DefaultFPS, "frame rate cap; 0 runs unthrottled")
	accumulate := flag.Bool("accumulate-errors", false, "keep draw errors across frames instead of clearing them every frame")
	fbDevice := flag.String("fb", render.DefaultFBDevice, "framebuffer device for -backend fb")
	listenAddr := flag.String("listen", defaults.ListenAddr, "serve a live preview on this address (optional); also configurable via "+web.EnvListenAddr)
	debug := flag.Bool("debug", false, "enable debug logging to ./quickframe-debug.log")
	stdioLog := flag.String("stdio-log", "", "redirect stdout+stderr (including panics) to this file; also configurable via "+EnvStdioLog)
	flag.Parse()

	// Best-effort: redirect all stdout/stderr output (including panic stack traces)
	// to a file so crashes are diagnosable even when the console is left in graphics mode.
	logPath := *stdioLog
	if logPath == "" {
		logPath = os.Getenv(EnvStdioLog)
	}
	if logPath != "" {
		if err := redirectStdIO(logPath); err != nil {
			fmt.Println("stdio log redirect error:", err)
		}
	}

	var logger app.Logger = app.NewConsoleLogger(os.Stderr)
	if *debug {
		f, err := os.OpenFile("./quickframe-debug.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err == nil {
			logger = app.NewFileLogger(f)
			logger.Infof("main", "debug logging enabled")
		} else {
			fmt.Println("debug log open error:", err)
		}
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Errorf("main", "config: %v", err)
		os.Exit(2)
	}
	if *width > 0 {
		cfg.Width = *width
	}
	if *height > 0 {
		cfg.Height = *height
	}
	if *title != "" {
		cfg.Title = *title
	}

	opts := frame.Options{Logger: logger}
	if *accumulate {
		opts.ErrorPolicy = frame.Accumulate
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	run := func(driver render.Driver, frames web.FrameSource) error {
		return runLoop(ctx, driver, frames, cfg, opts, *sceneName, *fps, *listenAddr, logger)
	}

	switch *backend {
	case "window":
		err = window.Run(logger, func(driver render.Driver) error { return run(driver, nil) })
	case "fb":
		driver := render.NewFBDriver(logger)
		driver.Device = *fbDevice
		err = run(driver, nil)
	case "headless":
		driver := render.NewHeadlessDriver()
		err = run(driver, driver)
	default:
		err = fmt.Errorf("unknown backend %q", *backend)
	}

	if err != nil {
		logger.Errorf("main", "%v", err)
		if errors.Is(err, frame.ErrDisplayInit) {
			os.Exit(3)
		}
		os.Exit(1)
	}
}

func runLoop(ctx context.Context, driver render.Driver, frames web.FrameSource, cfg config.Window, opts frame.Options, sceneName string, fps int, listenAddr string, logger app.Logger) error {
	facade, err := frame.Open(driver, cfg, opts)
	if err != nil {
		return err
	}

	store := state.NewStore()
	a := app.New(facade, nil, store)
	a.Logger = logger
	a.FPS = fps

	scene, err := scenes.ByName(sceneName, a)
	if err != nil {
		_ = facade.Close()
		return err
	}
	a.Scene = scene

	var server web.Server = &web.NoopServer{}
	if listenAddr != "" {
		preview := web.NewHTTPServer(web.ServerConfig{ListenAddr: listenAddr})
		preview.Logger = logger
		preview.Deps = web.APIV1Deps{Status: store, Frames: frames, PublicURL: web.BrowseURL(listenAddr)}
		server = preview
	}
	if err := server.Start(ctx); err != nil {
		_ = facade.Close()
		return err
	}
	defer func() { _ = server.Stop() }()

	return a.Run(ctx)
}
