package main

import (
	"context"
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
	"github.com/quickframe/quickframe/internal/state"
	"github.com/quickframe/quickframe/internal/web"
)

func main() {
	defaults, err := web.DefaultServerConfigFromEnv(":8080")
	if err != nil {
		fmt.Println("server config error:", err)
		os.Exit(2)
	}

	listenAddr := flag.String("listen", defaults.ListenAddr, "http listen address; also configurable via "+web.EnvListenAddr)
	devMode := flag.Bool("dev", defaults.DevMode, "enable dev mode; also configurable via "+web.EnvDevMode)
	staticDir := flag.String("static-dir", "", "serve the preview UI from this directory (optional); when empty, the embedded page is served")
	configPath := flag.String("config", "", "TOML window config file (optional)")
	sceneName := flag.String("scene", "bounce", "scene to run: shapes | bounce")
	fps := flag.Int("fps", app.DefaultFPS, "frame rate cap")
	noQR := flag.Bool("no-qr", false, "do not print the preview URL as a QR code")
	flag.Parse()

	logger := app.NewConsoleLogger(os.Stderr)

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Println("config error:", err)
		os.Exit(2)
	}

	processCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	headless := render.NewHeadlessDriver()
	control := NewSimControl(headless)

	facade, err := frame.Open(control, cfg, frame.Options{Logger: logger})
	if err != nil {
		fmt.Println("display init error:", err)
		os.Exit(1)
	}

	store := state.NewStore()
	a := app.New(facade, nil, store)
	a.Logger = logger
	a.FPS = *fps
	// Only a quit event ends the simulator.
	a.QuitKey = render.KeyUnknown

	scene, err := scenes.ByName(*sceneName, a)
	if err != nil {
		_ = facade.Close()
		fmt.Println("scene error:", err)
		os.Exit(2)
	}
	a.Scene = scene

	server := web.NewHTTPServer(web.ServerConfig{ListenAddr: *listenAddr, DevMode: *devMode})
	server.Logger = logger
	mux := web.NewDefaultMux(*staticDir, web.APIV1Config{Deps: web.APIV1Deps{
		Status:    store,
		Frames:    headless,
		Events:    control,
		PublicURL: web.BrowseURL(*listenAddr),
	}})
	registerSimEndpoints(mux, control)
	server.Handler = mux

	if err := server.Start(processCtx); err != nil {
		_ = facade.Close()
		fmt.Println("server start error:", err)
		os.Exit(1)
	}

	url := web.BrowseURL(server.Addr)
	fmt.Println("quickframe simulator listening on", server.Addr)
	fmt.Println("Scene:", *sceneName)
	fmt.Println("Preview:", url)
	if !*noQR {
		if qr, err := web.PreviewQR(url); err == nil {
			fmt.Print(qr)
		}
	}

	runErr := a.Run(processCtx)
	_ = server.Stop()
	if runErr != nil {
		fmt.Println("run error:", runErr)
		os.Exit(1)
	}
}
