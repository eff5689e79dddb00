package web

import (
	"fmt"
	"os"
	"strconv"
)

const (
	EnvListenAddr = "QUICKFRAME_LISTEN"
	EnvDevMode    = "QUICKFRAME_DEV"
)

// ServerConfig contains settings for the preview server.
//
// The intended defaults differ per binary:
// - quickframe: "" (no server)
// - simulator:  :8080
type ServerConfig struct {
	ListenAddr string
	DevMode    bool
}

func DefaultServerConfigFromEnv(defaultListenAddr string) (ServerConfig, error) {
	listenAddr := os.Getenv(EnvListenAddr)
	if listenAddr == "" {
		listenAddr = defaultListenAddr
	}

	devMode := false
	if raw := os.Getenv(EnvDevMode); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return ServerConfig{}, fmt.Errorf("%s must be a boolean (got %q): %w", EnvDevMode, raw, err)
		}
		devMode = parsed
	}

	return ServerConfig{ListenAddr: listenAddr, DevMode: devMode}, nil
}

// BrowseURL turns a listen address into something a browser can open.
func BrowseURL(addr string) string {
	if addr == "" {
		return "http://127.0.0.1:8080/"
	}
	if addr[0] == ':' {
		return "http://127.0.0.1" + addr + "/"
	}
	return "http://" + addr + "/"
}
