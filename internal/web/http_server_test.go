package web

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickframe/quickframe/internal/state"
)

func TestHTTPServerStartStop(t *testing.T) {
	store := state.NewStore()
	store.SetPhase(state.RUNNING)

	srv := NewHTTPServer(ServerConfig{ListenAddr: "127.0.0.1:0"})
	srv.Deps = APIV1Deps{Status: store}
	require.NoError(t, srv.Start(context.Background()))
	defer func() { _ = srv.Stop() }()

	resp, err := http.Get(BrowseURL(srv.Addr) + "api/v1/status")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `"phase":"running"`)

	require.NoError(t, srv.Stop())
	assert.NoError(t, srv.Stop())
	assert.Error(t, srv.Start(context.Background()))
}

func TestServerConfigFromEnv(t *testing.T) {
	t.Setenv(EnvListenAddr, "")
	t.Setenv(EnvDevMode, "")
	cfg, err := DefaultServerConfigFromEnv(":8080")
	require.NoError(t, err)
	assert.Equal(t, ServerConfig{ListenAddr: ":8080"}, cfg)

	t.Setenv(EnvListenAddr, ":9000")
	t.Setenv(EnvDevMode, "true")
	cfg, err = DefaultServerConfigFromEnv(":8080")
	require.NoError(t, err)
	assert.Equal(t, ServerConfig{ListenAddr: ":9000", DevMode: true}, cfg)

	t.Setenv(EnvDevMode, "maybe")
	_, err = DefaultServerConfigFromEnv(":8080")
	assert.Error(t, err)
}

func TestBrowseURL(t *testing.T) {
	assert.Equal(t, "http://127.0.0.1:8080/", BrowseURL(":8080"))
	assert.Equal(t, "http://10.0.0.2:80/", BrowseURL("10.0.0.2:80"))
}

func TestNoopServerSatisfiesServer(t *testing.T) {
	var srv Server = &NoopServer{}
	assert.NoError(t, srv.Start(context.Background()))
	assert.NoError(t, srv.Stop())

	srv = NewHTTPServer(ServerConfig{ListenAddr: "127.0.0.1:0"})
	require.NoError(t, srv.Start(context.Background()))
	assert.NoError(t, srv.Stop())
}
