package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeAddr(t *testing.T) {
	assert.Equal(t, ":8080", normalizeAddr("8080"))
	assert.Equal(t, ":8080", normalizeAddr(":8080"))
	assert.Equal(t, "", normalizeAddr(""))
}

func TestNewHTTPServer_Limits(t *testing.T) {
	srv := newHTTPServer(":1", http.NotFoundHandler())
	assert.Equal(t, ":1", srv.Addr)
	assert.Equal(t, maxHeaderBytes, srv.MaxHeaderBytes)
	assert.Equal(t, readHeaderTimeout, srv.ReadHeaderTimeout)
	assert.Equal(t, idleTimeout, srv.IdleTimeout)
}

func TestShutdown_BeforeRun(t *testing.T) {
	var s Server
	assert.NoError(t, s.Shutdown(context.Background()))
}

func TestRun_GracefulShutdownReturnsNil(t *testing.T) {
	var s Server
	errc := make(chan error, 1)
	go func() { errc <- s.Run("0", http.NotFoundHandler()) }()

	require.Eventually(t, s.started, time.Second, 10*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, s.Shutdown(ctx))

	select {
	case err := <-errc:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after Shutdown")
	}
}
