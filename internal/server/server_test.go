package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-game-keeper/internal/config"
	"github.com/MKhiriev/go-game-keeper/internal/handler"
	myGRPC "github.com/MKhiriev/go-game-keeper/internal/handler/grpc"
	myHTTP "github.com/MKhiriev/go-game-keeper/internal/handler/http"
	"github.com/MKhiriev/go-game-keeper/internal/logger"
	"github.com/MKhiriev/go-game-keeper/internal/rpc"
	"github.com/MKhiriev/go-game-keeper/internal/service"
	"github.com/MKhiriev/go-game-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

func testHandlers() *handler.Handlers {
	services := &service.Services{}
	return &handler.Handlers{
		HTTP: myHTTP.NewHandler(services, "", logger.Nop()),
		GRPC: myGRPC.NewHandler(services, logger.Nop()),
	}
}

func localConfig() config.Server {
	return config.Server{
		HTTPAddress:    "127.0.0.1:0",
		GRPCAddress:    "127.0.0.1:0",
		RequestTimeout: 5 * time.Second,
	}
}

func TestNewServer_NoTransports(t *testing.T) {
	_, err := NewServer(&handler.Handlers{}, config.Server{}, logger.Nop())
	require.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewServer_BusyPort(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	cfg := localConfig()
	cfg.GRPCAddress = busy.Addr().String()

	_, err = NewServer(testHandlers(), cfg, logger.Nop())
	require.Error(t, err)
}

// Оба транспорта поднимаются, отвечают и гаснут по отмене контекста.
func TestServer_RunAndStop(t *testing.T) {
	srv, err := NewServer(testHandlers(), localConfig(), logger.Nop())
	require.NoError(t, err)
	s := srv.(*server)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.run(ctx) }()

	// HTTP
	resp, err := http.Get("http://" + s.httpServer.addr().String() + "/ping")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// gRPC: the service is registered and guarded by the auth interceptor
	conn, err := grpc.NewClient(s.gRPCServer.addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer conn.Close()

	callCtx, callCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer callCancel()
	err = conn.Invoke(callCtx, rpc.FullMethod(rpc.MethodAccept), &models.CounterpartRequest{FriendUID: "u2"}, &models.OKResponse{},
		grpc.CallContentSubtype(rpc.CodecName))
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	cancel()
	select {
	case err = <-done:
		require.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServer_ShutdownIsIdempotent(t *testing.T) {
	srv, err := NewServer(testHandlers(), localConfig(), logger.Nop())
	require.NoError(t, err)

	srv.Shutdown()
	srv.Shutdown()
}
