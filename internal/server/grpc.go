package server

import (
	"context"
	"fmt"
	"net"

	"github.com/MKhiriev/go-game-keeper/internal/config"
	myGRPC "github.com/MKhiriev/go-game-keeper/internal/handler/grpc"
	"github.com/MKhiriev/go-game-keeper/internal/logger"

	"google.golang.org/grpc"
)

type grpcServer struct {
	server   *grpc.Server
	listener net.Listener
	logger   *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) (*grpcServer, error) {
	listener, err := net.Listen("tcp", cfg.GRPCAddress)
	if err != nil {
		return nil, fmt.Errorf("listen gRPC %s: %w", cfg.GRPCAddress, err)
	}

	server := grpc.NewServer(handler.ServerOptions()...)
	handler.Register(server)

	return &grpcServer{
		server:   server,
		listener: listener,
		logger:   logger,
	}, nil
}

func (g *grpcServer) name() string { return "gRPC" }

func (g *grpcServer) addr() net.Addr { return g.listener.Addr() }

func (g *grpcServer) serve() error {
	if err := g.server.Serve(g.listener); err != nil {
		return fmt.Errorf("gRPC server Serve: %w", err)
	}
	return nil
}

// shutdown waits for in-flight calls until ctx expires, then drops them.
func (g *grpcServer) shutdown(ctx context.Context) {
	stopped := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-ctx.Done():
		g.logger.Warn().Str("func", "*grpcServer.shutdown").Msg("graceful stop timed out, closing connections")
		g.server.Stop()
	}
}
