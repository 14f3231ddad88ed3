package grpc

import (
	"github.com/MKhiriev/go-game-keeper/internal/logger"
	"github.com/MKhiriev/go-game-keeper/internal/service"
	"google.golang.org/grpc"
)

// Handler is the root gRPC transport handler. It implements
// [RelationshipServer] on top of the relationship and group services.
type Handler struct {
	services *service.Services
	logger   *logger.Logger
}

var _ RelationshipServer = (*Handler)(nil)

// NewHandler constructs a [Handler] with the provided service container and
// logger.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}

// ServerOptions returns the interceptor chain every call goes through:
// logging first, then error mapping, then authentication.
func (h *Handler) ServerOptions() []grpc.ServerOption {
	return []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(h.withLogging, h.withErrorMapping, h.withAuth),
	}
}

// Register attaches the relationship service to s.
func (h *Handler) Register(s grpc.ServiceRegistrar) {
	s.RegisterService(&RelationshipServiceDesc, h)
}
