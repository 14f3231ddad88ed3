package grpc

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-game-keeper/internal/logger"
	"github.com/MKhiriev/go-game-keeper/internal/rpc"
	"github.com/MKhiriev/go-game-keeper/internal/service"
	"github.com/MKhiriev/go-game-keeper/internal/utils"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const maxTraceIDLength = 64

// withLogging attaches a per-call logger carrying the trace id and writes
// one access line when the call returns.
func (h *Handler) withLogging(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()

	traceID := firstMetadata(ctx, rpc.TraceIDKey)
	if traceID == "" || len(traceID) > maxTraceIDLength {
		traceID = newTraceID()
	}

	callLogger := h.logger.WithFields(map[string]string{"trace_id": traceID})
	ctx = logger.ContextWithLogger(ctx, callLogger)

	resp, err := handler(ctx, req)

	callLogger.Info().
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Msg("gRPC call")

	return resp, err
}

// withErrorMapping turns service errors into status errors.
func (h *Handler) withErrorMapping(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	resp, err := handler(ctx, req)
	if err == nil {
		return resp, nil
	}

	st := statusFromError(err)
	event := logger.FromContext(ctx).Warn()
	if isServerFault(st.Code()) {
		event = logger.FromContext(ctx).Error()
	}
	event.Err(err).Str("func", info.FullMethod).Str("code", st.Code().String()).Msg("gRPC call failed")

	return nil, st.Err()
}

// withAuth resolves the bearer token of the authorization metadata into the
// caller's user id.
func (h *Handler) withAuth(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	header := firstMetadata(ctx, rpc.AuthorizationKey)
	if header == "" {
		return nil, fmt.Errorf("%w: %w", service.ErrUnauthenticated, ErrEmptyAuthorizationMetadata)
	}

	tokenString, err := utils.ParseBearerToken(header)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", service.ErrUnauthenticated, err)
	}

	token, err := h.services.AuthService.ParseToken(ctx, tokenString)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", service.ErrTokenIsExpiredOrInvalid, err)
	}

	return handler(utils.WithUserID(ctx, token.UserID), req)
}

func firstMetadata(ctx context.Context, key string) string {
	md, found := metadata.FromIncomingContext(ctx)
	if !found {
		return ""
	}
	if values := md.Get(key); len(values) > 0 {
		return values[0]
	}
	return ""
}

func newTraceID() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}
