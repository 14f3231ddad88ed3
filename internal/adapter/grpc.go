package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-game-keeper/internal/logger"
	"github.com/MKhiriev/go-game-keeper/internal/rpc"
	"github.com/MKhiriev/go-game-keeper/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// TokenSource yields the bearer token attached to every call.
type TokenSource interface {
	Token() string
}

type grpcRelationshipClient struct {
	conn   grpc.ClientConnInterface
	tokens TokenSource
	logger *logger.Logger
}

// NewGRPCRelationshipClient returns a [RelationshipClient] that calls the
// gamekeeper.RelationshipService over conn with the JSON codec. The token is
// read from tokens on each call, so a later login is picked up.
func NewGRPCRelationshipClient(conn grpc.ClientConnInterface, tokens TokenSource, logger *logger.Logger) RelationshipClient {
	return &grpcRelationshipClient{conn: conn, tokens: tokens, logger: logger}
}

// DialRelationshipService opens a plaintext client connection to address.
// Connecting is lazy; the first call establishes the transport.
func DialRelationshipService(address string) (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(address,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("dial relationship service %s: %w", address, err)
	}
	return conn, nil
}

func (g *grpcRelationshipClient) SendInviteByCode(ctx context.Context, req models.SendInviteRequest) (models.InviteResult, error) {
	var result models.InviteResult
	err := g.invoke(ctx, rpc.MethodSendInviteByCode, &req, &result)
	return result, err
}

func (g *grpcRelationshipClient) Accept(ctx context.Context, friendUID string) error {
	return g.invoke(ctx, rpc.MethodAccept, &models.CounterpartRequest{FriendUID: friendUID}, &models.OKResponse{})
}

func (g *grpcRelationshipClient) Reject(ctx context.Context, friendUID string) error {
	return g.invoke(ctx, rpc.MethodReject, &models.CounterpartRequest{FriendUID: friendUID}, &models.OKResponse{})
}

func (g *grpcRelationshipClient) Remove(ctx context.Context, friendUID string) error {
	return g.invoke(ctx, rpc.MethodRemove, &models.CounterpartRequest{FriendUID: friendUID}, &models.OKResponse{})
}

func (g *grpcRelationshipClient) CreateGroup(ctx context.Context, req models.CreateGroupRequest) (models.Group, error) {
	var group models.Group
	err := g.invoke(ctx, rpc.MethodCreateGroup, &req, &group)
	return group, err
}

func (g *grpcRelationshipClient) InviteToGroup(ctx context.Context, req models.GroupInviteRequest) error {
	return g.invoke(ctx, rpc.MethodInviteToGroup, &req, &models.OKResponse{})
}

func (g *grpcRelationshipClient) AcceptGroupInvite(ctx context.Context, groupID string) error {
	return g.invoke(ctx, rpc.MethodAcceptGroupInvite, &models.GroupRequest{GroupID: groupID}, &models.OKResponse{})
}

func (g *grpcRelationshipClient) RejectGroupInvite(ctx context.Context, groupID string) error {
	return g.invoke(ctx, rpc.MethodRejectGroupInvite, &models.GroupRequest{GroupID: groupID}, &models.OKResponse{})
}

func (g *grpcRelationshipClient) LeaveGroup(ctx context.Context, groupID string) error {
	return g.invoke(ctx, rpc.MethodLeaveGroup, &models.GroupRequest{GroupID: groupID}, &models.OKResponse{})
}

func (g *grpcRelationshipClient) invoke(ctx context.Context, method string, in, out any) error {
	if token := g.tokens.Token(); token != "" {
		ctx = metadata.AppendToOutgoingContext(ctx, rpc.AuthorizationKey, "Bearer "+token)
	}

	err := g.conn.Invoke(ctx, rpc.FullMethod(method), in, out, grpc.CallContentSubtype(rpc.CodecName))
	if err != nil {
		g.logger.Debug().Err(err).Str("func", "*grpcRelationshipClient.invoke").Str("method", method).Msg("gRPC call failed")
		return mapGRPCError(method, err)
	}
	return nil
}

// mapGRPCError converts a status error into the same sentinels the REST
// adapter returns, so callers do not care which transport was used.
func mapGRPCError(method string, err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return mapTransportError(method, err)
	}

	switch st.Code() {
	case codes.Canceled:
		return fmt.Errorf("%s: %w", method, context.Canceled)
	case codes.Unauthenticated:
		return fmt.Errorf("%w: %s", ErrUnauthorized, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded, codes.ResourceExhausted, codes.Aborted, codes.Internal, codes.Unknown:
		return fmt.Errorf("%w: %s: %s: %s", ErrTransientNetwork, method, st.Code(), st.Message())
	case codes.InvalidArgument:
		return NewRejectedError("", st.Message(), ErrBadRequest)
	case codes.PermissionDenied:
		return NewRejectedError("", st.Message(), ErrForbidden)
	case codes.NotFound:
		return NewRejectedError("", st.Message(), ErrNotFound)
	case codes.FailedPrecondition, codes.AlreadyExists:
		return NewRejectedError("", st.Message(), ErrConflict)
	default:
		return NewRejectedError("", fmt.Sprintf("%s: %s", st.Code(), st.Message()), nil)
	}
}

type serverAdapter struct {
	RemoteStore
	AuthClient
	RelationshipClient
	ReachabilityChecker
}

// WithRelationshipClient returns server with its relationship calls routed
// through rel.
func WithRelationshipClient(server ServerAdapter, rel RelationshipClient) ServerAdapter {
	return &serverAdapter{
		RemoteStore:         server,
		AuthClient:          server,
		RelationshipClient:  rel,
		ReachabilityChecker: server,
	}
}
