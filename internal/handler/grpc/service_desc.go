package grpc

import (
	"context"

	"github.com/MKhiriev/go-game-keeper/internal/rpc"
	"github.com/MKhiriev/go-game-keeper/models"
	"google.golang.org/grpc"
)

// RelationshipServer is the server API of gamekeeper.RelationshipService.
// The caller is taken from the context, never from the message.
type RelationshipServer interface {
	SendInviteByCode(context.Context, *models.SendInviteRequest) (*models.InviteResult, error)
	Accept(context.Context, *models.CounterpartRequest) (*models.OKResponse, error)
	Reject(context.Context, *models.CounterpartRequest) (*models.OKResponse, error)
	Remove(context.Context, *models.CounterpartRequest) (*models.OKResponse, error)

	CreateGroup(context.Context, *models.CreateGroupRequest) (*models.Group, error)
	InviteToGroup(context.Context, *models.GroupInviteRequest) (*models.OKResponse, error)
	AcceptGroupInvite(context.Context, *models.GroupRequest) (*models.OKResponse, error)
	RejectGroupInvite(context.Context, *models.GroupRequest) (*models.OKResponse, error)
	LeaveGroup(context.Context, *models.GroupRequest) (*models.OKResponse, error)
}

// RelationshipServiceDesc describes gamekeeper.RelationshipService for
// grpc.Server.RegisterService.
var RelationshipServiceDesc = grpc.ServiceDesc{
	ServiceName: rpc.ServiceName,
	HandlerType: (*RelationshipServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryMethod(rpc.MethodSendInviteByCode, RelationshipServer.SendInviteByCode),
		unaryMethod(rpc.MethodAccept, RelationshipServer.Accept),
		unaryMethod(rpc.MethodReject, RelationshipServer.Reject),
		unaryMethod(rpc.MethodRemove, RelationshipServer.Remove),
		unaryMethod(rpc.MethodCreateGroup, RelationshipServer.CreateGroup),
		unaryMethod(rpc.MethodInviteToGroup, RelationshipServer.InviteToGroup),
		unaryMethod(rpc.MethodAcceptGroupInvite, RelationshipServer.AcceptGroupInvite),
		unaryMethod(rpc.MethodRejectGroupInvite, RelationshipServer.RejectGroupInvite),
		unaryMethod(rpc.MethodLeaveGroup, RelationshipServer.LeaveGroup),
	},
	Streams: []grpc.StreamDesc{},
}

// unaryMethod builds the MethodDesc protoc-gen-go-grpc would generate for a
// unary method.
func unaryMethod[Req, Resp any](name string, call func(RelationshipServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}

			server := srv.(RelationshipServer)
			if interceptor == nil {
				return call(server, ctx, in)
			}

			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: rpc.FullMethod(name),
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(server, ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}
