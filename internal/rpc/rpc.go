// Package rpc holds the wire contract of the gamekeeper.RelationshipService
// gRPC service: its name, method names and the JSON codec both ends speak.
//
// The messages are the request and response types of the models package,
// so the service is declared by hand instead of generated from a .proto
// file. Importing this package registers the codec with grpc-go.
package rpc

// ServiceName is the fully-qualified gRPC service name.
const ServiceName = "gamekeeper.RelationshipService"

// Method names of [ServiceName].
const (
	MethodSendInviteByCode  = "SendInviteByCode"
	MethodAccept            = "Accept"
	MethodReject            = "Reject"
	MethodRemove            = "Remove"
	MethodCreateGroup       = "CreateGroup"
	MethodInviteToGroup     = "InviteToGroup"
	MethodAcceptGroupInvite = "AcceptGroupInvite"
	MethodRejectGroupInvite = "RejectGroupInvite"
	MethodLeaveGroup        = "LeaveGroup"
)

// Metadata keys read by the server interceptors.
const (
	AuthorizationKey = "authorization"
	TraceIDKey       = "x-trace-id"
)

// FullMethod returns the "/service/method" path of method.
func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}
