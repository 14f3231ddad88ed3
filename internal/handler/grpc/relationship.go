package grpc

import (
	"context"

	"github.com/MKhiriev/go-game-keeper/internal/utils"
	"github.com/MKhiriev/go-game-keeper/models"
)

var okResponse = &models.OKResponse{OK: true}

func (h *Handler) SendInviteByCode(ctx context.Context, req *models.SendInviteRequest) (*models.InviteResult, error) {
	userID, _ := utils.GetUserIDFromContext(ctx)

	result, err := h.services.RelationshipService.SendInviteByCode(ctx, userID, req.Code, req.ClientCreatedAt)
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (h *Handler) Accept(ctx context.Context, req *models.CounterpartRequest) (*models.OKResponse, error) {
	return h.counterpartCall(ctx, req, h.services.RelationshipService.Accept)
}

func (h *Handler) Reject(ctx context.Context, req *models.CounterpartRequest) (*models.OKResponse, error) {
	return h.counterpartCall(ctx, req, h.services.RelationshipService.Reject)
}

func (h *Handler) Remove(ctx context.Context, req *models.CounterpartRequest) (*models.OKResponse, error) {
	return h.counterpartCall(ctx, req, h.services.RelationshipService.Remove)
}

func (h *Handler) counterpartCall(ctx context.Context, req *models.CounterpartRequest, call func(ctx context.Context, userID, friendUID string) error) (*models.OKResponse, error) {
	userID, _ := utils.GetUserIDFromContext(ctx)
	if err := call(ctx, userID, req.FriendUID); err != nil {
		return nil, err
	}
	return okResponse, nil
}

// CreateGroup creates a group owned by the caller.
func (h *Handler) CreateGroup(ctx context.Context, req *models.CreateGroupRequest) (*models.Group, error) {
	userID, _ := utils.GetUserIDFromContext(ctx)

	group, err := h.services.GroupService.CreateGroup(ctx, userID, req.Name, req.ClientCreatedAt)
	if err != nil {
		return nil, err
	}

	return &group, nil
}

func (h *Handler) InviteToGroup(ctx context.Context, req *models.GroupInviteRequest) (*models.OKResponse, error) {
	userID, _ := utils.GetUserIDFromContext(ctx)

	if err := h.services.GroupService.InviteToGroup(ctx, userID, req.GroupID, req.FriendUID, req.ClientCreatedAt); err != nil {
		return nil, err
	}
	return okResponse, nil
}

func (h *Handler) AcceptGroupInvite(ctx context.Context, req *models.GroupRequest) (*models.OKResponse, error) {
	return h.groupCall(ctx, req, h.services.GroupService.AcceptGroupInvite)
}

func (h *Handler) RejectGroupInvite(ctx context.Context, req *models.GroupRequest) (*models.OKResponse, error) {
	return h.groupCall(ctx, req, h.services.GroupService.RejectGroupInvite)
}

func (h *Handler) LeaveGroup(ctx context.Context, req *models.GroupRequest) (*models.OKResponse, error) {
	return h.groupCall(ctx, req, h.services.GroupService.LeaveGroup)
}

func (h *Handler) groupCall(ctx context.Context, req *models.GroupRequest, call func(ctx context.Context, userID, groupID string) error) (*models.OKResponse, error) {
	userID, _ := utils.GetUserIDFromContext(ctx)
	if err := call(ctx, userID, req.GroupID); err != nil {
		return nil, err
	}
	return okResponse, nil
}
