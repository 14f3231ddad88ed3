package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-game-keeper/internal/app"
	"github.com/MKhiriev/go-game-keeper/internal/logger"
	"github.com/MKhiriev/go-game-keeper/internal/utils"
	"github.com/MKhiriev/go-game-keeper/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createGroup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	var req models.CreateGroupRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.createGroup").Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	group, err := h.services.GroupService.CreateGroup(ctx, userID, req.Name, req.ClientCreatedAt)
	if err != nil {
		writeError(w, r, "*Handler.createGroup", err)
		return
	}

	utils.WriteJSON(w, group, http.StatusCreated)
}

// inviteToGroup takes the group from the path; a groupId in the body is
// ignored.
func (h *Handler) inviteToGroup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	var req models.GroupInviteRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.inviteToGroup").Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	err := h.services.GroupService.InviteToGroup(ctx, userID, chi.URLParam(r, "groupID"), req.FriendUID, req.ClientCreatedAt)
	if err != nil {
		writeError(w, r, "*Handler.inviteToGroup", err)
		return
	}

	utils.WriteJSON(w, models.OKResponse{OK: true}, http.StatusOK)
}

func (h *Handler) acceptGroupInvite(w http.ResponseWriter, r *http.Request) {
	h.groupCall(w, r, "*Handler.acceptGroupInvite", h.services.GroupService.AcceptGroupInvite)
}

func (h *Handler) rejectGroupInvite(w http.ResponseWriter, r *http.Request) {
	h.groupCall(w, r, "*Handler.rejectGroupInvite", h.services.GroupService.RejectGroupInvite)
}

func (h *Handler) leaveGroup(w http.ResponseWriter, r *http.Request) {
	h.groupCall(w, r, "*Handler.leaveGroup", h.services.GroupService.LeaveGroup)
}

func (h *Handler) groupCall(w http.ResponseWriter, r *http.Request, funcName string, call func(ctx context.Context, userID, groupID string) error) {
	ctx := r.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	if err := call(ctx, userID, chi.URLParam(r, "groupID")); err != nil {
		writeError(w, r, funcName, err)
		return
	}

	utils.WriteJSON(w, models.OKResponse{OK: true}, http.StatusOK)
}
