package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-game-keeper/internal/app"
	"github.com/MKhiriev/go-game-keeper/internal/logger"
	"github.com/MKhiriev/go-game-keeper/internal/utils"
	"github.com/MKhiriev/go-game-keeper/models"
)

func (h *Handler) sendInvite(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	var req models.SendInviteRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.sendInvite").Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	result, err := h.services.RelationshipService.SendInviteByCode(ctx, userID, req.Code, req.ClientCreatedAt)
	if err != nil {
		writeError(w, r, "*Handler.sendInvite", err)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) acceptInvite(w http.ResponseWriter, r *http.Request) {
	h.counterpartCall(w, r, "*Handler.acceptInvite", h.services.RelationshipService.Accept)
}

func (h *Handler) rejectInvite(w http.ResponseWriter, r *http.Request) {
	h.counterpartCall(w, r, "*Handler.rejectInvite", h.services.RelationshipService.Reject)
}

func (h *Handler) removeFriend(w http.ResponseWriter, r *http.Request) {
	h.counterpartCall(w, r, "*Handler.removeFriend", h.services.RelationshipService.Remove)
}

// counterpartCall decodes a CounterpartRequest and runs call for the caller
// and the named friend.
func (h *Handler) counterpartCall(w http.ResponseWriter, r *http.Request, funcName string, call func(ctx context.Context, userID, friendUID string) error) {
	ctx := r.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	var req models.CounterpartRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		logger.FromRequest(r).Err(err).Str("func", funcName).Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	if err := call(ctx, userID, req.FriendUID); err != nil {
		writeError(w, r, funcName, err)
		return
	}

	utils.WriteJSON(w, models.OKResponse{OK: true}, http.StatusOK)
}
