package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-game-keeper/internal/app"
	"github.com/MKhiriev/go-game-keeper/internal/logger"
	"github.com/MKhiriev/go-game-keeper/internal/utils"
	"github.com/MKhiriev/go-game-keeper/models"
	"github.com/go-chi/chi/v5"
)

// push stores one record of a client-writable domain.
// POST /api/sync/{domain}/push
func (h *Handler) push(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	var req models.PushRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.push").Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	resp, err := h.services.RemoteSyncService.Push(ctx, userID, domainParam(r), req)
	if err != nil {
		writeError(w, r, "*Handler.push", err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

// deleteRecord writes a tombstone.
// POST /api/sync/{domain}/delete
func (h *Handler) deleteRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	var req models.DeleteRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.deleteRecord").Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	resp, err := h.services.RemoteSyncService.Delete(ctx, userID, domainParam(r), req.ID)
	if err != nil {
		writeError(w, r, "*Handler.deleteRecord", err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

// changes returns the records changed strictly after since.
// GET /api/sync/{domain}/changes?since=RFC3339Nano
func (h *Handler) changes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := utils.GetUserIDFromContext(ctx)

	var since *time.Time
	if raw := r.URL.Query().Get("since"); raw != "" {
		parsed, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			logger.FromRequest(r).Err(err).Str("func", "*Handler.changes").Str("since", raw).Msg("invalid since")
			http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		}
		since = &parsed
	}

	resp, err := h.services.RemoteSyncService.Changes(ctx, userID, domainParam(r), since)
	if err != nil {
		writeError(w, r, "*Handler.changes", err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

func domainParam(r *http.Request) models.Domain {
	return models.Domain(chi.URLParam(r, "domain"))
}
