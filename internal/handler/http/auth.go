package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-game-keeper/internal/app"
	"github.com/MKhiriev/go-game-keeper/internal/logger"
	"github.com/MKhiriev/go-game-keeper/internal/utils"
	"github.com/MKhiriev/go-game-keeper/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var user models.User
	if err := utils.DecodeJSON(r, &user); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.register").Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, user)
	if err != nil {
		writeError(w, r, "*Handler.register", err)
		return
	}

	h.respondWithToken(w, r, "*Handler.register", registeredUser)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var user models.User
	if err := utils.DecodeJSON(r, &user); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.login").Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, user)
	if err != nil {
		writeError(w, r, "*Handler.login", err)
		return
	}

	logger.FromRequest(r).Debug().Str("user_id", foundUser.UserID).Msg("user successfully logged in")

	h.respondWithToken(w, r, "*Handler.login", foundUser)
}

// respondWithToken puts a fresh bearer token into the Authorization header
// and writes the public part of user as the body.
func (h *Handler) respondWithToken(w http.ResponseWriter, r *http.Request, funcName string, user models.User) {
	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		writeError(w, r, funcName, err)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, user.Public(), http.StatusOK)
}

func (h *Handler) friendCode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		logger.FromRequest(r).Error().Str("func", "*Handler.friendCode").Msg("no user ID was given")
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return
	}

	code, err := h.services.AuthService.FriendCode(ctx, userID)
	if err != nil {
		writeError(w, r, "*Handler.friendCode", err)
		return
	}

	utils.WriteJSON(w, code, http.StatusOK)
}
