package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/ping", h.ping)
		r.Get("/api/version", h.getServerVersion)
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/me/code", h.friendCode)

		r.With(h.checkOwner).Get("/api/sync/{domain}/changes", h.changes)
		r.With(h.checkOwner, h.withHashCheck).Post("/api/sync/{domain}/push", h.push)
		r.With(h.checkOwner, h.withHashCheck).Post("/api/sync/{domain}/delete", h.deleteRecord)

		// signed relationship transactions
		r.Group(func(r chi.Router) {
			r.Use(h.withHashCheck)

			r.Post("/api/friends/invite", h.sendInvite)
			r.Post("/api/friends/accept", h.acceptInvite)
			r.Post("/api/friends/reject", h.rejectInvite)
			r.Post("/api/friends/remove", h.removeFriend)

			r.Post("/api/groups", h.createGroup)
			r.Post("/api/groups/{groupID}/invite", h.inviteToGroup)
			r.Post("/api/groups/{groupID}/accept", h.acceptGroupInvite)
			r.Post("/api/groups/{groupID}/reject", h.rejectGroupInvite)
			r.Post("/api/groups/{groupID}/leave", h.leaveGroup)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
