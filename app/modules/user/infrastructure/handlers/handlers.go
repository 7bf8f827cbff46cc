package userhandlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	userservice "github.com/tripsit/tripsit-api/app/modules/user/application"
	userdb "github.com/tripsit/tripsit-api/app/modules/user/infrastructure/repositories"
	"github.com/tripsit/tripsit-api/internal/httpapi"
)

// UserHandlers exposes the user service over HTTP.
type UserHandlers struct {
	service userservice.Service
	logger  *slog.Logger
	now     func() time.Time
}

func NewUserHandlers(service userservice.Service, logger *slog.Logger) *UserHandlers {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserHandlers{service: service, logger: logger, now: time.Now}
}

// Routes mounts the user endpoints on r.
func (h *UserHandlers) Routes(r chi.Router) {
	r.Route("/users", func(r chi.Router) {
		r.Get("/", h.FindUsers)
		r.Post("/", h.CreateUser)
		r.Route("/{userID}", func(r chi.Router) {
			r.Get("/", h.GetUser)
			r.Patch("/", h.UpdateUser)
			r.Get("/discord", h.GetDiscordProfile)
			r.Get("/actions", h.ListUserActions)
			r.Post("/actions", h.CreateUserAction)
			r.Get("/tickets", h.ListUserTickets)
			r.Post("/tickets", h.CreateUserTicket)
			r.Get("/experience", h.ListUserExperience)
			r.Post("/experience", h.CreateUserExperience)
		})
	})
	r.Route("/user-actions/{actionID}", func(r chi.Router) {
		r.Get("/", h.GetUserAction)
		r.Patch("/", h.UpdateUserAction)
		r.Delete("/", h.DeleteUserAction)
		r.Post("/repeal", h.RepealUserAction)
	})
	r.Route("/user-tickets/{ticketID}", func(r chi.Router) {
		r.Get("/", h.GetUserTicket)
		r.Patch("/", h.UpdateUserTicket)
		r.Delete("/", h.DeleteUserTicket)
	})
	r.Patch("/user-experience/{experienceID}", h.UpdateUserExperience)
}

func (h *UserHandlers) fail(w http.ResponseWriter, r *http.Request, err error) {
	httpapi.WriteError(w, r, h.logger, err)
}

func (h *UserHandlers) CreateUser(w http.ResponseWriter, r *http.Request) {
	var in userservice.CreateUserInput
	if err := httpapi.Decode(r, &in); err != nil {
		h.fail(w, r, err)
		return
	}
	user, err := h.service.CreateUser(r.Context(), in)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusCreated, user)
}

func (h *UserHandlers) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := httpapi.URLUUID(r, "userID")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	user, err := h.service.GetUser(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, user)
}

// FindUsers filters on any of email, username, discordId, ircId, matrixId
// and lastfmUsername, paged with offset and limit.
func (h *UserHandlers) FindUsers(w http.ResponseWriter, r *http.Request) {
	offset, err := httpapi.QueryInt(r, "offset", 0)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	limit, err := httpapi.QueryInt(r, "limit", 0)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	filter := userdb.UserFilter{
		Email:          httpapi.QueryString(r, "email"),
		Username:       httpapi.QueryString(r, "username"),
		DiscordID:      httpapi.QueryString(r, "discordId"),
		IRCID:          httpapi.QueryString(r, "ircId"),
		MatrixID:       httpapi.QueryString(r, "matrixId"),
		LastFMUsername: httpapi.QueryString(r, "lastfmUsername"),
		Offset:         offset,
		Limit:          limit,
	}
	users, err := h.service.FindUsers(r.Context(), filter)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, users)
}

func (h *UserHandlers) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := httpapi.URLUUID(r, "userID")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var in userservice.UserUpdate
	if err := httpapi.Decode(r, &in); err != nil {
		h.fail(w, r, err)
		return
	}
	user, err := h.service.UpdateUser(r.Context(), id, in)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, user)
}

func (h *UserHandlers) GetDiscordProfile(w http.ResponseWriter, r *http.Request) {
	id, err := httpapi.URLUUID(r, "userID")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	profile, err := h.service.GetDiscordProfile(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, profile)
}
