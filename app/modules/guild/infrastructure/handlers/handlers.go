package guildhandlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	guildservice "github.com/tripsit/tripsit-api/app/modules/guild/application"
	"github.com/tripsit/tripsit-api/internal/httpapi"
)

// GuildHandlers exposes guilds, reaction roles, feeds, bridges and appeals.
type GuildHandlers struct {
	service guildservice.Service
	logger  *slog.Logger
}

func NewGuildHandlers(service guildservice.Service, logger *slog.Logger) *GuildHandlers {
	if logger == nil {
		logger = slog.Default()
	}
	return &GuildHandlers{service: service, logger: logger}
}

func (h *GuildHandlers) Routes(r chi.Router) {
	r.Route("/guilds", func(r chi.Router) {
		r.Get("/", h.ListGuilds)
		r.Route("/{guildID}", func(r chi.Router) {
			r.Get("/", h.GetGuild)
			r.Put("/", h.UpsertGuild)
			r.Patch("/", h.UpdateGuild)
			r.Get("/reaction-roles", h.ListReactionRoles)
			r.Post("/reaction-roles", h.CreateReactionRole)
			r.Get("/rss", h.ListGuildRss)
			r.Post("/rss", h.CreateGuildRss)
			r.Get("/appeals", h.ListAppeals)
			r.Post("/appeals", h.CreateAppeal)
		})
	})
	r.Delete("/reaction-roles/{roleID}", h.DeleteReactionRole)
	r.Route("/guild-rss/{rssID}", func(r chi.Router) {
		r.Post("/refresh", h.RefreshGuildRss)
		r.Delete("/", h.DeleteGuildRss)
	})
	r.Route("/bridges", func(r chi.Router) {
		r.Get("/", h.ListBridges)
		r.Post("/", h.CreateBridge)
		r.Route("/{bridgeID}", func(r chi.Router) {
			r.Get("/", h.GetBridge)
			r.Put("/status", h.SetBridgeStatus)
			r.Delete("/", h.DeleteBridge)
		})
	})
	r.Route("/appeals/{appealID}", func(r chi.Router) {
		r.Get("/", h.GetAppeal)
		r.Post("/reminded", h.MarkAppealReminded)
		r.Post("/decision", h.DecideAppeal)
	})
}

func (h *GuildHandlers) fail(w http.ResponseWriter, r *http.Request, err error) {
	httpapi.WriteError(w, r, h.logger, err)
}

func (h *GuildHandlers) deleted(w http.ResponseWriter, r *http.Request, err error) {
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

// UpsertGuild takes the guild id from the path.
func (h *GuildHandlers) UpsertGuild(w http.ResponseWriter, r *http.Request) {
	var in guildservice.UpsertGuildInput
	if err := httpapi.DecodeJSON(r, &in); err != nil {
		h.fail(w, r, err)
		return
	}
	in.ID = chi.URLParam(r, "guildID")
	if err := httpapi.Validate(&in); err != nil {
		h.fail(w, r, err)
		return
	}
	guild, err := h.service.UpsertGuild(r.Context(), in)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, guild)
}

func (h *GuildHandlers) GetGuild(w http.ResponseWriter, r *http.Request) {
	guild, err := h.service.GetGuild(r.Context(), chi.URLParam(r, "guildID"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, guild)
}

func (h *GuildHandlers) UpdateGuild(w http.ResponseWriter, r *http.Request) {
	var in guildservice.GuildUpdate
	if err := httpapi.Decode(r, &in); err != nil {
		h.fail(w, r, err)
		return
	}
	guild, err := h.service.UpdateGuild(r.Context(), chi.URLParam(r, "guildID"), in)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, guild)
}

func (h *GuildHandlers) ListGuilds(w http.ResponseWriter, r *http.Request) {
	guilds, err := h.service.ListGuilds(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, guilds)
}

func (h *GuildHandlers) CreateReactionRole(w http.ResponseWriter, r *http.Request) {
	var in guildservice.CreateReactionRoleInput
	if err := httpapi.DecodeJSON(r, &in); err != nil {
		h.fail(w, r, err)
		return
	}
	in.GuildID = chi.URLParam(r, "guildID")
	if err := httpapi.Validate(&in); err != nil {
		h.fail(w, r, err)
		return
	}
	role, err := h.service.CreateReactionRole(r.Context(), in)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusCreated, role)
}

func (h *GuildHandlers) ListReactionRoles(w http.ResponseWriter, r *http.Request) {
	roles, err := h.service.ListReactionRoles(r.Context(), chi.URLParam(r, "guildID"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, roles)
}

func (h *GuildHandlers) DeleteReactionRole(w http.ResponseWriter, r *http.Request) {
	id, err := httpapi.URLUUID(r, "roleID")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.deleted(w, r, h.service.DeleteReactionRole(r.Context(), id))
}
