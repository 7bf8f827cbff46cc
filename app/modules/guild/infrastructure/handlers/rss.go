package guildhandlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	guildservice "github.com/tripsit/tripsit-api/app/modules/guild/application"
	"github.com/tripsit/tripsit-api/internal/httpapi"
)

func (h *GuildHandlers) CreateGuildRss(w http.ResponseWriter, r *http.Request) {
	var in guildservice.CreateGuildRssInput
	if err := httpapi.DecodeJSON(r, &in); err != nil {
		h.fail(w, r, err)
		return
	}
	in.GuildID = chi.URLParam(r, "guildID")
	if err := httpapi.Validate(&in); err != nil {
		h.fail(w, r, err)
		return
	}
	entry, err := h.service.CreateGuildRss(r.Context(), in)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusCreated, entry)
}

func (h *GuildHandlers) ListGuildRss(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.ListGuildRss(r.Context(), chi.URLParam(r, "guildID"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, entries)
}

// RefreshGuildRss fetches the feed now and returns the updated entry.
func (h *GuildHandlers) RefreshGuildRss(w http.ResponseWriter, r *http.Request) {
	id, err := httpapi.URLUUID(r, "rssID")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	entry, err := h.service.RefreshGuildRss(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, entry)
}

func (h *GuildHandlers) DeleteGuildRss(w http.ResponseWriter, r *http.Request) {
	id, err := httpapi.URLUUID(r, "rssID")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.deleted(w, r, h.service.DeleteGuildRss(r.Context(), id))
}
