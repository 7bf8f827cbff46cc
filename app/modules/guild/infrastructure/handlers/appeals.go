package guildhandlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	guildservice "github.com/tripsit/tripsit-api/app/modules/guild/application"
	guilddomain "github.com/tripsit/tripsit-api/app/modules/guild/domain"
	guilddb "github.com/tripsit/tripsit-api/app/modules/guild/infrastructure/repositories"
	"github.com/tripsit/tripsit-api/internal/httpapi"
)

func (h *GuildHandlers) CreateAppeal(w http.ResponseWriter, r *http.Request) {
	var in guildservice.CreateAppealInput
	if err := httpapi.DecodeJSON(r, &in); err != nil {
		h.fail(w, r, err)
		return
	}
	in.GuildID = chi.URLParam(r, "guildID")
	if err := httpapi.Validate(&in); err != nil {
		h.fail(w, r, err)
		return
	}
	appeal, err := h.service.CreateAppeal(r.Context(), in)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusCreated, appeal)
}

func (h *GuildHandlers) GetAppeal(w http.ResponseWriter, r *http.Request) {
	id, err := httpapi.URLUUID(r, "appealID")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	appeal, err := h.service.GetAppeal(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, appeal)
}

// ListAppeals lists a guild's appeals, narrowed by ?userId= when present.
func (h *GuildHandlers) ListAppeals(w http.ResponseWriter, r *http.Request) {
	filter := guilddb.AppealFilter{GuildID: chi.URLParam(r, "guildID")}
	if raw := httpapi.QueryString(r, "userId"); raw != nil {
		userID, err := uuid.Parse(*raw)
		if err != nil {
			h.fail(w, r, httpapi.BadRequest("userId must be a UUID"))
			return
		}
		filter.UserID = &userID
	}
	appeals, err := h.service.ListAppeals(r.Context(), filter)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, appeals)
}

func (h *GuildHandlers) MarkAppealReminded(w http.ResponseWriter, r *http.Request) {
	id, err := httpapi.URLUUID(r, "appealID")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	appeal, err := h.service.MarkAppealReminded(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, appeal)
}

func (h *GuildHandlers) DecideAppeal(w http.ResponseWriter, r *http.Request) {
	id, err := httpapi.URLUUID(r, "appealID")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var body statusRequest
	if err := httpapi.Decode(r, &body); err != nil {
		h.fail(w, r, err)
		return
	}
	status, err := guilddomain.ParseAppealStatus(body.Status)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	appeal, err := h.service.DecideAppeal(r.Context(), id, status)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, appeal)
}
