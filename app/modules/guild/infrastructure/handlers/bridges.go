package guildhandlers

import (
	"net/http"

	guildservice "github.com/tripsit/tripsit-api/app/modules/guild/application"
	guilddomain "github.com/tripsit/tripsit-api/app/modules/guild/domain"
	"github.com/tripsit/tripsit-api/internal/httpapi"
)

type statusRequest struct {
	Status string `json:"status" validate:"required"`
}

func (h *GuildHandlers) CreateBridge(w http.ResponseWriter, r *http.Request) {
	var in guildservice.CreateBridgeInput
	if err := httpapi.Decode(r, &in); err != nil {
		h.fail(w, r, err)
		return
	}
	bridge, err := h.service.CreateBridge(r.Context(), in)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusCreated, bridge)
}

func (h *GuildHandlers) GetBridge(w http.ResponseWriter, r *http.Request) {
	id, err := httpapi.URLUUID(r, "bridgeID")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	bridge, err := h.service.GetBridge(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, bridge)
}

// ListBridges requires ?channel= and matches it on either side.
func (h *GuildHandlers) ListBridges(w http.ResponseWriter, r *http.Request) {
	channel := httpapi.QueryString(r, "channel")
	if channel == nil {
		h.fail(w, r, httpapi.BadRequest("channel query parameter is required"))
		return
	}
	bridges, err := h.service.ListBridges(r.Context(), *channel)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, bridges)
}

func (h *GuildHandlers) SetBridgeStatus(w http.ResponseWriter, r *http.Request) {
	id, err := httpapi.URLUUID(r, "bridgeID")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var body statusRequest
	if err := httpapi.Decode(r, &body); err != nil {
		h.fail(w, r, err)
		return
	}
	status, err := guilddomain.ParseBridgeStatus(body.Status)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	bridge, err := h.service.SetBridgeStatus(r.Context(), id, status)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, bridge)
}

func (h *GuildHandlers) DeleteBridge(w http.ResponseWriter, r *http.Request) {
	id, err := httpapi.URLUUID(r, "bridgeID")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.deleted(w, r, h.service.DeleteBridge(r.Context(), id))
}
