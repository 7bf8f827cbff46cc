package userhandlers

import (
	"net/http"

	userservice "github.com/tripsit/tripsit-api/app/modules/user/application"
	"github.com/tripsit/tripsit-api/internal/httpapi"
)

func (h *UserHandlers) CreateUserTicket(w http.ResponseWriter, r *http.Request) {
	userID, err := httpapi.URLUUID(r, "userID")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var in userservice.CreateTicketInput
	if err := httpapi.DecodeJSON(r, &in); err != nil {
		h.fail(w, r, err)
		return
	}
	in.UserID = userID
	if err := httpapi.Validate(&in); err != nil {
		h.fail(w, r, err)
		return
	}
	ticket, err := h.service.CreateUserTicket(r.Context(), in)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusCreated, ticket)
}

func (h *UserHandlers) GetUserTicket(w http.ResponseWriter, r *http.Request) {
	id, err := httpapi.URLUUID(r, "ticketID")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	ticket, err := h.service.GetUserTicket(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, ticket)
}

func (h *UserHandlers) ListUserTickets(w http.ResponseWriter, r *http.Request) {
	userID, err := httpapi.URLUUID(r, "userID")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	tickets, err := h.service.ListUserTickets(r.Context(), userID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, tickets)
}

// UpdateUserTicket stamps the actor as closer or reopener on status changes.
func (h *UserHandlers) UpdateUserTicket(w http.ResponseWriter, r *http.Request) {
	id, err := httpapi.URLUUID(r, "ticketID")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var in userservice.TicketUpdate
	if err := httpapi.Decode(r, &in); err != nil {
		h.fail(w, r, err)
		return
	}
	if actor, err := httpapi.Actor(r.Context()); err == nil {
		in.ActorID = &actor
	}
	ticket, err := h.service.UpdateUserTicket(r.Context(), id, in)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, ticket)
}

func (h *UserHandlers) DeleteUserTicket(w http.ResponseWriter, r *http.Request) {
	id, err := httpapi.URLUUID(r, "ticketID")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if err := h.service.DeleteUserTicket(r.Context(), id); err != nil {
		h.fail(w, r, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
