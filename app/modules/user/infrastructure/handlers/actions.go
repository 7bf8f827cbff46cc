package userhandlers

import (
	"net/http"
	"time"

	userservice "github.com/tripsit/tripsit-api/app/modules/user/application"
	"github.com/tripsit/tripsit-api/internal/httpapi"
)

// createActionRequest accepts either expiresAt or a phrase in expiresIn.
type createActionRequest struct {
	userservice.CreateActionInput
	ExpiresIn *string `json:"expiresIn"`
}

type updateActionRequest struct {
	userservice.ActionUpdate
	ExpiresIn *string `json:"expiresIn"`
}

func (h *UserHandlers) resolveExpiry(at *time.Time, in *string) (*time.Time, error) {
	if in == nil {
		return at, nil
	}
	t, err := httpapi.ParseExpiry(*in, h.now())
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (h *UserHandlers) CreateUserAction(w http.ResponseWriter, r *http.Request) {
	userID, err := httpapi.URLUUID(r, "userID")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	actor, err := httpapi.Actor(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}

	var req createActionRequest
	if err := httpapi.DecodeJSON(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	in := req.CreateActionInput
	in.UserID = userID
	in.CreatedBy = actor
	if in.ExpiresAt, err = h.resolveExpiry(in.ExpiresAt, req.ExpiresIn); err != nil {
		h.fail(w, r, err)
		return
	}
	if err := httpapi.Validate(&in); err != nil {
		h.fail(w, r, err)
		return
	}

	action, err := h.service.CreateUserAction(r.Context(), in)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusCreated, action)
}

func (h *UserHandlers) GetUserAction(w http.ResponseWriter, r *http.Request) {
	id, err := httpapi.URLUUID(r, "actionID")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	action, err := h.service.GetUserAction(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, action)
}

func (h *UserHandlers) ListUserActions(w http.ResponseWriter, r *http.Request) {
	userID, err := httpapi.URLUUID(r, "userID")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	includeRepealed, err := httpapi.QueryBool(r, "includeRepealed")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	actions, err := h.service.ListUserActions(r.Context(), userID, includeRepealed)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, actions)
}

func (h *UserHandlers) UpdateUserAction(w http.ResponseWriter, r *http.Request) {
	id, err := httpapi.URLUUID(r, "actionID")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var req updateActionRequest
	if err := httpapi.Decode(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	in := req.ActionUpdate
	if in.ExpiresAt, err = h.resolveExpiry(in.ExpiresAt, req.ExpiresIn); err != nil {
		h.fail(w, r, err)
		return
	}
	action, err := h.service.UpdateUserAction(r.Context(), id, in)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, action)
}

// RepealUserAction records the authenticated actor as the repealer.
func (h *UserHandlers) RepealUserAction(w http.ResponseWriter, r *http.Request) {
	id, err := httpapi.URLUUID(r, "actionID")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	actor, err := httpapi.Actor(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	action, err := h.service.RepealUserAction(r.Context(), id, actor)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, action)
}

func (h *UserHandlers) DeleteUserAction(w http.ResponseWriter, r *http.Request) {
	id, err := httpapi.URLUUID(r, "actionID")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if err := h.service.DeleteUserAction(r.Context(), id); err != nil {
		h.fail(w, r, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
