package userhandlers

import (
	"net/http"

	userservice "github.com/tripsit/tripsit-api/app/modules/user/application"
	"github.com/tripsit/tripsit-api/internal/httpapi"
)

func (h *UserHandlers) CreateUserExperience(w http.ResponseWriter, r *http.Request) {
	userID, err := httpapi.URLUUID(r, "userID")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var in userservice.CreateExperienceInput
	if err := httpapi.DecodeJSON(r, &in); err != nil {
		h.fail(w, r, err)
		return
	}
	in.UserID = userID
	if err := httpapi.Validate(&in); err != nil {
		h.fail(w, r, err)
		return
	}
	exp, err := h.service.CreateUserExperience(r.Context(), in)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusCreated, exp)
}

func (h *UserHandlers) ListUserExperience(w http.ResponseWriter, r *http.Request) {
	userID, err := httpapi.URLUUID(r, "userID")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	exp, err := h.service.ListUserExperience(r.Context(), userID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, exp)
}

func (h *UserHandlers) UpdateUserExperience(w http.ResponseWriter, r *http.Request) {
	id, err := httpapi.URLUUID(r, "experienceID")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var in userservice.ExperienceUpdate
	if err := httpapi.Decode(r, &in); err != nil {
		h.fail(w, r, err)
		return
	}
	exp, err := h.service.UpdateUserExperience(r.Context(), id, in)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, exp)
}
