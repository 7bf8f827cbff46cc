package drughandlers

import (
	"net/http"

	drugservice "github.com/tripsit/tripsit-api/app/modules/drug/application"
	"github.com/tripsit/tripsit-api/internal/httpapi"
)

func (h *DrugHandlers) CreateDrugName(w http.ResponseWriter, r *http.Request) {
	drugID, err := httpapi.URLUUID(r, "drugID")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var in drugservice.CreateDrugNameInput
	if err := httpapi.DecodeJSON(r, &in); err != nil {
		h.fail(w, r, err)
		return
	}
	in.DrugID = drugID
	if err := httpapi.Validate(&in); err != nil {
		h.fail(w, r, err)
		return
	}
	name, err := h.service.CreateDrugName(r.Context(), in)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusCreated, name)
}

func (h *DrugHandlers) UpdateDrugName(w http.ResponseWriter, r *http.Request) {
	id, err := httpapi.URLUUID(r, "nameID")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var in drugservice.DrugNameUpdate
	if err := httpapi.Decode(r, &in); err != nil {
		h.fail(w, r, err)
		return
	}
	name, err := h.service.UpdateDrugName(r.Context(), id, in)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, name)
}

// SetDefaultDrugName responds with every name of the drug after the switch.
func (h *DrugHandlers) SetDefaultDrugName(w http.ResponseWriter, r *http.Request) {
	id, err := httpapi.URLUUID(r, "nameID")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	names, err := h.service.SetDefaultDrugName(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, names)
}

func (h *DrugHandlers) DeleteDrugName(w http.ResponseWriter, r *http.Request) {
	id, err := httpapi.URLUUID(r, "nameID")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.deleted(w, r, h.service.DeleteDrugName(r.Context(), id))
}

func (h *DrugHandlers) CreateDrugArticle(w http.ResponseWriter, r *http.Request) {
	drugID, err := httpapi.URLUUID(r, "drugID")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	actor, err := httpapi.Actor(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var in drugservice.CreateArticleInput
	if err := httpapi.DecodeJSON(r, &in); err != nil {
		h.fail(w, r, err)
		return
	}
	in.DrugID = drugID
	in.PostedBy = actor
	if err := httpapi.Validate(&in); err != nil {
		h.fail(w, r, err)
		return
	}
	article, err := h.service.CreateDrugArticle(r.Context(), in)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusCreated, article)
}

func (h *DrugHandlers) UpdateDrugArticle(w http.ResponseWriter, r *http.Request) {
	id, err := httpapi.URLUUID(r, "articleID")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	actor, err := httpapi.Actor(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var in drugservice.ArticleUpdate
	if err := httpapi.Decode(r, &in); err != nil {
		h.fail(w, r, err)
		return
	}
	in.LastModifiedBy = actor
	article, err := h.service.UpdateDrugArticle(r.Context(), id, in)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, article)
}

func (h *DrugHandlers) DeleteDrugArticle(w http.ResponseWriter, r *http.Request) {
	id, err := httpapi.URLUUID(r, "articleID")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.deleted(w, r, h.service.DeleteDrugArticle(r.Context(), id))
}
