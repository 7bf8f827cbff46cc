package drughandlers

import (
	"net/http"

	drugservice "github.com/tripsit/tripsit-api/app/modules/drug/application"
	"github.com/tripsit/tripsit-api/internal/httpapi"
)

func (h *DrugHandlers) CreateDrugCategory(w http.ResponseWriter, r *http.Request) {
	var in drugservice.CreateCategoryInput
	if err := httpapi.Decode(r, &in); err != nil {
		h.fail(w, r, err)
		return
	}
	category, err := h.service.CreateDrugCategory(r.Context(), in)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusCreated, category)
}

func (h *DrugHandlers) GetDrugCategory(w http.ResponseWriter, r *http.Request) {
	id, err := httpapi.URLUUID(r, "categoryID")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	category, err := h.service.GetDrugCategory(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, category)
}

func (h *DrugHandlers) ListDrugCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.ListDrugCategories(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, categories)
}

func (h *DrugHandlers) DeleteDrugCategory(w http.ResponseWriter, r *http.Request) {
	id, err := httpapi.URLUUID(r, "categoryID")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.deleted(w, r, h.service.DeleteDrugCategory(r.Context(), id))
}

func (h *DrugHandlers) ListCategoryDrugs(w http.ResponseWriter, r *http.Request) {
	id, err := httpapi.URLUUID(r, "categoryID")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	drugs, err := h.service.ListCategoryDrugs(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, drugs)
}

func (h *DrugHandlers) AssociateDrugWithCategory(w http.ResponseWriter, r *http.Request) {
	drugID, err := httpapi.URLUUID(r, "drugID")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	categoryID, err := httpapi.URLUUID(r, "categoryID")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	drug, err := h.service.AssociateDrugWithCategory(r.Context(), drugID, categoryID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, drug)
}

// DisassociateDrugFromCategory succeeds even when the pair was never linked.
func (h *DrugHandlers) DisassociateDrugFromCategory(w http.ResponseWriter, r *http.Request) {
	drugID, err := httpapi.URLUUID(r, "drugID")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	categoryID, err := httpapi.URLUUID(r, "categoryID")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	drug, err := h.service.DisassociateDrugFromCategory(r.Context(), drugID, categoryID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, drug)
}
