package drughandlers

import (
	"net/http"

	drugservice "github.com/tripsit/tripsit-api/app/modules/drug/application"
	"github.com/tripsit/tripsit-api/internal/httpapi"
)

func (h *DrugHandlers) CreateDrugVariant(w http.ResponseWriter, r *http.Request) {
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
	var in drugservice.CreateVariantInput
	if err := httpapi.DecodeJSON(r, &in); err != nil {
		h.fail(w, r, err)
		return
	}
	in.DrugID = drugID
	in.LastUpdatedBy = actor
	if err := httpapi.Validate(&in); err != nil {
		h.fail(w, r, err)
		return
	}
	variant, err := h.service.CreateDrugVariant(r.Context(), in)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusCreated, variant)
}

func (h *DrugHandlers) UpdateDrugVariant(w http.ResponseWriter, r *http.Request) {
	id, err := httpapi.URLUUID(r, "variantID")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	actor, err := httpapi.Actor(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var in drugservice.VariantUpdate
	if err := httpapi.Decode(r, &in); err != nil {
		h.fail(w, r, err)
		return
	}
	in.LastUpdatedBy = actor
	variant, err := h.service.UpdateDrugVariant(r.Context(), id, in)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, variant)
}

func (h *DrugHandlers) DeleteDrugVariant(w http.ResponseWriter, r *http.Request) {
	id, err := httpapi.URLUUID(r, "variantID")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.deleted(w, r, h.service.DeleteDrugVariant(r.Context(), id))
}

func (h *DrugHandlers) CreateDrugVariantRoa(w http.ResponseWriter, r *http.Request) {
	variantID, err := httpapi.URLUUID(r, "variantID")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var in drugservice.CreateRoaInput
	if err := httpapi.DecodeJSON(r, &in); err != nil {
		h.fail(w, r, err)
		return
	}
	in.DrugVariantID = variantID
	if err := httpapi.Validate(&in); err != nil {
		h.fail(w, r, err)
		return
	}
	roa, err := h.service.CreateDrugVariantRoa(r.Context(), in)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusCreated, roa)
}

func (h *DrugHandlers) UpdateDrugVariantRoa(w http.ResponseWriter, r *http.Request) {
	id, err := httpapi.URLUUID(r, "roaID")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var in drugservice.RoaUpdate
	if err := httpapi.Decode(r, &in); err != nil {
		h.fail(w, r, err)
		return
	}
	roa, err := h.service.UpdateDrugVariantRoa(r.Context(), id, in)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, roa)
}

func (h *DrugHandlers) DeleteDrugVariantRoa(w http.ResponseWriter, r *http.Request) {
	id, err := httpapi.URLUUID(r, "roaID")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.deleted(w, r, h.service.DeleteDrugVariantRoa(r.Context(), id))
}
