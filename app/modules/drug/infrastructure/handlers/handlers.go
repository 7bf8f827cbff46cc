package drughandlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	drugservice "github.com/tripsit/tripsit-api/app/modules/drug/application"
	drugdb "github.com/tripsit/tripsit-api/app/modules/drug/infrastructure/repositories"
	"github.com/tripsit/tripsit-api/internal/httpapi"
)

// DrugHandlers exposes the drug reference service over HTTP.
type DrugHandlers struct {
	service drugservice.Service
	logger  *slog.Logger
}

func NewDrugHandlers(service drugservice.Service, logger *slog.Logger) *DrugHandlers {
	if logger == nil {
		logger = slog.Default()
	}
	return &DrugHandlers{service: service, logger: logger}
}

// Routes mounts the drug endpoints on r.
func (h *DrugHandlers) Routes(r chi.Router) {
	r.Route("/drugs", func(r chi.Router) {
		r.Get("/", h.ListDrugs)
		r.Post("/", h.CreateDrug)
		r.Route("/{drugID}", func(r chi.Router) {
			r.Get("/", h.GetDrug)
			r.Patch("/", h.UpdateDrug)
			r.Delete("/", h.DeleteDrug)
			r.Post("/names", h.CreateDrugName)
			r.Post("/articles", h.CreateDrugArticle)
			r.Post("/variants", h.CreateDrugVariant)
			r.Put("/categories/{categoryID}", h.AssociateDrugWithCategory)
			r.Delete("/categories/{categoryID}", h.DisassociateDrugFromCategory)
		})
	})
	r.Route("/drug-names/{nameID}", func(r chi.Router) {
		r.Patch("/", h.UpdateDrugName)
		r.Delete("/", h.DeleteDrugName)
		r.Post("/default", h.SetDefaultDrugName)
	})
	r.Route("/drug-articles/{articleID}", func(r chi.Router) {
		r.Patch("/", h.UpdateDrugArticle)
		r.Delete("/", h.DeleteDrugArticle)
	})
	r.Route("/drug-variants/{variantID}", func(r chi.Router) {
		r.Patch("/", h.UpdateDrugVariant)
		r.Delete("/", h.DeleteDrugVariant)
		r.Post("/roas", h.CreateDrugVariantRoa)
	})
	r.Route("/drug-roas/{roaID}", func(r chi.Router) {
		r.Patch("/", h.UpdateDrugVariantRoa)
		r.Delete("/", h.DeleteDrugVariantRoa)
	})
	r.Route("/drug-categories", func(r chi.Router) {
		r.Get("/", h.ListDrugCategories)
		r.Post("/", h.CreateDrugCategory)
		r.Get("/{categoryID}", h.GetDrugCategory)
		r.Delete("/{categoryID}", h.DeleteDrugCategory)
		r.Get("/{categoryID}/drugs", h.ListCategoryDrugs)
	})
}

func (h *DrugHandlers) fail(w http.ResponseWriter, r *http.Request, err error) {
	httpapi.WriteError(w, r, h.logger, err)
}

func (h *DrugHandlers) deleted(w http.ResponseWriter, r *http.Request, err error) {
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

func (h *DrugHandlers) CreateDrug(w http.ResponseWriter, r *http.Request) {
	actor, err := httpapi.Actor(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var in drugservice.CreateDrugInput
	if err := httpapi.Decode(r, &in); err != nil {
		h.fail(w, r, err)
		return
	}
	in.LastUpdatedBy = actor
	drug, err := h.service.CreateDrug(r.Context(), in)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusCreated, drug)
}

func (h *DrugHandlers) GetDrug(w http.ResponseWriter, r *http.Request) {
	id, err := httpapi.URLUUID(r, "drugID")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	drug, err := h.service.GetDrug(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, drug)
}

// ListDrugs filters on id or name, paged with offset and limit.
func (h *DrugHandlers) ListDrugs(w http.ResponseWriter, r *http.Request) {
	offset, err := httpapi.QueryInt(r, "offset", 0)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	limit, err := httpapi.QueryInt(r, "limit", 0)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	filter := drugdb.DrugFilter{
		Name:   httpapi.QueryString(r, "name"),
		Offset: offset,
		Limit:  limit,
	}
	if raw := httpapi.QueryString(r, "id"); raw != nil {
		id, err := uuid.Parse(*raw)
		if err != nil {
			h.fail(w, r, httpapi.BadRequest("id must be a UUID"))
			return
		}
		filter.ID = &id
	}

	drugs, err := h.service.ListDrugs(r.Context(), filter)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, drugs)
}

func (h *DrugHandlers) UpdateDrug(w http.ResponseWriter, r *http.Request) {
	id, err := httpapi.URLUUID(r, "drugID")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	actor, err := httpapi.Actor(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var in drugservice.DrugUpdate
	if err := httpapi.Decode(r, &in); err != nil {
		h.fail(w, r, err)
		return
	}
	in.LastUpdatedBy = actor
	drug, err := h.service.UpdateDrug(r.Context(), id, in)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, drug)
}

func (h *DrugHandlers) DeleteDrug(w http.ResponseWriter, r *http.Request) {
	id, err := httpapi.URLUUID(r, "drugID")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.deleted(w, r, h.service.DeleteDrug(r.Context(), id))
}
