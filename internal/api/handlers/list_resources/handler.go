package list_resources

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/pawhaven/PH-BoardingService/internal/api/handlers"
	"github.com/pawhaven/PH-BoardingService/internal/api/middleware"
	"github.com/pawhaven/PH-BoardingService/internal/service/resources"
)

const (
	msgMissingTenant    = "tenant identifier is required"
	msgMissingID        = "resource id is required"
	msgResourceNotFound = "resource not found"
)

type Handler struct {
	service ResourcesService
	logger  Logger
}

func NewHandler(service ResourcesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleList GET /api/v1/resources
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.TenantFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /resources - Missing tenant in context")
		handlers.RespondBadRequest(w, msgMissingTenant)
		return
	}

	category := r.URL.Query().Get("category")

	result, err := h.service.ListByCategory(r.Context(), tenantID, category)
	if err != nil {
		switch {
		case errors.Is(err, resources.ErrMissingTenant):
			handlers.RespondBadRequest(w, msgMissingTenant)

		default:
			h.logger.Error("GET /resources - Failed: tenant=%s, error=%v", tenantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleGet GET /api/v1/resources/{id}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.TenantFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /resources/{id} - Missing tenant in context")
		handlers.RespondBadRequest(w, msgMissingTenant)
		return
	}

	id := mux.Vars(r)["id"]
	if id == "" {
		handlers.RespondBadRequest(w, msgMissingID)
		return
	}

	result, err := h.service.GetByID(r.Context(), tenantID, id)
	if err != nil {
		switch {
		case errors.Is(err, resources.ErrResourceNotFound):
			handlers.RespondNotFound(w, msgResourceNotFound)

		case errors.Is(err, resources.ErrMissingTenant):
			handlers.RespondBadRequest(w, msgMissingTenant)

		default:
			h.logger.Error("GET /resources/{id} - Failed: tenant=%s, id=%s, error=%v",
				tenantID, id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
