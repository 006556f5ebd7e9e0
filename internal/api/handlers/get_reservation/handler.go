package get_reservation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/pawhaven/PH-BoardingService/internal/api/handlers"
	"github.com/pawhaven/PH-BoardingService/internal/api/middleware"
	"github.com/pawhaven/PH-BoardingService/internal/service/reservations"
)

const (
	msgMissingTenant       = "tenant identifier is required"
	msgMissingID           = "reservation id is required"
	msgReservationNotFound = "reservation not found"
)

type Handler struct {
	service ReservationsService
	logger  Logger
}

func NewHandler(service ReservationsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/reservations/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.TenantFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /reservations/{id} - Missing tenant in context")
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
		case errors.Is(err, reservations.ErrReservationNotFound):
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, reservations.ErrMissingTenant):
			handlers.RespondBadRequest(w, msgMissingTenant)

		default:
			h.logger.Error("GET /reservations/{id} - Failed: tenant=%s, id=%s, error=%v",
				tenantID, id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
