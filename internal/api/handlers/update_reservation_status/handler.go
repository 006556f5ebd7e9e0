package update_reservation_status

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/pawhaven/PH-BoardingService/internal/api/handlers"
	"github.com/pawhaven/PH-BoardingService/internal/api/middleware"
	"github.com/pawhaven/PH-BoardingService/internal/service/reservations"
	"github.com/pawhaven/PH-BoardingService/internal/service/reservations/models"
)

const (
	msgMissingTenant       = "tenant identifier is required"
	msgMissingID           = "reservation id is required"
	msgInvalidRequestBody  = "invalid request body"
	msgReservationNotFound = "reservation not found"
	msgInvalidTransition   = "status transition is not allowed from the current status"
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

// Handle PATCH /api/v1/reservations/{id}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.TenantFromContext(r.Context())
	if !ok {
		h.logger.Warn("PATCH /reservations/{id}/status - Missing tenant in context")
		handlers.RespondBadRequest(w, msgMissingTenant)
		return
	}

	id := mux.Vars(r)["id"]
	if id == "" {
		handlers.RespondBadRequest(w, msgMissingID)
		return
	}

	var req models.UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /reservations/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.UpdateStatus(r.Context(), tenantID, id, &req); err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, reservations.ErrInvalidTransition):
			handlers.RespondConflict(w, msgInvalidTransition)

		case errors.Is(err, reservations.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, reservations.ErrMissingTenant):
			handlers.RespondBadRequest(w, msgMissingTenant)

		default:
			h.logger.Error("PATCH /reservations/{id}/status - Failed: tenant=%s, id=%s, error=%v",
				tenantID, id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /reservations/{id}/status - Updated: tenant=%s, id=%s, status=%s",
		tenantID, id, req.Status)
	w.WriteHeader(http.StatusNoContent)
}
