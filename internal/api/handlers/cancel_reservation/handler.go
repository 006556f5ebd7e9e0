package cancel_reservation

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
	msgCannotCancel        = "reservation cannot be cancelled in its current status"
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

// Handle PATCH /api/v1/reservations/{id}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.TenantFromContext(r.Context())
	if !ok {
		h.logger.Warn("PATCH /reservations/{id}/cancel - Missing tenant in context")
		handlers.RespondBadRequest(w, msgMissingTenant)
		return
	}

	id := mux.Vars(r)["id"]
	if id == "" {
		handlers.RespondBadRequest(w, msgMissingID)
		return
	}

	var req models.CancelReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, handlers.ErrEmptyBody) {
		h.logger.Warn("PATCH /reservations/{id}/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.Cancel(r.Context(), tenantID, id, &req); err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, reservations.ErrCannotCancel):
			handlers.RespondConflict(w, msgCannotCancel)

		case errors.Is(err, reservations.ErrMissingTenant):
			handlers.RespondBadRequest(w, msgMissingTenant)

		default:
			h.logger.Error("PATCH /reservations/{id}/cancel - Failed: tenant=%s, id=%s, error=%v",
				tenantID, id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /reservations/{id}/cancel - Cancelled: tenant=%s, id=%s", tenantID, id)
	w.WriteHeader(http.StatusNoContent)
}
