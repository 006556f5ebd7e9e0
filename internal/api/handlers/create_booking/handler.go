package create_booking

import (
	"errors"
	"net/http"

	"github.com/pawhaven/PH-BoardingService/internal/api/handlers"
	"github.com/pawhaven/PH-BoardingService/internal/api/middleware"
	bookResource "github.com/pawhaven/PH-BoardingService/internal/usecase/book_resource"
)

const (
	msgMissingTenant      = "tenant identifier is required"
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid date format, expected YYYY-MM-DD"
	msgInvalidDateRange   = "start date must be before end date"
	msgResourceConflict   = "resource is already booked for the requested interval"
	msgResourceNotFound   = "resource not found"
	msgResourceInactive   = "resource is not active"
	msgBookingTimeout     = "booking could not be completed in time, retry later"
)

type Handler struct {
	useCase BookResourceUseCase
	logger  Logger
}

func NewHandler(useCase BookResourceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.TenantFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /reservations - Missing tenant in context")
		handlers.RespondBadRequest(w, msgMissingTenant)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(tenantID)
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, bookResource.ErrResourceConflict):
			h.logger.Warn("POST /reservations - Conflict: tenant=%s, resource=%s", tenantID, req.ResourceID)
			handlers.RespondConflict(w, msgResourceConflict)

		case errors.Is(err, bookResource.ErrResourceNotFound):
			h.logger.Warn("POST /reservations - Resource not found: tenant=%s, resource=%s", tenantID, req.ResourceID)
			handlers.RespondNotFound(w, msgResourceNotFound)

		case errors.Is(err, bookResource.ErrResourceInactive):
			h.logger.Warn("POST /reservations - Resource inactive: tenant=%s, resource=%s", tenantID, req.ResourceID)
			handlers.RespondConflict(w, msgResourceInactive)

		case errors.Is(err, bookResource.ErrBookingTimeout):
			h.logger.Warn("POST /reservations - Timeout: tenant=%s, resource=%s", tenantID, req.ResourceID)
			handlers.RespondServiceUnavailable(w, msgBookingTimeout)

		case errors.Is(err, bookResource.ErrMissingTenant):
			handlers.RespondBadRequest(w, msgMissingTenant)

		case errors.Is(err, bookResource.ErrInvalidDateRange):
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, bookResource.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /reservations - Failed: tenant=%s, resource=%s, error=%v",
				tenantID, req.ResourceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Created: reservation=%s, tenant=%s, resource=%s",
		result.ID, tenantID, result.ResourceID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
