package get_availability

import (
	"errors"
	"net/http"

	"github.com/pawhaven/PH-BoardingService/internal/api/handlers"
	"github.com/pawhaven/PH-BoardingService/internal/api/middleware"
	findAvailability "github.com/pawhaven/PH-BoardingService/internal/usecase/find_availability"
)

const (
	msgMissingTenant    = "tenant identifier is required"
	msgMissingCategory  = "category query parameter is required"
	msgMissingDates     = "start and end query parameters are required"
	msgInvalidDate      = "invalid date format, expected YYYY-MM-DD"
	msgInvalidDateRange = "start date must be before end date"
)

type Handler struct {
	useCase FindAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase FindAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability
// Query params: category (required), start and end (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.TenantFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /availability - Missing tenant in context")
		handlers.RespondBadRequest(w, msgMissingTenant)
		return
	}

	category := r.URL.Query().Get("category")
	if category == "" {
		h.logger.Warn("GET /availability - Missing category: tenant=%s", tenantID)
		handlers.RespondBadRequest(w, msgMissingCategory)
		return
	}

	startStr := r.URL.Query().Get("start")
	endStr := r.URL.Query().Get("end")
	if startStr == "" || endStr == "" {
		h.logger.Warn("GET /availability - Missing dates: tenant=%s", tenantID)
		handlers.RespondBadRequest(w, msgMissingDates)
		return
	}

	useCaseReq, err := ToUseCaseRequest(tenantID, category, startStr, endStr)
	if err != nil {
		h.logger.Warn("GET /availability - Invalid date: tenant=%s, error=%v", tenantID, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, findAvailability.ErrMissingTenant):
			handlers.RespondBadRequest(w, msgMissingTenant)

		case errors.Is(err, findAvailability.ErrInvalidDateRange):
			h.logger.Warn("GET /availability - Invalid range: tenant=%s", tenantID)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, findAvailability.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /availability - Failed: tenant=%s, error=%v", tenantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability - OK: tenant=%s, category=%s, available=%d",
		tenantID, category, len(result.Resources))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
