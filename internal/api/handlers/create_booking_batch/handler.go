package create_booking_batch

import (
	"errors"
	"net/http"

	"github.com/pawhaven/PH-BoardingService/internal/api/handlers"
	"github.com/pawhaven/PH-BoardingService/internal/api/middleware"
	bookBatch "github.com/pawhaven/PH-BoardingService/internal/usecase/book_batch"
)

const (
	msgMissingTenant      = "tenant identifier is required"
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid date format, expected YYYY-MM-DD"
	msgEmptyBatch         = "batch must contain at least one item"
)

type Handler struct {
	useCase BookBatchUseCase
	logger  Logger
}

func NewHandler(useCase BookBatchUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations/batch
//
// Items are processed independently: bookings that succeed stay booked and
// failed items are reported per index, so the response is 207 Multi-Status
// whenever at least one item failed.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := middleware.TenantFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /reservations/batch - Missing tenant in context")
		handlers.RespondBadRequest(w, msgMissingTenant)
		return
	}

	var req CreateBatchRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations/batch - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(tenantID)
	if err != nil {
		h.logger.Warn("POST /reservations/batch - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, bookBatch.ErrMissingTenant):
			handlers.RespondBadRequest(w, msgMissingTenant)

		case errors.Is(err, bookBatch.ErrEmptyBatch):
			handlers.RespondBadRequest(w, msgEmptyBatch)

		case errors.Is(err, bookBatch.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /reservations/batch - Failed: tenant=%s, error=%v", tenantID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations/batch - Done: tenant=%s, succeeded=%d, failed=%d",
		tenantID, result.Succeeded, result.Failed)

	status := http.StatusCreated
	if result.Failed > 0 {
		status = http.StatusMultiStatus
	}
	handlers.RespondJSON(w, status, FromUseCaseResponse(result))
}
