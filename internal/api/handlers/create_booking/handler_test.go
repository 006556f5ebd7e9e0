package create_booking

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawhaven/PH-BoardingService/internal/api/middleware"
	"github.com/pawhaven/PH-BoardingService/internal/domain"
	bookResource "github.com/pawhaven/PH-BoardingService/internal/usecase/book_resource"
	"github.com/pawhaven/PH-BoardingService/pkg/types"
)

type fakeUseCase struct {
	resp *bookResource.Response
	err  error

	gotReq *bookResource.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *bookResource.Request) (*bookResource.Response, error) {
	f.gotReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func validBody(t *testing.T) []byte {
	t.Helper()
	body, err := json.Marshal(CreateBookingRequest{
		ResourceID: "res-1",
		PetID:      "pet-1",
		CustomerID: "cust-1",
		ServiceID:  "svc-boarding",
		StartDate:  "2026-03-10",
		EndDate:    "2026-03-14",
	})
	require.NoError(t, err)
	return body
}

func serve(h *Handler, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", bytes.NewReader(body))
	req.Header.Set(middleware.TenantHeader, "tenant-1")
	rec := httptest.NewRecorder()
	middleware.Tenant(http.HandlerFunc(h.Handle)).ServeHTTP(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	start, _ := types.ParseDate("2026-03-10")
	end, _ := types.ParseDate("2026-03-14")
	uc := &fakeUseCase{resp: &bookResource.Response{
		ID:         "rsv-1",
		TenantID:   "tenant-1",
		CustomerID: "cust-1",
		PetID:      "pet-1",
		ResourceID: "res-1",
		ServiceID:  "svc-boarding",
		StartDate:  start,
		EndDate:    end,
		Status:     domain.StatusConfirmed,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}}
	h := NewHandler(uc, noopLogger{})

	rec := serve(h, validBody(t))

	require.Equal(t, http.StatusCreated, rec.Code)

	var body BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "rsv-1", body.ID)
	assert.Equal(t, "2026-03-10", body.StartDate)
	assert.Equal(t, string(domain.StatusConfirmed), body.Status)

	require.NotNil(t, uc.gotReq)
	assert.Equal(t, "tenant-1", uc.gotReq.TenantID)
	assert.Equal(t, "res-1", uc.gotReq.ResourceID)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		useCaseErr error
		wantStatus int
	}{
		{"conflict maps to 409", bookResource.ErrResourceConflict, http.StatusConflict},
		{"inactive maps to 409", bookResource.ErrResourceInactive, http.StatusConflict},
		{"timeout maps to 503", bookResource.ErrBookingTimeout, http.StatusServiceUnavailable},
		{"not found maps to 404", bookResource.ErrResourceNotFound, http.StatusNotFound},
		{"invalid input maps to 400", bookResource.ErrInvalidInput, http.StatusBadRequest},
		{"invalid range maps to 400", bookResource.ErrInvalidDateRange, http.StatusBadRequest},
		{"internal maps to 500", bookResource.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: tt.useCaseErr}, noopLogger{})
			rec := serve(h, validBody(t))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandle_TimeoutSetsRetryAfter(t *testing.T) {
	h := NewHandler(&fakeUseCase{err: bookResource.ErrBookingTimeout}, noopLogger{})
	rec := serve(h, validBody(t))

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))
}

func TestHandle_BadBody(t *testing.T) {
	uc := &fakeUseCase{}
	h := NewHandler(uc, noopLogger{})

	t.Run("malformed json", func(t *testing.T) {
		rec := serve(h, []byte("{not json"))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown field", func(t *testing.T) {
		rec := serve(h, []byte(`{"resourceId":"res-1","roomService":true}`))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed date", func(t *testing.T) {
		rec := serve(h, []byte(`{"resourceId":"res-1","petId":"pet-1","customerId":"cust-1","serviceId":"svc-1","startDate":"10.03.2026","endDate":"2026-03-14"}`))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	assert.Nil(t, uc.gotReq)
}

func TestHandle_MissingTenant(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, noopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", bytes.NewReader(validBody(t)))
	rec := httptest.NewRecorder()
	middleware.Tenant(http.HandlerFunc(h.Handle)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
