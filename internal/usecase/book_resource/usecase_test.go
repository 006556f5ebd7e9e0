package book_resource

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawhaven/PH-BoardingService/internal/domain"
	reservationRepo "github.com/pawhaven/PH-BoardingService/internal/infra/storage/reservation"
	resourceRepo "github.com/pawhaven/PH-BoardingService/internal/infra/storage/resource"
	"github.com/pawhaven/PH-BoardingService/pkg/ptr"
	"github.com/pawhaven/PH-BoardingService/pkg/txmanager"
	"github.com/pawhaven/PH-BoardingService/pkg/types"
)

// memoryStore is a fake backing both repository interfaces. Combined with
// serialTxManager it reproduces the serialization a row lock provides: one
// booking transaction at a time per store.
type memoryStore struct {
	mu           sync.Mutex
	resources    map[string]*domain.Resource
	reservations []*domain.Reservation

	getForUpdateErr error
	createErr       error
}

func newMemoryStore(resources ...*domain.Resource) *memoryStore {
	s := &memoryStore{resources: make(map[string]*domain.Resource)}
	for _, r := range resources {
		s.resources[r.ID] = r
	}
	return s
}

func (s *memoryStore) GetForUpdate(_ context.Context, tenantID, id string) (*domain.Resource, error) {
	if s.getForUpdateErr != nil {
		return nil, s.getForUpdateErr
	}
	res, ok := s.resources[id]
	if !ok || res.TenantID != tenantID {
		return nil, resourceRepo.ErrResourceNotFound
	}
	return res, nil
}

func (s *memoryStore) ListOccupyingOverlapping(_ context.Context, tenantID string, resourceIDs []string, start, end types.Date) ([]*domain.Reservation, error) {
	ids := make(map[string]struct{}, len(resourceIDs))
	for _, id := range resourceIDs {
		ids[id] = struct{}{}
	}

	var out []*domain.Reservation
	for _, r := range s.reservations {
		if r.TenantID != tenantID || !r.IsOccupying() {
			continue
		}
		if _, ok := ids[r.ResourceID]; !ok {
			continue
		}
		if domain.Overlaps(r.StartDate, r.EndDate, start, end) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *memoryStore) Create(_ context.Context, r *domain.Reservation) (*domain.Reservation, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	created := *r
	created.ID = uuid.NewString()
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	s.reservations = append(s.reservations, &created)
	return &created, nil
}

// serialTxManager runs each transaction body under the store mutex
type serialTxManager struct {
	store *memoryStore
	err   error
}

func (m *serialTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.err != nil {
		return m.err
	}
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func date(t *testing.T, s string) types.Date {
	t.Helper()
	d, err := types.ParseDate(s)
	require.NoError(t, err)
	return d
}

func activeSuite(id string) *domain.Resource {
	return &domain.Resource{
		ID:       id,
		TenantID: "tenant-1",
		Type:     domain.TypeStandardSuite,
		Name:     "Suite",
		Number:   1,
		IsActive: true,
	}
}

func validRequest(t *testing.T) *Request {
	return &Request{
		TenantID:   "tenant-1",
		ResourceID: "res-1",
		PetID:      "pet-1",
		CustomerID: "cust-1",
		ServiceID:  "svc-boarding",
		StartDate:  date(t, "2026-03-10"),
		EndDate:    date(t, "2026-03-14"),
		Notes:      ptr.Ptr("grain-free diet"),
	}
}

func newBookingUseCase(store *memoryStore) *UseCase {
	return NewUseCase(store, store, &serialTxManager{store: store}, nil, noopLogger{})
}

func TestExecute_CreatesReservation(t *testing.T) {
	store := newMemoryStore(activeSuite("res-1"))
	uc := newBookingUseCase(store)

	resp, err := uc.Execute(context.Background(), validRequest(t))
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "tenant-1", resp.TenantID)
	assert.Equal(t, "res-1", resp.ResourceID)
	assert.Equal(t, domain.StatusConfirmed, resp.Status)
	require.NotNil(t, resp.Notes)
	assert.Equal(t, "grain-free diet", *resp.Notes)
	require.Len(t, store.reservations, 1)
}

func TestExecute_PendingStatusAccepted(t *testing.T) {
	store := newMemoryStore(activeSuite("res-1"))
	uc := newBookingUseCase(store)

	req := validRequest(t)
	req.Status = domain.StatusPending

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, resp.Status)
}

func TestExecute_ConflictOnOverlap(t *testing.T) {
	store := newMemoryStore(activeSuite("res-1"))
	uc := newBookingUseCase(store)

	_, err := uc.Execute(context.Background(), validRequest(t))
	require.NoError(t, err)

	// Same resource, overlapping by one night
	second := validRequest(t)
	second.StartDate = date(t, "2026-03-13")
	second.EndDate = date(t, "2026-03-17")

	_, err = uc.Execute(context.Background(), second)
	assert.ErrorIs(t, err, ErrResourceConflict)
	assert.Len(t, store.reservations, 1)
}

func TestExecute_BackToBackAllowed(t *testing.T) {
	store := newMemoryStore(activeSuite("res-1"))
	uc := newBookingUseCase(store)

	_, err := uc.Execute(context.Background(), validRequest(t))
	require.NoError(t, err)

	// Next guest checks in the day the first checks out
	second := validRequest(t)
	second.PetID = "pet-2"
	second.StartDate = date(t, "2026-03-14")
	second.EndDate = date(t, "2026-03-18")

	_, err = uc.Execute(context.Background(), second)
	require.NoError(t, err)
	assert.Len(t, store.reservations, 2)
}

func TestExecute_PendingReservationBlocks(t *testing.T) {
	store := newMemoryStore(activeSuite("res-1"))
	uc := newBookingUseCase(store)

	first := validRequest(t)
	first.Status = domain.StatusPending
	_, err := uc.Execute(context.Background(), first)
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), validRequest(t))
	assert.ErrorIs(t, err, ErrResourceConflict)
}

func TestExecute_CancelledReservationDoesNotBlock(t *testing.T) {
	store := newMemoryStore(activeSuite("res-1"))
	store.reservations = append(store.reservations, &domain.Reservation{
		ID:         "old",
		TenantID:   "tenant-1",
		ResourceID: "res-1",
		StartDate:  date(t, "2026-03-10"),
		EndDate:    date(t, "2026-03-14"),
		Status:     domain.StatusCancelled,
	})
	uc := newBookingUseCase(store)

	_, err := uc.Execute(context.Background(), validRequest(t))
	require.NoError(t, err)
}

func TestExecute_ExactlyOneWinnerUnderConcurrency(t *testing.T) {
	store := newMemoryStore(activeSuite("res-1"))
	uc := newBookingUseCase(store)

	const attempts = 16
	var wg sync.WaitGroup
	errs := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			req := validRequest(t)
			req.PetID = uuid.NewString()
			_, errs[i] = uc.Execute(context.Background(), req)
		}(i)
	}
	wg.Wait()

	var won, conflicted int
	for _, err := range errs {
		switch {
		case err == nil:
			won++
		case errors.Is(err, ErrResourceConflict):
			conflicted++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, won)
	assert.Equal(t, attempts-1, conflicted)
	assert.Len(t, store.reservations, 1)
}

func TestExecute_ResourceNotFound(t *testing.T) {
	uc := newBookingUseCase(newMemoryStore())

	_, err := uc.Execute(context.Background(), validRequest(t))
	assert.ErrorIs(t, err, ErrResourceNotFound)
}

func TestExecute_TenantIsolation(t *testing.T) {
	resource := activeSuite("res-1")
	resource.TenantID = "tenant-2"
	uc := newBookingUseCase(newMemoryStore(resource))

	_, err := uc.Execute(context.Background(), validRequest(t))
	assert.ErrorIs(t, err, ErrResourceNotFound)
}

func TestExecute_InactiveResource(t *testing.T) {
	resource := activeSuite("res-1")
	resource.IsActive = false
	uc := newBookingUseCase(newMemoryStore(resource))

	_, err := uc.Execute(context.Background(), validRequest(t))
	assert.ErrorIs(t, err, ErrResourceInactive)
}

func TestExecute_ConstraintBackstopMapsToConflict(t *testing.T) {
	store := newMemoryStore(activeSuite("res-1"))
	store.createErr = reservationRepo.ErrResourceOccupied
	uc := newBookingUseCase(store)

	_, err := uc.Execute(context.Background(), validRequest(t))
	assert.ErrorIs(t, err, ErrResourceConflict)
}

func TestExecute_TimeoutMapping(t *testing.T) {
	store := newMemoryStore(activeSuite("res-1"))

	t.Run("lock timeout", func(t *testing.T) {
		uc := NewUseCase(store, store, &serialTxManager{store: store, err: txmanager.ErrLockTimeout}, nil, noopLogger{})
		_, err := uc.Execute(context.Background(), validRequest(t))
		assert.ErrorIs(t, err, ErrBookingTimeout)
	})

	t.Run("serialization retries exhausted", func(t *testing.T) {
		uc := NewUseCase(store, store, &serialTxManager{store: store, err: txmanager.ErrSerialization}, nil, noopLogger{})
		_, err := uc.Execute(context.Background(), validRequest(t))
		assert.ErrorIs(t, err, ErrBookingTimeout)
	})
}

func TestExecute_Validation(t *testing.T) {
	uc := newBookingUseCase(newMemoryStore(activeSuite("res-1")))

	tests := []struct {
		name    string
		mutate  func(*Request)
		wantErr error
	}{
		{"missing tenant", func(r *Request) { r.TenantID = "" }, ErrMissingTenant},
		{"missing resource", func(r *Request) { r.ResourceID = "" }, ErrInvalidInput},
		{"missing pet", func(r *Request) { r.PetID = "" }, ErrInvalidInput},
		{"missing customer", func(r *Request) { r.CustomerID = "" }, ErrInvalidInput},
		{"missing service", func(r *Request) { r.ServiceID = "" }, ErrInvalidInput},
		{"inverted range", func(r *Request) { r.StartDate, r.EndDate = r.EndDate, r.StartDate }, ErrInvalidDateRange},
		{"zero-length range", func(r *Request) { r.EndDate = r.StartDate }, ErrInvalidDateRange},
		{"released initial status", func(r *Request) { r.Status = domain.StatusCancelled }, ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest(t)
			tt.mutate(req)
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
