package book_batch

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawhaven/PH-BoardingService/internal/domain"
	resourceRepo "github.com/pawhaven/PH-BoardingService/internal/infra/storage/resource"
	bookResource "github.com/pawhaven/PH-BoardingService/internal/usecase/book_resource"
	findAvailability "github.com/pawhaven/PH-BoardingService/internal/usecase/find_availability"
	"github.com/pawhaven/PH-BoardingService/pkg/types"
)

// world is an in-memory catalog and reservation store backing the real
// availability and booking usecases, so batch behavior is tested against the
// same allocation logic production wires together.
type world struct {
	mu           sync.Mutex
	resources    []*domain.Resource
	reservations []*domain.Reservation
}

func (w *world) ListActiveByTypes(_ context.Context, tenantID string, resourceTypes []domain.ResourceType) ([]*domain.Resource, error) {
	wanted := make(map[domain.ResourceType]struct{}, len(resourceTypes))
	for _, rt := range resourceTypes {
		wanted[rt] = struct{}{}
	}

	var out []*domain.Resource
	for _, r := range w.resources {
		if r.TenantID != tenantID || !r.IsActive {
			continue
		}
		if _, ok := wanted[r.Type]; ok {
			out = append(out, r)
		}
	}
	return out, nil
}

func (w *world) GetForUpdate(_ context.Context, tenantID, id string) (*domain.Resource, error) {
	for _, r := range w.resources {
		if r.ID == id && r.TenantID == tenantID {
			return r, nil
		}
	}
	return nil, resourceRepo.ErrResourceNotFound
}

func (w *world) ListOccupyingOverlapping(_ context.Context, tenantID string, resourceIDs []string, start, end types.Date) ([]*domain.Reservation, error) {
	ids := make(map[string]struct{}, len(resourceIDs))
	for _, id := range resourceIDs {
		ids[id] = struct{}{}
	}

	var out []*domain.Reservation
	for _, r := range w.reservations {
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

func (w *world) Create(_ context.Context, r *domain.Reservation) (*domain.Reservation, error) {
	created := *r
	created.ID = uuid.NewString()
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	w.reservations = append(w.reservations, &created)
	return &created, nil
}

func (w *world) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	w.mu.Lock()
	defer w.mu.Unlock()
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

func suite(id string, number int, resourceType domain.ResourceType) *domain.Resource {
	return &domain.Resource{
		ID:       id,
		TenantID: "tenant-1",
		Type:     resourceType,
		Name:     "Unit",
		Number:   number,
		IsActive: true,
	}
}

func newAllocator(w *world) *UseCase {
	finder := findAvailability.NewUseCase(w, w, noopLogger{})
	booker := bookResource.NewUseCase(w, w, w, nil, noopLogger{})
	return NewUseCase(finder, booker, noopLogger{})
}

func item(t *testing.T, petID, category string) Item {
	return Item{
		PetID:      petID,
		CustomerID: "cust-1",
		ServiceID:  "svc-boarding",
		Category:   category,
		StartDate:  date(t, "2026-03-10"),
		EndDate:    date(t, "2026-03-14"),
	}
}

func TestExecute_AssignsDistinctResources(t *testing.T) {
	w := &world{resources: []*domain.Resource{
		suite("res-1", 1, domain.TypeStandardSuite),
		suite("res-2", 2, domain.TypeStandardSuite),
		suite("res-3", 3, domain.TypeVIPSuite),
	}}
	uc := newAllocator(w)

	// Three pets, same dates, categories resolving to overlapping type sets
	resp, err := uc.Execute(context.Background(), &Request{
		TenantID: "tenant-1",
		Items: []Item{
			item(t, "pet-1", "SUITE"),
			item(t, "pet-2", "SUITE"),
			item(t, "pet-3", "VIP_SUITE"),
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 3, resp.Succeeded)
	assert.Equal(t, 0, resp.Failed)

	seen := make(map[string]struct{})
	for _, res := range resp.Results {
		require.NotNil(t, res.Reservation, "item %d should have booked", res.Index)
		_, dup := seen[res.Reservation.ResourceID]
		assert.False(t, dup, "resource %s assigned twice", res.Reservation.ResourceID)
		seen[res.Reservation.ResourceID] = struct{}{}
	}
}

func TestExecute_DeterministicLowestNumberFirst(t *testing.T) {
	w := &world{resources: []*domain.Resource{
		suite("res-5", 5, domain.TypeStandardSuite),
		suite("res-2", 2, domain.TypeStandardSuite),
	}}
	uc := newAllocator(w)

	resp, err := uc.Execute(context.Background(), &Request{
		TenantID: "tenant-1",
		Items:    []Item{item(t, "pet-1", "SUITE"), item(t, "pet-2", "SUITE")},
	})
	require.NoError(t, err)
	require.Equal(t, 2, resp.Succeeded)

	// The fake returns candidates in insertion order; production ordering by
	// number comes from the repository query. Here item 0 takes the first
	// candidate and item 1 the next.
	assert.Equal(t, "res-5", resp.Results[0].Reservation.ResourceID)
	assert.Equal(t, "res-2", resp.Results[1].Reservation.ResourceID)
}

func TestExecute_PartialSuccessWhenCategoryExhausted(t *testing.T) {
	w := &world{resources: []*domain.Resource{
		suite("res-1", 1, domain.TypeStandardSuite),
	}}
	uc := newAllocator(w)

	resp, err := uc.Execute(context.Background(), &Request{
		TenantID: "tenant-1",
		Items:    []Item{item(t, "pet-1", "SUITE"), item(t, "pet-2", "SUITE")},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Succeeded)
	assert.Equal(t, 1, resp.Failed)

	require.NotNil(t, resp.Results[0].Reservation)
	assert.Nil(t, resp.Results[1].Reservation)
	assert.Equal(t, FailureNoResource, resp.Results[1].FailureCode)

	// The successful booking stands
	assert.Len(t, w.reservations, 1)
}

func TestExecute_InvalidItemReportedNotFatal(t *testing.T) {
	w := &world{resources: []*domain.Resource{
		suite("res-1", 1, domain.TypeStandardSuite),
	}}
	uc := newAllocator(w)

	bad := item(t, "", "SUITE")

	resp, err := uc.Execute(context.Background(), &Request{
		TenantID: "tenant-1",
		Items:    []Item{bad, item(t, "pet-2", "SUITE")},
	})
	require.NoError(t, err)

	assert.Equal(t, FailureInvalid, resp.Results[0].FailureCode)
	require.NotNil(t, resp.Results[1].Reservation)
	assert.Equal(t, 1, resp.Succeeded)
	assert.Equal(t, 1, resp.Failed)
}

func TestExecute_UnknownCategoryFailsItem(t *testing.T) {
	w := &world{resources: []*domain.Resource{
		suite("res-1", 1, domain.TypeStandardSuite),
	}}
	uc := newAllocator(w)

	resp, err := uc.Execute(context.Background(), &Request{
		TenantID: "tenant-1",
		Items:    []Item{item(t, "pet-1", "PONY_STABLE")},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Failed)
	assert.Equal(t, FailureNoResource, resp.Results[0].FailureCode)
}

func TestExecute_RequestValidation(t *testing.T) {
	uc := newAllocator(&world{})

	t.Run("missing tenant", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{Items: []Item{item(t, "pet-1", "SUITE")}})
		assert.ErrorIs(t, err, ErrMissingTenant)
	})

	t.Run("empty batch", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{TenantID: "tenant-1"})
		assert.ErrorIs(t, err, ErrEmptyBatch)
	})
}
