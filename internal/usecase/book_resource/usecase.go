package book_resource

import (
	"context"
	"errors"
	"fmt"

	"github.com/pawhaven/PH-BoardingService/internal/domain"
	resourceRepo "github.com/pawhaven/PH-BoardingService/internal/infra/storage/resource"
	reservationRepo "github.com/pawhaven/PH-BoardingService/internal/infra/storage/reservation"
	"github.com/pawhaven/PH-BoardingService/pkg/txmanager"
)

// Metric outcome labels
const (
	outcomeCreated  = "created"
	outcomeConflict = "conflict"
	outcomeTimeout  = "timeout"
	outcomeError    = "error"
)

// UseCase the booking transaction coordinator: the single write path that
// assigns a resource to a reservation.
//
// Check-then-insert runs inside one serializable transaction, after taking a
// row lock on the resource. A concurrent Book on the same resource blocks on
// that lock until the first transaction commits, then sees the new row in
// its conflict re-check. Contention is strictly per tenant and resource;
// bookings on other resources proceed in parallel.
type UseCase struct {
	resourceRepo    ResourceRepository
	reservationRepo ReservationRepository
	txManager       TransactionManager
	metrics         Metrics
	logger          Logger
}

// NewUseCase creates the booking coordinator. metrics may be nil.
func NewUseCase(
	resourceRepo ResourceRepository,
	reservationRepo ReservationRepository,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		resourceRepo:    resourceRepo,
		reservationRepo: reservationRepo,
		txManager:       txManager,
		metrics:         metrics,
		logger:          logger,
	}
}

// Execute books the resource for [StartDate, EndDate) or fails without
// persisting anything. Of any set of concurrent calls targeting overlapping
// intervals on one resource, exactly one succeeds; the rest observe
// ErrResourceConflict. A lock wait exceeding the configured bound surfaces
// ErrBookingTimeout.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("Book: tenant=%s, resource=%s, pet=%s, range=%s..%s",
		req.TenantID, req.ResourceID, req.PetID, req.StartDate, req.EndDate)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("Book: validation failed: %v", err)
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = domain.StatusConfirmed
	}

	var result *domain.Reservation
	var resourceType domain.ResourceType

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Lock the resource row first; every concurrent Book on this
		// resource serializes here.
		resource, err := uc.resourceRepo.GetForUpdate(txCtx, req.TenantID, req.ResourceID)
		if err != nil {
			if errors.Is(err, resourceRepo.ErrResourceNotFound) {
				return ErrResourceNotFound
			}
			return fmt.Errorf("%w: failed to lock resource: %w", ErrInternal, err)
		}
		resourceType = resource.Type

		if !resource.IsActive {
			return ErrResourceInactive
		}

		// Re-check conflicts under the lock. Whatever availability said
		// before the transaction started no longer matters.
		conflicts, err := uc.reservationRepo.ListOccupyingOverlapping(
			txCtx, req.TenantID, []string{req.ResourceID}, req.StartDate, req.EndDate)
		if err != nil {
			return fmt.Errorf("%w: failed to check conflicts: %w", ErrInternal, err)
		}
		if len(conflicts) > 0 {
			uc.logger.Warn("Book: resource %s already occupied for %s..%s (%d overlapping)",
				req.ResourceID, req.StartDate, req.EndDate, len(conflicts))
			return ErrResourceConflict
		}

		created, err := uc.reservationRepo.Create(txCtx, &domain.Reservation{
			TenantID:   req.TenantID,
			CustomerID: req.CustomerID,
			PetID:      req.PetID,
			ResourceID: req.ResourceID,
			ServiceID:  req.ServiceID,
			StartDate:  req.StartDate,
			EndDate:    req.EndDate,
			Status:     status,
			Notes:      req.Notes,
			ExternalID: req.ExternalID,
		})
		if err != nil {
			// The exclusion constraint is the backstop behind the lock
			if errors.Is(err, reservationRepo.ErrResourceOccupied) {
				return ErrResourceConflict
			}
			return fmt.Errorf("%w: failed to create reservation: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, uc.mapTxError(err, resourceType)
	}

	uc.observe(outcomeCreated, "")
	uc.logger.Info("Book: created reservation id=%s, tenant=%s, resource=%s, status=%s",
		result.ID, result.TenantID, result.ResourceID, result.Status)

	return fromDomain(result), nil
}

// mapTxError classifies transaction-level failures into the usecase taxonomy
// and records the attempt outcome
func (uc *UseCase) mapTxError(err error, resourceType domain.ResourceType) error {
	switch {
	case errors.Is(err, ErrResourceConflict):
		uc.observe(outcomeConflict, string(resourceType))
	case errors.Is(err, txmanager.ErrLockTimeout):
		uc.observe(outcomeTimeout, "")
		uc.logger.Warn("Book: lock wait exceeded bound: %v", err)
		return fmt.Errorf("%w: %v", ErrBookingTimeout, err)
	case errors.Is(err, txmanager.ErrSerialization):
		// Transient contention that outlived the retries; the caller can
		// retry the same request after backing off.
		uc.observe(outcomeTimeout, "")
		uc.logger.Warn("Book: serialization retries exhausted: %v", err)
		return fmt.Errorf("%w: %v", ErrBookingTimeout, err)
	case errors.Is(err, ErrResourceNotFound), errors.Is(err, ErrResourceInactive):
		// Request-level failures, not attempt outcomes
	default:
		uc.observe(outcomeError, "")
		uc.logger.Error("Book: transaction failed: %v", err)
	}
	return err
}

func (uc *UseCase) observe(outcome string, resourceType string) {
	if uc.metrics == nil {
		return
	}
	uc.metrics.ObserveBookingAttempt(outcome)
	if outcome == outcomeConflict && resourceType != "" {
		uc.metrics.ObserveBookingConflict(resourceType)
	}
}
