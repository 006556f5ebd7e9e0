package reservations

import (
	"context"
	"errors"
	"fmt"
	"strings"

	reservationRepo "github.com/pawhaven/PH-BoardingService/internal/infra/storage/reservation"
	"github.com/pawhaven/PH-BoardingService/internal/service/reservations/models"
)

// Service lifecycle operations on existing reservations: lookup, listing,
// cancellation and status transitions. Creating reservations is the booking
// coordinator's job, never this service's.
type Service struct {
	reservationRepo ReservationRepository
	logger          Logger
}

// NewService creates a reservations service
func NewService(reservationRepo ReservationRepository, logger Logger) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// GetByID fetches a reservation, scoped and verified by tenant
func (s *Service) GetByID(ctx context.Context, tenantID, id string) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: tenant=%s, reservation=%s", tenantID, id)

	if strings.TrimSpace(tenantID) == "" {
		return nil, ErrMissingTenant
	}

	reservation, err := s.reservationRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation %s not found for tenant %s", id, tenantID)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation %s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReservation(reservation), nil
}

// List returns a tenant's reservations with optional filtering
func (s *Service) List(ctx context.Context, req *models.ListReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("List: tenant=%s", req.TenantID)

	if strings.TrimSpace(req.TenantID) == "" {
		return nil, ErrMissingTenant
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter for tenant %s: %v", req.TenantID, err)
		return nil, fmt.Errorf("%w: invalid filter: %v", ErrInvalidInput, err)
	}

	reservations, err := s.reservationRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error for tenant %s: %v", req.TenantID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: tenant=%s returned %d reservations", req.TenantID, len(reservations))
	return models.FromDomainReservationList(reservations), nil
}

// Cancel cancels a reservation, freeing its resource for the interval.
// Only PENDING and CONFIRMED reservations can be cancelled; a checked-in
// pet checks out instead.
func (s *Service) Cancel(ctx context.Context, tenantID, id string, req *models.CancelReservationRequest) error {
	s.logger.Info("Cancel: tenant=%s, reservation=%s", tenantID, id)

	if strings.TrimSpace(tenantID) == "" {
		return ErrMissingTenant
	}

	reservation, err := s.reservationRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Cancel: reservation %s not found for tenant %s", id, tenantID)
			return ErrReservationNotFound
		}
		s.logger.Error("Cancel: repository error for reservation %s: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !reservation.CanBeCancelled() {
		s.logger.Warn("Cancel: reservation %s cannot be cancelled, status=%s", id, reservation.Status)
		return ErrCannotCancel
	}

	if err := s.reservationRepo.Cancel(ctx, tenantID, id, req.CancellationReason); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return ErrReservationNotFound
		}
		s.logger.Error("Cancel: repository error for reservation %s: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: reservation %s cancelled", id)
	return nil
}

// UpdateStatus performs a lifecycle transition (confirm, check-in, check-out,
// complete, no-show) after validating it against the current status
func (s *Service) UpdateStatus(ctx context.Context, tenantID, id string, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: tenant=%s, reservation=%s, status=%s", tenantID, id, req.Status)

	if strings.TrimSpace(tenantID) == "" {
		return ErrMissingTenant
	}

	newStatus, err := models.ToDomainStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status %q for reservation %s", req.Status, id)
		return fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	reservation, err := s.reservationRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("UpdateStatus: reservation %s not found for tenant %s", id, tenantID)
			return ErrReservationNotFound
		}
		s.logger.Error("UpdateStatus: repository error for reservation %s: %v", id, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	if !reservation.CanTransitionTo(newStatus) {
		s.logger.Warn("UpdateStatus: illegal transition %s -> %s for reservation %s",
			reservation.Status, newStatus, id)
		return ErrInvalidTransition
	}

	if err := s.reservationRepo.UpdateStatus(ctx, tenantID, id, newStatus); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return ErrReservationNotFound
		}
		s.logger.Error("UpdateStatus: repository error for reservation %s: %v", id, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: reservation %s moved to %s", id, newStatus)
	return nil
}
