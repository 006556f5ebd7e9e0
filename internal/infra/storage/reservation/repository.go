package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/pawhaven/PH-BoardingService/internal/domain"
	"github.com/pawhaven/PH-BoardingService/pkg/dbmetrics"
	"github.com/pawhaven/PH-BoardingService/pkg/psqlbuilder"
	"github.com/pawhaven/PH-BoardingService/pkg/types"
)

// pqExclusionViolation postgres error code raised by the EXCLUDE constraint
// guarding occupying reservations
const pqExclusionViolation = "23P01"

var reservationColumns = []string{
	"id",
	"tenant_id",
	"customer_id",
	"pet_id",
	"resource_id",
	"service_id",
	"start_date",
	"end_date",
	"status",
	"notes",
	"external_id",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository repository for reservations
type Repository struct {
	db DBExecutor
}

// NewRepository creates a reservation repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new reservation. If the context carries an open
// transaction the insert joins it; the booking coordinator always calls
// this inside its serializable transaction after re-checking conflicts.
//
// An id is generated when the caller left it empty. An exclusion-constraint
// violation maps to ErrResourceOccupied so the caller can surface it as a
// booking conflict rather than a storage failure.
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if res.ID == "" {
		res.ID = uuid.NewString()
	}

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"id",
			"tenant_id",
			"customer_id",
			"pet_id",
			"resource_id",
			"service_id",
			"start_date",
			"end_date",
			"status",
			"notes",
			"external_id",
		).
		Values(
			res.ID,
			res.TenantID,
			res.CustomerID,
			res.PetID,
			res.ResourceID,
			res.ServiceID,
			res.StartDate,
			res.EndDate,
			res.Status,
			res.Notes,
			res.ExternalID,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pqExclusionViolation {
			return nil, ErrResourceOccupied
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return res, nil
}

// GetByID fetches a reservation by id, scoped and verified by tenant
func (r *Repository) GetByID(ctx context.Context, tenantID, id string) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"id": id, "tenant_id": tenantID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var res domain.Reservation
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&res.ID,
		&res.TenantID,
		&res.CustomerID,
		&res.PetID,
		&res.ResourceID,
		&res.ServiceID,
		&res.StartDate,
		&res.EndDate,
		&res.Status,
		&res.Notes,
		&res.ExternalID,
		&res.CancellationReason,
		&res.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %w", ErrScanRow, err)
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return &res, nil
}

// ListOccupyingOverlapping returns the occupying reservations of a tenant
// whose [start_date, end_date) interval overlaps [start, end) on any of the
// given resources. Half-open semantics: rows ending exactly on start or
// starting exactly on end do not count.
//
// This is the conflict query behind both the advisory availability read and
// the coordinator's in-transaction re-check.
func (r *Repository) ListOccupyingOverlapping(ctx context.Context, tenantID string, resourceIDs []string, start, end types.Date) ([]*domain.Reservation, error) {
	if len(resourceIDs) == 0 {
		return []*domain.Reservation{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	occupying := make([]string, len(domain.OccupyingStatuses))
	for i, s := range domain.OccupyingStatuses {
		occupying[i] = string(s)
	}

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{
			"tenant_id":   tenantID,
			"resource_id": resourceIDs,
			"status":      occupying,
		}).
		Where(squirrel.Lt{"start_date": end}).
		Where(squirrel.Gt{"end_date": start}).
		OrderBy("resource_id ASC", "start_date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListOccupyingOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListOccupyingOverlapping - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReservations(rows, "ListOccupyingOverlapping")
}

// ListWithFilter returns a tenant's reservations with optional filtering by
// resource, customer, pet, date window, status and imported origin.
// Released reservations are excluded unless IncludeReleased is set or a
// specific status is requested.
func (r *Repository) ListWithFilter(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"tenant_id": filter.TenantID})

	if filter.ResourceID != nil {
		builder = builder.Where(squirrel.Eq{"resource_id": *filter.ResourceID})
	}
	if len(filter.ResourceIDs) > 0 {
		builder = builder.Where(squirrel.Eq{"resource_id": filter.ResourceIDs})
	}
	if filter.CustomerID != nil {
		builder = builder.Where(squirrel.Eq{"customer_id": *filter.CustomerID})
	}
	if filter.PetID != nil {
		builder = builder.Where(squirrel.Eq{"pet_id": *filter.PetID})
	}

	// Date window uses the same half-open overlap shape as conflict detection
	if filter.EndDate != nil {
		builder = builder.Where(squirrel.Lt{"start_date": *filter.EndDate})
	}
	if filter.StartDate != nil {
		builder = builder.Where(squirrel.Gt{"end_date": *filter.StartDate})
	}

	if filter.Status != nil {
		builder = builder.Where(squirrel.Eq{"status": string(*filter.Status)})
	} else if !filter.IncludeReleased {
		occupying := make([]string, len(domain.OccupyingStatuses))
		for i, s := range domain.OccupyingStatuses {
			occupying[i] = string(s)
		}
		builder = builder.Where(squirrel.Eq{"status": occupying})
	}

	if filter.OnlyImported {
		builder = builder.Where(squirrel.NotEq{"external_id": nil})
	}

	builder = builder.OrderBy("start_date DESC", "created_at DESC")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReservations(rows, "ListWithFilter")
}

// UpdateStatus updates a reservation's status, scoped by tenant
func (r *Repository) UpdateStatus(ctx context.Context, tenantID, id string, status domain.ReservationStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("status", string(status)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "tenant_id": tenantID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// Cancel cancels a reservation recording the reason, scoped by tenant
func (r *Repository) Cancel(ctx context.Context, tenantID, id string, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("status", string(domain.StatusCancelled)).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "tenant_id": tenantID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

func (r *Repository) scanReservations(rows *sql.Rows, method string) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		var res domain.Reservation
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&res.ID,
			&res.TenantID,
			&res.CustomerID,
			&res.PetID,
			&res.ResourceID,
			&res.ServiceID,
			&res.StartDate,
			&res.EndDate,
			&res.Status,
			&res.Notes,
			&res.ExternalID,
			&res.CancellationReason,
			&res.CancelledAt,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, method, err)
		}

		res.CreatedAt = createdAt.Time
		res.UpdatedAt = updatedAt.Time
		reservations = append(reservations, &res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, method, err)
	}

	return reservations, nil
}
