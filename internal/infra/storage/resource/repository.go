package resource

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/pawhaven/PH-BoardingService/internal/domain"
	"github.com/pawhaven/PH-BoardingService/pkg/dbmetrics"
	"github.com/pawhaven/PH-BoardingService/pkg/psqlbuilder"
)

var resourceColumns = []string{
	"id",
	"tenant_id",
	"type",
	"name",
	"number",
	"capacity",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository repository for the bookable resource catalog.
// The catalog is read-only from the booking engine's perspective;
// administrative CRUD lives elsewhere.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a resource catalog repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID fetches a resource by id, scoped and verified by tenant.
// A resource belonging to another tenant is indistinguishable from a
// missing one.
func (r *Repository) GetByID(ctx context.Context, tenantID, id string) (*domain.Resource, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(resourceColumns...).
		From("resources").
		Where(squirrel.Eq{"id": id, "tenant_id": tenantID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanResource(executor.QueryRowContext(ctx, query, args...), "GetByID")
}

// GetForUpdate fetches a resource by id with a row-level exclusive lock.
// Must run inside a transaction; the lock serializes concurrent booking
// attempts on the same resource until commit or rollback. Contention on
// other resources or other tenants is unaffected.
func (r *Repository) GetForUpdate(ctx context.Context, tenantID, id string) (*domain.Resource, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(resourceColumns...).
		From("resources").
		Where(squirrel.Eq{"id": id, "tenant_id": tenantID})

	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetForUpdate - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanResource(executor.QueryRowContext(ctx, query, args...), "GetForUpdate")
}

// ListActiveByTypes lists a tenant's active resources of the given types,
// ordered by number then name so callers see a deterministic candidate
// order. An empty type set returns an empty list.
func (r *Repository) ListActiveByTypes(ctx context.Context, tenantID string, types []domain.ResourceType) ([]*domain.Resource, error) {
	if len(types) == 0 {
		return []*domain.Resource{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	typeStrings := make([]string, len(types))
	for i, t := range types {
		typeStrings[i] = string(t)
	}

	query, args, err := psqlbuilder.Select(resourceColumns...).
		From("resources").
		Where(squirrel.Eq{
			"tenant_id": tenantID,
			"type":      typeStrings,
			"is_active": true,
		}).
		OrderBy("number ASC", "name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveByTypes - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveByTypes - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	resources := make([]*domain.Resource, 0)
	for rows.Next() {
		var res domain.Resource
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&res.ID,
			&res.TenantID,
			&res.Type,
			&res.Name,
			&res.Number,
			&res.Capacity,
			&res.IsActive,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListActiveByTypes - scan row: %v", ErrScanRow, err)
		}

		res.CreatedAt = createdAt.Time
		res.UpdatedAt = updatedAt.Time
		resources = append(resources, &res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActiveByTypes - rows error: %v", ErrScanRow, err)
	}

	return resources, nil
}

func (r *Repository) scanResource(row *sql.Row, method string) (*domain.Resource, error) {
	var res domain.Resource
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&res.ID,
		&res.TenantID,
		&res.Type,
		&res.Name,
		&res.Number,
		&res.Capacity,
		&res.IsActive,
		&createdAt,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrResourceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan resource: %w", ErrScanRow, method, err)
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return &res, nil
}
