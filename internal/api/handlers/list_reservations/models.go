package list_reservations

import (
	"net/url"

	"github.com/pawhaven/PH-BoardingService/internal/service/reservations/models"
	"github.com/pawhaven/PH-BoardingService/pkg/types"
)

// ToServiceRequest builds the listing request from query parameters.
// Supported filters: resourceId, customerId, petId, from, to (half-open
// date window), status, onlyImported, includeReleased.
func ToServiceRequest(tenantID string, query url.Values) (*models.ListReservationsRequest, error) {
	req := &models.ListReservationsRequest{
		TenantID:        tenantID,
		OnlyImported:    query.Get("onlyImported") == "true",
		IncludeReleased: query.Get("includeReleased") == "true",
	}

	if v := query.Get("resourceId"); v != "" {
		req.ResourceID = &v
	}
	if v := query.Get("customerId"); v != "" {
		req.CustomerID = &v
	}
	if v := query.Get("petId"); v != "" {
		req.PetID = &v
	}
	if v := query.Get("status"); v != "" {
		req.Status = &v
	}

	if v := query.Get("from"); v != "" {
		from, err := types.ParseDate(v)
		if err != nil {
			return nil, err
		}
		req.StartDate = &from
	}

	if v := query.Get("to"); v != "" {
		to, err := types.ParseDate(v)
		if err != nil {
			return nil, err
		}
		req.EndDate = &to
	}

	return req, nil
}
