package create_booking_batch

import (
	createBooking "github.com/pawhaven/PH-BoardingService/internal/api/handlers/create_booking"
	bookBatch "github.com/pawhaven/PH-BoardingService/internal/usecase/book_batch"
	"github.com/pawhaven/PH-BoardingService/pkg/types"
)

// BatchItemRequest one booking within the batch
type BatchItemRequest struct {
	PetID      string  `json:"petId"`
	CustomerID string  `json:"customerId"`
	ServiceID  string  `json:"serviceId"`
	Category   string  `json:"category"`
	StartDate  string  `json:"startDate"` // "2026-03-10"
	EndDate    string  `json:"endDate"`   // "2026-03-14"
	Notes      *string `json:"notes,omitempty"`
}

// CreateBatchRequest HTTP request model
type CreateBatchRequest struct {
	Items []BatchItemRequest `json:"items"`
}

// BatchItemResult per-item outcome. Exactly one of reservation and
// failureCode is present.
type BatchItemResult struct {
	Index       int                            `json:"index"`
	Reservation *createBooking.BookingResponse `json:"reservation,omitempty"`
	FailureCode string                         `json:"failureCode,omitempty"`
	FailureMsg  string                         `json:"failureMessage,omitempty"`
}

// BatchResponse HTTP response model
type BatchResponse struct {
	Results   []BatchItemResult `json:"results"`
	Succeeded int               `json:"succeeded"`
	Failed    int               `json:"failed"`
}

// ToUseCaseRequest converts the HTTP request into the usecase model
func (r *CreateBatchRequest) ToUseCaseRequest(tenantID string) (*bookBatch.Request, error) {
	items := make([]bookBatch.Item, 0, len(r.Items))
	for _, item := range r.Items {
		start, err := types.ParseDate(item.StartDate)
		if err != nil {
			return nil, err
		}

		end, err := types.ParseDate(item.EndDate)
		if err != nil {
			return nil, err
		}

		items = append(items, bookBatch.Item{
			PetID:      item.PetID,
			CustomerID: item.CustomerID,
			ServiceID:  item.ServiceID,
			Category:   item.Category,
			StartDate:  start,
			EndDate:    end,
			Notes:      item.Notes,
		})
	}

	return &bookBatch.Request{
		TenantID: tenantID,
		Items:    items,
	}, nil
}

// FromUseCaseResponse converts the usecase response to the HTTP model
func FromUseCaseResponse(resp *bookBatch.Response) *BatchResponse {
	results := make([]BatchItemResult, 0, len(resp.Results))
	for _, res := range resp.Results {
		item := BatchItemResult{
			Index:       res.Index,
			FailureCode: res.FailureCode,
			FailureMsg:  res.FailureMsg,
		}
		if res.Reservation != nil {
			item.Reservation = createBooking.FromUseCaseResponse(res.Reservation)
		}
		results = append(results, item)
	}

	return &BatchResponse{
		Results:   results,
		Succeeded: resp.Succeeded,
		Failed:    resp.Failed,
	}
}
