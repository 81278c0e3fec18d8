package response

import (
	"stockcore/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AvailabilityResponse struct {
	ResourceID uuid.UUID       `json:"resourceId"`
	Basis      string          `json:"basis"`
	Total      decimal.Decimal `json:"total"`
	Reserved   int64           `json:"reserved"`
	Available  decimal.Decimal `json:"available"`
	Unbounded  bool            `json:"unbounded"`
}

func FromAvailabilityView(view *queries.AvailabilityView, basis string) *AvailabilityResponse {
	return &AvailabilityResponse{
		ResourceID: view.ResourceID,
		Basis:      basis,
		Total:      view.Total,
		Reserved:   view.Reserved,
		Available:  view.Available,
		Unbounded:  view.Unbounded,
	}
}
