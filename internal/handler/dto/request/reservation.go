package request

import (
	"stockcore/internal/usecase/commands"

	"github.com/google/uuid"
)

type ReserveLineRequest struct {
	ResourceID uuid.UUID `json:"resource_id" binding:"required"`
	Quantity   int64     `json:"quantity" binding:"required"`
}

type ReserveRequest struct {
	SessionID string               `json:"session_id" binding:"required"`
	Items     []ReserveLineRequest `json:"items" binding:"required,min=1"`
}

func (r ReserveRequest) ToCommand() []commands.ReserveItem {
	items := make([]commands.ReserveItem, 0, len(r.Items))
	for _, line := range r.Items {
		items = append(items, commands.ReserveItem{
			ResourceID: line.ResourceID,
			Quantity:   line.Quantity,
		})
	}
	return items
}

type ExtendRequest struct {
	AdditionalSeconds int64 `json:"additional_seconds" binding:"required"`
}
