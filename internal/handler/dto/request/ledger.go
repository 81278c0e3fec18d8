package request

import (
	"strings"

	"stockcore/internal/usecase/commands"
	"stockcore/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RecordUsageRequest struct {
	ResourceID         uuid.UUID       `json:"resource_id" binding:"required"`
	Amount             decimal.Decimal `json:"amount" binding:"required"`
	LinkedOperationRef *string         `json:"linked_operation_ref,omitempty"`
	Actor              *string         `json:"actor,omitempty"`
	Description        string          `json:"description" binding:"required"`
}

func (r RecordUsageRequest) ToParams() commands.UsageParams {
	return commands.UsageParams{
		ResourceID:         r.ResourceID,
		Amount:             r.Amount,
		LinkedOperationRef: trimmedPtr(r.LinkedOperationRef),
		Actor:              trimmedPtr(r.Actor),
		Description:        strings.TrimSpace(r.Description),
	}
}

type RecordReturnRequest struct {
	ResourceID         uuid.UUID       `json:"resource_id" binding:"required"`
	Amount             decimal.Decimal `json:"amount" binding:"required"`
	ReversalOfID       *uuid.UUID      `json:"reversal_of_id,omitempty"`
	LinkedOperationRef *string         `json:"linked_operation_ref,omitempty"`
	Actor              *string         `json:"actor,omitempty"`
	Description        string          `json:"description" binding:"required"`
}

func (r RecordReturnRequest) ToParams() commands.ReturnParams {
	return commands.ReturnParams{
		ResourceID:         r.ResourceID,
		Amount:             r.Amount,
		ReversalOfID:       r.ReversalOfID,
		LinkedOperationRef: trimmedPtr(r.LinkedOperationRef),
		Actor:              trimmedPtr(r.Actor),
		Description:        strings.TrimSpace(r.Description),
	}
}

type RecordAdjustmentRequest struct {
	ResourceID  uuid.UUID       `json:"resource_id" binding:"required"`
	NewQuantity decimal.Decimal `json:"new_quantity"`
	Actor       *string         `json:"actor,omitempty"`
	Reason      string          `json:"reason" binding:"required"`
}

func (r RecordAdjustmentRequest) ToParams() commands.AdjustmentParams {
	return commands.AdjustmentParams{
		ResourceID:  r.ResourceID,
		NewQuantity: r.NewQuantity,
		Actor:       trimmedPtr(r.Actor),
		Reason:      strings.TrimSpace(r.Reason),
	}
}

type SufficiencyLineRequest struct {
	ResourceID uuid.UUID       `json:"resource_id" binding:"required"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
}

type SufficiencyCheckRequest struct {
	Items []SufficiencyLineRequest `json:"items" binding:"required,min=1"`
}

func (r SufficiencyCheckRequest) ToQueries() []queries.SufficiencyRequest {
	reqs := make([]queries.SufficiencyRequest, 0, len(r.Items))
	for _, line := range r.Items {
		reqs = append(reqs, queries.SufficiencyRequest{
			ResourceID: line.ResourceID,
			Amount:     line.Amount,
		})
	}
	return reqs
}

func trimmedPtr(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
