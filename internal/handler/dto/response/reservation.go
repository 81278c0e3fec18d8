package response

import (
	"time"

	"stockcore/internal/usecase/commands"

	"github.com/google/uuid"
)

type ReservedItemResponse struct {
	ResourceID  uuid.UUID `json:"resourceId"`
	Quantity    int64     `json:"quantity"`
	DisplayName string    `json:"displayName"`
	DisplaySKU  string    `json:"displaySku"`
}

type FailedItemResponse struct {
	ResourceID uuid.UUID `json:"resourceId"`
	Requested  int64     `json:"requested"`
	Available  int64     `json:"available"`
}

type ReserveResponse struct {
	Success   bool                   `json:"success"`
	SessionID string                 `json:"sessionId"`
	ExpiresAt *time.Time             `json:"expiresAt,omitempty"`
	Items     []ReservedItemResponse `json:"items,omitempty"`
	Failed    []FailedItemResponse   `json:"failed,omitempty"`
}

func FromReserveResult(result *commands.ReserveResult) *ReserveResponse {
	resp := &ReserveResponse{
		Success:   result.Success,
		SessionID: result.SessionID,
	}
	if result.Success {
		expiresAt := result.ExpiresAt
		resp.ExpiresAt = &expiresAt
	}
	for _, item := range result.Items {
		resp.Items = append(resp.Items, ReservedItemResponse{
			ResourceID:  item.ResourceID,
			Quantity:    item.Quantity,
			DisplayName: item.DisplayName,
			DisplaySKU:  item.DisplaySKU,
		})
	}
	for _, failed := range result.Failed {
		resp.Failed = append(resp.Failed, FailedItemResponse{
			ResourceID: failed.ResourceID,
			Requested:  failed.Requested,
			Available:  failed.Available,
		})
	}
	return resp
}

type ReleaseResponse struct {
	Released bool `json:"released"`
}

type ConfirmResponse struct {
	Confirmed bool                   `json:"confirmed"`
	SessionID string                 `json:"sessionId"`
	Items     []ReservedItemResponse `json:"items"`
}

func FromConfirmResult(result *commands.ConfirmResult) *ConfirmResponse {
	resp := &ConfirmResponse{
		Confirmed: true,
		SessionID: result.SessionID,
	}
	for _, item := range result.Items {
		resp.Items = append(resp.Items, ReservedItemResponse{
			ResourceID:  item.ResourceID,
			Quantity:    item.Quantity,
			DisplayName: item.DisplayName,
			DisplaySKU:  item.DisplaySKU,
		})
	}
	return resp
}

type ExtendResponse struct {
	Extended  bool       `json:"extended"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}
