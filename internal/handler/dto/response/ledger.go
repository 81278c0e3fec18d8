package response

import (
	"time"

	"stockcore/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type EntryResponse struct {
	ID                 uuid.UUID       `json:"id"`
	TenantID           uuid.UUID       `json:"tenantId"`
	ResourceID         uuid.UUID       `json:"resourceId"`
	Type               string          `json:"type"`
	WeightBefore       decimal.Decimal `json:"weightBefore"`
	WeightChange       decimal.Decimal `json:"weightChange"`
	WeightAfter        decimal.Decimal `json:"weightAfter"`
	LinkedOperationRef *string         `json:"linkedOperationRef,omitempty"`
	ReversalOfID       *uuid.UUID      `json:"reversalOfId,omitempty"`
	IsReversal         bool            `json:"isReversal"`
	Actor              *string         `json:"actor,omitempty"`
	Description        string          `json:"description"`
	CreatedAt          time.Time       `json:"createdAt"`
}

func FromEntryView(view *queries.EntryView) *EntryResponse {
	return &EntryResponse{
		ID:                 view.ID,
		TenantID:           view.TenantID,
		ResourceID:         view.ResourceID,
		Type:               view.Type,
		WeightBefore:       view.WeightBefore,
		WeightChange:       view.WeightChange,
		WeightAfter:        view.WeightAfter,
		LinkedOperationRef: view.LinkedOperationRef,
		ReversalOfID:       view.ReversalOfID,
		IsReversal:         view.IsReversal,
		Actor:              view.Actor,
		Description:        view.Description,
		CreatedAt:          view.CreatedAt,
	}
}

type EntryListResponse struct {
	Entries    []*EntryResponse `json:"entries"`
	NextCursor *string          `json:"nextCursor,omitempty"`
}

func FromEntryViews(views []*queries.EntryView, next *queries.Cursor) *EntryListResponse {
	resp := &EntryListResponse{Entries: make([]*EntryResponse, 0, len(views))}
	for _, view := range views {
		resp.Entries = append(resp.Entries, FromEntryView(view))
	}
	if next != nil {
		cursor := next.After
		resp.NextCursor = &cursor
	}
	return resp
}

type TypeStatsResponse struct {
	Count int64           `json:"count"`
	Total decimal.Decimal `json:"total"`
}

type ResourceSummaryResponse struct {
	ResourceID    uuid.UUID                    `json:"resourceId"`
	TotalUsed     decimal.Decimal              `json:"totalUsed"`
	TotalReturned decimal.Decimal              `json:"totalReturned"`
	TotalAdjusted decimal.Decimal              `json:"totalAdjusted"`
	ByType        map[string]TypeStatsResponse `json:"byType"`
}

func FromResourceSummary(view *queries.ResourceSummaryView) *ResourceSummaryResponse {
	resp := &ResourceSummaryResponse{
		ResourceID:    view.ResourceID,
		TotalUsed:     view.TotalUsed,
		TotalReturned: view.TotalReturned,
		TotalAdjusted: view.TotalAdjusted,
		ByType:        make(map[string]TypeStatsResponse, len(view.ByType)),
	}
	for entryType, stats := range view.ByType {
		resp.ByType[entryType] = TypeStatsResponse{Count: stats.Count, Total: stats.Total}
	}
	return resp
}

type ShortfallResponse struct {
	ResourceID uuid.UUID       `json:"resourceId"`
	Required   decimal.Decimal `json:"required"`
	Available  decimal.Decimal `json:"available"`
}

type SufficiencyResponse struct {
	OK         bool                `json:"ok"`
	Shortfalls []ShortfallResponse `json:"shortfalls,omitempty"`
}

func FromSufficiencyResult(result *queries.SufficiencyResult) *SufficiencyResponse {
	resp := &SufficiencyResponse{OK: result.OK}
	for _, shortfall := range result.Shortfalls {
		resp.Shortfalls = append(resp.Shortfalls, ShortfallResponse{
			ResourceID: shortfall.ResourceID,
			Required:   shortfall.Required,
			Available:  shortfall.Available,
		})
	}
	return resp
}
