package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	reqdto "stockcore/internal/handler/dto/request"
	resdto "stockcore/internal/handler/dto/response"
	"stockcore/internal/handler/httperr"
	"stockcore/internal/usecase/commands"
	"stockcore/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type LedgerHandler struct {
	ledgerUseCase commands.LedgerCommands
	ledgerQueries queries.LedgerQueries
}

func NewLedgerHandler(ledgerUseCase commands.LedgerCommands, ledgerQueries queries.LedgerQueries) *LedgerHandler {
	return &LedgerHandler{
		ledgerUseCase: ledgerUseCase,
		ledgerQueries: ledgerQueries,
	}
}

func (h *LedgerHandler) RecordUsage(c *gin.Context) {
	var req reqdto.RecordUsageRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	view, err := h.ledgerUseCase.RecordUsage(c.Request.Context(), req.ToParams())
	if err != nil {
		h.respondEntryError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromEntryView(view))
}

func (h *LedgerHandler) RecordReturn(c *gin.Context) {
	var req reqdto.RecordReturnRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	view, err := h.ledgerUseCase.RecordReturn(c.Request.Context(), req.ToParams())
	if err != nil {
		h.respondEntryError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromEntryView(view))
}

func (h *LedgerHandler) RecordAdjustment(c *gin.Context) {
	var req reqdto.RecordAdjustmentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	view, err := h.ledgerUseCase.RecordAdjustment(c.Request.Context(), req.ToParams())
	if err != nil {
		h.respondEntryError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromEntryView(view))
}

func (h *LedgerHandler) respondEntryError(c *gin.Context, err error) {
	var insufficientStock *commands.InsufficientStockError
	switch {
	case errors.As(err, &insufficientStock):
		httperr.AbortWithError(c, http.StatusConflict, err, "Insufficient stock", gin.H{
			"resourceId": insufficientStock.ResourceID,
			"required":   insufficientStock.Required,
			"available":  insufficientStock.Available,
		})
	case errors.Is(err, commands.ErrResourceNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Resource not found", nil)
	case errors.Is(err, commands.ErrEntryNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Ledger entry not found", nil)
	case errors.Is(err, commands.ErrReversalMismatch):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Reversal does not match the original entry", nil)
	case errors.Is(err, commands.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid ledger request", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func (h *LedgerHandler) CheckSufficiency(c *gin.Context) {
	var req reqdto.SufficiencyCheckRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	result, err := h.ledgerQueries.ValidateSufficiency(c.Request.Context(), req.ToQueries())
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrInvalidFilter):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid sufficiency request", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromSufficiencyResult(result))
}

func (h *LedgerHandler) ListEntries(c *gin.Context) {
	filter, err := parseEntryFilter(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	var after *queries.Cursor
	if cursor := c.Query("after"); cursor != "" {
		after = &queries.Cursor{After: cursor}
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, parseErr := strconv.Atoi(raw)
		if parseErr != nil || parsed < 0 {
			httperr.AbortWithError(c, http.StatusBadRequest, parseErr, "Invalid limit", nil)
			return
		}
		limit = parsed
	}

	views, next, err := h.ledgerQueries.ListEntries(c.Request.Context(), filter, after, limit)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrInvalidCursor):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid pagination cursor", nil)
		case errors.Is(err, queries.ErrInvalidFilter):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid entry filter", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromEntryViews(views, next))
}

func (h *LedgerHandler) ResourceSummary(c *gin.Context) {
	resourceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid resource ID format", nil)
		return
	}

	summary, err := h.ledgerQueries.ResourceSummary(c.Request.Context(), resourceID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromResourceSummary(summary))
}

func parseEntryFilter(c *gin.Context) (queries.EntryFilter, error) {
	var filter queries.EntryFilter

	if raw := c.Query("resource_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return filter, errors.New("invalid resource_id")
		}
		filter.ResourceID = &id
	}
	if raw := c.Query("type"); raw != "" {
		filter.Type = &raw
	}
	if raw := c.Query("from"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return filter, errors.New("invalid from timestamp")
		}
		filter.From = &t
	}
	if raw := c.Query("to"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return filter, errors.New("invalid to timestamp")
		}
		filter.To = &t
	}
	return filter, nil
}
