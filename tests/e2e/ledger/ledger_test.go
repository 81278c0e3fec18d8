//go:build e2e

package ledger_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"stockcore/internal/handler/dto/response"
	"stockcore/tests/common/dbtest"
	"stockcore/tests/common/httptest"
	"stockcore/tests/e2e"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	usagesURL      = "/api/ledger/usages"
	returnsURL     = "/api/ledger/returns"
	adjustmentsURL = "/api/ledger/adjustments"
	sufficiencyURL = "/api/ledger/sufficiency-checks"
	entriesURL     = "/api/ledger/entries"
	summaryURL     = "/api/ledger/resources/%s/summary"
	stockLookupURL = "/api/resources/%s/availability"
)

type LedgerSuite struct {
	e2e.SharedSuite
}

func (s *LedgerSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestLedgerSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(LedgerSuite))
}

func (s *LedgerSuite) seedStockedResource(t *testing.T, sku string, quantity string) uuid.UUID {
	t.Helper()

	resourceID := dbtest.CreateTestResource(t, s.DB, "Aluminum Sheet", sku, 0, true)
	dbtest.SetStockLevel(t, s.DB, resourceID, decimal.RequireFromString(quantity))
	return resourceID
}

func (s *LedgerSuite) recordUsage(t *testing.T, resourceID uuid.UUID, amount, description string) response.EntryResponse {
	t.Helper()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, usagesURL, map[string]any{
		"resource_id": resourceID.String(),
		"amount":      amount,
		"description": description,
	})

	var entry response.EntryResponse
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &entry)
	return entry
}

func requireDecimal(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	require.True(t, actual.Equal(decimal.RequireFromString(expected)),
		"expected %s, got %s", expected, actual)
}

// =============================================================================
// TestRecordUsage - debits
// =============================================================================

func (s *LedgerSuite) TestRecordUsage() {
	s.Run("Normal case: debit moves stock and records the additive chain", func() {
		t := s.T()

		resourceID := s.seedStockedResource(t, "ALU-4MM", "100")

		entry := s.recordUsage(t, resourceID, "12.5", "order #1001")
		require.Equal(t, "usage", entry.Type)
		requireDecimal(t, "100", entry.WeightBefore)
		requireDecimal(t, "-12.5", entry.WeightChange)
		requireDecimal(t, "87.5", entry.WeightAfter)
		require.False(t, entry.IsReversal)

		requireDecimal(t, "87.5", dbtest.StockQuantity(t, s.DB, resourceID))

		// The stock-basis read model agrees with the ledger.
		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf(stockLookupURL, resourceID), nil)
		var view response.AvailabilityResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &view)
		require.Equal(t, "stock", view.Basis)
		requireDecimal(t, "87.5", view.Total)
	})

	s.Run("Error case: insufficient stock is rejected without moving anything", func() {
		t := s.T()

		resourceID := s.seedStockedResource(t, "ALU-4MM", "5")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, usagesURL, map[string]any{
			"resource_id": resourceID.String(),
			"amount":      "8",
			"description": "order #1002",
		})
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Insufficient stock")

		var body struct {
			Detail struct {
				ResourceID string          `json:"resourceId"`
				Required   decimal.Decimal `json:"required"`
				Available  decimal.Decimal `json:"available"`
			} `json:"detail"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.Equal(t, resourceID.String(), body.Detail.ResourceID)
		requireDecimal(t, "8", body.Detail.Required)
		requireDecimal(t, "5", body.Detail.Available)

		requireDecimal(t, "5", dbtest.StockQuantity(t, s.DB, resourceID))
	})

	s.Run("Error case: unknown resource returns 404", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, usagesURL, map[string]any{
			"resource_id": uuid.New().String(),
			"amount":      "1",
			"description": "order #1003",
		})
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Resource not found")
	})
}

// =============================================================================
// TestRecordReturn - credits and reversals
// =============================================================================

func (s *LedgerSuite) TestRecordReturn() {
	s.Run("Normal case: unrelated credit adds stock", func() {
		t := s.T()

		resourceID := s.seedStockedResource(t, "ALU-4MM", "40")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, returnsURL, map[string]any{
			"resource_id": resourceID.String(),
			"amount":      "10",
			"description": "supplier restock",
		})

		var entry response.EntryResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &entry)
		require.Equal(t, "return", entry.Type)
		requireDecimal(t, "10", entry.WeightChange)
		requireDecimal(t, "50", entry.WeightAfter)
		require.False(t, entry.IsReversal)
		require.Nil(t, entry.ReversalOfID)

		requireDecimal(t, "50", dbtest.StockQuantity(t, s.DB, resourceID))
	})

	s.Run("Normal case: exact reversal nets the original debit to zero", func() {
		t := s.T()

		resourceID := s.seedStockedResource(t, "ALU-4MM", "100")
		usage := s.recordUsage(t, resourceID, "12.5", "order #2001")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, returnsURL, map[string]any{
			"resource_id":    resourceID.String(),
			"amount":         "12.5",
			"reversal_of_id": usage.ID.String(),
			"description":    "order #2001 cancelled",
		})

		var reversal response.EntryResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &reversal)
		require.True(t, reversal.IsReversal)
		require.NotNil(t, reversal.ReversalOfID)
		require.Equal(t, usage.ID, *reversal.ReversalOfID)
		requireDecimal(t, "12.5", reversal.WeightChange)
		requireDecimal(t, "100", reversal.WeightAfter)

		// usage + reversal leave the stored quantity untouched
		requireDecimal(t, "100", dbtest.StockQuantity(t, s.DB, resourceID))
	})

	s.Run("Error case: reversal with a different amount is rejected", func() {
		t := s.T()

		resourceID := s.seedStockedResource(t, "ALU-4MM", "100")
		usage := s.recordUsage(t, resourceID, "12.5", "order #2002")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, returnsURL, map[string]any{
			"resource_id":    resourceID.String(),
			"amount":         "10",
			"reversal_of_id": usage.ID.String(),
			"description":    "partial cancel",
		})
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity,
			"Reversal does not match the original entry")

		requireDecimal(t, "87.5", dbtest.StockQuantity(t, s.DB, resourceID))
	})

	s.Run("Error case: reversing a missing entry returns 404", func() {
		t := s.T()

		resourceID := s.seedStockedResource(t, "ALU-4MM", "100")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, returnsURL, map[string]any{
			"resource_id":    resourceID.String(),
			"amount":         "1",
			"reversal_of_id": uuid.New().String(),
			"description":    "cancel",
		})
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Ledger entry not found")
	})
}

// =============================================================================
// TestRecordAdjustment - absolute corrections
// =============================================================================

func (s *LedgerSuite) TestRecordAdjustment() {
	s.Run("Normal case: stock is set to the counted quantity", func() {
		t := s.T()

		resourceID := s.seedStockedResource(t, "ALU-4MM", "100")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, adjustmentsURL, map[string]any{
			"resource_id":  resourceID.String(),
			"new_quantity": "93.25",
			"reason":       "cycle count 2026-08",
		})

		var entry response.EntryResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &entry)
		require.Equal(t, "adjustment", entry.Type)
		requireDecimal(t, "100", entry.WeightBefore)
		requireDecimal(t, "-6.75", entry.WeightChange)
		requireDecimal(t, "93.25", entry.WeightAfter)

		requireDecimal(t, "93.25", dbtest.StockQuantity(t, s.DB, resourceID))
	})

	s.Run("Error case: negative target quantity is rejected", func() {
		t := s.T()

		resourceID := s.seedStockedResource(t, "ALU-4MM", "100")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, adjustmentsURL, map[string]any{
			"resource_id":  resourceID.String(),
			"new_quantity": "-1",
			"reason":       "bad count",
		})
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid ledger request")
	})

	s.Run("Error case: missing reason fails binding", func() {
		t := s.T()

		resourceID := s.seedStockedResource(t, "ALU-4MM", "100")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, adjustmentsURL, map[string]any{
			"resource_id":  resourceID.String(),
			"new_quantity": "90",
		})
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid request format")
	})
}

// =============================================================================
// TestListEntries - history, filters, pagination
// =============================================================================

func (s *LedgerSuite) TestListEntries() {
	s.Run("Normal case: newest first with an unbroken additive chain", func() {
		t := s.T()

		resourceID := s.seedStockedResource(t, "ALU-4MM", "100")
		s.recordUsage(t, resourceID, "10", "order #3001")
		s.recordUsage(t, resourceID, "20", "order #3002")
		s.recordUsage(t, resourceID, "5", "order #3003")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			entriesURL+"?resource_id="+resourceID.String(), nil)

		var list response.EntryListResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &list)
		require.Len(t, list.Entries, 3)
		requireDecimal(t, "65", list.Entries[0].WeightAfter)

		// Descending order: each entry starts where the next (older) one ended.
		for i := 0; i < len(list.Entries)-1; i++ {
			require.True(t, list.Entries[i].WeightBefore.Equal(list.Entries[i+1].WeightAfter),
				"entry %d breaks the chain", i)
			sum := list.Entries[i].WeightBefore.Add(list.Entries[i].WeightChange)
			require.True(t, sum.Equal(list.Entries[i].WeightAfter))
		}
	})

	s.Run("Normal case: type filter and cursor pagination", func() {
		t := s.T()

		resourceID := s.seedStockedResource(t, "ALU-4MM", "100")
		s.recordUsage(t, resourceID, "10", "order #4001")
		s.recordUsage(t, resourceID, "20", "order #4002")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, returnsURL, map[string]any{
			"resource_id": resourceID.String(),
			"amount":      "3",
			"description": "supplier restock",
		})
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, nil)

		base := entriesURL + "?resource_id=" + resourceID.String() + "&type=usage&limit=1"
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, base, nil)

		var first response.EntryListResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &first)
		require.Len(t, first.Entries, 1)
		require.Equal(t, "usage", first.Entries[0].Type)
		require.NotNil(t, first.NextCursor)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, base+"&after="+*first.NextCursor, nil)

		var second response.EntryListResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &second)
		require.Len(t, second.Entries, 1)
		require.Equal(t, "usage", second.Entries[0].Type)
		require.NotEqual(t, first.Entries[0].ID, second.Entries[0].ID)
	})

	s.Run("Error case: malformed cursor returns 400", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, entriesURL+"?after=not-base64!", nil)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid pagination cursor")
	})
}

// =============================================================================
// TestResourceSummary
// =============================================================================

func (s *LedgerSuite) TestResourceSummary() {
	s.Run("Normal case: per-type totals across the resource's history", func() {
		t := s.T()

		resourceID := s.seedStockedResource(t, "ALU-4MM", "100")
		s.recordUsage(t, resourceID, "10", "order #5001")
		s.recordUsage(t, resourceID, "5", "order #5002")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, returnsURL, map[string]any{
			"resource_id": resourceID.String(),
			"amount":      "2",
			"description": "supplier restock",
		})
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, nil)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf(summaryURL, resourceID), nil)

		var summary response.ResourceSummaryResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &summary)
		require.Equal(t, resourceID, summary.ResourceID)
		requireDecimal(t, "15", summary.TotalUsed)
		requireDecimal(t, "2", summary.TotalReturned)
		require.Equal(t, int64(2), summary.ByType["usage"].Count)
		require.Equal(t, int64(1), summary.ByType["return"].Count)
	})

	s.Run("Error case: malformed resource id returns 400", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf(summaryURL, "not-a-uuid"), nil)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid resource ID format")
	})
}

// =============================================================================
// TestCheckSufficiency
// =============================================================================

func (s *LedgerSuite) TestCheckSufficiency() {
	s.Run("Normal case: all lines covered", func() {
		t := s.T()

		idA := s.seedStockedResource(t, "ALU-4MM", "100")
		idB := s.seedStockedResource(t, "STL-2MM", "30")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, sufficiencyURL, map[string]any{
			"items": []map[string]any{
				{"resource_id": idA.String(), "amount": "40"},
				{"resource_id": idB.String(), "amount": "30"},
			},
		})

		var result response.SufficiencyResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &result)
		require.True(t, result.OK)
		require.Empty(t, result.Shortfalls)
	})

	s.Run("Normal case: shortfalls are itemized without mutating stock", func() {
		t := s.T()

		idA := s.seedStockedResource(t, "ALU-4MM", "100")
		idB := s.seedStockedResource(t, "STL-2MM", "3")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, sufficiencyURL, map[string]any{
			"items": []map[string]any{
				{"resource_id": idA.String(), "amount": "40"},
				{"resource_id": idB.String(), "amount": "8"},
			},
		})

		var result response.SufficiencyResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &result)
		require.False(t, result.OK)
		require.Len(t, result.Shortfalls, 1)
		require.Equal(t, idB, result.Shortfalls[0].ResourceID)
		requireDecimal(t, "8", result.Shortfalls[0].Required)
		requireDecimal(t, "3", result.Shortfalls[0].Available)

		requireDecimal(t, "3", dbtest.StockQuantity(t, s.DB, idB))
	})
}
