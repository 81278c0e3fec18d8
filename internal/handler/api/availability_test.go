//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"stockcore/internal/handler/api"
	resdto "stockcore/internal/handler/dto/response"
	"stockcore/internal/usecase/queries"
	"stockcore/tests/common/httptest"
	queriesmock "stockcore/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AvailabilityHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockAvailabilityQueries
	handler     *api.AvailabilityHandler
}

func (s *AvailabilityHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	s.handler = api.NewAvailabilityHandler(s.mockQueries)

	s.router.GET("/resources/:id/availability", s.handler.GetAvailability)
}

func (s *AvailabilityHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAvailabilityHandlerSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityHandlerTestSuite))
}

func (s *AvailabilityHandlerTestSuite) TestGetAvailability() {
	resourceID := uuid.New()
	url := "/resources/" + resourceID.String() + "/availability"

	s.Run("success: stock basis is the default", func() {
		view := &queries.AvailabilityView{
			ResourceID: resourceID,
			Total:      decimal.RequireFromString("87.5"),
			Reserved:   12,
			Available:  decimal.RequireFromString("75.5"),
		}
		s.mockQueries.EXPECT().AvailableStock(gomock.Any(), resourceID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var response resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(resourceID, response.ResourceID)
		s.Equal("stock", response.Basis)
		s.Equal(int64(12), response.Reserved)
		s.True(response.Available.Equal(decimal.RequireFromString("75.5")))
	})

	s.Run("success: capacity basis", func() {
		view := &queries.AvailabilityView{
			ResourceID: resourceID,
			Total:      decimal.NewFromInt(10),
			Reserved:   7,
			Available:  decimal.NewFromInt(3),
		}
		s.mockQueries.EXPECT().AvailableCapacity(gomock.Any(), resourceID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?basis=capacity", nil)

		var response resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("capacity", response.Basis)
		s.True(response.Available.Equal(decimal.NewFromInt(3)))
	})

	s.Run("error: 400 Bad Request for unknown basis", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?basis=vibes", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Basis must be 'stock' or 'capacity'")
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/resources/not-a-uuid/availability", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid resource ID format")
	})

	s.Run("error: 404 Not Found for unknown resource", func() {
		s.mockQueries.EXPECT().AvailableStock(gomock.Any(), resourceID).
			Return(nil, queries.ErrUnknownResource).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Resource not found")
	})

	s.Run("error: 500 on query failure", func() {
		s.mockQueries.EXPECT().AvailableStock(gomock.Any(), resourceID).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
