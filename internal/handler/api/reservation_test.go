//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"stockcore/internal/handler/api"
	resdto "stockcore/internal/handler/dto/response"
	"stockcore/internal/usecase/commands"
	"stockcore/tests/common/httptest"
	commandsmock "stockcore/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	handler      *api.ReservationHandler
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands)

	s.router.POST("/reservations", s.handler.Reserve)
	s.router.DELETE("/reservations/:session_id", s.handler.Release)
	s.router.POST("/reservations/:session_id/confirm", s.handler.Confirm)
	s.router.POST("/reservations/:session_id/extend", s.handler.Extend)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

// ================================================================================
// TestReserve
// ================================================================================

func (s *ReservationHandlerTestSuite) TestReserve() {
	url := "/reservations"
	resourceID := uuid.New()
	expiresAt := time.Date(2025, 6, 1, 12, 15, 0, 0, time.UTC)

	reqBody := map[string]any{
		"session_id": "session-001",
		"items": []map[string]any{
			{"resource_id": resourceID.String(), "quantity": 3},
		},
	}

	s.Run("success: returns 200 OK with the placed hold", func() {
		result := &commands.ReserveResult{
			Success:   true,
			SessionID: "session-001",
			ExpiresAt: expiresAt,
			Items: []commands.ReservedItem{
				{ResourceID: resourceID, Quantity: 3, DisplayName: "Widget", DisplaySKU: "WGT-01"},
			},
		}
		s.mockCommands.EXPECT().Reserve(gomock.Any(), "session-001", gomock.Any()).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var response resdto.ReserveResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Success)
		s.Equal("session-001", response.SessionID)
		s.Require().NotNil(response.ExpiresAt)
		s.True(response.ExpiresAt.Equal(expiresAt))
		s.Require().Len(response.Items, 1)
		s.Equal(resourceID, response.Items[0].ResourceID)
		s.Equal("Widget", response.Items[0].DisplayName)
		s.Empty(response.Failed)
	})

	s.Run("success: capacity shortfall is 200 with success=false", func() {
		result := &commands.ReserveResult{
			Success:   false,
			SessionID: "session-001",
			Failed: []commands.FailedItem{
				{ResourceID: resourceID, Requested: 3, Available: 1},
			},
		}
		s.mockCommands.EXPECT().Reserve(gomock.Any(), "session-001", gomock.Any()).
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var response resdto.ReserveResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.Success)
		s.Nil(response.ExpiresAt)
		s.Empty(response.Items)
		s.Require().Len(response.Failed, 1)
		s.Equal(resourceID, response.Failed[0].ResourceID)
		s.Equal(int64(3), response.Failed[0].Requested)
		s.Equal(int64(1), response.Failed[0].Available)
	})

	s.Run("error: 400 Bad Request on binding errors", func() {
		testCases := []struct {
			name string
			body map[string]any
		}{
			{name: "missing session_id", body: map[string]any{
				"items": []map[string]any{{"resource_id": resourceID.String(), "quantity": 1}},
			}},
			{name: "missing items", body: map[string]any{"session_id": "session-001"}},
			{name: "empty items", body: map[string]any{"session_id": "session-001", "items": []map[string]any{}}},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, tc.body)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "resource not found",
				commandsError:  commands.ErrResourceNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Resource not found",
			},
			{
				name:           "domain validation error",
				commandsError:  commands.ErrDomainValidation,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid reservation request",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Reserve(gomock.Any(), "session-001", gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestRelease
// ================================================================================

func (s *ReservationHandlerTestSuite) TestRelease() {
	url := "/reservations/session-001"

	s.Run("success: returns 200 OK", func() {
		s.mockCommands.EXPECT().Release(gomock.Any(), "session-001").
			Return(true, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil)

		var response resdto.ReleaseResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Released)
	})

	s.Run("success: released=false when the session has no hold", func() {
		s.mockCommands.EXPECT().Release(gomock.Any(), "session-001").
			Return(false, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil)

		var response resdto.ReleaseResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.Released)
	})

	s.Run("error: 500 on unexpected failure", func() {
		s.mockCommands.EXPECT().Release(gomock.Any(), "session-001").
			Return(false, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestConfirm
// ================================================================================

func (s *ReservationHandlerTestSuite) TestConfirm() {
	url := "/reservations/session-001/confirm"
	resourceID := uuid.New()

	s.Run("success: returns 200 OK with the confirmed lines", func() {
		result := &commands.ConfirmResult{
			SessionID: "session-001",
			Items: []commands.ReservedItem{
				{ResourceID: resourceID, Quantity: 2, DisplayName: "Widget", DisplaySKU: "WGT-01"},
			},
		}
		s.mockCommands.EXPECT().Confirm(gomock.Any(), "session-001").
			Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)

		var response resdto.ConfirmResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Confirmed)
		s.Equal("session-001", response.SessionID)
		s.Require().Len(response.Items, 1)
		s.Equal(int64(2), response.Items[0].Quantity)
	})

	s.Run("error: 404 Not Found for expired or unknown session", func() {
		s.mockCommands.EXPECT().Confirm(gomock.Any(), "session-001").
			Return(nil, commands.ErrSessionNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Session has no active hold")
	})
}

// ================================================================================
// TestExtend
// ================================================================================

func (s *ReservationHandlerTestSuite) TestExtend() {
	url := "/reservations/session-001/extend"
	newExpiry := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)

	reqBody := map[string]any{"additional_seconds": 600}

	s.Run("success: returns 200 OK with the new expiry", func() {
		s.mockCommands.EXPECT().Extend(gomock.Any(), "session-001", 10*time.Minute).
			Return(&newExpiry, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var response resdto.ExtendResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Extended)
		s.Require().NotNil(response.ExpiresAt)
		s.True(response.ExpiresAt.Equal(newExpiry))
	})

	s.Run("success: extended=false when the session has no active hold", func() {
		s.mockCommands.EXPECT().Extend(gomock.Any(), "session-001", 10*time.Minute).
			Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var response resdto.ExtendResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.False(response.Extended)
		s.Nil(response.ExpiresAt)
	})

	s.Run("error: 400 Bad Request on missing additional_seconds", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "non-positive extension",
				commandsError:  commands.ErrDomainValidation,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Extension must be positive",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Extend(gomock.Any(), "session-001", 10*time.Minute).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
