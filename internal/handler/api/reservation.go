package api

import (
	"errors"
	"net/http"
	"time"

	reqdto "stockcore/internal/handler/dto/request"
	resdto "stockcore/internal/handler/dto/response"
	"stockcore/internal/handler/httperr"
	"stockcore/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	reservationUseCase commands.ReservationCommands
}

func NewReservationHandler(reservationUseCase commands.ReservationCommands) *ReservationHandler {
	return &ReservationHandler{
		reservationUseCase: reservationUseCase,
	}
}

// Reserve places an all-or-nothing hold. Capacity shortfall is a business
// outcome, not a transport failure: the response is 200 with success=false
// and the itemized failed lines.
func (h *ReservationHandler) Reserve(c *gin.Context) {
	var req reqdto.ReserveRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	result, err := h.reservationUseCase.Reserve(c.Request.Context(), req.SessionID, req.ToCommand())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrResourceNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Resource not found", nil)
		case errors.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation request", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromReserveResult(result))
}

// Release is idempotent: a session with nothing held reports released=false
// rather than an error.
func (h *ReservationHandler) Release(c *gin.Context) {
	sessionID := c.Param("session_id")

	released, err := h.reservationUseCase.Release(c.Request.Context(), sessionID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.ReleaseResponse{Released: released})
}

func (h *ReservationHandler) Confirm(c *gin.Context) {
	sessionID := c.Param("session_id")

	result, err := h.reservationUseCase.Confirm(c.Request.Context(), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrSessionNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Session has no active hold", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromConfirmResult(result))
}

func (h *ReservationHandler) Extend(c *gin.Context) {
	sessionID := c.Param("session_id")

	var req reqdto.ExtendRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	additional := time.Duration(req.AdditionalSeconds) * time.Second
	expiresAt, err := h.reservationUseCase.Extend(c.Request.Context(), sessionID, additional)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Extension must be positive", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	// No active hold is a no-op, not an error.
	if expiresAt == nil {
		c.JSON(http.StatusOK, resdto.ExtendResponse{Extended: false})
		return
	}

	c.JSON(http.StatusOK, resdto.ExtendResponse{Extended: true, ExpiresAt: expiresAt})
}
