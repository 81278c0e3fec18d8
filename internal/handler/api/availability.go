package api

import (
	"errors"
	"net/http"

	resdto "stockcore/internal/handler/dto/response"
	"stockcore/internal/handler/httperr"
	"stockcore/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AvailabilityHandler struct {
	availabilityQueries queries.AvailabilityQueries
}

func NewAvailabilityHandler(availabilityQueries queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityQueries: availabilityQueries,
	}
}

// GetAvailability reports max(0, total - reserved) for a resource. The
// `basis` query parameter selects the total: authoritative stock (default)
// or catalog capacity.
func (h *AvailabilityHandler) GetAvailability(c *gin.Context) {
	resourceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid resource ID format", nil)
		return
	}

	basis := c.DefaultQuery("basis", "stock")

	var view *queries.AvailabilityView
	switch basis {
	case "stock":
		view, err = h.availabilityQueries.AvailableStock(c.Request.Context(), resourceID)
	case "capacity":
		view, err = h.availabilityQueries.AvailableCapacity(c.Request.Context(), resourceID)
	default:
		httperr.AbortWithError(c, http.StatusBadRequest, nil, "Basis must be 'stock' or 'capacity'", nil)
		return
	}
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrUnknownResource):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Resource not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view, basis))
}
