package api

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/Domenick1991/cargoeta/internal/domain"
	"github.com/Domenick1991/cargoeta/internal/service/eta"
	"github.com/gin-gonic/gin"
)

type EtaHandler struct {
	service eta.EtaUseCase
}

type etaRequest struct {
	Origin      string `form:"origin" binding:"required"`
	Destination string `form:"destination" binding:"required"`
	Departure   string `form:"departure" binding:"required"`
}

type etaResponse struct {
	ID                  string `json:"id"`
	Origin              string `json:"origin"`
	Destination         string `json:"destination"`
	DestinationTimezone string `json:"destination_timezone"`
	Departure           string `json:"departure"`
	Arrival             string `json:"arrival"`
	VoyageDays          int    `json:"voyage_days"`
}

func NewEtaHandler(service eta.EtaUseCase) *EtaHandler {
	return &EtaHandler{service: service}
}

func (h *EtaHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.estimate)
}

func (h *EtaHandler) estimate(c *gin.Context) {
	var req etaRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	estimate, err := h.service.EstimateArrival(c.Request.Context(), eta.EstimateInput{
		OriginPortID:      req.Origin,
		DestinationPortID: req.Destination,
		Departure:         restoreOffsetSign(req.Departure),
	})
	if err != nil {
		status := etaErrorStatus(err)
		if status == http.StatusInternalServerError {
			log.Printf("eta failed origin=%s destination=%s: %v", req.Origin, req.Destination, err)
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, etaResponse{
		ID:                  estimate.ID.String(),
		Origin:              estimate.Origin.ID,
		Destination:         estimate.Destination.ID,
		DestinationTimezone: estimate.Destination.Timezone,
		Departure:           estimate.Departure.Format(time.RFC3339),
		Arrival:             estimate.Arrival.Format(time.RFC3339),
		VoyageDays:          estimate.VoyageDays,
	})
}

// restoreOffsetSign undoes query decoding of an unescaped '+' offset:
// "2024-03-01T12:00:00 08:00" becomes "2024-03-01T12:00:00+08:00".
func restoreOffsetSign(s string) string {
	n := len(s)
	if n < 7 || s[n-6] != ' ' || s[n-3] != ':' || !strings.Contains(s[:n-6], "T") {
		return s
	}
	return s[:n-6] + "+" + s[n-5:]
}

func etaErrorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrNaiveInstant), errors.Is(err, domain.ErrInvalidInstant):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnknownPort):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrUnknownTimezone), errors.Is(err, domain.ErrRouteNotFound):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
