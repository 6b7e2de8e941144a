package handler

import (
	"context"
	"net/http"

	service "dashboard-seed-backend/internal/services/seeding"

	"github.com/gin-gonic/gin"
)

type SeedHandler struct {
	service *service.SeedService
}

func NewSeedHandler(s *service.SeedService) *SeedHandler {
	return &SeedHandler{service: s}
}

// Seed resets the dashboard tables to the placeholder data. The service
// logs the full error; the caller only sees the underlying message. A client
// disconnect does not cancel a run in progress.
func (h *SeedHandler) Seed(c *gin.Context) {
	ctx := context.WithoutCancel(c.Request.Context())
	if _, err := h.service.Seed(ctx); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": service.Cause(err).Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Database seeded successfully"})
}
