package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fynda/backend/internal/domain"
)

// Searcher is the slice of the orchestrator the handlers need.
type Searcher interface {
	Search(ctx context.Context, query string) (*domain.SearchResult, error)
}

// VendorStatusProvider reports the registered vendors.
type VendorStatusProvider interface {
	Status() []domain.VendorStatus
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	searcher Searcher
	vendors  VendorStatusProvider
}

// NewHandler creates a new HTTP handler
func NewHandler(searcher Searcher, vendors VendorStatusProvider) *Handler {
	return &Handler{searcher: searcher, vendors: vendors}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "fynda-backend",
		"version": "1.0.0",
	})
}

// Search handles product search requests
func (h *Handler) Search(c *gin.Context) {
	query := c.Query("q")

	result, err := h.searcher.Search(c.Request.Context(), query)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRequest) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "search failed"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// VendorStatus lists the registered product sources and their state
func (h *Handler) VendorStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"vendors": h.vendors.Status()})
}
