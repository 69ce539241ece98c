package http

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	Storage   string    `json:"storage,omitempty"`
}

// HealthHandler reports liveness plus the state of whichever storage
// backend is configured: the data directory for the file store, or a
// database ping for the postgres store.
type HealthHandler struct {
	serviceName string
	version     string
	dataDir     string
	db          *pgxpool.Pool
}

func NewHealthHandler(serviceName, version, dataDir string, db *pgxpool.Pool) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
		dataDir:     dataDir,
		db:          db,
	}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	storage := "up"
	switch {
	case h.db != nil:
		pingCtx, cancel := context.WithTimeout(c.Request.Context(), 1*time.Second)
		defer cancel()
		if err := h.db.Ping(pingCtx); err != nil {
			storage = "down"
		}
	default:
		if _, err := os.Stat(h.dataDir); err != nil {
			storage = "down"
		}
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Service:   h.serviceName,
		Version:   h.version,
		Storage:   storage,
	})
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.HealthCheck)
	r.GET("/healthz", h.HealthCheck)
}
