package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/ostech-br/os-manager/internal/domain/metrics"
	"github.com/ostech-br/os-manager/internal/middleware"
	ucmetrics "github.com/ostech-br/os-manager/internal/usecase/metrics"
)

// MetricsHandler serve os agregados do dashboard. Só leitura.
type MetricsHandler struct {
	svc *ucmetrics.Service
}

func NewMetricsHandler(svc *ucmetrics.Service) *MetricsHandler {
	return &MetricsHandler{svc: svc}
}

// Dashboard aceita ?range=week|month|quarter (default month).
func (h *MetricsHandler) Dashboard(c *gin.Context) {
	r := domain.ParseRange(c.Query("range"))

	dashboard, err := h.svc.Dashboard(c.Request.Context(), r)
	if err != nil {
		middleware.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, dashboard)
}

func (h *MetricsHandler) Charts(c *gin.Context) {
	charts, err := h.svc.Charts(c.Request.Context())
	if err != nil {
		middleware.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, charts)
}

func (h *MetricsHandler) Revenue(c *gin.Context) {
	revenue, err := h.svc.Revenue(c.Request.Context())
	if err != nil {
		middleware.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, revenue)
}
