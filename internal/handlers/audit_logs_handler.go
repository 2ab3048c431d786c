package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ostech-br/os-manager/internal/middleware"
	"github.com/ostech-br/os-manager/internal/models"
)

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

// List devolve as últimas 100 entradas da trilha de auditoria.
func (h *AuditLogsHandler) List(c *gin.Context) {
	var logs []models.AuditLog
	if err := h.db.
		Order("created_at DESC").
		Limit(100).
		Find(&logs).Error; err != nil {
		middleware.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, logs)
}
