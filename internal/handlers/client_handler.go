package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ostech-br/os-manager/internal/audit"
	"github.com/ostech-br/os-manager/internal/dto"
	"github.com/ostech-br/os-manager/internal/httperr"
	"github.com/ostech-br/os-manager/internal/middleware"
	"github.com/ostech-br/os-manager/internal/models"
	"github.com/ostech-br/os-manager/internal/validation"
)

// ClientHandler faz o CRUD de clientes. Delete é sempre soft: o
// tombstone fica no deleted_at e o gorm exclui essas linhas de toda
// leitura padrão.
type ClientHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewClientHandler(db *gorm.DB, audit *audit.Dispatcher) *ClientHandler {
	return &ClientHandler{db: db, audit: audit}
}

// ======================================================
// LIST
// ======================================================
func (h *ClientHandler) List(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Model(&models.Client{})
	if query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"LOWER(name) LIKE ? OR phone LIKE ? OR LOWER(email) LIKE ?",
			like, like, like,
		)
	}

	var clients []models.Client
	if err := q.Order("created_at DESC").Find(&clients).Error; err != nil {
		middleware.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, clients)
}

// ======================================================
// GET
// ======================================================
func (h *ClientHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var client models.Client
	if err := h.db.First(&client, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			middleware.Abort(c, httperr.NotFound("client not found"))
			return
		}
		middleware.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, client)
}

// ======================================================
// CREATE
// ======================================================
func (h *ClientHandler) Create(c *gin.Context) {
	var req dto.ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.Abort(c, httperr.Validation("invalid request body"))
		return
	}
	if err := validation.Check(req); err != nil {
		middleware.Abort(c, err)
		return
	}

	if err := h.assertEmailFree(c, req.Email, 0); err != nil {
		middleware.Abort(c, err)
		return
	}

	var client models.Client
	req.Apply(&client)

	if err := h.db.Create(&client).Error; err != nil {
		middleware.Abort(c, err)
		return
	}

	c.JSON(http.StatusCreated, client)
}

// ======================================================
// UPDATE
// ======================================================
func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.Abort(c, httperr.Validation("invalid request body"))
		return
	}
	if err := validation.Check(req); err != nil {
		middleware.Abort(c, err)
		return
	}

	var client models.Client
	if err := h.db.First(&client, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			middleware.Abort(c, httperr.NotFound("client not found"))
			return
		}
		middleware.Abort(c, err)
		return
	}

	if err := h.assertEmailFree(c, req.Email, client.ID); err != nil {
		middleware.Abort(c, err)
		return
	}

	req.Apply(&client)

	if err := h.db.Save(&client).Error; err != nil {
		middleware.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, client)
}

// ======================================================
// DELETE (soft)
// ======================================================
func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	res := h.db.Delete(&models.Client{}, id)
	if res.Error != nil {
		middleware.Abort(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		middleware.Abort(c, httperr.NotFound("client not found"))
		return
	}

	userID := c.MustGet(middleware.ContextUserID).(uint)
	clientID := uint(id)
	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "client_deleted",
		Entity:   "client",
		EntityID: &clientID,
	})

	c.JSON(http.StatusOK, gin.H{"message": "client deleted"})
}

// --------------------------------------------------

func (h *ClientHandler) assertEmailFree(c *gin.Context, email string, exceptID uint) error {
	if email == "" {
		return nil
	}

	q := h.db.Model(&models.Client{}).Where("email = ?", email)
	if exceptID != 0 {
		q = q.Where("id != ?", exceptID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return httperr.Conflict("email already registered")
	}
	return nil
}

// parseID lê o :id da rota; inválido → 400 já abortado.
func parseID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		middleware.Abort(c, httperr.Validation("invalid id"))
		return 0, false
	}
	return id, true
}
