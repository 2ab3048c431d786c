package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ostech-br/os-manager/internal/audit"
	"github.com/ostech-br/os-manager/internal/dto"
	"github.com/ostech-br/os-manager/internal/httperr"
	"github.com/ostech-br/os-manager/internal/middleware"
	"github.com/ostech-br/os-manager/internal/models"
	"github.com/ostech-br/os-manager/internal/password"
	"github.com/ostech-br/os-manager/internal/token"
	"github.com/ostech-br/os-manager/internal/validation"
)

type AuthHandler struct {
	db     *gorm.DB
	tokens *token.Service
	audit  *audit.Dispatcher
}

func NewAuthHandler(db *gorm.DB, tokens *token.Service, audit *audit.Dispatcher) *AuthHandler {
	return &AuthHandler{db: db, tokens: tokens, audit: audit}
}

// ======================================================
// REGISTER
// ======================================================
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.Abort(c, httperr.Validation("invalid request body"))
		return
	}
	if err := validation.Check(req); err != nil {
		middleware.Abort(c, err)
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var count int64
	if err := h.db.Model(&models.User{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		middleware.Abort(c, err)
		return
	}
	if count > 0 {
		middleware.Abort(c, httperr.Conflict("email already registered"))
		return
	}

	hashed, err := password.Hash(req.Password)
	if err != nil {
		middleware.Abort(c, err)
		return
	}

	role := req.Role
	if role == "" {
		role = "technician"
	}

	user := models.User{
		Name:         req.Name,
		Email:        email,
		PasswordHash: hashed,
		Role:         role,
	}

	if err := h.db.Create(&user).Error; err != nil {
		middleware.Abort(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &user.ID,
		Action:   "user_registered",
		Entity:   "user",
		EntityID: &user.ID,
	})

	c.JSON(http.StatusCreated, gin.H{
		"message": "user created",
		"user":    dto.UserFromModel(&user),
	})
}

// ======================================================
// LOGIN
// ======================================================
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.Abort(c, httperr.Validation("invalid request body"))
		return
	}
	if err := validation.Check(req); err != nil {
		middleware.Abort(c, err)
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			middleware.Abort(c, httperr.Authentication("invalid credentials"))
			return
		}
		middleware.Abort(c, err)
		return
	}

	if !password.Verify(req.Password, user.PasswordHash) {
		middleware.Abort(c, httperr.Authentication("invalid credentials"))
		return
	}

	tok, err := h.tokens.Issue(token.Claims{
		ID:    user.ID,
		Email: user.Email,
		Role:  user.Role,
		Name:  user.Name,
	})
	if err != nil {
		middleware.Abort(c, err)
		return
	}

	// last_login é best effort: falha aqui não invalida o login.
	now := time.Now()
	if err := h.db.Model(&user).Update("last_login", now).Error; err == nil {
		user.LastLogin = &now
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &user.ID,
		Action:   "user_logged_in",
		Entity:   "user",
		EntityID: &user.ID,
	})

	c.JSON(http.StatusOK, gin.H{
		"token": tok,
		"user":  dto.UserFromModel(&user),
	})
}

// ======================================================
// ME / VERIFY
// ======================================================
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			middleware.Abort(c, httperr.Authentication("user not found"))
			return
		}
		middleware.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": dto.UserFromModel(&user)})
}

// Verify ecoa a identidade do token, sem tocar no banco.
func (h *AuthHandler) Verify(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":    c.MustGet(middleware.ContextUserID),
			"email": c.MustGet(middleware.ContextUserEmail),
			"role":  c.MustGet(middleware.ContextUserRole),
			"name":  c.MustGet(middleware.ContextUserName),
		},
	})
}
