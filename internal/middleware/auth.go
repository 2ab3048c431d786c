package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ostech-br/os-manager/internal/httperr"
	"github.com/ostech-br/os-manager/internal/token"
)

const (
	ContextUserID    = "userID"
	ContextUserEmail = "userEmail"
	ContextUserRole  = "userRole"
	ContextUserName  = "userName"
)

// AuthMiddleware exige um bearer token válido em toda rota de negócio.
// Header ausente, formato errado, scheme diferente de Bearer, token
// expirado ou assinatura inválida → 401, sem chegar no handler.
func AuthMiddleware(tokens *token.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			Abort(c, httperr.Authentication("token not provided"))
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			Abort(c, httperr.Authentication("malformed token"))
			return
		}

		claims, err := tokens.Verify(parts[1])
		if err != nil {
			if errors.Is(err, token.ErrExpired) {
				Abort(c, httperr.Authentication("token expired"))
				return
			}
			Abort(c, httperr.Authentication("invalid token"))
			return
		}

		c.Set(ContextUserID, claims.ID)
		c.Set(ContextUserEmail, claims.Email)
		c.Set(ContextUserRole, claims.Role)
		c.Set(ContextUserName, claims.Name)

		c.Next()
	}
}
