package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"mentorhub/internal/domain/user"
	"mentorhub/internal/infrastructure/auth"
	"mentorhub/internal/shared/constants"
	"mentorhub/internal/shared/logger"
	"mentorhub/internal/shared/utils"
)

type AuthMiddleware struct {
	jwtService *auth.JWTService
	userRepo   user.Repository
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, userRepo user.Repository, log logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		userRepo:   userRepo,
		logger:     log,
	}
}

// RequireAuth authenticates the bearer token and resolves the account, so
// role changes take effect on the next request rather than at token expiry.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		claims, err := m.jwtService.Verify(token)
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		u, err := m.userRepo.GetBySID(c.Request.Context(), claims.UserSID)
		if err != nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, "account no longer exists")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, u.DBID())
		c.Set(constants.ContextKeyUserSID, u.SID())
		c.Set(constants.ContextKeyUserEmail, u.Email())
		c.Set(constants.ContextKeyUserRole, string(u.Role()))

		c.Next()
	}
}

// OptionalAuth resolves the account when a valid token is present and
// continues anonymously otherwise.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.Next()
			return
		}

		claims, err := m.jwtService.Verify(token)
		if err != nil {
			c.Next()
			return
		}

		if u, err := m.userRepo.GetBySID(c.Request.Context(), claims.UserSID); err == nil {
			c.Set(constants.ContextKeyUserID, u.DBID())
			c.Set(constants.ContextKeyUserSID, u.SID())
			c.Set(constants.ContextKeyUserEmail, u.Email())
			c.Set(constants.ContextKeyUserRole, string(u.Role()))
		}

		c.Next()
	}
}

// RequireRole gates a route group to the given roles. Must run after
// RequireAuth.
func RequireRole(roles ...user.Role) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[string(r)] = true
	}

	return func(c *gin.Context) {
		role := c.GetString(constants.ContextKeyUserRole)
		if !allowed[role] {
			utils.ErrorResponse(c, http.StatusForbidden, constants.ErrMsgForbidden)
			c.Abort()
			return
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader(constants.HeaderAuthorization)
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

// CurrentUserID returns the authenticated numeric user ID, or 0.
func CurrentUserID(c *gin.Context) uint {
	if v, ok := c.Get(constants.ContextKeyUserID); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

// CurrentUserEmail returns the authenticated user's email, or "".
func CurrentUserEmail(c *gin.Context) string {
	return c.GetString(constants.ContextKeyUserEmail)
}
